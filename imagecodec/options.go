// SPDX-License-Identifier: MIT

package imagecodec

// Option configures EncryptImage.
type Option func(*options)

type options struct {
	embedKey bool
}

func gatherOptions(opts []Option) options {
	o := options{embedKey: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithEmbeddedKey controls whether the key matrix is copied into the
// metadata (default true). Sidecars written with false cannot be decrypted
// without the key file.
func WithEmbeddedKey(embed bool) Option {
	return func(o *options) { o.embedKey = embed }
}

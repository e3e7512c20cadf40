// SPDX-License-Identifier: MIT

package hill

import (
	"io"
	"log"
)

// Option configures a Cipher.
type Option func(*options)

type options struct {
	logger   *log.Logger
	embedKey bool
	source   io.Reader
}

func gatherOptions(opts []Option) options {
	o := options{
		logger:   log.New(io.Discard, "", 0),
		embedKey: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithLogger sends progress messages to l. By default nothing is logged.
// Panics on a nil logger.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("hill: WithLogger: nil logger")
	}

	return func(o *options) { o.logger = l }
}

// WithEmbeddedKey controls whether sidecars carry a copy of the key
// (default true). Without it, decryption requires the key file.
func WithEmbeddedKey(embed bool) Option {
	return func(o *options) { o.embedKey = embed }
}

// WithKeySource sets the byte source for GenerateKey (default crypto/rand).
// Panics on a nil reader.
func WithKeySource(r io.Reader) Option {
	if r == nil {
		panic("hill: WithKeySource: nil reader")
	}

	return func(o *options) { o.source = r }
}

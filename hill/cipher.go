// SPDX-License-Identifier: MIT

package hill

import (
	"log"

	"github.com/katalvlaran/hillimg/imagecodec"
	"github.com/katalvlaran/hillimg/key"
)

// Cipher is the engine context: the current key plus configuration.
// Setting a key replaces the whole value; a failed set leaves the previous
// key in place.
type Cipher struct {
	key  *key.Key
	log  *log.Logger
	opts options
}

// New returns a Cipher with no key.
func New(opts ...Option) *Cipher {
	o := gatherOptions(opts)

	return &Cipher{log: o.logger, opts: o}
}

// Key returns the current key, or nil.
func (c *Cipher) Key() *key.Key { return c.key }

// HasKey reports whether a key is set.
func (c *Cipher) HasKey() bool { return c.key != nil }

func (c *Cipher) keyOptions() []key.Option {
	if c.opts.source == nil {
		return nil
	}

	return []key.Option{key.WithSource(c.opts.source)}
}

// GenerateKey draws a random invertible size×size key and makes it current.
// Errors: key.ErrInvalidKey (size), key.ErrGenerationExhausted, key.ErrIO.
func (c *Cipher) GenerateKey(size int) (*key.Key, error) {
	k, err := key.Generate(size, c.keyOptions()...)
	if err != nil {
		return nil, hillErrorf(opGenerateKey, err)
	}
	c.key = k
	c.log.Printf("generated %dx%d key", size, size)

	return k, nil
}

// DeriveKey derives a size×size key from a passphrase and salt and makes it
// current. The same inputs always yield the same key.
func (c *Cipher) DeriveKey(passphrase, salt []byte, size int) (*key.Key, error) {
	k, err := key.FromPassphrase(passphrase, salt, size)
	if err != nil {
		return nil, hillErrorf(opDeriveKey, err)
	}
	c.key = k
	c.log.Printf("derived %dx%d key from passphrase", size, size)

	return k, nil
}

// SetKey validates rows and makes them the current key.
// Errors: key.ErrInvalidKey, key.ErrSingularMatrix.
func (c *Cipher) SetKey(rows [][]int64) error {
	k, err := key.New(rows)
	if err != nil {
		return hillErrorf(opSetKey, err)
	}
	c.key = k

	return nil
}

// SetKeyValue makes an already validated key current.
// Errors: ErrNoKey for nil.
func (c *Cipher) SetKeyValue(k *key.Key) error {
	if k == nil {
		return hillErrorf(opSetKey, ErrNoKey)
	}
	c.key = k

	return nil
}

// SaveKey writes the current key to path.
// Errors: ErrNoKey, key.ErrIO.
func (c *Cipher) SaveKey(path string) error {
	if c.key == nil {
		return hillErrorf(opSaveKey, ErrNoKey)
	}
	if err := c.key.Save(path); err != nil {
		return hillErrorf(opSaveKey, err)
	}
	c.log.Printf("key saved to %s", path)

	return nil
}

// LoadKey reads, validates and installs the key stored at path.
// On failure the current key is unchanged.
func (c *Cipher) LoadKey(path string) error {
	k, err := key.Load(path)
	if err != nil {
		return hillErrorf(opLoadKey, err)
	}
	c.key = k
	c.log.Printf("loaded %dx%d key from %s", k.Size(), k.Size(), path)

	return nil
}

// EncryptImage encrypts p with the current key.
// Errors: ErrNoKey, imagecodec.ErrFormat.
func (c *Cipher) EncryptImage(p *imagecodec.Pixels) (*imagecodec.Pixels, *imagecodec.Metadata, error) {
	if c.key == nil {
		return nil, nil, hillErrorf(opEncrypt, ErrNoKey)
	}
	out, meta, err := imagecodec.EncryptImage(p, c.key, imagecodec.WithEmbeddedKey(c.opts.embedKey))
	if err != nil {
		return nil, nil, hillErrorf(opEncrypt, err)
	}

	return out, meta, nil
}

// DecryptImage decrypts p. The current key is used when set, otherwise the
// key embedded in meta.
func (c *Cipher) DecryptImage(p *imagecodec.Pixels, meta *imagecodec.Metadata) (*imagecodec.Pixels, error) {
	out, err := imagecodec.DecryptImage(p, c.key, meta)
	if err != nil {
		return nil, hillErrorf(opDecrypt, err)
	}

	return out, nil
}

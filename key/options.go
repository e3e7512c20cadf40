// SPDX-License-Identifier: MIT

// Package key: functional configuration for key construction and generation.
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
package key

import (
	"crypto/rand"
	"io"

	"github.com/katalvlaran/hillimg/matrix"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultModulus is the ring size: one byte per pixel channel.
	DefaultModulus = matrix.DefaultModulus

	// DefaultBlockSize is assumed when a key record omits block_size.
	DefaultBlockSize = 2

	// DefaultMaxAttempts bounds Generate's rejection loop. Roughly 30% of
	// uniform matrices mod 256 are invertible, so the bound is never hit
	// with a healthy source.
	DefaultMaxAttempts = 10000

	// DefaultKDFIterations is the PBKDF2 work factor for FromPassphrase.
	DefaultKDFIterations = 100000
)

// Size bounds. Cofactor expansion is O(n!), so keys stay small.
const (
	MinSize = 2
	MaxSize = 8
)

// Option configures key construction.
type Option func(*options)

type options struct {
	modulus       int64
	source        io.Reader
	maxAttempts   int
	kdfIterations int
}

// defaultOptions returns the zero-configuration behavior.
func defaultOptions() options {
	return options{
		modulus:       DefaultModulus,
		source:        rand.Reader,
		maxAttempts:   DefaultMaxAttempts,
		kdfIterations: DefaultKDFIterations,
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithModulus sets the ring size. Panics if m < 2 (programmer error).
// Image encryption requires the default of 256.
func WithModulus(m int64) Option {
	if err := matrix.ValidateModulus(m); err != nil {
		panic("key: WithModulus: " + err.Error())
	}

	return func(o *options) { o.modulus = m }
}

// WithSource sets the byte source Generate samples from (default crypto/rand).
// Panics on a nil reader.
func WithSource(r io.Reader) Option {
	if r == nil {
		panic("key: WithSource: nil reader")
	}

	return func(o *options) { o.source = r }
}

// WithMaxAttempts bounds Generate's sampling loop. Panics if n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic("key: WithMaxAttempts: n must be >= 1")
	}

	return func(o *options) { o.maxAttempts = n }
}

// WithKDFIterations sets the PBKDF2 work factor. Panics if n < 1.
func WithKDFIterations(n int) Option {
	if n < 1 {
		panic("key: WithKDFIterations: n must be >= 1")
	}

	return func(o *options) { o.kdfIterations = n }
}

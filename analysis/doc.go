// SPDX-License-Identifier: MIT

// Package analysis measures how well a cipher image hides its plaintext.
//
// What it reports:
//   - per-channel histograms and Shannon entropy (8 bits is the ceiling for
//     byte data; good ciphertext sits close to it),
//   - Pearson correlation between plaintext and ciphertext, and between
//     neighbouring pixels of one image (natural images are highly
//     correlated, ciphertext should not be),
//   - zstd compression ratio as a redundancy estimate,
//   - a bounded-size thumbnail for previews.
//
// Compare bundles all of the above into a Report with Excellent / Good /
// Fair grades. Every function is pure and deterministic.
package analysis

// SPDX-License-Identifier: MIT

// Package imagecodec runs the Hill cipher over whole images.
//
// Images are handled as decoded pixel arrays (Pixels): a shape, a mode tag
// and a row-major, channel-interleaved []uint8. EncryptImage treats every
// channel as an independent 1-D sequence, encrypts it with the block codec
// and writes the result back in place, so the ciphertext has exactly the
// shape and mode of the plaintext. The Metadata it returns is what
// DecryptImage needs to reverse the transform; it travels as a JSON sidecar
// next to the ciphertext image:
//
//	photo.png -> photo_metadata.json
//
// Raster I/O covers PNG, JPEG and GIF from the standard library and BMP and
// TIFF from golang.org/x/image. Ciphertext must be stored losslessly (PNG or
// TIFF, or BMP for L and RGB); a JPEG or GIF re-encode would destroy it.
package imagecodec

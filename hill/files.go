// SPDX-License-Identifier: MIT

package hill

import (
	"errors"
	"io/fs"
	"os"

	"github.com/katalvlaran/hillimg/imagecodec"
)

// Messages reported by the file-level operations.
const (
	MsgEncrypted     = "Image encrypted successfully!"
	MsgDecrypted     = "Image decrypted successfully!"
	msgEncryptFailed = "Encryption failed: "
	msgDecryptFailed = "Decryption failed: "
)

// Result is the outcome of a file-level operation.
// OK is true exactly when Err is nil.
type Result struct {
	OK      bool
	Message string
	Err     error
}

func success(msg string) Result { return Result{OK: true, Message: msg} }

func failure(prefix string, err error) Result {
	return Result{Message: prefix + err.Error(), Err: err}
}

// EncryptFile encrypts the image at in and writes the ciphertext image to
// out and its sidecar to imagecodec.SidecarPath(out).
// MAIN DESCRIPTION:
//   - out must name a format that holds the input's mode exactly: PNG or
//     TIFF for every mode, BMP for L and RGB. The check runs once the input
//     is decoded and before anything is encrypted or written.
//   - If the sidecar cannot be written the ciphertext image is removed, so
//     a failure never leaves an undecryptable file behind.
//
// Failures (in Result.Err): ErrNoKey, imagecodec.ErrLossyFormat,
// imagecodec.ErrFormat, imagecodec.ErrIO.
func (c *Cipher) EncryptFile(in, out string) Result {
	if c.key == nil {
		return failure(msgEncryptFailed, hillErrorf(opEncrypt, ErrNoKey))
	}
	// L is accepted by every lossless format: this fails JPEG, GIF and
	// unknown extensions before the input is read.
	if err := imagecodec.RequireLossless(out, imagecodec.ModeL); err != nil {
		return failure(msgEncryptFailed, err)
	}

	p, err := imagecodec.LoadPixels(in)
	if err != nil {
		return failure(msgEncryptFailed, err)
	}
	if err = imagecodec.RequireLossless(out, p.Mode); err != nil {
		return failure(msgEncryptFailed, err)
	}
	c.log.Printf("encrypting %s (%v %s) with %dx%d key", in, p.Shape, p.Mode, c.key.Size(), c.key.Size())

	enc, meta, err := c.EncryptImage(p)
	if err != nil {
		return failure(msgEncryptFailed, err)
	}
	if err = imagecodec.SavePixels(out, enc); err != nil {
		return failure(msgEncryptFailed, err)
	}
	metaPath := imagecodec.SidecarPath(out)
	if err = imagecodec.SaveMetadata(metaPath, meta); err != nil {
		_ = os.Remove(out)
		return failure(msgEncryptFailed, err)
	}
	c.log.Printf("wrote %s and %s", out, metaPath)

	return success(MsgEncrypted)
}

// DecryptFile decrypts the ciphertext image at in and writes the plaintext
// to out (any supported format).
// MAIN DESCRIPTION:
//   - metaPath == "" means imagecodec.SidecarPath(in).
//   - A missing sidecar is tolerated: shape and mode are then taken from the
//     ciphertext image, and the current key is required.
//   - A sidecar that exists but cannot be parsed is an error.
//
// Failures (in Result.Err): ErrNoKey, key.ErrInvalidKey,
// imagecodec.ErrFormat, imagecodec.ErrIO, imagecodec.ErrMissingMetadata.
func (c *Cipher) DecryptFile(in, out, metaPath string) Result {
	if metaPath == "" {
		metaPath = imagecodec.SidecarPath(in)
	}
	meta, err := imagecodec.LoadMetadata(metaPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		c.log.Printf("no metadata at %s, using the image's own shape", metaPath)
		meta = nil
	case err != nil:
		return failure(msgDecryptFailed, err)
	}

	var p *imagecodec.Pixels
	if meta != nil {
		p, err = imagecodec.LoadPixelsMode(in, meta.ImageMode)
	} else {
		p, err = imagecodec.LoadPixels(in)
	}
	if err != nil {
		return failure(msgDecryptFailed, err)
	}

	dec, err := c.DecryptImage(p, meta)
	if err != nil {
		return failure(msgDecryptFailed, err)
	}
	if err = imagecodec.SavePixels(out, dec); err != nil {
		return failure(msgDecryptFailed, err)
	}
	c.log.Printf("decrypted %s to %s", in, out)

	return success(MsgDecrypted)
}

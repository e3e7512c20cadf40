// Package hillimg is a Hill-cipher engine for raster images: keys are
// invertible N×N matrices over ℤ/256ℤ, and every pixel channel is encrypted
// block by block as a vector of bytes.
//
// 🔐 What is inside?
//
//	• Exact modular linear algebra: determinant, adjugate, inverse mod m
//	• Keys: validation, random generation, passphrase derivation, JSON files
//	• Block codec: padding, partitioning, block and sequence transforms
//	• Image codec: per-channel encryption, metadata sidecars, PNG/BMP/TIFF
//	• Analysis: histograms, entropy, correlation, zstd ratio, thumbnails
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/      — int64 Dense matrices, GCD, ModInverse, InverseMod
//	key/         — Key (matrix + cached inverse), Generate, FromPassphrase
//	block/       — Pad, Partition, EncryptBlock/DecryptBlock, sequences
//	imagecodec/  — Pixels, Metadata, EncryptImage/DecryptImage, raster I/O
//	analysis/    — Compare, Entropy, Correlation, CompressionRatio, Thumbnail
//	hill/        — Cipher engine: key lifecycle + file-level operations
//	cmd/hillimg/ — command-line front end
//
// Quick example, key K = [[3,2],[5,7]] on the block [100, 200]:
//
//	| 3 2 |   | 100 |   | 700  |         | 188 |
//	| 5 7 | · | 200 | = | 1900 | mod 256 = | 108 |
//
// A Hill cipher is linear and therefore not secure against known-plaintext
// attacks; use it for teaching and experiments, not for protecting data.
//
//	go install github.com/katalvlaran/hillimg/cmd/hillimg@latest
package hillimg

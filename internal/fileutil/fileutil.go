// SPDX-License-Identifier: MIT

// Package fileutil holds the one file-system primitive the engine needs:
// writing an output file so that readers never observe a partial write.
package fileutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// tmpPattern is the os.CreateTemp pattern used next to the destination.
const tmpPattern = ".hillimg-*.tmp"

// File modes for WriteAtomic. os.CreateTemp always starts at 0600.
const (
	// PublicMode is used for images and metadata sidecars.
	PublicMode os.FileMode = 0o644

	// PrivateMode is used for key files.
	PrivateMode os.FileMode = 0o600
)

// WriteAtomic streams write's output into a temporary file in the
// destination directory, sets its mode to perm and renames it over path
// once write succeeds.
// On any failure the temporary file is removed and path is left untouched.
func WriteAtomic(path string, perm os.FileMode, write func(w io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return fmt.Errorf("create temp in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if err = write(tmp); err != nil {
		return err
	}
	if err = tmp.Chmod(perm); err != nil {
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", tmpName, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename to %s: %w", path, err)
	}

	return nil
}

package filehandler

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ManouchehrRasoulli/notefs/pkg/model"
)

// splitName splits a base name on its last dot. a name whose only dot is the
// leading one (.env) has no extension.
func splitName(name string) (stem string, ext string) {
	ext = filepath.Ext(name)
	if ext == name {
		return name, ""
	}
	return strings.TrimSuffix(name, ext), strings.TrimPrefix(ext, ".")
}

func copyName(stem, ext string, n int) string {
	if ext == "" {
		return fmt.Sprintf("%s_copy_%d", stem, n)
	}
	return fmt.Sprintf("%s_copy_%d.%s", stem, n, ext)
}

// uniqueDestination
// first free name for base inside dir. the check is not atomic with the copy,
// another writer may take the name in between.
func uniqueDestination(dir, base string) string {
	dest := filepath.Join(dir, base)
	if !exists(dest) {
		return dest
	}

	stem, ext := splitName(base)
	for n := 1; ; n++ {
		dest = filepath.Join(dir, copyName(stem, ext, n))
		if !exists(dest) {
			return dest
		}
	}
}

// CopyFile
// copy source (file or directory) into destDir without overwriting anything,
// returns the path actually written.
func (h *Handler) CopyFile(source, destDir string) (string, error) {
	base := filepath.Base(filepath.Clean(source))
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return "", errors.Join(model.ErrIO, fmt.Errorf("invalid source path %q", source))
	}

	fi, err := os.Stat(source)
	if err != nil {
		return "", osError(err)
	}

	dest := uniqueDestination(destDir, base)

	if fi.IsDir() {
		if err := checkNotNested(fi, source, destDir); err != nil {
			return "", err
		}
		err = h.copyDir(source, dest)
	} else {
		err = copyRegular(source, dest, fi.Mode().Perm())
	}
	if err != nil {
		h.logger.Printf("ERROR handler :: got error %v on copy %s -> %s\n", err, source, dest)
		return "", err
	}

	h.logger.Printf("handler :: copied %s -> %s\n", source, dest)
	return dest, nil
}

// checkNotNested
// fail when destDir is the source directory or lies below it. symlinks in
// destDir are resolved first (from its longest existing prefix, since the copy
// creates missing parents), then every real ancestor is compared by identity.
func checkNotNested(src fs.FileInfo, source, destDir string) error {
	dir, err := filepath.Abs(destDir)
	if err != nil {
		return osError(err)
	}

	for {
		resolved, err := filepath.EvalSymlinks(dir)
		if err == nil {
			dir = resolved
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil
		}
		dir = parent
	}

	for {
		fi, err := os.Stat(dir)
		if err == nil && os.SameFile(src, fi) {
			return errors.Join(model.ErrIO, fmt.Errorf("cannot copy directory %s into itself (%s)", source, destDir))
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil
		}
		dir = parent
	}
}

func (h *Handler) copyDir(source, dest string) error {
	if err := os.MkdirAll(dest, dirMode); err != nil {
		return osError(err)
	}

	entries, err := os.ReadDir(source)
	if err != nil {
		return osError(err)
	}

	for _, e := range entries {
		from := filepath.Join(source, e.Name())
		to := filepath.Join(dest, e.Name())

		fi, err := os.Stat(from)
		if err != nil {
			return osError(err)
		}

		if fi.IsDir() {
			err = h.copyDir(from, to)
		} else {
			err = copyRegular(from, to, fi.Mode().Perm())
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func copyRegular(source, dest string, perm os.FileMode) error {
	src, err := os.Open(source)
	if err != nil {
		return osError(err)
	}
	defer src.Close()

	dst, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return osError(err)
	}

	if _, err = io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return osError(err)
	}

	return osError(dst.Close())
}

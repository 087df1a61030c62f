package filehandler

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ManouchehrRasoulli/notefs/pkg/model"
)

const markdownExt = "md"

func validName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return errors.Join(model.ErrIO, fmt.Errorf("invalid name %q", name))
	}
	return nil
}

// CreateMarkdownFile
// create dir/name with the extension forced to .md, never overwrites.
func (h *Handler) CreateMarkdownFile(dir, name string) (string, error) {
	if err := validName(name); err != nil {
		return "", err
	}

	stem, ext := splitName(name)
	if ext != markdownExt {
		name = stem + "." + markdownExt
	}
	path := filepath.Join(dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, fileMode)
	if err != nil {
		return "", osError(err)
	}

	if _, err = f.WriteString(h.mdContent); err != nil {
		_ = f.Close()
		return "", osError(err)
	}
	if err = f.Close(); err != nil {
		return "", osError(err)
	}

	h.logger.Printf("handler :: new markdown file %s\n", path)
	return path, nil
}

func (h *Handler) CreateFolder(dir, name string) (string, error) {
	if name == "" {
		return "", errors.Join(model.ErrIO, errors.New("empty folder name"))
	}

	path := filepath.Join(dir, name)
	if exists(path) {
		return "", errors.Join(model.ErrAlreadyExists, fmt.Errorf("folder %s", path))
	}

	if err := h.MkdirAll(path); err != nil {
		return "", err
	}

	h.logger.Printf("handler :: new folder %s\n", path)
	return path, nil
}

// RenameFile renames oldPath to a sibling called newName.
func (h *Handler) RenameFile(oldPath, newName string) (string, error) {
	if err := validName(newName); err != nil {
		return "", err
	}

	newPath := filepath.Join(filepath.Dir(oldPath), newName)
	if exists(newPath) {
		return "", errors.Join(model.ErrAlreadyExists, fmt.Errorf("a file named %s already exists", newPath))
	}

	if err := h.Rename(oldPath, newPath); err != nil {
		return "", err
	}

	h.logger.Printf("handler :: renamed %s -> %s\n", oldPath, newPath)
	return newPath, nil
}

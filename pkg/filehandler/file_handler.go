package filehandler

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"unicode/utf8"

	"github.com/ManouchehrRasoulli/notefs/pkg/model"
)

const (
	DefaultMarkdownContent = "# New File\n\nWrite your content here..."

	fileMode = 0644
	dirMode  = 0755
)

type Option func(h *Handler)

func WithMarkdownContent(content string) Option {
	return func(h *Handler) {
		h.mdContent = content
	}
}

type Handler struct {
	mdContent string
	logger    *log.Logger
}

func NewHandler(logger *log.Logger, options ...Option) *Handler {
	h := Handler{
		mdContent: DefaultMarkdownContent,
		logger:    logger,
	}

	for _, op := range options {
		op(&h)
	}

	return &h
}

// osError
// translate an os level failure into the error taxonomy, keeping the os error
// for the message.
func osError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return errors.Join(model.ErrNotFound, err)
	case errors.Is(err, fs.ErrExist):
		return errors.Join(model.ErrAlreadyExists, err)
	default:
		return errors.Join(model.ErrIO, err)
	}
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

func (h *Handler) Stat(path string) (fs.FileInfo, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, osError(err)
	}
	return fi, nil
}

func (h *Handler) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", osError(err)
	}

	if !utf8.Valid(data) {
		return "", errors.Join(model.ErrNotUTF8, fmt.Errorf("file %s", path))
	}

	return string(data), nil
}

func (h *Handler) WriteFile(path string, content string) error {
	if err := os.WriteFile(path, []byte(content), fileMode); err != nil {
		h.logger.Printf("ERROR handler :: got error %v on write %s\n", err, path)
		return osError(err)
	}
	return nil
}

func (h *Handler) RemoveFile(path string) error {
	return osError(os.Remove(path))
}

func (h *Handler) RemoveAll(path string) error {
	return osError(os.RemoveAll(path))
}

func (h *Handler) MkdirAll(path string) error {
	return osError(os.MkdirAll(path, dirMode))
}

func (h *Handler) Rename(oldPath, newPath string) error {
	return osError(os.Rename(oldPath, newPath))
}

// DeleteFile removes path, recursively when it is a directory.
func (h *Handler) DeleteFile(path string) error {
	fi, err := os.Stat(path)
	if err == nil && fi.IsDir() {
		h.logger.Printf("handler :: remove directory %s\n", path)
		return h.RemoveAll(path)
	}

	h.logger.Printf("handler :: remove file %s\n", path)
	return h.RemoveFile(path)
}

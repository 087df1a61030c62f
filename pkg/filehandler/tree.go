package filehandler

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/ManouchehrRasoulli/notefs/pkg/model"
)

var epoch = time.Unix(0, 0)

// ReadDirTree
// snapshot of every entry below root. symlinks are followed, a link pointing
// back to one of its ancestor directories fails the whole call.
func (h *Handler) ReadDirTree(root string) ([]model.FileNode, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, osError(err)
	}

	fi, err := os.Stat(abs)
	if err != nil {
		return nil, osError(err)
	}

	if !fi.IsDir() {
		return nil, errors.Join(model.ErrNotADirectory, fmt.Errorf("path %s", abs))
	}

	nodes, err := h.readDir(abs, []fs.FileInfo{fi})
	if err != nil {
		h.logger.Printf("ERROR handler :: got error %v on reading tree %s\n", err, abs)
		return nil, err
	}

	return nodes, nil
}

func (h *Handler) readDir(path string, ancestors []fs.FileInfo) ([]model.FileNode, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, osError(err)
	}

	nodes := make([]model.FileNode, 0, len(entries))
	for _, e := range entries {
		node, err := h.readNode(filepath.Join(path, e.Name()), ancestors)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}

	return nodes, nil
}

func (h *Handler) readNode(path string, ancestors []fs.FileInfo) (model.FileNode, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return model.FileNode{}, osError(err)
	}

	node := model.FileNode{
		Name:  filepath.Base(path),
		Path:  path,
		IsDir: fi.IsDir(),
	}
	if !node.IsDir {
		return node, nil
	}

	for _, a := range ancestors {
		if os.SameFile(a, fi) {
			return model.FileNode{}, errors.Join(model.ErrIO, fmt.Errorf("directory cycle at %s", path))
		}
	}

	children, err := h.readDir(path, append(ancestors, fi))
	if err != nil {
		return model.FileNode{}, err
	}
	node.Children = children

	return node, nil
}

func (h *Handler) GetMetadata(path string) (model.FileMetadata, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return model.FileMetadata{}, osError(err)
	}

	mod := fi.ModTime()
	if mod.Before(epoch) {
		return model.FileMetadata{}, errors.Join(model.ErrIO,
			fmt.Errorf("modification time %v of %s is before unix epoch", mod, path))
	}

	meta := model.FileMetadata{
		Name:         filepath.Base(path),
		Path:         path,
		Size:         uint64(fi.Size()),
		LastModified: uint64(mod.UnixMilli()),
		IsDir:        fi.IsDir(),
	}
	if meta.IsDir {
		meta.Kind = model.KindDirectory
	} else {
		meta.Kind = model.KindOf(meta.Name)
	}

	return meta, nil
}

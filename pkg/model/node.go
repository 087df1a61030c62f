package model

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FileNode
// one entry of a directory tree snapshot, Children is non nil iff IsDir.
type FileNode struct {
	Name     string     `json:"name"`
	Path     string     `json:"path"`
	IsDir    bool       `json:"is_dir"`
	Children []FileNode `json:"children"`
}

func (n FileNode) String() string {
	if n.IsDir {
		return fmt.Sprintf("dir :: %s (%d entries)", n.Path, len(n.Children))
	}
	return fmt.Sprintf("file :: %s", n.Path)
}

// Count returns the number of nodes in the subtree rooted at n, n included.
func (n FileNode) Count() int {
	c := 1
	for _, child := range n.Children {
		c += child.Count()
	}
	return c
}

type FileKind string

const (
	KindMarkdown  FileKind = "markdown"
	KindKanban    FileKind = "kanban"
	KindCanvas    FileKind = "canvas"
	KindDirectory FileKind = "directory"
	KindUnknown   FileKind = "unknown"
)

// KindOf classifies a file name by its extension.
func KindOf(name string) FileKind {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(name), ".")) {
	case "md", "markdown":
		return KindMarkdown
	case "kanban":
		return KindKanban
	case "canvas":
		return KindCanvas
	default:
		return KindUnknown
	}
}

// FileMetadata
// snapshot of os metadata for a single path, LastModified is milliseconds since unix epoch.
type FileMetadata struct {
	Name         string   `json:"name"`
	Path         string   `json:"path"`
	Size         uint64   `json:"size"`
	LastModified uint64   `json:"last_modified"`
	IsDir        bool     `json:"is_dir"`
	Kind         FileKind `json:"kind"`
}

func (m FileMetadata) String() string {
	return fmt.Sprintf("file meta :: name: %s, path: %s, size: %d, modified_at: %d, kind: %s",
		m.Name, m.Path, m.Size, m.LastModified, m.Kind)
}

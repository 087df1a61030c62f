package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ManouchehrRasoulli/notefs/pkg/model"
	"github.com/ManouchehrRasoulli/notefs/pkg/protocol"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	rootConfiguration.json = false
	rootConfiguration.verbose = false
	treeConfiguration.dirsOnly = false

	var out bytes.Buffer
	rootCommand.SetOut(&out)
	rootCommand.SetErr(&out)
	rootCommand.SetIn(strings.NewReader(stdin))
	rootCommand.SetArgs(args)

	err := rootCommand.Execute()
	return out.String(), err
}

func frames(t *testing.T, out string) []protocol.Data {
	t.Helper()

	var res []protocol.Data
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		var d protocol.Data
		require.NoError(t, json.Unmarshal(sc.Bytes(), &d), "frame %q", sc.Text())
		res = append(res, d)
	}
	return res
}

func TestCli_NewWriteCat(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "", "new", dir, "journal")
	require.NoError(t, err)
	path := filepath.Join(dir, "journal.md")
	require.Equal(t, path+"\n", out)

	_, err = run(t, "", "new", dir, "journal")
	require.ErrorIs(t, err, model.ErrAlreadyExists)

	_, err = run(t, "# Journal\n\nday one ✓\n", "write", path)
	require.NoError(t, err)

	out, err = run(t, "", "cat", path)
	require.NoError(t, err)
	require.Equal(t, "# Journal\n\nday one ✓\n", out)
}

func TestCli_CopyJson(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(source, []byte("a"), 0644))

	out, err := run(t, "", "--json", "cp", source, dir)
	require.NoError(t, err)

	fs := frames(t, out)
	require.Len(t, fs, 1)
	require.Equal(t, protocol.PathResult, fs[0].Type)

	var p protocol.PathPayload
	require.NoError(t, json.Unmarshal(fs[0].Payload, &p))
	require.Equal(t, filepath.Join(dir, "a_copy_1.txt"), p.Path)
}

func TestCli_TreeAndMeta(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "x.md"), []byte("x"), 0644))

	out, err := run(t, "", "tree", dir)
	require.NoError(t, err)
	require.Contains(t, out, "sub/")
	require.Contains(t, out, "  x.md")

	out, err = run(t, "", "--json", "tree", dir)
	require.NoError(t, err)
	fs := frames(t, out)
	require.Len(t, fs, 1)
	require.Equal(t, protocol.DirTree, fs[0].Type)

	var nodes []model.FileNode
	require.NoError(t, json.Unmarshal(fs[0].Payload, &nodes))
	require.Len(t, nodes, 1)
	require.Equal(t, "sub", nodes[0].Name)
	require.Len(t, nodes[0].Children, 1)

	out, err = run(t, "", "--json", "meta", filepath.Join(dir, "sub", "x.md"))
	require.NoError(t, err)
	fs = frames(t, out)
	require.Len(t, fs, 1)

	var meta model.FileMetadata
	require.NoError(t, json.Unmarshal(fs[0].Payload, &meta))
	require.Equal(t, uint64(1), meta.Size)
	require.Equal(t, model.KindMarkdown, meta.Kind)
}

func TestCli_MkdirMvRm(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "", "mkdir", dir, "projects")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "projects")+"\n", out)

	out, err = run(t, "", "mv", filepath.Join(dir, "projects"), "archive")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "archive")+"\n", out)

	_, err = run(t, "", "rm", filepath.Join(dir, "archive"))
	require.NoError(t, err)
	require.NoDirExists(t, filepath.Join(dir, "archive"))

	_, err = run(t, "", "tree", filepath.Join(dir, "archive"))
	require.ErrorIs(t, err, model.ErrNotFound)
}

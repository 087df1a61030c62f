package protocol

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/ManouchehrRasoulli/notefs/pkg/model"
	"github.com/stretchr/testify/require"
)

func TestEncoder_Frames(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)

	n := model.Notification{WatcherID: "w-1", Event: model.Event{Path: "/tmp/a.md", Op: model.Created}}
	require.NoError(t, enc.Encode(ChangeNotify, map[string]interface{}{"root": "/tmp"}, NewChangeNotify(n)))
	require.NoError(t, enc.Encode(DirTree, nil, []model.FileNode{{Name: "d", Path: "/tmp/d", IsDir: true, Children: []model.FileNode{}}}))

	sc := bufio.NewScanner(&buf)

	require.True(t, sc.Scan())
	var first Data
	require.NoError(t, json.Unmarshal(sc.Bytes(), &first))
	require.Equal(t, uint64(1), first.Sec)
	require.Equal(t, ChangeNotify, first.Type)
	require.Equal(t, "/tmp", first.Heading["root"])
	require.JSONEq(t, `{"id":"w-1","op":"CREATED","path":"/tmp/a.md"}`, string(first.Payload))

	require.True(t, sc.Scan())
	var second Data
	require.NoError(t, json.Unmarshal(sc.Bytes(), &second))
	require.Equal(t, uint64(2), second.Sec)
	require.JSONEq(t, `[{"name":"d","path":"/tmp/d","is_dir":true,"children":[]}]`, string(second.Payload))

	require.False(t, sc.Scan())
}

func TestEncoder_MarshalFailure(t *testing.T) {
	enc := NewEncoder(&bytes.Buffer{})
	err := enc.Encode(Failure, nil, make(chan int))
	require.ErrorIs(t, err, ErrMarshalFrame)
}

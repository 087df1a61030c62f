package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ManouchehrRasoulli/notefs/pkg/model"
)

type Type int64

const (
	ChangeNotify Type = iota + 1
	DirTree
	FileMeta
	PathResult
	Failure
)

const Delimiter byte = '\n'

var (
	ErrMarshalFrame      = errors.New("failed to marshal frame")
	ErrWriteFrame        = errors.New("failed to write frame")
	ErrInconsistentWrite = errors.New("inconsistent data write: bytes written mismatch")
)

/*
	every cli answer written with --json is one frame per line.

	tree       --> DirTree      { p: [FileNode...] }
	meta       --> FileMeta     { p: FileMetadata }
	new/cp/mv  --> PathResult   { p: PathPayload }
	watch      --> ChangeNotify { p: ChangeNotifyPayload } ... until interrupted
	any error  --> Failure      { p: FailurePayload }
*/

// Data
// general output frame
type Data struct {
	Sec     uint64                 `json:"sc"`
	Time    time.Time              `json:"t"`
	Type    Type                   `json:"tp"`
	Heading map[string]interface{} `json:"h,omitempty"`
	Payload json.RawMessage        `json:"p"`
}

type ChangeNotifyPayload struct {
	WatcherID string `json:"id"`
	Op        string `json:"op"`
	Path      string `json:"path"`
}

type PathPayload struct {
	Path string `json:"path"`
}

type FailurePayload struct {
	Msg string `json:"msg"`
}

func NewChangeNotify(n model.Notification) ChangeNotifyPayload {
	return ChangeNotifyPayload{
		WatcherID: n.WatcherID,
		Op:        n.Op.String(),
		Path:      n.Path,
	}
}

// Encoder writes delimited frames with an increasing sequence number.
type Encoder struct {
	w   io.Writer
	sec uint64
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

func (e *Encoder) Encode(tp Type, heading map[string]interface{}, payload interface{}) error {
	p, err := json.Marshal(payload)
	if err != nil {
		return errors.Join(ErrMarshalFrame, err)
	}

	e.sec++
	data, err := json.Marshal(Data{
		Sec:     e.sec,
		Time:    time.Now(),
		Type:    tp,
		Heading: heading,
		Payload: p,
	})
	if err != nil {
		return errors.Join(ErrMarshalFrame, err)
	}
	data = append(data, Delimiter)

	n, err := e.w.Write(data)
	if err != nil {
		return errors.Join(ErrWriteFrame, err)
	}
	if n != len(data) {
		return errors.Join(ErrInconsistentWrite, fmt.Errorf("%d != %d", n, len(data)))
	}

	return nil
}

package internal

import (
	"github.com/ManouchehrRasoulli/notefs/pkg/model"
	"github.com/fsnotify/fsnotify"
)

// classify
// map a raw fsnotify operation onto the notification kinds. rename is
// reported for the old name only and becomes a delete of that name, anything
// unknown is dropped.
func classify(op fsnotify.Op) (model.Op, bool) {
	switch {
	case op.Has(fsnotify.Create):
		return model.Created, true
	case op.Has(fsnotify.Remove), op.Has(fsnotify.Rename):
		return model.Deleted, true
	case op.Has(fsnotify.Write), op.Has(fsnotify.Chmod):
		return model.Changed, true
	default:
		return 0, false
	}
}

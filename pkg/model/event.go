package model

import (
	"fmt"
	"strings"
)

type Op uint32

const (
	Created Op = 1 << iota
	Deleted
	Changed
)

func (op Op) String() string {
	var b strings.Builder
	if op.Has(Created) {
		b.WriteString("|CREATED")
	}
	if op.Has(Deleted) {
		b.WriteString("|DELETED")
	}
	if op.Has(Changed) {
		b.WriteString("|CHANGED")
	}
	if b.Len() == 0 {
		return "[no events]"
	}
	return b.String()[1:]
}

func (op Op) Has(h Op) bool { return op&h == h }

// Event
// a single classified change reported by a recursive watch.
type Event struct {
	Path string
	Op   Op
}

func (e Event) String() string {
	return fmt.Sprintf("%-8s %q", e.Op.String(), e.Path)
}

// Notification
// an event tagged with the id of the watcher that produced it.
type Notification struct {
	WatcherID string
	Event
}

func (n Notification) String() string {
	return fmt.Sprintf("[%s] %s", n.WatcherID, n.Event)
}

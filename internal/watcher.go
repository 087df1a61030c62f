package internal

import (
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ManouchehrRasoulli/notefs/pkg/model"
	"github.com/fsnotify/fsnotify"
)

type Option func(w *Watcher)

func WithCallbackFunction(hook func(e model.Event, err error)) Option {
	return func(w *Watcher) {
		w.hooks = append(w.hooks, hook)
	}
}

func WithBufferSize(size uint) Option {
	return func(w *Watcher) {
		w.bufferSize = size
	}
}

func WithLogger(lg *log.Logger) Option {
	return func(w *Watcher) {
		if lg != nil {
			w.logger = lg
		}
	}
}

type Watcher struct {
	fw         *fsnotify.Watcher
	closed     chan struct{}
	done       chan struct{}
	once       sync.Once
	hooks      []func(e model.Event, err error)
	bufferSize uint
	path       string
	logger     *log.Logger
}

func NewWatcher(path string, options ...Option) (*Watcher, error) {
	w := Watcher{
		closed: make(chan struct{}),
		done:   make(chan struct{}),
		hooks:  make([]func(model.Event, error), 0),
		path:   path,
		logger: log.New(io.Discard, "", 0),
	}

	for _, op := range options {
		op(&w)
	}

	var err error
	if w.bufferSize > 0 {
		w.fw, err = fsnotify.NewBufferedWatcher(w.bufferSize)
	} else {
		w.fw, err = fsnotify.NewWatcher()
	}
	if err != nil {
		return nil, err
	}

	fi, err := os.Stat(path)
	if err == nil {
		if fi.IsDir() {
			err = w.watchPath(path)
		} else {
			err = w.fw.Add(path)
		}
	}
	if err != nil {
		_ = w.fw.Close()
		return nil, err
	}

	w.logger.Printf("watcher :: watching %s (%d paths)\n", path, len(w.fw.WatchList()))
	go w.run()

	return &w, nil
}

func (w *Watcher) Path() string {
	return w.path
}

// watchPath adds path and every directory below it, symlinks are not followed.
func (w *Watcher) watchPath(path string) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		return err
	}

	for _, e := range entries {
		if e.IsDir() {
			err = w.watchPath(filepath.Join(path, e.Name()))
			if err != nil {
				return err
			}
		}
	}

	return w.fw.Add(path)
}

func (w *Watcher) handle(e fsnotify.Event) {
	if len(e.Name) == 0 { // no event !
		return
	}

	if e.Has(fsnotify.Rename) {
		w.unwatch(e.Name)
	}

	if e.Has(fsnotify.Create) {
		fi, err := os.Lstat(e.Name)
		if err == nil && fi.IsDir() {
			if err = w.watchPath(e.Name); err != nil {
				w.logger.Printf("ERROR watcher :: got error %v on watching new directory %s\n", err, e.Name)
			}
		}
	}

	op, ok := classify(e.Op)
	if !ok {
		return
	}

	// the old name of a move, unless something already took its place
	if e.Has(fsnotify.Rename) && !e.Has(fsnotify.Create) {
		if _, err := os.Lstat(e.Name); err == nil {
			return
		}
	}

	w.dispatch(model.Event{Path: e.Name, Op: op}, nil)
}

// unwatch
// drop the watches of path and of every directory below it. a moved directory
// keeps its kernel watch under the old name, so it is removed here and added
// again under the new name when the matching create event arrives.
func (w *Watcher) unwatch(path string) {
	prefix := path + string(filepath.Separator)
	for _, p := range w.fw.WatchList() {
		if p != path && !strings.HasPrefix(p, prefix) {
			continue
		}
		err := w.fw.Remove(p)
		if err != nil && !errors.Is(err, fsnotify.ErrNonExistentWatch) {
			w.logger.Printf("ERROR watcher :: got error %v on removing watch %s\n", err, p)
		}
	}
}

func (w *Watcher) dispatch(e model.Event, err error) {
	for _, hook := range w.hooks {
		hook(e, err)
	}
}

func (w *Watcher) run() {
	defer close(w.done)

	for {
		select {
		case e, ok := <-w.fw.Events:
			if !ok {
				return
			}
			w.handle(e)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.logger.Printf("ERROR watcher :: got error %v on %s\n", err, w.path)
			w.dispatch(model.Event{}, err)
		case <-w.closed:
			return
		}
	}
}

// Close releases the os watch, no callback runs after it returns.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closed)
		err = w.fw.Close()
		<-w.done
		w.logger.Printf("watcher :: closed %s\n", w.path)
	})
	return err
}

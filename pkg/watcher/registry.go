// Package watcher keeps the set of active recursive watches, each one
// identified by an opaque id, and multiplexes their notifications to
// subscribers.
package watcher

import (
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"sort"
	"sync"

	"github.com/ManouchehrRasoulli/notefs/internal"
	"github.com/ManouchehrRasoulli/notefs/pkg/model"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

const defaultSubscriberBuffer = 64

type Option func(r *Registry)

func WithLogger(lg *log.Logger) Option {
	return func(r *Registry) {
		if lg != nil {
			r.logger = lg
		}
	}
}

// WithBufferSize sets the channel size handed to each subscriber.
func WithBufferSize(size int) Option {
	return func(r *Registry) {
		if size > 0 {
			r.bufferSize = size
		}
	}
}

// WithIgnorePatterns drops notifications whose root relative path or base
// name matches one of the doublestar patterns.
func WithIgnorePatterns(patterns ...string) Option {
	return func(r *Registry) {
		r.ignore = append(r.ignore, patterns...)
	}
}

func WithMetrics(reg prometheus.Registerer) Option {
	return func(r *Registry) {
		r.registerer = reg
	}
}

type Registry struct {
	mu      sync.Mutex
	watches map[string]*internal.Watcher

	subMu   sync.RWMutex
	subs    map[uint64]chan model.Notification
	nextSub uint64

	bufferSize int
	ignore     []string
	registerer prometheus.Registerer
	metrics    *metrics
	logger     *log.Logger
}

func NewRegistry(options ...Option) (*Registry, error) {
	r := Registry{
		watches:    make(map[string]*internal.Watcher),
		subs:       make(map[uint64]chan model.Notification),
		bufferSize: defaultSubscriberBuffer,
		logger:     log.New(io.Discard, "", 0),
	}

	for _, op := range options {
		op(&r)
	}

	for _, p := range r.ignore {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid ignore pattern %q", p)
		}
	}

	m, err := newMetrics(r.registerer)
	if err != nil {
		return nil, err
	}
	r.metrics = m

	return &r, nil
}

// Start
// install a recursive watch on path and return its id. the os watch is set up
// before the registry lock is taken, the lock only covers the insert.
func (r *Registry) Start(path string) (string, error) {
	id := uuid.NewString()

	root, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Join(model.ErrWatchInstallFailed, err)
	}

	w, err := internal.NewWatcher(root,
		internal.WithLogger(r.logger),
		internal.WithCallbackFunction(r.hook(id, root)))
	if err != nil {
		r.logger.Printf("ERROR registry :: got error %v on watching %s\n", err, root)
		return "", errors.Join(model.ErrWatchInstallFailed, err)
	}

	r.mu.Lock()
	r.watches[id] = w
	r.mu.Unlock()

	r.metrics.active.Inc()
	r.logger.Printf("registry :: started watcher %s on %s\n", id, root)
	return id, nil
}

// Stop
// remove the watch registered under id and release its os resources before
// returning, nothing tagged with id is published afterwards.
func (r *Registry) Stop(id string) error {
	r.mu.Lock()
	w, ok := r.watches[id]
	if ok {
		delete(r.watches, id)
	}
	r.mu.Unlock()

	if !ok {
		return errors.Join(model.ErrNotFound, fmt.Errorf("watcher %s", id))
	}

	r.metrics.active.Dec()
	if err := w.Close(); err != nil {
		r.logger.Printf("ERROR registry :: got error %v on closing watcher %s\n", err, id)
	}

	r.logger.Printf("registry :: stopped watcher %s\n", id)
	return nil
}

// Watching returns the ids of the active watches, sorted.
func (r *Registry) Watching() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]string, 0, len(r.watches))
	for id := range r.watches {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Subscribe
// returns a channel carrying notifications of every watch together with a
// cancel function closing it. a subscriber that falls behind loses
// notifications, nothing is replayed.
func (r *Registry) Subscribe() (<-chan model.Notification, func()) {
	ch := make(chan model.Notification, r.bufferSize)

	r.subMu.Lock()
	key := r.nextSub
	r.nextSub++
	r.subs[key] = ch
	r.subMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			r.subMu.Lock()
			if _, ok := r.subs[key]; ok {
				delete(r.subs, key)
				close(ch)
			}
			r.subMu.Unlock()
		})
	}
}

// Close stops every remaining watch, closes all subscriber channels and
// unregisters the metrics.
func (r *Registry) Close() error {
	var errs []error
	for _, id := range r.Watching() {
		if err := r.Stop(id); err != nil && !errors.Is(err, model.ErrNotFound) {
			errs = append(errs, err)
		}
	}

	r.subMu.Lock()
	for key, ch := range r.subs {
		delete(r.subs, key)
		close(ch)
	}
	r.subMu.Unlock()

	r.metrics.unregister()
	return errors.Join(errs...)
}

func (r *Registry) hook(id, root string) func(e model.Event, err error) {
	return func(e model.Event, err error) {
		if err != nil {
			r.logger.Printf("ERROR registry :: watcher %s got error %v\n", id, err)
			return
		}

		if r.ignored(root, e.Path) {
			return
		}

		r.publish(model.Notification{WatcherID: id, Event: e})
	}
}

func (r *Registry) ignored(root, path string) bool {
	if len(r.ignore) == 0 {
		return false
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)
	base := filepath.Base(path)

	for _, p := range r.ignore {
		if match, _ := doublestar.Match(p, rel); match {
			return true
		}
		if match, _ := doublestar.Match(p, base); match {
			return true
		}
	}
	return false
}

func (r *Registry) publish(n model.Notification) {
	r.subMu.RLock()
	defer r.subMu.RUnlock()

	if len(r.subs) == 0 {
		r.metrics.dropped.Inc()
		return
	}

	for _, ch := range r.subs {
		select {
		case ch <- n:
			r.metrics.publish(n.Op)
		default:
			r.metrics.dropped.Inc()
			r.logger.Printf("registry :: subscriber full, dropped %s\n", n)
		}
	}
}

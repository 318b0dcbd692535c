package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/richtext/logging"
)

// Watcher reloads one settings file when it changes on disk and delivers
// the parsed result. It watches the file's directory rather than the file
// itself because editors commonly replace files by rename, which would
// silently drop a direct watch.
type Watcher struct {
	path     string
	fsw      *fsnotify.Watcher
	changes  chan *Settings
	errs     chan error
	debounce time.Duration
	logger   *logging.Logger

	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
	closeErr  error
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets how long the file must stay quiet before a reload
// fires. Rapid successive writes coalesce into one delivery.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithBuffer sets the capacity of the change and error channels. When a
// channel is full the delivery is dropped and logged.
func WithBuffer(n int) WatcherOption {
	return func(w *Watcher) {
		if n > 0 {
			w.changes = make(chan *Settings, n)
			w.errs = make(chan error, n)
		}
	}
}

// WithWatchLogger sets the watcher's logger.
func WithWatchLogger(logger *logging.Logger) WatcherOption {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// NewWatcher starts watching the settings file at path. The initial load is
// the caller's job; the watcher only reports subsequent changes.
func NewWatcher(path string, opts ...WatcherOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolving %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: creating watcher: %w", err)
	}

	w := &Watcher{
		path:     abs,
		fsw:      fsw,
		changes:  make(chan *Settings, 4),
		errs:     make(chan error, 4),
		debounce: 100 * time.Millisecond,
		logger:   logging.NullLogger,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("config: watching %s: %w", filepath.Dir(abs), err)
	}

	w.wg.Add(1)
	go w.processLoop()
	return w, nil
}

// Path returns the watched file path.
func (w *Watcher) Path() string {
	return w.path
}

// Changes delivers freshly loaded settings after each debounced file
// change. The channel closes when the watcher closes.
func (w *Watcher) Changes() <-chan *Settings {
	return w.changes
}

// Errors delivers reload failures, such as parse errors in the rewritten
// file. The channel closes when the watcher closes.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Close stops watching and closes both delivery channels. Safe to call more
// than once.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		close(w.done)
		w.closeErr = w.fsw.Close()
		w.wg.Wait()
		close(w.changes)
		close(w.errs)
	})
	return w.closeErr
}

func (w *Watcher) processLoop() {
	defer w.wg.Done()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.sendError(err)

		case <-fire:
			fire = nil
			w.reload()
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Base(ev.Name) != filepath.Base(w.path) {
		return false
	}
	return ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename)
}

func (w *Watcher) reload() {
	s, err := Load(w.path)
	if err != nil {
		w.logger.Warn("config: reloading %s: %v", w.path, err)
		w.sendError(err)
		return
	}
	if s == nil {
		w.logger.Debug("config: %s removed, keeping current settings", w.path)
		return
	}

	select {
	case w.changes <- s:
	default:
		w.logger.Warn("config: change channel full, dropping reload of %s", w.path)
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.errs <- err:
	default:
		w.logger.Warn("config: error channel full, dropping: %v", err)
	}
}

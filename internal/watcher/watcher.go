// Package watcher reloads sprites when the asset directory changes.
package watcher

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/emberlight/cigbat/internal/config"
)

// DefaultDebounce is how long a path must stay quiet before a change fires.
const DefaultDebounce = 100 * time.Millisecond

// Watcher watches one directory and calls onChange for matching files.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	dir       string
	match     func(name string) bool
	onChange  func(path string)
	delay     time.Duration

	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	debounce   map[string]*time.Timer
	debounceMu sync.Mutex
}

// New creates a watcher for dir. match filters base file names; onChange
// runs on a timer goroutine after each debounced change.
func New(dir string, match func(name string) bool, onChange func(path string)) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		fsWatcher: fsWatcher,
		dir:       dir,
		match:     match,
		onChange:  onChange,
		delay:     DefaultDebounce,
		done:      make(chan struct{}),
		debounce:  make(map[string]*time.Timer),
	}, nil
}

// Start begins watching. The directory must exist.
func (w *Watcher) Start() error {
	if err := w.fsWatcher.Add(w.dir); err != nil {
		return err
	}
	log.Printf("[watcher] Watching %s", w.dir)

	w.wg.Add(1)
	go w.processEvents()
	return nil
}

// Stop stops the watcher and cancels pending changes.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		_ = w.fsWatcher.Close()
		w.wg.Wait()

		w.debounceMu.Lock()
		for path, timer := range w.debounce {
			timer.Stop()
			delete(w.debounce, path)
		}
		w.debounceMu.Unlock()
	})
}

func (w *Watcher) processEvents() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if config.Debug() {
				log.Printf("[watcher] fsnotify: %s %s", event.Op, event.Name)
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Printf("[watcher] Error: %v", err)
		}
	}
}

// handleEvent accepts writes, creates, renames and removes. Atomic saves
// show up as a rename onto the target.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return
	}
	if w.match != nil && !w.match(filepath.Base(event.Name)) {
		return
	}

	path := event.Name
	w.debounceEvent(path, func() {
		log.Printf("[watcher] Changed: %s", filepath.Base(path))
		w.onChange(path)
	})
}

// debounceEvent debounces events for the same path.
func (w *Watcher) debounceEvent(path string, fn func()) {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	select {
	case <-w.done:
		return
	default:
	}

	if timer, ok := w.debounce[path]; ok {
		timer.Stop()
	}

	w.debounce[path] = time.AfterFunc(w.delay, func() {
		w.debounceMu.Lock()
		delete(w.debounce, path)
		w.debounceMu.Unlock()
		fn()
	})
}

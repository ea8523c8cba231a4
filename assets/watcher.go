package assets

import (
	"errors"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"gl-scene/core"
)

// Watcher reports files that changed under a set of watched directories.
// Its goroutine only forwards names; the render thread calls Drain between
// frames and acts on them itself.
type Watcher struct {
	fsnotify *fsnotify.Watcher
	changed  chan string
	done     chan struct{}
	wg       sync.WaitGroup

	mu       sync.Mutex
	isClosed bool
}

// NewWatcher watches dirs (non-recursively).
func NewWatcher(dirs ...string) (*Watcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fsnotify: fsWatch,
		changed:  make(chan string, 64),
		done:     make(chan struct{}),
	}
	for _, dir := range dirs {
		if err := fsWatch.Add(dir); err != nil {
			fsWatch.Close()
			return nil, err
		}
	}
	w.wg.Add(1)
	go w.start()
	return w, nil
}

func (w *Watcher) start() {
	defer w.wg.Done()
	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			// Editors often save by rename+create, so treat create as a write.
			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			select {
			case w.changed <- filepath.Clean(e.Name):
			default:
				// the render thread is behind; it will reload on the next event
			}
		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogWarn("asset watcher: %v", err)
		case <-w.done:
			return
		}
	}
}

// Drain returns the distinct files changed since the last call without
// blocking.
func (w *Watcher) Drain() []string {
	var out []string
	seen := make(map[string]bool)
	for {
		select {
		case name := <-w.changed:
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		default:
			return out
		}
	}
}

// Close stops the watcher goroutine.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.isClosed {
		return errors.New("asset watcher already closed")
	}
	w.isClosed = true
	close(w.done)
	err := w.fsnotify.Close()
	w.wg.Wait()
	return err
}

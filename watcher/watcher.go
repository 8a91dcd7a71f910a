package watcher

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"animlists/sample"
)

// Event is sent when the catalog file changes
type Event struct {
	Path  string
	Items []sample.Item
	Err   error
}

// Watcher reparses a catalog file whenever it is written
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	path      string
	Events    chan Event
	done      chan struct{}
}

// New creates a Watcher for the catalog at path
func New(path string) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(err, "resolve catalog path")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create fsnotify watcher")
	}

	// Watch the directory so editors that replace the file on save
	// (write temp + rename) are still picked up.
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, errors.Wrapf(err, "watch %s", filepath.Dir(absPath))
	}

	return &Watcher{
		fsWatcher: fsw,
		path:      absPath,
		Events:    make(chan Event, 10),
		done:      make(chan struct{}),
	}, nil
}

// Path is the absolute catalog path being watched
func (w *Watcher) Path() string {
	return w.path
}

// Start begins watching for file changes
func (w *Watcher) Start() {
	go w.run()
}

// Stop stops the watcher and closes Events
func (w *Watcher) Stop() {
	close(w.done)
	w.fsWatcher.Close()
}

func (w *Watcher) run() {
	defer close(w.Events)
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			items, err := sample.ParseFile(w.path)
			select {
			case w.Events <- Event{Path: w.path, Items: items, Err: err}:
			case <-w.done:
				return
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}

// Package watcher provides debounced file change notifications, used
// by the editor to reload a model when its source file is rewritten.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches a single file and triggers a callback after a
// debounce interval. Exporters often write STL files in several
// bursts; debouncing avoids reloading a half-written file.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	path     string
	callback func(string)
	debounce time.Duration
	timer    *time.Timer
	errs     chan error
}

// NewFileWatcher creates a watcher with the given debounce interval
func NewFileWatcher(debounce time.Duration) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	return &FileWatcher{
		watcher:  w,
		debounce: debounce,
		errs:     make(chan error, 1),
	}, nil
}

// Watch registers the file to watch and the change callback
func (fw *FileWatcher) Watch(path string, callback func(string)) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving path %s: %w", path, err)
	}
	if err := fw.watcher.Add(absPath); err != nil {
		return fmt.Errorf("watching %s: %w", absPath, err)
	}

	fw.mu.Lock()
	fw.path = absPath
	fw.callback = callback
	fw.mu.Unlock()

	return nil
}

// Start begins delivering change events in a background goroutine
func (fw *FileWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-fw.watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					fw.handleChange(event.Name)
				}

			case err, ok := <-fw.watcher.Errors:
				if !ok {
					return
				}
				select {
				case fw.errs <- err:
				default:
				}
			}
		}
	}()
}

// Errors exposes watcher errors for the owner to log
func (fw *FileWatcher) Errors() <-chan error {
	return fw.errs
}

// handleChange schedules the debounced callback for a change event
func (fw *FileWatcher) handleChange(path string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if path != fw.path || fw.callback == nil {
		return
	}

	if fw.timer != nil {
		fw.timer.Stop()
	}
	callback := fw.callback
	fw.timer = time.AfterFunc(fw.debounce, func() {
		callback(path)
	})
}

// Close stops the watcher
func (fw *FileWatcher) Close() error {
	fw.mu.Lock()
	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.mu.Unlock()
	return fw.watcher.Close()
}

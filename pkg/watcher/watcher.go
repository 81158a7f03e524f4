// Package watcher reports changes to files on disk, debounced so a burst of
// writes from an image editor triggers a single reload.
package watcher

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is long enough to cover an editor's save sequence
const DefaultDebounce = 300 * time.Millisecond

// FileWatcher watches individual files through their parent directories.
// Watching the directory keeps the watch alive when an editor replaces the
// file by renaming a temporary copy over it.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	files    map[string]func(string)
	dirs     map[string]int
	timers   map[string]*time.Timer
	debounce time.Duration
	done     chan struct{}
	closed   sync.Once
	logger   *log.Logger
}

// New creates a watcher; its event loop runs until Close
func New(debounce time.Duration) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	fw := &FileWatcher{
		watcher:  w,
		files:    make(map[string]func(string)),
		dirs:     make(map[string]int),
		timers:   make(map[string]*time.Timer),
		debounce: debounce,
		done:     make(chan struct{}),
		logger:   log.Default(),
	}
	go fw.loop()
	return fw, nil
}

// Watch calls onChange with the absolute path after file is written,
// created or renamed into place.
func (fw *FileWatcher) Watch(file string, onChange func(string)) error {
	absPath, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", file, err)
	}
	dir := filepath.Dir(absPath)

	fw.mu.Lock()
	defer fw.mu.Unlock()

	if _, ok := fw.files[absPath]; !ok {
		if fw.dirs[dir] == 0 {
			if err := fw.watcher.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
		}
		fw.dirs[dir]++
	}
	fw.files[absPath] = onChange
	return nil
}

// Unwatch stops reporting changes to file
func (fw *FileWatcher) Unwatch(file string) error {
	absPath, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", file, err)
	}
	dir := filepath.Dir(absPath)

	fw.mu.Lock()
	defer fw.mu.Unlock()

	if _, ok := fw.files[absPath]; !ok {
		return nil
	}
	delete(fw.files, absPath)
	if timer, ok := fw.timers[absPath]; ok {
		timer.Stop()
		delete(fw.timers, absPath)
	}

	fw.dirs[dir]--
	if fw.dirs[dir] > 0 {
		return nil
	}
	delete(fw.dirs, dir)
	return fw.watcher.Remove(dir)
}

// Watched reports whether file currently has a callback
func (fw *FileWatcher) Watched(file string) bool {
	absPath, err := filepath.Abs(file)
	if err != nil {
		return false
	}
	fw.mu.Lock()
	defer fw.mu.Unlock()
	_, ok := fw.files[absPath]
	return ok
}

func (fw *FileWatcher) loop() {
	for {
		select {
		case <-fw.done:
			return
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				fw.schedule(filepath.Clean(event.Name))
			}
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.Printf("Watcher error: %v", err)
		}
	}
}

// schedule restarts the debounce timer for a watched file
func (fw *FileWatcher) schedule(path string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	onChange, ok := fw.files[path]
	if !ok {
		return
	}
	if timer, ok := fw.timers[path]; ok {
		timer.Stop()
	}
	fw.timers[path] = time.AfterFunc(fw.debounce, func() {
		select {
		case <-fw.done:
			return
		default:
		}
		onChange(path)
	})
}

// Close stops the event loop and pending callbacks. Calling it again is a no-op.
func (fw *FileWatcher) Close() error {
	var err error
	fw.closed.Do(func() {
		fw.mu.Lock()
		close(fw.done)
		for path, timer := range fw.timers {
			timer.Stop()
			delete(fw.timers, path)
		}
		fw.mu.Unlock()

		err = fw.watcher.Close()
	})
	return err
}

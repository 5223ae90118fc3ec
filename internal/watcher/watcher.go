// Package watcher reports when watched files change on disk. The TUI uses it
// to reload config.toml while running.
package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// fingerprint identifies one version of a file. A missing file has the zero
// fingerprint.
type fingerprint struct {
	size    int64
	modTime int64
}

type Watcher struct {
	files        []string
	seen         map[string]fingerprint
	mu           sync.Mutex
	pollInterval time.Duration
	onChange     func(path string)
	stop         chan struct{}
	wg           sync.WaitGroup
}

// New watches files and calls onChange once per observed version change.
// onChange runs on a watcher goroutine.
func New(files []string, pollInterval time.Duration, onChange func(path string)) *Watcher {
	w := &Watcher{
		files:        files,
		seen:         make(map[string]fingerprint),
		pollInterval: pollInterval,
		onChange:     onChange,
		stop:         make(chan struct{}),
	}
	for _, f := range files {
		w.seen[f] = stat(f)
	}
	return w
}

func stat(path string) fingerprint {
	info, err := os.Stat(path)
	if err != nil {
		return fingerprint{}
	}
	return fingerprint{size: info.Size(), modTime: info.ModTime().UnixNano()}
}

// Start begins watching with fsnotify + polling fallback.
func (w *Watcher) Start() error {
	fsw, err := fsnotify.NewWatcher()
	if err == nil {
		// Watch parent dirs: editors often replace the file by rename.
		dirs := make(map[string]bool)
		for _, f := range w.files {
			dirs[filepath.Dir(f)] = true
		}
		for d := range dirs {
			_ = fsw.Add(d)
		}

		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			defer fsw.Close()
			for {
				select {
				case event, ok := <-fsw.Events:
					if !ok {
						return
					}
					if w.watched(event.Name) {
						w.check(event.Name)
					}
				case _, ok := <-fsw.Errors:
					if !ok {
						return
					}
				case <-w.stop:
					return
				}
			}
		}()
	}

	// Polling fallback (always runs as safety net)
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				for _, f := range w.files {
					w.check(f)
				}
			case <-w.stop:
				return
			}
		}
	}()

	return nil
}

// Stop signals goroutines to exit and waits for them to finish.
func (w *Watcher) Stop() {
	close(w.stop)
	w.wg.Wait()
}

func (w *Watcher) watched(path string) bool {
	clean := filepath.Clean(path)
	for _, f := range w.files {
		if filepath.Clean(f) == clean {
			return true
		}
	}
	return false
}

// check fires onChange when path differs from the last version seen. Removal
// is recorded but not reported; the next write is.
func (w *Watcher) check(path string) {
	for _, f := range w.files {
		if filepath.Clean(f) == filepath.Clean(path) {
			path = f
			break
		}
	}
	fp := stat(path)

	w.mu.Lock()
	prev := w.seen[path]
	changed := fp != prev
	w.seen[path] = fp
	w.mu.Unlock()

	if changed && fp != (fingerprint{}) && w.onChange != nil {
		w.onChange(path)
	}
}

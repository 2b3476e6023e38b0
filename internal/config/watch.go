package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Reload is delivered by a Watcher after the watched file changed.
// Exactly one of Config and Err is meaningful.
type Reload struct {
	Config DinoConfig
	Err    error
}

// Watcher reloads a config file whenever it changes on disk.
// The parent directory is watched so editors that replace the file
// (write to temp + rename) are still picked up.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	Reloads chan Reload
	closeCh chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

// debounce collapses the burst of events a single save produces.
const debounce = 100 * time.Millisecond

// NewWatcher starts watching path.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: cannot resolve %s: %w", path, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, fmt.Errorf("config: cannot watch %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: cannot create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("config: cannot watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:    abs,
		watcher: fw,
		Reloads: make(chan Reload, 4),
		closeCh: make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Close stops the watcher and closes the Reloads channel.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		w.wg.Wait()
		close(w.Reloads)
	})
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()

	// Trailing debounce: load once the file has been quiet for a moment.
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(debounce)
		case <-timer.C:
			w.emit(w.load())
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.emit(Reload{Err: fmt.Errorf("config: watcher error: %w", err)})
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) load() Reload {
	data, err := os.ReadFile(w.path)
	if err != nil {
		return Reload{Err: fmt.Errorf("config: failed to read %s: %w", w.path, err)}
	}
	cfg, err := Parse(data)
	if err != nil {
		return Reload{Err: fmt.Errorf("config: failed to parse %s: %w", w.path, err)}
	}
	return Reload{Config: cfg}
}

// emit drops the reload if nobody is draining the channel.
func (w *Watcher) emit(r Reload) {
	select {
	case w.Reloads <- r:
	case <-w.closeCh:
	default:
	}
}

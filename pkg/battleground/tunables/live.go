package tunables

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/atomic"
)

// Live is a Source backed by a file that is reloaded when it changes. A
// reload that fails to parse keeps the previous values.
type Live struct {
	path   string
	logger *slog.Logger

	mu      sync.RWMutex
	values  Values
	version *atomic.Uint64

	watcher *fsnotify.Watcher
	done    chan struct{}
	wg      sync.WaitGroup
	closed  *atomic.Bool
}

// NewLive loads path and returns a Live source. Call Watch to follow edits.
func NewLive(path string, logger *slog.Logger) (*Live, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	values, err := Load(path)
	if err != nil {
		return nil, err
	}

	return &Live{
		path:    path,
		logger:  logger,
		values:  values,
		version: atomic.NewUint64(0),
		closed:  atomic.NewBool(false),
	}, nil
}

func (l *Live) Values() Values {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.values
}

func (l *Live) Version() uint64 {
	return l.version.Load()
}

// Reload re-reads the file. On failure the previous values stay in place.
func (l *Live) Reload() error {
	values, err := Load(l.path)
	if err != nil {
		l.logger.Warn("Tunables reload rejected", "path", l.path, "error", err)
		return err
	}

	l.mu.Lock()
	changed := values != l.values
	l.values = values
	l.mu.Unlock()

	if changed {
		v := l.version.Inc()
		l.logger.Debug("Tunables reloaded", "path", l.path, "version", v)
	}
	return nil
}

// Watch starts following the file. The parent directory is watched so
// editors that replace the file on save are picked up.
func (l *Live) Watch() error {
	if l.watcher != nil {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("tunables: watch: %w", err)
	}
	if err := watcher.Add(filepath.Dir(l.path)); err != nil {
		watcher.Close()
		return fmt.Errorf("tunables: watch %s: %w", l.path, err)
	}

	l.watcher = watcher
	l.done = make(chan struct{})

	target := filepath.Clean(l.path)
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		for {
			select {
			case <-l.done:
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				_ = l.Reload()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				l.logger.Warn("Tunables watcher error", "error", err)
			}
		}
	}()

	return nil
}

// Close stops watching and waits for the watcher goroutine to exit.
func (l *Live) Close() error {
	if !l.closed.CompareAndSwap(false, true) {
		return nil
	}
	if l.watcher == nil {
		return nil
	}
	close(l.done)
	err := l.watcher.Close()
	l.wg.Wait()
	return err
}

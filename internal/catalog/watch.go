package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/muurk/odintv/internal/logging"
	"go.uber.org/zap"
)

// DefaultDebounce coalesces editor write bursts into one reload
const DefaultDebounce = 150 * time.Millisecond

// Update is emitted by Watch after the catalog file changes.
// Err is set when the new file is invalid; the previous catalog should stay in use.
type Update struct {
	Catalog *Catalog
	Source  Source
	Err     error
}

// Watch reloads the catalog at path whenever it is written, created, renamed
// or removed, until ctx is cancelled. Removing the file falls back to the
// built-in catalog. The parent directory is watched rather than the file so
// atomic saves (write temp + rename) are seen.
//
// Updates are dropped if the consumer is not keeping up; the next change
// delivers the latest state anyway.
func Watch(ctx context.Context, path string, debounce time.Duration) (<-chan Update, error) {
	if path == "" {
		return nil, errors.New("catalog: watch path is empty")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("catalog: ensure directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("catalog: create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("catalog: watch %s: %w", dir, err)
	}

	updates := make(chan Update, 4)
	target := filepath.Clean(path)

	go func() {
		defer close(updates)
		defer watcher.Close()

		var (
			timer   *time.Timer
			pending <-chan time.Time
		)
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logging.Warn("Catalog watcher error", zap.Error(err))
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				logging.Debug("Catalog file event", zap.String("op", ev.Op.String()))
				if timer != nil {
					timer.Stop()
				}
				timer = time.NewTimer(debounce)
				pending = timer.C
			case <-pending:
				pending = nil
				select {
				case updates <- reload(path):
				default:
				}
			}
		}
	}()

	return updates, nil
}

func reload(path string) Update {
	c, source, err := Load(path)
	if err != nil {
		logging.Warn("Catalog reload failed", zap.String("path", path), zap.Error(err))
		return Update{Source: source, Err: err}
	}
	logging.Info("Catalog reloaded",
		zap.String("path", path),
		zap.String("source", string(source)),
		zap.Int("sites", c.Len()))
	return Update{Catalog: c, Source: source}
}

package mockdata

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/SnookieTejas/launch-access-forecast/internal/logger"
)

// Watcher reloads a data override file whenever it changes on disk.
type Watcher struct {
	path string
	fw   *fsnotify.Watcher
	log  *logger.Logger
}

// NewWatcher starts watching the directory that holds path. Watching the
// directory keeps working when editors replace the file on save.
func NewWatcher(path string, log *logger.Logger) (*Watcher, error) {
	if err := validateOverridePath(path); err != nil {
		return nil, fmt.Errorf("invalid data override path: %w", err)
	}
	if log == nil {
		log = logger.Nop()
	}

	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data override path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		cleanupWatcher(fw, log)
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	log.Debug("watching data override %s", abs)
	return &Watcher{path: abs, fw: fw, log: log}, nil
}

// Run blocks until ctx is done, calling onChange with a freshly loaded Store
// (or the load error) after every write to the override file. The
// underlying watcher is closed when Run returns.
func (w *Watcher) Run(ctx context.Context, onChange func(*Store, error)) error {
	defer cleanupWatcher(w.fw, w.log)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fw.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.relevant(event) {
				continue
			}
			start := time.Now()
			store, err := LoadWithOverride(w.path)
			if err != nil {
				w.log.WarnWithFields("data reload failed", []logger.Field{logger.Error(err)})
			} else {
				w.log.InfoWithFields("reloaded data override %s", []logger.Field{
					logger.Count(len(store.Scenarios())),
					logger.Duration(time.Since(start)),
				}, w.path)
			}
			onChange(store, err)

		case err, ok := <-w.fw.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.log.Warn("watcher error: %v", err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

func cleanupWatcher(fw *fsnotify.Watcher, log *logger.Logger) {
	if err := fw.Close(); err != nil {
		log.Debug("failed to close watcher: %v", err)
	}
}

func validateOverridePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty file path")
	}
	if strings.Contains(filepath.Clean(path), "..") {
		return fmt.Errorf("path traversal not allowed")
	}
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("data override must be a .yaml or .yml file")
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("not a regular file: %s", path)
	}
	return nil
}

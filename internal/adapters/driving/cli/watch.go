package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/eshwarmore1993/invoice-generator/internal/logger"
)

// watchDebounce coalesces the burst of events an editor save produces.
var watchDebounce = 150 * time.Millisecond

// watchFile calls onChange once, then again after every change to path,
// until ctx is done. The parent directory is watched so that editors which
// save by rename are still seen.
func watchFile(ctx context.Context, path string, onChange func() error) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	if err := onChange(); err != nil {
		return err
	}

	timer := time.NewTimer(watchDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isChange(event, abs) {
				continue
			}
			logger.Debug("watch: %s %s", event.Op, event.Name)
			timer.Reset(watchDebounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch: %v", err)

		case <-timer.C:
			if err := onChange(); err != nil {
				return err
			}
		}
	}
}

// isChange reports whether event rewrote the watched file.
func isChange(event fsnotify.Event, path string) bool {
	if filepath.Clean(event.Name) != path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

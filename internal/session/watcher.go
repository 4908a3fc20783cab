package session

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the session whenever its backing file changes, until
// ctx is cancelled. SSO helpers typically replace the file atomically
// (write temp + rename), so the watch is on the parent directory and
// events are debounced before reloading.
//
// Watch returns after the watcher is installed; reloading happens on a
// background goroutine. Reload failures are logged and the previous
// session data stays in effect.
func (s *Session) Watch(ctx context.Context) error {
	if s.path == "" {
		return fmt.Errorf("session has no backing file")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	go s.watchLoop(ctx, watcher)
	return nil
}

func (s *Session) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer watcher.Close()

	target := filepath.Clean(s.path)
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			// Debounce: editors and rename-replace helpers fire bursts.
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(50*time.Millisecond, func() {
				if err := s.Reload(); err != nil {
					s.logger.Warn("session reload failed, keeping previous session", "error", err)
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.logger.Error("session watcher error", "error", err)
		}
	}
}

package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"hwbot/pkg/logx"
)

// Watch observes the .env file and logs when it changes. Secrets are
// validated once at startup and never hot-reloaded, so all we can usefully
// do is tell the operator a restart is needed.
//
// Watching the parent directory (not the file itself) survives the
// write-rename dance most editors do.
func Watch(ctx context.Context, path string, log logx.Logger) error {
	if _, err := os.Stat(path); err != nil {
		// Nothing to watch; variables came from the real environment.
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return err
	}

	base := filepath.Base(path)
	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != base {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					log.Warn("env file changed; restart the bot to apply new values",
						logx.String("path", path))
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Debug("env file watch error", logx.Err(err))
			}
		}
	}()
	return nil
}

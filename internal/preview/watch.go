// SPDX-License-Identifier: Unlicense OR MIT

package preview

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watch calls fn with the fixture at path, and again every time the
// file changes, until ctx is done or fn fails. Fixtures that fail to
// load are logged and skipped.
func Watch(ctx context.Context, path string, logger *log.Logger, fn func(Fixture) error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("preview: watch: %w", err)
	}
	defer w.Close()
	path = filepath.Clean(path)
	// Editors save by replacing the file, so watch its directory.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("preview: watch %s: %w", path, err)
	}
	reload := func() error {
		f, err := LoadFixture(path)
		if err != nil {
			logger.Error("skipping fixture", "err", err)
			return nil
		}
		logger.Debug("fixture loaded", "path", path, "width", f.Viewport.Width, "height", f.Viewport.Height)
		return fn(f)
	}
	if err := reload(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case e, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(e.Name) != path || !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("fixture changed", "op", e.Op)
			if err := reload(); err != nil {
				return err
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch", "err", err)
		}
	}
}

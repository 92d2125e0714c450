package shell

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for a burst of file changes
// to settle before triggering a reload.
const DefaultDebounce = 250 * time.Millisecond

// AssetWatcher triggers a reload when files under an asset directory change.
type AssetWatcher struct {
	dir      string
	debounce time.Duration
	trigger  func()
}

// NewAssetWatcher returns a watcher for dir that calls trigger once per
// settled burst of changes. A non-positive debounce uses DefaultDebounce.
func NewAssetWatcher(dir string, debounce time.Duration, trigger func()) *AssetWatcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &AssetWatcher{dir: dir, debounce: debounce, trigger: trigger}
}

// Run watches until ctx is canceled. It returns nil on cancellation.
func (a *AssetWatcher) Run(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	if err := a.addTree(w, a.dir); err != nil {
		return err
	}

	slog.Info("watching assets", "dir", a.dir, "debounce", a.debounce)

	timer := time.NewTimer(a.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
				!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if ev.Has(fsnotify.Create) {
				// new directories are not watched by fsnotify until added
				_ = a.addTree(w, ev.Name)
			}
			slog.Debug("asset changed", "path", ev.Name, "op", ev.Op.String())
			timer.Reset(a.debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("asset watcher error", "error", err)
		case <-timer.C:
			a.trigger()
		}
	}
}

func (a *AssetWatcher) addTree(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}

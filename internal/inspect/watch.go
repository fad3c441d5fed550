package inspect

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/escscan/pkg/log"
)

// DefaultDebounce collapses the burst of events an editor save produces.
const DefaultDebounce = 100 * time.Millisecond

const watchSeparator = "\n----------------------------------------"

// Watch re-runs the inspection every time path is written or recreated,
// until ctx is cancelled. The parent directory is watched because most
// editors save by renaming a temp file over the target. Read failures are
// logged and the loop keeps going.
func (in *Inspector) Watch(ctx context.Context, path string, debounce time.Duration) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir, name := filepath.Dir(path), filepath.Base(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	in.logger.Info("watching for changes", log.String("path", path), log.Duration("debounce", debounce))

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			pending = time.After(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			in.logger.Warn("watcher error", log.Err(err))

		case <-pending:
			pending = nil
			fmt.Fprintln(in.out, watchSeparator)
			if _, err := in.Run(path); err != nil {
				in.logger.Error("re-inspection failed", log.String("path", path), log.Err(err))
			}
		}
	}
}

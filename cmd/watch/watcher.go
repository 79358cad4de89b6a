package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

const debounceInterval = 300 * time.Millisecond

// fileWatcher reports writes to a single file. It watches the parent directory
// so editors that save by replacing the file are still seen.
type fileWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	log      *logrus.Logger
	debounce time.Duration
}

func newFileWatcher(path string, log *logrus.Logger) (*fileWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	dir := filepath.Dir(absPath)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	return &fileWatcher{
		path:     absPath,
		watcher:  watcher,
		log:      log,
		debounce: debounceInterval,
	}, nil
}

func (w *fileWatcher) Close() error {
	return w.watcher.Close()
}

// run calls rebuild once per burst of changes to the watched file until ctx is done.
// Rebuild errors are logged and watching continues.
func (w *fileWatcher) run(ctx context.Context, rebuild func() error) error {
	var debounce <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !isRelevantChange(event, w.path) {
				continue
			}
			w.log.WithFields(logrus.Fields{"file": event.Name, "op": event.Op.String()}).Debug("change detected")
			debounce = time.After(w.debounce)

		case <-debounce:
			debounce = nil
			if err := rebuild(); err != nil {
				w.log.WithError(err).Error("dependency rebuild failed")
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.WithError(err).Warn("watcher error")
		}
	}
}

func isRelevantChange(event fsnotify.Event, path string) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	return filepath.Clean(event.Name) == path
}

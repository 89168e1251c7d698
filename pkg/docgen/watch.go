package docgen

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jingkaihe/gha-docgen/pkg/action"
	"github.com/jingkaihe/gha-docgen/pkg/logger"
	"github.com/pkg/errors"
)

// DefaultDebounce is how long Watch waits for the action file to settle.
const DefaultDebounce = 300 * time.Millisecond

// Watch runs r once and then again whenever the action metadata file is
// written, created or renamed into place, until ctx is done. Bursts of events
// within debounce trigger a single run. Every run's outcome is handed to
// report; run failures do not stop the watch.
func Watch(ctx context.Context, r *Runner, debounce time.Duration, report func(*Result, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create file watcher")
	}
	defer watcher.Close()

	candidates, err := r.actionCandidates()
	if err != nil {
		return err
	}

	// Editors often replace files instead of writing them, so watch the
	// directories rather than the files.
	dirs := make(map[string]bool)
	for path := range candidates {
		dir := filepath.Dir(path)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return errors.Wrapf(err, "failed to watch %s", dir)
		}
		dirs[dir] = true
		logger.G(ctx).WithField("directory", dir).Debug("watching for action file changes")
	}

	report(r.Run(ctx))

	trigger := make(chan struct{}, 1)
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !candidates[filepath.Clean(event.Name)] {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.G(ctx).WithField("file", event.Name).WithField("operation", event.Op.String()).Debug("action file changed")

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case trigger <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.G(ctx).WithError(err).Error("error watching action file")
		case <-trigger:
			report(r.Run(ctx))
		}
	}
}

// actionCandidates returns the absolute paths whose changes trigger a run.
func (r *Runner) actionCandidates() (map[string]bool, error) {
	names := action.DefaultFilenames
	if r.opts.ActionPath != "" {
		names = []string{r.opts.ActionPath}
	}

	candidates := make(map[string]bool, len(names))
	for _, name := range names {
		path, err := filepath.Abs(r.resolve(name))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve %s", name)
		}
		candidates[path] = true
	}
	return candidates, nil
}

package cli

import (
	"context"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/matzehuels/archdraw/pkg/errors"
)

// burstDelay is how long the watcher waits after the last event before
// re-rendering. Editors often emit several events for one save.
const burstDelay = 32 * time.Millisecond

// watcher calls onChange whenever the watched file is written, created or
// renamed into place.
type watcher struct {
	path     string
	fw       *fsnotify.Watcher
	logger   *log.Logger
	onChange func(ctx context.Context)
}

// newWatcher watches path. The parent directory is watched rather than the
// file so editors that save by renaming a temp file are still seen.
func newWatcher(path string, logger *log.Logger, onChange func(ctx context.Context)) (*watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create file watcher")
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "watch %s", path)
	}
	return &watcher{path: abs, fw: fw, logger: logger, onChange: onChange}, nil
}

// Run delivers change notifications until ctx is done.
func (w *watcher) Run(ctx context.Context) error {
	defer w.fw.Close()

	burst := time.NewTimer(0)
	<-burst.C

	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return errors.New(errors.ErrCodeInternal, "file watcher closed")
			}
			if filepath.Clean(ev.Name) != w.path || ev.Op == fsnotify.Chmod {
				continue
			}
			w.logger.Debug("File event", "op", ev.Op, "path", ev.Name)
			burst.Reset(burstDelay)
		case <-burst.C:
			w.onChange(ctx)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return errors.New(errors.ErrCodeInternal, "file watcher closed")
			}
			w.logger.Error("Watch error", "err", err)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// runWatch renders target once, then again after every change until ctx
// is cancelled. Render errors are reported and watching continues.
func (c *CLI) runWatch(ctx context.Context, out io.Writer, target string, opts *renderOpts) error {
	if !isDefinitionFile(target) {
		return errors.New(errors.ErrCodeInvalidInput, "--watch needs a definition file, not blueprint %q", target)
	}
	logger := loggerFromContext(ctx)

	render := func(ctx context.Context) {
		if _, err := c.runRender(ctx, out, target, opts); err != nil {
			printWarning(out, "%s", errors.UserMessage(err))
		}
		// Open the viewer only for the first render.
		opts.show, opts.showSet = false, true
	}

	w, err := newWatcher(target, logger, func(ctx context.Context) {
		logger.Info("Detected change, re-rendering", "path", target)
		render(ctx)
	})
	if err != nil {
		return err
	}

	render(ctx)
	logger.Info("Watching for changes", "path", target)
	if err := w.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	logger.Info("Stopped watching")
	return nil
}

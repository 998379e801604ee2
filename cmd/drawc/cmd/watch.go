package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/drawlang/foundation/core/error"
	mdwlog "github.com/msto63/drawlang/foundation/core/log"
	"github.com/msto63/drawlang/foundation/drawlang"
	"github.com/msto63/drawlang/internal/tui"
	"github.com/msto63/drawlang/pkg/core/cache"
)

var (
	watchFormat  string
	watchNoColor bool
)

var watchCmd = &cobra.Command{
	Use:   "watch FILE",
	Short: "Re-parse a token stream whenever it changes",
	Long: `Parses FILE, prints the result, and parses it again after every
change until interrupted. Bursts of events within the configured debounce
window (watch.debounce) trigger a single parse. Content seen before is
answered from a result cache.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchFormat, "format", "f", "", "output format: text, tree, json or yaml (default from config)")
	watchCmd.Flags().BoolVar(&watchNoColor, "no-color", false, "disable styled tree output")
}

func runWatch(cmd *cobra.Command, args []string) error {
	format := watchFormat
	if format == "" {
		format = appConfig.Output.Format
	}
	if err := validOutputFormat(format); err != nil {
		return err
	}

	engine, err := newEngine()
	if err != nil {
		return err
	}

	path, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return mdwerror.Wrap(err, "failed to create file watcher").
			WithCode(mdwerror.CodeInternal)
	}
	defer watcher.Close()

	// editors replace files on save; watching the directory survives that
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return mdwerror.Wrap(err, "failed to watch directory").
			WithCode(mdwerror.CodeNotFound).
			WithDetail("path", filepath.Dir(path))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	results := cache.NewResultCache(engine, cache.DefaultConfig())
	defer results.Close()

	w := &streamWatcher{
		results:  results,
		path:     path,
		format:   format,
		color:    useColor(watchNoColor),
		debounce: appConfig.Watch.Debounce.Duration,
		logger:   logger.WithName("watch").WithField("path", path),
		cmd:      cmd,
	}
	return w.run(ctx, watcher.Events, watcher.Errors)
}

type streamWatcher struct {
	results  *cache.ResultCache
	path     string
	format   string
	color    bool
	debounce time.Duration
	logger   *mdwlog.Logger
	cmd      *cobra.Command
}

func (w *streamWatcher) run(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error) error {
	w.parseAndPrint(ctx)

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("watch stopped")
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			w.logger.Trace("file event", mdwlog.Fields{"op": ev.Op.String()})
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-errs:
			if !ok {
				return nil
			}
			w.logger.WarnWithErr("watcher error", err)

		case <-fire:
			fire = nil
			w.parseAndPrint(ctx)
		}
	}
}

func (w *streamWatcher) parseAndPrint(ctx context.Context) {
	out := w.cmd.OutOrStdout()
	stamp := time.Now().Format("15:04:05")

	data, err := os.ReadFile(w.path)
	var res *drawlang.Result
	var cached bool
	if err == nil {
		res, cached, err = w.results.Parse(ctx, w.path, data)
	}
	if err != nil {
		line := fmt.Sprintf("[%s] %s: %v", stamp, w.path, err)
		if w.color {
			line = tui.ErrorMessageStyle.Render(line)
		}
		fmt.Fprintln(out, line)
		return
	}

	header := fmt.Sprintf("[%s] %s (%d nodes, depth %d)", stamp, w.path, res.Nodes, res.Depth)
	if cached {
		header += " cached"
	}
	if w.color {
		header = tui.RenderTitle(header)
	}
	fmt.Fprintln(out, header)
	if err := writeResult(out, res, w.format, w.color); err != nil {
		w.logger.ErrorWithErr("failed to print result", err)
	}
}

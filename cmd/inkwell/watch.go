package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/inkwell-md/commonmark"
	"github.com/inkwell-md/commonmark/internal/config"
	"github.com/inkwell-md/commonmark/internal/logging"
	"github.com/inkwell-md/commonmark/internal/watch"
)

func newWatchCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <dir>",
		Short: "Watch a directory and re-render changed .md files to .html",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cfg, args[0])
		},
	}
}

func runWatch(cfg *config.Config, dir string) error {
	logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	w, err := watch.New(dir)
	if err != nil {
		return err
	}
	w.Debounce = time.Duration(cfg.WatchDebounceMillis) * time.Millisecond
	w.IgnorePatterns = cfg.IgnorePatterns
	w.Logger = logger
	w.Options = commonmark.Options{
		MaxNestingDepth: cfg.MaxNestingDepth,
		UnsafeHTML:      cfg.UnsafeHTML,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("watching", "dir", dir)
	return w.Run(ctx)
}

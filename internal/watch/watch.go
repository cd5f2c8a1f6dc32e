// Package watch watches a directory of Markdown files and re-renders
// changed ones to sibling .html files, debouncing bursts of filesystem
// events the way jinterlante1206-AleutianLocal's graph.FileWatcher does, and
// rendering a batch of changed files concurrently with golang.org/x/sync/errgroup
// since commonmark.Convert shares no state across calls.
package watch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"

	"github.com/inkwell-md/commonmark"
)

// ChangeHandler is invoked with the rendered HTML whenever path is
// (re-)rendered. Nothing in cmd/inkwell or internal/api sets it.
type ChangeHandler func(path, html string)

// Watcher watches Dir for changed .md files and writes rendered .html
// output alongside each one.
type Watcher struct {
	Dir            string
	Debounce       time.Duration
	IgnorePatterns []string
	Options        commonmark.Options
	OnRender       ChangeHandler
	Logger         *slog.Logger

	fsw      *fsnotify.Watcher
	pending  map[string]struct{}
	mu       sync.Mutex
	stopOnce sync.Once
	done     chan struct{}
}

// New creates a Watcher for dir. Call Run to start watching.
func New(dir string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		Dir:            dir,
		Debounce:       150 * time.Millisecond,
		IgnorePatterns: []string{".git", "node_modules"},
		Logger:         slog.Default(),
		fsw:            fsw,
		pending:        make(map[string]struct{}),
		done:           make(chan struct{}),
	}, nil
}

// Run watches until ctx is canceled or Stop is called, rendering the files
// changed since the previous tick once every Debounce interval.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.addRecursive(w.Dir); err != nil {
		return err
	}
	defer w.fsw.Close()

	ticker := time.NewTicker(w.Debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.done:
			return nil
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.observe(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.Logger.Warn("watch error", "error", err)
		case <-ticker.C:
			if err := w.flush(ctx); err != nil {
				w.Logger.Error("render batch failed", "error", err)
			}
		}
	}
}

// Stop ends a running Run call.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() { close(w.done) })
}

func (w *Watcher) observe(event fsnotify.Event) {
	if !strings.HasSuffix(event.Name, ".md") {
		return
	}
	if w.ignored(event.Name) {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return
	}
	w.mu.Lock()
	w.pending[event.Name] = struct{}{}
	w.mu.Unlock()
}

func (w *Watcher) ignored(path string) bool {
	base := filepath.Base(path)
	for _, pat := range w.IgnorePatterns {
		if matched, _ := filepath.Match(pat, base); matched {
			return true
		}
		if strings.Contains(path, pat) {
			return true
		}
	}
	return false
}

// flush renders every file collected since the last tick, concurrently.
func (w *Watcher) flush(ctx context.Context) error {
	w.mu.Lock()
	if len(w.pending) == 0 {
		w.mu.Unlock()
		return nil
	}
	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	w.pending = make(map[string]struct{})
	w.mu.Unlock()

	g, _ := errgroup.WithContext(ctx)
	for _, path := range paths {
		path := path
		g.Go(func() error { return w.renderOne(path) })
	}
	return g.Wait()
}

func (w *Watcher) renderOne(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	html := commonmark.Convert(string(src), w.Options)
	out := strings.TrimSuffix(path, filepath.Ext(path)) + ".html"
	if err := os.WriteFile(out, []byte(html), 0o644); err != nil {
		return err
	}
	w.Logger.Debug("rendered", "source", path, "output", out, "bytes", len(html))
	if w.OnRender != nil {
		w.OnRender(path, html)
	}
	return nil
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if w.ignored(path) {
			return filepath.SkipDir
		}
		return w.fsw.Add(path)
	})
}

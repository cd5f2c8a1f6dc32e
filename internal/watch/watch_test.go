package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherRendersChangedFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(src, []byte("# before\n"), 0o644))

	w, err := New(dir)
	require.NoError(t, err)
	w.Debounce = 20 * time.Millisecond

	rendered := make(chan string, 1)
	w.OnRender = func(path, html string) {
		rendered <- html
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	time.Sleep(30 * time.Millisecond)
	require.NoError(t, os.WriteFile(src, []byte("# after\n"), 0o644))

	select {
	case html := <-rendered:
		require.Contains(t, html, "<h1>after</h1>")
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for render")
	}
	w.Stop()
}

func TestIgnoredPattern(t *testing.T) {
	w := &Watcher{IgnorePatterns: []string{"node_modules"}}
	require.True(t, w.ignored("/repo/node_modules/doc.md"))
	require.False(t, w.ignored("/repo/docs/doc.md"))
}

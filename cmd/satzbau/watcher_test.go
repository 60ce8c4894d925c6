package main

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cours-de-latin/satzbau"
)

func TestLexiconWatcherReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.toml")
	require.NoError(t, os.WriteFile(path, []byte("[nouns]\napfel = \"der apfel, die äpfel, des apfels\"\n"), 0o644))

	var (
		mu       sync.Mutex
		reloaded *satzbau.Lexicon
	)
	lw, err := newLexiconWatcher(path, func(lex *satzbau.Lexicon) {
		mu.Lock()
		reloaded = lex
		mu.Unlock()
	})
	require.NoError(t, err)
	lw.debouncePeriod = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- lw.run(ctx) }()

	// Broken content is ignored.
	require.NoError(t, os.WriteFile(path, []byte("[nouns]\nauto = \"auto, autos, autos\"\n"), 0o644))
	time.Sleep(200 * time.Millisecond)
	mu.Lock()
	assert.Nil(t, reloaded)
	mu.Unlock()

	require.NoError(t, os.WriteFile(path, []byte("[nouns]\nsee = \"der see, die seen, des sees\"\n"), 0o644))
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		if reloaded == nil {
			return false
		}
		_, ok := reloaded.Noun("see")
		return ok
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestLexiconWatcherMissingDir(t *testing.T) {
	_, err := newLexiconWatcher(filepath.Join(t.TempDir(), "nope", "lexicon.toml"), func(*satzbau.Lexicon) {})
	assert.Error(t, err)
}

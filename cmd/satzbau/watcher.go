package main

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"

	"github.com/cours-de-latin/satzbau"
)

// lexiconWatcher reloads a lexicon file when it changes on disk. A file
// that fails to parse is logged and the previous lexicon stays active.
type lexiconWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	onReload func(*satzbau.Lexicon)

	mu             sync.Mutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
}

func newLexiconWatcher(path string, onReload func(*satzbau.Lexicon)) (*lexiconWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve %s", path)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create fsnotify watcher")
	}
	// Editors often replace the file instead of writing it, which drops
	// a watch on the file itself.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, errors.Wrapf(err, "watch %s", filepath.Dir(abs))
	}
	return &lexiconWatcher{
		path:           abs,
		watcher:        watcher,
		onReload:       onReload,
		debouncePeriod: 500 * time.Millisecond,
	}, nil
}

// run watches until ctx is done and closes the watcher.
func (lw *lexiconWatcher) run(ctx context.Context) error {
	defer lw.stop()
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-lw.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != lw.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				log.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("lexicon changed")
				lw.scheduleReload()
			}

		case err, ok := <-lw.watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("lexicon watcher error")
		}
	}
}

// scheduleReload debounces bursts of events into one reload.
func (lw *lexiconWatcher) scheduleReload() {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	if lw.debounceTimer != nil {
		lw.debounceTimer.Stop()
	}
	lw.debounceTimer = time.AfterFunc(lw.debouncePeriod, lw.reload)
}

func (lw *lexiconWatcher) reload() {
	lex, err := satzbau.LoadLexicon(lw.path)
	if err != nil {
		log.Error().Err(err).Msg("lexicon reload failed, keeping previous lexicon")
		return
	}
	lw.onReload(lex)
	log.Info().Str("path", lw.path).Int("entries", lex.Len()).Msg("lexicon reloaded")
}

func (lw *lexiconWatcher) stop() {
	lw.mu.Lock()
	if lw.debounceTimer != nil {
		lw.debounceTimer.Stop()
	}
	lw.mu.Unlock()
	if err := lw.watcher.Close(); err != nil {
		log.Warn().Err(err).Msg("close lexicon watcher")
	}
}

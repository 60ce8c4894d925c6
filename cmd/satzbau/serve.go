package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/cours-de-latin/satzbau"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the declension engine as a JSON REST API",
	Long: `Endpoints:

  GET  /api/noun?template=<t>|key=<k>[&case=&number=&article=&count=&attr=]
  GET  /api/declension?template=<t>|key=<k>[&article=]
  GET  /api/adjective?word=<w>|key=<k>[&gender=&case=&number=&article=]
  POST /api/sentence   body: {"parts":[{"text":"..."},{"noun":"..."}]}
  GET  /api/lexicon`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().Bool("watch", true, "reload the lexicon when the file changes")
}

// loadLexicon loads the configured lexicon, or an empty one if none is set.
func loadLexicon(path string) (*satzbau.Lexicon, error) {
	if path == "" {
		return satzbau.ParseLexicon(nil)
	}
	log.Info().Str("path", path).Msg("loading lexicon")
	lex, err := satzbau.LoadLexicon(path)
	if err != nil {
		return nil, err
	}
	log.Info().Int("entries", lex.Len()).Msg("lexicon loaded")
	return lex, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return serve(ctx, conf)
}

// watchLexicon creates the lexicon watcher; tests replace it.
var watchLexicon = newLexiconWatcher

// serve runs the API server until ctx is done.
func serve(ctx context.Context, c *Config) error {
	lex, err := loadLexicon(c.Lexicon)
	if err != nil {
		return err
	}
	srv := newServer(lex)

	var lw *lexiconWatcher
	if c.Watch && c.Lexicon != "" {
		if lw, err = watchLexicon(c.Lexicon, srv.setLexicon); err != nil {
			return err
		}
	}

	httpSrv := &http.Server{
		Addr:              c.Addr,
		Handler:           withMiddleware(srv.routes(), c.CORS.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", c.Addr).Msg("listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "server error")
		}
		return nil
	})

	if lw != nil {
		g.Go(func() error { return lw.run(ctx) })
	}

	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), c.ShutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// withMiddleware wraps h with CORS, request IDs and access logging.
func withMiddleware(h http.Handler, allowedOrigins []string) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
	})
	return c.Handler(requestLogger(h))
}

const requestIDHeader = "X-Request-ID"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// requestLogger tags every request with an ID and logs it on completion.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		log.Info().
			Str("request_id", id).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

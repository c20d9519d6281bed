package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Xunop/e-livraria/internal/api/v1"
	"github.com/Xunop/e-livraria/internal/config"
	"github.com/Xunop/e-livraria/internal/log"
	"github.com/Xunop/e-livraria/internal/middleware"
	"github.com/Xunop/e-livraria/internal/session"
	"github.com/Xunop/e-livraria/internal/store"
	"github.com/Xunop/e-livraria/internal/version"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// StartServer starts the HTTP server and the session and rate limit
// janitors. Everything stops when ctx is cancelled, the returned channel
// is closed once the server is down.
func StartServer(ctx context.Context, store *store.Store) (*http.Server, <-chan struct{}) {
	sessions := session.NewManager(config.Opts.SessionTTL)
	go sessions.Run(ctx)

	var limiter *middleware.RateLimiter
	if config.Opts.RateLimit > 0 {
		limiter = middleware.NewRateLimiter(config.Opts.RateLimit, config.Opts.RateBurst)
		go limiter.Run(ctx)
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", config.Opts.Host, config.Opts.Port),
		Handler:           setupHandler(store, sessions, limiter),
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan struct{})
	startHTTPServer(server)
	go func() {
		defer close(done)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down HTTP server", zap.Error(err))
			return
		}
		log.Info("HTTP server stopped")
	}()

	return server, done
}

func startHTTPServer(server *http.Server) {
	go func() {
		log.Info("Starting HTTP server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()
}

func setupHandler(store *store.Store, sessions *session.Manager, limiter *middleware.RateLimiter) http.Handler {
	router := mux.NewRouter()

	apiHandler := v1.NewHandler(store, sessions, limiter)
	v1.Server(router, apiHandler)

	router.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		// An empty catalog still serves, it only means the source was unusable.
		store.Load()
		w.Write([]byte("OK"))
	}).Name("healthcheck")

	router.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(version.GetCurrentVersion()))
	}).Name("version")

	return router
}

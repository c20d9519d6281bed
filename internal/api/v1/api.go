package v1

import (
	"net/http"
	"time"

	"github.com/Xunop/e-livraria/internal/config"
	"github.com/Xunop/e-livraria/internal/http/request"
	"github.com/Xunop/e-livraria/internal/middleware"
	"github.com/Xunop/e-livraria/internal/session"
	"github.com/Xunop/e-livraria/internal/store"
	"github.com/gorilla/mux"
)

type Handler struct {
	store    *store.Store
	sessions *session.Manager
	// limiter may be nil, requests are then never throttled.
	limiter *middleware.RateLimiter
	now     func() time.Time
}

// NewHandler is a constructor for the v1.Handler
func NewHandler(store *store.Store, sessions *session.Manager, limiter *middleware.RateLimiter) *Handler {
	return &Handler{
		store:    store,
		sessions: sessions,
		limiter:  limiter,
		now:      time.Now,
	}
}

func Server(router *mux.Router, handler *Handler) {
	sr := router.PathPrefix("/api/v1").Subrouter()
	middleware := middleware.NewMiddleware(handler.sessions, config.Opts.SessionTTL)
	sr.Use(middleware.Recover)
	sr.Use(middleware.HandleCORS)
	sr.Use(middleware.LoggingRequest)
	if handler.limiter != nil {
		sr.Use(handler.limiter.Limit)
	}
	sr.Use(middleware.HandleSession)
	// Preflight requests are answered by HandleCORS.
	sr.Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	sr.HandleFunc("/books", handler.listBooks).Methods(http.MethodGet)
	sr.HandleFunc("/books/{id}", handler.getBook).Methods(http.MethodGet)
	sr.HandleFunc("/facets", handler.getFacets).Methods(http.MethodGet)

	sr.HandleFunc("/view", handler.getView).Methods(http.MethodGet)
	sr.HandleFunc("/view", handler.setView).Methods(http.MethodPut)

	sr.HandleFunc("/cart", handler.getCart).Methods(http.MethodGet)
	sr.HandleFunc("/cart", handler.clearCart).Methods(http.MethodDelete)
	sr.HandleFunc("/cart/{id}", handler.addToCart).Methods(http.MethodPost)
	sr.HandleFunc("/cart/{id}", handler.removeFromCart).Methods(http.MethodDelete)

	sr.HandleFunc("/checkout", handler.getCheckout).Methods(http.MethodGet)
	sr.HandleFunc("/checkout/confirm", handler.confirmCheckout).Methods(http.MethodPost)
}

// currentSession returns the session HandleSession attached to r.
func currentSession(r *http.Request) *session.Session {
	s, _ := r.Context().Value(request.SessionContextKey).(*session.Session)
	return s
}

package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Xunop/e-livraria/internal/http/request"
	"github.com/Xunop/e-livraria/internal/http/response"
	"github.com/Xunop/e-livraria/internal/log"
	"github.com/Xunop/e-livraria/internal/session"
	"github.com/Xunop/e-livraria/internal/util"
	"go.uber.org/zap"
)

const SessionCookieName = "livraria_session"

type Middleware struct {
	sessions   *session.Manager
	sessionTTL time.Duration
}

func NewMiddleware(sessions *session.Manager, sessionTTL time.Duration) *Middleware {
	return &Middleware{sessions: sessions, sessionTTL: sessionTTL}
}

func (m *Middleware) HandleCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); origin != "" {
			// The session cookie needs credentialed requests, which rule out "*".
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Add("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept")
		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Max-Age", "7200")
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// LoggingRequest stores the client IP in the request context and logs the request.
func (m *Middleware) LoggingRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientIP := request.FindClientIP(r)
		ctx := context.WithValue(r.Context(), request.ClientIPContextKey, clientIP)

		t1 := time.Now()
		defer func() {
			log.Debug("Incoming request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("proto", r.Proto),
				zap.String("client_ip", clientIP),
				zap.Duration("duration", time.Since(t1)))
		}()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// HandleSession resolves the session cookie, starting a session when the
// client has none or its session expired.
func (m *Middleware) HandleSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		if cookie, err := r.Cookie(SessionCookieName); err == nil && util.IsUUID(cookie.Value) {
			id = cookie.Value
		}

		s, created := m.sessions.Get(id)
		if created {
			log.Debug("Issuing session cookie",
				zap.String("client_ip", request.ClientIP(r)),
				zap.String("session_id", s.ID))
		}
		// Refresh the cookie on every request so it expires with the session.
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookieName,
			Value:    s.ID,
			Path:     "/",
			MaxAge:   int(m.sessionTTL.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		ctx := context.WithValue(r.Context(), request.SessionIDContextKey, s.ID)
		ctx = context.WithValue(ctx, request.SessionContextKey, s)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Recover turns a panicking handler into a 500 response.
func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Error("Panic recovered",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Any("panic", err),
					zap.Stack("stack"))
				response.ServerError(w, r, fmt.Errorf("internal error"))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

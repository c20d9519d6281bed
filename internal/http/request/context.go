package request //import "github.com/Xunop/e-livraria/internal/http/request"

import (
	"net/http"
)

type ContextKey int

const (
	ClientIPContextKey ContextKey = iota
	SessionIDContextKey
	SessionContextKey
)

func getContextStringValue(r *http.Request, key ContextKey) string {
	if v := r.Context().Value(key); v != nil {
		if value, valid := v.(string); valid {
			return value
		}
	}
	return ""
}

// ClientIP returns the client IP address stored in the context.
func ClientIP(r *http.Request) string {
	if ip := getContextStringValue(r, ClientIPContextKey); ip != "" {
		return ip
	}
	return FindClientIP(r)
}

// GetSessionID returns the storefront session resolved for the request.
func GetSessionID(r *http.Request) string {
	return getContextStringValue(r, SessionIDContextKey)
}

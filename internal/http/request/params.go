package request //import "github.com/Xunop/e-livraria/internal/http/request"

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

// RouteStringParam returns a URL route parameter as string.
func RouteStringParam(r *http.Request, param string) string {
	vars := mux.Vars(r)
	return strings.TrimSpace(vars[param])
}

// QueryStringParam returns a query string parameter as string.
func QueryStringParam(r *http.Request, param, defaultValue string) string {
	value := r.URL.Query().Get(param)
	if value == "" {
		value = defaultValue
	}
	return value
}

// QueryStringParamList returns the non-empty values of a repeated query string parameter.
func QueryStringParamList(r *http.Request, param string) []string {
	var results []string
	for _, value := range r.URL.Query()[param] {
		value = strings.TrimSpace(value)
		if value != "" {
			results = append(results, value)
		}
	}
	return results
}

// HasQueryParam checks if the query string contains the given parameter.
func HasQueryParam(r *http.Request, param string) bool {
	values := r.URL.Query()
	_, ok := values[param]
	return ok
}

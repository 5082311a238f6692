package api

import (
	"net/http"
	"strings"
)

// RoutePath joins a base path and a route suffix. The result always starts
// with "/" and the base never contributes a trailing slash.
func RoutePath(basePath, suffix string) string {
	base := strings.TrimRight(basePath, "/")
	if base != "" && !strings.HasPrefix(base, "/") {
		base = "/" + base
	}

	if !strings.HasPrefix(suffix, "/") {
		suffix = "/" + suffix
	}

	return base + suffix
}

func NewRouter(h *APIHandler) http.Handler {

	mux := http.NewServeMux()

	mux.HandleFunc("GET "+RoutePath(h.basePath, "health"), h.HandleHealth)

	mux.HandleFunc("POST "+RoutePath(h.basePath, h.service.ActionPath()), h.HandleAction)

	return withRequestID(withLogging(h.logger, withRecovery(h.logger, mux)))
}

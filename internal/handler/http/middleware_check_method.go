// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler intended to be registered as the router's
// MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// Only routes whose full pattern equals the request path literally (no URL
// parameters) answer 405 Method Not Allowed with an Allow header. Every other
// request gets 404 Not Found, so parameterised resources do not reveal their
// existence to callers using an unsupported method.
//
// Nested routers are walked with [chi.Walk], so patterns mounted under
// [chi.Router.Route] are matched by their full path.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var allowed []string
		_ = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
			if route == r.URL.Path && !strings.Contains(route, "{") {
				allowed = append(allowed, method)
			}
			return nil
		})

		if len(allowed) == 0 {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		sort.Strings(allowed)
		w.Header().Set("Allow", strings.Join(allowed, ", "))
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

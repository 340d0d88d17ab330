// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the handler to register as the router's
// MethodNotAllowed callback via [chi.Mux.MethodNotAllowed].
//
// Chi's default is to answer 405 Method Not Allowed when a request path
// matches a registered route but the method does not. This pair answers 404
// Not Found in that case instead, so an unsupported method cannot be used to
// probe which paths exist.
//
// The route table is consulted directly: the raw request path is compared
// against each registered pattern (the routes of this pair carry no
// parameterised segments), and the matched route's method map decides whether
// to delegate back into the router's normal pipeline.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var matched chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				matched = route
				break
			}
		}

		// An unmatched path leaves the method map nil, so the lookup below
		// answers 404 for that case as well.
		if _, ok := matched.Handlers[r.Method]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		// The method is registered, delegate to the router's normal pipeline.
		router.ServeHTTP(w, r)
	}
}

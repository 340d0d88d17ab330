// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a minimal chi.Mux with a set of routes for tests.
// It intentionally does not use Handler.Init() to avoid service/logger setup.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/time", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("time"))
	})
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Post("/admin/zones", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.Put("/admin/zones", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Delete("/admin/cache", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// ---- Table test ----

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		// Existing route + valid method -> handler responds.
		{
			name:           "GET /time is registered, should pass through",
			method:         http.MethodGet,
			path:           "/time",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "GET /health is registered, should pass through",
			method:         http.MethodGet,
			path:           "/health",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "POST /admin/zones is registered, should pass through",
			method:         http.MethodPost,
			path:           "/admin/zones",
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "PUT /admin/zones is registered, should pass through",
			method:         http.MethodPut,
			path:           "/admin/zones",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "DELETE /admin/cache is registered, should pass through",
			method:         http.MethodDelete,
			path:           "/admin/cache",
			expectedStatus: http.StatusNoContent,
		},
		// Existing route + invalid method -> 404.
		{
			name:           "POST /time, method not registered, expect 404",
			method:         http.MethodPost,
			path:           "/time",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "DELETE /time, method not registered, expect 404",
			method:         http.MethodDelete,
			path:           "/time",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "PUT /health, method not registered, expect 404",
			method:         http.MethodPut,
			path:           "/health",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "GET /admin/cache, method not registered, expect 404",
			method:         http.MethodGet,
			path:           "/admin/cache",
			expectedStatus: http.StatusNotFound,
		},
		// Non-existing route: chi returns 404 before MethodNotAllowed.
		{
			name:           "GET /nonexistent, route does not exist",
			method:         http.MethodGet,
			path:           "/nonexistent",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "PATCH /totally/wrong, route does not exist",
			method:         http.MethodPatch,
			path:           "/totally/wrong",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

// ---- 405 is never returned ----

func TestCheckHTTPMethod_Never405(t *testing.T) {
	router := buildRouter()

	methods := []string{
		http.MethodGet, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete, http.MethodHead,
	}
	paths := []string{"/time", "/health", "/admin/zones", "/admin/cache"}

	for _, method := range methods {
		for _, path := range paths {
			req := httptest.NewRequest(method, path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code,
				"%s %s must not return 405", method, path)
		}
	}
}

// ---- Registered method passes through to the original handler ----

func TestCheckHTTPMethod_DelegatesToRouter(t *testing.T) {
	router := buildRouter()

	handler := CheckHTTPMethod(router)

	req := httptest.NewRequest(http.MethodGet, "/time", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "time", rr.Body.String())
}

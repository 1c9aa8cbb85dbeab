package testutil

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"

	"github.com/ljacquet/patrimoine-backend/internal/api/middleware"
	"github.com/ljacquet/patrimoine-backend/internal/model"
)

// NewRequestWithURLParams creates an HTTP request with chi URL parameters.
// This helper simplifies testing chi handlers that use chi.URLParam() to
// extract path parameters.
//
// Example:
//
//	req := testutil.NewRequestWithURLParams(
//	    http.MethodDelete,
//	    "/api/assets/123-456",
//	    map[string]string{"uuid": "123-456"},
//	)
func NewRequestWithURLParams(method, path string, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, path, nil)

	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for key, value := range params {
			rctx.URLParams.Add(key, value)
		}
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	return req
}

// NewRequestWithURLParamsAndBody is NewRequestWithURLParams with a request
// body, for PUT/POST handlers that also read path parameters.
func NewRequestWithURLParamsAndBody(method, path string, params map[string]string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, path, body)

	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for key, value := range params {
			rctx.URLParams.Add(key, value)
		}
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	return req
}

// NewUserRequest creates an HTTP request carrying the given acting user in
// its context, as the user-context middleware would.
func NewUserRequest(method, path string, body io.Reader, user model.User) *http.Request {
	req := httptest.NewRequest(method, path, body)
	return req.WithContext(middleware.WithUser(req.Context(), user))
}

// AsUser returns a copy of req with the acting user attached.
func AsUser(req *http.Request, user model.User) *http.Request {
	return req.WithContext(middleware.WithUser(req.Context(), user))
}

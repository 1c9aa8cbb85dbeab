package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ljacquet/patrimoine-backend/internal/api/middleware"
	"github.com/ljacquet/patrimoine-backend/internal/testutil"
)

// TestValidateUUIDMiddleware tests the uuid URL-parameter guard.
//
// WHY: Every {uuid} route relies on this guard so handlers can assume a
// well-formed ID; a malformed or empty one must stop at the middleware.
func TestValidateUUIDMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		uuid       string
		wantStatus int
		wantNext   bool
	}{
		{"valid UUID passes through", "550e8400-e29b-41d4-a716-446655440000", http.StatusOK, true},
		{"malformed UUID is rejected", "invalid-id", http.StatusBadRequest, false},
		{"empty UUID is rejected", "", http.StatusBadRequest, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			guard := middleware.ValidateUUIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			}))

			req := testutil.NewRequestWithURLParams(http.MethodGet, "/test", map[string]string{"uuid": tt.uuid})
			w := httptest.NewRecorder()
			guard.ServeHTTP(w, req)

			if nextCalled != tt.wantNext {
				t.Errorf("Expected next-called=%v, got %v", tt.wantNext, nextCalled)
			}
			if w.Code != tt.wantStatus {
				t.Errorf("Expected %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

package middleware_test

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/handlers/middleware"
	"github.com/ammerola/stowage/internal/pkg/auth"
	"github.com/ammerola/stowage/internal/pkg/logger"
	"github.com/ammerola/stowage/test/helpers"
)

func ok(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func TestRequestID(t *testing.T) {
	var seen string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logger.RequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	wrapped := middleware.RequestID("X-Request-ID")(handler)

	tests := []struct {
		name     string
		existing string
		validate func(*testing.T, *http.Response)
	}{
		{
			name: "generates_new_request_id",
			validate: func(t *testing.T, resp *http.Response) {
				requestID := resp.Header.Get("X-Request-ID")
				assert.Len(t, requestID, 36)
				assert.Equal(t, requestID, seen)
			},
		},
		{
			name:     "uses_existing_request_id",
			existing: "existing-id-123",
			validate: func(t *testing.T, resp *http.Response) {
				assert.Equal(t, "existing-id-123", resp.Header.Get("X-Request-ID"))
				assert.Equal(t, "existing-id-123", seen)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.existing != "" {
				req.Header.Set("X-Request-ID", tt.existing)
			}
			w := httptest.NewRecorder()

			wrapped.ServeHTTP(w, req)
			tt.validate(t, w.Result())
		})
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(logger.NewHandler(&buf, "debug", "json"))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("missing"))
	})
	wrapped := middleware.Chain(http.HandlerFunc(handler), middleware.RequestID(""), middleware.Logger(l))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/containers?x=1", nil)
	req.Header.Set("X-Request-ID", "test-123")
	w := httptest.NewRecorder()

	wrapped.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "request completed", line["msg"])
	assert.Equal(t, "WARN", line["severity"])
	assert.Equal(t, "test-123", line["request_id"])

	response := line["response"].(map[string]any)
	assert.EqualValues(t, http.StatusNotFound, response["status"])
	assert.EqualValues(t, len("missing"), response["bytes"])
}

func TestRecovery(t *testing.T) {
	l := helpers.TestLogger()

	tests := []struct {
		name           string
		handler        http.HandlerFunc
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "recovers_from_panic",
			handler: func(w http.ResponseWriter, r *http.Request) {
				panic("test panic")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "Internal server error",
		},
		{
			name:           "passes_through_normal_response",
			handler:        ok,
			expectedStatus: http.StatusOK,
			expectedBody:   "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := middleware.Recovery(l)(tt.handler)

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			wrapped.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestRateLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	wrapped := middleware.RateLimit(ctx, 2, time.Minute)(http.HandlerFunc(ok))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = "127.0.0.1:1234"
		w := httptest.NewRecorder()

		wrapped.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.RemoteAddr = "127.0.0.1:1234"
	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	req.RemoteAddr = "192.168.1.1:5678"
	w = httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name           string
		allowedOrigins []string
		requestOrigin  string
		requestMethod  string
		expectedStatus int
		checkHeaders   func(*testing.T, http.Header)
	}{
		{
			name:           "allows_wildcard_origin",
			allowedOrigins: []string{"*"},
			requestOrigin:  "https://example.com",
			requestMethod:  http.MethodGet,
			expectedStatus: http.StatusOK,
			checkHeaders: func(t *testing.T, headers http.Header) {
				assert.Equal(t, "https://example.com", headers.Get("Access-Control-Allow-Origin"))
			},
		},
		{
			name:           "handles_preflight_request",
			allowedOrigins: []string{"https://app.example.com"},
			requestOrigin:  "https://app.example.com",
			requestMethod:  http.MethodOptions,
			expectedStatus: http.StatusNoContent,
			checkHeaders: func(t *testing.T, headers http.Header) {
				assert.Equal(t, "https://app.example.com", headers.Get("Access-Control-Allow-Origin"))
				assert.NotEmpty(t, headers.Get("Access-Control-Allow-Methods"))
			},
		},
		{
			name:           "blocks_unallowed_origin",
			allowedOrigins: []string{"https://allowed.com"},
			requestOrigin:  "https://notallowed.com",
			requestMethod:  http.MethodGet,
			expectedStatus: http.StatusOK,
			checkHeaders: func(t *testing.T, headers http.Header) {
				assert.Empty(t, headers.Get("Access-Control-Allow-Origin"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := middleware.CORS(tt.allowedOrigins)(http.HandlerFunc(ok))

			req := httptest.NewRequest(tt.requestMethod, "/test", nil)
			req.Header.Set("Origin", tt.requestOrigin)
			w := httptest.NewRecorder()

			wrapped.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.checkHeaders(t, w.Header())
		})
	}
}

func TestSecureHeaders(t *testing.T) {
	w := httptest.NewRecorder()
	middleware.SecureHeaders(http.HandlerFunc(ok)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
}

func TestCompression(t *testing.T) {
	wrapped := middleware.Compression(http.HandlerFunc(ok))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)

	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
	zr, err := gzip.NewReader(w.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))

	plain := httptest.NewRecorder()
	wrapped.ServeHTTP(plain, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Empty(t, plain.Header().Get("Content-Encoding"))
	assert.Equal(t, "ok", plain.Body.String())
}

func TestAuthenticate(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret-test-secret-test-secret", "stowage", time.Hour)
	user := &domain.User{ID: uuid.New(), Email: "member@stowage.test", Role: domain.RoleMember}
	valid, _, err := tokens.Issue(user)
	require.NoError(t, err)

	var actorSeen *uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actorSeen = auth.ActorID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name           string
		required       bool
		header         string
		expectedStatus int
		expectActor    bool
	}{
		{name: "anonymous_allowed", header: "", expectedStatus: http.StatusOK},
		{name: "anonymous_rejected_when_required", required: true, header: "", expectedStatus: http.StatusUnauthorized},
		{name: "valid_token", required: true, header: "Bearer " + valid, expectedStatus: http.StatusOK, expectActor: true},
		{name: "invalid_token_rejected_even_when_optional", header: "Bearer nope", expectedStatus: http.StatusUnauthorized},
		{name: "malformed_header", header: "Basic abc", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actorSeen = nil
			wrapped := middleware.Authenticate(tokens, tt.required, helpers.TestLogger())(next)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			wrapped.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectActor {
				require.NotNil(t, actorSeen)
				assert.Equal(t, user.ID, *actorSeen)
			} else {
				assert.Nil(t, actorSeen)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	withActor := func(role domain.Role) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/admin", nil)
		return req.WithContext(auth.WithActor(req.Context(), auth.Actor{ID: uuid.New(), Role: role}))
	}

	tests := []struct {
		name           string
		enforce        bool
		req            *http.Request
		expectedStatus int
	}{
		{name: "admin_allowed", enforce: true, req: withActor(domain.RoleAdmin), expectedStatus: http.StatusOK},
		{name: "member_forbidden", enforce: true, req: withActor(domain.RoleMember), expectedStatus: http.StatusForbidden},
		{name: "anonymous_unauthorized", enforce: true, req: httptest.NewRequest(http.MethodPost, "/admin", nil), expectedStatus: http.StatusUnauthorized},
		{name: "open_when_not_enforced", enforce: false, req: httptest.NewRequest(http.MethodPost, "/admin", nil), expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			middleware.RequireRole(domain.RoleAdmin, tt.enforce)(http.HandlerFunc(ok)).ServeHTTP(w, tt.req)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

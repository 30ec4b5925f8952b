// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tomtom215/mediarec/internal/logging"
	"github.com/tomtom215/mediarec/internal/validation"
)

func newRequestWithID(id string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/test", nil)
	return req.WithContext(logging.ContextWithRequestID(req.Context(), id))
}

func TestResponseWriter_Success(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	NewResponseWriter(rec, newRequestWithID("req-123")).Success(map[string]string{"hello": "world"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}

	env := decodeEnvelope[map[string]string](t, rec)
	if !env.Success {
		t.Error("success = false, want true")
	}
	if env.Error != nil {
		t.Errorf("error = %+v, want nil", env.Error)
	}
	if env.Data["hello"] != "world" {
		t.Errorf("data = %v", env.Data)
	}
	if env.Meta == nil || env.Meta.RequestID != "req-123" {
		t.Fatalf("meta = %+v, want request_id req-123", env.Meta)
	}
	if env.Meta.Timestamp.IsZero() {
		t.Error("meta.timestamp is zero")
	}
}

func TestResponseWriter_SuccessWithPagination(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	NewResponseWriter(rec, newRequestWithID("req-1")).SuccessWithPagination([]string{"a", "b"}, &PaginationMeta{
		Total: 10, Count: 2, Offset: 4, Limit: 2, HasMore: true,
	})

	env := decodeEnvelope[[]string](t, rec)
	if len(env.Data) != 2 {
		t.Errorf("data = %v", env.Data)
	}
	p := env.Meta.Pagination
	if p == nil {
		t.Fatal("meta.pagination is nil")
	}
	if p.Total != 10 || p.Count != 2 || p.Offset != 4 || p.Limit != 2 || !p.HasMore {
		t.Errorf("pagination = %+v", p)
	}
}

func TestResponseWriter_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		write      func(rw *ResponseWriter)
		wantStatus int
		wantCode   string
	}{
		{"bad request", func(rw *ResponseWriter) { rw.BadRequest("bad") }, http.StatusBadRequest, ErrCodeBadRequest},
		{"not found", func(rw *ResponseWriter) { rw.NotFound("missing") }, http.StatusNotFound, ErrCodeNotFound},
		{"method not allowed", func(rw *ResponseWriter) { rw.MethodNotAllowed() }, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed},
		{"too many requests", func(rw *ResponseWriter) { rw.TooManyRequests("slow down") }, http.StatusTooManyRequests, ErrCodeTooManyRequests},
		{"internal", func(rw *ResponseWriter) { rw.InternalError("boom") }, http.StatusInternalServerError, ErrCodeInternalError},
		{"unavailable", func(rw *ResponseWriter) { rw.ServiceUnavailable("loading") }, http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
		{"timeout", func(rw *ResponseWriter) { rw.Timeout("slow") }, http.StatusServiceUnavailable, ErrCodeTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			tt.write(NewResponseWriter(rec, newRequestWithID("req-err")))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			env := decodeEnvelope[any](t, rec)
			if env.Success {
				t.Error("success = true, want false")
			}
			if env.Error == nil {
				t.Fatal("error is nil")
			}
			if env.Error.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", env.Error.Code, tt.wantCode)
			}
			if env.Error.RequestID != "req-err" {
				t.Errorf("error.request_id = %q, want req-err", env.Error.RequestID)
			}
		})
	}
}

func TestResponseWriter_RequestValidationError(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	verr := validation.NewRequestValidationError("k", "min", "k must be at least 1", 0)
	NewResponseWriter(rec, newRequestWithID("req-v")).RequestValidationError(verr)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	env := decodeEnvelope[any](t, rec)
	if env.Error == nil || env.Error.Code != ErrCodeValidationFailed {
		t.Fatalf("error = %+v, want %s", env.Error, ErrCodeValidationFailed)
	}
	if env.Error.Details == nil {
		t.Error("error.details is nil, want field details")
	}
}

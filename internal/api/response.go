// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelfold/internal/logging"
)

// APIResponse is the envelope every endpoint answers with. Exactly one of
// Data and Error is set.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *APIMeta    `json:"meta,omitempty"`
}

// APIError is the machine-readable half of a failed response.
type APIError struct {
	Code      string      `json:"code"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// APIMeta is filled in by ResponseWriter on every response.
type APIMeta struct {
	RequestID  string    `json:"request_id,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	DurationMs int64     `json:"duration_ms,omitempty"`
	// Cached is set when the recommendation came from the result cache.
	Cached bool `json:"cached,omitempty"`
}

// Error codes
const (
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeTooManyRequests    = "TOO_MANY_REQUESTS"
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeNotImplemented     = "NOT_IMPLEMENTED"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeValidationFailed   = "VALIDATION_FAILED"
	ErrCodeInvalidFilter      = "INVALID_FILTER"
	ErrCodeInvalidRating      = "INVALID_RATING"
	ErrCodeModelCorrupt       = "MODEL_CORRUPT"
)

// ResponseWriter writes APIResponse envelopes for one request. The
// duration in the meta block is measured from construction.
type ResponseWriter struct {
	w       http.ResponseWriter
	r       *http.Request
	started time.Time
}

// NewResponseWriter starts the duration clock for r.
func NewResponseWriter(w http.ResponseWriter, r *http.Request) *ResponseWriter {
	return &ResponseWriter{w: w, r: r, started: time.Now()}
}

// Success answers 200 with data.
func (rw *ResponseWriter) Success(data interface{}) {
	rw.send(http.StatusOK, APIResponse{Data: data}, nil)
}

// SuccessWithMeta answers 200 with data and caller-provided meta flags.
func (rw *ResponseWriter) SuccessWithMeta(data interface{}, meta *APIMeta) {
	rw.send(http.StatusOK, APIResponse{Data: data}, meta)
}

// SuccessStatus answers with data under a custom status. Readiness uses it
// to report details alongside a 503.
func (rw *ResponseWriter) SuccessStatus(statusCode int, data interface{}) {
	rw.send(statusCode, APIResponse{Data: data}, nil)
}

// Error answers statusCode with an error code and message.
func (rw *ResponseWriter) Error(statusCode int, code, message string) {
	rw.ErrorWithDetails(statusCode, code, message, nil)
}

// ErrorWithDetails is Error with a structured details payload.
func (rw *ResponseWriter) ErrorWithDetails(statusCode int, code, message string, details interface{}) {
	rw.send(statusCode, APIResponse{Error: &APIError{
		Code:    code,
		Message: message,
		Details: details,
	}}, nil)
}

func (rw *ResponseWriter) BadRequest(message string) {
	rw.Error(http.StatusBadRequest, ErrCodeBadRequest, message)
}

func (rw *ResponseWriter) NotFound(message string) {
	rw.Error(http.StatusNotFound, ErrCodeNotFound, message)
}

func (rw *ResponseWriter) MethodNotAllowed() {
	rw.Error(http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed")
}

func (rw *ResponseWriter) TooManyRequests(message string) {
	rw.Error(http.StatusTooManyRequests, ErrCodeTooManyRequests, message)
}

func (rw *ResponseWriter) InternalError(message string) {
	rw.Error(http.StatusInternalServerError, ErrCodeInternalError, message)
}

func (rw *ResponseWriter) ServiceUnavailable(message string) {
	rw.Error(http.StatusServiceUnavailable, ErrCodeServiceUnavailable, message)
}

// ValidationError answers 400 VALIDATION_FAILED with per-field details.
func (rw *ResponseWriter) ValidationError(message string, details interface{}) {
	rw.ErrorWithDetails(http.StatusBadRequest, ErrCodeValidationFailed, message, details)
}

// send completes the envelope and encodes it. Success follows the status
// class and the request id is copied into both meta and error.
func (rw *ResponseWriter) send(statusCode int, resp APIResponse, meta *APIMeta) {
	if meta == nil {
		meta = &APIMeta{}
	}
	meta.RequestID = logging.RequestIDFromContext(rw.r.Context())
	meta.Timestamp = time.Now()
	meta.DurationMs = time.Since(rw.started).Milliseconds()

	resp.Success = resp.Error == nil && statusCode < http.StatusBadRequest
	resp.Meta = meta
	if resp.Error != nil {
		resp.Error.RequestID = meta.RequestID
	}

	h := rw.w.Header()
	h.Set("Content-Type", "application/json; charset=utf-8")
	rw.w.WriteHeader(statusCode)
	if err := json.NewEncoder(rw.w).Encode(resp); err != nil {
		logging.Ctx(rw.r.Context()).Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// WriteSuccess answers 200 with data in one call.
func WriteSuccess(w http.ResponseWriter, r *http.Request, data interface{}) {
	NewResponseWriter(w, r).Success(data)
}

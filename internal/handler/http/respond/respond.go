// Package respond provides utilities for sending HTTP responses in the API's
// JSON envelope format. It includes error handling with sanitization to
// prevent leaking sensitive information.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/Farhad-Valipour/MongoDB-News-API/internal/common/pagination"
	"github.com/Farhad-Valipour/MongoDB-News-API/internal/handler/http/requestid"
)

// APIVersion is reported in every success envelope.
const APIVersion = "1.0"

// Machine-readable error codes carried in error envelopes.
const (
	CodeInvalidCursor     = "INVALID_CURSOR"
	CodeInvalidDateFormat = "INVALID_DATE_FORMAT"
	CodeValidationError   = "VALIDATION_ERROR"
	CodeNotFound          = "NEWS_NOT_FOUND"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeRateLimited       = "RATE_LIMIT_EXCEEDED"
	CodeInternalError     = "INTERNAL_ERROR"
	CodeUnavailable       = "SERVICE_UNAVAILABLE"
)

// Metadata describes how a successful response was produced.
type Metadata struct {
	QueryTimeMS float64 `json:"query_time_ms"`
	Timestamp   string  `json:"timestamp"`
	APIVersion  string  `json:"api_version"`
}

// Envelope is the uniform success response body.
type Envelope struct {
	Success    bool             `json:"success"`
	Data       any              `json:"data"`
	Pagination *pagination.Meta `json:"pagination,omitempty"`
	Metadata   Metadata         `json:"metadata"`
}

// ErrorDetail is the machine-readable error description.
type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Status    int    `json:"status"`
	Timestamp string `json:"timestamp"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorEnvelope is the uniform error response body.
type ErrorEnvelope struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Log the error but cannot send error response as headers already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Success writes a success envelope around data. start is the moment the
// handler began processing; the elapsed time since then becomes
// query_time_ms. A nil pagination is omitted from the body.
func Success(w http.ResponseWriter, code int, data any, page *pagination.Meta, start time.Time) {
	JSON(w, code, Envelope{
		Success:    true,
		Data:       data,
		Pagination: page,
		Metadata: Metadata{
			QueryTimeMS: round2(float64(time.Since(start).Microseconds()) / 1000),
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
			APIVersion:  APIVersion,
		},
	})
}

// Error writes an error envelope with the given status, machine-readable
// code, and user-facing message. The request ID is taken from the request
// context when present.
func Error(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	JSON(w, status, ErrorEnvelope{
		Success: false,
		Error: ErrorDetail{
			Code:      code,
			Message:   message,
			Status:    status,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			RequestID: requestid.FromContext(r.Context()),
		},
	})
}

// InternalError logs the underlying error with sensitive values masked and
// writes a generic 500 envelope. The real error never reaches the client.
func InternalError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Default().Error("internal server error",
		slog.String("request_id", requestid.FromContext(r.Context())),
		slog.String("error", SanitizeError(err)))
	Error(w, r, http.StatusInternalServerError, CodeInternalError, "internal server error")
}

func round2(x float64) float64 {
	return float64(int(x*100+0.5)) / 100
}

package http

import (
	"encoding/json"
	"net/http"
)

// ContentTypeJSON is sent with every JSON body.
const ContentTypeJSON = "application/json;charset=UTF-8"

// ── Response ─────────────────────────────────────────────────────────────────

// Response wraps http.ResponseWriter with JSON helpers.
type Response struct {
	w http.ResponseWriter
}

// NewResponse wraps a ResponseWriter.
func NewResponse(w http.ResponseWriter) *Response {
	return &Response{w: w}
}

// ── JSON responses ────────────────────────────────────────────────────────────

// JSON sends v as a JSON body with the given status.
//
//	res.JSON(http.StatusOK, users)
func (res *Response) JSON(status int, v any) {
	res.w.Header().Set("Content-Type", ContentTypeJSON)
	res.w.WriteHeader(status)
	_ = json.NewEncoder(res.w).Encode(v)
}

// OK sends 200 with v as the body, without an envelope.
func (res *Response) OK(v any) {
	res.JSON(http.StatusOK, v)
}

// Error sends a JSON error response.
//
//	res.Error(http.StatusNotFound, "Resource not found")
func (res *Response) Error(status int, message string) {
	res.JSON(status, envelope{"message": message})
}

// NotFound sends 404.
func (res *Response) NotFound(message ...string) {
	res.Error(http.StatusNotFound, first(message, "Not found."))
}

// ServerError sends 500.
func (res *Response) ServerError(message ...string) {
	res.Error(http.StatusInternalServerError, first(message, "Server Error."))
}

// ── Helpers ──────────────────────────────────────────────────────────────────

type envelope map[string]any

func first(ss []string, fallback string) string {
	if len(ss) > 0 && ss[0] != "" {
		return ss[0]
	}
	return fallback
}

// SPDX-License-Identifier: MIT

package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tunegate/tunegate/internal/log"
	"github.com/tunegate/tunegate/internal/saavn"
	"github.com/tunegate/tunegate/internal/youtube"
)

// envelope is the uniform response shape. Exactly one of Data or Error is
// set depending on Status.
type envelope struct {
	Status string     `json:"status"`
	Data   any        `json:"data,omitempty"`
	Error  *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

func marshalData(data any) ([]byte, error) {
	return json.Marshal(envelope{Status: "ok", Data: data})
}

func writeRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeData(w http.ResponseWriter, status int, data any) {
	body, err := marshalData(data)
	if err != nil {
		writeRaw(w, http.StatusInternalServerError,
			[]byte(`{"status":"error","error":{"message":"response encoding failed"}}`))
		return
	}
	writeRaw(w, status, body)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	body, err := json.Marshal(envelope{
		Status: "error",
		Error: &errorBody{
			Message:   message,
			RequestID: log.RequestIDFromContext(r.Context()),
		},
	})
	if err != nil {
		body = []byte(`{"status":"error","error":{"message":"response encoding failed"}}`)
	}
	writeRaw(w, status, body)
}

// classifyUpstreamError maps client sentinel errors onto HTTP status codes
// and client-safe messages. Internal detail stays in the logs.
func classifyUpstreamError(err error) (int, string) {
	switch {
	case errors.Is(err, saavn.ErrNotFound) || errors.Is(err, youtube.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, youtube.ErrDisabled):
		return http.StatusServiceUnavailable, "video features are disabled"
	case errors.Is(err, saavn.ErrTimeout) || errors.Is(err, youtube.ErrTimeout):
		return http.StatusGatewayTimeout, "upstream request timed out"
	case errors.Is(err, saavn.ErrUpstreamUnavailable) || errors.Is(err, youtube.ErrUpstreamUnavailable):
		return http.StatusBadGateway, "upstream service unavailable"
	case errors.Is(err, saavn.ErrUpstreamError) || errors.Is(err, youtube.ErrUpstreamError):
		return http.StatusBadGateway, "upstream service error"
	case errors.Is(err, saavn.ErrBadResponse) || errors.Is(err, youtube.ErrBadResponse):
		return http.StatusBadGateway, "upstream returned an unusable response"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func (s *Server) respondUpstreamError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, msg := classifyUpstreamError(err)
	logger := log.WithComponentFromContext(r.Context(), "api")
	evt := logger.Warn()
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		evt = logger.Error()
	}
	evt.
		Str("event", "upstream.request_failed").
		Str("operation", op).
		Int("status", status).
		Err(err).
		Msg("upstream request failed")
	writeError(w, r, status, msg)
}

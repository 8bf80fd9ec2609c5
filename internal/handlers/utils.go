package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/YasinSaleem/legal-doc-ai/internal/adapter"
	"github.com/YasinSaleem/legal-doc-ai/internal/config"
)

func writeJsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but can't send a clean status code now
		logRH.Error("Error encoding response: %v", err)
	}
}

func validateContext(ctx context.Context) bool {
	if traceId, ok := ctx.Value(config.TRACE_ID_KEY).(string); ok {
		logRH.With("traceId:", traceId)
	}
	if ctx.Err() != nil {
		logRH.Warn("context error", ctx.Err())
		return false
	}

	select {
	case <-ctx.Done():
		logRH.Warn("context cancelled")
		return false
	default:
		return true

	}
}

// WriteErrorResponse maps err through the error taxonomy to pick the status.
func WriteErrorResponse(w http.ResponseWriter, err error) {
	status, body := adapter.ToErrorResponse(err)
	writeJsonResponse(w, status, body)
}

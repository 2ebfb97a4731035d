package api

import (
	"encoding/json"
	"net/http"
	"time"

	"xsim-analytics/observatory/internal/constants"
)

// APIResponse is the envelope every JSON endpoint returns.
type APIResponse[T any] struct {
	Status    constants.APIStatus `json:"status"`
	Timestamp time.Time           `json:"timestamp"`
	Data      *T                  `json:"data,omitempty"`
	Error     string              `json:"error,omitempty"`
}

func respondWithSuccess[T any](w http.ResponseWriter, statusCode int, data *T) {
	resp := APIResponse[T]{
		Status:    constants.APIStatusOk,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}

	w.Header().Set("Content-Type", "application/json")

	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	resp := APIResponse[any]{
		Status:    constants.APIStatusError,
		Timestamp: time.Now().UTC(),
		Error:     message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	_ = json.NewEncoder(w).Encode(resp)
}

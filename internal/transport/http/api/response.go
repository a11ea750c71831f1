package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// WriteJSON writes any payload with the given status. Success bodies are the
// bare record or list; errors go through Message.
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Warn("write json failed", zap.Error(err))
	}
}

// Message writes the `{"message": ...}` error body every failure shares.
func Message(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"message": message})
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

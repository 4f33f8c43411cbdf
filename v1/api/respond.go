package api

import (
	"encoding/json"
	"net/http"
)

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondInvalid(w http.ResponseWriter, details []FieldError) {
	respondJSON(w, http.StatusBadRequest, map[string]any{
		"ok":      false,
		"error":   "invalid request",
		"details": details,
	})
}

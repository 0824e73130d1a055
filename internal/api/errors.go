package api

import (
	"encoding/json"
	"net/http"
)

// writeError writes the {"error": message} body used by the generate endpoint.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeAuthResult writes the {"success", "message"} body used by the auth endpoint.
func writeAuthResult(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, AuthResponse{Success: status == http.StatusOK, Message: message})
}

// writeJSON writes a JSON response with the given HTTP status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

package handlers

import (
	"encoding/json"
	"net/http"
)

// writeJSON writes a JSON response body with the given status code
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

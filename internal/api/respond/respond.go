// Package respond provides the shared JSON envelope for all API responses.
// Every response carries a boolean "success" field; payloads ride under an
// entity-named key, failures under "error".
package respond

import (
	"encoding/json"
	"net/http"
)

// Fields is the set of entity-named keys merged into the envelope.
type Fields map[string]interface{}

// Success writes {"success": true, ...fields}.
func Success(w http.ResponseWriter, status int, fields Fields) {
	payload := Fields{"success": true}
	for k, v := range fields {
		payload[k] = v
	}
	writeJSON(w, status, payload)
}

// SuccessList writes a list payload with its count under the given key.
func SuccessList(w http.ResponseWriter, key string, count int, list interface{}) {
	Success(w, http.StatusOK, Fields{key: list, "count": count})
}

// Error writes {"success": false, "error": message}.
func Error(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Fields{"success": false, "error": message})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

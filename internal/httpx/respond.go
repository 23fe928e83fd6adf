package httpx

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the body shape for non-2xx responses across the API.
type MessageResponse struct {
	Message string `json:"message"`
}

// RespondJSON writes v as the response body. The API contract pins exact body
// shapes (bare arrays and objects), so no envelope is applied.
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondMessage writes a structured {message} error body.
func RespondMessage(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, MessageResponse{Message: message})
}

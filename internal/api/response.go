package api

import (
	"encoding/json"
	"net/http"

	"github.com/mvail/userdir/internal/core"
)

// WriteJSON writes a JSON response.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// WriteError writes the error's client-safe message as a bare JSON string.
// The error code maps to the HTTP status but is never serialized; clients
// get no structured detail.
func WriteError(w http.ResponseWriter, err *core.AppError) {
	WriteJSON(w, err.Code.HTTPStatus(), err.Message)
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"emulated-hue/internal/domain/model"
	"emulated-hue/internal/domain/response"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // Best-effort write to response; connection may be closed
	json.NewEncoder(w).Encode(v)
}

// writeMessage writes the {"message": ...} error envelope.
func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, response.Message{Message: message})
}

// writeError maps domain errors onto their HTTP status. Client errors carry
// the bare sentinel message, anything else the full error text.
func writeError(w http.ResponseWriter, err error) {
	for _, c := range clientErrors {
		if errors.Is(err, c.err) {
			writeMessage(w, c.status, c.err.Error())
			return
		}
	}
	writeMessage(w, http.StatusInternalServerError, err.Error())
}

var clientErrors = []struct {
	err    error
	status int
}{
	{model.ErrInvalidJSON, http.StatusBadRequest},
	{model.ErrBadRequest, http.StatusBadRequest},
	{model.ErrEntityNotExposed, http.StatusUnauthorized},
	{model.ErrEntityNotFound, http.StatusNotFound},
}

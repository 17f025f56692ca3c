package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"BOAT_CHECKOUT_BACK-END/internal/dto"
)

const maxRequestBody = 1 << 20

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteErrorResponse writes the standard error body
func WriteErrorResponse(w http.ResponseWriter, status int, err string, message string) {
	WriteJSONResponse(w, status, dto.ErrorResponse{Error: err, Message: message})
}

// DecodeJSONRequest decodes the request body into dst. On failure it writes a
// 400 response and returns the error, so callers only need to return.
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		msg := "Request body must be valid JSON"
		if errors.Is(err, io.EOF) {
			msg = "Request body is required"
		}
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid request", msg)
		return err
	}
	return nil
}

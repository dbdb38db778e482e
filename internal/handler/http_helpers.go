package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "pdf-translator/pkg/errors"
)

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeAppError maps an application error onto its HTTP status and surfaces
// the error type so the dashboard can show the right message.
func writeAppError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		writeJSON(w, appErr.StatusCode, map[string]string{
			"error": appErr.Message,
			"type":  string(appErr.Type),
		})
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

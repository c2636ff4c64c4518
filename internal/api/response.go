package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"promptlens/internal/domain"
)

// HTTPError carries a status code to the client.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// JSONResponse writes data as JSON with the given status.
func JSONResponse(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// JSONError writes {"error": message}.
func JSONError(w http.ResponseWriter, status int, message string) error {
	return JSONResponse(w, status, map[string]string{
		"error": message,
	})
}

// HandleError maps err onto a status code and writes it.
func HandleError(w http.ResponseWriter, err error) {
	var httpErr *HTTPError
	switch {
	case errors.As(err, &httpErr):
		JSONError(w, httpErr.Code, httpErr.Message)
	case errors.Is(err, domain.ErrInvalidInput):
		JSONError(w, http.StatusBadRequest, err.Error())
	default:
		JSONError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// DecodeJSON decodes the request body into v.
func DecodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid JSON payload: " + err.Error(),
		}
	}
	return nil
}

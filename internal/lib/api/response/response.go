package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"shorturl-service/internal/lib/result"

	"github.com/go-playground/validator/v10"
)

type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

const (
	StatusOK    = "OK"
	StatusError = "Error"
)

func OK() Response {
	return Response{Status: StatusOK}
}

func Error(msg string) Response {
	return Response{Status: StatusError, Error: msg}
}

// ValidationError flattens validator errors into one human-readable message.
func ValidationError(errs validator.ValidationErrors) Response {
	var errMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "url":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not a valid URL", err.Field()))
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}

	return Error(strings.Join(errMsgs, ", "))
}

// HTTPStatus maps a service failure code to a transport status code.
// Uncoded failures are internal errors.
func HTTPStatus(code result.Code) int {
	switch code {
	case result.CodeUnknownUser, result.CodeForbidden:
		return http.StatusForbidden
	case result.CodeInvalidURL, result.CodeInvalidID, result.CodeInvalidPage:
		return http.StatusBadRequest
	case result.CodeNotUnique:
		return http.StatusConflict
	case result.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// RenderJSON writes v as a JSON response with the given status code.
func RenderJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(v)
}

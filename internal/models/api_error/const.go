package api_error

import (
	"fmt"
	"net/http"
)

// Helpers covering the error taxonomy of the API: validation and duplicate
// failures map to 400, missing entities to 404, credential problems to
// 401/403.

func Validation(err error) APIError {
	return New(err, http.StatusBadRequest, "invalid request")
}

func ValidationStr(format string, args ...interface{}) APIError {
	return New(fmt.Errorf(format, args...), http.StatusBadRequest, "invalid request")
}

func NotFound(what string) APIError {
	return NewFromStr(fmt.Sprintf("%s not found", what), http.StatusNotFound)
}

func Duplicate(what string) APIError {
	return NewFromStr(fmt.Sprintf("%s already in use", what), http.StatusBadRequest)
}

func Unauthorized(msg string) APIError {
	return NewFromStr(msg, http.StatusUnauthorized)
}

func Forbidden(msg string) APIError {
	return NewFromStr(msg, http.StatusForbidden)
}

func Internal(err error) APIError {
	return New(err, http.StatusInternalServerError, "unexpected server error occurred")
}

// Package server provides the HTTP REST API for the resume matcher.
package server

import (
	"fmt"
	"net/http"

	"github.com/jonathan/resume-matcher/internal/fetch"
	"github.com/jonathan/resume-matcher/internal/llm"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNotFound indicates a requested record does not exist
type ErrNotFound struct {
	Kind string
	ID   string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Analysis-boundary failures map to gateway errors except for missing
// credentials, which is a service configuration problem.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrNotFound:
		return http.StatusNotFound
	case *llm.ConfigError:
		return http.StatusServiceUnavailable
	case *llm.TransportError, *llm.EmptyResponseError, *llm.DecodeError:
		return http.StatusBadGateway
	case *fetch.Error:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

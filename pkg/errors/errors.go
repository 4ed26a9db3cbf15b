package errors

import (
	"errors"
	"fmt"
	"strings"
)

type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return e.Message
}

func NewBadRequestError(message string) *BadRequestError {
	return &BadRequestError{Message: message}
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

type InternalError struct {
	Message string
}

func (e *InternalError) Error() string {
	return e.Message
}

func NewInternalError(message string) *InternalError {
	return &InternalError{Message: message}
}

// APIError is returned by the HTTP client when the server answers with an
// error envelope. Causes is the list shown to the user verbatim.
type APIError struct {
	Status int
	Causes []string
}

func (e *APIError) Error() string {
	if len(e.Causes) == 0 {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, strings.Join(e.Causes, "; "))
}

func NewAPIError(status int, causes ...string) *APIError {
	return &APIError{Status: status, Causes: causes}
}

// Causes flattens err into the list of messages displayed for it.
func Causes(err error) []string {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) && len(apiErr.Causes) > 0 {
		return append([]string(nil), apiErr.Causes...)
	}

	return []string{err.Error()}
}

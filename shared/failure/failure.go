package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// InternalMessage replaces the text of unexpected errors in responses.
const InternalMessage = "internal server error"

// Failure is an error that knows its HTTP status.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

func (e *Failure) Error() string {
	return e.Message
}

func newFailure(code int, msg string) error {
	return &Failure{Code: code, Message: msg}
}

// BadRequest turns err into a 400. A nil err stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return newFailure(http.StatusBadRequest, err.Error())
}

func BadRequestFromString(msg string) error {
	return newFailure(http.StatusBadRequest, msg)
}

func Unauthorized(msg string) error {
	return newFailure(http.StatusUnauthorized, msg)
}

func Forbidden(msg string) error {
	return newFailure(http.StatusForbidden, msg)
}

// NotFound takes the full message, e.g. "room not found".
func NotFound(msg string) error {
	return newFailure(http.StatusNotFound, msg)
}

// Conflict is used when the write would break a stored relation, e.g. deleting a booked room.
func Conflict(msg string) error {
	return newFailure(http.StatusConflict, msg)
}

// DecodeError reports a payload that could not be decoded into its typed shape.
type DecodeError struct {
	Source string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Source, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decode wraps err as a DecodeError for the named source (request body, event, cache entry).
func Decode(source string, err error) error {
	if err == nil {
		return nil
	}

	return &DecodeError{Source: source, Err: err}
}

func IsDecode(err error) bool {
	var decodeErr *DecodeError

	return errors.As(err, &decodeErr)
}

// GetCode maps err to an HTTP status: the Failure code, 400 for decode errors, 500 otherwise.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	if IsDecode(err) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// Message is the text safe to show a client. Unexpected errors are reduced to InternalMessage.
func Message(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Message
	}

	if IsDecode(err) {
		return err.Error()
	}

	return InternalMessage
}

// Package response writes the JSON envelopes every endpoint answers with:
// {"data": ...} on success, {"message": ...} for acknowledgements and {"error": ...} on failure.
package response

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/logger"
)

const headerRetryAfter = "Retry-After"

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: &message})
}

func WithJSON[T any](writer http.ResponseWriter, code int, payload T) {
	write(writer, code, Data[T]{Data: &payload})
}

// WithError answers with the status carried by err. Unexpected errors are logged with their
// stack and reported to the client only as a generic message.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	if code >= http.StatusInternalServerError {
		logger.ErrorWithStack(err)
	}

	msg := failure.Message(err)

	write(writer, code, Error{Error: &msg})
}

// WithRequestLimitExceeded tells the client how many seconds to wait before retrying.
func WithRequestLimitExceeded(writer http.ResponseWriter, retryAfterSeconds int) {
	if retryAfterSeconds > 0 {
		writer.Header().Set(headerRetryAfter, strconv.Itoa(retryAfterSeconds))
	}

	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	writer.Header().Set("Connection", "close")
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

// write encodes before touching the writer so a payload that cannot be encoded still gets a 500.
func write(writer http.ResponseWriter, code int, payload any) {
	var body bytes.Buffer

	if err := json.NewEncoder(&body).Encode(payload); err != nil {
		logger.ErrorWithStack(err)

		code = http.StatusInternalServerError
		body.Reset()
		body.WriteString(`{"error":"` + failure.InternalMessage + `"}`)
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err := writer.Write(body.Bytes()); err != nil {
		logger.ErrorWithStack(err)
	}
}

package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/asymdl-hash/AsymLAB-sub000/internal/domain"
)

// Error codes carried in ErrorResponse.Code.
const (
	CodeIllegalTransition = "illegal_transition"
	CodeReasonRequired    = "reason_required"
	CodeNotFound          = "not_found"
	CodeValidation        = "validation"
	CodeUnauthorized      = "unauthorized"
	CodeConflict          = "conflict"
	CodeRateLimited       = "rate_limited"
	CodeInternal          = "internal"
)

// Status maps a service error to its HTTP status and error code.
func Status(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrIllegalTransition):
		return http.StatusConflict, CodeIllegalTransition
	case errors.Is(err, domain.ErrReasonRequired):
		return http.StatusConflict, CodeReasonRequired
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, CodeNotFound
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, CodeValidation
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, CodeUnauthorized
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, CodeConflict
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

// NewErrorResponse builds the response body for err. Internal errors are not
// described to the caller.
func NewErrorResponse(err error) ErrorResponse {
	status, code := Status(err)
	if status == http.StatusInternalServerError {
		return ErrorResponse{Error: "internal server error", Code: code}
	}

	resp := ErrorResponse{Error: err.Error(), Code: code}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		for _, fe := range ve.Errors {
			resp.Fields = append(resp.Fields, FieldError{Field: fe.Field, Message: fe.Message})
		}
	}
	return resp
}

// ResponseError is the client-side form of a non-2xx response. It unwraps to
// the domain sentinel matching Code, or domain.ErrTransport for server faults.
type ResponseError struct {
	Status int
	Body   ErrorResponse
}

func (e *ResponseError) Error() string {
	msg := e.Body.Error
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	return fmt.Sprintf("http %d: %s", e.Status, msg)
}

func (e *ResponseError) Unwrap() error {
	switch e.Body.Code {
	case CodeIllegalTransition:
		return domain.ErrIllegalTransition
	case CodeReasonRequired:
		return domain.ErrReasonRequired
	case CodeNotFound:
		return domain.ErrNotFound
	case CodeValidation:
		return domain.ErrValidation
	case CodeUnauthorized:
		return domain.ErrUnauthorized
	case CodeConflict:
		return domain.ErrConflict
	}
	switch {
	case e.Status == http.StatusNotFound:
		return domain.ErrNotFound
	case e.Status == http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case e.Status == http.StatusBadRequest:
		return domain.ErrValidation
	default:
		return domain.ErrTransport
	}
}

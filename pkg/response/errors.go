package response

import (
	"fmt"
	"net/http"
)

// Business error codes
const (
	Fail               ResponseCode = 0
	ParseError         ResponseCode = 1
	InvalidParameter   ResponseCode = 2
	DomainNotAllowed   ResponseCode = 3
	Unauthorized       ResponseCode = 401
	InvalidCredentials ResponseCode = 402
	Forbidden          ResponseCode = 403
	NotFound           ResponseCode = 404
	Conflict           ResponseCode = 409
	TooManyRequests    ResponseCode = 429
	Internal           ResponseCode = 500
	UpstreamFailure    ResponseCode = 502
)

var httpStatus = map[ResponseCode]int{
	Fail:               http.StatusInternalServerError,
	ParseError:         http.StatusBadRequest,
	InvalidParameter:   http.StatusBadRequest,
	DomainNotAllowed:   http.StatusBadRequest,
	Unauthorized:       http.StatusUnauthorized,
	InvalidCredentials: http.StatusUnauthorized,
	Forbidden:          http.StatusForbidden,
	NotFound:           http.StatusNotFound,
	Conflict:           http.StatusConflict,
	TooManyRequests:    http.StatusTooManyRequests,
	Internal:           http.StatusInternalServerError,
	UpstreamFailure:    http.StatusBadGateway,
}

type BusinessError struct {
	Code    ResponseCode
	Msg     string
	Err     error
	Details map[string]string
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the business code to a status line
func (e *BusinessError) HTTPStatus() int {
	if status, ok := httpStatus[e.Code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

type ErrorOption func(*BusinessError)

func WithErrorCode(code ResponseCode) ErrorOption {
	return func(be *BusinessError) {
		be.Code = code
	}
}

func WithErrorMessage(msg string) ErrorOption {
	return func(be *BusinessError) {
		be.Msg = msg
	}
}

func WithError(err error) ErrorOption {
	return func(be *BusinessError) {
		be.Err = err
	}
}

func WithDetails(details map[string]string) ErrorOption {
	return func(be *BusinessError) {
		be.Details = details
	}
}

func NewBusinessError(opts ...ErrorOption) *BusinessError {
	err := &BusinessError{
		Code: Fail,
		Msg:  "business error",
		Err:  nil,
	}
	for _, opt := range opts {
		opt(err)
	}
	return err
}

// ========== shorthands ==========

func ErrValidation(msg string, details map[string]string) *BusinessError {
	return NewBusinessError(
		WithErrorCode(InvalidParameter),
		WithErrorMessage(msg),
		WithDetails(details),
	)
}

func ErrUnauthorized(msg string) *BusinessError {
	return NewBusinessError(WithErrorCode(Unauthorized), WithErrorMessage(msg))
}

func ErrForbidden(msg string) *BusinessError {
	return NewBusinessError(WithErrorCode(Forbidden), WithErrorMessage(msg))
}

func ErrNotFound(what string) *BusinessError {
	return NewBusinessError(WithErrorCode(NotFound), WithErrorMessage(what+" not found"))
}

func ErrConflict(msg string) *BusinessError {
	return NewBusinessError(WithErrorCode(Conflict), WithErrorMessage(msg))
}

// ErrInternal hides err from the client; it is kept for logging
func ErrInternal(err error) *BusinessError {
	return NewBusinessError(
		WithErrorCode(Internal),
		WithErrorMessage("internal server error"),
		WithError(err),
	)
}

package response

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusinessError_HTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *BusinessError
		want int
	}{
		{"validation", ErrValidation("bad", nil), http.StatusBadRequest},
		{"domain", NewBusinessError(WithErrorCode(DomainNotAllowed)), http.StatusBadRequest},
		{"unauthorized", ErrUnauthorized("login"), http.StatusUnauthorized},
		{"credentials", NewBusinessError(WithErrorCode(InvalidCredentials)), http.StatusUnauthorized},
		{"forbidden", ErrForbidden("no"), http.StatusForbidden},
		{"not found", ErrNotFound("topic"), http.StatusNotFound},
		{"conflict", ErrConflict("dup"), http.StatusConflict},
		{"rate limit", NewBusinessError(WithErrorCode(TooManyRequests)), http.StatusTooManyRequests},
		{"upstream", NewBusinessError(WithErrorCode(UpstreamFailure)), http.StatusBadGateway},
		{"default", NewBusinessError(), http.StatusInternalServerError},
		{"unknown code", NewBusinessError(WithErrorCode(ResponseCode(777))), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus())
		})
	}
}

func TestErrInternal_HidesCause(t *testing.T) {
	cause := errors.New("pq: connection refused")
	err := ErrInternal(cause)

	body := ErrorResponse(err)
	assert.Equal(t, "internal server error", body.Message)
	assert.Equal(t, body.Message, body.Error)
	assert.NotContains(t, body.Error, "pq")
	assert.ErrorIs(t, err, cause)
}

func TestErrNotFound_Message(t *testing.T) {
	assert.Equal(t, "topic not found", ErrNotFound("topic").Msg)
}

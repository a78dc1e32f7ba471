package httpx

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/target/chat-portal/internal/errors"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{apperrors.ValidationField("email", "bad"), http.StatusUnprocessableEntity},
		{apperrors.FieldConflict("username"), http.StatusConflict},
		{apperrors.NotFound("x"), http.StatusNotFound},
		{apperrors.New(apperrors.ErrCodeUnavailable, "down"), http.StatusBadGateway},
		{apperrors.New(apperrors.ErrCodeTimeout, "slow"), http.StatusGatewayTimeout},
		{apperrors.New(apperrors.ErrCodeCanceled, "gone"), 499},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusForError(tt.err), tt.err.Error())
	}
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteError(rr, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_theme", Err: errors.New("nope")})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"invalid_theme","message":"nope"}`, rr.Body.String())
}

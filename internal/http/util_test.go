package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeRedirectPath(t *testing.T) {
	tests := map[string]string{
		"":                       "/",
		"/login?mode=register":   "/login?mode=register",
		"https://evil.example/x": "/",
		"//evil.example":         "/",
		"relative":               "/",
	}
	for in, want := range tests {
		assert.Equal(t, want, safeRedirectPath(in), in)
	}
}

func TestReturnPath(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/theme", nil)
	assert.Equal(t, "/", returnPath(r))

	r.Header.Set("Referer", "http://localhost:8080/login?mode=register")
	assert.Equal(t, "/login?mode=register", returnPath(r))

	r.Header.Set("Hx-Current-Url", "http://localhost:8080/prototype/create-user")
	assert.Equal(t, "/prototype/create-user", returnPath(r))
}

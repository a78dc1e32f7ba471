package httpx

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func csrfTestHandler() http.Handler {
	return CSRFProtection(CSRFConfig{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(GetCSRFToken(r)))
	}))
}

func TestCSRFProtection_GetIssuesToken(t *testing.T) {
	rr := httptest.NewRecorder()
	csrfTestHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/login", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	cookie := findCookie(rr.Result().Cookies(), DefaultCSRFCookieName)
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
	assert.False(t, cookie.HttpOnly)
	assert.Equal(t, cookie.Value, rr.Body.String(), "token exposed to templates")
}

func TestCSRFProtection_ExistingCookieReused(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: "tok"})
	rr := httptest.NewRecorder()
	csrfTestHandler().ServeHTTP(rr, req)

	assert.Nil(t, findCookie(rr.Result().Cookies(), DefaultCSRFCookieName))
	assert.Equal(t, "tok", rr.Body.String())
}

func TestCSRFProtection_Post(t *testing.T) {
	tests := []struct {
		name       string
		cookie     string
		header     string
		form       string
		wantStatus int
	}{
		{name: "no token", wantStatus: http.StatusForbidden},
		{name: "cookie only", cookie: "tok", wantStatus: http.StatusForbidden},
		{name: "valid header", cookie: "tok", header: "tok", wantStatus: http.StatusOK},
		{name: "mismatched header", cookie: "tok", header: "nope", wantStatus: http.StatusForbidden},
		{name: "valid form field", cookie: "tok", form: "tok", wantStatus: http.StatusOK},
		{name: "mismatched form field", cookie: "tok", form: "other", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := url.Values{}
			if tt.form != "" {
				body.Set(DefaultCSRFCookieName, tt.form)
			}
			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: tt.cookie})
			}
			if tt.header != "" {
				req.Header.Set(DefaultCSRFHeaderName, tt.header)
			}
			rr := httptest.NewRecorder()
			csrfTestHandler().ServeHTTP(rr, req)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestIsForwardedHTTPS(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, isForwardedHTTPS(req))
	req.Header.Set("X-Forwarded-Proto", "http, HTTPS")
	assert.True(t, isForwardedHTTPS(req))
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

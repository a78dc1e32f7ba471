package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/chat-portal/internal/domain/account"
)

func TestHTMX_RequestDetection(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/login", nil)
	assert.False(t, IsHTMX(r))
	assert.False(t, WantsPartial(r))

	r.Header.Set("Hx-Request", "true")
	r.Header.Set("Hx-Target", "login-form")
	assert.True(t, IsHTMX(r))
	assert.True(t, WantsPartial(r))
	assert.Equal(t, "login-form", HXTarget(r))

	r.Header.Set("Hx-History-Restore-Request", "true")
	assert.True(t, IsHistoryRestore(r))
	assert.False(t, WantsPartial(r), "history restore needs the full page")
}

func TestSetHXTrigger(t *testing.T) {
	rr := httptest.NewRecorder()
	SetHXTrigger(rr, "saved", nil)
	assert.JSONEq(t, `{"saved":true}`, rr.Header().Get("Hx-Trigger"))

	rr = httptest.NewRecorder()
	SetHXTrigger(rr, "saved", map[string]string{"id": "1"})
	assert.JSONEq(t, `{"saved":{"id":"1"}}`, rr.Header().Get("Hx-Trigger"))

	rr = httptest.NewRecorder()
	SetHXTrigger(rr, "broken", func() {})
	assert.Equal(t, `{"broken":true}`, rr.Header().Get("Hx-Trigger"))
}

func TestHTMXResponse_Toast(t *testing.T) {
	rr := httptest.NewRecorder()
	HTMX(rr).Toast(account.ModeRegister.Notice())

	var got map[string]map[string]string
	require.NoError(t, json.Unmarshal([]byte(rr.Header().Get("Hx-Trigger")), &got))
	assert.Equal(t, "Account created", got[EventShowToast]["title"])
	assert.Equal(t, "default", got[EventShowToast]["variant"])

	rr = httptest.NewRecorder()
	HTMX(rr).Toast(account.Notice{})
	assert.Empty(t, rr.Header().Get("Hx-Trigger"))
}

func TestRedirect(t *testing.T) {
	tests := []struct {
		name       string
		htmx       bool
		wantStatus int
		wantHeader string
	}{
		{name: "htmx", htmx: true, wantStatus: http.StatusNoContent, wantHeader: "Hx-Redirect"},
		{name: "plain form post", wantStatus: http.StatusSeeOther, wantHeader: "Location"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/login", nil)
			if tt.htmx {
				r.Header.Set("Hx-Request", "true")
			}
			rr := httptest.NewRecorder()
			Redirect(rr, r, "/")
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "/", rr.Header().Get(tt.wantHeader))
		})
	}
}

func TestHTMXResponse_PushURL(t *testing.T) {
	rr := httptest.NewRecorder()
	HTMX(rr).PushURL("/login?mode=register").Trigger("x", nil)
	assert.Equal(t, "/login?mode=register", rr.Header().Get("Hx-Push-Url"))
}

package httpx

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/chat-portal/internal/adapters/memory"
	"github.com/target/chat-portal/internal/domain/account"
	"github.com/target/chat-portal/internal/domain/ui"
	apperrors "github.com/target/chat-portal/internal/errors"
	"github.com/target/chat-portal/internal/service"
)

type routerFixture struct {
	handler http.Handler
	notices *memory.NoticeStore
}

func newRouterFixture(t *testing.T, prototype PrototypeRunner) routerFixture {
	t.Helper()
	if _, err := os.Stat(TemplatePathFromTest); err != nil {
		t.Skipf("Templates not available, skipping: %v", err)
	}

	store := memory.NewNoticeStore(0)
	h := NewRouter(RouterServices{
		Login:      service.NewLoginService(service.LoginServiceOptions{Notices: store}),
		Notices:    service.NewNoticeService(store, nil),
		Prototype:  prototype,
		Themes:     NewThemeStore("vite-ui-theme", ui.ThemeDark, CookieOptions{}),
		TemplateFS: os.DirFS(TemplatePathFromTest),
	})
	return routerFixture{handler: h, notices: store}
}

func (f routerFixture) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, req)
	return rr
}

func withInbox(req *http.Request, inbox string) *http.Request {
	req.AddCookie(&http.Cookie{Name: DefaultInboxCookieName, Value: inbox})
	return req
}

func TestRouter_Home(t *testing.T) {
	f := newRouterFixture(t, nil)
	rr := f.do(httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.True(t, ContainsAll(body, []string{`<html lang="en" class="dark"`, "Welcome", `id="toaster"`, `id="header-title"`}))
	assert.NotContains(t, body, "/prototype/create-user", "prototype link hidden when disabled")

	cookies := rr.Result().Cookies()
	assert.NotNil(t, findCookie(cookies, DefaultInboxCookieName))
	assert.NotNil(t, findCookie(cookies, DefaultCSRFCookieName))
}

func TestRouter_LoginPageModes(t *testing.T) {
	f := newRouterFixture(t, nil)

	rr := f.do(httptest.NewRequest(http.MethodGet, "/login", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Login into system")
	assert.Contains(t, rr.Body.String(), `name="mode" value="login"`)

	rr = f.do(httptest.NewRequest(http.MethodGet, "/login?mode=register", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Create new account")
	assert.Contains(t, rr.Body.String(), `name="mode" value="register"`)
}

func TestRouter_LoginPartialNavigation(t *testing.T) {
	f := newRouterFixture(t, nil)
	rr := f.do(asHTMX(httptest.NewRequest(http.MethodGet, "/login", nil), "main"))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `hx-swap-oob="outerHTML"`)
	assert.Contains(t, body, "<title>Login into system - Chat Portal</title>")
	assert.NotContains(t, body, "<html")
}

func TestRouter_LoginToggle(t *testing.T) {
	f := newRouterFixture(t, nil)

	req := asHTMX(postForm("/login/toggle", url.Values{
		"mode":     {"login"},
		"username": {"half-typed"},
		"email":    {"a@b"},
	}), loginFormTarget)
	rr := f.do(req)

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `id="login-form"`)
	assert.Contains(t, body, "Create new account")
	assert.NotContains(t, body, "half-typed")
	assert.NotContains(t, body, "field-error")
	assert.NotContains(t, body, "<html")
	assert.Equal(t, "/login?mode=register", rr.Header().Get("Hx-Push-Url"))

	back := f.do(asHTMX(postForm("/login/toggle", url.Values{"mode": {"register"}}), loginFormTarget))
	assert.Contains(t, back.Body.String(), "Login into system")
	assert.Equal(t, "/login", back.Header().Get("Hx-Push-Url"))
}

func TestRouter_LoginToggleWithoutHTMXRendersFullPage(t *testing.T) {
	f := newRouterFixture(t, nil)
	rr := f.do(postForm("/login/toggle", url.Values{"mode": {"login"}}))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "<html")
	assert.Contains(t, rr.Body.String(), "Create new account")
}

func TestRouter_LoginSubmitBlocked(t *testing.T) {
	f := newRouterFixture(t, nil)
	inbox := uuid.NewString()

	req := withInbox(asHTMX(postForm("/login", url.Values{
		"mode":     {"login"},
		"username": {"abcd"},
		"email":    {"someone@example.com"},
		"password": {"hunter2-secret"},
	}), loginFormTarget), inbox)
	rr := f.do(req)

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, account.MsgUsernameLength)
	assert.NotContains(t, body, account.MsgEmailFormat)
	assert.Contains(t, body, `value="abcd"`)
	assert.Contains(t, body, `value="someone@example.com"`)
	assert.NotContains(t, body, "hunter2-secret")
	assert.Empty(t, rr.Header().Get("Hx-Redirect"))

	pending, err := f.notices.Drain(context.Background(), inbox)
	require.NoError(t, err)
	assert.Empty(t, pending, "blocked submit must not queue a notice")
}

func TestRouter_LoginSubmitSuccessShowsToastOnce(t *testing.T) {
	f := newRouterFixture(t, nil)
	inbox := uuid.NewString()

	rr := f.do(withInbox(asHTMX(postForm("/login", url.Values{
		"mode":     {"register"},
		"username": {"abcde"},
		"email":    {"a@b.com"},
		"password": {"password1"},
	}), loginFormTarget), inbox))

	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Hx-Redirect"))

	home := f.do(withInbox(httptest.NewRequest(http.MethodGet, "/", nil), inbox))
	require.Equal(t, http.StatusOK, home.Code)
	assert.Contains(t, home.Body.String(), "Account created")

	again := f.do(withInbox(httptest.NewRequest(http.MethodGet, "/", nil), inbox))
	assert.NotContains(t, again.Body.String(), "Account created")
}

func TestRouter_LoginSubmitPlainPostRedirects(t *testing.T) {
	f := newRouterFixture(t, nil)
	rr := f.do(postForm("/login", url.Values{
		"mode":     {"login"},
		"username": {"abcde"},
		"email":    {"a@b.com"},
		"password": {"password1"},
	}))

	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
}

func TestRouter_PostWithoutCSRFIsRejected(t *testing.T) {
	f := newRouterFixture(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	assert.Equal(t, http.StatusForbidden, f.do(req).Code)
}

func TestRouter_ThemeToggle(t *testing.T) {
	f := newRouterFixture(t, nil)

	req := postForm("/theme", url.Values{})
	req.Header.Set("Referer", "http://localhost/login")
	rr := f.do(req)

	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))
	cookie := findCookie(rr.Result().Cookies(), "vite-ui-theme")
	require.NotNil(t, cookie)
	assert.Equal(t, base64.RawURLEncoding.EncodeToString([]byte("light")), cookie.Value)

	// light -> dark, rendered on the next page
	req = asHTMX(postForm("/theme", url.Values{}), "")
	req.AddCookie(cookie)
	rr = f.do(req)
	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Contains(t, rr.Header().Get("Hx-Trigger"), `"theme":"dark"`)

	page := httptest.NewRequest(http.MethodGet, "/", nil)
	page.AddCookie(cookie)
	assert.Contains(t, f.do(page).Body.String(), `class="light"`)
}

func TestRouter_ThemeExplicit(t *testing.T) {
	f := newRouterFixture(t, nil)

	rr := f.do(postForm("/theme", url.Values{"theme": {"system"}}))
	require.Equal(t, http.StatusSeeOther, rr.Code)
	cookie := findCookie(rr.Result().Cookies(), "vite-ui-theme")
	require.NotNil(t, cookie)
	assert.Equal(t, base64.RawURLEncoding.EncodeToString([]byte("system")), cookie.Value)

	rr = f.do(postForm("/theme", url.Values{"theme": {"neon"}}))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRouter_Prototype(t *testing.T) {
	demo := account.Credentials{Username: "tester", Email: "test@test.com", Password: "testtest"}

	t.Run("disabled", func(t *testing.T) {
		f := newRouterFixture(t, nil)
		rr := f.do(httptest.NewRequest(http.MethodGet, "/prototype/create-user", nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("success page", func(t *testing.T) {
		fake := &fakePrototype{RunFunc: func(context.Context) service.PrototypeRun {
			return service.PrototypeRun{
				Demo:     demo,
				Result:   account.AuthResult{Success: true, User: &account.User{ID: "u-1", Username: "tester"}},
				Duration: 3 * time.Millisecond,
			}
		}}
		f := newRouterFixture(t, fake)
		rr := f.do(httptest.NewRequest(http.MethodGet, "/prototype/create-user", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 1, fake.calls)
		body := rr.Body.String()
		assert.True(t, ContainsAll(body, []string{"test@test.com", "u-1", "success: true"}))
		assert.NotContains(t, body, "testtest")
	})

	t.Run("gateway failure as json", func(t *testing.T) {
		fake := &fakePrototype{RunFunc: func(context.Context) service.PrototypeRun {
			return service.PrototypeRun{Demo: demo, Err: apperrors.FieldConflict("email")}
		}}
		f := newRouterFixture(t, fake)
		req := httptest.NewRequest(http.MethodGet, "/prototype/create-user", nil)
		req.Header.Set("Accept", "application/json")
		rr := f.do(req)

		require.Equal(t, http.StatusConflict, rr.Code)
		var got prototypeJSON
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.True(t, got.Called)
		assert.Equal(t, "conflict", got.ErrorCode)
	})

	t.Run("demo credentials rejected", func(t *testing.T) {
		fake := &fakePrototype{RunFunc: func(context.Context) service.PrototypeRun {
			bad := account.Credentials{Username: "dev", Email: "x", Password: "short"}
			return service.PrototypeRun{Demo: bad, Violations: account.Validate(bad)}
		}}
		f := newRouterFixture(t, fake)
		rr := f.do(httptest.NewRequest(http.MethodGet, "/prototype/create-user", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "rejected before calling")

		rr = f.do(asHTMX(httptest.NewRequest(http.MethodGet, "/prototype/create-user", nil), "main"))
		assert.Contains(t, rr.Header().Get("Hx-Trigger"), "Create user skipped")
	})
}

func TestRouter_NotFound(t *testing.T) {
	f := newRouterFixture(t, nil)

	rr := f.do(httptest.NewRequest(http.MethodGet, "/rooms", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "404")
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")

	req := httptest.NewRequest(http.MethodGet, "/rooms", nil)
	req.Header.Set("Accept", "application/json")
	rr = f.do(req)
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"not_found","message":"not found"}`, rr.Body.String())
}

func TestRouter_HealthAndStatic(t *testing.T) {
	f := newRouterFixture(t, nil)

	rr := f.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, healthResponse, rr.Body.String())

	rr = f.do(httptest.NewRequest(http.MethodHead, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Body.String())

	rr = f.do(httptest.NewRequest(http.MethodGet, "/static/js/app.js", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "no-cache", rr.Header().Get("Cache-Control"))

	rr = f.do(httptest.NewRequest(http.MethodGet, "/static/missing.js", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/target/chat-portal/internal/domain/account"
	"github.com/target/chat-portal/internal/service"
)

// fakePrototype is a func-field PrototypeRunner.
type fakePrototype struct {
	RunFunc func(ctx context.Context) service.PrototypeRun
	calls   int
}

func (f *fakePrototype) Run(ctx context.Context) service.PrototypeRun {
	f.calls++
	return f.RunFunc(ctx)
}

// fakeNotices is a func-field NoticeFeed.
type fakeNotices struct {
	PendingFunc func(ctx context.Context, inbox string) []account.Notice
	calls       int
}

func (f *fakeNotices) Pending(ctx context.Context, inbox string) []account.Notice {
	f.calls++
	return f.PendingFunc(ctx, inbox)
}

// testCSRFToken is sent as both cookie and header by postForm.
const testCSRFToken = "test-csrf-token"

// postForm builds a form POST that passes CSRF validation.
func postForm(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set(DefaultCSRFHeaderName, testCSRFToken)
	req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: testCSRFToken})
	return req
}

// asHTMX marks req as an htmx request aimed at target.
func asHTMX(req *http.Request, target string) *http.Request {
	req.Header.Set("Hx-Request", "true")
	if target != "" {
		req.Header.Set("Hx-Target", target)
	}
	return req
}

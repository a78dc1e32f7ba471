package httpx

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/target/chat-portal/internal/domain/account"
)

// safeRedirectPath keeps redirects inside the app: anything that is not a
// local absolute path becomes "/".
func safeRedirectPath(candidate string) string {
	if candidate == "" {
		return "/"
	}
	u, err := url.Parse(candidate)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") ||
		strings.HasPrefix(candidate, "//") {
		return "/"
	}
	return candidate
}

// safeRedirectFromURL reduces an absolute URL (Referer, Hx-Current-Url) to
// its local path and query.
func safeRedirectFromURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if u.Host != "" && !u.IsAbs() {
		return ""
	}
	if u.IsAbs() {
		return safeRedirectPath(u.RequestURI())
	}
	return safeRedirectPath(raw)
}

// returnPath picks where to send the visitor back to after a POST.
func returnPath(r *http.Request) string {
	if current := safeRedirectFromURL(r.Header.Get("Hx-Current-Url")); current != "" {
		return current
	}
	if referer := safeRedirectFromURL(r.Header.Get("Referer")); referer != "" {
		return referer
	}
	return "/"
}

// postedCredentials reads the credential fields of a form post verbatim;
// the validator sees exactly what was typed.
func postedCredentials(r *http.Request) account.Credentials {
	return account.Credentials{
		Username: r.PostFormValue(string(account.FieldUsername)),
		Email:    r.PostFormValue(string(account.FieldEmail)),
		Password: r.PostFormValue(string(account.FieldPassword)),
	}
}

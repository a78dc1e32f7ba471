package httpx

import (
	"bytes"
	"context"
	"html"
	"log/slog"
	"net/http"

	"github.com/target/chat-portal/internal/domain/account"
	"github.com/target/chat-portal/internal/http/ui/viewmodel"
	"github.com/target/chat-portal/internal/service"
)

// LoginFlow drives the login/register form.
type LoginFlow interface {
	Submit(ctx context.Context, in service.SubmitInput) service.SubmitResult
	Toggle(form account.Form) account.Form
}

// NoticeFeed hands out the notices queued for an inbox, once.
type NoticeFeed interface {
	Pending(ctx context.Context, inbox string) []account.Notice
}

// PrototypeRunner issues the demo CreateUser call.
type PrototypeRunner interface {
	Run(ctx context.Context) service.PrototypeRun
}

// Compile-time interface assertions to ensure concrete services satisfy their UI interfaces.
var (
	_ LoginFlow       = (*service.LoginService)(nil)
	_ NoticeFeed      = (*service.NoticeService)(nil)
	_ PrototypeRunner = (*service.PrototypeService)(nil)
)

// UIHandlers serves browser-facing routes.
type UIHandlers struct {
	T         *TemplateRenderer
	Login     LoginFlow
	Notices   NoticeFeed      // Optional
	Prototype PrototypeRunner // Optional
	Themes    ThemeStore
	IsDev     bool // Development mode flag for enhanced error reporting
	Logger    *slog.Logger
}

// logger returns the configured logger or falls back to slog.Default().
func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// PageMeta contains metadata for page rendering.
type PageMeta struct {
	Title       string
	PageTitle   string
	CurrentPage string
}

// buildLayout constructs shared layout metadata from the request context.
// Pending notices are drained only for full page loads so an htmx swap
// never swallows a toast the shell cannot show.
func (h *UIHandlers) buildLayout(r *http.Request, meta PageMeta) viewmodel.Layout {
	theme := ThemeFromContext(r.Context())
	layout := viewmodel.Layout{
		Title:           meta.Title,
		PageTitle:       meta.PageTitle,
		CurrentPage:     meta.CurrentPage,
		CSRFToken:       GetCSRFToken(r),
		Theme:           string(theme),
		IsDark:          theme.IsDark(),
		ThemeStorageKey: h.Themes.key(),
		ShowPrototype:   h.Prototype != nil,
	}

	if h.Notices == nil || WantsPartial(r) {
		return layout
	}
	if inbox, ok := InboxFromContext(r.Context()); ok {
		layout.Toasts = h.Notices.Pending(r.Context(), inbox)
	}
	return layout
}

// renderPage renders page in full, or for htmx navigation as the content
// template plus out-of-band title updates. Output is buffered so a template
// failure never leaves a half-written response.
func (h *UIHandlers) renderPage(w http.ResponseWriter, r *http.Request, page viewmodel.LayoutProvider, status int) {
	rec := &bufferedResponse{header: w.Header()}

	if !WantsPartial(r) {
		if err := h.T.RenderFull(rec, r, page); err != nil {
			h.logAndRenderTemplateError(w, r, err, "full page render")
			return
		}
		h.flush(w, rec, status)
		return
	}

	layout := page.LayoutData()
	var buf bytes.Buffer
	// A <title> element lets htmx update document.title on partial swaps.
	buf.WriteString(`<title>` + html.EscapeString(layout.Title) + `</title>`)
	buf.WriteString(`<h1 id="header-title" class="header-title" hx-swap-oob="outerHTML">` +
		html.EscapeString(layout.PageTitle) + `</h1>`)
	if err := h.T.Execute(&buf, ContentTemplateFor(layout.CurrentPage), page); err != nil {
		h.logAndRenderTemplateError(w, r, err, "partial content render")
		return
	}

	rec.header.Set("Content-Type", "text/html; charset=utf-8")
	rec.body = buf.Bytes()
	h.flush(w, rec, status)
}

// renderFragment renders a single named template, e.g. the login form swap.
func (h *UIHandlers) renderFragment(w http.ResponseWriter, r *http.Request, name string, data any, status int) {
	rec := &bufferedResponse{header: w.Header()}
	if err := h.T.RenderNamed(rec, name, data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "fragment render: "+name)
		return
	}
	h.flush(w, rec, status)
}

func (h *UIHandlers) flush(w http.ResponseWriter, rec *bufferedResponse, status int) {
	w.WriteHeader(status)
	if _, err := w.Write(rec.body); err != nil {
		h.logger().Error("failed to write response", "error", err)
	}
}

// logAndRenderTemplateError logs the failure and answers 500. Dev mode
// includes the template error in the page.
func (h *UIHandlers) logAndRenderTemplateError(w http.ResponseWriter, r *http.Request, err error, what string) {
	h.logger().Error("template render failed",
		"what", what,
		"path", r.URL.Path,
		"error", err)

	if !h.IsDev {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(`<h1>Template error</h1><p>` + html.EscapeString(what) + `</p><pre>` +
		html.EscapeString(err.Error()) + `</pre>`))
}

// bufferedResponse collects a render so status and body are written together.
type bufferedResponse struct {
	header http.Header
	body   []byte
	status int
}

func (b *bufferedResponse) Header() http.Header { return b.header }

func (b *bufferedResponse) Write(p []byte) (int, error) {
	b.body = append(b.body, p...)
	return len(p), nil
}

func (b *bufferedResponse) WriteHeader(status int) { b.status = status }

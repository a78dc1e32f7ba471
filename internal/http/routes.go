package httpx

import (
	"bytes"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"regexp"
	"strings"

	chatportal "github.com/target/chat-portal"
)

// RouterServices holds everything the HTTP router needs.
type RouterServices struct {
	Login     LoginFlow       // Required
	Notices   NoticeFeed      // Optional
	Prototype PrototypeRunner // Optional; enables GET /prototype/create-user
	Themes    ThemeStore
	Cookies   CookieOptions
	IsDev     bool         // Read templates and static files from disk
	Logger    *slog.Logger // Optional

	// TemplateFS overrides the template source (tests).
	TemplateFS fs.FS
}

// NewRouter builds the portal's handler. Middleware order, outermost first:
// browser detection, CSRF, theme, inbox.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("GET /static/", staticWithFallback(services.IsDev))

	ui := setupUIHandlers(services)
	if ui != nil {
		registerUIRoutes(mux, ui)
	}

	var h http.Handler = &notFoundHandler{mux: mux, uiHandlers: ui}
	h = Inbox(InboxConfig{Cookie: services.Cookies})(h)
	h = ThemeContext(services.Themes)(h)
	h = CSRFProtection(CSRFConfig{Cookie: services.Cookies})(h)
	return BrowserDetection()(h)
}

func registerUIRoutes(mux *http.ServeMux, h *UIHandlers) {
	mux.HandleFunc("GET /{$}", h.Home)
	mux.HandleFunc("GET /login", h.LoginPage)
	mux.HandleFunc("POST /login", h.LoginSubmit)
	mux.HandleFunc("POST /login/toggle", h.LoginToggle)
	mux.HandleFunc("POST /theme", h.ToggleTheme)
	if h.Prototype != nil {
		mux.HandleFunc("GET /prototype/create-user", h.PrototypeCreateUser)
	}
}

// setupUIHandlers creates UI handlers with a template renderer. In dev mode
// templates come from disk and are reparsed on each render.
func setupUIHandlers(services RouterServices) *UIHandlers {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	templateFS := services.TemplateFS
	switch {
	case templateFS != nil:
	case services.IsDev:
		templateFS = os.DirFS(TemplatePathFromRoot)
	default:
		sub, err := fs.Sub(chatportal.TemplateFS, TemplatePathFromRoot)
		if err != nil {
			logger.Warn("failed to create sub-filesystem for templates; falling back to disk", "error", err)
			sub = os.DirFS(TemplatePathFromRoot)
		}
		templateFS = sub
	}

	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: templateFS,
		DevMode:    services.IsDev,
		Logger:     logger,
	})
	if err != nil {
		logger.Error("failed to create template renderer", slog.Any("error", err))
		return nil
	}

	return &UIHandlers{
		T:         tr,
		Login:     services.Login,
		Notices:   services.Notices,
		Prototype: services.Prototype,
		Themes:    services.Themes,
		IsDev:     services.IsDev,
		Logger:    logger.With("component", "ui"),
	}
}

// staticWithFallback serves /static/*: from disk in dev mode, from the
// embedded FS otherwise.
func staticWithFallback(isDev bool) http.Handler {
	if isDev {
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static"))))
	}

	staticSub, err := fs.Sub(chatportal.StaticFS, "frontend/static")
	if err != nil {
		slog.Default().Warn("failed to create sub-filesystem for static assets", "error", err)
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static"))))
	}
	return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))
}

// hashedFilePattern matches content-hashed names such as app.abc12345.js.
var hashedFilePattern = regexp.MustCompile(`\.[a-f0-9]{8}\.(?:js|css)(?:\.map)?$`)

func staticWithCacheHeaders(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hashedFilePattern.MatchString(r.URL.Path) {
			w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		} else {
			w.Header().Set("Cache-Control", "no-cache")
		}
		handler.ServeHTTP(w, r)
	})
}

// notFoundHandler wraps a ServeMux and provides custom 404 handling.
type notFoundHandler struct {
	mux        *http.ServeMux
	uiHandlers *UIHandlers
}

func (h *notFoundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cw := newCaptureWriter()
	h.mux.ServeHTTP(cw, r)

	if cw.status != http.StatusNotFound || strings.HasPrefix(r.URL.Path, "/static/") {
		cw.flushTo(w)
		return
	}
	if h.uiHandlers != nil {
		h.uiHandlers.NotFound(w, r)
		return
	}
	http.NotFound(w, r)
}

// captureWriter buffers headers, status and body so we can decide post-dispatch.
type captureWriter struct {
	header http.Header
	status int
	buf    bytes.Buffer
}

func newCaptureWriter() *captureWriter {
	return &captureWriter{header: make(http.Header), status: http.StatusOK}
}

func (c *captureWriter) Header() http.Header         { return c.header }
func (c *captureWriter) WriteHeader(code int)        { c.status = code }
func (c *captureWriter) Write(b []byte) (int, error) { return c.buf.Write(b) }

func (c *captureWriter) flushTo(w http.ResponseWriter) {
	for k, vs := range c.header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(c.status)
	_, _ = w.Write(c.buf.Bytes())
}

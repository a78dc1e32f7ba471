package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/target/chat-portal/internal/util"
)

//nolint:gochecknoglobals // static read-only list of template globs
var templatePatterns = []string{
	"*.tmpl",
	"pages/*.tmpl",
	"partials/*.tmpl",
}

// TemplateRenderer renders HTML templates for UI responses.
type TemplateRenderer struct {
	fsys    fs.FS
	devMode bool // reparse templates on every render
	logger  *slog.Logger

	mu sync.RWMutex
	t  *template.Template
}

// TemplateRendererConfig holds configuration for creating a TemplateRenderer.
type TemplateRendererConfig struct {
	TemplateFS fs.FS        // Filesystem containing templates (required)
	DevMode    bool         // Reload templates from TemplateFS on each render
	Logger     *slog.Logger // Logger for template errors (optional)
}

// NewTemplateRenderer constructs a renderer by parsing templates from the provided config.
func NewTemplateRenderer(cfg TemplateRendererConfig) (*TemplateRenderer, error) {
	if cfg.TemplateFS == nil {
		return nil, errors.New("TemplateFS is required")
	}

	renderer := &TemplateRenderer{
		fsys:    cfg.TemplateFS,
		devMode: cfg.DevMode,
		logger:  cfg.Logger,
	}
	t, err := renderer.parse()
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Error("template parsing failed",
				slog.Any("error", err),
				slog.String("phase", "initialization"),
			)
		}
		return nil, err
	}
	renderer.t = t
	return renderer, nil
}

func (r *TemplateRenderer) parse() (*template.Template, error) {
	var t *template.Template
	funcs := templateFuncs(&t)
	parsed, err := template.New("root").Funcs(funcs).ParseFS(r.fsys, templatePatterns...)
	if err != nil {
		return nil, err
	}
	t = parsed
	return t, nil
}

// templates returns the parsed set, reparsing first in dev mode.
func (r *TemplateRenderer) templates() (*template.Template, error) {
	if !r.devMode {
		r.mu.RLock()
		defer r.mu.RUnlock()
		return r.t, nil
	}

	t, err := r.parse()
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	r.t = t
	r.mu.Unlock()
	return t, nil
}

// RenderFull renders the full page (layout + page content).
func (r *TemplateRenderer) RenderFull(w http.ResponseWriter, _ *http.Request, data any) error {
	return r.renderTemplate(w, "layout", data)
}

// RenderPartial renders only the main content area.
func (r *TemplateRenderer) RenderPartial(w http.ResponseWriter, _ *http.Request, data any) error {
	return r.renderTemplate(w, "content", data)
}

// RenderError renders an error page using the error template.
func (r *TemplateRenderer) RenderError(w http.ResponseWriter, _ *http.Request, data any) error {
	return r.renderTemplate(w, "error-layout", data)
}

// RenderNamed renders a single named template without the layout.
func (r *TemplateRenderer) RenderNamed(w http.ResponseWriter, name string, data any) error {
	return r.renderTemplate(w, name, data)
}

// Execute writes the named template straight to wr. Callers that need the
// whole response to be all-or-nothing should use renderTemplate instead.
func (r *TemplateRenderer) Execute(wr io.Writer, name string, data any) error {
	t, err := r.templates()
	if err != nil {
		r.logTemplateError(name, err)
		return err
	}
	if err := t.ExecuteTemplate(wr, name, data); err != nil {
		r.logTemplateError(name, err)
		return err
	}
	return nil
}

func (r *TemplateRenderer) renderTemplate(w http.ResponseWriter, templateName string, data any) error {
	var buf bytes.Buffer
	if err := r.Execute(&buf, templateName, data); err != nil {
		return err
	}

	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
	}
	if _, err := buf.WriteTo(w); err != nil {
		if r.logger != nil {
			r.logger.Error("failed to write rendered template",
				slog.String("template", templateName),
				slog.Any("error", err),
			)
		}
		return err
	}

	return nil
}

func (r *TemplateRenderer) logTemplateError(templateName string, err error) {
	if r.logger == nil || err == nil {
		return
	}
	r.logger.Error("template execution failed",
		slog.String("template", templateName),
		slog.Any("error", err),
	)
}

func templateFuncs(t **template.Template) template.FuncMap {
	return template.FuncMap{
		"sectionTmpl":    ContentTemplateFor,
		"formatDuration": util.FormatDuration,
		"renderSection": func(page string, data any) (template.HTML, error) {
			if t == nil || *t == nil {
				return "", errors.New("template not initialized")
			}
			var buf bytes.Buffer
			if err := (*t).ExecuteTemplate(&buf, ContentTemplateFor(page), data); err != nil {
				return "", err
			}
			// #nosec G203 - output of our own html/template set; values were escaped during execution
			return template.HTML(buf.String()), nil
		},
		"toJSON": func(v any) (string, error) {
			b, err := json.Marshal(v)
			if err != nil {
				return "", err
			}
			return string(b), nil
		},
		"toastClass": func(variant string) string {
			if strings.EqualFold(variant, "destructive") {
				return "toast toast-destructive"
			}
			return "toast"
		},
		"fieldClass": func(errMsg string) string {
			if errMsg != "" {
				return "input input-invalid"
			}
			return "input"
		},
	}
}

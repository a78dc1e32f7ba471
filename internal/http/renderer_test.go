package httpx

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minimalTemplates(home string) fstest.MapFS {
	return fstest.MapFS{
		"layout.tmpl": {Data: []byte(`{{define "layout"}}<html>{{template "content" .}}</html>{{end}}` +
			`{{define "content"}}{{renderSection .CurrentPage .}}{{end}}`)},
		"error.tmpl":       {Data: []byte(`{{define "error-layout"}}err {{.Code}}{{end}}`)},
		"pages/home.tmpl":  {Data: []byte(`{{define "home-content"}}` + home + `{{end}}`)},
		"pages/login.tmpl": {Data: []byte(`{{define "login-content"}}login {{.Title}}{{end}}`)},
		"partials/x.tmpl":  {Data: []byte(`{{define "noop"}}{{end}}`)},
	}
}

func TestNewTemplateRenderer_RequiresFS(t *testing.T) {
	_, err := NewTemplateRenderer(TemplateRendererConfig{})
	require.Error(t, err)
}

func TestTemplateRenderer_RenderFull(t *testing.T) {
	tr, err := NewTemplateRenderer(TemplateRendererConfig{TemplateFS: minimalTemplates("home")})
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, tr.RenderFull(rr, req, map[string]any{"CurrentPage": PageLogin, "Title": "<t>"}))
	assert.Equal(t, "<html>login &lt;t&gt;</html>", rr.Body.String())
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))

	rr = httptest.NewRecorder()
	require.NoError(t, tr.RenderPartial(rr, req, map[string]any{"CurrentPage": "unknown"}))
	assert.Equal(t, "home", rr.Body.String())

	rr = httptest.NewRecorder()
	require.NoError(t, tr.RenderError(rr, req, map[string]any{"Code": "404"}))
	assert.Equal(t, "err 404", rr.Body.String())
}

func TestTemplateRenderer_MissingTemplateWritesNothing(t *testing.T) {
	tr, err := NewTemplateRenderer(TemplateRendererConfig{TemplateFS: minimalTemplates("home")})
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	require.Error(t, tr.RenderNamed(rr, "nope", nil))
	assert.Empty(t, rr.Body.String())
}

func TestTemplateRenderer_DevModeReloads(t *testing.T) {
	fsys := minimalTemplates("v1")
	tr, err := NewTemplateRenderer(TemplateRendererConfig{TemplateFS: fsys, DevMode: true})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tr.Execute(&buf, "home-content", nil))
	assert.Equal(t, "v1", buf.String())

	fsys["pages/home.tmpl"] = &fstest.MapFile{Data: []byte(`{{define "home-content"}}v2{{end}}`)}
	buf.Reset()
	require.NoError(t, tr.Execute(&buf, "home-content", nil))
	assert.Equal(t, "v2", buf.String())
}

func TestContentTemplateFor(t *testing.T) {
	assert.Equal(t, "login-content", ContentTemplateFor(PageLogin))
	assert.Equal(t, "prototype-content", ContentTemplateFor(PagePrototype))
	assert.Equal(t, "home-content", ContentTemplateFor("missing"))
}

func TestRenderer_ProjectTemplatesParse(t *testing.T) {
	tr := RequireTemplateRenderer(t)
	for _, name := range []string{"layout", "content", "error-layout", "login-form", "toaster", "theme-toggle"} {
		assert.NotNil(t, tr.t.Lookup(name), name)
	}
}

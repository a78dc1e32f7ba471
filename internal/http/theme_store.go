package httpx

import (
	"net/http"
	"time"

	"github.com/target/chat-portal/internal/domain/ui"
)

// DefaultThemeStorageKey names the theme cookie when none is configured.
const DefaultThemeStorageKey = "vite-ui-theme"

const themeCookieMaxAge = 365 * 24 * time.Hour

// ThemeStore persists the visitor's theme in a cookie.
type ThemeStore struct {
	Key     string
	Default ui.Theme
	Cookie  CookieOptions
}

// NewThemeStore fills in the storage key and default theme.
func NewThemeStore(key string, def ui.Theme, cookie CookieOptions) ThemeStore {
	if key == "" {
		key = DefaultThemeStorageKey
	}
	if _, ok := ui.ParseTheme(string(def)); !ok {
		def = ui.DefaultTheme
	}
	if cookie.MaxAge == 0 {
		cookie.MaxAge = themeCookieMaxAge
	}
	return ThemeStore{Key: key, Default: def, Cookie: cookie}
}

// Load returns the stored theme, or the default when the cookie is missing,
// undecodable or names an unknown theme.
func (s ThemeStore) Load(r *http.Request) ui.Theme {
	raw, ok := readEncodedCookie(r, s.key())
	if !ok {
		return s.fallback()
	}
	theme, ok := ui.ParseTheme(raw)
	if !ok {
		return s.fallback()
	}
	return theme
}

// Save writes theme to the cookie.
func (s ThemeStore) Save(w http.ResponseWriter, r *http.Request, theme ui.Theme) error {
	return setEncodedCookie(w, r, s.key(), string(theme), s.Cookie)
}

func (s ThemeStore) key() string {
	if s.Key == "" {
		return DefaultThemeStorageKey
	}
	return s.Key
}

func (s ThemeStore) fallback() ui.Theme {
	if s.Default == "" {
		return ui.DefaultTheme
	}
	return s.Default
}

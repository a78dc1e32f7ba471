package ui

// Theme is the visitor's appearance preference.
type Theme string

const (
	ThemeDark   Theme = "dark"
	ThemeLight  Theme = "light"
	ThemeSystem Theme = "system"
)

// DefaultTheme is used when nothing valid is stored.
const DefaultTheme = ThemeDark

// ParseTheme returns the theme for s and whether s named a known theme.
func ParseTheme(s string) (Theme, bool) {
	switch Theme(s) {
	case ThemeDark, ThemeLight, ThemeSystem:
		return Theme(s), true
	default:
		return "", false
	}
}

// UnmarshalText lets env parsing reject unknown themes.
func (t *Theme) UnmarshalText(text []byte) error {
	parsed, ok := ParseTheme(string(text))
	if !ok {
		return &UnknownThemeError{Value: string(text)}
	}
	*t = parsed
	return nil
}

// UnknownThemeError reports an unrecognized theme value.
type UnknownThemeError struct {
	Value string
}

func (e *UnknownThemeError) Error() string {
	return "unknown theme " + `"` + e.Value + `"` + " (valid: dark, light, system)"
}

// Toggle flips dark and light. System resolves to light.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// IsDark reports whether pages should render with the dark palette.
// System is rendered dark on the server; the browser may override it.
func (t Theme) IsDark() bool {
	return t != ThemeLight
}

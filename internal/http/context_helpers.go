package httpx

import (
	"context"

	"github.com/target/chat-portal/internal/domain/ui"
)

// Unexported context key types avoid collisions across packages.
type (
	themeKey struct{}
	inboxKey struct{}
)

// WithTheme returns a child context carrying theme.
func WithTheme(ctx context.Context, theme ui.Theme) context.Context {
	return context.WithValue(ctx, themeKey{}, theme)
}

// ThemeFromContext returns the request's theme, or ui.DefaultTheme when
// ThemeContext did not run.
func ThemeFromContext(ctx context.Context) ui.Theme {
	if theme, ok := ctx.Value(themeKey{}).(ui.Theme); ok && theme != "" {
		return theme
	}
	return ui.DefaultTheme
}

// WithInbox returns a child context carrying the visitor's toast inbox id.
// An empty id leaves ctx unchanged.
func WithInbox(ctx context.Context, inbox string) context.Context {
	if inbox == "" {
		return ctx
	}
	return context.WithValue(ctx, inboxKey{}, inbox)
}

// InboxFromContext returns the toast inbox id and whether one is set.
func InboxFromContext(ctx context.Context) (string, bool) {
	inbox, ok := ctx.Value(inboxKey{}).(string)
	return inbox, ok && inbox != ""
}

// Package viewmodel holds the typed data handed to page templates.
package viewmodel

import "github.com/target/chat-portal/internal/domain/account"

// Layout captures shared chrome metadata: titles, navigation state, theme
// and the toasts to show on this render.
type Layout struct {
	Title       string
	PageTitle   string
	CurrentPage string
	CSRFToken   string

	Theme           string
	IsDark          bool
	ThemeStorageKey string

	Toasts        []account.Notice
	ShowPrototype bool
}

// LayoutProvider exposes layout metadata for renderer utilities.
type LayoutProvider interface {
	LayoutData() *Layout
}

package views

import tea "github.com/charmbracelet/bubbletea"

// KeyHandledCmd is returned by view Update methods to signal that a key
// was consumed and should not propagate to app-level global handlers.
// It is a no-op cmd: bubbletea discards nil messages.
var KeyHandledCmd tea.Cmd = func() tea.Msg { return nil }

// SelectResultMsg asks the app to make a history entry current.
type SelectResultMsg struct{ ID string }

// CompareMsg asks the app to compare two history entries (B against A).
type CompareMsg struct{ A, B string }

// ClearHistoryMsg asks the app to clear the history.
type ClearHistoryMsg struct{}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// Rate is the USD conversion shown next to dollar amounts. A zero Rate
// hides local amounts.
type Rate struct {
	Currency string
	Value    float64
}

func (r Rate) valid() bool { return r.Currency != "" && r.Value > 0 }

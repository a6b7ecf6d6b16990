package app

import tea "github.com/charmbracelet/bubbletea"

// setStatus shows an informational message for a few seconds.
func (m *Model) setStatus(text string) tea.Cmd {
	m.statusSeq++
	m.status, m.statusErr = text, false
	return statusTimeoutCmd(m.statusSeq)
}

// setError shows an error until the next message replaces it.
func (m *Model) setError(text string) tea.Cmd {
	m.statusSeq++
	m.status, m.statusErr = text, true
	return nil
}

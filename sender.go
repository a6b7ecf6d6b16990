package main

import (
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// programSender forwards messages from background goroutines to the
// program once it exists. Messages sent before Attach are dropped.
type programSender struct {
	prog atomic.Pointer[tea.Program]
}

func (s *programSender) Attach(p *tea.Program) { s.prog.Store(p) }

func (s *programSender) Send(msg tea.Msg) {
	if p := s.prog.Load(); p != nil {
		p.Send(msg)
	}
}

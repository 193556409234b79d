package ui

import (
	"github.com/atomicstack/lcdmenu/internal/input"
	"github.com/atomicstack/lcdmenu/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForButton(s *input.Source) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-s.Events()
		if !ok {
			return sourceDoneMsg{}
		}
		return buttonMsg{event: evt}
	}
}

type buttonMsg struct {
	event input.Event
}

type sourceDoneMsg struct{}

func (m *Model) handleButtonMsg(msg tea.Msg) tea.Cmd {
	btn, ok := msg.(buttonMsg)
	if !ok {
		return nil
	}
	if btn.event.Err != nil {
		events.Input.Error(btn.event.Err)
		m.errMsg = btn.event.Err.Error()
	} else {
		m.press(btn.event.Button)
	}
	if m.source != nil {
		return waitForButton(m.source)
	}
	return nil
}

func (m *Model) handleSourceDoneMsg(msg tea.Msg) tea.Cmd {
	m.source = nil
	m.infoMsg = "input device closed"
	return nil
}

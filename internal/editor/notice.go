package editor

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type clearNoticeMsg struct{ id int }

const noticeDuration = 3 * time.Second

func noticeText(msg, kind string) string {
	if msg == "" {
		return ""
	}
	var icon string
	switch kind {
	case "info":
		icon = "ℹ"
	case "success":
		icon = "✓"
	case "warn":
		icon = "!"
	case "error":
		icon = "×"
	}
	if icon == "" {
		return msg
	}
	return icon + " " + msg
}

func (m *Model) startNotice(msg, kind string) tea.Cmd {
	m.noticeMsg = msg
	m.noticeKind = kind

	// bump sequence to invalidate older timers
	m.noticeSeq++
	id := m.noticeSeq
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg { return clearNoticeMsg{id: id} })
}

func (m *Model) errorNotice(err error) tea.Cmd {
	return m.startNotice(err.Error(), "error")
}

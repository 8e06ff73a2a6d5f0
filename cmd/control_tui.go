// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 NIMLab

package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nimlab/scantrig/pkg/ppu"
)

// Trigger event log entry
type triggerLogEntry struct {
	timestamp time.Time
	message   string
	isError   bool
}

// Messages
type tickMsg time.Time
type txErrorMsg struct {
	err error
}

// Key bindings
type controlKeyMap struct {
	Trigger key.Binding
	Quit    key.Binding
}

var controlKeys = controlKeyMap{
	Trigger: key.NewBinding(
		key.WithKeys(" ", "t"),
		key.WithHelp("space/t", "fire trigger"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// TUI model
type controlModel struct {
	tx            *ppu.Transmitter
	connInfo      string
	startTime     time.Time
	log           []triggerLogEntry
	maxLogEntries int
	width         int
	height        int
	err           error
	quitting      bool
}

func initialControlModel(tx *ppu.Transmitter, connInfo string) controlModel {
	return controlModel{
		tx:            tx,
		connInfo:      connInfo,
		startTime:     time.Now(),
		log:           make([]triggerLogEntry, 0),
		maxLogEntries: 50,
		width:         80,
		height:        24,
	}
}

func (m controlModel) Init() tea.Cmd {
	return tea.Batch(
		controlTickCmd(),
		tea.EnterAltScreen,
	)
}

func controlTickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m controlModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, controlKeys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, controlKeys.Trigger):
			m.tx.Trigger()
			m.addLogEntry("SCAN trigger fired", false)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		// Counters are read straight from the transmitter on render;
		// the tick just forces a redraw.
		return m, controlTickCmd()

	case txErrorMsg:
		m.err = msg.err
		m.addLogEntry(fmt.Sprintf("TRANSMIT ERROR: %v", msg.err), true)
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m *controlModel) addLogEntry(message string, isError bool) {
	m.log = append(m.log, triggerLogEntry{
		timestamp: time.Now(),
		message:   message,
		isError:   isError,
	})
	if len(m.log) > m.maxLogEntries {
		m.log = m.log[len(m.log)-m.maxLogEntries:]
	}
}

func (m controlModel) View() string {
	if m.quitting {
		if m.err != nil {
			return fmt.Sprintf("Transmitter stopped: %v\n", m.err)
		}
		return "Shutting down...\n"
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		Background(lipgloss.Color("235")).
		Padding(0, 1)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Bold(true)

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("10"))

	restStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("10")).
		Bold(true)

	triggerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("9")).
		Bold(true)

	errorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("9")).
		Bold(true)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var s strings.Builder
	s.WriteString(titleStyle.Render("SCANTRIG - PPU TRIGGER CONTROL"))
	s.WriteString("\n")
	s.WriteString(headerStyle.Render(fmt.Sprintf("%s | space/t to trigger, 'q' to quit", m.connInfo)))
	s.WriteString("\n\n")

	// State badge
	state := m.tx.State()
	if state == ppu.StateTrigger {
		s.WriteString(triggerStyle.Render("● TRIGGER"))
	} else {
		s.WriteString(restStyle.Render("● REST"))
	}
	s.WriteString("\n\n")

	// Counters
	elapsed := time.Since(m.startTime).Round(time.Second)
	stats := strings.Builder{}
	stats.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s\n",
		labelStyle.Render("Frames:"), valueStyle.Render(fmt.Sprintf("%d", m.tx.FramesSent())),
		labelStyle.Render("Triggers:"), valueStyle.Render(fmt.Sprintf("%d", m.tx.TriggersFired())),
		labelStyle.Render("Elapsed:"), valueStyle.Render(elapsed.String()),
	))
	s.WriteString(boxStyle.Render(strings.TrimRight(stats.String(), "\n")))
	s.WriteString("\n\n")

	// Trigger log (most recent last)
	s.WriteString(labelStyle.Render("Event Log"))
	s.WriteString("\n")
	logLines := m.height - 14
	if logLines < 3 {
		logLines = 3
	}
	start := 0
	if len(m.log) > logLines {
		start = len(m.log) - logLines
	}
	if len(m.log) == 0 {
		s.WriteString(headerStyle.Render("  (no triggers yet)"))
		s.WriteString("\n")
	}
	for _, entry := range m.log[start:] {
		line := fmt.Sprintf("  [%s] %s", entry.timestamp.Format("15:04:05.000"), entry.message)
		if entry.isError {
			s.WriteString(errorStyle.Render(line))
		} else {
			s.WriteString(headerStyle.Render(line))
		}
		s.WriteString("\n")
	}

	return s.String()
}

package tui

import (
	"fmt"
	"os"
	"strings"

	"photosort/internal/domain"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Phase represents the current state of the TUI
type Phase int

const (
	PhaseSorting Phase = iota
	PhaseDone
	PhaseError
)

type (
	ProgressMsg struct {
		Progress domain.Progress
	}
	DoneMsg struct {
		Summary domain.Summary
	}
	ErrorMsg struct {
		Err error
	}
)

type Config struct {
	SourceDir string
	TargetDir string
	DryRun    bool
	// Cancel stops the running sort. Called when the user quits early.
	Cancel func()
}

type Model struct {
	config   Config
	Phase    Phase
	Progress domain.Progress
	Summary  domain.Summary
	spinner  spinner.Model
	Err      error
	Quitting bool
	width    int
}

func NewModel(cfg Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return Model{
		config:  cfg,
		Phase:   PhaseSorting,
		spinner: s,
		width:   80,
	}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.Phase == PhaseSorting && m.config.Cancel != nil {
				m.config.Cancel()
			}
			m.Quitting = true
			return m, tea.Quit
		case "enter":
			if m.Phase == PhaseDone || m.Phase == PhaseError {
				return m, tea.Quit
			}
		}

	case ProgressMsg:
		m.Progress = msg.Progress
		return m, nil

	case DoneMsg:
		m.Phase = PhaseDone
		m.Summary = msg.Summary
		return m, nil

	case ErrorMsg:
		m.Phase = PhaseError
		m.Err = msg.Err
		return m, nil

	case spinner.TickMsg:
		if m.Phase == PhaseSorting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.Phase {
	case PhaseSorting:
		b.WriteString(m.renderSorting())
	case PhaseDone:
		b.WriteString(m.renderDone())
	case PhaseError:
		b.WriteString(m.renderError())
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m Model) renderHeader() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("📷 photosort"),
		subtitleStyle.Render("Photos filed by the day they were taken"),
		"",
		dimStyle.Render(fmt.Sprintf("%s Source: %s", iconFolder, shortenPath(m.config.SourceDir))),
		dimStyle.Render(fmt.Sprintf("%s Target: %s", iconFolder, shortenPath(m.config.TargetDir))),
	)
}

func (m Model) renderSorting() string {
	var b strings.Builder

	verb := "Sorting"
	if m.config.DryRun {
		verb = "Planning"
	}
	b.WriteString(fmt.Sprintf("%s %s photos...\n\n", m.spinner.View(), verb))
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Processed:"), countStyle.Render(fmt.Sprintf("%d", m.Progress.Processed))))
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Moved:"), successStyle.Render(fmt.Sprintf("%s %d", iconMoved, m.Progress.Moved))))
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("No capture time:"), dimStyle.Render(fmt.Sprintf("%s %d", iconSkipped, m.Progress.Skipped))))

	if m.Progress.Current != "" {
		b.WriteString(fmt.Sprintf("\n  %s %s\n", iconArrow, fileNameStyle.Render(shortenPath(m.Progress.Current))))
	}
	return b.String()
}

func (m Model) renderDone() string {
	var b strings.Builder

	title := "Sort Complete"
	moved := m.Summary.Moved
	movedLabel := "Files moved:"
	if m.config.DryRun {
		title = "Dry Run Complete"
		moved = m.Summary.Planned
		movedLabel = "Would move:"
	}

	b.WriteString(sectionStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %s %s\n\n", successStyle.Render(iconSuccess), successStyle.Render("All files processed")))
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render(movedLabel), successStyle.Render(fmt.Sprintf("%s %d", iconMoved, moved))))
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("No capture time:"), dimStyle.Render(fmt.Sprintf("%s %d", iconSkipped, m.Summary.Skipped))))
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Total processed:"), statValueStyle.Render(fmt.Sprintf("%d files", m.Summary.Processed))))

	if m.config.DryRun {
		b.WriteString("\n")
		b.WriteString(highlightBoxStyle.Render("🔍 Dry Run - No files were moved"))
	}
	if m.Summary.Skipped > 0 {
		b.WriteString("\n")
		b.WriteString(warningStyle.Render("  Files without a capture time were left in place."))
	}
	return b.String()
}

func (m Model) renderError() string {
	msg := "unknown error"
	if m.Err != nil {
		msg = m.Err.Error()
	}
	return highlightBoxStyle.Copy().
		BorderForeground(errorColor).
		Render(fmt.Sprintf("%s %s", errorStyle.Render(iconError), errorStyle.Render("Error: "+msg)))
}

func (m Model) renderHelp() string {
	var help string
	switch m.Phase {
	case PhaseSorting:
		help = "Press q to stop after the current file"
	case PhaseDone:
		help = "Press Enter to exit"
	case PhaseError:
		help = "Press Enter or q to exit"
	}
	return helpStyle.Render(help)
}

// shortenPath replaces the home directory prefix with ~ for display
func shortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if strings.HasPrefix(path, home) {
		return "~" + path[len(home):]
	}
	return path
}

// Package ui provides the terminal progress display for a pipeline run.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Bytecast palette ⚡
var (
	boltCyan  = lipgloss.Color("#00B4D8") // Primary cyan
	boltBlue  = lipgloss.Color("#0077B6") // Deep blue
	boltGold  = lipgloss.Color("#FFB703") // Accent gold
	boltGray  = lipgloss.Color("#8D99AE") // Subtle text
)

// StageStarted announces a new pipeline stage.
type StageStarted struct {
	Name   string
	Number int
	Total  int
}

// StageDone marks a stage as finished or skipped.
type StageDone struct {
	Name    string
	Skipped bool
	Detail  string
}

// RenderProgress reports frame-level progress while a video renders.
type RenderProgress struct {
	Platform    string
	Frame       int
	TotalFrames int
	Elapsed     time.Duration
}

// RenderComplete signals that one platform's video finished encoding.
type RenderComplete struct {
	Platform    string
	OutputFile  string
	TotalFrames int
	Duration    time.Duration
}

// PipelineComplete ends the UI after a short delay.
type PipelineComplete struct{}

type quitMsg struct{}

// Model drives the progress display for the whole pipeline.
type Model struct {
	bar progress.Model

	stage      StageStarted
	stagesDone []StageDone
	render     RenderProgress
	completed  []RenderComplete

	startTime time.Time
	width     int
	quitting  bool
}

func NewModel() *Model {
	bar := progress.New(
		progress.WithGradient(string(boltBlue), string(boltCyan)),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)
	return &Model{
		bar:       bar,
		startTime: time.Now(),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if w := msg.Width - 30; w > 10 && w < 50 {
			m.bar.Width = w
		}
		return m, nil

	case StageStarted:
		m.stage = msg
		m.render = RenderProgress{}
		return m, nil

	case StageDone:
		m.stagesDone = append(m.stagesDone, msg)
		return m, nil

	case RenderProgress:
		m.render = msg
		return m, nil

	case RenderComplete:
		m.completed = append(m.completed, msg)
		m.render = RenderProgress{}
		return m, nil

	case PipelineComplete:
		m.quitting = true
		return m, tea.Tick(time.Second, func(time.Time) tea.Msg {
			return quitMsg{}
		})

	case quitMsg:
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *Model) View() string {
	var s strings.Builder

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(boltCyan).
		Render("Bytecast ⚡")
	s.WriteString(title)
	s.WriteString("\n")

	if m.stage.Name != "" {
		label := fmt.Sprintf("Stage %d/%d: %s", m.stage.Number, m.stage.Total, m.stage.Name)
		s.WriteString(lipgloss.NewStyle().Foreground(boltGold).Render(label))
		s.WriteString("\n")
	}
	s.WriteString("\n")

	m.renderStageHistory(&s)

	if m.render.TotalFrames > 0 {
		m.renderFrameProgress(&s)
	}

	if len(m.completed) > 0 {
		s.WriteString("\n")
		m.renderCompleted(&s)
	}

	if m.quitting {
		s.WriteString("\n")
		s.WriteString(lipgloss.NewStyle().Bold(true).Foreground(boltGold).Render("✓ Pipeline complete"))
		s.WriteString(lipgloss.NewStyle().Faint(true).Render(
			fmt.Sprintf("  (%s)", formatDuration(time.Since(m.startTime)))))
		s.WriteString("\n")
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(boltBlue).
		Padding(1, 2).
		Render(s.String())
}

func (m *Model) renderStageHistory(s *strings.Builder) {
	doneStyle := lipgloss.NewStyle().Foreground(boltCyan)
	skipStyle := lipgloss.NewStyle().Foreground(boltGray)
	detailStyle := lipgloss.NewStyle().Faint(true)

	for _, st := range m.stagesDone {
		if st.Skipped {
			s.WriteString(skipStyle.Render("○ " + st.Name + " (skipped)"))
		} else {
			s.WriteString(doneStyle.Render("✓ " + st.Name))
		}
		if st.Detail != "" {
			s.WriteString(detailStyle.Render("  " + st.Detail))
		}
		s.WriteString("\n")
	}
}

func (m *Model) renderFrameProgress(s *strings.Builder) {
	percent := float64(m.render.Frame) / float64(m.render.TotalFrames)

	s.WriteString(fmt.Sprintf("%s: ", m.render.Platform))
	s.WriteString(m.bar.ViewAs(percent))
	s.WriteString(fmt.Sprintf("  %d%%", int(percent*100)))
	s.WriteString("\n")

	elapsed := m.render.Elapsed
	var eta time.Duration
	if percent > 0 {
		eta = time.Duration(float64(elapsed)/percent) - elapsed
	}
	timing := fmt.Sprintf("Frame %d of %d  │  Elapsed: %s  │  ETA: %s",
		m.render.Frame, m.render.TotalFrames,
		formatDuration(elapsed), formatDuration(eta))
	s.WriteString(lipgloss.NewStyle().Faint(true).Render(timing))
	s.WriteString("\n")
}

func (m *Model) renderCompleted(s *strings.Builder) {
	labelStyle := lipgloss.NewStyle().Foreground(boltGray)
	valueStyle := lipgloss.NewStyle()

	for _, c := range m.completed {
		s.WriteString(labelStyle.Render(fmt.Sprintf("%-16s", c.Platform+":")))
		s.WriteString(valueStyle.Render(fmt.Sprintf("%s  (%d frames, %s)",
			c.OutputFile, c.TotalFrames, formatDuration(c.Duration))))
		s.WriteString("\n")
	}
}

func formatDuration(d time.Duration) string {
	if d == 0 {
		return "0s"
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%dm%02ds", int(d.Minutes()), int(d.Seconds())%60)
}

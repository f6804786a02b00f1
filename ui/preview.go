// Package ui is the live terminal preview: a bubbletea program that pulls a
// provider on a fixed cadence, renders it through the half-block renderer,
// and keeps showing the last good frame when a fetch fails.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ulfmagnetics/trix-hub/provider"
	"github.com/ulfmagnetics/trix-hub/render"
)

type tickMsg time.Time

// Model drives the preview loop. One provider, one renderer, one frame on
// screen at a time.
type Model struct {
	provider *provider.Provider
	renderer render.Renderer[string]
	title    string
	refresh  time.Duration
	styles   Styles

	frame     string
	fetchedAt time.Time
	err       error
}

// New builds a preview model refreshing every refresh interval.
func New(p *provider.Provider, r render.Renderer[string], title string, refresh time.Duration) Model {
	return Model{
		provider: p,
		renderer: r,
		title:    title,
		refresh:  refresh,
		styles:   DefaultStyles(),
	}
}

func (m Model) Init() tea.Cmd {
	// Render immediately instead of waiting out the first interval.
	return func() tea.Msg { return tickMsg(time.Now()) }
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m = m.refreshFrame()
		return m, tea.Tick(m.refresh, func(t time.Time) tea.Msg { return tickMsg(t) })

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			m = m.refreshFrame()
			return m, nil
		}
	}
	return m, nil
}

// refreshFrame pulls the provider and re-renders. On failure the previous
// frame stays; the error shows in the status line instead.
func (m Model) refreshFrame() Model {
	data, err := m.provider.GetData(context.Background())
	if err != nil {
		m.err = err
		if cached, ok := m.provider.Cached(); ok {
			m.frame = m.renderer.Render(cached)
			m.fetchedAt = cached.FetchedAt
		}
		return m
	}
	m.err = nil
	m.frame = m.renderer.Render(data)
	m.fetchedAt = data.FetchedAt
	return m
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(m.title))
	sb.WriteByte('\n')

	if m.frame == "" {
		if m.err != nil {
			sb.WriteString(m.styles.Error.Render(fmt.Sprintf("no data yet: %v", m.err)))
		} else {
			sb.WriteString(m.styles.Status.Render("waiting for first frame..."))
		}
		sb.WriteByte('\n')
	} else {
		sb.WriteString(m.frame)
		sb.WriteByte('\n')
		sb.WriteString(m.styles.Status.Render(fmt.Sprintf("fetched %s", m.fetchedAt.Format("15:04:05"))))
		if m.err != nil {
			sb.WriteString("  ")
			sb.WriteString(m.styles.Error.Render(fmt.Sprintf("stale: %v", m.err)))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString(m.styles.Help.Render("r refresh  q quit"))
	return sb.String()
}

// Run starts the preview program and blocks until it quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m).Run()
	return err
}

package cli

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/trackr/internal/cli/formatter"
	"github.com/alexanderramin/trackr/internal/domain"
	"github.com/alexanderramin/trackr/internal/service"
	"github.com/alexanderramin/trackr/internal/stats"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type trackKeyMap struct {
	Toggle key.Binding
	Quit   key.Binding
}

func defaultTrackKeys() trackKeyMap {
	return trackKeyMap{
		Toggle: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start/stop")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type tickMsg time.Time

type sessionStartedMsg struct{ session *domain.TimeSession }
type sessionStoppedMsg struct{ session *domain.TimeSession }
type activeLoadedMsg struct{ session *domain.TimeSession }
type trackErrMsg struct{ err error }

// trackModel is the live tracker view. Elapsed time is recomputed from the
// stored start on every tick, so a suspended terminal or missed ticks never
// skew the display. The tick chain is only extended while a session is
// running and the view is alive; quitting or stopping simply stops
// rescheduling it.
type trackModel struct {
	app    *App
	userID string

	keys     trackKeyMap
	groupIn  textinput.Model
	session  *domain.TimeSession
	state    domain.TrackingState
	now      time.Time
	errMsg   string
	quitting bool
}

func newTrackModel(app *App, userID, group string) trackModel {
	ti := textinput.New()
	ti.Placeholder = "group (optional)"
	ti.CharLimit = 64
	ti.SetValue(group)
	ti.Focus()

	return trackModel{
		app:     app,
		userID:  userID,
		keys:    defaultTrackKeys(),
		groupIn: ti,
		now:     time.Now(),
	}
}

func (m trackModel) Init() tea.Cmd {
	return m.loadActive()
}

func (m trackModel) loadActive() tea.Cmd {
	return func() tea.Msg {
		s, err := m.app.Tracker.Active(context.Background(), m.userID)
		if err != nil {
			if errors.Is(err, service.ErrNoActiveSession) {
				return activeLoadedMsg{}
			}
			return trackErrMsg{err}
		}
		return activeLoadedMsg{session: s}
	}
}

func (m trackModel) startSession() tea.Cmd {
	group := m.groupIn.Value()
	return func() tea.Msg {
		s, err := m.app.Tracker.Start(context.Background(), m.userID, group)
		if err != nil {
			return trackErrMsg{err}
		}
		return sessionStartedMsg{session: s}
	}
}

func (m trackModel) stopSession() tea.Cmd {
	return func() tea.Msg {
		s, err := m.app.Tracker.Stop(context.Background(), m.userID)
		if err != nil {
			return trackErrMsg{err}
		}
		return sessionStoppedMsg{session: s}
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m trackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Toggle):
			m.errMsg = ""
			if m.session != nil {
				return m, m.stopSession()
			}
			if m.state == domain.TrackingPending {
				return m, nil
			}
			// Optimistic "pending" until the store confirms the insert.
			m.state = domain.TrackingPending
			return m, m.startSession()
		}

	case activeLoadedMsg:
		if msg.session != nil {
			m.session = msg.session
			m.state = domain.TrackingConfirmed
			m.now = time.Now()
			return m, tick()
		}
		return m, nil

	case sessionStartedMsg:
		m.session = msg.session
		m.state = domain.TrackingConfirmed
		m.now = time.Now()
		return m, tick()

	case sessionStoppedMsg:
		m.session = nil
		m.state = ""
		return m, nil

	case trackErrMsg:
		// A failed start rolls the pending state back to idle.
		if m.state == domain.TrackingPending {
			m.state = ""
		}
		m.errMsg = msg.err.Error()
		return m, nil

	case tickMsg:
		if m.session == nil || m.quitting {
			return m, nil
		}
		m.now = time.Time(msg)
		return m, tick()
	}

	var cmd tea.Cmd
	m.groupIn, cmd = m.groupIn.Update(msg)
	return m, cmd
}

var (
	trackTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(formatter.ColorHeader)
	trackElapsedStyle = lipgloss.NewStyle().Bold(true).Foreground(formatter.ColorGreen)
	trackHelpStyle    = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	trackErrStyle     = lipgloss.NewStyle().Foreground(formatter.ColorRed)
)

func (m trackModel) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch {
	case m.session != nil:
		elapsed := int(m.now.UTC().Sub(m.session.StartTime) / time.Second)
		label := m.session.Group
		if label == "" {
			label = "no group"
		}
		body = trackElapsedStyle.Render(stats.FormatHMS(elapsed)) +
			trackHelpStyle.Render("  tracking "+label)

	case m.state == domain.TrackingPending:
		body = trackHelpStyle.Render("starting...")

	default:
		body = "Not tracking.\n" + m.groupIn.View()
	}

	out := trackTitleStyle.Render("trackr") + "\n\n" + body + "\n"
	if m.errMsg != "" {
		out += trackErrStyle.Render(m.errMsg) + "\n"
	}
	out += "\n" + trackHelpStyle.Render("s start/stop · q quit")
	return out
}

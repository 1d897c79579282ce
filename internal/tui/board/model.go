// Package board is the interactive terminal week board.
package board

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"crewboard/internal/models"
	"crewboard/internal/repo"
	"crewboard/internal/timeline"
)

// loadTimeout bounds each source read.
const loadTimeout = 10 * time.Second

// Model is the bubbletea model for the week board. Jobs and employees load
// independently so each section can show its own loading state.
type Model struct {
	// Dimensions
	width  int
	height int

	// Data
	repo      repo.Repo
	org       uuid.UUID
	projector *timeline.Projector
	nav       *timeline.Navigator
	now       func() time.Time

	jobs             []models.Job
	employees        []models.Employee
	jobsLoading      bool
	employeesLoading bool
	err              error

	// UI state
	keys     KeyMap
	help     help.Model
	showHelp bool
}

// New creates a board for one org. now is read on every render so the board
// follows the clock across midnight.
func New(r repo.Repo, org uuid.UUID, p *timeline.Projector, nav *timeline.Navigator, now func() time.Time) *Model {
	if p == nil {
		p = timeline.NewProjector(timeline.DefaultOnSiteLimit)
	}
	if nav == nil {
		nav = timeline.NewNavigator(timeline.DefaultMaxWeekOffset)
	}
	if now == nil {
		now = time.Now
	}
	return &Model{
		repo:             r,
		org:              org,
		projector:        p,
		nav:              nav,
		now:              now,
		jobsLoading:      true,
		employeesLoading: true,
		keys:             DefaultKeyMap(),
		help:             help.New(),
	}
}

// jobsMsg is sent when the job source answers.
type jobsMsg struct {
	jobs []models.Job
	err  error
}

// employeesMsg is sent when the employee source answers.
type employeesMsg struct {
	employees []models.Employee
	err       error
}

// Init starts both loads.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadJobs(),
		m.loadEmployees(),
		tea.SetWindowTitle("crewboard"),
	)
}

func (m *Model) loadJobs() tea.Cmd {
	r, org := m.repo, m.org
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		jobs, err := r.ListJobs(ctx, org)
		return jobsMsg{jobs: jobs, err: err}
	}
}

func (m *Model) loadEmployees() tea.Cmd {
	r, org := m.repo, m.org
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		emps, err := r.ListEmployees(ctx, org)
		return employeesMsg{employees: emps, err: err}
	}
}

// Update handles key presses and load results.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case jobsMsg:
		m.jobsLoading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.jobs = msg.jobs
		return m, nil

	case employeesMsg:
		m.employeesLoading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.employees = msg.employees
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Prev):
			m.nav.Prev()
		case key.Matches(msg, m.keys.Next):
			m.nav.Next()
		case key.Matches(msg, m.keys.Today):
			m.nav.Reset()
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp
		case key.Matches(msg, m.keys.Reload):
			m.err = nil
			m.jobsLoading, m.employeesLoading = true, true
			return m, tea.Batch(m.loadJobs(), m.loadEmployees())
		}
	}
	return m, nil
}

// Offset is the week currently shown.
func (m *Model) Offset() int { return m.nav.Offset }

// View renders the board. Sections still loading show a placeholder line.
func (m *Model) View() string {
	now := m.now()
	v := m.projector.Project(m.jobs, m.employees, m.nav.Offset, now)

	var b strings.Builder
	if m.jobsLoading || m.employeesLoading {
		b.WriteString(titleStyle.Render(WeekTitle(v.Week, v.Offset)))
	} else {
		b.WriteString(Header(v))
	}
	b.WriteByte('\n')

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteByte('\n')
	}

	if m.jobsLoading {
		b.WriteString(sectionStyle.Render("JOBS"))
		b.WriteString("\n" + mutedStyle.Render("Loading jobs..."))
	} else {
		b.WriteString(Jobs(v))
	}
	b.WriteByte('\n')

	if m.employeesLoading {
		b.WriteString(sectionStyle.Render("TEAM"))
		b.WriteString("\n" + mutedStyle.Render("Loading employees..."))
	} else {
		b.WriteString(Workers(v))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

package board

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewboard/internal/repo"
	"crewboard/internal/timeline"
)

var (
	testOrg   = uuid.MustParse("7d1f1a52-3c1e-4d4e-9a8f-2b6c1f0e9a01")
	wednesday = time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)
)

const rosterDoc = `
[[orgs]]
id = "7d1f1a52-3c1e-4d4e-9a8f-2b6c1f0e9a01"

  [[orgs.employees]]
  name = "Sarah Johnson"
  [[orgs.employees]]
  name = "Tom Green"
  [[orgs.employees]]
  name = "Mike Brown"
  status = "On Leave"

  [[orgs.jobs]]
  title = "Commercial Rewiring"
  status = "Active"
  start_date = 2024-06-03
  end_date = 2024-06-07
  value = "25000"

  [[orgs.jobs]]
  title = "Office Fit-out"
  status = "Pending"
  start_date = 2024-06-05
  end_date = 2024-06-20
  value = "500"
`

func newModel(t *testing.T) *Model {
	t.Helper()
	r, err := repo.NewFileFromString(rosterDoc, wednesday)
	require.NoError(t, err)
	return New(r, testOrg, nil, timeline.NewNavigator(4), func() time.Time { return wednesday })
}

func loaded(t *testing.T) *Model {
	t.Helper()
	m := newModel(t)
	m.Update(m.loadJobs()())
	m.Update(m.loadEmployees()())
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_LoadingStates(t *testing.T) {
	m := newModel(t)
	assert.NotNil(t, m.Init())

	out := m.View()
	assert.Contains(t, out, "Loading jobs...")
	assert.Contains(t, out, "Loading employees...")
	assert.Contains(t, out, "(this week)")

	m.Update(m.loadJobs()())
	out = m.View()
	assert.NotContains(t, out, "Loading jobs...")
	assert.Contains(t, out, "Commercial Rewiring")
	assert.Contains(t, out, "Loading employees...")

	m.Update(m.loadEmployees()())
	out = m.View()
	assert.NotContains(t, out, "Loading")
	assert.Contains(t, out, "Sarah Johnson")
	assert.Contains(t, out, "Clash")
	assert.Contains(t, out, "Value: £26k")
}

func TestModel_Navigation(t *testing.T) {
	m := loaded(t)

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.Offset())
	assert.Contains(t, m.View(), "(+1 week)")

	m.Update(runes("l"))
	assert.Equal(t, 2, m.Offset())

	m.Update(runes("h"))
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, -1, m.Offset())
	assert.Contains(t, m.View(), "No jobs scheduled this week")

	m.Update(runes("t"))
	assert.Equal(t, 0, m.Offset())

	for i := 0; i < 10; i++ {
		m.Update(runes("l"))
	}
	assert.Equal(t, 4, m.Offset(), "clamped to the navigator bound")
}

func TestModel_QuitAndReload(t *testing.T) {
	m := loaded(t)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	_, cmd = m.Update(runes("r"))
	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Loading jobs...")
}

func TestModel_LoadError(t *testing.T) {
	m := newModel(t)
	m.Update(jobsMsg{err: errors.New("connection refused")})
	m.Update(employeesMsg{})

	out := m.View()
	assert.Contains(t, out, "Error: connection refused")
	assert.Contains(t, out, "No jobs scheduled this week")
	assert.Contains(t, out, "No employees")
}

func TestModel_WindowSize(t *testing.T) {
	m := newModel(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}

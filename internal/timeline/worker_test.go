package timeline

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewboard/internal/models"
)

func TestResolveStatus_Precedence(t *testing.T) {
	week := WeekDays(wednesday, 0)
	visible := []Entry{NewEntry(job("a", models.JobActive, date(2024, 6, 3), date(2024, 6, 7), nil), wednesday, week)}
	rr := RoundRobin{Limit: 3}

	onLeave := employee("Emma", models.EmployeeLeave)
	clashes := []Clash{{Employee: onLeave}}

	status, cur := ResolveStatus(onLeave, -1, clashes, visible, rr)
	assert.Equal(t, StatusLeave, status, "leave outranks clash")
	assert.Nil(t, cur)

	james := employee("James", models.EmployeeActive)
	status, _ = ResolveStatus(james, 0, []Clash{{Employee: james}}, visible, rr)
	assert.Equal(t, StatusClash, status, "clash outranks on site")

	status, cur = ResolveStatus(james, 0, nil, visible, rr)
	assert.Equal(t, StatusOnSite, status)
	require.NotNil(t, cur)
	assert.Equal(t, "a", cur.Job.Title)

	status, _ = ResolveStatus(james, 3, nil, visible, rr)
	assert.Equal(t, StatusAvailable, status)

	status, _ = ResolveStatus(james, 0, nil, nil, rr)
	assert.Equal(t, StatusAvailable, status, "no visible jobs means nobody on site")
}

func TestResolveStatus_AnyNonActiveIsLeave(t *testing.T) {
	for _, s := range []models.EmployeeStatus{models.EmployeeLeave, models.EmployeeOnLeave, models.EmployeeInactive, ""} {
		status, _ := ResolveStatus(employee("x", s), 0, nil, nil, RoundRobin{})
		assert.Equal(t, StatusLeave, status, string(s))
	}
}

func TestWorkerStatus_Style(t *testing.T) {
	assert.Equal(t, "muted", StatusLeave.Style())
	assert.Equal(t, "danger", StatusClash.Style())
	assert.Equal(t, "success", StatusOnSite.Style())
	assert.Equal(t, "info", StatusAvailable.Style())
}

func TestBuildSchedule(t *testing.T) {
	current := &Entry{Stage: StageInProgress, Position: &Position{StartDay: 3, Duration: 4}}

	t.Run("leave", func(t *testing.T) {
		for _, d := range BuildSchedule(StatusLeave, current) {
			assert.False(t, d.Assigned)
		}
	})
	t.Run("on site follows job days", func(t *testing.T) {
		days := BuildSchedule(StatusOnSite, current)
		want := []bool{false, false, false, true, true, false, false}
		for i, d := range days {
			assert.Equal(t, want[i], d.Assigned, "day %d", i)
			if d.Assigned {
				assert.Equal(t, StageInProgress.Color(), d.JobColor)
			}
		}
	})
	t.Run("available weekdays", func(t *testing.T) {
		days := BuildSchedule(StatusAvailable, nil)
		for i, d := range days {
			assert.Equal(t, i < 5, d.Assigned, "day %d", i)
			assert.Empty(t, d.JobColor)
		}
	})
}

func TestRoundRobin_DefaultLimit(t *testing.T) {
	visible := []Entry{{Stage: StageScheduled}}
	on, _ := RoundRobin{}.Assign(2, visible)
	assert.True(t, on)
	on, _ = RoundRobin{}.Assign(DefaultOnSiteLimit, visible)
	assert.False(t, on)
	on, _ = RoundRobin{}.Assign(-1, visible)
	assert.False(t, on)
}

func TestDetectClash(t *testing.T) {
	week := WeekDays(wednesday, 0)
	entry := func(start, end time.Time) Entry {
		return NewEntry(job("j", models.JobActive, start, end, nil), wednesday, week)
	}
	emps := []models.Employee{employee("James", models.EmployeeActive)}
	overlapping := []Entry{entry(date(2024, 6, 3), date(2024, 6, 5)), entry(date(2024, 6, 5), date(2024, 6, 9))}

	tests := []struct {
		name    string
		visible []Entry
		emps    []models.Employee
		now     time.Time
		want    int
	}{
		{"two jobs today", overlapping, emps, wednesday, 1},
		{"no employees", overlapping, nil, wednesday, 0},
		{"one job", overlapping[:1], emps, wednesday, 0},
		{"jobs do not cover today", []Entry{entry(date(2024, 6, 3), date(2024, 6, 4)), entry(date(2024, 6, 6), date(2024, 6, 7))}, emps, wednesday, 0},
		{"today on weekend", []Entry{entry(date(2024, 6, 3), date(2024, 6, 9)), entry(date(2024, 6, 8), date(2024, 6, 9))}, emps, time.Date(2024, 6, 8, 9, 0, 0, 0, time.UTC), 0},
		{"today outside week", overlapping, emps, time.Date(2024, 6, 12, 9, 0, 0, 0, time.UTC), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectClash(tt.visible, tt.emps, week, tt.now)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestDetectClash_TakesFirstTwo(t *testing.T) {
	week := WeekDays(wednesday, 0)
	var visible []Entry
	for _, title := range []string{"x", "y", "z"} {
		visible = append(visible, NewEntry(job(title, models.JobActive, date(2024, 6, 5), date(2024, 6, 5), nil), wednesday, week))
	}
	emps := []models.Employee{employee("Emma", models.EmployeeLeave), employee("James", models.EmployeeActive)}

	got := DetectClash(visible, emps, week, wednesday)
	require.Len(t, got, 1)
	assert.Equal(t, "Emma", got[0].Employee.Name)
	assert.Equal(t, "x", got[0].Jobs[0].Job.Title)
	assert.Equal(t, "y", got[0].Jobs[1].Job.Title)
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "£0"},
		{"999", "£999"},
		{"800.50", "£800.5"},
		{"1000", "£1k"},
		{"1499", "£1k"},
		{"1500", "£2k"},
		{"45000", "£45k"},
		{"120000.00", "£120k"},
		{"-999", "£-999"},
		{"-2000", "£-2k"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestSummarise_NullValues(t *testing.T) {
	week := WeekDays(wednesday, 0)
	entries := []Entry{
		NewEntry(job("a", models.JobActive, date(2024, 6, 3), date(2024, 6, 4), i64(1200)), wednesday, week),
		NewEntry(job("b", models.JobActive, date(2024, 6, 3), date(2024, 6, 4), nil), wednesday, week),
		NewEntry(job("c", models.JobActive, date(2024, 6, 3), date(2024, 6, 4), i64(800)), wednesday, week),
		NewEntry(job("hidden", models.JobActive, date(2024, 8, 3), date(2024, 8, 4), i64(9999)), wednesday, week),
	}
	s := Summarise(entries, nil, nil)
	assert.Equal(t, 3, s.JobsThisWeek)
	assert.Equal(t, "2000", s.TotalWeekValue.String())
	assert.Equal(t, 0, s.ClashCount)
}

package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetable-tracker/internal/engine"
	"timetable-tracker/internal/model"
	"timetable-tracker/pkg/datemath"
)

func day(s string) datemath.Date { return datemath.MustParse(s) }

func ptr(d datemath.Date) *datemath.Date { return &d }

func newTask(id, start string, end ...string) model.Task {
	t := model.Task{ID: id, Name: "task " + id, StartDate: day(start), Priority: model.PriorityMedium}
	if len(end) > 0 {
		t.EndDate = ptr(day(end[0]))
	}
	return t
}

// completeDays toggles every listed day of taskID once.
func completeDays(s engine.Snapshot, taskID string, days ...string) engine.Snapshot {
	for _, d := range days {
		s, _ = s.ToggleCompletion(taskID, day(d))
	}
	return s
}

func TestIsActive(t *testing.T) {
	bounded := newTask("a", "2024-03-10", "2024-03-20")
	open := newTask("b", "2024-03-10")
	inverted := newTask("c", "2024-03-20", "2024-03-10")

	tests := []struct {
		name string
		task model.Task
		date string
		want bool
	}{
		{"before start", bounded, "2024-03-09", false},
		{"on start", bounded, "2024-03-10", true},
		{"inside", bounded, "2024-03-15", true},
		{"on end", bounded, "2024-03-20", true},
		{"after end", bounded, "2024-03-21", false},
		{"open-ended far future", open, "2099-12-31", true},
		{"open-ended before start", open, "2024-03-01", false},
		{"inverted range start", inverted, "2024-03-20", false},
		{"inverted range end", inverted, "2024-03-10", false},
		{"inverted range middle", inverted, "2024-03-15", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.IsActive(tt.task, day(tt.date)))
		})
	}
}

func TestStreak(t *testing.T) {
	task := newTask("t1", "2024-01-01")
	s := engine.Snapshot{Tasks: []model.Task{task}}
	s = completeDays(s, "t1", "2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05", "2024-01-07")

	t.Run("gap breaks the chain", func(t *testing.T) {
		assert.Equal(t, 1, s.Streak(task, day("2024-01-07")))
	})
	t.Run("run back to start", func(t *testing.T) {
		assert.Equal(t, 5, s.Streak(task, day("2024-01-05")))
	})
	t.Run("uncompleted reference day", func(t *testing.T) {
		assert.Equal(t, 0, s.Streak(task, day("2024-01-06")))
	})
	t.Run("inactive reference day", func(t *testing.T) {
		assert.Equal(t, 0, s.Streak(task, day("2023-12-31")))
	})
	t.Run("explicit incomplete record breaks", func(t *testing.T) {
		s2 := completeDays(s, "t1", "2024-01-03") // flip back to false
		assert.Equal(t, 2, s2.Streak(task, day("2024-01-05")))
	})
	t.Run("stops at end date", func(t *testing.T) {
		ended := newTask("t1", "2024-01-03", "2024-01-05")
		s2 := engine.Snapshot{Tasks: []model.Task{ended}, Progress: s.Progress}
		assert.Equal(t, 3, s2.Streak(ended, day("2024-01-05")))
		assert.Equal(t, 0, s2.Streak(ended, day("2024-01-07")))
	})
}

func TestOverallStreak(t *testing.T) {
	a := newTask("a", "2024-01-01")
	b := newTask("b", "2024-01-03", "2024-01-04")
	s := engine.Snapshot{Tasks: []model.Task{a, b}}

	s = completeDays(s, "a", "2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05")
	s = completeDays(s, "b", "2024-01-03", "2024-01-04")

	assert.Equal(t, 5, s.OverallStreak(day("2024-01-05")))

	t.Run("one incomplete active task breaks", func(t *testing.T) {
		s2 := completeDays(s, "b", "2024-01-03")
		assert.Equal(t, 2, s2.OverallStreak(day("2024-01-05")))
	})

	t.Run("day without active tasks ends the streak", func(t *testing.T) {
		c := newTask("c", "2024-02-01")
		s2 := engine.Snapshot{Tasks: []model.Task{newTask("a", "2024-01-01", "2024-01-10"), c}}
		s2 = completeDays(s2, "a", "2024-01-09", "2024-01-10")
		s2 = completeDays(s2, "c", "2024-02-01", "2024-02-02")

		// 2024-01-31 has no active task, so the walk stops there.
		assert.Equal(t, 2, s2.OverallStreak(day("2024-02-02")))
	})

	t.Run("no tasks", func(t *testing.T) {
		assert.Equal(t, 0, engine.Snapshot{}.OverallStreak(day("2024-01-05")))
	})
}

func TestDailyStats(t *testing.T) {
	s := engine.Snapshot{Tasks: []model.Task{
		newTask("a", "2024-01-15"),
		newTask("b", "2024-02-01", "2024-02-29"),
		newTask("c", "2024-03-01"),
	}}
	s = completeDays(s, "a", "2024-02-01")
	s = completeDays(s, "c", "2024-02-01") // inactive day, ignored

	got := s.DailyStats(day("2024-02-01"))
	assert.Equal(t, engine.Stats{Completed: 1, Total: 2, Rate: 50}, got)

	empty := engine.Snapshot{}.DailyStats(day("2024-02-01"))
	assert.Equal(t, engine.Stats{}, empty)

	none := s.DailyStats(day("2023-01-01"))
	assert.Zero(t, none.Total)
	assert.Zero(t, none.Rate)
}

func TestDailyStatsCompletedNeverExceedsTotal(t *testing.T) {
	s := engine.Snapshot{Tasks: []model.Task{newTask("a", "2024-01-10", "2024-01-12")}}
	s = completeDays(s, "a", "2024-01-01", "2024-01-10", "2024-01-11", "2024-01-20")
	s = completeDays(s, "ghost", "2024-01-10")

	for i := 0; i < 30; i++ {
		st := s.DailyStats(day("2024-01-01").AddDays(i))
		assert.LessOrEqual(t, st.Completed, st.Total)
		if st.Total == 0 {
			assert.Zero(t, st.Rate)
		}
	}
}

func TestRangeStats(t *testing.T) {
	// a is active all week, b only the last two days.
	s := engine.Snapshot{Tasks: []model.Task{
		newTask("a", "2024-01-01"),
		newTask("b", "2024-01-06"),
	}}
	s = completeDays(s, "a", "2024-01-01", "2024-01-02", "2024-01-03")
	s = completeDays(s, "b", "2024-01-06", "2024-01-07")

	got := s.WeeklyStats(day("2024-01-01"))
	assert.Equal(t, 5, got.Completed)
	assert.Equal(t, 9, got.Total)
	assert.InDelta(t, 55.5555, got.Rate, 0.001)

	assert.Equal(t, got, s.RangeStats(day("2024-01-01"), 7))
	assert.Equal(t, engine.Stats{}, s.RangeStats(day("2024-01-01"), 0))
}

func TestMonthlyStatsLeapFebruary(t *testing.T) {
	s := engine.Snapshot{Tasks: []model.Task{
		newTask("a", "2024-01-01"),
		newTask("b", "2024-02-15", "2024-03-31"),
	}}
	s = completeDays(s, "a", "2024-02-01", "2024-02-29", "2024-03-01")
	s = completeDays(s, "b", "2024-02-15")

	got := s.MonthlyStats(2024, time.February)
	// a: 29 active days, b: Feb 15..29 = 15 active days.
	assert.Equal(t, 44, got.Total)
	assert.Equal(t, 3, got.Completed)

	common := engine.Snapshot{Tasks: []model.Task{newTask("x", "2023-01-01")}}
	assert.Equal(t, 28, common.MonthlyStats(2023, time.February).Total)
	assert.Equal(t, 29, common.MonthlyStats(2024, time.February).Total)
}

func TestTasksWithProgress(t *testing.T) {
	open := newTask("open", "2024-01-01")
	ended := newTask("ended", "2024-01-01", "2024-01-04")
	future := newTask("future", "2024-02-01")
	s := engine.Snapshot{Tasks: []model.Task{open, ended, future}}
	s = completeDays(s, "open", "2024-01-01", "2024-01-02", "2024-01-03", "2024-01-05")
	s = completeDays(s, "ended", "2024-01-03", "2024-01-04")

	got := s.TasksWithProgress(day("2024-01-04"))
	require.Len(t, got, 2)

	assert.Equal(t, "open", got[0].ID)
	assert.False(t, got[0].TodayCompleted)
	assert.Equal(t, 4, got[0].TotalDays)
	assert.Equal(t, 4, got[0].CompletedDays) // history includes 01-05
	assert.Equal(t, 0, got[0].Streak)
	assert.InDelta(t, 100, got[0].CompletionRate, 0.0001)

	assert.Equal(t, "ended", got[1].ID)
	assert.True(t, got[1].TodayCompleted)
	assert.Equal(t, 4, got[1].TotalDays)
	assert.Equal(t, 2, got[1].CompletedDays)
	assert.Equal(t, 2, got[1].Streak)
	assert.InDelta(t, 50, got[1].CompletionRate, 0.0001)

	t.Run("first day counts as one", func(t *testing.T) {
		got := s.TasksWithProgress(day("2024-01-01"))
		require.NotEmpty(t, got)
		assert.Equal(t, 1, got[0].TotalDays)
	})

	t.Run("centuries-old start", func(t *testing.T) {
		old := engine.Snapshot{Tasks: []model.Task{newTask("old", "1700-01-01")}}
		old = completeDays(old, "old", "2024-01-01")

		got := old.TasksWithProgress(day("2024-01-01"))
		require.Len(t, got, 1)
		assert.Equal(t, 118339, got[0].TotalDays)
		assert.InDelta(t, 100.0/118339, got[0].CompletionRate, 1e-9)
	})
}

func TestHeatmapLevel(t *testing.T) {
	tests := []struct {
		completed, total int
		want             int
	}{
		{0, 0, 0},
		{0, 4, 0},
		{24, 100, 1},
		{25, 100, 2},
		{30, 100, 2},
		{49, 100, 2},
		{50, 100, 3},
		{74, 100, 3},
		{75, 100, 4},
		{99, 100, 4},
		{100, 100, 5},
		{1, 3, 2},
		{2, 3, 3},
	}

	for _, tt := range tests {
		st := engine.NewStats(tt.completed, tt.total)
		assert.Equalf(t, tt.want, engine.HeatmapLevel(st), "rate %.2f", st.Rate)
	}
}

func TestHeatmap(t *testing.T) {
	s := engine.Snapshot{Tasks: []model.Task{newTask("a", "2024-01-01"), newTask("b", "2024-01-01")}}
	s = completeDays(s, "a", "2024-12-30", "2024-12-31")
	s = completeDays(s, "b", "2024-12-31")

	got := s.Heatmap(day("2024-12-31"))
	require.Len(t, got, engine.HeatmapDays)

	assert.Equal(t, day("2024-01-02"), got[0].Date) // 2024 is a leap year
	last := got[len(got)-1]
	assert.Equal(t, day("2024-12-31"), last.Date)
	assert.Equal(t, 2, last.Count)
	assert.Equal(t, 5, last.Level)

	prev := got[len(got)-2]
	assert.Equal(t, 1, prev.Count)
	assert.Equal(t, 3, prev.Level)

	assert.Equal(t, 0, got[0].Level)
}

func TestStatusBreakdown(t *testing.T) {
	a := newTask("a", "2024-01-01")
	b := newTask("b", "2024-01-03")
	c := newTask("c", "2024-01-01", "2024-01-02")
	s := engine.Snapshot{Tasks: []model.Task{a, b, c}}
	s = completeDays(s, "a", "2024-01-01", "2024-01-03")
	s = completeDays(s, "b", "2024-01-05")
	s = completeDays(s, "c", "2024-01-01")

	got := s.StatusBreakdown(day("2024-01-05"))
	assert.Equal(t, engine.Breakdown{
		Completed:  4,
		InProgress: 1, // a
		Pending:    1, // a
		Missed:     2 + 2 + 1,
	}, got)
}

func TestTotals(t *testing.T) {
	s := engine.Snapshot{}
	s = completeDays(s, "a", "2024-01-01", "2024-01-02")
	s = completeDays(s, "b", "2024-01-02", "2024-01-03", "2024-01-03")

	assert.Equal(t, engine.Totals{CompletedRecords: 3, DaysWithRecords: 3}, s.Totals())
}

func TestSeries(t *testing.T) {
	s := engine.Snapshot{Tasks: []model.Task{newTask("a", "2024-01-01")}}
	s = completeDays(s, "a", "2024-03-31")

	daily := s.DailySeries(day("2024-03-31"), 7)
	require.Len(t, daily, 7)
	assert.Equal(t, day("2024-03-25"), daily[0].Date)
	assert.Equal(t, 1, daily[6].Completed)
	assert.Empty(t, s.DailySeries(day("2024-03-31"), 0))

	monthly := s.MonthlySeries(day("2024-03-31"), 6)
	require.Len(t, monthly, 6)
	assert.Equal(t, 2023, monthly[0].Year)
	assert.Equal(t, time.October, monthly[0].Month)
	assert.Equal(t, 0, monthly[0].Total)
	assert.Equal(t, time.March, monthly[5].Month)
	assert.Equal(t, 31, monthly[5].Total)
	assert.Equal(t, 29, monthly[4].Total)
}

func TestToggleCompletion(t *testing.T) {
	s := engine.Snapshot{Tasks: []model.Task{newTask("a", "2024-01-01")}}

	s1, rec := s.ToggleCompletion("a", day("2024-01-02"))
	assert.True(t, rec.Completed)
	require.Len(t, s1.Progress, 1)

	s2, rec := s1.ToggleCompletion("a", day("2024-01-02"))
	assert.False(t, rec.Completed)
	require.Len(t, s2.Progress, 1, "toggle flips the record instead of deleting it")

	completed, recorded := s2.Completion("a", day("2024-01-02"))
	assert.False(t, completed)
	assert.True(t, recorded)

	completed, recorded = s2.Completion("a", day("2024-01-03"))
	assert.False(t, completed)
	assert.False(t, recorded)

	t.Run("inactive day is recorded but not counted", func(t *testing.T) {
		s3, rec := s.ToggleCompletion("a", day("2023-12-31"))
		assert.True(t, rec.Completed)
		assert.Equal(t, 0, s3.DailyStats(day("2023-12-31")).Total)
	})

	t.Run("receiver is not modified", func(t *testing.T) {
		assert.True(t, s1.Progress[0].Completed)
		assert.Empty(t, s.Progress)
	})
}

func TestDeleteTaskCascades(t *testing.T) {
	s := engine.Snapshot{Tasks: []model.Task{newTask("a", "2024-01-01"), newTask("b", "2024-01-01")}}
	s = completeDays(s, "a", "2024-01-01", "2024-01-02")
	s = completeDays(s, "b", "2024-01-01")

	after := s.DeleteTask("a")
	require.Len(t, after.Tasks, 1)
	assert.Equal(t, "b", after.Tasks[0].ID)
	for _, p := range after.Progress {
		assert.NotEqual(t, "a", p.TaskID)
	}
	assert.Len(t, after.Progress, 1)

	// Receiver snapshot untouched.
	assert.Len(t, s.Tasks, 2)
	assert.Len(t, s.Progress, 3)

	t.Run("unknown id is a no-op", func(t *testing.T) {
		same := after.DeleteTask("missing")
		assert.Equal(t, after.Tasks, same.Tasks)
		assert.Equal(t, after.Progress, same.Progress)
	})
}

func TestAddTask(t *testing.T) {
	s := engine.Snapshot{}
	s1 := s.AddTask(newTask("a", "2024-01-01"))
	s2 := s1.AddTask(newTask("b", "2024-01-01"))

	assert.Empty(t, s.Tasks)
	assert.Len(t, s1.Tasks, 1)
	require.Len(t, s2.Tasks, 2)

	got, ok := s2.FindTask("b")
	assert.True(t, ok)
	assert.Equal(t, "b", got.ID)

	_, ok = s2.FindTask("missing")
	assert.False(t, ok)
}

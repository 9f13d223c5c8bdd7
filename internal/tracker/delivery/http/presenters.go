package http

import (
	"timetable-tracker/internal/engine"
	"timetable-tracker/internal/model"
	"timetable-tracker/internal/tracker"
	"timetable-tracker/pkg/datemath"
	"timetable-tracker/pkg/response"
)

// --- Request DTOs ---

type createTaskReq struct {
	Name        string `json:"name"        binding:"required,max=255"`
	Description string `json:"description" binding:"max=1000"`
	Category    string `json:"category"    binding:"max=100"`
	StartDate   string `json:"start_date"` // defaults to today
	EndDate     string `json:"end_date"`   // empty means open-ended
	Priority    string `json:"priority"    binding:"omitempty,oneof=low medium high"`

	start datemath.Date
	end   *datemath.Date
}

func (r createTaskReq) toInput() tracker.CreateTaskInput {
	return tracker.CreateTaskInput{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		StartDate:   r.start,
		EndDate:     r.end,
		Priority:    model.Priority(r.Priority),
	}
}

// ---

type toggleReq struct {
	TaskID string `json:"-"` // populated from URI param
	Date   string `json:"date"`

	date datemath.Date
}

func (r toggleReq) toInput() tracker.ToggleInput {
	return tracker.ToggleInput{TaskID: r.TaskID, Date: r.date}
}

// ---

type rangeReq struct {
	Start string `form:"start"`
	Days  int    `form:"days"`

	start datemath.Date
}

func (r rangeReq) toInput() tracker.RangeInput {
	days := r.Days
	if days == 0 {
		days = 7
	}
	return tracker.RangeInput{Start: r.start, Days: days}
}

// ---

type monthlyReq struct {
	Year  int `form:"year"`
	Month int `form:"month"` // 1..12
}

// ---

type seriesReq struct {
	Date   string `form:"date"`
	Days   int    `form:"days"`
	Months int    `form:"months"`

	end datemath.Date
}

func (r seriesReq) toDaysInput() tracker.SeriesInput {
	days := r.Days
	if days == 0 {
		days = tracker.DefaultTrendDays
	}
	return tracker.SeriesInput{End: r.end, Count: days}
}

func (r seriesReq) toMonthsInput() tracker.SeriesInput {
	months := r.Months
	if months == 0 {
		months = tracker.DefaultMonths
	}
	return tracker.SeriesInput{End: r.end, Count: months}
}

// --- Response DTOs ---

type taskResp struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	StartDate   datemath.Date     `json:"start_date" swaggertype:"string" example:"2024-01-01"`
	EndDate     *datemath.Date    `json:"end_date,omitempty" swaggertype:"string" example:"2024-12-31"`
	Priority    string            `json:"priority"`
	CreatedAt   response.DateTime `json:"created_at" swaggertype:"string"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Category:    t.Category,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
		Priority:    string(t.Priority),
		CreatedAt:   response.DateTime(t.CreatedAt),
	}
}

type progressResp struct {
	TaskID    string        `json:"task_id"`
	Date      datemath.Date `json:"date" swaggertype:"string" example:"2024-01-01"`
	Completed bool          `json:"completed"`
}

func newProgressResp(p model.DailyProgress) progressResp {
	return progressResp{TaskID: p.TaskID, Date: p.Date, Completed: p.Completed}
}

type statsResp struct {
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Rate      float64 `json:"rate"`
}

func newStatsResp(st engine.Stats) statsResp {
	return statsResp{Completed: st.Completed, Total: st.Total, Rate: st.Rate}
}

type taskResource struct {
	Task taskResp `json:"task"`
}

func (h *handler) newTaskResource(t model.Task) taskResource {
	return taskResource{Task: newTaskResp(t)}
}

type listTasksResp struct {
	Tasks      []taskResp `json:"tasks"`
	Total      int        `json:"total"`
	Categories []string   `json:"categories"`
}

func (h *handler) newListTasksResp(tasks []model.Task) listTasksResp {
	items := make([]taskResp, len(tasks))
	for i, t := range tasks {
		items[i] = newTaskResp(t)
	}
	return listTasksResp{Tasks: items, Total: len(items), Categories: model.SuggestedCategories}
}

type toggleResp struct {
	Progress progressResp `json:"progress"`
}

type listProgressResp struct {
	Progress []progressResp `json:"progress"`
}

func (h *handler) newListProgressResp(recs []model.DailyProgress) listProgressResp {
	items := make([]progressResp, len(recs))
	for i, p := range recs {
		items[i] = newProgressResp(p)
	}
	return listProgressResp{Progress: items}
}

type streakResp struct {
	TaskID string        `json:"task_id,omitempty"`
	Date   datemath.Date `json:"date" swaggertype:"string"`
	Streak int           `json:"streak"`
}

type taskProgressResp struct {
	taskResp
	TodayCompleted bool    `json:"today_completed"`
	TotalDays      int     `json:"total_days"`
	CompletedDays  int     `json:"completed_days"`
	Streak         int     `json:"streak"`
	CompletionRate float64 `json:"completion_rate"`
}

type todayResp struct {
	Date  datemath.Date      `json:"date" swaggertype:"string"`
	Tasks []taskProgressResp `json:"tasks"`
}

func (h *handler) newTodayResp(d datemath.Date, items []engine.TaskProgress) todayResp {
	out := make([]taskProgressResp, len(items))
	for i, tp := range items {
		out[i] = taskProgressResp{
			taskResp:       newTaskResp(tp.Task),
			TodayCompleted: tp.TodayCompleted,
			TotalDays:      tp.TotalDays,
			CompletedDays:  tp.CompletedDays,
			Streak:         tp.Streak,
			CompletionRate: tp.CompletionRate,
		}
	}
	return todayResp{Date: d, Tasks: out}
}

type dailyStatsResp struct {
	Date datemath.Date `json:"date" swaggertype:"string"`
	statsResp
}

type rangeStatsResp struct {
	Start datemath.Date `json:"start" swaggertype:"string"`
	Days  int           `json:"days"`
	statsResp
}

type monthlyStatsResp struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	statsResp
}

type heatmapEntryResp struct {
	Date  datemath.Date `json:"date" swaggertype:"string"`
	Count int           `json:"count"`
	Level int           `json:"level"`
}

type heatmapResp struct {
	Entries []heatmapEntryResp `json:"entries"`
}

func (h *handler) newHeatmapResp(entries []engine.HeatmapEntry) heatmapResp {
	out := make([]heatmapEntryResp, len(entries))
	for i, e := range entries {
		out[i] = heatmapEntryResp{Date: e.Date, Count: e.Count, Level: e.Level}
	}
	return heatmapResp{Entries: out}
}

type trendResp struct {
	Days []dailyStatsResp `json:"days"`
}

func (h *handler) newTrendResp(series []engine.DayStats) trendResp {
	out := make([]dailyStatsResp, len(series))
	for i, ds := range series {
		out[i] = dailyStatsResp{Date: ds.Date, statsResp: newStatsResp(ds.Stats)}
	}
	return trendResp{Days: out}
}

type monthsResp struct {
	Months []monthlyStatsResp `json:"months"`
}

func (h *handler) newMonthsResp(series []engine.MonthStats) monthsResp {
	out := make([]monthlyStatsResp, len(series))
	for i, ms := range series {
		out[i] = monthlyStatsResp{Year: ms.Year, Month: int(ms.Month), statsResp: newStatsResp(ms.Stats)}
	}
	return monthsResp{Months: out}
}

type breakdownResp struct {
	Completed  int `json:"completed"`
	InProgress int `json:"in_progress"`
	Pending    int `json:"pending"`
	Missed     int `json:"missed"`
}

type totalsResp struct {
	CompletedRecords int `json:"completed_records"`
	DaysWithRecords  int `json:"days_with_records"`
}

type dashboardResp struct {
	Date          datemath.Date `json:"date" swaggertype:"string"`
	WeekStart     datemath.Date `json:"week_start" swaggertype:"string"`
	Daily         statsResp     `json:"daily"`
	Weekly        statsResp     `json:"weekly"`
	Monthly       statsResp     `json:"monthly"`
	OverallStreak int           `json:"overall_streak"`
}

func (h *handler) newDashboardResp(out tracker.DashboardOutput) dashboardResp {
	return dashboardResp{
		Date:          out.Date,
		WeekStart:     out.WeekStart,
		Daily:         newStatsResp(out.Daily),
		Weekly:        newStatsResp(out.Weekly),
		Monthly:       newStatsResp(out.Monthly),
		OverallStreak: out.OverallStreak,
	}
}

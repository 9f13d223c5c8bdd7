package http

import (
	"github.com/gin-gonic/gin"

	"timetable-tracker/internal/tracker"
	"timetable-tracker/pkg/response"
)

// CreateTask godoc
// @Summary     Create a task
// @Description Creates a recurring task active every day from start_date through end_date. Dates accept YYYY-MM-DD or relative text such as "tomorrow".
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createTaskReq true "Task data"
// @Success     200  {object} taskResource
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) CreateTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateTaskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	task, err := h.uc.CreateTask(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateTask: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTaskResource(task))
}

// ListTasks godoc
// @Summary     List tasks
// @Description Returns every task in creation order and the suggested categories.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listTasksResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	tasks, err := h.uc.ListTasks(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTasks: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListTasksResp(tasks))
}

// DetailTask godoc
// @Summary     Get task detail
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResource
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) DetailTask(c *gin.Context) {
	ctx := c.Request.Context()

	task, err := h.uc.DetailTask(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.DetailTask: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTaskResource(task))
}

// DeleteTask godoc
// @Summary     Delete a task
// @Description Removes a task and all of its completion records. Unknown ids succeed.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) DeleteTask(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.DeleteTask(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.DeleteTask: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// ToggleCompletion godoc
// @Summary     Toggle completion
// @Description Flips the completion flag of a task on a day, creating a completed record when none exists. The body is optional; the date defaults to today.
// @Tags        Progress
// @Accept      json
// @Produce     json
// @Param       id   path string    true  "Task ID"
// @Param       body body toggleReq false "Day to toggle"
// @Success     200 {object} toggleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/toggle [POST]
func (h *handler) ToggleCompletion(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processToggleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	rec, err := h.uc.ToggleCompletion(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleCompletion: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, toggleResp{Progress: newProgressResp(rec)})
}

// ListProgress godoc
// @Summary     List completion records
// @Tags        Progress
// @Produce     json
// @Param       task_id query string false "Only records of this task"
// @Success     200 {object} listProgressResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/progress [GET]
func (h *handler) ListProgress(c *gin.Context) {
	ctx := c.Request.Context()

	recs, err := h.uc.ListProgress(ctx, tracker.ListProgressInput{TaskID: c.Query("task_id")})
	if err != nil {
		h.l.Errorf(ctx, "uc.ListProgress: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListProgressResp(recs))
}

// TaskStreak godoc
// @Summary     Task streak
// @Description Consecutive completed active days ending at the date.
// @Tags        Progress
// @Produce     json
// @Param       id   path  string true  "Task ID"
// @Param       date query string false "Reference date (default today)"
// @Success     200 {object} streakResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/streak [GET]
func (h *handler) TaskStreak(c *gin.Context) {
	ctx := c.Request.Context()

	date, err := h.parseDateQuery(c, "date")
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	id := c.Param("id")
	n, err := h.uc.Streak(ctx, tracker.StreakInput{TaskID: id, Date: date})
	if err != nil {
		h.l.Errorf(ctx, "uc.Streak: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, streakResp{TaskID: id, Date: date, Streak: n})
}

// Today godoc
// @Summary     Tasks with progress
// @Description Tasks active on the date with today's flag, elapsed and completed days, streak and completion rate.
// @Tags        Progress
// @Produce     json
// @Param       date query string false "Date (default today)"
// @Success     200 {object} todayResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/today [GET]
func (h *handler) Today(c *gin.Context) {
	ctx := c.Request.Context()

	date, err := h.parseDateQuery(c, "date")
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	items, err := h.uc.TasksWithProgress(ctx, date)
	if err != nil {
		h.l.Errorf(ctx, "uc.TasksWithProgress: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTodayResp(date, items))
}

// DailyStats godoc
// @Summary     Daily stats
// @Tags        Stats
// @Produce     json
// @Param       date query string false "Date (default today)"
// @Success     200 {object} dailyStatsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/stats/daily [GET]
func (h *handler) DailyStats(c *gin.Context) {
	ctx := c.Request.Context()

	date, err := h.parseDateQuery(c, "date")
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	st, err := h.uc.DailyStats(ctx, date)
	if err != nil {
		h.l.Errorf(ctx, "uc.DailyStats: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, dailyStatsResp{Date: date, statsResp: newStatsResp(st)})
}

// WeeklyStats godoc
// @Summary     Weekly stats
// @Description Seven days starting at start. Without start, the current Monday-based week.
// @Tags        Stats
// @Produce     json
// @Param       start query string false "First day of the week"
// @Success     200 {object} rangeStatsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/stats/weekly [GET]
func (h *handler) WeeklyStats(c *gin.Context) {
	ctx := c.Request.Context()

	start := h.today().StartOfWeek()
	if c.Query("start") != "" {
		var err error
		if start, err = h.parseDateQuery(c, "start"); err != nil {
			response.Error(c, err, nil)
			return
		}
	}

	st, err := h.uc.WeeklyStats(ctx, start)
	if err != nil {
		h.l.Errorf(ctx, "uc.WeeklyStats: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, rangeStatsResp{Start: start, Days: 7, statsResp: newStatsResp(st)})
}

// RangeStats godoc
// @Summary     Range stats
// @Tags        Stats
// @Produce     json
// @Param       start query string false "First day (default today)"
// @Param       days  query int    false "Number of days (default 7)"
// @Success     200 {object} rangeStatsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/stats/range [GET]
func (h *handler) RangeStats(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRangeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input := req.toInput()
	st, err := h.uc.RangeStats(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.RangeStats: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, rangeStatsResp{Start: input.Start, Days: input.Days, statsResp: newStatsResp(st)})
}

// MonthlyStats godoc
// @Summary     Monthly stats
// @Tags        Stats
// @Produce     json
// @Param       year  query int false "Year (default current)"
// @Param       month query int false "Month 1-12 (default current)"
// @Success     200 {object} monthlyStatsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/stats/monthly [GET]
func (h *handler) MonthlyStats(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMonthlyReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	st, err := h.uc.MonthlyStats(ctx, tracker.MonthInput{Year: req.Year, Month: req.month()})
	if err != nil {
		h.l.Errorf(ctx, "uc.MonthlyStats: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, monthlyStatsResp{Year: req.Year, Month: req.Month, statsResp: newStatsResp(st)})
}

// OverallStreak godoc
// @Summary     Overall streak
// @Description Consecutive days ending at the date on which every active task was completed.
// @Tags        Stats
// @Produce     json
// @Param       date query string false "Reference date (default today)"
// @Success     200 {object} streakResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/stats/streak [GET]
func (h *handler) OverallStreak(c *gin.Context) {
	ctx := c.Request.Context()

	date, err := h.parseDateQuery(c, "date")
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	n, err := h.uc.OverallStreak(ctx, date)
	if err != nil {
		h.l.Errorf(ctx, "uc.OverallStreak: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, streakResp{Date: date, Streak: n})
}

// Heatmap godoc
// @Summary     Activity heatmap
// @Description 365 days ending at the date, oldest first, with completed count and level 0-5.
// @Tags        Stats
// @Produce     json
// @Param       date query string false "Last day (default today)"
// @Success     200 {object} heatmapResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/stats/heatmap [GET]
func (h *handler) Heatmap(c *gin.Context) {
	ctx := c.Request.Context()

	date, err := h.parseDateQuery(c, "date")
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	entries, err := h.uc.Heatmap(ctx, date)
	if err != nil {
		h.l.Errorf(ctx, "uc.Heatmap: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newHeatmapResp(entries))
}

// Trend godoc
// @Summary     Daily trend
// @Tags        Stats
// @Produce     json
// @Param       date query string false "Last day (default today)"
// @Param       days query int    false "Number of days (default 30)"
// @Success     200 {object} trendResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/stats/trend [GET]
func (h *handler) Trend(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSeriesReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	series, err := h.uc.DailySeries(ctx, req.toDaysInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.DailySeries: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTrendResp(series))
}

// Months godoc
// @Summary     Monthly series
// @Tags        Stats
// @Produce     json
// @Param       date   query string false "Day in the last month (default today)"
// @Param       months query int    false "Number of months (default 6)"
// @Success     200 {object} monthsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/stats/months [GET]
func (h *handler) Months(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSeriesReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	series, err := h.uc.MonthlySeries(ctx, req.toMonthsInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.MonthlySeries: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newMonthsResp(series))
}

// Breakdown godoc
// @Summary     Status breakdown
// @Description Completed records, tasks in progress, pending today and missed past days.
// @Tags        Stats
// @Produce     json
// @Param       date query string false "Today (default today)"
// @Success     200 {object} breakdownResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/stats/breakdown [GET]
func (h *handler) Breakdown(c *gin.Context) {
	ctx := c.Request.Context()

	date, err := h.parseDateQuery(c, "date")
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	b, err := h.uc.StatusBreakdown(ctx, date)
	if err != nil {
		h.l.Errorf(ctx, "uc.StatusBreakdown: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, breakdownResp{Completed: b.Completed, InProgress: b.InProgress, Pending: b.Pending, Missed: b.Missed})
}

// Dashboard godoc
// @Summary     Dashboard
// @Description Daily, weekly (Monday start) and monthly stats with the overall streak.
// @Tags        Stats
// @Produce     json
// @Param       date query string false "Date (default today)"
// @Success     200 {object} dashboardResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/stats/dashboard [GET]
func (h *handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	date, err := h.parseDateQuery(c, "date")
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Dashboard(ctx, date)
	if err != nil {
		h.l.Errorf(ctx, "uc.Dashboard: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDashboardResp(out))
}

// Totals godoc
// @Summary     Totals
// @Tags        Stats
// @Produce     json
// @Success     200 {object} totalsResp
// @Router      /api/v1/stats/totals [GET]
func (h *handler) Totals(c *gin.Context) {
	ctx := c.Request.Context()

	t, err := h.uc.Totals(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Totals: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, totalsResp{CompletedRecords: t.CompletedRecords, DaysWithRecords: t.DaysWithRecords})
}

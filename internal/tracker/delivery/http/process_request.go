package http

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"timetable-tracker/pkg/datemath"
)

// today is the current calendar day in the parser's timezone.
func (h *handler) today() datemath.Date {
	return h.parser.Today(h.now())
}

// parseDate resolves ISO or relative date text. Empty text means today.
func (h *handler) parseDate(text string) (datemath.Date, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return h.today(), nil
	}
	return h.parser.Parse(text, h.now())
}

// parseDateQuery reads a date from the named query parameter.
func (h *handler) parseDateQuery(c *gin.Context, key string) (datemath.Date, error) {
	d, err := h.parseDate(c.Query(key))
	if err != nil {
		return datemath.Date{}, badRequest(err)
	}
	return d, nil
}

// processCreateTaskReq binds the create body and resolves its dates.
func (h *handler) processCreateTaskReq(c *gin.Context) (createTaskReq, error) {
	var req createTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, badRequest(err)
	}

	start, err := h.parseDate(req.StartDate)
	if err != nil {
		return req, badRequest(err)
	}
	req.start = start

	if strings.TrimSpace(req.EndDate) != "" {
		end, err := h.parseDate(req.EndDate)
		if err != nil {
			return req, badRequest(err)
		}
		req.end = &end
	}
	return req, nil
}

// processToggleReq binds the optional toggle body and the URI param.
func (h *handler) processToggleReq(c *gin.Context) (toggleReq, error) {
	var req toggleReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, badRequest(err)
	}
	req.TaskID = c.Param("id")

	d, err := h.parseDate(req.Date)
	if err != nil {
		return req, badRequest(err)
	}
	req.date = d
	return req, nil
}

// processRangeReq binds the range query parameters.
func (h *handler) processRangeReq(c *gin.Context) (rangeReq, error) {
	var req rangeReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, badRequest(err)
	}

	start, err := h.parseDate(req.Start)
	if err != nil {
		return req, badRequest(err)
	}
	req.start = start
	return req, nil
}

// processMonthlyReq binds year and month, defaulting to the current month.
func (h *handler) processMonthlyReq(c *gin.Context) (monthlyReq, error) {
	var req monthlyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, badRequest(err)
	}

	today := h.today()
	if req.Year == 0 {
		req.Year = today.Year()
	}
	if req.Month == 0 {
		req.Month = int(today.Month())
	}
	return req, nil
}

// processSeriesReq binds the series query parameters.
func (h *handler) processSeriesReq(c *gin.Context) (seriesReq, error) {
	var req seriesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, badRequest(err)
	}

	end, err := h.parseDate(req.Date)
	if err != nil {
		return req, badRequest(err)
	}
	req.end = end
	return req, nil
}

func (r monthlyReq) month() time.Month {
	return time.Month(r.Month)
}

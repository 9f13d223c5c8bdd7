package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	inDurationPattern = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	agoPattern        = regexp.MustCompile(`^(\d+) (day|days|week|weeks|month|months) ago$`)
)

// Parser resolves date text against "today" in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Today returns the calendar day of now in the parser's timezone.
func (p *Parser) Today(now time.Time) Date {
	return FromTime(now.In(p.location))
}

// Parse converts ISO or relative date text to a Date.
// The baseTime is used as the reference point (usually time.Now()).
// Empty text resolves to today. Unknown text fails with ErrInvalidDate.
func (p *Parser) Parse(text string, baseTime time.Time) (Date, error) {
	relative := strings.ToLower(strings.TrimSpace(text))
	today := p.Today(baseTime)

	switch relative {
	case "", "today":
		return today, nil
	case "tomorrow":
		return today.AddDays(1), nil
	case "yesterday":
		return today.AddDays(-1), nil
	}

	if d, err := Parse(relative); err == nil {
		return d, nil
	}

	// Handle "in X days/weeks/months"
	if m := inDurationPattern.FindStringSubmatch(relative); m != nil {
		return shift(today, m[1], m[2], 1)
	}

	// Handle "X days/weeks/months ago"
	if m := agoPattern.FindStringSubmatch(relative); m != nil {
		return shift(today, m[1], m[2], -1)
	}

	// Handle "next <weekday>"
	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, today)
	}

	return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, text)
}

func shift(today Date, amountText, unit string, sign int) (Date, error) {
	amount, err := strconv.Atoi(amountText)
	if err != nil {
		return Date{}, fmt.Errorf("%w: amount %q", ErrInvalidDate, amountText)
	}
	amount *= sign

	switch {
	case strings.HasPrefix(unit, "day"):
		return today.AddDays(amount), nil
	case strings.HasPrefix(unit, "week"):
		return today.AddDays(amount * 7), nil
	case strings.HasPrefix(unit, "month"):
		return FromTime(today.time().AddDate(0, amount, 0)), nil
	}

	return Date{}, fmt.Errorf("%w: unknown time unit %q", ErrInvalidDate, unit)
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, today Date) (Date, error) {
	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return Date{}, fmt.Errorf("%w: unknown weekday %q", ErrInvalidDate, dayName)
	}

	daysUntil := int(targetWeekday - today.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return today.AddDays(daysUntil), nil
}

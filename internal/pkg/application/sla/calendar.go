package sla

import (
	"errors"
	"fmt"
	"time"

	"github.com/diwise/oncall-mgmt/pkg/types"
)

var (
	ErrNoBusinessDays = errors.New("no business days configured")
	ErrInvalidWindow  = errors.New("business hours end must be after start")
	ErrBudget         = errors.New("could not consume full minute budget")
)

// window is a team's recurring business-hours window. Start and end are
// seconds from local midnight, start < end (windows spanning midnight are
// not supported).
type window struct {
	loc   *time.Location
	start int
	end   int
	days  map[time.Weekday]struct{}
}

func newWindow(s types.TeamSLASettings) (window, error) {
	loc := time.UTC
	if s.Timezone != "" {
		l, err := time.LoadLocation(s.Timezone)
		if err != nil {
			return window{}, fmt.Errorf("unknown timezone %s: %w", s.Timezone, err)
		}
		loc = l
	}

	start, err := parseTimeOfDay(s.BusinessHoursStart)
	if err != nil {
		return window{}, err
	}

	end, err := parseTimeOfDay(s.BusinessHoursEnd)
	if err != nil {
		return window{}, err
	}

	if end <= start {
		return window{}, ErrInvalidWindow
	}

	days := map[time.Weekday]struct{}{}
	for _, d := range s.BusinessDays {
		if d >= 0 && d <= 6 {
			days[time.Weekday(d)] = struct{}{}
		}
	}

	if len(days) == 0 {
		return window{}, ErrNoBusinessDays
	}

	return window{loc: loc, start: start, end: end, days: days}, nil
}

func parseTimeOfDay(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return t.Hour()*3600 + t.Minute()*60, nil
}

func (w window) secondOfDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

func (w window) isBusinessDay(t time.Time) bool {
	_, ok := w.days[t.Weekday()]
	return ok
}

func (w window) contains(t time.Time) bool {
	s := w.secondOfDay(t)
	return w.isBusinessDay(t) && s >= w.start && s < w.end
}

func (w window) openOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, w.start, 0, w.loc)
}

func (w window) closeOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, w.end, 0, w.loc)
}

// nextOpen returns the start of the first business window at or after t.
func (w window) nextOpen(t time.Time) time.Time {
	if w.isBusinessDay(t) && w.secondOfDay(t) < w.start {
		return w.openOf(t)
	}

	d := t
	for range 7 {
		d = d.AddDate(0, 0, 1)
		if w.isBusinessDay(d) {
			return w.openOf(d)
		}
	}

	// unreachable, newWindow guarantees at least one business day
	return w.openOf(d)
}

// Deadline converts a start instant and a minute budget into the instant the
// budget runs out. With businessHoursOnly the budget is only consumed inside
// the configured windows, in the team's timezone.
func Deadline(start time.Time, targetMinutes int, s types.TeamSLASettings) (time.Time, error) {
	if !s.BusinessHoursOnly {
		return start.Add(time.Duration(targetMinutes) * time.Minute), nil
	}

	w, err := newWindow(s)
	if err != nil {
		return time.Time{}, err
	}

	remaining := time.Duration(targetMinutes) * time.Minute
	cur := start.In(w.loc)

	windowLen := time.Duration(w.end-w.start) * time.Second
	maxIter := 2*int(remaining/windowLen) + 32

	for range maxIter {
		if !w.contains(cur) {
			cur = w.nextOpen(cur)
			continue
		}

		avail := w.closeOf(cur).Sub(cur)
		if avail >= remaining {
			return cur.Add(remaining), nil
		}

		remaining -= avail
		cur = w.closeOf(cur)
	}

	return time.Time{}, ErrBudget
}

// ElapsedBusinessMinutes sums the minutes between start and end that fall
// inside business windows. It is the inverse of Deadline:
// ElapsedBusinessMinutes(start, Deadline(start, T, s), s) == T.
func ElapsedBusinessMinutes(start, end time.Time, s types.TeamSLASettings) (float64, error) {
	if !end.After(start) {
		return 0, nil
	}

	if !s.BusinessHoursOnly {
		return end.Sub(start).Minutes(), nil
	}

	w, err := newWindow(s)
	if err != nil {
		return 0, err
	}

	var total time.Duration
	cur := start.In(w.loc)
	stop := end.In(w.loc)

	for cur.Before(stop) {
		if !w.contains(cur) {
			cur = w.nextOpen(cur)
			continue
		}

		segEnd := w.closeOf(cur)
		if stop.Before(segEnd) {
			segEnd = stop
		}

		total += segEnd.Sub(cur)
		cur = segEnd
	}

	return total.Minutes(), nil
}

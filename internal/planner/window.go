// Package planner holds the pure scheduling arithmetic: the weekly
// planning window and the day-coverage analysis. Nothing here touches
// the cache or the network.
package planner

import (
	"time"

	"shift-planner-backend/internal/database/models"
)

// WindowPolicy is the configured width of the planning window, in weeks
// relative to the current week. Managers plan ahead and review history;
// employees only need recently published weeks.
type WindowPolicy struct {
	ManagerWeeksBack   int
	ManagerWeeksAhead  int
	EmployeeWeeksBack  int
	EmployeeWeeksAhead int
}

// WeekWindow is an inclusive range of week-start dates
type WeekWindow struct {
	Start time.Time
	End   time.Time
}

// WeekStart returns the Monday 00:00 UTC of the week containing t
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset)
}

// WeekBounds returns the Monday and Sunday of the week starting at
// weekStart. The input is normalized to its own week's Monday first.
func WeekBounds(weekStart time.Time) (monday, sunday time.Time) {
	monday = WeekStart(weekStart)
	sunday = monday.AddDate(0, 0, 6)
	return monday, sunday
}

// WindowFor computes the inclusive week-start range considered in
// window for the given role, relative to today
func (p WindowPolicy) WindowFor(role models.EmployeeRole, today time.Time) WeekWindow {
	current := WeekStart(today)
	back, ahead := p.EmployeeWeeksBack, p.EmployeeWeeksAhead
	if role == models.RoleManager {
		back, ahead = p.ManagerWeeksBack, p.ManagerWeeksAhead
	}
	return WeekWindow{
		Start: current.AddDate(0, 0, -7*back),
		End:   current.AddDate(0, 0, 7*ahead),
	}
}

// Contains reports whether the week starting at weekStart falls inside
// the window
func (w WeekWindow) Contains(weekStart time.Time) bool {
	ws := WeekStart(weekStart)
	return !ws.Before(w.Start) && !ws.After(w.End)
}

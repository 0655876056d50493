package planner

import (
	"fmt"
	"sort"

	"shift-planner-backend/internal/database/models"
)

// Verdict is the tri-state completeness result of a coverage analysis
type Verdict string

const (
	VerdictComplete   Verdict = "COMPLETE"
	VerdictPartial    Verdict = "PARTIAL"
	VerdictIncomplete Verdict = "INCOMPLETE"
)

// CoveragePolicy holds the verdict thresholds, as fractions of the
// department's operating window
type CoveragePolicy struct {
	CompleteThreshold float64
	PartialFloor      float64
}

// Gap is an uncovered stretch of the operating window
type Gap struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	Minutes int    `json:"minutes"`
}

// Overlap is an unordered pair of shifts whose intervals intersect,
// together with the intersection
type Overlap struct {
	FirstShiftID  string `json:"first_shift_id"`
	SecondShiftID string `json:"second_shift_id"`
	Start         string `json:"start"`
	End           string `json:"end"`
	Minutes       int    `json:"minutes"`
}

// CoverageReport is the result of analyzing one department day
type CoverageReport struct {
	TotalMinutes    int       `json:"total_minutes"`
	CoveredMinutes  int       `json:"covered_minutes"`
	CoveragePercent float64   `json:"coverage_percent"`
	Gaps            []Gap     `json:"gaps"`
	Overlaps        []Overlap `json:"overlaps"`
	Verdict         Verdict   `json:"verdict"`
}

// interval is a clock range in minutes since midnight
type interval struct {
	start, end int
	shiftID    string
}

// AnalyzeCoverage evaluates how completely the given shifts fill a
// department's operating hours on one day. Shifts with malformed time
// strings or start >= end are excluded from the computation rather than
// failing it; the report is always best effort.
func AnalyzeCoverage(hours models.DayHours, shifts []models.Shift, pol CoveragePolicy) CoverageReport {
	report := CoverageReport{Gaps: []Gap{}, Overlaps: []Overlap{}}

	open, openOK := parseClock(hours.Open)
	close_, closeOK := parseClock(hours.Close)
	windowOK := openOK && closeOK && open < close_
	if windowOK {
		report.TotalMinutes = close_ - open
	}

	usable := make([]interval, 0, len(shifts))
	for i := range shifts {
		s := &shifts[i]
		start, ok1 := parseClock(s.StartTime)
		end, ok2 := parseClock(s.EndTime)
		if !ok1 || !ok2 || start >= end {
			continue
		}
		usable = append(usable, interval{start: start, end: end, shiftID: s.ID.String()})
		report.CoveredMinutes += end - start
	}

	if report.TotalMinutes > 0 {
		report.CoveragePercent = float64(report.CoveredMinutes) / float64(report.TotalMinutes)
	}

	// Pairwise overlaps over the usable shifts, in input order.
	for i := 0; i < len(usable); i++ {
		for j := i + 1; j < len(usable); j++ {
			start := max(usable[i].start, usable[j].start)
			end := min(usable[i].end, usable[j].end)
			if start < end {
				report.Overlaps = append(report.Overlaps, Overlap{
					FirstShiftID:  usable[i].shiftID,
					SecondShiftID: usable[j].shiftID,
					Start:         formatClock(start),
					End:           formatClock(end),
					Minutes:       end - start,
				})
			}
		}
	}

	if windowOK {
		report.Gaps = findGaps(open, close_, usable)
	}

	report.Verdict = verdict(len(shifts), report, pol)
	return report
}

// findGaps merges the usable intervals into maximal blocks and returns
// the uncovered stretches of [open, close]. Zero usable intervals yield
// one gap spanning the whole window.
func findGaps(open, close_ int, usable []interval) []Gap {
	gaps := []Gap{}
	if len(usable) == 0 {
		return append(gaps, Gap{
			Start:   formatClock(open),
			End:     formatClock(close_),
			Minutes: close_ - open,
		})
	}

	sorted := make([]interval, len(usable))
	copy(sorted, usable)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].start < sorted[j].start })

	// Merge overlapping or touching intervals into blocks.
	blocks := []interval{sorted[0]}
	for _, iv := range sorted[1:] {
		last := &blocks[len(blocks)-1]
		if iv.start <= last.end {
			if iv.end > last.end {
				last.end = iv.end
			}
			continue
		}
		blocks = append(blocks, iv)
	}

	cursor := open
	for _, b := range blocks {
		if b.end <= cursor {
			continue
		}
		if b.start > cursor && cursor < close_ {
			end := min(b.start, close_)
			if end > cursor {
				gaps = append(gaps, Gap{
					Start:   formatClock(cursor),
					End:     formatClock(end),
					Minutes: end - cursor,
				})
			}
		}
		if b.end > cursor {
			cursor = b.end
		}
	}
	if cursor < close_ {
		gaps = append(gaps, Gap{
			Start:   formatClock(max(cursor, open)),
			End:     formatClock(close_),
			Minutes: close_ - max(cursor, open),
		})
	}
	return gaps
}

func verdict(assignedShifts int, r CoverageReport, pol CoveragePolicy) Verdict {
	if assignedShifts == 0 {
		return VerdictIncomplete
	}
	if len(r.Overlaps) > 0 || len(r.Gaps) > 0 {
		return VerdictPartial
	}
	if r.CoveragePercent >= pol.CompleteThreshold {
		return VerdictComplete
	}
	if r.CoveragePercent >= pol.PartialFloor {
		return VerdictPartial
	}
	return VerdictIncomplete
}

// parseClock converts "HH:MM" into minutes since midnight
func parseClock(s string) (int, bool) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, false
	}
	if len(s) != 5 || s[2] != ':' || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

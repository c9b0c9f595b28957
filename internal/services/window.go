package services

import (
	"errors"
	"fmt"
	"sort"

	"github.com/atelierhq/atelier/internal/dates"
	"github.com/atelierhq/atelier/internal/db/models"
)

// ErrInvalidRange is returned when a date-range query ends before it starts.
var ErrInvalidRange = errors.New("date range ends before it starts")

// Window is an inclusive calendar-day interval used to decide which jobs
// appear in a calendar view.
type Window struct {
	Start dates.Day
	End   dates.Day
}

// NewWindow builds a window from a start day and an optional end day. A nil
// end collapses to an exact-day window over start. An end that precedes the
// start is treated as a caller error and rejected outright rather than
// silently matching nothing.
func NewWindow(start dates.Day, end *dates.Day) (Window, error) {
	if end == nil {
		return Window{Start: start, End: start}, nil
	}
	if end.Before(start) {
		return Window{}, fmt.Errorf("%w: [%s, %s]", ErrInvalidRange, start, *end)
	}
	return Window{Start: start, End: *end}, nil
}

// Matches reports whether a job occupies some day of the window, optionally
// restricted to a single status. Occupancy depends on the job's status:
//
//   - pending jobs sit on their due date
//   - in-progress jobs span from their start date onward, with no end
//   - completed jobs span the closed interval [start_date, completed_date]
//
// Cancelled jobs never match, with or without a status filter. Completed
// jobs missing either boundary date never match, which guards against
// partially-migrated rows.
func (w Window) Matches(job *models.Job, status *models.Status) bool {
	if status != nil && job.Status != *status {
		return false
	}
	switch job.Status {
	case models.StatusPending:
		return w.matchesPending(job)
	case models.StatusInProgress:
		return w.matchesInProgress(job)
	case models.StatusCompleted:
		return w.matchesCompleted(job)
	default:
		return false
	}
}

func (w Window) matchesPending(job *models.Job) bool {
	due, ok := day(job.DueDate)
	if !ok {
		return false
	}
	return !due.Before(w.Start) && !due.After(w.End)
}

func (w Window) matchesInProgress(job *models.Job) bool {
	start, ok := day(job.StartDate)
	if !ok {
		return false
	}
	if start.After(w.End) {
		return false
	}
	// A residual completed_date on an in-progress job still bounds the
	// interval; an absent one leaves it open-ended.
	if completed, ok := day(job.CompletedDate); ok {
		return !completed.Before(w.Start)
	}
	return true
}

func (w Window) matchesCompleted(job *models.Job) bool {
	start, ok := day(job.StartDate)
	if !ok {
		return false
	}
	completed, ok := day(job.CompletedDate)
	if !ok {
		return false
	}
	return !start.After(w.End) && !completed.Before(w.Start)
}

// Filter returns the jobs matching the window, ordered by due date
// ascending. Jobs without a due date sort last; ties keep store order.
func (w Window) Filter(jobs []models.Job, status *models.Status) []models.Job {
	matched := make([]models.Job, 0, len(jobs))
	for i := range jobs {
		if w.Matches(&jobs[i], status) {
			matched = append(matched, jobs[i])
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		di, iok := day(matched[i].DueDate)
		dj, jok := day(matched[j].DueDate)
		switch {
		case iok && jok:
			return di.Before(dj)
		case iok:
			return true
		default:
			return false
		}
	})
	return matched
}

// day parses an optional canonical date field. Absent or malformed values
// report false.
func day(s *string) (dates.Day, bool) {
	if s == nil || *s == "" {
		return dates.Day{}, false
	}
	d, err := dates.Parse(*s)
	if err != nil {
		return dates.Day{}, false
	}
	return d, true
}

// Package cadence computes per-company communication status from the
// configured contact periodicity and the chronological communication log.
// It is the single source of truth for "last contact", "next due" and the
// overdue / due-today / scheduled classification: a pure, deterministic
// function of its inputs with no I/O and no ambient clock.
package cadence

import (
	"sort"
	"time"

	apperrors "communication-tracker-backend/internal/errors"

	"github.com/google/uuid"
)

// lastContactWindow is the fixed number of most recent past contacts reported.
const lastContactWindow = 5

// Status classifies a company against its next due communication date.
type Status string

const (
	// StatusOverdue means the next due date is strictly before today.
	StatusOverdue Status = "OVERDUE"
	// StatusDueToday means the next due date is today.
	StatusDueToday Status = "DUE_TODAY"
	// StatusScheduled means the next due date is after today.
	StatusScheduled Status = "SCHEDULED"
	// StatusUnknown means no due date could be computed. It is surfaced
	// explicitly rather than defaulted to scheduled.
	StatusUnknown Status = "UNKNOWN"
)

// Entry is one logged communication for a single company.
type Entry struct {
	ID   uuid.UUID
	Type string
	Date time.Time
}

// DueItem is the next communication a company is due for. A synthetic item
// is derived from periodicity rather than an explicitly booked entry; it
// carries no type and signals that outreach is due by policy.
type DueItem struct {
	Type      string
	Date      time.Time
	Synthetic bool
}

// Input is everything Classify needs. Now must be supplied by the caller;
// the engine never reads the system clock.
type Input struct {
	// PeriodicityDays is the configured contact interval in days. nil means
	// the company has no cadence configured; zero or negative is invalid.
	PeriodicityDays *int
	// Anchor is the company's creation reference, used to derive a synthetic
	// due date when the history is empty.
	Anchor time.Time
	// History holds the company's communications in insertion order. Entries
	// sharing a calendar date keep that order in the output.
	History []Entry
	// Now is the evaluation instant, compared at day granularity.
	Now time.Time
}

// Report is the classification result for one company.
type Report struct {
	// LastContacts are the most recent past-or-present entries, newest
	// first, at most five.
	LastContacts []Entry
	// NextDue is nil only when Status is StatusUnknown.
	NextDue *DueItem
	Status  Status
	// Skipped counts history entries excluded for missing dates. A
	// data-quality signal for the caller to log, never fatal.
	Skipped int
}

// Classify partitions the history around Now, picks the last contacts and the
// next due communication, and classifies the company. It never mutates the
// input history and never fails for an empty one; the only error is an
// invalid configured periodicity.
func Classify(in Input) (Report, error) {
	if in.PeriodicityDays != nil && *in.PeriodicityDays <= 0 {
		return Report{}, apperrors.ErrInvalidPeriodicity
	}

	today := dateOnly(in.Now)

	var past, future []Entry
	skipped := 0
	for _, e := range in.History {
		switch {
		case e.Date.IsZero():
			skipped++
		case dateOnly(e.Date).After(today):
			future = append(future, e)
		default:
			// A communication dated today counts as a past contact; it does
			// not by itself make the company due today.
			past = append(past, e)
		}
	}

	// Stable sorts preserve insertion order for same-day entries.
	sort.SliceStable(past, func(i, j int) bool {
		return dateOnly(past[i].Date).After(dateOnly(past[j].Date))
	})
	sort.SliceStable(future, func(i, j int) bool {
		return dateOnly(future[i].Date).Before(dateOnly(future[j].Date))
	})

	report := Report{Status: StatusUnknown, Skipped: skipped}
	if len(past) > lastContactWindow {
		past = past[:lastContactWindow]
	}
	report.LastContacts = past

	switch {
	case len(future) > 0:
		report.NextDue = &DueItem{Type: future[0].Type, Date: dateOnly(future[0].Date)}
	case in.PeriodicityDays != nil:
		var anchor time.Time
		if len(past) > 0 {
			anchor = dateOnly(past[0].Date)
		} else if !in.Anchor.IsZero() {
			anchor = dateOnly(in.Anchor)
		}
		if !anchor.IsZero() {
			report.NextDue = &DueItem{
				Date:      anchor.AddDate(0, 0, *in.PeriodicityDays),
				Synthetic: true,
			}
		}
	}

	if report.NextDue != nil {
		switch {
		case report.NextDue.Date.Before(today):
			report.Status = StatusOverdue
		case report.NextDue.Date.Equal(today):
			report.Status = StatusDueToday
		default:
			report.Status = StatusScheduled
		}
	}

	return report, nil
}

// Summary holds the aggregate notification counts for one classification
// pass over a set of companies.
type Summary struct {
	Overdue  int `json:"overdue"`
	DueToday int `json:"dueToday"`
}

// Summarize tallies statuses across reports. Counts are recomputed on every
// pass; dataset sizes are small enough that no incremental maintenance is
// warranted.
func Summarize(reports []Report) Summary {
	var s Summary
	for _, r := range reports {
		switch r.Status {
		case StatusOverdue:
			s.Overdue++
		case StatusDueToday:
			s.DueToday++
		}
	}
	return s
}

// OverdueDays reports how many whole days past due a report is at now.
// Zero for anything not overdue.
func OverdueDays(r Report, now time.Time) int {
	if r.Status != StatusOverdue || r.NextDue == nil {
		return 0
	}
	return int(dateOnly(now).Sub(r.NextDue.Date).Hours() / 24)
}

// dateOnly truncates t to midnight UTC at calendar-day granularity.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

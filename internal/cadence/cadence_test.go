package cadence

import (
	"testing"
	"time"

	apperrors "communication-tracker-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	return base.AddDate(0, 0, offset)
}

func intPtr(v int) *int { return &v }

func entry(t string, date time.Time) Entry {
	return Entry{ID: uuid.New(), Type: t, Date: date}
}

func TestClassifyDeterministic(t *testing.T) {
	in := Input{
		PeriodicityDays: intPtr(7),
		History: []Entry{
			entry("Email", day(-3)),
			entry("Phone Call", day(-1)),
			entry("LinkedIn Post", day(2)),
		},
		Now: day(0),
	}

	first, err := Classify(in)
	require.NoError(t, err)
	second, err := Classify(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestClassifyDoesNotMutateHistory(t *testing.T) {
	history := []Entry{
		entry("Email", day(-1)),
		entry("Phone Call", day(-5)),
		entry("Other", day(-3)),
	}
	snapshot := append([]Entry(nil), history...)

	_, err := Classify(Input{PeriodicityDays: intPtr(7), History: history, Now: day(0)})
	require.NoError(t, err)

	assert.Equal(t, snapshot, history)
}

func TestClassifyAllFutureIsScheduled(t *testing.T) {
	report, err := Classify(Input{
		PeriodicityDays: intPtr(7),
		History: []Entry{
			entry("Email", day(5)),
			entry("Phone Call", day(2)),
		},
		Now: day(0),
	})
	require.NoError(t, err)

	assert.Equal(t, StatusScheduled, report.Status)
	assert.Empty(t, report.LastContacts)
	require.NotNil(t, report.NextDue)
	assert.False(t, report.NextDue.Synthetic)
	assert.Equal(t, "Phone Call", report.NextDue.Type)
	assert.Equal(t, day(2), report.NextDue.Date)
}

func TestClassifyEmptyHistoryWithoutPeriodicity(t *testing.T) {
	report, err := Classify(Input{Now: day(0)})
	require.NoError(t, err)

	assert.Equal(t, StatusUnknown, report.Status)
	assert.Nil(t, report.NextDue)
	assert.Empty(t, report.LastContacts)
}

func TestClassifyEmptyHistoryWithoutAnchor(t *testing.T) {
	// Periodicity alone is not enough: with no history and no creation
	// reference there is nothing to anchor a synthetic date to.
	report, err := Classify(Input{PeriodicityDays: intPtr(7), Now: day(0)})
	require.NoError(t, err)

	assert.Equal(t, StatusUnknown, report.Status)
	assert.Nil(t, report.NextDue)
}

func TestClassifySyntheticOverdue(t *testing.T) {
	// Last contact on day 0, periodicity 7, evaluated on day 8: the
	// synthetic due date (day 7) is before today.
	report, err := Classify(Input{
		PeriodicityDays: intPtr(7),
		History:         []Entry{entry("Email", day(0))},
		Now:             day(8),
	})
	require.NoError(t, err)

	assert.Equal(t, StatusOverdue, report.Status)
	require.NotNil(t, report.NextDue)
	assert.True(t, report.NextDue.Synthetic)
	assert.Empty(t, report.NextDue.Type)
	assert.Equal(t, day(7), report.NextDue.Date)
	assert.Equal(t, 1, OverdueDays(report, day(8)))
}

func TestClassifySyntheticDueToday(t *testing.T) {
	report, err := Classify(Input{
		PeriodicityDays: intPtr(7),
		History:         []Entry{entry("Email", day(0))},
		Now:             day(7),
	})
	require.NoError(t, err)

	assert.Equal(t, StatusDueToday, report.Status)
	require.NotNil(t, report.NextDue)
	assert.Equal(t, day(7), report.NextDue.Date)
	assert.Equal(t, 0, OverdueDays(report, day(7)))
}

func TestClassifySyntheticScheduled(t *testing.T) {
	report, err := Classify(Input{
		PeriodicityDays: intPtr(7),
		History:         []Entry{entry("Email", day(0))},
		Now:             day(3),
	})
	require.NoError(t, err)

	assert.Equal(t, StatusScheduled, report.Status)
}

func TestClassifyEmptyHistoryUsesAnchor(t *testing.T) {
	report, err := Classify(Input{
		PeriodicityDays: intPtr(14),
		Anchor:          day(-20),
		Now:             day(0),
	})
	require.NoError(t, err)

	assert.Equal(t, StatusOverdue, report.Status)
	require.NotNil(t, report.NextDue)
	assert.True(t, report.NextDue.Synthetic)
	assert.Equal(t, day(-6), report.NextDue.Date)
}

func TestClassifyLastContactWindow(t *testing.T) {
	var history []Entry
	for i := 8; i >= 1; i-- {
		history = append(history, entry("Email", day(-i)))
	}

	report, err := Classify(Input{PeriodicityDays: intPtr(7), History: history, Now: day(0)})
	require.NoError(t, err)

	require.Len(t, report.LastContacts, 5)
	for i, e := range report.LastContacts {
		assert.Equal(t, day(-(i+1)), e.Date, "last contacts must be most-recent-first")
	}
}

func TestClassifySameDayEntryDoesNotForceDueToday(t *testing.T) {
	// A communication logged today is a valid past contact; the next due
	// date moves a full period out.
	report, err := Classify(Input{
		PeriodicityDays: intPtr(7),
		History:         []Entry{entry("Email", day(0))},
		Now:             day(0),
	})
	require.NoError(t, err)

	require.Len(t, report.LastContacts, 1)
	assert.Equal(t, StatusScheduled, report.Status)
	assert.Equal(t, day(7), report.NextDue.Date)
}

func TestClassifyTiesKeepInsertionOrder(t *testing.T) {
	first := entry("Email", day(-1))
	second := entry("Phone Call", day(-1))
	third := entry("Other", day(-1))

	report, err := Classify(Input{
		PeriodicityDays: intPtr(7),
		History:         []Entry{first, second, third},
		Now:             day(0),
	})
	require.NoError(t, err)

	require.Len(t, report.LastContacts, 3)
	assert.Equal(t, first.ID, report.LastContacts[0].ID)
	assert.Equal(t, second.ID, report.LastContacts[1].ID)
	assert.Equal(t, third.ID, report.LastContacts[2].ID)
}

func TestClassifyFutureTiesKeepInsertionOrder(t *testing.T) {
	first := entry("Email", day(3))
	second := entry("Phone Call", day(3))

	report, err := Classify(Input{
		History: []Entry{first, second},
		Now:     day(0),
	})
	require.NoError(t, err)

	require.NotNil(t, report.NextDue)
	assert.Equal(t, "Email", report.NextDue.Type)
}

func TestClassifySkipsZeroDates(t *testing.T) {
	report, err := Classify(Input{
		PeriodicityDays: intPtr(7),
		History: []Entry{
			entry("Email", day(-1)),
			{ID: uuid.New(), Type: "Phone Call"}, // missing date
		},
		Now: day(0),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Skipped)
	assert.Len(t, report.LastContacts, 1)
}

func TestClassifyInvalidPeriodicity(t *testing.T) {
	for _, p := range []int{0, -3} {
		_, err := Classify(Input{
			PeriodicityDays: intPtr(p),
			History:         []Entry{entry("Email", day(-1))},
			Now:             day(0),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidPeriodicity)
	}
}

func TestClassifyTimeOfDayIsNotSignificant(t *testing.T) {
	// An entry late tonight and one at midnight are the same calendar day.
	late := Entry{ID: uuid.New(), Type: "Email", Date: day(0).Add(23 * time.Hour)}

	report, err := Classify(Input{
		PeriodicityDays: intPtr(7),
		History:         []Entry{late},
		Now:             day(0).Add(6 * time.Hour),
	})
	require.NoError(t, err)

	require.Len(t, report.LastContacts, 1)
	assert.Equal(t, StatusScheduled, report.Status)
}

func TestSummarize(t *testing.T) {
	reports := []Report{
		{Status: StatusOverdue},
		{Status: StatusOverdue},
		{Status: StatusDueToday},
		{Status: StatusScheduled},
		{Status: StatusUnknown},
	}

	s := Summarize(reports)
	assert.Equal(t, 2, s.Overdue)
	assert.Equal(t, 1, s.DueToday)
}

func TestOverdueDays(t *testing.T) {
	report := Report{
		Status:  StatusOverdue,
		NextDue: &DueItem{Date: day(-4), Synthetic: true},
	}
	assert.Equal(t, 4, OverdueDays(report, day(0)))

	assert.Zero(t, OverdueDays(Report{Status: StatusScheduled}, day(0)))
}

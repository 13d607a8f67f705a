package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomify/models"
)

func testRequest(start, end time.Time, repeat models.RepeatType) models.BookingRequest {
	return models.BookingRequest{
		RoomID:      "r1",
		UserName:    "Hong Gildong",
		Contact:     "010-1234-5678",
		MeetingName: "Team meeting",
		StartTime:   start,
		EndTime:     end,
		Repeat:      repeat,
	}
}

func TestExpandNone(t *testing.T) {
	e := NewExpander(kst)
	start := time.Date(2024, 3, 20, 9, 0, 0, 0, kst)
	end := start.Add(time.Hour)

	got, err := e.Expand(testRequest(start, end, models.RepeatNone))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Start.Equal(start))
	assert.True(t, got[0].End.Equal(end))
}

func TestExpandWeeklyCount(t *testing.T) {
	e := NewExpander(kst)
	start := time.Date(2024, 3, 20, 9, 0, 0, 0, kst)
	req := testRequest(start, start.Add(time.Hour), models.RepeatWeekly)
	req.RepeatCount = 3

	got, err := e.Expand(req)
	require.NoError(t, err)
	require.Len(t, got, 3)

	wantDates := []time.Time{
		time.Date(2024, 3, 20, 9, 0, 0, 0, kst),
		time.Date(2024, 3, 27, 9, 0, 0, 0, kst),
		time.Date(2024, 4, 3, 9, 0, 0, 0, kst),
	}
	for i, iv := range got {
		assert.True(t, iv.Start.Equal(wantDates[i]), "occurrence %d start = %v", i, iv.Start)
		assert.Equal(t, time.Hour, iv.End.Sub(iv.Start), "occurrence %d duration", i)
		if i > 0 {
			assert.Equal(t, 7*24*time.Hour, iv.Start.Sub(got[i-1].Start))
		}
	}
}

func TestExpandMonthlyDayClamping(t *testing.T) {
	e := NewExpander(kst)

	t.Run("leap year", func(t *testing.T) {
		start := time.Date(2024, 1, 31, 15, 30, 0, 0, kst)
		req := testRequest(start, start.Add(90*time.Minute), models.RepeatMonthly)
		req.RepeatCount = 3

		got, err := e.Expand(req)
		require.NoError(t, err)
		require.Len(t, got, 3)

		wantStarts := []time.Time{
			time.Date(2024, 1, 31, 15, 30, 0, 0, kst),
			time.Date(2024, 2, 29, 15, 30, 0, 0, kst),
			// The anchor day is preserved, not the clamped day.
			time.Date(2024, 3, 31, 15, 30, 0, 0, kst),
		}
		for i, iv := range got {
			assert.True(t, iv.Start.Equal(wantStarts[i]), "occurrence %d start = %v", i, iv.Start)
			assert.Equal(t, 90*time.Minute, iv.End.Sub(iv.Start), "occurrence %d duration", i)
		}
	})

	t.Run("non-leap year", func(t *testing.T) {
		start := time.Date(2023, 1, 31, 9, 0, 0, 0, kst)
		req := testRequest(start, start.Add(time.Hour), models.RepeatMonthly)
		req.RepeatCount = 2

		got, err := e.Expand(req)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.True(t, got[1].Start.Equal(time.Date(2023, 2, 28, 9, 0, 0, 0, kst)))
	})
}

func TestExpandUntilBound(t *testing.T) {
	e := NewExpander(kst)
	start := time.Date(2024, 3, 20, 9, 0, 0, 0, kst)

	t.Run("inclusive of final start", func(t *testing.T) {
		until := time.Date(2024, 4, 3, 9, 0, 0, 0, kst)
		req := testRequest(start, start.Add(time.Hour), models.RepeatWeekly)
		req.RepeatUntil = &until

		got, err := e.Expand(req)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.True(t, got[2].Start.Equal(until))
	})

	t.Run("start past bound excluded", func(t *testing.T) {
		until := time.Date(2024, 4, 2, 0, 0, 0, 0, kst)
		req := testRequest(start, start.Add(time.Hour), models.RepeatWeekly)
		req.RepeatUntil = &until

		got, err := e.Expand(req)
		require.NoError(t, err)
		require.Len(t, got, 2)
	})
}

func TestExpandValidation(t *testing.T) {
	e := NewExpander(kst)
	start := time.Date(2024, 3, 20, 9, 0, 0, 0, kst)
	until := start.AddDate(0, 1, 0)
	past := start.AddDate(0, 0, -1)

	tests := []struct {
		name   string
		mutate func(*models.BookingRequest)
	}{
		{"zero duration", func(r *models.BookingRequest) { r.EndTime = r.StartTime }},
		{"negative duration", func(r *models.BookingRequest) { r.EndTime = r.StartTime.Add(-time.Hour) }},
		{"unknown repeat type", func(r *models.BookingRequest) { r.Repeat = "daily"; r.RepeatCount = 2 }},
		{"missing bound", func(r *models.BookingRequest) { r.RepeatCount = 0 }},
		{"negative count", func(r *models.BookingRequest) { r.RepeatCount = -1 }},
		{"both bounds", func(r *models.BookingRequest) { r.RepeatCount = 3; r.RepeatUntil = &until }},
		{"until before start", func(r *models.BookingRequest) { r.RepeatUntil = &past }},
		{"weekly count above cap", func(r *models.BookingRequest) { r.RepeatCount = 53 }},
		{"monthly count above cap", func(r *models.BookingRequest) { r.Repeat = models.RepeatMonthly; r.RepeatCount = 13 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testRequest(start, start.Add(time.Hour), models.RepeatWeekly)
			tt.mutate(&req)

			_, err := e.Expand(req)
			require.Error(t, err)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestExpandCapAtLimits(t *testing.T) {
	e := NewExpander(kst)
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, kst)

	weekly := testRequest(start, start.Add(time.Hour), models.RepeatWeekly)
	weekly.RepeatCount = MaxWeeklyOccurrences
	got, err := e.Expand(weekly)
	require.NoError(t, err)
	assert.Len(t, got, MaxWeeklyOccurrences)

	monthly := testRequest(start, start.Add(time.Hour), models.RepeatMonthly)
	monthly.RepeatCount = MaxMonthlyOccurrences
	got, err = e.Expand(monthly)
	require.NoError(t, err)
	assert.Len(t, got, MaxMonthlyOccurrences)
}

func TestExpandNormalizesToLocation(t *testing.T) {
	e := NewExpander(kst)
	// 00:00 UTC on March 20 is 09:00 KST the same day.
	start := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	req := testRequest(start, start.Add(time.Hour), models.RepeatWeekly)
	req.RepeatCount = 2

	got, err := e.Expand(req)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 9, got[0].Start.Hour())
	assert.Equal(t, 9, got[1].Start.Hour())
}

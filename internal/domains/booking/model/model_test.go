package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"innkeep/internal/domains/booking/model"
)

func date(day int) time.Time {
	return time.Date(2026, time.September, day, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{
			name:     "single night",
			checkIn:  date(1),
			checkOut: date(2),
			want:     1,
		},
		{
			name:     "week long stay",
			checkIn:  date(1),
			checkOut: date(8),
			want:     7,
		},
		{
			name:     "partial day rounds up to a full night",
			checkIn:  date(1),
			checkOut: date(2).Add(6 * time.Hour),
			want:     2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestTotalPrice(t *testing.T) {
	assert.Equal(t, 300.0, model.TotalPrice(date(1), date(4), 100))
	assert.Equal(t, 150.5, model.TotalPrice(date(1), date(2), 150.5))
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"pending to confirmed", model.StatusPending, model.StatusConfirmed, true},
		{"pending to cancelled", model.StatusPending, model.StatusCancelled, true},
		{"confirmed to checked in", model.StatusConfirmed, model.StatusCheckedIn, true},
		{"confirmed to cancelled", model.StatusConfirmed, model.StatusCancelled, true},
		{"checked in to checked out", model.StatusCheckedIn, model.StatusCheckedOut, true},
		{"checked in to cancelled", model.StatusCheckedIn, model.StatusCancelled, true},
		{"pending cannot skip to checked in", model.StatusPending, model.StatusCheckedIn, false},
		{"confirmed cannot skip to checked out", model.StatusConfirmed, model.StatusCheckedOut, false},
		{"checked out is final", model.StatusCheckedOut, model.StatusCancelled, false},
		{"cancelled is final", model.StatusCancelled, model.StatusConfirmed, false},
		{"no backward movement", model.StatusCheckedIn, model.StatusConfirmed, false},
		{"unknown status", "unknown", model.StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.CanTransition(tt.from, tt.to))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, model.IsTerminal(model.StatusCheckedOut))
	assert.True(t, model.IsTerminal(model.StatusCancelled))
	assert.False(t, model.IsTerminal(model.StatusPending))
	assert.False(t, model.IsTerminal(model.StatusConfirmed))
	assert.False(t, model.IsTerminal(model.StatusCheckedIn))
}

func TestIsActive(t *testing.T) {
	assert.True(t, model.IsActive(model.StatusConfirmed))
	assert.True(t, model.IsActive(model.StatusCheckedIn))
	assert.False(t, model.IsActive(model.StatusPending))
	assert.False(t, model.IsActive(model.StatusCheckedOut))
	assert.False(t, model.IsActive(model.StatusCancelled))
}

func TestValidStatus(t *testing.T) {
	for _, status := range []string{
		model.StatusPending,
		model.StatusConfirmed,
		model.StatusCheckedIn,
		model.StatusCheckedOut,
		model.StatusCancelled,
	} {
		assert.True(t, model.ValidStatus(status))
	}

	assert.False(t, model.ValidStatus("unknown"))
	assert.False(t, model.ValidStatus(""))
}

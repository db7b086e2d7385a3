package repository_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"innkeep/internal/domains/booking/model"
	"innkeep/internal/domains/booking/repository"
)

func date(day int) time.Time {
	return time.Date(2026, time.September, day, 0, 0, 0, 0, time.UTC)
}

func TestOverlapFilter(t *testing.T) {
	checkIn := date(10)
	checkOut := date(12)

	t.Run("half open interval comparisons", func(t *testing.T) {
		filter := repository.OverlapFilter("room-1", checkIn, checkOut, "")
		where, args := filter.GetWhereClause()

		// A stay ending on the new arrival day must not collide: strict
		// comparisons on both bounds keep check-out day free for a new
		// check-in.
		assert.Contains(t, where, "bookings.check_in_date < :overlap_until")
		assert.Contains(t, where, "bookings.check_out_date > :overlap_from")
		assert.NotContains(t, where, "check_in_date <=")
		assert.NotContains(t, where, "check_out_date >=")

		assert.Equal(t, checkOut, args["overlap_until"])
		assert.Equal(t, checkIn, args["overlap_from"])
	})

	t.Run("counts only statuses that hold the room", func(t *testing.T) {
		filter := repository.OverlapFilter("room-1", checkIn, checkOut, "")
		where, args := filter.GetWhereClause()

		assert.Contains(t, where, "bookings.status IN (:active_statuses_0, :active_statuses_1)")
		assert.Equal(t, model.StatusConfirmed, args["active_statuses_0"])
		assert.Equal(t, model.StatusCheckedIn, args["active_statuses_1"])
	})

	t.Run("without exclusion", func(t *testing.T) {
		filter := repository.OverlapFilter("room-1", checkIn, checkOut, "")
		where, _ := filter.GetWhereClause()

		assert.NotContains(t, where, "exclude_id")
	})

	t.Run("excludes the booking being rescheduled", func(t *testing.T) {
		filter := repository.OverlapFilter("room-1", checkIn, checkOut, "booking-1")
		where, args := filter.GetWhereClause()

		assert.Contains(t, where, "bookings.id != :exclude_id")
		assert.Equal(t, "booking-1", args["exclude_id"])
	})
}

func TestActiveByRoomFilter(t *testing.T) {
	filter := repository.ActiveByRoomFilter("room-1")
	where, args := filter.GetWhereClause()

	assert.Contains(t, where, "bookings.room_id = :room_id")
	assert.Contains(t, where, "bookings.status IN (:active_statuses_0, :active_statuses_1)")
	assert.Equal(t, "room-1", args["room_id"])
	assert.Equal(t, model.StatusConfirmed, args["active_statuses_0"])
	assert.Equal(t, model.StatusCheckedIn, args["active_statuses_1"])

	// All conditions must hold together.
	assert.Equal(t, 1, strings.Count(where, "AND"))
}

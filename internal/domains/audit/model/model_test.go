package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"innkeep/internal/domains/audit/model"
)

func TestNewLog(t *testing.T) {
	type booking struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}

	t.Run("snapshots both sides of an update", func(t *testing.T) {
		before := booking{ID: "booking-1", Status: "confirmed"}
		after := booking{ID: "booking-1", Status: "checked_in"}

		entry := model.NewLog(model.ActionStatusChange, model.EntityBooking, "booking-1", "reception-user", before, after)

		assert.NotEmpty(t, entry.ID)
		assert.Equal(t, model.ActionStatusChange, entry.Action)
		assert.Equal(t, model.EntityBooking, entry.Entity)
		assert.Equal(t, "booking-1", entry.EntityID)
		assert.Equal(t, "reception-user", entry.Actor)

		var decoded booking

		assert.NoError(t, json.Unmarshal([]byte(entry.Before), &decoded))
		assert.Equal(t, "confirmed", decoded.Status)

		assert.NoError(t, json.Unmarshal([]byte(entry.After), &decoded))
		assert.Equal(t, "checked_in", decoded.Status)
	})

	t.Run("creation has no before image", func(t *testing.T) {
		entry := model.NewLog(model.ActionCreate, model.EntityBooking, "booking-1", "admin-user", nil, booking{ID: "booking-1"})

		assert.Empty(t, entry.Before)
		assert.NotEmpty(t, entry.After)
	})

	t.Run("deletion has no after image", func(t *testing.T) {
		entry := model.NewLog(model.ActionDelete, model.EntityBooking, "booking-1", "admin-user", booking{ID: "booking-1"}, nil)

		assert.NotEmpty(t, entry.Before)
		assert.Empty(t, entry.After)
	})

	t.Run("unmarshalable snapshot is stored empty", func(t *testing.T) {
		entry := model.NewLog(model.ActionUpdate, model.EntityRoom, "room-1", "admin-user", func() {}, nil)

		assert.Empty(t, entry.Before)
	})
}

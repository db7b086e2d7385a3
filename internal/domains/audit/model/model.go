package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	TableName  = "audit_logs"
	EntityName = "audit log"

	FieldID       = "id"
	FieldAction   = "action"
	FieldEntity   = "entity"
	FieldEntityID = "entity_id"
	FieldActor    = "actor"
)

const (
	ActionCreate       = "create"
	ActionUpdate       = "update"
	ActionDelete       = "delete"
	ActionCancel       = "cancel"
	ActionStatusChange = "status_change"
	ActionPayment      = "payment"
)

const (
	EntityBooking = "booking"
	EntityRoom    = "room"
	EntityGuest   = "guest"
)

// Log records one state change. Before and After hold JSON snapshots of the
// entity around the change; Before is empty for creations, After for deletes.
type Log struct {
	ID        string    `db:"id"`
	Action    string    `db:"action"`
	Entity    string    `db:"entity"`
	EntityID  string    `db:"entity_id"`
	Actor     string    `db:"actor"`
	Before    string    `db:"before"`
	After     string    `db:"after"`
	CreatedAt time.Time `json:"created_at"`
}

// NewLog snapshots before and after as JSON. A snapshot that fails to
// marshal is stored empty rather than failing the audited operation.
func NewLog(action, entity, entityID, actor string, before, after any) Log {
	return Log{
		ID:       uuid.NewString(),
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Actor:    actor,
		Before:   snapshot(before),
		After:    snapshot(after),
	}
}

func snapshot(v any) string {
	if v == nil {
		return ""
	}

	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}

	return string(b)
}

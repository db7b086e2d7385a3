package dto

import (
	"innkeep/internal/domains/audit/model"
	"innkeep/shared"
	"innkeep/shared/constant"
	"innkeep/shared/timezone"
)

type LogResponse struct {
	ID        string `json:"id"`
	Action    string `json:"action"`
	Entity    string `json:"entity"`
	EntityID  string `json:"entity_id"`
	Actor     string `json:"actor"`
	Before    string `json:"before,omitempty"`
	After     string `json:"after,omitempty"`
	CreatedAt string `json:"created_at"`
}

func (l *LogResponse) FromModel(m model.Log) {
	l.ID = m.ID
	l.Action = m.Action
	l.Entity = m.Entity
	l.EntityID = m.EntityID
	l.Actor = m.Actor
	l.Before = m.Before
	l.After = m.After
	l.CreatedAt = timezone.Format(m.CreatedAt, constant.DateFormat)
}

type GetLogsResponse struct {
	Logs      []LogResponse `json:"audit_logs"`
	TotalPage int           `json:"total_page"`
	TotalData int           `json:"total_data"`
}

func (r *GetLogsResponse) FromModels(models []model.Log, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Logs = make([]LogResponse, len(models))
	for i, mod := range models {
		r.Logs[i].FromModel(mod)
	}
}

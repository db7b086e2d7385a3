package audit

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"innkeep/infras/otel"
	"innkeep/internal/domains/audit/model"
	"innkeep/internal/domains/audit/service"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/transport/http/response"
)

type Handler struct {
	service service.Audit
	otel    otel.Otel
}

func New(service service.Audit, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/audit-logs", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetAuditLogs)
	})
}

// GetAuditLogs retrieves the audit trail with optional filtering.
// @Summary Get audit logs
// @Description Retrieve the audit trail, filtered by entity, entity id, action or actor.
// @Tags Audit
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param entity query string false "Filter by entity kind"
// @Param entity_id query string false "Filter by entity id"
// @Param action query string false "Filter by action"
// @Param actor query string false "Filter by actor"
// @Success 200 {object} response.Data[dto.GetLogsResponse] "Audit trail"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/audit-logs [get]
// @Security BearerAuth
func (handler *Handler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAuditLogs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	equals := map[string]string{
		model.FieldEntity:   r.URL.Query().Get(model.FieldEntity),
		model.FieldEntityID: r.URL.Query().Get(model.FieldEntityID),
		model.FieldAction:   r.URL.Query().Get(model.FieldAction),
		model.FieldActor:    r.URL.Query().Get(model.FieldActor),
	}

	for field, value := range equals {
		if value == "" {
			continue
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    field,
			Operator: gDto.FilterOperatorEq,
			Value:    value,
			Table:    model.TableName,
		})
	}

	logs, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get audit logs")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Audit logs retrieved successfully")

	response.WithJSON(w, http.StatusOK, logs)
}

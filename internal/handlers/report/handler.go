package report

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"innkeep/infras/otel"
	"innkeep/internal/domains/report/model/dto"
	"innkeep/internal/domains/report/service"
	"innkeep/shared/constant"
	"innkeep/shared/validator"
	"innkeep/transport/http/response"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/occupancy", handler.GetOccupancy)
		routerGroup.Get("/statuses", handler.GetStatusBreakdown)
		routerGroup.Get("/revenue", handler.GetRevenue)
	})
}

// GetOccupancy reports room occupancy for a date.
// @Summary Get occupancy report
// @Description Report how many rooms are occupied on a date.
// @Tags Report
// @Accept json
// @Produce json
// @Param date query string true "Report date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.OccupancyResponse] "Occupancy"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/occupancy [get]
// @Security BearerAuth
func (handler *Handler) GetOccupancy(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOccupancy")
	defer scope.End()

	req := dto.OccupancyRequest{Date: r.URL.Query().Get("date")}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	occupancy, err := handler.service.Occupancy(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get occupancy report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Occupancy report retrieved successfully")

	response.WithJSON(w, http.StatusOK, occupancy)
}

// GetStatusBreakdown reports booking counts per status.
// @Summary Get status breakdown
// @Description Report how many bookings sit in each lifecycle status.
// @Tags Report
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.StatusBreakdownResponse] "Status breakdown"
// @Failure 500 {object} response.Error
// @Router /v1/reports/statuses [get]
// @Security BearerAuth
func (handler *Handler) GetStatusBreakdown(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStatusBreakdown")
	defer scope.End()

	breakdown, err := handler.service.StatusBreakdown(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get status breakdown")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Status breakdown retrieved successfully")

	response.WithJSON(w, http.StatusOK, breakdown)
}

// GetRevenue reports paid revenue over a date range.
// @Summary Get revenue report
// @Description Sum the paid bookings whose stay intersects the range.
// @Tags Report
// @Accept json
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.RevenueResponse] "Revenue"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/revenue [get]
// @Security BearerAuth
func (handler *Handler) GetRevenue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRevenue")
	defer scope.End()

	req := dto.RevenueRequest{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	revenue, err := handler.service.Revenue(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get revenue report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Revenue report retrieved successfully")

	response.WithJSON(w, http.StatusOK, revenue)
}

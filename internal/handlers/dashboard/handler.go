package dashboard

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/dashboard/model"
	"hotel/internal/domains/dashboard/service"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const paramMonths = "months"

type Handler struct {
	service service.Dashboard
	otel    otel.Otel
}

func New(service service.Dashboard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Get("/dashboard", handler.GetStats)
	router.Get("/analytics", handler.GetAnalytics)
}

// GetStats returns the dashboard cards and the latest bookings.
// @Summary Dashboard statistics
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Data[dto.StatsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/admin/dashboard [get]
// @Security BearerAuth
func (handler *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	stats, err := handler.service.Stats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard stats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, stats)
}

// GetAnalytics returns monthly revenue, occupancy and booking status charts.
// @Summary Analytics
// @Tags Dashboard
// @Produce json
// @Param months query integer false "Months to include (default 12, max 24)"
// @Success 200 {object} response.Data[dto.AnalyticsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/analytics [get]
// @Security BearerAuth
func (handler *Handler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAnalytics")
	defer scope.End()

	months := model.DefaultMonths

	if value := r.URL.Query().Get(paramMonths); value != "" {
		parsed, err := shared.ConvertStringToInt(value)
		if err != nil {
			err = failure.BadRequestFromString("months must be a whole number")
			scope.TraceError(err)

			response.WithError(w, err)

			return
		}

		months = parsed
	}

	analytics, err := handler.service.Analytics(ctx, months)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get analytics")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, analytics)
}

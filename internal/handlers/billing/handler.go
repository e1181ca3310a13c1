package billing

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/billing/service"
	"hotel/shared/constant"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const paramBookingID = "booking_id"

type Handler struct {
	service service.Billing
	otel    otel.Otel
}

func New(service service.Billing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/billing", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBillableBookings)
		routerGroup.Get("/{booking_id}", handler.GetInvoice)
		routerGroup.Post("/{booking_id}/paid", handler.MarkPaid)
	})
}

// GetBillableBookings lists bookings that can be invoiced.
// @Summary Billable bookings
// @Tags Billing
// @Produce json
// @Success 200 {object} response.Data[dto.GetBillableBookingsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/admin/billing [get]
// @Security BearerAuth
func (handler *Handler) GetBillableBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBillableBookings")
	defer scope.End()

	bookings, err := handler.service.Bookings(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get billable bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetInvoice computes the invoice of a booking.
// @Summary Booking invoice
// @Description Nights x price subtotal plus tax.
// @Tags Billing
// @Produce json
// @Param booking_id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.InvoiceResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/billing/{booking_id} [get]
// @Security BearerAuth
func (handler *Handler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInvoice")
	defer scope.End()

	invoice, err := handler.service.Invoice(ctx, chi.URLParam(r, paramBookingID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get invoice")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, invoice)
}

// MarkPaid stores the invoice total on the booking and marks it Paid.
// @Summary Mark booking as paid
// @Tags Billing
// @Produce json
// @Param booking_id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.InvoiceResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/billing/{booking_id}/paid [post]
// @Security BearerAuth
func (handler *Handler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkPaid")
	defer scope.End()

	bookingID := chi.URLParam(r, paramBookingID)

	invoice, err := handler.service.MarkPaid(ctx, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark booking as paid")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking " + bookingID + " marked paid by user " + user)

	response.WithJSON(w, http.StatusOK, invoice)
}

package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/billing/model"
	"hotel/internal/domains/billing/model/dto"
	bookingModel "hotel/internal/domains/booking/model"
	bookingRepo "hotel/internal/domains/booking/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Billing interface {
	Bookings(ctx context.Context) (dto.GetBillableBookingsResponse, error)
	Invoice(ctx context.Context, bookingID string) (dto.InvoiceResponse, error)
	MarkPaid(ctx context.Context, bookingID string) (dto.InvoiceResponse, error)
}

type serviceImpl struct {
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(bookingRepo bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Billing {
	return &serviceImpl{
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Bookings(ctx context.Context) (res dto.GetBillableBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Billing.Bookings")
	defer scope.End()
	defer scope.TraceIfError(&err)

	params := gDto.QueryParams{
		SortBy:  bookingModel.TableName + "." + constant.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}

	models, err := s.bookingRepo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get billable bookings")

		return res, fmt.Errorf("failed to get billable bookings: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) Invoice(ctx context.Context, bookingID string) (res dto.InvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Billing.Invoice")
	defer scope.End()
	defer scope.TraceIfError(&err)

	invoice, err := s.invoice(ctx, bookingID)
	if err != nil {
		return res, err
	}

	res.FromModel(invoice)

	return res, nil
}

// MarkPaid recomputes the invoice and stores its grand total with payment Paid, on every call.
func (s *serviceImpl) MarkPaid(ctx context.Context, bookingID string) (res dto.InvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Billing.MarkPaid")
	defer scope.End()
	defer scope.TraceIfError(&err)

	invoice, err := s.invoice(ctx, bookingID)
	if err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	fields := map[string]any{
		bookingModel.FieldPaymentStatus: string(bookingModel.PaymentPaid),
		bookingModel.FieldTotalPrice:    invoice.GrandTotal,
		constant.FieldModifiedAt:        timezone.Now(),
		constant.FieldModifiedBy:        user,
	}

	err = s.bookingRepo.Update(ctx, fields, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to mark booking as paid")

		return res, fmt.Errorf("failed to mark booking as paid: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, bookingModel.CacheKeyPrefix)
	}()

	invoice.Booking.PaymentStatus = bookingModel.PaymentPaid
	invoice.Booking.TotalPrice = invoice.GrandTotal

	res.FromModel(invoice)

	return res, nil
}

func (s *serviceImpl) invoice(ctx context.Context, bookingID string) (model.Invoice, error) {
	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking for invoice")

		return model.Invoice{}, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return model.Invoice{}, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	return model.NewInvoice(booking, s.cfg.Billing.TaxRate), nil
}

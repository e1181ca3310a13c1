package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"errors"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/repository"
	customerModel "hotel/internal/domains/customer/model"
	customerRepo "hotel/internal/domains/customer/repository"
	"hotel/internal/domains/room/event"
	roomModel "hotel/internal/domains/room/model"
	roomRepo "hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	gRepo "hotel/shared/repository"
	"hotel/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = model.CacheKeyPrefix + "get"
	cacheGetAllBooking = model.CacheKeyPrefix + "gets"
	cacheCountBooking  = model.CacheKeyPrefix + "count"
	cacheStatusBooking = model.CacheKeyPrefix + "status"
)

type Booking interface {
	CreateAdmin(ctx context.Context, req dto.CreateBookingRequest) error
	CreatePublic(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingConfirmation, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Confirmation(ctx context.Context, id string) (dto.BookingConfirmation, error)
	CountByStatus(ctx context.Context) (dto.StatusCountsResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) error
	UpdatePayment(ctx context.Context, req dto.UpdatePaymentRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.Booking
	customerRepo customerRepo.Customer
	roomRepo     roomRepo.Room
	transactor   gRepo.Transactor
	publisher    event.Publisher
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	customerRepo customerRepo.Customer,
	roomRepo roomRepo.Room,
	transactor gRepo.Transactor,
	publisher event.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		customerRepo: customerRepo,
		roomRepo:     roomRepo,
		transactor:   transactor,
		publisher:    publisher,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// CreateAdmin records a confirmed booking and occupies the room.
func (s *serviceImpl) CreateAdmin(ctx context.Context, req dto.CreateBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.CreateAdmin")
	defer scope.End()
	defer scope.TraceIfError(&err)

	occupied := roomModel.StatusOccupied

	_, _, _, err = s.create(ctx, req, model.StatusConfirmed, &occupied)

	return err
}

// CreatePublic records a pending booking for an available room. The room is left untouched.
func (s *serviceImpl) CreatePublic(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingConfirmation, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.CreatePublic")
	defer scope.End()
	defer scope.TraceIfError(&err)

	booking, customer, room, err := s.create(ctx, req, model.StatusPending, nil)
	if err != nil {
		return res, err
	}

	res.FromModel(model.BookingDetail{
		Booking:      booking,
		CustomerName: customer.Name,
		RoomName:     room.Name,
	})

	return res, nil
}

func (s *serviceImpl) create(
	ctx context.Context,
	req dto.CreateBookingRequest,
	status model.Status,
	roomStatus *roomModel.Status,
) (booking model.Booking, customer customerModel.Customer, room roomModel.Room, err error) {
	checkIn, checkOut, err := req.Dates()
	if err != nil {
		return booking, customer, room, failure.BadRequestFromString("dates must use the YYYY-MM-DD format") //nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return booking, customer, room, failure.BadRequestFromString("check-out must be after check-in") //nolint:wrapcheck
	}

	roomFilter := shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName)

	room, err = s.roomRepo.Get(ctx, roomFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return booking, customer, room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return booking, customer, room, failure.NotFound("room not found") //nolint:wrapcheck
	}

	if status == model.StatusPending && room.Status != roomModel.StatusAvailable {
		return booking, customer, room, failure.BadRequestFromString("room is not available") //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	customer = req.ToCustomer(user)
	booking = req.ToModel(user, customer.ID, checkIn, checkOut, room.Price, status)

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		if err := s.customerRepo.InsertTx(ctx, tx, customer); err != nil {
			return fmt.Errorf("failed to create customer: %w", err)
		}

		if err := s.repo.InsertTx(ctx, tx, booking); err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		if roomStatus == nil {
			return nil
		}

		return s.setRoomStatus(ctx, tx, room.ID, *roomStatus, user)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return booking, customer, room, err
	}

	if roomStatus != nil {
		s.publish(ctx, event.NewRoomChanged(event.ActionStatusChanged, room.ID, *roomStatus))
	}

	s.invalidate(ctx, constant.Empty, roomStatus != nil, true)

	return booking, customer, room, nil
}

func (s *serviceImpl) setRoomStatus(ctx context.Context, tx *sqlx.Tx, roomID string, status roomModel.Status, user string) error {
	fields := map[string]any{
		roomModel.FieldStatus:    string(status),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.roomRepo.UpdateTx(ctx, tx, fields, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName)); err != nil {
		return fmt.Errorf("failed to update room status: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	req.Normalize(model.TableName, constant.DefaultValueSortBy, constant.DefaultValueSortDir,
		constant.FieldCreatedAt, model.FieldCheckIn, model.FieldCheckOut, model.FieldTotalPrice, model.FieldStatus)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.count(ctx, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, filter gDto.FilterGroup) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, gDto.QueryParams{}, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Confirmation(ctx context.Context, id string) (res dto.BookingConfirmation, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Confirmation")
	defer scope.End()
	defer scope.TraceIfError(&err)

	booking, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) CountByStatus(ctx context.Context) (res dto.StatusCountsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.CountByStatus")
	defer scope.End()
	defer scope.TraceIfError(&err)

	err = s.cache.Get(ctx, cacheStatusBooking, &res)
	if err == nil {
		return res, nil
	}

	rows, err := s.repo.CountByStatus(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings by status")

		return res, fmt.Errorf("failed to count bookings by status: %w", err)
	}

	res.FromModels(rows)

	s.save(ctx, cacheStatusBooking, res)

	return res, nil
}

// UpdateStatus moves a booking along its lifecycle and applies the matching room status in the same transaction.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(&err)

	next := model.Status(req.Status)
	if !next.IsValid() {
		return failure.BadRequestFromString("invalid booking status") //nolint:wrapcheck
	}

	booking, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if !booking.Status.CanTransitionTo(next) {
		return failure.BadRequestFromString(fmt.Sprintf("invalid status transition from %s to %s", booking.Status, next)) //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	roomStatus, changesRoom := next.RoomStatus()

	// Only moves the booking if nobody changed its status since it was read.
	filter := shared.FilterByID(id, model.FieldID, model.TableName)
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldStatus,
		ArgName:  "current_status",
		Value:    string(booking.Status),
		Operator: gDto.FilterOperatorEq,
		Table:    model.TableName,
	})

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		if err := s.repo.UpdateTx(ctx, tx, shared.TransformFields(req, user), filter); err != nil {
			return fmt.Errorf("failed to update booking status: %w", err)
		}

		if !changesRoom {
			return nil
		}

		return s.setRoomStatus(ctx, tx, booking.RoomID, roomStatus, user)
	})
	if errors.Is(err, gRepo.ErrNoRows) {
		return failure.Conflict("booking status changed, reload and retry") //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return err
	}

	if changesRoom {
		s.publish(ctx, event.NewRoomChanged(event.ActionStatusChanged, booking.RoomID, roomStatus))
	}

	s.invalidate(ctx, id, changesRoom, false)

	return nil
}

func (s *serviceImpl) UpdatePayment(ctx context.Context, req dto.UpdatePaymentRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.UpdatePayment")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if !model.PaymentStatus(req.PaymentStatus).IsValid() {
		return failure.BadRequestFromString("invalid payment status") //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if err = s.mustExist(ctx, filter); err != nil {
		return err
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update payment status")

		return fmt.Errorf("failed to update payment status: %w", err)
	}

	s.invalidate(ctx, id, false, false)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if err = s.mustExist(ctx, filter); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.invalidate(ctx, id, false, false)

	return nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.BookingDetail, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) mustExist(ctx context.Context, filter gDto.FilterGroup) error {
	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return failure.NotFound("booking not found") //nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) publish(ctx context.Context, evt event.RoomChanged) {
	if err := s.publisher.Publish(ctx, evt); err != nil {
		log.Error().Err(err).Str("roomID", evt.RoomID).Msg("failed to publish room event")
	}
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save booking cache")
		}
	}()
}

// invalidate drops booking caches, and room or customer caches when those rows changed too.
func (s *serviceImpl) invalidate(ctx context.Context, id string, rooms, customers bool) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete booking cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheStatusBooking)

		if rooms {
			shared.InvalidateCaches(c, s.cache, roomModel.CacheKeyPrefix)
		}

		if customers {
			shared.InvalidateCaches(c, s.cache, customerModel.CacheKeyPrefix)
		}
	}()
}

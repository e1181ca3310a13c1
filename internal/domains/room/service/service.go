package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Room=MockRoomService

import (
	"context"
	"fmt"
	"mime/multipart"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/s3"
	bookingModel "hotel/internal/domains/booking/model"
	"hotel/internal/domains/room/event"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	gRepo "hotel/shared/repository"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom         = model.CacheKeyPrefix + "get"
	cacheGetAllRoom      = model.CacheKeyPrefix + "gets"
	cacheCountRoom       = model.CacheKeyPrefix + "count"
	cacheAvailableRoom   = model.CacheKeyPrefix + "available"
	cacheMaintenanceRoom = model.CacheKeyPrefix + "maintenance"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	Available(ctx context.Context) (dto.GetAvailableRoomsResponse, error)
	Maintenance(ctx context.Context) (dto.MaintenanceResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, id string) error
	UpdateStatus(ctx context.Context, req dto.UpdateRoomStatusRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Room
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	s3        s3.S3
	publisher event.Publisher
}

func New(repo repository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3, publisher event.Publisher) Room {
	return &serviceImpl{
		repo:      repo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		s3:        s3,
		publisher: publisher,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Room.Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	image, err := s.uploadImage(ctx, req.ImageFile, req.Image)
	if err != nil {
		return err
	}

	room := req.ToModel(user, image.URL)

	if err = s.repo.Insert(ctx, room); err != nil {
		log.Error().Err(err).Msg("failed to create room")
		s.removeImage(ctx, image.Key)

		return fmt.Errorf("failed to create room: %w", err)
	}

	s.publish(ctx, event.NewRoomChanged(event.ActionCreated, room.ID, room.Status))
	s.invalidate(ctx, constant.Empty)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Room.GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Room.Count")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRoom, gDto.QueryParams{}, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Room.Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKey(cacheGetRoom, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") //nolint:wrapcheck
	}

	res.FromModel(room)

	s.save(ctx, cacheKey, res)

	return res, nil
}

// Available lists rooms a guest can book, ordered by name.
func (s *serviceImpl) Available(ctx context.Context) (res dto.GetAvailableRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Room.Available")
	defer scope.End()
	defer scope.TraceIfError(&err)

	err = s.cache.Get(ctx, cacheAvailableRoom, &res)
	if err == nil {
		return res, nil
	}

	models, err := s.repo.GetAll(ctx,
		gDto.QueryParams{SortBy: model.TableName + "." + model.FieldName, SortDir: gDto.SortDirAsc},
		gDto.FilterGroup{Filters: []any{model.FilterByStatus(model.StatusAvailable)}},
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get available rooms")

		return res, fmt.Errorf("failed to get available rooms: %w", err)
	}

	res.FromModels(models)

	s.save(ctx, cacheAvailableRoom, res)

	return res, nil
}

func (s *serviceImpl) Maintenance(ctx context.Context) (res dto.MaintenanceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Room.Maintenance")
	defer scope.End()
	defer scope.TraceIfError(&err)

	err = s.cache.Get(ctx, cacheMaintenanceRoom, &res)
	if err == nil {
		return res, nil
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Filters: []any{model.FilterByStatus(model.StatusMaintenance, model.StatusCleaning, model.StatusAvailable)},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get maintenance rooms")

		return res, fmt.Errorf("failed to get maintenance rooms: %w", err)
	}

	res.FromModels(models)

	s.save(ctx, cacheMaintenanceRoom, res)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Room.Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("room not found") //nolint:wrapcheck
	}

	image, err := s.uploadImage(ctx, req.ImageFile, req.Image)
	if err != nil {
		return err
	}

	fields := shared.TransformFields(req, user)
	if image.URL != constant.Empty {
		fields[model.FieldImage] = image.URL
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update room")
		s.removeImage(ctx, image.Key)

		return fmt.Errorf("failed to update room: %w", err)
	}

	if image.URL != constant.Empty && current.Image != constant.Empty {
		s.removeImage(ctx, s.s3.KeyFromURL(current.Image))
	}

	status := current.Status
	if req.Status != constant.Empty {
		status = model.Status(req.Status)
	}

	s.publish(ctx, event.NewRoomChanged(event.ActionUpdated, id, status))
	s.invalidate(ctx, id)

	return nil
}

// UpdateStatus sets the room status directly, regardless of bookings.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateRoomStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Room.UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(&err)

	status := model.Status(req.Status)
	if !status.IsValid() {
		return failure.BadRequestFromString("invalid room status") //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exist {
		return failure.NotFound("room not found") //nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update room status")

		return fmt.Errorf("failed to update room status: %w", err)
	}

	s.publish(ctx, event.NewRoomChanged(event.ActionStatusChanged, id, status))
	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Room.Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("room not found") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete room")

		if gRepo.IsForeignKeyViolation(err) {
			return failure.Conflict("room still has bookings") //nolint:wrapcheck
		}

		return fmt.Errorf("failed to delete room: %w", err)
	}

	if current.Image != constant.Empty {
		s.removeImage(ctx, s.s3.KeyFromURL(current.Image))
	}

	s.publish(ctx, event.NewRoomChanged(event.ActionDeleted, id, current.Status))
	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) uploadImage(ctx context.Context, file multipart.File, header *multipart.FileHeader) (s3.Object, error) {
	if header == nil {
		return s3.Object{}, nil
	}

	image, err := s.s3.Upload(ctx, model.EntityName, file, header)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload room image")

		return s3.Object{}, fmt.Errorf("failed to upload image: %w", err)
	}

	return image, nil
}

func (s *serviceImpl) removeImage(ctx context.Context, key string) {
	if key == constant.Empty {
		return
	}

	if err := s.s3.Delete(ctx, key); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete room image")
	}
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
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save room cache")
		}
	}()
}

// invalidate drops every room cache. Single room entries are keyed by id. Changing an existing
// room also drops booking caches, which embed the room name and status.
func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete room cache")
			}

			shared.InvalidateCaches(c, s.cache, bookingModel.CacheKeyPrefix)
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
		shared.InvalidateCaches(c, s.cache, cacheAvailableRoom)
		shared.InvalidateCaches(c, s.cache, cacheMaintenanceRoom)
	}()
}

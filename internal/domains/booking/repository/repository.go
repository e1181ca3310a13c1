package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/booking/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/logger"
	gRepo "hotel/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup) (model.BookingDetail, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.BookingDetail, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	CountByStatus(ctx context.Context) ([]model.StatusCount, error)
}

// repositoryImpl writes plain bookings and reads them joined with customer and room.
type repositoryImpl struct {
	writer gRepo.Repository[model.Booking]
	reader gRepo.Repository[model.BookingDetail]
	db     *postgres.Connection
	otel   otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		writer: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		reader: gRepo.NewRepository[model.BookingDetail](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:     db,
		otel:   otel,
	}
}

func (r *repositoryImpl) InsertTx(ctx context.Context, sqltx *sqlx.Tx, booking model.Booking) error {
	return r.writer.InsertTx(ctx, sqltx, booking) //nolint:wrapcheck
}

func (r *repositoryImpl) Get(ctx context.Context, filter gDto.FilterGroup) (model.BookingDetail, error) {
	return r.reader.Get(ctx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.BookingDetail, error) {
	return r.reader.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) Count(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return r.reader.Count(ctx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error) {
	return r.writer.Exist(ctx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error {
	return r.writer.Update(ctx, req, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error {
	return r.writer.UpdateTx(ctx, sqltx, req, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) Delete(ctx context.Context, filter gDto.FilterGroup) error {
	return r.writer.Delete(ctx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) CountByStatus(ctx context.Context) ([]model.StatusCount, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CountByStatus")
	defer scope.End()

	query := fmt.Sprintf("SELECT %s, COUNT(%s) AS total FROM %s GROUP BY %s", model.FieldStatus, model.FieldID, model.TableName, model.FieldStatus)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rows []model.StatusCount

	if err := r.db.Read.SelectContext(ctx, &rows, query); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to count bookings by status: %w", err)
	}

	return rows, nil
}

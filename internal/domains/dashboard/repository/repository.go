package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	bookingModel "hotel/internal/domains/booking/model"
	customerModel "hotel/internal/domains/customer/model"
	"hotel/internal/domains/dashboard/model"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared/constant"
	"hotel/shared/logger"
)

// Dashboard reads aggregates across rooms, customers and bookings.
type Dashboard interface {
	Totals(ctx context.Context) (model.Totals, error)
	// Monthly buckets bookings by calendar month in since's location.
	Monthly(ctx context.Context, since time.Time) ([]model.MonthlyPoint, error)
	Occupancy(ctx context.Context) ([]model.RoomStatusCount, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Dashboard {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (r *repositoryImpl) Totals(ctx context.Context) (res model.Totals, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".dashboard.Totals")
	defer scope.End()

	query := fmt.Sprintf(`SELECT
		(SELECT COUNT(id) FROM %[1]s) AS total_rooms,
		(SELECT COUNT(id) FROM %[1]s WHERE status = $1) AS available_rooms,
		(SELECT COUNT(id) FROM %[1]s WHERE status = $2) AS occupied_rooms,
		(SELECT COUNT(id) FROM %[2]s) AS total_customers,
		(SELECT COUNT(id) FROM %[3]s) AS total_bookings,
		(SELECT COALESCE(SUM(total_price), 0) FROM %[3]s) AS revenue`,
		roomModel.TableName, customerModel.TableName, bookingModel.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = r.db.Read.GetContext(ctx, &res, query, string(roomModel.StatusAvailable), string(roomModel.StatusOccupied))
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return res, fmt.Errorf("failed to get dashboard totals: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Monthly(ctx context.Context, since time.Time) ([]model.MonthlyPoint, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".dashboard.Monthly")
	defer scope.End()

	query := monthlyQuery()
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rows []model.MonthlyPoint

	if err := r.db.Read.SelectContext(ctx, &rows, query, since, since.Location().String()); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get monthly analytics: %w", err)
	}

	return rows, nil
}

// monthlyQuery truncates created_at in the zone passed as $2 so month keys match the
// ones the service builds in the application timezone.
func monthlyQuery() string {
	return fmt.Sprintf(`SELECT TO_CHAR(DATE_TRUNC('month', created_at AT TIME ZONE $2), 'YYYY-MM') AS month,
		COALESCE(SUM(total_price), 0) AS revenue, COUNT(id) AS bookings
		FROM %s WHERE created_at >= $1 GROUP BY 1 ORDER BY 1`, bookingModel.TableName)
}

func (r *repositoryImpl) Occupancy(ctx context.Context) ([]model.RoomStatusCount, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".dashboard.Occupancy")
	defer scope.End()

	query := fmt.Sprintf("SELECT status, COUNT(id) AS total FROM %s GROUP BY status", roomModel.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rows []model.RoomStatusCount

	if err := r.db.Read.SelectContext(ctx, &rows, query); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get room occupancy: %w", err)
	}

	return rows, nil
}

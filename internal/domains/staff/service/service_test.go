package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/otel/mocks"
	staffMocks "hotel/internal/domains/staff/mocks"
	"hotel/internal/domains/staff/model"
	"hotel/internal/domains/staff/model/dto"
	"hotel/internal/domains/staff/service"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
)

func setup(t *testing.T) (*staffMocks.MockStaff, *cacheMocks.MockRedisCache, service.Staff) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := staffMocks.NewMockStaff(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return mockRepo, mockCache, service.New(mockRepo, cfg, mockCache, mocks.NewOtel())
}

func TestStaffService_Create(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *staffMocks.MockStaff)
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func(repo *staffMocks.MockStaff) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, staff model.Staff) error {
						assert.NotEmpty(t, staff.ID)
						assert.Equal(t, "Housekeeping", staff.Role)
						assert.Equal(t, "admin-1", staff.CreatedBy)

						return nil
					})
			},
		},
		{
			name: "repository error",
			setupMock: func(repo *staffMocks.MockStaff) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, svc := setup(t)
			tt.setupMock(repo)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
			err := svc.Create(ctx, dto.CreateStaffRequest{Name: "Grace", Role: "Housekeeping"})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStaffService_GetAll(t *testing.T) {
	repo, cache, svc := setup(t)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(11, nil)
	repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Staff, error) {
			assert.Equal(t, "staff.created_at", params.SortBy)

			return []model.Staff{{ID: "s1", Name: "Grace", Role: "Manager"}}, nil
		})

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 11, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Equal(t, "Manager", res.Staff[0].Role)
}

func TestStaffService_Get(t *testing.T) {
	repo, cache, svc := setup(t)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Staff{}, nil)

	_, err := svc.Get(context.Background(), "missing")

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestStaffService_Update(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *staffMocks.MockStaff)
		wantCode  int
	}{
		{
			name: "updates provided fields only",
			setupMock: func(repo *staffMocks.MockStaff) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, "Front Desk", fields[model.FieldRole])
						assert.NotContains(t, fields, model.FieldName)

						return nil
					})
			},
		},
		{
			name: "not found",
			setupMock: func(repo *staffMocks.MockStaff) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, svc := setup(t)
			tt.setupMock(repo)

			err := svc.Update(context.Background(), dto.UpdateStaffRequest{Role: "Front Desk"}, "s1")

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestStaffService_Delete(t *testing.T) {
	repo, _, svc := setup(t)

	repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("database error"))

	err := svc.Delete(context.Background(), "s1")

	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}

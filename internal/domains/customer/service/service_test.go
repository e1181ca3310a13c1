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
	customerMocks "hotel/internal/domains/customer/mocks"
	"hotel/internal/domains/customer/model"
	"hotel/internal/domains/customer/model/dto"
	"hotel/internal/domains/customer/service"
	cacheMocks "hotel/shared/cache/mocks"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
)

func setup(t *testing.T) (*customerMocks.MockCustomer, *cacheMocks.MockRedisCache, service.Customer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := customerMocks.NewMockCustomer(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return mockRepo, mockCache, service.New(mockRepo, cfg, mockCache, mocks.NewOtel())
}

func TestCustomerService_GetAll(t *testing.T) {
	tests := []struct {
		name       string
		params     gDto.QueryParams
		setupMock  func(repo *customerMocks.MockCustomer, cache *cacheMocks.MockRedisCache)
		wantErr    bool
		wantSortBy string
	}{
		{
			name:   "defaults to newest first",
			params: gDto.QueryParams{Page: 1, Limit: 10},
			setupMock: func(repo *customerMocks.MockCustomer, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
				repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Customer, error) {
						assert.Equal(t, "customers.created_at", params.SortBy)
						assert.Equal(t, gDto.SortDirDesc, params.SortDir)

						return []model.Customer{{ID: "c1", Name: "Ada"}}, nil
					})
			},
		},
		{
			name:   "unknown sort column falls back",
			params: gDto.QueryParams{Page: 1, Limit: 10, SortBy: "password", SortDir: gDto.SortDirAsc},
			setupMock: func(repo *customerMocks.MockCustomer, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
				repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Customer, error) {
						assert.Equal(t, "customers.created_at", params.SortBy)
						assert.Equal(t, gDto.SortDirAsc, params.SortDir)

						return nil, nil
					})
			},
		},
		{
			name:   "count error",
			params: gDto.QueryParams{Page: 1, Limit: 10},
			setupMock: func(repo *customerMocks.MockCustomer, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
				repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, cache, svc := setup(t)
			tt.setupMock(repo, cache)

			query := dto.SearchQuery{Search: "ada"}
			_, err := svc.GetAll(context.Background(), tt.params, query.ToFilter())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSearchQuery_ToFilter(t *testing.T) {
	empty := dto.SearchQuery{}
	emptyFilter := empty.ToFilter()
	where, _ := emptyFilter.GetWhereClause()
	assert.Empty(t, where)

	query := dto.SearchQuery{Search: "ada"}
	filter := query.ToFilter()
	where, args := filter.GetWhereClause()
	assert.Contains(t, where, "LOWER(customers.name) LIKE LOWER(:search_name)")
	assert.Contains(t, where, " OR ")
	assert.Equal(t, "%ada%", args["search_email"])
}

func TestCustomerService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *customerMocks.MockCustomer, cache *cacheMocks.MockRedisCache)
		wantCode  int
	}{
		{
			name: "found",
			setupMock: func(repo *customerMocks.MockCustomer, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), "customer:get:c1", gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Customer{ID: "c1", Name: "Ada"}, nil)
			},
		},
		{
			name: "not found",
			setupMock: func(repo *customerMocks.MockCustomer, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Customer{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, cache, svc := setup(t)
			tt.setupMock(repo, cache)

			res, err := svc.Get(context.Background(), "c1")

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "Ada", res.Name)
		})
	}
}

func TestCustomerService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *customerMocks.MockCustomer)
		wantCode  int
	}{
		{
			name: "deletes",
			setupMock: func(repo *customerMocks.MockCustomer) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "not found",
			setupMock: func(repo *customerMocks.MockCustomer) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "delete error",
			setupMock: func(repo *customerMocks.MockCustomer) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, svc := setup(t)
			tt.setupMock(repo)

			err := svc.Delete(context.Background(), "c1")

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

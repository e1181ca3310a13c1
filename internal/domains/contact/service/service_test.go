package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/otel/mocks"
	contactMocks "hotel/internal/domains/contact/mocks"
	"hotel/internal/domains/contact/model"
	"hotel/internal/domains/contact/model/dto"
	"hotel/internal/domains/contact/service"
	cacheMocks "hotel/shared/cache/mocks"
	gDto "hotel/shared/dto"
)

func setup(t *testing.T) (*contactMocks.MockContact, *cacheMocks.MockRedisCache, service.Contact) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := contactMocks.NewMockContact(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return repo, cache, service.New(repo, &config.Config{}, cache, mocks.NewOtel())
}

func TestContactService_Create(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *contactMocks.MockContact)
		wantErr   bool
	}{
		{
			name: "stores the message",
			setupMock: func(repo *contactMocks.MockContact) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, msg model.Message) error {
						assert.NotEmpty(t, msg.ID)
						assert.Equal(t, "Late checkout", msg.Subject)
						assert.False(t, msg.CreatedAt.IsZero())

						return nil
					})
			},
		},
		{
			name: "repository error",
			setupMock: func(repo *contactMocks.MockContact) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, svc := setup(t)
			tt.setupMock(repo)

			err := svc.Create(context.Background(), dto.CreateMessageRequest{
				Name: "Ana", Email: "ana@example.com", Subject: "Late checkout", Message: "Is 2pm possible?",
			})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestContactService_GetAll(t *testing.T) {
	repo, cache, svc := setup(t)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Message, error) {
			assert.Equal(t, "contact_messages.created_at", params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)

			return []model.Message{{ID: "m1", Name: "Ana"}}, nil
		})

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10, SortBy: "email"})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Equal(t, "Ana", res.Messages[0].Name)
}

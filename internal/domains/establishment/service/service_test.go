package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"courtside/config"
	"courtside/infras/otel/mocks"
	establishmentMocks "courtside/internal/domains/establishment/mocks"
	"courtside/internal/domains/establishment/model"
	"courtside/internal/domains/establishment/service"
	cacheMocks "courtside/shared/cache/mocks"
	"courtside/shared/constant"
)

func newEstablishmentService(ctrl *gomock.Controller) (service.Establishment, *establishmentMocks.MockEstablishment, *cacheMocks.MockRedisCache) {
	repo := establishmentMocks.NewMockEstablishment(ctrl)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(repo, cfg, redisCache, mocks.NewOtel())

	return svc, repo, redisCache
}

func TestEstablishmentService_Policy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newEstablishmentService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "success",
			setupMock: func() {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Establishment{
						ID:                    "est-1",
						CancellationPolicy:    constant.CancellationPolicyPartialRefund,
						RefundPercentage:      50,
						MinNoticeHours:        24,
						RecurringRefundPolicy: constant.RecurringRefundPolicyCredit,
					}, nil)
			},
			wantErr: false,
		},
		{
			name: "not found",
			setupMock: func() {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Establishment{}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			setupMock: func() {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Establishment{}, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			test.setupMock()

			res, err := svc.Policy(context.Background(), "est-1")

			if test.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, constant.CancellationPolicyPartialRefund, res.CancellationPolicy)
			assert.Equal(t, constant.RecurringRefundPolicyCredit, res.RecurringRefundPolicy)
		})
	}
}

func TestEstablishmentService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, redisCache := newEstablishmentService(ctrl)

	t.Run("cache miss loads from the repository", func(t *testing.T) {
		redisCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Establishment{ID: "est-1", Name: "Arena Senayan"}, nil)
		redisCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Get(context.Background(), "est-1")

		assert.NoError(t, err)
		assert.Equal(t, "Arena Senayan", res.Name)
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		redisCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := svc.Get(context.Background(), "est-1")

		assert.NoError(t, err)
	})
}

package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"courtside/config"
	"courtside/infras/otel/mocks"
	s3Mocks "courtside/infras/s3/mocks"
	resourceMocks "courtside/internal/domains/resource/mocks"
	"courtside/internal/domains/resource/model"
	"courtside/internal/domains/resource/model/dto"
	"courtside/internal/domains/resource/service"
	cacheMocks "courtside/shared/cache/mocks"
	"courtside/shared/failure"
)

type resourceMockSet struct {
	repo  *resourceMocks.MockResource
	cache *cacheMocks.MockRedisCache
	s3    *s3Mocks.MockS3
}

func newResourceService(ctrl *gomock.Controller) (service.Resource, resourceMockSet) {
	set := resourceMockSet{
		repo:  resourceMocks.NewMockResource(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		s3:    s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "courtside-media"

	svc := service.New(set.repo, cfg, set.cache, mocks.NewOtel(), set.s3)

	return svc, set
}

func TestResourceService_GetModel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newResourceService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "success",
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Resource{ID: "court-1", Name: "Court 1"}, nil)
			},
			wantErr: false,
		},
		{
			name: "not found",
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Resource{}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Resource{}, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			test.setupMock()

			res, err := svc.GetModel(context.Background(), "court-1")

			if test.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "court-1", res.ID)
		})
	}
}

func TestResourceService_HoursForDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newResourceService(ctrl)

	tests := []struct {
		name      string
		date      string
		setupMock func()
		wantErr   bool
		wantOpen  string
	}{
		{
			name: "resolves the weekday window",
			date: "2025-03-03",
			setupMock: func() {
				// 2025-03-03 is a Monday.
				set.repo.EXPECT().
					GetHoursForWeekday(gomock.Any(), "court-1", 1).
					Return(model.Hours{ID: "hours-1", ResourceID: "court-1", Weekday: 1, OpenTime: "08:00", CloseTime: "22:00"}, nil)
			},
			wantErr:  false,
			wantOpen: "08:00",
		},
		{
			name: "closed on that day",
			date: "2025-03-02",
			setupMock: func() {
				set.repo.EXPECT().
					GetHoursForWeekday(gomock.Any(), "court-1", 0).
					Return(model.Hours{}, nil)
			},
			wantErr: true,
		},
		{
			name:      "malformed date",
			date:      "03/03/2025",
			setupMock: func() {},
			wantErr:   true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			test.setupMock()

			hours, err := svc.HoursForDate(context.Background(), "court-1", test.date)

			if test.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, test.wantOpen, hours.OpenTime)
		})
	}
}

func TestResourceService_PriceForDuration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newResourceService(ctrl)

	priceTiers := []model.Price{
		{ID: "price-1", ResourceID: "court-1", DurationMinutes: 60, Amount: 150000},
		{ID: "price-2", ResourceID: "court-1", DurationMinutes: 120, Amount: 280000},
	}

	tests := []struct {
		name      string
		duration  int
		setupMock func()
		wantErr   bool
		wantPrice float64
	}{
		{
			name:     "matching tier",
			duration: 120,
			setupMock: func() {
				set.repo.EXPECT().
					GetPrices(gomock.Any(), "court-1").
					Return(priceTiers, nil)
			},
			wantErr:   false,
			wantPrice: 280000,
		},
		{
			name:     "no tier for duration",
			duration: 90,
			setupMock: func() {
				set.repo.EXPECT().
					GetPrices(gomock.Any(), "court-1").
					Return(priceTiers, nil)
			},
			wantErr: true,
		},
		{
			name:     "repository error",
			duration: 60,
			setupMock: func() {
				set.repo.EXPECT().
					GetPrices(gomock.Any(), "court-1").
					Return(nil, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			test.setupMock()

			price, err := svc.PriceForDuration(context.Background(), "court-1", test.duration)

			if test.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, test.wantPrice, price)
		})
	}
}

func TestResourceService_Alternatives(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newResourceService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantIDs   []string
	}{
		{
			name: "same sport and establishment",
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Resource{ID: "court-1", EstablishmentID: "est-1", Sport: "futsal"}, nil)
				set.repo.EXPECT().
					GetAlternatives(gomock.Any(), "est-1", "futsal", "court-1").
					Return([]model.Resource{
						{ID: "court-2", EstablishmentID: "est-1", Sport: "futsal"},
						{ID: "court-3", EstablishmentID: "est-1", Sport: "futsal"},
					}, nil)
			},
			wantErr: false,
			wantIDs: []string{"court-2", "court-3"},
		},
		{
			name: "unknown resource",
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Resource{}, nil)
			},
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			test.setupMock()

			alternatives, err := svc.Alternatives(context.Background(), "court-1")

			if test.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Len(t, alternatives, len(test.wantIDs))
			for i, id := range test.wantIDs {
				assert.Equal(t, id, alternatives[i].ID)
			}
		})
	}
}

func TestResourceService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newResourceService(ctrl)

	t.Run("assembles hours and prices", func(t *testing.T) {
		set.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Resource{ID: "court-1", EstablishmentID: "est-1", Name: "Court 1", Active: true}, nil)
		set.repo.EXPECT().
			GetHours(gomock.Any(), "court-1").
			Return([]model.Hours{{ID: "hours-1", Weekday: 1, OpenTime: "08:00", CloseTime: "22:00"}}, nil)
		set.repo.EXPECT().
			GetPrices(gomock.Any(), "court-1").
			Return([]model.Price{{ID: "price-1", DurationMinutes: 60, Amount: 150000}}, nil)
		set.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Get(context.Background(), "court-1")

		assert.NoError(t, err)
		assert.Equal(t, "Court 1", res.Name)
		assert.Len(t, res.Hours, 1)
		assert.Equal(t, "08:00", res.Hours[0].OpenTime)
		assert.Len(t, res.Prices, 1)
		assert.Equal(t, float64(150000), res.Prices[0].Price)
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		set.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := svc.Get(context.Background(), "court-1")

		assert.NoError(t, err)
	})
}

func TestResourceService_UploadPhoto(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newResourceService(ctrl)

	fileHeader := &multipart.FileHeader{Filename: "court.png"}

	t.Run("uploads and replaces the previous photo", func(t *testing.T) {
		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Resource{ID: "court-1", PhotoURL: "https://cdn.example.com/courtside-media/resource/old.png"}, nil)
		set.s3.EXPECT().
			UploadFile(gomock.Any(), "courtside-media", model.EntityName, gomock.Any(), fileHeader, "court.png").
			Return("https://cdn.example.com/courtside-media/resource/court.png", nil)
		set.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		set.s3.EXPECT().
			GetObjectNameFromURL("courtside-media", "https://cdn.example.com/courtside-media/resource/old.png").
			Return("old.png").
			AnyTimes()
		set.s3.EXPECT().
			DeleteFile(gomock.Any(), "courtside-media", model.EntityName, "old.png").
			Return(nil).
			AnyTimes()
		set.cache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()
		set.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.UploadPhoto(context.Background(), "court-1", dto.UploadPhotoRequest{Photo: fileHeader})

		assert.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/courtside-media/resource/court.png", res.PhotoURL)
	})

	t.Run("unknown resource", func(t *testing.T) {
		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Resource{}, nil)

		_, err := svc.UploadPhoto(context.Background(), "missing", dto.UploadPhotoRequest{Photo: fileHeader})

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

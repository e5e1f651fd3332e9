package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"courtside/config"
	"courtside/infras/otel/mocks"
	bookingMocks "courtside/internal/domains/booking/mocks"
	"courtside/internal/domains/booking/model"
	"courtside/internal/domains/booking/model/dto"
	"courtside/internal/domains/booking/service"
	consumptionMocks "courtside/internal/domains/consumption/mocks"
	consumptionModel "courtside/internal/domains/consumption/model"
	establishmentModel "courtside/internal/domains/establishment/model"
	establishmentMocks "courtside/internal/domains/establishment/service/mocks"
	resourceModel "courtside/internal/domains/resource/model"
	resourceMocks "courtside/internal/domains/resource/service/mocks"
	eventMocks "courtside/internal/events/mocks"
	cacheMocks "courtside/shared/cache/mocks"
	"courtside/shared/checkin"
	"courtside/shared/constant"
	"courtside/shared/timezone"
)

type bookingMockSet struct {
	repo          *bookingMocks.MockBooking
	consumption   *consumptionMocks.MockConsumption
	resourceSvc   *resourceMocks.MockResource
	establishment *establishmentMocks.MockEstablishment
	publisher     *eventMocks.MockPublisher
	cache         *cacheMocks.MockRedisCache
}

func newBookingService(ctrl *gomock.Controller) (service.Booking, bookingMockSet) {
	set := bookingMockSet{
		repo:          bookingMocks.NewMockBooking(ctrl),
		consumption:   consumptionMocks.NewMockConsumption(ctrl),
		resourceSvc:   resourceMocks.NewMockResource(ctrl),
		establishment: establishmentMocks.NewMockEstablishment(ctrl),
		publisher:     eventMocks.NewMockPublisher(ctrl),
		cache:         cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Booking.SlotStepMinutes = 60
	cfg.Booking.MinCancelNoticeHours = 24

	svc := service.New(set.repo, set.consumption, set.resourceSvc, set.establishment, set.publisher, cfg, set.cache, mocks.NewOtel())

	return svc, set
}

func TestBookingService_Availability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	tests := []struct {
		name       string
		setupMock  func()
		wantErr    bool
		wantBooked []bool
	}{
		{
			name: "cache hit",
			setupMock: func() {
				set.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "daytime window with one occupied slot",
			setupMock: func() {
				set.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				set.resourceSvc.EXPECT().
					HoursForDate(gomock.Any(), "resource-id", "2025-03-03").
					Return(resourceModel.Hours{OpenTime: "08:00", CloseTime: "12:00"}, nil)

				set.repo.EXPECT().
					ListActiveByResourceDate(gomock.Any(), "resource-id", "2025-03-03", constant.Empty).
					Return([]model.Booking{
						{ID: "other", StartTime: "09:00", EndTime: "10:00", DurationMinutes: 60},
					}, nil)

				set.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:    false,
			wantBooked: []bool{false, true, false, false},
		},
		{
			name: "midnight crossing window flags slots after midnight",
			setupMock: func() {
				set.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				set.resourceSvc.EXPECT().
					HoursForDate(gomock.Any(), "resource-id", "2025-03-03").
					Return(resourceModel.Hours{OpenTime: "22:00", CloseTime: "02:00"}, nil)

				// Stored in raw minute-of-day coordinates; 00:30 sits in the
				// after-midnight portion of the window.
				set.repo.EXPECT().
					ListActiveByResourceDate(gomock.Any(), "resource-id", "2025-03-03", constant.Empty).
					Return([]model.Booking{
						{ID: "other", StartTime: "00:30", EndTime: "01:30", DurationMinutes: 60},
					}, nil)

				set.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:    false,
			wantBooked: []bool{false, false, true, true},
		},
		{
			name: "resource closed on the requested day",
			setupMock: func() {
				set.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				set.resourceSvc.EXPECT().
					HoursForDate(gomock.Any(), "resource-id", "2025-03-03").
					Return(resourceModel.Hours{}, errors.New("resource is closed on this day"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Availability(context.Background(), "resource-id", "2025-03-03", 60)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)

			if tt.wantBooked != nil {
				assert.Len(t, result.Slots, len(tt.wantBooked))

				for i, want := range tt.wantBooked {
					assert.Equal(t, want, result.Slots[i].IsBooked, "slot %s", result.Slots[i].Start)
				}
			}
		})
	}
}

func TestBookingService_HasConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	tests := []struct {
		name      string
		startTime string
		duration  int
		setupMock func()
		wantErr   bool
		want      bool
	}{
		{
			name:      "free slot",
			startTime: "22:00",
			duration:  60,
			setupMock: func() {
				set.resourceSvc.EXPECT().
					HoursForDate(gomock.Any(), "resource-id", "2025-03-03").
					Return(resourceModel.Hours{OpenTime: "22:00", CloseTime: "02:00"}, nil)

				set.repo.EXPECT().
					ListActiveByResourceDate(gomock.Any(), "resource-id", "2025-03-03", constant.Empty).
					Return([]model.Booking{
						{ID: "other", StartTime: "00:00", EndTime: "01:00", DurationMinutes: 60},
					}, nil)
			},
			want: false,
		},
		{
			name:      "overlap in the after-midnight portion",
			startTime: "00:30",
			duration:  60,
			setupMock: func() {
				set.resourceSvc.EXPECT().
					HoursForDate(gomock.Any(), "resource-id", "2025-03-03").
					Return(resourceModel.Hours{OpenTime: "22:00", CloseTime: "02:00"}, nil)

				set.repo.EXPECT().
					ListActiveByResourceDate(gomock.Any(), "resource-id", "2025-03-03", constant.Empty).
					Return([]model.Booking{
						{ID: "other", StartTime: "00:00", EndTime: "01:00", DurationMinutes: 60},
					}, nil)
			},
			want: true,
		},
		{
			name:      "touching intervals do not conflict",
			startTime: "01:00",
			duration:  60,
			setupMock: func() {
				set.resourceSvc.EXPECT().
					HoursForDate(gomock.Any(), "resource-id", "2025-03-03").
					Return(resourceModel.Hours{OpenTime: "22:00", CloseTime: "02:00"}, nil)

				set.repo.EXPECT().
					ListActiveByResourceDate(gomock.Any(), "resource-id", "2025-03-03", constant.Empty).
					Return([]model.Booking{
						{ID: "other", StartTime: "00:00", EndTime: "01:00", DurationMinutes: 60},
					}, nil)
			},
			want: false,
		},
		{
			name:      "outside operating hours",
			startTime: "12:00",
			duration:  60,
			setupMock: func() {
				set.resourceSvc.EXPECT().
					HoursForDate(gomock.Any(), "resource-id", "2025-03-03").
					Return(resourceModel.Hours{OpenTime: "22:00", CloseTime: "02:00"}, nil)
			},
			wantErr: true,
		},
		{
			name:      "past the closing time",
			startTime: "01:30",
			duration:  60,
			setupMock: func() {
				set.resourceSvc.EXPECT().
					HoursForDate(gomock.Any(), "resource-id", "2025-03-03").
					Return(resourceModel.Hours{OpenTime: "22:00", CloseTime: "02:00"}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.HasConflict(context.Background(), "resource-id", "2025-03-03", tt.startTime, tt.duration, constant.Empty)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, result)
			}
		})
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	activeResource := resourceModel.Resource{ID: "resource-id", EstablishmentID: "establishment-id", Active: true}
	hours := resourceModel.Hours{OpenTime: "08:00", CloseTime: "22:00"}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation with deposit",
			req: dto.CreateBookingRequest{
				ResourceID:    "resource-id",
				BookingDate:   "2025-03-03",
				StartTime:     "10:00",
				Duration:      120,
				DepositAmount: 50000,
				PaymentMethod: "transfer",
			},
			setupMock: func() {
				set.resourceSvc.EXPECT().
					GetModel(gomock.Any(), "resource-id").
					Return(activeResource, nil)

				set.resourceSvc.EXPECT().
					PriceForDuration(gomock.Any(), "resource-id", 120).
					Return(200000.0, nil)

				set.resourceSvc.EXPECT().
					HoursForDate(gomock.Any(), "resource-id", "2025-03-03").
					Return(hours, nil)

				set.repo.EXPECT().
					ListActiveByResourceDate(gomock.Any(), "resource-id", "2025-03-03", constant.Empty).
					Return(nil, nil)

				set.repo.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil())).
					Return(nil)

				set.publisher.EXPECT().
					PublishBooking(gomock.Any(), gomock.Any(), gomock.Any())

				set.cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				set.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "resource not accepting bookings",
			req: dto.CreateBookingRequest{
				ResourceID:  "resource-id",
				BookingDate: "2025-03-03",
				StartTime:   "10:00",
				Duration:    120,
			},
			setupMock: func() {
				set.resourceSvc.EXPECT().
					GetModel(gomock.Any(), "resource-id").
					Return(resourceModel.Resource{ID: "resource-id", Active: false}, nil)
			},
			wantErr: true,
		},
		{
			name: "deposit exceeds total amount",
			req: dto.CreateBookingRequest{
				ResourceID:    "resource-id",
				BookingDate:   "2025-03-03",
				StartTime:     "10:00",
				Duration:      120,
				DepositAmount: 500000,
			},
			setupMock: func() {
				set.resourceSvc.EXPECT().
					GetModel(gomock.Any(), "resource-id").
					Return(activeResource, nil)

				set.resourceSvc.EXPECT().
					PriceForDuration(gomock.Any(), "resource-id", 120).
					Return(200000.0, nil)
			},
			wantErr: true,
		},
		{
			name: "slot already booked",
			req: dto.CreateBookingRequest{
				ResourceID:  "resource-id",
				BookingDate: "2025-03-03",
				StartTime:   "10:00",
				Duration:    120,
			},
			setupMock: func() {
				set.resourceSvc.EXPECT().
					GetModel(gomock.Any(), "resource-id").
					Return(activeResource, nil)

				set.resourceSvc.EXPECT().
					PriceForDuration(gomock.Any(), "resource-id", 120).
					Return(200000.0, nil)

				set.resourceSvc.EXPECT().
					HoursForDate(gomock.Any(), "resource-id", "2025-03-03").
					Return(hours, nil)

				set.repo.EXPECT().
					ListActiveByResourceDate(gomock.Any(), "resource-id", "2025-03-03", constant.Empty).
					Return([]model.Booking{
						{ID: "other", StartTime: "09:00", EndTime: "11:00", DurationMinutes: 120},
					}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req: dto.CreateBookingRequest{
				ResourceID:  "resource-id",
				BookingDate: "2025-03-03",
				StartTime:   "10:00",
				Duration:    120,
			},
			setupMock: func() {
				set.resourceSvc.EXPECT().
					GetModel(gomock.Any(), "resource-id").
					Return(activeResource, nil)

				set.resourceSvc.EXPECT().
					PriceForDuration(gomock.Any(), "resource-id", 120).
					Return(200000.0, nil)

				set.resourceSvc.EXPECT().
					HoursForDate(gomock.Any(), "resource-id", "2025-03-03").
					Return(hours, nil)

				set.repo.EXPECT().
					ListActiveByResourceDate(gomock.Any(), "resource-id", "2025-03-03", constant.Empty).
					Return(nil, nil)

				set.repo.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "client-id")
			result, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, constant.BookingStatusPending, result.Status)
			assert.Equal(t, constant.PaymentStatusDeposit, result.PaymentStatus)
			assert.Equal(t, "12:00", result.EndTime)
			assert.Len(t, result.CheckInCode, 6)
		})
	}
}

func TestBookingService_TransitionStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	futureDate := timezone.Now().AddDate(0, 0, 7).Format(constant.DateOnlyFormat)

	booking := func(status string) model.Booking {
		return model.Booking{
			ID:              "booking-id",
			ResourceID:      "resource-id",
			BookingDate:     futureDate,
			StartTime:       "10:00",
			EndTime:         "12:00",
			DurationMinutes: 120,
			Status:          status,
		}
	}

	expectSuccess := func(current model.Booking, next string) {
		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(current, nil)

		set.repo.EXPECT().
			UpdateStatus(gomock.Any(), "booking-id", gomock.Any(), gomock.Any()).
			Return(nil)

		set.publisher.EXPECT().
			PublishBooking(gomock.Any(), gomock.Any(), gomock.Any())

		updated := current
		updated.Status = next

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(updated, nil)

		set.cache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		set.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()
	}

	tests := []struct {
		name      string
		req       dto.TransitionStatusRequest
		role      string
		setupMock func()
		wantErr   bool
		want      string
	}{
		{
			name: "pending to confirmed",
			req:  dto.TransitionStatusRequest{Status: constant.BookingStatusConfirmed},
			setupMock: func() {
				expectSuccess(booking(constant.BookingStatusPending), constant.BookingStatusConfirmed)
			},
			want: constant.BookingStatusConfirmed,
		},
		{
			name: "confirmed to in progress",
			req:  dto.TransitionStatusRequest{Status: constant.BookingStatusInProgress},
			setupMock: func() {
				set.consumption.EXPECT().
					ExistsForBooking(gomock.Any(), "booking-id").
					Return(true, nil)

				expectSuccess(booking(constant.BookingStatusConfirmed), constant.BookingStatusInProgress)
			},
			want: constant.BookingStatusInProgress,
		},
		{
			name: "in progress to completed",
			req:  dto.TransitionStatusRequest{Status: constant.BookingStatusCompleted},
			setupMock: func() {
				expectSuccess(booking(constant.BookingStatusInProgress), constant.BookingStatusCompleted)
			},
			want: constant.BookingStatusCompleted,
		},
		{
			name: "pending cannot jump to completed",
			req:  dto.TransitionStatusRequest{Status: constant.BookingStatusCompleted},
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking(constant.BookingStatusPending), nil)
			},
			wantErr: true,
		},
		{
			name: "completed is terminal",
			req:  dto.TransitionStatusRequest{Status: constant.BookingStatusCancelled},
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking(constant.BookingStatusCompleted), nil)
			},
			wantErr: true,
		},
		{
			name: "cancellation honours the notice window",
			req:  dto.TransitionStatusRequest{Status: constant.BookingStatusCancelled, Reason: "rain"},
			role: constant.RoleClient,
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking(constant.BookingStatusConfirmed), nil)

				set.resourceSvc.EXPECT().
					GetModel(gomock.Any(), "resource-id").
					Return(resourceModel.Resource{ID: "resource-id", EstablishmentID: "establishment-id", Active: true}, nil)

				set.establishment.EXPECT().
					Policy(gomock.Any(), "establishment-id").
					Return(establishmentModel.Establishment{MinNoticeHours: 48}, nil)

				set.repo.EXPECT().
					UpdateStatus(gomock.Any(), "booking-id", gomock.Any(), gomock.Any()).
					Return(nil)

				set.publisher.EXPECT().
					PublishBooking(gomock.Any(), gomock.Any(), gomock.Any())

				cancelled := booking(constant.BookingStatusCancelled)

				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)

				set.cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				set.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			want: constant.BookingStatusCancelled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-id")
			if tt.role != constant.Empty {
				ctx = context.WithValue(ctx, constant.ContextKeyUserRole, tt.role)
			}

			result, err := svc.TransitionStatus(ctx, "booking-id", tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, result.Status)
			}
		})
	}
}

func TestBookingService_TransitionStatus_LateCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	// Already started, so any notice window has elapsed.
	past := model.Booking{
		ID:              "booking-id",
		ResourceID:      "resource-id",
		BookingDate:     timezone.Now().Format(constant.DateOnlyFormat),
		StartTime:       "00:00",
		EndTime:         "02:00",
		DurationMinutes: 120,
		Status:          constant.BookingStatusConfirmed,
	}

	tests := []struct {
		name      string
		role      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "client is rejected inside the notice window",
			role: constant.RoleClient,
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(past, nil)

				set.resourceSvc.EXPECT().
					GetModel(gomock.Any(), "resource-id").
					Return(resourceModel.Resource{}, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "staff bypasses the notice window",
			role: constant.RoleStaff,
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(past, nil)

				set.repo.EXPECT().
					UpdateStatus(gomock.Any(), "booking-id", gomock.Any(), gomock.Any()).
					Return(nil)

				set.publisher.EXPECT().
					PublishBooking(gomock.Any(), gomock.Any(), gomock.Any())

				cancelled := past
				cancelled.Status = constant.BookingStatusCancelled

				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)

				set.cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				set.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "actor-id")
			ctx = context.WithValue(ctx, constant.ContextKeyUserRole, tt.role)

			_, err := svc.TransitionStatus(ctx, "booking-id", dto.TransitionStatusRequest{
				Status: constant.BookingStatusCancelled,
				Reason: "change of plans",
			})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_TransitionStatus_ConsumptionCreatedOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	confirmed := model.Booking{
		ID:              "booking-id",
		ResourceID:      "resource-id",
		BookingDate:     "2025-03-03",
		StartTime:       "10:00",
		EndTime:         "12:00",
		DurationMinutes: 120,
		Status:          constant.BookingStatusConfirmed,
	}

	tests := []struct {
		name          string
		exists        bool
		wantCompanion bool
	}{
		{
			name:          "first start opens a consumption record",
			exists:        false,
			wantCompanion: true,
		},
		{
			name:          "existing record is not duplicated",
			exists:        true,
			wantCompanion: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotCompanion *consumptionModel.Consumption

			set.repo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(confirmed, nil)

			set.consumption.EXPECT().
				ExistsForBooking(gomock.Any(), "booking-id").
				Return(tt.exists, nil)

			set.repo.EXPECT().
				UpdateStatus(gomock.Any(), "booking-id", gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, _ map[string]any, companion *consumptionModel.Consumption) error {
					gotCompanion = companion

					return nil
				})

			set.publisher.EXPECT().
				PublishBooking(gomock.Any(), gomock.Any(), gomock.Any())

			started := confirmed
			started.Status = constant.BookingStatusInProgress

			set.repo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(started, nil)

			set.cache.EXPECT().
				Delete(gomock.Any(), gomock.Any()).
				Return(nil).
				AnyTimes()

			set.cache.EXPECT().
				Clear(gomock.Any(), gomock.Any()).
				Return(nil).
				AnyTimes()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-id")
			_, err := svc.TransitionStatus(ctx, "booking-id", dto.TransitionStatusRequest{Status: constant.BookingStatusInProgress})

			assert.NoError(t, err)

			if tt.wantCompanion {
				assert.NotNil(t, gotCompanion)
				assert.Equal(t, "booking-id", gotCompanion.BookingID)
			} else {
				assert.Nil(t, gotCompanion)
			}
		})
	}
}

func TestBookingService_TransitionStatus_ReviewToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	inProgress := model.Booking{
		ID:              "booking-id",
		ResourceID:      "resource-id",
		BookingDate:     "2025-03-03",
		StartTime:       "10:00",
		EndTime:         "12:00",
		DurationMinutes: 120,
		Status:          constant.BookingStatusInProgress,
	}

	var gotFields map[string]any

	set.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(inProgress, nil)

	set.repo.EXPECT().
		UpdateStatus(gomock.Any(), "booking-id", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fields map[string]any, _ *consumptionModel.Consumption) error {
			gotFields = fields

			return nil
		})

	set.publisher.EXPECT().
		PublishBooking(gomock.Any(), gomock.Any(), gomock.Any())

	completed := inProgress
	completed.Status = constant.BookingStatusCompleted

	set.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(completed, nil)

	set.cache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	set.cache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-id")
	_, err := svc.TransitionStatus(ctx, "booking-id", dto.TransitionStatusRequest{Status: constant.BookingStatusCompleted})

	assert.NoError(t, err)
	assert.NotEmpty(t, gotFields[model.FieldReviewToken])
	assert.NotNil(t, gotFields[model.FieldCompletedAt])
}

func TestBookingService_Reassign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	booking := model.Booking{
		ID:              "booking-id",
		ResourceID:      "resource-id",
		BookingDate:     "2025-03-03",
		StartTime:       "10:00",
		EndTime:         "12:00",
		DurationMinutes: 120,
		Status:          constant.BookingStatusConfirmed,
	}

	hours := resourceModel.Hours{OpenTime: "08:00", CloseTime: "22:00"}

	tests := []struct {
		name      string
		req       dto.ReassignRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "move to a later start on the same resource",
			req:  dto.ReassignRequest{StartTime: "14:00"},
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				set.resourceSvc.EXPECT().
					HoursForDate(gomock.Any(), "resource-id", "2025-03-03").
					Return(hours, nil)

				set.repo.EXPECT().
					ListActiveByResourceDate(gomock.Any(), "resource-id", "2025-03-03", "booking-id").
					Return(nil, nil)

				set.repo.EXPECT().
					Move(gomock.Any(), "booking-id", gomock.Any(), "resource-id", "2025-03-03", "14:00").
					Return(nil)

				set.publisher.EXPECT().
					PublishBooking(gomock.Any(), gomock.Any(), gomock.Any())

				moved := booking
				moved.StartTime = "14:00"
				moved.EndTime = "16:00"

				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(moved, nil)

				set.cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				set.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "nothing to move",
			req:  dto.ReassignRequest{},
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)
			},
			wantErr: true,
		},
		{
			name: "destination slot is taken",
			req:  dto.ReassignRequest{StartTime: "14:00"},
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				set.resourceSvc.EXPECT().
					HoursForDate(gomock.Any(), "resource-id", "2025-03-03").
					Return(hours, nil)

				set.repo.EXPECT().
					ListActiveByResourceDate(gomock.Any(), "resource-id", "2025-03-03", "booking-id").
					Return([]model.Booking{
						{ID: "other", StartTime: "13:00", EndTime: "15:00", DurationMinutes: 120},
					}, nil)
			},
			wantErr: true,
		},
		{
			name: "cancelled booking cannot move",
			req:  dto.ReassignRequest{StartTime: "14:00"},
			setupMock: func() {
				cancelled := booking
				cancelled.Status = constant.BookingStatusCancelled

				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantErr: true,
		},
		{
			name: "inactive destination resource",
			req:  dto.ReassignRequest{ResourceID: "other-resource"},
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				set.resourceSvc.EXPECT().
					GetModel(gomock.Any(), "other-resource").
					Return(resourceModel.Resource{ID: "other-resource", Active: false}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-id")
			result, err := svc.Reassign(ctx, "booking-id", tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "14:00", result.StartTime)
				assert.Equal(t, "16:00", result.EndTime)
			}
		})
	}
}

func TestBookingService_VerifyCheckIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	codeHash, err := checkin.Hash("482913")
	assert.NoError(t, err)

	withHash := model.Booking{
		ID:              "booking-id",
		Status:          constant.BookingStatusConfirmed,
		CheckInCodeHash: &codeHash,
	}

	tests := []struct {
		name      string
		code      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "valid code",
			code: "482913",
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(withHash, nil)
			},
			wantErr: false,
		},
		{
			name: "wrong code",
			code: "000000",
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(withHash, nil)
			},
			wantErr: true,
		},
		{
			name: "booking without a code",
			code: "482913",
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{ID: "booking-id", Status: constant.BookingStatusConfirmed}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.VerifyCheckIn(context.Background(), "booking-id", dto.CheckInRequest{Code: tt.code})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"courtside/config"
	"courtside/infras/otel/mocks"
	bookingModel "courtside/internal/domains/booking/model"
	bookingMocks "courtside/internal/domains/booking/service/mocks"
	establishmentModel "courtside/internal/domains/establishment/model"
	establishmentMocks "courtside/internal/domains/establishment/service/mocks"
	ledgerModel "courtside/internal/domains/ledger/model"
	recurringMocks "courtside/internal/domains/recurring/mocks"
	"courtside/internal/domains/recurring/model"
	"courtside/internal/domains/recurring/model/dto"
	"courtside/internal/domains/recurring/service"
	resourceModel "courtside/internal/domains/resource/model"
	resourceMocks "courtside/internal/domains/resource/service/mocks"
	eventMocks "courtside/internal/events/mocks"
	"courtside/shared/constant"
	"courtside/shared/failure"
)

type recurringMockSet struct {
	repo          *recurringMocks.MockRecurring
	bookingSvc    *bookingMocks.MockBooking
	resourceSvc   *resourceMocks.MockResource
	establishment *establishmentMocks.MockEstablishment
	publisher     *eventMocks.MockPublisher
}

func newRecurringService(ctrl *gomock.Controller) (service.Recurring, recurringMockSet) {
	set := recurringMockSet{
		repo:          recurringMocks.NewMockRecurring(ctrl),
		bookingSvc:    bookingMocks.NewMockBooking(ctrl),
		resourceSvc:   resourceMocks.NewMockResource(ctrl),
		establishment: establishmentMocks.NewMockEstablishment(ctrl),
		publisher:     eventMocks.NewMockPublisher(ctrl),
	}

	cfg := &config.Config{}

	svc := service.New(set.repo, set.bookingSvc, set.resourceSvc, set.establishment, set.publisher, cfg, mocks.NewOtel())

	return svc, set
}

func TestOccurrenceDates(t *testing.T) {
	tests := []struct {
		name      string
		startDate string
		weeks     int
		want      []string
		wantErr   bool
	}{
		{
			name:      "four weekly dates",
			startDate: "2025-03-03",
			weeks:     4,
			want:      []string{"2025-03-03", "2025-03-10", "2025-03-17", "2025-03-24"},
		},
		{
			name:      "crosses a month boundary",
			startDate: "2025-01-27",
			weeks:     2,
			want:      []string{"2025-01-27", "2025-02-03"},
		},
		{
			name:      "malformed start date",
			startDate: "03/03/2025",
			weeks:     4,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates, err := service.OccurrenceDates(tt.startDate, tt.weeks)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, dates)
			}
		})
	}
}

func TestRecurringService_CheckAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newRecurringService(ctrl)

	primary := resourceModel.Resource{ID: "court-1", EstablishmentID: "establishment-id", Sport: "futsal", Active: true}
	alternatives := []resourceModel.Resource{
		{ID: "court-2", Name: "Court 2", Sport: "futsal"},
		{ID: "court-3", Name: "Court 3", Sport: "futsal"},
	}

	req := dto.CheckAvailabilityRequest{
		ResourceID: "court-1",
		StartDate:  "2025-03-03",
		TotalWeeks: 2,
		StartTime:  "19:00",
		Duration:   60,
	}

	tests := []struct {
		name       string
		setupMock  func()
		wantErr    bool
		wantChecks func(t *testing.T, res dto.CheckAvailabilityResponse)
	}{
		{
			name: "every date free on the primary resource",
			setupMock: func() {
				set.resourceSvc.EXPECT().
					GetModel(gomock.Any(), "court-1").
					Return(primary, nil)

				set.resourceSvc.EXPECT().
					Alternatives(gomock.Any(), "court-1").
					Return(alternatives, nil)

				set.bookingSvc.EXPECT().
					HasConflict(gomock.Any(), "court-1", "2025-03-03", "19:00", 60, constant.Empty).
					Return(false, nil)

				set.bookingSvc.EXPECT().
					HasConflict(gomock.Any(), "court-1", "2025-03-10", "19:00", 60, constant.Empty).
					Return(false, nil)
			},
			wantChecks: func(t *testing.T, res dto.CheckAvailabilityResponse) {
				assert.Len(t, res.Dates, 2)

				for _, report := range res.Dates {
					assert.True(t, report.Available)
					assert.Equal(t, "court-1", report.SelectedResourceID)
					assert.False(t, report.Unresolved)
				}
			},
		},
		{
			name: "conflicting date falls back to the first free alternative",
			setupMock: func() {
				set.resourceSvc.EXPECT().
					GetModel(gomock.Any(), "court-1").
					Return(primary, nil)

				set.resourceSvc.EXPECT().
					Alternatives(gomock.Any(), "court-1").
					Return(alternatives, nil)

				set.bookingSvc.EXPECT().
					HasConflict(gomock.Any(), "court-1", "2025-03-03", "19:00", 60, constant.Empty).
					Return(true, nil)

				set.bookingSvc.EXPECT().
					HasConflict(gomock.Any(), "court-2", "2025-03-03", "19:00", 60, constant.Empty).
					Return(true, nil)

				set.bookingSvc.EXPECT().
					HasConflict(gomock.Any(), "court-3", "2025-03-03", "19:00", 60, constant.Empty).
					Return(false, nil)

				set.bookingSvc.EXPECT().
					HasConflict(gomock.Any(), "court-1", "2025-03-10", "19:00", 60, constant.Empty).
					Return(false, nil)
			},
			wantChecks: func(t *testing.T, res dto.CheckAvailabilityResponse) {
				first := res.Dates[0]
				assert.True(t, first.Available)
				assert.Equal(t, "court-3", first.SelectedResourceID)
				assert.Len(t, first.Alternatives, 2)
				assert.False(t, first.Alternatives[0].Available)
				assert.True(t, first.Alternatives[1].Available)
			},
		},
		{
			name: "date with no free resource is unresolved",
			setupMock: func() {
				set.resourceSvc.EXPECT().
					GetModel(gomock.Any(), "court-1").
					Return(primary, nil)

				set.resourceSvc.EXPECT().
					Alternatives(gomock.Any(), "court-1").
					Return(alternatives, nil)

				set.bookingSvc.EXPECT().
					HasConflict(gomock.Any(), gomock.Any(), "2025-03-03", "19:00", 60, constant.Empty).
					Return(true, nil).
					Times(3)

				set.bookingSvc.EXPECT().
					HasConflict(gomock.Any(), "court-1", "2025-03-10", "19:00", 60, constant.Empty).
					Return(false, nil)
			},
			wantChecks: func(t *testing.T, res dto.CheckAvailabilityResponse) {
				assert.True(t, res.Dates[0].Unresolved)
				assert.False(t, res.Dates[0].Available)
				assert.False(t, res.Dates[1].Unresolved)
			},
		},
		{
			name: "unknown resource",
			setupMock: func() {
				set.resourceSvc.EXPECT().
					GetModel(gomock.Any(), "court-1").
					Return(resourceModel.Resource{}, errors.New("resource not found"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.CheckAvailability(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			tt.wantChecks(t, res)
		})
	}
}

func TestRecurringService_CreateGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newRecurringService(ctrl)

	primary := resourceModel.Resource{ID: "court-1", EstablishmentID: "establishment-id", Sport: "futsal", Active: true}

	req := dto.CreateGroupRequest{
		ResourceID: "court-1",
		StartDate:  "2025-03-03",
		TotalWeeks: 3,
		StartTime:  "19:00",
		Duration:   60,
	}

	expectPlanning := func() {
		set.resourceSvc.EXPECT().
			GetModel(gomock.Any(), "court-1").
			Return(primary, nil)

		set.resourceSvc.EXPECT().
			PriceForDuration(gomock.Any(), "court-1", 60).
			Return(150000.0, nil)

		set.resourceSvc.EXPECT().
			Alternatives(gomock.Any(), "court-1").
			Return(nil, nil)
	}

	tests := []struct {
		name      string
		req       dto.CreateGroupRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "books every free date",
			req:  req,
			setupMock: func() {
				expectPlanning()

				set.bookingSvc.EXPECT().
					HasConflict(gomock.Any(), "court-1", gomock.Any(), "19:00", 60, constant.Empty).
					Return(false, nil).
					Times(3)

				set.repo.EXPECT().
					CreateGroup(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				set.bookingSvc.EXPECT().
					InvalidateCaches(gomock.Any(), gomock.Any())

				set.publisher.EXPECT().
					PublishRecurring(gomock.Any(), gomock.Any(), gomock.Any())
			},
			wantErr: false,
		},
		{
			name: "initial payment below the per-occurrence price",
			req: dto.CreateGroupRequest{
				ResourceID:     "court-1",
				StartDate:      "2025-03-03",
				TotalWeeks:     3,
				StartTime:      "19:00",
				Duration:       60,
				InitialPayment: 100000,
			},
			setupMock: func() {
				set.resourceSvc.EXPECT().
					GetModel(gomock.Any(), "court-1").
					Return(primary, nil)

				set.resourceSvc.EXPECT().
					PriceForDuration(gomock.Any(), "court-1", 60).
					Return(150000.0, nil)
			},
			wantErr: true,
		},
		{
			name: "no available dates",
			req:  req,
			setupMock: func() {
				expectPlanning()

				set.bookingSvc.EXPECT().
					HasConflict(gomock.Any(), "court-1", gomock.Any(), "19:00", 60, constant.Empty).
					Return(true, nil).
					Times(3)
			},
			wantErr: true,
		},
		{
			name: "overridden resource is not free",
			req: dto.CreateGroupRequest{
				ResourceID: "court-1",
				StartDate:  "2025-03-03",
				TotalWeeks: 3,
				StartTime:  "19:00",
				Duration:   60,
				DateConfigurations: []dto.DateConfiguration{
					{Date: "2025-03-03", ResourceID: "court-2"},
				},
			},
			setupMock: func() {
				expectPlanning()

				set.bookingSvc.EXPECT().
					HasConflict(gomock.Any(), "court-2", "2025-03-03", "19:00", 60, constant.Empty).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error leaves no partial state",
			req:  req,
			setupMock: func() {
				expectPlanning()

				set.bookingSvc.EXPECT().
					HasConflict(gomock.Any(), "court-1", gomock.Any(), "19:00", 60, constant.Empty).
					Return(false, nil).
					Times(3)

				set.repo.EXPECT().
					CreateGroup(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "client-id")
			res, err := svc.CreateGroup(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, constant.GroupStatusActive, res.Group.Status)
			assert.Equal(t, 3, res.Group.TotalOccurrences)
			assert.Len(t, res.Bookings, 3)
		})
	}
}

func TestRecurringService_CreateGroup_SkipsAndSequences(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newRecurringService(ctrl)

	primary := resourceModel.Resource{ID: "court-1", EstablishmentID: "establishment-id", Sport: "futsal", Active: true}

	set.resourceSvc.EXPECT().
		GetModel(gomock.Any(), "court-1").
		Return(primary, nil)

	set.resourceSvc.EXPECT().
		PriceForDuration(gomock.Any(), "court-1", 60).
		Return(150000.0, nil)

	set.resourceSvc.EXPECT().
		Alternatives(gomock.Any(), "court-1").
		Return(nil, nil)

	// 2025-03-10 is skipped by the caller, 2025-03-17 has no free resource.
	set.bookingSvc.EXPECT().
		HasConflict(gomock.Any(), "court-1", "2025-03-03", "19:00", 60, constant.Empty).
		Return(false, nil)

	set.bookingSvc.EXPECT().
		HasConflict(gomock.Any(), "court-1", "2025-03-17", "19:00", 60, constant.Empty).
		Return(true, nil)

	set.bookingSvc.EXPECT().
		HasConflict(gomock.Any(), "court-1", "2025-03-24", "19:00", 60, constant.Empty).
		Return(false, nil)

	var gotGroup model.Group

	var gotBookings []bookingModel.Booking

	set.repo.EXPECT().
		CreateGroup(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, group model.Group, bookings []bookingModel.Booking, _ *ledgerModel.Entry) error {
			gotGroup = group
			gotBookings = bookings

			return nil
		})

	var invalidated []string

	set.bookingSvc.EXPECT().
		InvalidateCaches(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, ids ...string) {
			invalidated = ids
		})

	set.publisher.EXPECT().
		PublishRecurring(gomock.Any(), gomock.Any(), gomock.Any())

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "client-id")
	res, err := svc.CreateGroup(ctx, dto.CreateGroupRequest{
		ResourceID: "court-1",
		StartDate:  "2025-03-03",
		TotalWeeks: 4,
		StartTime:  "19:00",
		Duration:   60,
		DateConfigurations: []dto.DateConfiguration{
			{Date: "2025-03-10", Skip: true},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, gotGroup.TotalOccurrences)
	assert.Len(t, gotBookings, 2)
	assert.Equal(t, "2025-03-03", gotBookings[0].BookingDate)
	assert.Equal(t, "2025-03-24", gotBookings[1].BookingDate)
	assert.Equal(t, 1, *gotBookings[0].RecurringSequence)
	assert.Equal(t, 2, *gotBookings[1].RecurringSequence)
	assert.Equal(t, &gotGroup.ID, gotBookings[0].RecurringGroupID)
	assert.Equal(t, []string{gotBookings[0].ID, gotBookings[1].ID}, invalidated)
	assert.Len(t, res.Bookings, 2)
}

func TestRecurringService_CreateGroup_InitialPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newRecurringService(ctrl)

	primary := resourceModel.Resource{ID: "court-1", EstablishmentID: "establishment-id", Sport: "futsal", Active: true}

	set.resourceSvc.EXPECT().
		GetModel(gomock.Any(), "court-1").
		Return(primary, nil)

	set.resourceSvc.EXPECT().
		PriceForDuration(gomock.Any(), "court-1", 60).
		Return(150000.0, nil)

	set.resourceSvc.EXPECT().
		Alternatives(gomock.Any(), "court-1").
		Return(nil, nil)

	set.bookingSvc.EXPECT().
		HasConflict(gomock.Any(), "court-1", gomock.Any(), "19:00", 60, constant.Empty).
		Return(false, nil).
		Times(2)

	var gotGroup model.Group

	var gotBookings []bookingModel.Booking

	var gotEntry *ledgerModel.Entry

	set.repo.EXPECT().
		CreateGroup(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, group model.Group, bookings []bookingModel.Booking, entry *ledgerModel.Entry) error {
			gotGroup = group
			gotBookings = bookings
			gotEntry = entry

			return nil
		})

	set.bookingSvc.EXPECT().
		InvalidateCaches(gomock.Any(), gomock.Any())

	set.publisher.EXPECT().
		PublishRecurring(gomock.Any(), gomock.Any(), gomock.Any())

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "client-id")
	_, err := svc.CreateGroup(ctx, dto.CreateGroupRequest{
		ResourceID:     "court-1",
		StartDate:      "2025-03-03",
		TotalWeeks:     2,
		StartTime:      "19:00",
		Duration:       60,
		InitialPayment: 150000,
		PaymentMethod:  "transfer",
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, gotGroup.PaidBookingsCount)
	assert.Equal(t, 150000.0, gotGroup.TotalPaid)

	assert.Equal(t, constant.RecurringPaymentPaid, *gotBookings[0].RecurringPaymentStatus)
	assert.Equal(t, constant.PaymentStatusPaid, gotBookings[0].PaymentStatus)
	assert.Equal(t, constant.RecurringPaymentPending, *gotBookings[1].RecurringPaymentStatus)

	assert.NotNil(t, gotEntry)
	assert.Equal(t, 150000.0, gotEntry.Amount)
	assert.Equal(t, "transfer", gotEntry.Method)
	assert.Equal(t, ledgerModel.DirectionIn, gotEntry.Direction)
}

func TestRecurringService_PayNextOccurrence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newRecurringService(ctrl)

	pending := constant.RecurringPaymentPending
	paid := constant.RecurringPaymentPaid

	group := model.Group{
		ID:                "group-id",
		ResourceID:        "court-1",
		PricePerBooking:   150000,
		PaidBookingsCount: 1,
		TotalPaid:         150000,
		Status:            constant.GroupStatusActive,
	}

	bookings := func() []bookingModel.Booking {
		return []bookingModel.Booking{
			{ID: "occ-1", BookingDate: "2030-03-03", Status: constant.BookingStatusConfirmed, RecurringPaymentStatus: &paid},
			{ID: "occ-3", BookingDate: "2030-03-17", Status: constant.BookingStatusPending, RecurringPaymentStatus: &pending},
			{ID: "occ-2", BookingDate: "2030-03-10", Status: constant.BookingStatusPending, RecurringPaymentStatus: &pending},
			{ID: "occ-4", BookingDate: "2030-03-24", Status: constant.BookingStatusCancelled, RecurringPaymentStatus: &pending},
		}
	}

	tests := []struct {
		name      string
		req       dto.PayOccurrenceRequest
		setupMock func()
		wantErr   bool
		wantID    string
	}{
		{
			name: "pays the earliest pending occurrence",
			req:  dto.PayOccurrenceRequest{Amount: 150000, Method: "cash"},
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(group, nil)

				set.repo.EXPECT().
					ListBookings(gomock.Any(), "group-id").
					Return(bookings(), nil)

				set.repo.EXPECT().
					PayOccurrence(gomock.Any(), "occ-2", "group-id", 150000.0, "client-id", gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _ string, _ float64, _ string, entry ledgerModel.Entry) error {
						assert.Equal(t, 150000.0, entry.Amount)
						assert.Equal(t, ledgerModel.DirectionIn, entry.Direction)

						return nil
					})

				set.bookingSvc.EXPECT().
					InvalidateCaches(gomock.Any(), "occ-2")

				set.publisher.EXPECT().
					PublishRecurring(gomock.Any(), gomock.Any(), gomock.Any())
			},
			wantID: "occ-2",
		},
		{
			name: "pays an explicit occurrence",
			req:  dto.PayOccurrenceRequest{Amount: 150000, Method: "cash", BookingID: "occ-3"},
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(group, nil)

				set.repo.EXPECT().
					ListBookings(gomock.Any(), "group-id").
					Return(bookings(), nil)

				set.repo.EXPECT().
					PayOccurrence(gomock.Any(), "occ-3", "group-id", 150000.0, "client-id", gomock.Any()).
					Return(nil)

				set.bookingSvc.EXPECT().
					InvalidateCaches(gomock.Any(), "occ-3")

				set.publisher.EXPECT().
					PublishRecurring(gomock.Any(), gomock.Any(), gomock.Any())
			},
			wantID: "occ-3",
		},
		{
			name: "no pending occurrence left",
			req:  dto.PayOccurrenceRequest{Amount: 150000, Method: "cash"},
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(group, nil)

				set.repo.EXPECT().
					ListBookings(gomock.Any(), "group-id").
					Return([]bookingModel.Booking{
						{ID: "occ-1", BookingDate: "2030-03-03", Status: constant.BookingStatusConfirmed, RecurringPaymentStatus: &paid},
					}, nil)
			},
			wantErr: true,
		},
		{
			name: "cancelled group",
			req:  dto.PayOccurrenceRequest{Amount: 150000, Method: "cash"},
			setupMock: func() {
				cancelled := group
				cancelled.Status = constant.GroupStatusCancelled

				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantErr: true,
		},
		{
			name: "group not found",
			req:  dto.PayOccurrenceRequest{Amount: 150000, Method: "cash"},
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Group{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "client-id")
			res, err := svc.PayNextOccurrence(ctx, "group-id", tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantID, res.ID)
			assert.Equal(t, constant.PaymentStatusPaid, res.PaymentStatus)
		})
	}
}

func TestRecurringService_PayNextOccurrence_LostRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newRecurringService(ctrl)

	pending := constant.RecurringPaymentPending

	set.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Group{ID: "group-id", ResourceID: "court-1", Status: constant.GroupStatusActive}, nil)

	set.repo.EXPECT().
		ListBookings(gomock.Any(), "group-id").
		Return([]bookingModel.Booking{
			{ID: "occ-1", BookingDate: "2030-03-03", Status: constant.BookingStatusPending, RecurringPaymentStatus: &pending},
		}, nil)

	// A concurrent payment settled the occurrence between the read and the
	// guarded update, so the repository reports zero affected rows.
	set.repo.EXPECT().
		PayOccurrence(gomock.Any(), "occ-1", "group-id", 150000.0, "client-id", gomock.Any()).
		Return(failure.NotFound("no pending occurrence to pay"))

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "client-id")
	_, err := svc.PayNextOccurrence(ctx, "group-id", dto.PayOccurrenceRequest{Amount: 150000, Method: "cash"})

	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestRecurringService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newRecurringService(ctrl)

	pending := constant.RecurringPaymentPending
	paid := constant.RecurringPaymentPaid

	group := model.Group{
		ID:              "group-id",
		ResourceID:      "court-1",
		PricePerBooking: 150000,
		Status:          constant.GroupStatusActive,
	}

	series := func() []bookingModel.Booking {
		return []bookingModel.Booking{
			{ID: "occ-1", BookingDate: "2030-03-03", Status: constant.BookingStatusConfirmed, RecurringPaymentStatus: &paid},
			{ID: "occ-2", BookingDate: "2030-03-10", Status: constant.BookingStatusPending, RecurringPaymentStatus: &pending},
			{ID: "occ-3", BookingDate: "2030-03-17", Status: constant.BookingStatusConfirmed, RecurringPaymentStatus: &paid},
			{ID: "occ-4", BookingDate: "2030-03-24", Status: constant.BookingStatusCancelled, RecurringPaymentStatus: &pending},
		}
	}

	expectRefundPolicy := func() {
		set.resourceSvc.EXPECT().
			GetModel(gomock.Any(), "court-1").
			Return(resourceModel.Resource{ID: "court-1", EstablishmentID: "establishment-id"}, nil)

		set.establishment.EXPECT().
			Policy(gomock.Any(), "establishment-id").
			Return(establishmentModel.Establishment{RecurringRefundPolicy: constant.RecurringRefundPolicyCredit}, nil)
	}

	tests := []struct {
		name       string
		req        dto.CancelGroupRequest
		setupMock  func()
		wantErr    bool
		wantChecks func(t *testing.T, res dto.CancelGroupResponse)
	}{
		{
			name: "from a date keeps earlier occurrences",
			req:  dto.CancelGroupRequest{Mode: constant.CancelModeFromDate, Reference: "2030-03-10", Reason: "venue renovation"},
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(group, nil)

				set.repo.EXPECT().
					ListBookings(gomock.Any(), "group-id").
					Return(series(), nil)

				// occ-1 stays active, so the group survives.
				set.repo.EXPECT().
					CancelOccurrences(gomock.Any(), []string{"occ-2", "occ-3"}, "group-id", constant.GroupStatusActive, "venue renovation", "client-id").
					Return(2, nil)

				set.bookingSvc.EXPECT().
					InvalidateCaches(gomock.Any(), "occ-2", "occ-3")

				set.publisher.EXPECT().
					PublishRecurring(gomock.Any(), gomock.Any(), gomock.Any())

				expectRefundPolicy()
			},
			wantChecks: func(t *testing.T, res dto.CancelGroupResponse) {
				assert.Equal(t, []string{"occ-2", "occ-3"}, res.CancelledBookings)
				assert.Equal(t, constant.GroupStatusActive, res.Group.Status)
				assert.Equal(t, 2, res.Group.CancelledOccurrences)
				// occ-3 is the only paid occurrence in the selection.
				assert.Equal(t, 150000.0, res.RefundEstimate.Amount)
				assert.Equal(t, constant.RecurringRefundPolicyCredit, res.RefundEstimate.Policy)
			},
		},
		{
			name: "cancelling every pending occurrence terminates the group",
			req:  dto.CancelGroupRequest{Mode: constant.CancelModeAllPending, Reason: "client moved away"},
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(group, nil)

				set.repo.EXPECT().
					ListBookings(gomock.Any(), "group-id").
					Return(series(), nil)

				set.repo.EXPECT().
					CancelOccurrences(gomock.Any(), []string{"occ-1", "occ-2", "occ-3"}, "group-id", constant.GroupStatusCancelled, "client moved away", "client-id").
					Return(3, nil)

				set.bookingSvc.EXPECT().
					InvalidateCaches(gomock.Any(), "occ-1", "occ-2", "occ-3")

				set.publisher.EXPECT().
					PublishRecurring(gomock.Any(), gomock.Any(), gomock.Any())

				expectRefundPolicy()
			},
			wantChecks: func(t *testing.T, res dto.CancelGroupResponse) {
				assert.Equal(t, constant.GroupStatusCancelled, res.Group.Status)
				assert.Equal(t, 300000.0, res.RefundEstimate.Amount)
			},
		},
		{
			name: "single cancellation of a cancelled occurrence",
			req:  dto.CancelGroupRequest{Mode: constant.CancelModeSingle, Reference: "occ-4", Reason: "duplicate"},
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(group, nil)

				set.repo.EXPECT().
					ListBookings(gomock.Any(), "group-id").
					Return(series(), nil)
			},
			wantErr: true,
		},
		{
			name: "single cancellation of an unknown occurrence",
			req:  dto.CancelGroupRequest{Mode: constant.CancelModeSingle, Reference: "occ-99", Reason: "duplicate"},
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(group, nil)

				set.repo.EXPECT().
					ListBookings(gomock.Any(), "group-id").
					Return(series(), nil)
			},
			wantErr: true,
		},
		{
			name: "group already cancelled",
			req:  dto.CancelGroupRequest{Mode: constant.CancelModeAllPending, Reason: "cleanup"},
			setupMock: func() {
				cancelled := group
				cancelled.Status = constant.GroupStatusCancelled

				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "client-id")
			res, err := svc.Cancel(ctx, "group-id", tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			tt.wantChecks(t, res)
		})
	}
}

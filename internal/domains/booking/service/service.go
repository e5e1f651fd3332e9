package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"courtside/config"
	"courtside/infras/otel"
	"courtside/internal/domains/booking/model"
	"courtside/internal/domains/booking/model/dto"
	"courtside/internal/domains/booking/repository"
	consumptionModel "courtside/internal/domains/consumption/model"
	consumptionRepo "courtside/internal/domains/consumption/repository"
	establishmentService "courtside/internal/domains/establishment/service"
	ledgerModel "courtside/internal/domains/ledger/model"
	resourceService "courtside/internal/domains/resource/service"
	"courtside/internal/events"
	"courtside/shared"
	"courtside/shared/cache"
	"courtside/shared/checkin"
	"courtside/shared/constant"
	gDto "courtside/shared/dto"
	"courtside/shared/failure"
	gModel "courtside/shared/model"
	"courtside/shared/timeslot"
	"courtside/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheAvailability  = "booking:availability"

	defaultPaymentMethod = "cash"
)

type Booking interface {
	Availability(ctx context.Context, resourceID, date string, durationMinutes int) (dto.AvailabilityResponse, error)
	HasConflict(ctx context.Context, resourceID, date, startTime string, durationMinutes int, excludeID string) (bool, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	TransitionStatus(ctx context.Context, id string, req dto.TransitionStatusRequest) (dto.BookingResponse, error)
	Reassign(ctx context.Context, id string, req dto.ReassignRequest) (dto.BookingResponse, error)
	VerifyCheckIn(ctx context.Context, id string, req dto.CheckInRequest) error
	InvalidateCaches(ctx context.Context, bookingIDs ...string)
}

type serviceImpl struct {
	repo            repository.Booking
	consumptionRepo consumptionRepo.Consumption
	resourceSvc     resourceService.Resource
	establishment   establishmentService.Establishment
	publisher       events.Publisher
	cfg             *config.Config
	cache           cache.RedisCache
	otel            otel.Otel
}

func New(
	repo repository.Booking,
	consumptionRepo consumptionRepo.Consumption,
	resourceSvc resourceService.Resource,
	establishment establishmentService.Establishment,
	publisher events.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:            repo,
		consumptionRepo: consumptionRepo,
		resourceSvc:     resourceSvc,
		establishment:   establishment,
		publisher:       publisher,
		cfg:             cfg,
		cache:           cache,
		otel:            otel,
	}
}

// Availability returns every candidate slot for the resource, date and
// duration, each flagged when an active booking overlaps it.
func (s *serviceImpl) Availability(ctx context.Context, resourceID, date string, durationMinutes int) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheAvailability, resourceID, date, strconv.Itoa(durationMinutes))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for availability")

		return res, nil
	}

	hours, err := s.resourceSvc.HoursForDate(ctx, resourceID, date)
	if err != nil {
		return res, err
	}

	slots, err := timeslot.Generate(hours.OpenTime, hours.CloseTime, s.cfg.Booking.SlotStepMinutes, durationMinutes)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	openMinutes, err := timeslot.ToMinutes(hours.OpenTime)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	closeMinutes, err := timeslot.ToMinutes(hours.CloseTime)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	occupied, err := s.activeIntervals(ctx, resourceID, date, openMinutes, closeMinutes, constant.Empty)
	if err != nil {
		return res, err
	}

	res = dto.AvailabilityResponse{
		ResourceID: resourceID,
		Date:       date,
		Duration:   durationMinutes,
		Slots:      make([]dto.AvailabilitySlot, len(slots)),
	}

	for i, slot := range slots {
		start := timeslot.ProjectIntoWindow(slot.Start, openMinutes, closeMinutes)
		end := start + durationMinutes

		booked := false

		for _, interval := range occupied {
			if timeslot.Overlaps(start, end, interval[0], interval[1]) {
				booked = true

				break
			}
		}

		res.Slots[i] = dto.AvailabilitySlot{
			Start:    timeslot.FormatMinutes(slot.Start),
			End:      timeslot.FormatMinutes(slot.End),
			IsBooked: booked,
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save availability to cache")
		}
	}()

	return res, nil
}

// HasConflict tests a proposed interval against the active bookings of a
// resource and date, optionally excluding one booking. Both the proposal and
// the stored intervals are projected into the operating window's extended
// coordinate space before the overlap test, so times in the after-midnight
// portion of a window compare correctly.
func (s *serviceImpl) HasConflict(ctx context.Context, resourceID, date, startTime string, durationMinutes int, excludeID string) (res bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HasConflict")
	defer scope.End()
	defer scope.TraceIfError(err)

	hours, err := s.resourceSvc.HoursForDate(ctx, resourceID, date)
	if err != nil {
		return false, err
	}

	openMinutes, err := timeslot.ToMinutes(hours.OpenTime)
	if err != nil {
		return false, failure.BadRequest(err) // nolint:wrapcheck
	}

	startMinutes, err := timeslot.ToMinutes(startTime)
	if err != nil {
		return false, failure.BadRequest(err) // nolint:wrapcheck
	}

	closeMinutes, err := timeslot.ToMinutes(hours.CloseTime)
	if err != nil {
		return false, failure.BadRequest(err) // nolint:wrapcheck
	}

	proposedStart := timeslot.ProjectIntoWindow(startMinutes, openMinutes, closeMinutes)
	proposedEnd := proposedStart + durationMinutes

	if proposedStart < openMinutes || proposedEnd > timeslot.ResolveClose(openMinutes, closeMinutes) {
		return false, failure.BadRequestFromString("requested time is outside operating hours") // nolint:wrapcheck
	}

	occupied, err := s.activeIntervals(ctx, resourceID, date, openMinutes, closeMinutes, excludeID)
	if err != nil {
		return false, err
	}

	for _, interval := range occupied {
		if timeslot.Overlaps(proposedStart, proposedEnd, interval[0], interval[1]) {
			return true, nil
		}
	}

	return false, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	resource, err := s.resourceSvc.GetModel(ctx, req.ResourceID)
	if err != nil {
		return res, err
	}

	if !resource.Active {
		return res, failure.BadRequestFromString("resource is not accepting bookings") // nolint:wrapcheck
	}

	totalAmount, err := s.resourceSvc.PriceForDuration(ctx, req.ResourceID, req.Duration)
	if err != nil {
		return res, err
	}

	if req.DepositAmount > totalAmount {
		return res, failure.BadRequestFromString("deposit cannot exceed the total amount") // nolint:wrapcheck
	}

	conflict, err := s.HasConflict(ctx, req.ResourceID, req.BookingDate, req.StartTime, req.Duration, constant.Empty)
	if err != nil {
		return res, err
	}

	if conflict {
		return res, failure.Conflict("slot already booked") // nolint:wrapcheck
	}

	startMinutes, err := timeslot.ToMinutes(req.StartTime)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	booking := req.ToModel(user, timeslot.FormatMinutes(startMinutes+req.Duration), totalAmount)

	code, err := checkin.Generate()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate check-in code")

		return res, fmt.Errorf("failed to generate check-in code: %w", err)
	}

	codeHash, err := checkin.Hash(code)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash check-in code")

		return res, fmt.Errorf("failed to hash check-in code: %w", err)
	}

	booking.CheckInCodeHash = &codeHash

	var entry *ledgerModel.Entry
	if req.DepositAmount > 0 {
		entry = s.depositEntry(booking, req.PaymentMethod, user)
	}

	if err = s.repo.Create(ctx, booking, entry); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, err
	}

	s.publisher.PublishBooking(ctx, events.TypeBookingCreated, events.BookingPayload{
		BookingID:   booking.ID,
		ResourceID:  booking.ResourceID,
		BookingDate: booking.BookingDate,
		StartTime:   booking.StartTime,
		Status:      booking.Status,
		ActorID:     user,
	})

	s.InvalidateCaches(ctx, booking.ID)

	res.FromModel(booking)
	res.CheckInCode = code

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

// TransitionStatus applies one step of the booking lifecycle. Pending moves
// to confirmed, confirmed to in progress, in progress to completed; pending
// and confirmed may also be cancelled. Each step stamps its timestamp and
// runs its side effects inside the same transaction.
func (s *serviceImpl) TransitionStatus(ctx context.Context, id string, req dto.TransitionStatusRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".TransitionStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	if !model.CanTransition(booking.Status, req.Status) {
		return res, failure.BadRequestFromString(fmt.Sprintf("cannot transition a %s booking to %s", booking.Status, req.Status)) // nolint:wrapcheck
	}

	now := timezone.Now()
	fields := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: user,
	}

	var companion *consumptionModel.Consumption

	eventType := constant.Empty

	switch req.Status {
	case constant.BookingStatusConfirmed:
		fields[model.FieldConfirmedAt] = now
		eventType = events.TypeBookingConfirmed
	case constant.BookingStatusInProgress:
		fields[model.FieldStartedAt] = now
		eventType = events.TypeBookingStarted

		exists, existsErr := s.consumptionRepo.ExistsForBooking(ctx, id)
		if existsErr != nil {
			log.Error().Err(existsErr).Msg("failed to check consumption record")

			return res, fmt.Errorf("failed to check consumption record: %w", existsErr)
		}

		if !exists {
			companion = &consumptionModel.Consumption{
				ID:        uuid.NewString(),
				BookingID: id,
				Metadata: gModel.Metadata{
					CreatedAt:  now,
					ModifiedAt: now,
					CreatedBy:  user,
					ModifiedBy: user,
				},
			}
		}
	case constant.BookingStatusCompleted:
		fields[model.FieldCompletedAt] = now
		eventType = events.TypeBookingCompleted

		if booking.ReviewToken == nil {
			fields[model.FieldReviewToken] = uuid.NewString()
		}
	case constant.BookingStatusCancelled:
		if err = s.checkCancellationNotice(ctx, booking); err != nil {
			return res, err
		}

		fields[model.FieldCancelledAt] = now
		fields[model.FieldCancellationReason] = req.Reason
		eventType = events.TypeBookingCancelled
	}

	if err = s.repo.UpdateStatus(ctx, id, fields, companion); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return res, fmt.Errorf("failed to update booking status: %w", err)
	}

	s.publisher.PublishBooking(ctx, eventType, events.BookingPayload{
		BookingID:   booking.ID,
		ResourceID:  booking.ResourceID,
		BookingDate: booking.BookingDate,
		StartTime:   booking.StartTime,
		Status:      req.Status,
		ActorID:     user,
	})

	s.InvalidateCaches(ctx, id)

	updated, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(updated)

	return res, nil
}

// Reassign moves a booking to a different resource, date or start time. The
// conflict check is re-run excluding the booking itself and the destination
// slot is purged of any cancelled leftover before committing the move.
func (s *serviceImpl) Reassign(ctx context.Context, id string, req dto.ReassignRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reassign")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	if booking.Status != constant.BookingStatusPending && booking.Status != constant.BookingStatusConfirmed {
		return res, failure.BadRequestFromString(fmt.Sprintf("cannot move a %s booking", booking.Status)) // nolint:wrapcheck
	}

	destResource := booking.ResourceID
	if req.ResourceID != constant.Empty {
		destResource = req.ResourceID
	}

	destDate := booking.BookingDate
	if req.BookingDate != constant.Empty {
		destDate = req.BookingDate
	}

	destStart := booking.StartTime
	if req.StartTime != constant.Empty {
		destStart = req.StartTime
	}

	if destResource == booking.ResourceID && destDate == booking.BookingDate && destStart == booking.StartTime {
		return res, failure.BadRequestFromString("nothing to move") // nolint:wrapcheck
	}

	if destResource != booking.ResourceID {
		resource, resourceErr := s.resourceSvc.GetModel(ctx, destResource)
		if resourceErr != nil {
			return res, resourceErr
		}

		if !resource.Active {
			return res, failure.BadRequestFromString("destination resource is not accepting bookings") // nolint:wrapcheck
		}
	}

	conflict, err := s.HasConflict(ctx, destResource, destDate, destStart, booking.DurationMinutes, id)
	if err != nil {
		return res, err
	}

	if conflict {
		return res, failure.Conflict("slot already booked") // nolint:wrapcheck
	}

	startMinutes, err := timeslot.ToMinutes(destStart)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	fields := map[string]any{
		model.FieldResourceID:    destResource,
		model.FieldBookingDate:   destDate,
		model.FieldStartTime:     destStart,
		model.FieldEndTime:       timeslot.FormatMinutes(startMinutes + booking.DurationMinutes),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Move(ctx, id, fields, destResource, destDate, destStart); err != nil {
		log.Error().Err(err).Msg("failed to move booking")

		return res, err
	}

	s.publisher.PublishBooking(ctx, events.TypeBookingMoved, events.BookingPayload{
		BookingID:   id,
		ResourceID:  destResource,
		BookingDate: destDate,
		StartTime:   destStart,
		Status:      booking.Status,
		ActorID:     user,
	})

	s.InvalidateCaches(ctx, id)

	updated, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) VerifyCheckIn(ctx context.Context, id string, req dto.CheckInRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VerifyCheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	if booking.CheckInCodeHash == nil {
		return failure.BadRequestFromString("booking has no check-in code") // nolint:wrapcheck
	}

	if err = checkin.Verify(req.Code, *booking.CheckInCodeHash); err != nil {
		return failure.Unauthorized("invalid check-in code") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) load(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

// activeIntervals loads the active bookings of a resource and date, projected
// into the operating window's extended coordinate space.
func (s *serviceImpl) activeIntervals(ctx context.Context, resourceID, date string, openMinutes, closeMinutes int, excludeID string) ([][2]int, error) {
	bookings, err := s.repo.ListActiveByResourceDate(ctx, resourceID, date, excludeID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list active bookings")

		return nil, fmt.Errorf("failed to list active bookings: %w", err)
	}

	intervals := make([][2]int, 0, len(bookings))

	for i := range bookings {
		start, end, err := bookings[i].Interval()
		if err != nil {
			log.Error().Err(err).Str("bookingID", bookings[i].ID).Msg("booking has a malformed time")

			continue
		}

		projected := timeslot.ProjectIntoWindow(start, openMinutes, closeMinutes)
		intervals = append(intervals, [2]int{projected, projected + (end - start)})
	}

	return intervals, nil
}

// checkCancellationNotice enforces the minimum cancellation notice for
// non-privileged actors. Establishment staff and admins bypass it.
func (s *serviceImpl) checkCancellationNotice(ctx context.Context, booking model.Booking) error {
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if role == constant.RoleSuperAdmin || role == constant.RoleAdmin || role == constant.RoleStaff {
		return nil
	}

	noticeHours := s.cfg.Booking.MinCancelNoticeHours

	resource, err := s.resourceSvc.GetModel(ctx, booking.ResourceID)
	if err == nil {
		policy, policyErr := s.establishment.Policy(ctx, resource.EstablishmentID)
		if policyErr == nil && policy.MinNoticeHours > 0 {
			noticeHours = policy.MinNoticeHours
		}
	}

	day, err := timezone.Parse(constant.DateOnlyFormat, booking.BookingDate)
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	startMinutes, err := timeslot.ToMinutes(booking.StartTime)
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	start := day.Add(time.Duration(startMinutes) * time.Minute)
	if timezone.Now().Add(time.Duration(noticeHours) * time.Hour).After(start) {
		return failure.Forbidden(fmt.Sprintf("bookings must be cancelled at least %d hours before they start", noticeHours)) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) depositEntry(booking model.Booking, method, user string) *ledgerModel.Entry {
	if method == constant.Empty {
		method = defaultPaymentMethod
	}

	return &ledgerModel.Entry{
		ID:          uuid.NewString(),
		BookingID:   &booking.ID,
		Amount:      booking.PaidAmount,
		Method:      method,
		Direction:   ledgerModel.DirectionIn,
		Description: fmt.Sprintf("deposit for booking on %s at %s", booking.BookingDate, booking.StartTime),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// InvalidateCaches drops the cached reads a booking mutation staled: the
// listed bookings by id plus every list and availability snapshot. The
// recurring service calls it too, since group mutations write booking rows
// that this service's caches reflect.
func (s *serviceImpl) InvalidateCaches(ctx context.Context, bookingIDs ...string) {
	go func() {
		c := context.WithoutCancel(ctx)

		for _, id := range bookingIDs {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete booking from cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheAvailability)
	}()
}

package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"courtside/config"
	"courtside/infras/otel"
	bookingModel "courtside/internal/domains/booking/model"
	bookingDto "courtside/internal/domains/booking/model/dto"
	bookingService "courtside/internal/domains/booking/service"
	establishmentService "courtside/internal/domains/establishment/service"
	ledgerModel "courtside/internal/domains/ledger/model"
	"courtside/internal/domains/recurring/model"
	"courtside/internal/domains/recurring/model/dto"
	"courtside/internal/domains/recurring/repository"
	resourceModel "courtside/internal/domains/resource/model"
	resourceService "courtside/internal/domains/resource/service"
	"courtside/internal/events"
	"courtside/shared"
	"courtside/shared/constant"
	"courtside/shared/failure"
	gModel "courtside/shared/model"
	"courtside/shared/timeslot"
	"courtside/shared/timezone"
)

type Recurring interface {
	CheckAvailability(ctx context.Context, req dto.CheckAvailabilityRequest) (dto.CheckAvailabilityResponse, error)
	CreateGroup(ctx context.Context, req dto.CreateGroupRequest) (dto.CreateGroupResponse, error)
	Get(ctx context.Context, id string) (dto.GetGroupResponse, error)
	PayNextOccurrence(ctx context.Context, groupID string, req dto.PayOccurrenceRequest) (bookingDto.BookingResponse, error)
	Cancel(ctx context.Context, groupID string, req dto.CancelGroupRequest) (dto.CancelGroupResponse, error)
}

type serviceImpl struct {
	repo        repository.Recurring
	bookingSvc  bookingService.Booking
	resourceSvc resourceService.Resource
	// establishment supplies the recurring refund policy for estimates.
	establishment establishmentService.Establishment
	publisher     events.Publisher
	cfg           *config.Config
	otel          otel.Otel
}

func New(
	repo repository.Recurring,
	bookingSvc bookingService.Booking,
	resourceSvc resourceService.Resource,
	establishment establishmentService.Establishment,
	publisher events.Publisher,
	cfg *config.Config,
	otel otel.Otel,
) Recurring {
	return &serviceImpl{
		repo:          repo,
		bookingSvc:    bookingSvc,
		resourceSvc:   resourceSvc,
		establishment: establishment,
		publisher:     publisher,
		cfg:           cfg,
		otel:          otel,
	}
}

// OccurrenceDates generates totalWeeks dates, each exactly seven days after
// the previous, starting at startDate.
func OccurrenceDates(startDate string, totalWeeks int) ([]string, error) {
	start, err := timezone.Parse(constant.DateOnlyFormat, startDate)
	if err != nil {
		return nil, failure.BadRequestFromString("start date must be in YYYY-MM-DD format") // nolint:wrapcheck
	}

	dates := make([]string, totalWeeks)
	for week := range totalWeeks {
		dates[week] = start.AddDate(0, 0, week*constant.DaysPerWeek).Format(constant.DateOnlyFormat)
	}

	return dates, nil
}

// CheckAvailability runs the conflict detector for every planned date. A
// conflicting date falls back to the first free resource of the same sport
// at the same establishment; a date with no free resource is flagged
// unresolved and will be skipped at creation time.
func (s *serviceImpl) CheckAvailability(ctx context.Context, req dto.CheckAvailabilityRequest) (res dto.CheckAvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	dates := req.Dates
	if len(dates) == 0 {
		dates, err = OccurrenceDates(req.StartDate, req.TotalWeeks)
		if err != nil {
			return res, err
		}
	}

	if _, err = s.resourceSvc.GetModel(ctx, req.ResourceID); err != nil {
		return res, err
	}

	alternatives, err := s.resourceSvc.Alternatives(ctx, req.ResourceID)
	if err != nil {
		return res, err
	}

	res = dto.CheckAvailabilityResponse{
		ResourceID: req.ResourceID,
		StartTime:  req.StartTime,
		Duration:   req.Duration,
		Dates:      make([]dto.DateReport, len(dates)),
	}

	for i, date := range dates {
		res.Dates[i] = s.resolveDate(ctx, req.ResourceID, date, req.StartTime, req.Duration, alternatives)
	}

	return res, nil
}

func (s *serviceImpl) CreateGroup(ctx context.Context, req dto.CreateGroupRequest) (res dto.CreateGroupResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateGroup")
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

	price, err := s.resourceSvc.PriceForDuration(ctx, req.ResourceID, req.Duration)
	if err != nil {
		return res, err
	}

	if req.InitialPayment > 0 && req.InitialPayment < price {
		return res, failure.BadRequestFromString("initial payment does not cover one occurrence") // nolint:wrapcheck
	}

	dates, err := OccurrenceDates(req.StartDate, req.TotalWeeks)
	if err != nil {
		return res, err
	}

	alternatives, err := s.resourceSvc.Alternatives(ctx, req.ResourceID)
	if err != nil {
		return res, err
	}

	overrides := make(map[string]dto.DateConfiguration, len(req.DateConfigurations))
	for _, cfg := range req.DateConfigurations {
		overrides[cfg.Date] = cfg
	}

	assignments := make([]struct {
		date       string
		resourceID string
	}, 0, len(dates))

	for _, date := range dates {
		override, hasOverride := overrides[date]
		if hasOverride && override.Skip {
			continue
		}

		if hasOverride && override.ResourceID != constant.Empty {
			conflict, conflictErr := s.bookingSvc.HasConflict(ctx, override.ResourceID, date, req.StartTime, req.Duration, constant.Empty)
			if conflictErr != nil {
				return res, conflictErr
			}

			if conflict {
				return res, failure.Conflict(fmt.Sprintf("requested resource is not free on %s", date)) // nolint:wrapcheck
			}

			assignments = append(assignments, struct {
				date       string
				resourceID string
			}{date, override.ResourceID})

			continue
		}

		report := s.resolveDate(ctx, req.ResourceID, date, req.StartTime, req.Duration, alternatives)
		if report.Unresolved {
			// Skipped rather than force-booked.
			continue
		}

		assignments = append(assignments, struct {
			date       string
			resourceID string
		}{date, report.SelectedResourceID})
	}

	if len(assignments) == 0 {
		return res, failure.BadRequestFromString("no available dates for the requested series") // nolint:wrapcheck
	}

	startMinutes, err := timeslot.ToMinutes(req.StartTime)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	endTime := timeslot.FormatMinutes(startMinutes + req.Duration)

	startDay, err := timezone.Parse(constant.DateOnlyFormat, req.StartDate)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	group := req.ToModel(user, endTime, resource.Sport, int(startDay.Weekday()), len(assignments), price)

	now := timezone.Now()
	pendingStatus := constant.RecurringPaymentPending
	bookings := make([]bookingModel.Booking, len(assignments))

	for i, assignment := range assignments {
		sequence := i + 1
		recurringPayment := pendingStatus

		bookings[i] = bookingModel.Booking{
			ID:                     uuid.NewString(),
			ResourceID:             assignment.resourceID,
			ClientID:               user,
			BookingDate:            assignment.date,
			StartTime:              req.StartTime,
			EndTime:                endTime,
			DurationMinutes:        req.Duration,
			Status:                 constant.BookingStatusPending,
			PaymentStatus:          constant.PaymentStatusUnpaid,
			TotalAmount:            price,
			RecurringGroupID:       &group.ID,
			RecurringSequence:      &sequence,
			RecurringPaymentStatus: &recurringPayment,
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}
	}

	var entry *ledgerModel.Entry

	if req.InitialPayment > 0 {
		paidStatus := constant.RecurringPaymentPaid
		bookings[0].RecurringPaymentStatus = &paidStatus
		bookings[0].PaymentStatus = constant.PaymentStatusPaid
		bookings[0].PaidAmount = req.InitialPayment

		group.PaidBookingsCount = 1
		group.TotalPaid = req.InitialPayment

		entry = paymentEntry(bookings[0].ID, group.ID, req.InitialPayment, req.PaymentMethod, user,
			fmt.Sprintf("initial payment for recurring series starting %s", req.StartDate))
	}

	if err = s.repo.CreateGroup(ctx, group, bookings, entry); err != nil {
		log.Error().Err(err).Msg("failed to create recurring group")

		return res, err
	}

	bookingIDs := make([]string, len(bookings))
	for i := range bookings {
		bookingIDs[i] = bookings[i].ID
	}

	// The occurrence rows changed booking availability behind the booking
	// service's back; its cached reads must not outlive them.
	s.bookingSvc.InvalidateCaches(ctx, bookingIDs...)

	s.publisher.PublishRecurring(ctx, events.TypeRecurringCreated, events.RecurringPayload{
		GroupID:    group.ID,
		ResourceID: group.ResourceID,
		Booked:     len(bookings),
		Skipped:    len(dates) - len(bookings),
		BookingIDs: bookingIDs,
	})

	res.Group.FromModel(group)
	res.Bookings = make([]bookingDto.BookingResponse, len(bookings))

	for i := range bookings {
		res.Bookings[i].FromModel(bookings[i])
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.GetGroupResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	group, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	bookings, err := s.repo.ListBookings(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to list group bookings")

		return res, fmt.Errorf("failed to list group bookings: %w", err)
	}

	res.Group.FromModel(group)
	res.Bookings = make([]bookingDto.BookingResponse, len(bookings))

	for i := range bookings {
		res.Bookings[i].FromModel(bookings[i])
	}

	return res, nil
}

// PayNextOccurrence marks the explicit target booking, or the earliest-dated
// occurrence still pending payment, as paid. Paying a group with no pending
// occurrence fails with NotFound, which makes double payment idempotent to
// detect for the caller.
func (s *serviceImpl) PayNextOccurrence(ctx context.Context, groupID string, req dto.PayOccurrenceRequest) (res bookingDto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PayNextOccurrence")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	group, err := s.load(ctx, groupID)
	if err != nil {
		return res, err
	}

	if group.Status == constant.GroupStatusCancelled {
		return res, failure.BadRequestFromString("group is cancelled") // nolint:wrapcheck
	}

	bookings, err := s.repo.ListBookings(ctx, groupID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list group bookings")

		return res, fmt.Errorf("failed to list group bookings: %w", err)
	}

	target := pickPayable(bookings, req.BookingID)
	if target == nil {
		return res, failure.NotFound("no pending occurrence to pay") // nolint:wrapcheck
	}

	entry := paymentEntry(target.ID, groupID, req.Amount, req.Method, user,
		fmt.Sprintf("payment for occurrence on %s", target.BookingDate))

	if err = s.repo.PayOccurrence(ctx, target.ID, groupID, req.Amount, user, *entry); err != nil {
		if failure.IsNotFound(err) {
			return res, err
		}

		log.Error().Err(err).Msg("failed to register occurrence payment")

		return res, fmt.Errorf("failed to register occurrence payment: %w", err)
	}

	s.bookingSvc.InvalidateCaches(ctx, target.ID)

	s.publisher.PublishRecurring(ctx, events.TypeRecurringPaid, events.RecurringPayload{
		GroupID:    groupID,
		ResourceID: group.ResourceID,
		BookingIDs: []string{target.ID},
	})

	paid := constant.RecurringPaymentPaid
	target.RecurringPaymentStatus = &paid
	target.PaymentStatus = constant.PaymentStatusPaid
	target.PaidAmount += req.Amount

	res.FromModel(*target)

	return res, nil
}

// Cancel cancels part or all of a series. single cancels exactly the
// referenced booking, from_date every active occurrence on or after the
// reference date, all_pending every remaining active occurrence from today
// forward. When no active future occurrence remains the group itself
// becomes cancelled. The refund estimate reports money; it does not move it.
func (s *serviceImpl) Cancel(ctx context.Context, groupID string, req dto.CancelGroupRequest) (res dto.CancelGroupResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	group, err := s.load(ctx, groupID)
	if err != nil {
		return res, err
	}

	if group.Status == constant.GroupStatusCancelled {
		return res, failure.BadRequestFromString("group is already cancelled") // nolint:wrapcheck
	}

	bookings, err := s.repo.ListBookings(ctx, groupID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list group bookings")

		return res, fmt.Errorf("failed to list group bookings: %w", err)
	}

	selected, err := selectForCancellation(bookings, req.Mode, req.Reference)
	if err != nil {
		return res, err
	}

	if len(selected) == 0 {
		return res, failure.NotFound("no active occurrences to cancel") // nolint:wrapcheck
	}

	selectedIDs := make(map[string]bool, len(selected))
	paidCancelled := 0

	for _, booking := range selected {
		selectedIDs[booking.ID] = true

		if booking.RecurringPaymentStatus != nil && *booking.RecurringPaymentStatus == constant.RecurringPaymentPaid {
			paidCancelled++
		}
	}

	today := timezone.Now().Format(constant.DateOnlyFormat)

	groupStatus := group.Status

	if !hasActiveOnOrAfter(bookings, today, selectedIDs) {
		groupStatus = constant.GroupStatusCancelled
	}

	ids := make([]string, len(selected))
	for i, booking := range selected {
		ids[i] = booking.ID
	}

	cancelled, err := s.repo.CancelOccurrences(ctx, ids, groupID, groupStatus, req.Reason, user)
	if err != nil {
		if failure.IsNotFound(err) {
			return res, err
		}

		log.Error().Err(err).Msg("failed to cancel occurrences")

		return res, fmt.Errorf("failed to cancel occurrences: %w", err)
	}

	s.bookingSvc.InvalidateCaches(ctx, ids...)

	s.publisher.PublishRecurring(ctx, events.TypeRecurringCancelled, events.RecurringPayload{
		GroupID:    groupID,
		ResourceID: group.ResourceID,
		Status:     groupStatus,
		BookingIDs: ids,
	})

	group.CancelledOccurrences += cancelled
	group.Status = groupStatus

	res.Group.FromModel(group)
	res.CancelledBookings = ids
	res.RefundEstimate = dto.RefundEstimate{
		Amount: float64(paidCancelled) * group.PricePerBooking,
		Policy: s.refundPolicy(ctx, group.ResourceID),
	}

	return res, nil
}

func (s *serviceImpl) load(ctx context.Context, id string) (model.Group, error) {
	group, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get recurring group")

		return group, fmt.Errorf("failed to get recurring group: %w", err)
	}

	if group.ID == constant.Empty {
		return group, failure.NotFound("recurring group not found") // nolint:wrapcheck
	}

	return group, nil
}

// resolveDate checks one date against the primary resource, falling back to
// the first free alternative of the same sport.
func (s *serviceImpl) resolveDate(ctx context.Context, primaryID, date, startTime string, duration int, alternatives []resourceModel.Resource) dto.DateReport {
	report := dto.DateReport{Date: date}

	conflict, err := s.bookingSvc.HasConflict(ctx, primaryID, date, startTime, duration, constant.Empty)
	if err != nil {
		log.Warn().Err(err).Str("date", date).Msg("availability check failed for date")

		report.Unresolved = true

		return report
	}

	if !conflict {
		report.Available = true
		report.SelectedResourceID = primaryID

		return report
	}

	report.Alternatives = make([]dto.AlternativeOption, 0, len(alternatives))

	for _, alternative := range alternatives {
		altConflict, altErr := s.bookingSvc.HasConflict(ctx, alternative.ID, date, startTime, duration, constant.Empty)
		free := altErr == nil && !altConflict

		report.Alternatives = append(report.Alternatives, dto.AlternativeOption{
			ResourceID: alternative.ID,
			Name:       alternative.Name,
			Available:  free,
		})

		if free && report.SelectedResourceID == constant.Empty {
			report.Available = true
			report.SelectedResourceID = alternative.ID
		}
	}

	if report.SelectedResourceID == constant.Empty {
		report.Unresolved = true
	}

	return report
}

func (s *serviceImpl) refundPolicy(ctx context.Context, resourceID string) string {
	resource, err := s.resourceSvc.GetModel(ctx, resourceID)
	if err != nil {
		return constant.RecurringRefundPolicyNone
	}

	policy, err := s.establishment.Policy(ctx, resource.EstablishmentID)
	if err != nil || policy.RecurringRefundPolicy == constant.Empty {
		return constant.RecurringRefundPolicyNone
	}

	return policy.RecurringRefundPolicy
}

func pickPayable(bookings []bookingModel.Booking, targetID string) *bookingModel.Booking {
	var earliest *bookingModel.Booking

	for i := range bookings {
		booking := &bookings[i]

		if booking.Status == constant.BookingStatusCancelled {
			continue
		}

		if booking.RecurringPaymentStatus == nil || *booking.RecurringPaymentStatus != constant.RecurringPaymentPending {
			continue
		}

		if targetID != constant.Empty {
			if booking.ID == targetID {
				return booking
			}

			continue
		}

		if earliest == nil || booking.BookingDate < earliest.BookingDate {
			earliest = booking
		}
	}

	return earliest
}

func selectForCancellation(bookings []bookingModel.Booking, mode, reference string) ([]bookingModel.Booking, error) {
	cancellable := func(b *bookingModel.Booking) bool {
		return b.Status == constant.BookingStatusPending || b.Status == constant.BookingStatusConfirmed
	}

	var selected []bookingModel.Booking

	switch mode {
	case constant.CancelModeSingle:
		for i := range bookings {
			if bookings[i].ID == reference {
				if !cancellable(&bookings[i]) {
					return nil, failure.BadRequestFromString(fmt.Sprintf("cannot cancel a %s occurrence", bookings[i].Status)) // nolint:wrapcheck
				}

				return []bookingModel.Booking{bookings[i]}, nil
			}
		}

		return nil, failure.NotFound("occurrence not found in group") // nolint:wrapcheck
	case constant.CancelModeFromDate:
		if _, err := timezone.Parse(constant.DateOnlyFormat, reference); err != nil {
			return nil, failure.BadRequestFromString("reference must be a date in YYYY-MM-DD format") // nolint:wrapcheck
		}

		for i := range bookings {
			if cancellable(&bookings[i]) && bookings[i].BookingDate >= reference {
				selected = append(selected, bookings[i])
			}
		}

		return selected, nil
	case constant.CancelModeAllPending:
		today := timezone.Now().Format(constant.DateOnlyFormat)

		for i := range bookings {
			if cancellable(&bookings[i]) && bookings[i].BookingDate >= today {
				selected = append(selected, bookings[i])
			}
		}

		return selected, nil
	default:
		return nil, failure.BadRequestFromString("unknown cancellation mode") // nolint:wrapcheck
	}
}

// hasActiveOnOrAfter reports whether any booking outside the excluded set is
// still active on or after the given date.
func hasActiveOnOrAfter(bookings []bookingModel.Booking, date string, excluded map[string]bool) bool {
	for i := range bookings {
		booking := &bookings[i]

		if excluded[booking.ID] || booking.Status == constant.BookingStatusCancelled || booking.Status == constant.BookingStatusCompleted {
			continue
		}

		if booking.BookingDate >= date {
			return true
		}
	}

	return false
}

func paymentEntry(bookingID, groupID string, amount float64, method, user, description string) *ledgerModel.Entry {
	if method == constant.Empty {
		method = "cash"
	}

	now := timezone.Now()

	return &ledgerModel.Entry{
		ID:               uuid.NewString(),
		BookingID:        &bookingID,
		RecurringGroupID: &groupID,
		Amount:           amount,
		Method:           method,
		Direction:        ledgerModel.DirectionIn,
		Description:      description,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

package recurring

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"courtside/infras/otel"
	"courtside/internal/domains/recurring/model/dto"
	"courtside/internal/domains/recurring/service"
	"courtside/shared/constant"
	"courtside/shared/validator"
	"courtside/transport/http/response"
)

type Handler struct {
	service service.Recurring
	otel    otel.Otel
}

func New(service service.Recurring, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/recurring-groups", func(routerGroup chi.Router) {
		routerGroup.Post("/check-availability", handler.CheckAvailability)
		routerGroup.Post("/", handler.CreateGroup)
		routerGroup.Get("/{id}", handler.GetGroupByID)
		routerGroup.Post("/{id}/payments", handler.PayOccurrence)
		routerGroup.Post("/{id}/cancel", handler.CancelGroup)
	})
}

// CheckAvailability reports, date by date, whether a weekly series fits.
// @Summary Check availability for a recurring series
// @Description Report availability for every occurrence of a proposed weekly series, suggesting alternative resources where the primary one is taken.
// @Tags Recurring
// @Accept json
// @Produce json
// @Param request body dto.CheckAvailabilityRequest true "Check Availability Request"
// @Success 200 {object} response.Data[dto.CheckAvailabilityResponse] "Per-date availability report"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/recurring-groups/check-availability [post]
// @Security BearerAuth
func (handler *Handler) CheckAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	req := dto.CheckAvailabilityRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.CheckAvailability(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check recurring availability")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Recurring availability checked successfully")

	response.WithJSON(writer, http.StatusOK, res)
}

// CreateGroup books a whole weekly series in one transaction.
// @Summary Create a recurring booking group
// @Description Create a weekly series of bookings, skipping or reassigning individual dates as configured.
// @Tags Recurring
// @Accept json
// @Produce json
// @Param request body dto.CreateGroupRequest true "Create Group Request"
// @Success 201 {object} response.Data[dto.CreateGroupResponse] "Recurring group created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/recurring-groups [post]
// @Security BearerAuth
func (handler *Handler) CreateGroup(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGroup")
	defer scope.End()

	req := dto.CreateGroupRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.CreateGroup(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create recurring group")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Recurring group created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetGroupByID retrieves a recurring group and its bookings.
// @Summary Get a recurring group by ID
// @Description Retrieve a recurring group together with all of its occurrence bookings.
// @Tags Recurring
// @Accept json
// @Produce json
// @Param id path string true "Recurring Group ID"
// @Success 200 {object} response.Data[dto.GetGroupResponse] "Recurring group details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/recurring-groups/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetGroupByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGroupByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	group, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get recurring group by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Recurring group retrieved successfully")

	response.WithJSON(w, http.StatusOK, group)
}

// PayOccurrence records a payment against the next (or a chosen) occurrence.
// @Summary Pay a recurring occurrence
// @Description Record a payment for the earliest unpaid occurrence, or for a specific booking when one is named.
// @Tags Recurring
// @Accept json
// @Produce json
// @Param id path string true "Recurring Group ID"
// @Param request body dto.PayOccurrenceRequest true "Pay Occurrence Request"
// @Success 200 {object} response.Data[bookingDto.BookingResponse] "Occurrence paid successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/recurring-groups/{id}/payments [post]
// @Security BearerAuth
func (handler *Handler) PayOccurrence(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PayOccurrence")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.PayOccurrenceRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.PayNextOccurrence(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to pay recurring occurrence")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Recurring occurrence paid successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}

// CancelGroup cancels part or all of a recurring series.
// @Summary Cancel recurring occurrences
// @Description Cancel a single occurrence, every occurrence from a date onward, or all pending occurrences of a group, returning a refund estimate.
// @Tags Recurring
// @Accept json
// @Produce json
// @Param id path string true "Recurring Group ID"
// @Param request body dto.CancelGroupRequest true "Cancel Group Request"
// @Success 200 {object} response.Data[dto.CancelGroupResponse] "Occurrences cancelled successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/recurring-groups/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelGroup(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelGroup")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.CancelGroupRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Cancel(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel recurring occurrences")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Recurring occurrences cancelled successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}

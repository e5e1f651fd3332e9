package establishment

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"courtside/infras/otel"
	"courtside/internal/domains/establishment/service"
	"courtside/shared/constant"
	"courtside/transport/http/response"
)

type Handler struct {
	service service.Establishment
	otel    otel.Otel
}

func New(service service.Establishment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/establishments", func(routerGroup chi.Router) {
		routerGroup.Get("/{id}", handler.GetEstablishmentByID)
	})
}

// GetEstablishmentByID retrieves an establishment by its ID.
// @Summary Get an establishment by ID
// @Description Retrieve an establishment with its cancellation and refund policies.
// @Tags Establishment
// @Accept json
// @Produce json
// @Param id path string true "Establishment ID"
// @Success 200 {object} response.Data[dto.EstablishmentResponse] "Establishment details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/establishments/{id} [get]
func (handler *Handler) GetEstablishmentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEstablishmentByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	establishment, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get establishment by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Establishment retrieved successfully")

	response.WithJSON(w, http.StatusOK, establishment)
}

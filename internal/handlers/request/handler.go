package request

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"shareit/infras/otel"
	"shareit/internal/domains/request/model/dto"
	"shareit/internal/domains/request/service"
	"shareit/shared/constant"
	gDto "shareit/shared/dto"
	"shareit/shared/validator"
	"shareit/transport/http/response"
)

type Handler struct {
	service service.Request
	otel    otel.Otel
}

func New(service service.Request, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/requests", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRequest)
		routerGroup.Get("/", handler.GetMyRequests)
		routerGroup.Get("/all", handler.GetOtherRequests)
		routerGroup.Get("/{id}", handler.GetRequestByID)
	})
}

// CreateRequest posts a want-ad for an item.
// @Summary Create an item request
// @Tags Request
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Calling user id"
// @Param request body dto.CreateRequestRequest true "Create Request"
// @Success 201 {object} response.Data[dto.RequestResponse] "Request created"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/requests [post]
func (handler *Handler) CreateRequest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRequest")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	req := dto.CreateRequestRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req, user)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create item request")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetMyRequests lists the caller's requests, newest first, with responses.
// @Summary List own item requests
// @Tags Request
// @Produce json
// @Param X-Sharer-User-Id header string true "Calling user id"
// @Success 200 {object} response.Data[dto.GetRequestsResponse] "Requests"
// @Failure 404 {object} response.Error
// @Router /v1/requests [get]
func (handler *Handler) GetMyRequests(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyRequests")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	res, err := handler.service.GetMine(ctx, user)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get item requests")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetOtherRequests pages through requests posted by other users.
// @Summary List other users' item requests
// @Tags Request
// @Produce json
// @Param X-Sharer-User-Id header string true "Calling user id"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetRequestsResponse] "Requests"
// @Failure 404 {object} response.Error
// @Router /v1/requests/all [get]
func (handler *Handler) GetOtherRequests(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOtherRequests")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	res, err := handler.service.GetOthers(ctx, user, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get item requests")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetRequestByID retrieves one request with the items offered against it.
// @Summary Get an item request by id
// @Tags Request
// @Produce json
// @Param X-Sharer-User-Id header string true "Calling user id"
// @Param id path string true "Request ID"
// @Success 200 {object} response.Data[dto.RequestResponse] "Request"
// @Failure 404 {object} response.Error
// @Router /v1/requests/{id} [get]
func (handler *Handler) GetRequestByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRequestByID")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id, user)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get item request")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

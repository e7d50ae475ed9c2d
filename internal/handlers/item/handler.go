package item

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"shareit/infras/otel"
	"shareit/internal/domains/item/model/dto"
	"shareit/internal/domains/item/service"
	"shareit/shared/constant"
	gDto "shareit/shared/dto"
	"shareit/shared/validator"
	"shareit/transport/http/response"
)

type Handler struct {
	service service.Item
	otel    otel.Otel
}

func New(service service.Item, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/items", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateItem)
		routerGroup.Get("/", handler.GetMyItems)
		routerGroup.Get("/search", handler.SearchItems)
		routerGroup.Get("/{id}", handler.GetItemByID)
		routerGroup.Patch("/{id}", handler.UpdateItem)
		routerGroup.Delete("/{id}", handler.DeleteItem)
		routerGroup.Post("/{id}/comment", handler.AddComment)
	})
}

// CreateItem lists a new item owned by the calling user.
// @Summary Create a new item
// @Tags Item
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Calling user id"
// @Param request body dto.CreateItemRequest true "Create Item Request"
// @Success 201 {object} response.Data[dto.ItemResponse] "Item created"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/items [post]
func (handler *Handler) CreateItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateItem")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	req := dto.CreateItemRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req, user)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create item")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetMyItems lists the calling user's items, each with its booking projections.
// @Summary List own items
// @Tags Item
// @Produce json
// @Param X-Sharer-User-Id header string true "Calling user id"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetItemsResponse] "Items"
// @Failure 404 {object} response.Error
// @Router /v1/items [get]
func (handler *Handler) GetMyItems(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyItems")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	res, err := handler.service.GetByOwner(ctx, user, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get items")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// SearchItems finds available items by text.
// @Summary Search available items
// @Description Case-insensitive match on name or description. An empty text yields an empty result.
// @Tags Item
// @Produce json
// @Param text query string false "Search text"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetItemsResponse] "Items"
// @Failure 500 {object} response.Error
// @Router /v1/items/search [get]
func (handler *Handler) SearchItems(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchItems")
	defer scope.End()

	text := request.URL.Query().Get(constant.RequestParamText)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	res, err := handler.service.Search(ctx, text, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search items")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetItemByID retrieves one item with comments; owners also get booking projections.
// @Summary Get an item by id
// @Tags Item
// @Produce json
// @Param X-Sharer-User-Id header string true "Calling user id"
// @Param id path string true "Item ID"
// @Success 200 {object} response.Data[dto.ItemResponse] "Item"
// @Failure 404 {object} response.Error
// @Router /v1/items/{id} [get]
func (handler *Handler) GetItemByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItemByID")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id, user)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get item")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateItem partially updates an owned item.
// @Summary Update an item
// @Description Update name, description or availability. Only the owner may update.
// @Tags Item
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Calling user id"
// @Param id path string true "Item ID"
// @Param request body dto.UpdateItemRequest true "Update Item Request"
// @Success 200 {object} response.Data[dto.ItemResponse] "Item updated"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/items/{id} [patch]
func (handler *Handler) UpdateItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateItem")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdateItemRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Update(ctx, req, id, user)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update item")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// DeleteItem removes an owned item.
// @Summary Delete an item
// @Tags Item
// @Produce json
// @Param X-Sharer-User-Id header string true "Calling user id"
// @Param id path string true "Item ID"
// @Success 200 {object} response.Message "Item deleted"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/items/{id} [delete]
func (handler *Handler) DeleteItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteItem")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id, user); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete item")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Item deleted successfully")
}

// AddComment leaves a comment on an item the caller has rented before.
// @Summary Comment on an item
// @Description Only a user with a finished approved booking of the item may comment.
// @Tags Item
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Calling user id"
// @Param id path string true "Item ID"
// @Param request body dto.CreateCommentRequest true "Create Comment Request"
// @Success 201 {object} response.Data[dto.CommentResponse] "Comment created"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/items/{id}/comment [post]
func (handler *Handler) AddComment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddComment")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.CreateCommentRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.AddComment(ctx, req, id, user)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add comment")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

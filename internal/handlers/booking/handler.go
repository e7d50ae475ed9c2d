package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"shareit/infras/otel"
	"shareit/internal/domains/booking/model/dto"
	"shareit/internal/domains/booking/service"
	"shareit/shared"
	"shareit/shared/constant"
	"shareit/shared/failure"
	"shareit/shared/validator"
	"shareit/transport/http/response"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetMyBookings)
		routerGroup.Get("/owner", handler.GetOwnerBookings)
		routerGroup.Get("/users/{userId}", handler.GetUserBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Patch("/{id}", handler.DecideBooking)
	})
}

// CreateBooking places a new booking for the calling user.
// @Summary Create a new booking
// @Description Book an item for a period. The caller becomes the booker and the booking starts in WAITING.
// @Tags Booking
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Calling user id"
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking created"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req, user)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// DecideBooking approves or rejects a waiting booking.
// @Summary Approve or reject a booking
// @Description Only the owner of the booked item may decide. A booking can be decided once.
// @Tags Booking
// @Produce json
// @Param X-Sharer-User-Id header string true "Calling user id"
// @Param id path string true "Booking ID"
// @Param approved query bool true "true to approve, false to reject"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking decided"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id} [patch]
func (handler *Handler) DecideBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DecideBooking")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	id := chi.URLParam(request, constant.RequestParamID)

	approved := shared.ConvertStringToBool(request.URL.Query().Get(constant.RequestParamApproved))
	if approved == nil {
		err := failure.BadRequestFromString("approved query parameter is required")
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Decide(ctx, id, *approved, user)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decide booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking decided by user " + user)

	response.WithJSON(writer, http.StatusOK, res)
}

// GetBookingByID retrieves a single booking.
// @Summary Get a booking by id
// @Description Retrieve one booking. The booking id acts as a capability reference, so no ownership check applies.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking"
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [get]
func (handler *Handler) GetBookingByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetMyBookings lists the calling user's bookings.
// @Summary List my bookings
// @Description List bookings where the caller is the booker, optionally narrowed by temporal state.
// @Tags Booking
// @Produce json
// @Param X-Sharer-User-Id header string true "Calling user id"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "Bookings"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings [get]
func (handler *Handler) GetMyBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyBookings")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	state := request.URL.Query().Get(constant.RequestParamState)

	res, err := handler.service.GetByBooker(ctx, user, user, state)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetUserBookings lists bookings of an explicit user.
// @Summary List bookings of a user
// @Description List bookings where the given user is the booker. The caller must be that same user.
// @Tags Booking
// @Produce json
// @Param X-Sharer-User-Id header string true "Calling user id"
// @Param userId path string true "Subject user id"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "Bookings"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/users/{userId} [get]
func (handler *Handler) GetUserBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUserBookings")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	subject := chi.URLParam(request, "userId")
	state := request.URL.Query().Get(constant.RequestParamState)

	res, err := handler.service.GetByBooker(ctx, subject, user, state)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetOwnerBookings lists bookings against the caller's items.
// @Summary List bookings for owned items
// @Description List bookings of every item the caller owns, optionally narrowed by temporal state.
// @Tags Booking
// @Produce json
// @Param X-Sharer-User-Id header string true "Calling user id"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "Bookings"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/owner [get]
func (handler *Handler) GetOwnerBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOwnerBookings")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	state := request.URL.Query().Get(constant.RequestParamState)

	res, err := handler.service.GetByItemOwner(ctx, user, state)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

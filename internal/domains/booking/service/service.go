package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"shareit/config"
	"shareit/infras/kafka"
	"shareit/infras/otel"
	"shareit/internal/domains/booking/model"
	"shareit/internal/domains/booking/model/dto"
	"shareit/internal/domains/booking/repository"
	itemModel "shareit/internal/domains/item/model"
	itemRepo "shareit/internal/domains/item/repository"
	userModel "shareit/internal/domains/user/model"
	userRepo "shareit/internal/domains/user/repository"
	"shareit/shared"
	"shareit/shared/cache"
	"shareit/shared/clock"
	"shareit/shared/constant"
	"shareit/shared/failure"
	"shareit/shared/keylock"
)

const (
	cacheGetBooking = "booking:get"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest, bookerID string) (dto.BookingResponse, error)
	Decide(ctx context.Context, bookingID string, approved bool, requesterID string) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetByBooker(ctx context.Context, subjectID, requesterID, state string) (dto.GetBookingsResponse, error)
	GetByItemOwner(ctx context.Context, ownerID, state string) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	repo     repository.Booking
	items    itemRepo.Item
	users    userRepo.User
	cfg      *config.Config
	cache    cache.RedisCache
	producer kafka.Client
	clock    clock.Clock
	locks    *keylock.KeyLock
	otel     otel.Otel
}

func New(
	repo repository.Booking,
	items itemRepo.Item,
	users userRepo.User,
	cfg *config.Config,
	redisCache cache.RedisCache,
	producer kafka.Client,
	clk clock.Clock,
	locks *keylock.KeyLock,
	otl otel.Otel,
) Booking {
	return &serviceImpl{
		repo:     repo,
		items:    items,
		users:    users,
		cfg:      cfg,
		cache:    redisCache,
		producer: producer,
		clock:    clk,
		locks:    locks,
		otel:     otl,
	}
}

func isExclusionViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeExclusionViolation
}

func (s *serviceImpl) publishEvent(ctx context.Context, event string, booking model.Booking) {
	if !s.cfg.Events.Kafka.Enable {
		return
	}

	message := kafka.Message{
		Key:   booking.ID,
		Value: dto.NewBookingEvent(event, booking, s.clock.Now()),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.producer.SendMessages(c, s.cfg.Events.Kafka.BookingTopic, message); err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Str("event", event).Msg("failed to publish booking event")
		}
	}()
}

func (s *serviceImpl) resolveItem(ctx context.Context, itemID string) (itemModel.Item, error) {
	item, err := s.items.Get(ctx, shared.FilterByID(itemID, itemModel.FieldID, itemModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get item")

		return item, fmt.Errorf("failed to get item: %w", err)
	}

	if item.ID == "" {
		return item, failure.NotFound("item not found")
	}

	return item, nil
}

func (s *serviceImpl) ensureUserExists(ctx context.Context, userID, entity string) error {
	exists, err := s.users.Exist(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if !exists {
		return failure.NotFound(entity + " not found")
	}

	return nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest, bookerID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := s.clock.Now()

	if err = s.ensureUserExists(ctx, bookerID, "booker"); err != nil {
		return res, err
	}

	item, err := s.resolveItem(ctx, req.ItemID)
	if err != nil {
		return res, err
	}

	if !item.Available {
		return res, failure.BadRequestFromString("item is not available for booking")
	}

	if req.Start.Before(now) {
		return res, failure.BadRequestFromString("booking cannot start in the past")
	}

	// hold the per-item lock across check and insert so two concurrent
	// creations cannot both observe "no overlap"
	s.locks.Lock(item.ID)
	defer s.locks.Unlock(item.ID)

	overlap, err := s.repo.ExistApprovedOverlap(ctx, item.ID, req.Start, req.End)
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking overlap")

		return res, fmt.Errorf("failed to check booking overlap: %w", err)
	}

	if overlap {
		return res, failure.BadRequestFromString("item is already booked for this period")
	}

	booking := req.ToModel(bookerID, now)

	if err = s.repo.Insert(ctx, booking); err != nil {
		if isExclusionViolation(err) {
			return res, failure.BadRequestFromString("item is already booked for this period")
		}

		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.FromModel(booking)

	s.publishEvent(ctx, dto.EventBookingCreated, booking)

	return res, nil
}

func (s *serviceImpl) Decide(ctx context.Context, bookingID string, approved bool, requesterID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Decide")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == "" {
		return res, failure.NotFound("booking not found")
	}

	item, err := s.resolveItem(ctx, booking.ItemID)
	if err != nil {
		return res, err
	}

	if item.OwnerID != requesterID {
		return res, failure.Forbidden("only the item owner may decide a booking")
	}

	status := model.StatusRejected
	if approved {
		status = model.StatusApproved
	}

	s.locks.Lock(item.ID)
	defer s.locks.Unlock(item.ID)

	if approved {
		// approving must not break the no-overlap invariant against
		// bookings approved since this one was created
		overlap, err := s.repo.ExistApprovedOverlap(ctx, item.ID, booking.Start, booking.End)
		if err != nil {
			log.Error().Err(err).Msg("failed to check booking overlap")

			return res, fmt.Errorf("failed to check booking overlap: %w", err)
		}

		if overlap {
			return res, failure.BadRequestFromString("item is already booked for this period")
		}
	}

	updated, err := s.repo.UpdateStatusIfWaiting(ctx, bookingID, status, requesterID)
	if err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return res, fmt.Errorf("failed to update booking status: %w", err)
	}

	if !updated {
		return res, failure.Conflict("booking has already been decided")
	}

	booking.Status = status
	res.FromModel(booking)

	event := dto.EventBookingRejected
	if approved {
		event = dto.EventBookingApproved
	}

	s.publishEvent(ctx, event, booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, bookingID)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == "" {
		return res, failure.NotFound("booking not found")
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

func (s *serviceImpl) GetByBooker(ctx context.Context, subjectID, requesterID, state string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetByBooker")
	defer scope.End()
	defer scope.TraceIfError(err)

	if subjectID != requesterID {
		return res, failure.Forbidden("bookings may only be listed by their booker")
	}

	parsed, err := model.ParseState(state)
	if err != nil {
		return res, err
	}

	if err = s.ensureUserExists(ctx, subjectID, "user"); err != nil {
		return res, err
	}

	bookings, err := s.repo.GetByBooker(ctx, subjectID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings by booker")

		return res, fmt.Errorf("failed to get bookings by booker: %w", err)
	}

	res.FromModels(model.FilterByState(bookings, parsed, s.clock.Now()))

	return res, nil
}

func (s *serviceImpl) GetByItemOwner(ctx context.Context, ownerID, state string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetByItemOwner")
	defer scope.End()
	defer scope.TraceIfError(err)

	parsed, err := model.ParseState(state)
	if err != nil {
		return res, err
	}

	if err = s.ensureUserExists(ctx, ownerID, "user"); err != nil {
		return res, err
	}

	bookings, err := s.repo.GetByItemOwner(ctx, ownerID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings by item owner")

		return res, fmt.Errorf("failed to get bookings by item owner: %w", err)
	}

	res.FromModels(model.FilterByState(bookings, parsed, s.clock.Now()))

	return res, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"shareit/config"
	"shareit/infras/otel"
	bookingRepo "shareit/internal/domains/booking/repository"
	"shareit/internal/domains/item/model"
	"shareit/internal/domains/item/model/dto"
	"shareit/internal/domains/item/repository"
	requestModel "shareit/internal/domains/request/model"
	requestRepo "shareit/internal/domains/request/repository"
	userModel "shareit/internal/domains/user/model"
	userRepo "shareit/internal/domains/user/repository"
	"shareit/shared"
	"shareit/shared/cache"
	"shareit/shared/clock"
	"shareit/shared/constant"
	gDto "shareit/shared/dto"
	"shareit/shared/failure"
)

const (
	cacheSearchItem = "item:search"
)

type Item interface {
	Create(ctx context.Context, req dto.CreateItemRequest, ownerID string) (dto.ItemResponse, error)
	Update(ctx context.Context, req dto.UpdateItemRequest, itemID, requesterID string) (dto.ItemResponse, error)
	Get(ctx context.Context, itemID, requesterID string) (dto.ItemResponse, error)
	GetByOwner(ctx context.Context, ownerID string, params gDto.QueryParams) (dto.GetItemsResponse, error)
	Search(ctx context.Context, text string, params gDto.QueryParams) (dto.GetItemsResponse, error)
	Delete(ctx context.Context, itemID, requesterID string) error
	AddComment(ctx context.Context, req dto.CreateCommentRequest, itemID, authorID string) (dto.CommentResponse, error)
}

type serviceImpl struct {
	repo     repository.Item
	comments repository.Comment
	users    userRepo.User
	bookings bookingRepo.Booking
	requests requestRepo.Request
	cfg      *config.Config
	cache    cache.RedisCache
	clock    clock.Clock
	otel     otel.Otel
}

func New(
	repo repository.Item,
	comments repository.Comment,
	users userRepo.User,
	bookings bookingRepo.Booking,
	requests requestRepo.Request,
	cfg *config.Config,
	redisCache cache.RedisCache,
	clk clock.Clock,
	otl otel.Otel,
) Item {
	return &serviceImpl{
		repo:     repo,
		comments: comments,
		users:    users,
		bookings: bookings,
		requests: requests,
		cfg:      cfg,
		cache:    redisCache,
		clock:    clk,
		otel:     otl,
	}
}

func (s *serviceImpl) ensureUserExists(ctx context.Context, userID string) error {
	exists, err := s.users.Exist(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if !exists {
		return failure.NotFound("user not found")
	}

	return nil
}

func (s *serviceImpl) ensureRequestExists(ctx context.Context, requestID string) error {
	exists, err := s.requests.Exist(ctx, shared.FilterByID(requestID, requestModel.FieldID, requestModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if request exists")

		return fmt.Errorf("failed to check if request exists: %w", err)
	}

	if !exists {
		return failure.NotFound("request not found")
	}

	return nil
}

func (s *serviceImpl) getItem(ctx context.Context, itemID string) (model.Item, error) {
	item, err := s.repo.Get(ctx, shared.FilterByID(itemID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get item")

		return item, fmt.Errorf("failed to get item: %w", err)
	}

	if item.ID == "" {
		return item, failure.NotFound("item not found")
	}

	return item, nil
}

// attachBookings fills the last/next approved projections when the caller
// owns the item.
func (s *serviceImpl) attachBookings(ctx context.Context, res *dto.ItemResponse) error {
	now := s.clock.Now()

	last, err := s.bookings.GetLastApproved(ctx, res.ID, now)
	if err != nil {
		return fmt.Errorf("failed to get last booking: %w", err)
	}

	if last.ID != "" {
		res.LastBooking = &dto.BookingBrief{}
		res.LastBooking.FromModel(last)
	}

	next, err := s.bookings.GetNextApproved(ctx, res.ID, now)
	if err != nil {
		return fmt.Errorf("failed to get next booking: %w", err)
	}

	if next.ID != "" {
		res.NextBooking = &dto.BookingBrief{}
		res.NextBooking.FromModel(next)
	}

	return nil
}

func (s *serviceImpl) attachComments(ctx context.Context, res *dto.ItemResponse) error {
	filter := shared.FilterByID(res.ID, model.CommentFieldItemID, model.CommentTableName)

	params := gDto.QueryParams{SortBy: model.CommentTableName + ".created_at", SortDir: "ASC"}

	comments, err := s.comments.GetAll(ctx, params, filter)
	if err != nil {
		return fmt.Errorf("failed to get comments: %w", err)
	}

	res.Comments = make([]dto.CommentResponse, len(comments))
	for i, comment := range comments {
		res.Comments[i].FromModel(comment)
	}

	return nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateItemRequest, ownerID string) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.ensureUserExists(ctx, ownerID); err != nil {
		return res, err
	}

	if req.RequestID != nil {
		if err = s.ensureRequestExists(ctx, *req.RequestID); err != nil {
			return res, err
		}
	}

	item := req.ToModel(ownerID)

	if err = s.repo.Insert(ctx, item); err != nil {
		log.Error().Err(err).Msg("failed to create item")

		return res, fmt.Errorf("failed to create item: %w", err)
	}

	res.FromModel(item)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheSearchItem)
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateItemRequest, itemID, requesterID string) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateItemRequest{}) {
		return res, failure.BadRequestFromString("update request cannot be empty")
	}

	item, err := s.getItem(ctx, itemID)
	if err != nil {
		return res, err
	}

	if item.OwnerID != requesterID {
		return res, failure.Forbidden("only the item owner may update it")
	}

	filter := shared.FilterByID(itemID, model.FieldID, model.TableName)

	updatedFields := shared.TransformFields(req, requesterID)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update item")

		return res, fmt.Errorf("failed to update item: %w", err)
	}

	updated, err := s.getItem(ctx, itemID)
	if err != nil {
		return res, err
	}

	res.FromModel(updated)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheSearchItem)
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, itemID, requesterID string) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	item, err := s.getItem(ctx, itemID)
	if err != nil {
		return res, err
	}

	res.FromModel(item)

	if err = s.attachComments(ctx, &res); err != nil {
		log.Error().Err(err).Msg("failed to get item comments")

		return res, err
	}

	// booking projections are owner-only
	if item.OwnerID == requesterID {
		if err = s.attachBookings(ctx, &res); err != nil {
			log.Error().Err(err).Msg("failed to get item bookings")

			return res, err
		}
	}

	return res, nil
}

func (s *serviceImpl) GetByOwner(ctx context.Context, ownerID string, params gDto.QueryParams) (res dto.GetItemsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.GetByOwner")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.ensureUserExists(ctx, ownerID); err != nil {
		return res, err
	}

	filter := shared.FilterByID(ownerID, model.FieldOwnerID, model.TableName)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count items")

		return res, fmt.Errorf("failed to count items: %w", err)
	}

	items, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get items")

		return res, fmt.Errorf("failed to get items: %w", err)
	}

	res.FromModels(items, total, params.Limit)

	for i := range res.Items {
		if err = s.attachBookings(ctx, &res.Items[i]); err != nil {
			log.Error().Err(err).Msg("failed to get item bookings")

			return res, err
		}
	}

	return res, nil
}

func (s *serviceImpl) Search(ctx context.Context, text string, params gDto.QueryParams) (res dto.GetItemsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	res.Items = []dto.ItemResponse{}
	res.TotalPage = 1

	if text == "" {
		return res, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldAvailable, Operator: gDto.FilterOperatorEq, Value: true, Table: model.TableName},
			gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorOr,
				Filters: []any{
					gDto.Filter{Field: model.FieldName, Operator: gDto.FilterOperatorLike, Value: text, Table: model.TableName},
					gDto.Filter{Field: model.FieldDescription, Operator: gDto.FilterOperatorLike, Value: text, Table: model.TableName},
				},
			},
		},
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheSearchItem, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for item search")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count items")

		return res, fmt.Errorf("failed to count items: %w", err)
	}

	items, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to search items")

		return res, fmt.Errorf("failed to search items: %w", err)
	}

	res.FromModels(items, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save item search to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, itemID, requesterID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	item, err := s.getItem(ctx, itemID)
	if err != nil {
		return err
	}

	if item.OwnerID != requesterID {
		return failure.Forbidden("only the item owner may delete it")
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(itemID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete item")

		return fmt.Errorf("failed to delete item: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheSearchItem)
	}()

	return nil
}

func (s *serviceImpl) AddComment(ctx context.Context, req dto.CreateCommentRequest, itemID, authorID string) (res dto.CommentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.AddComment")
	defer scope.End()
	defer scope.TraceIfError(err)

	author, err := s.users.Get(ctx, shared.FilterByID(authorID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get author")

		return res, fmt.Errorf("failed to get author: %w", err)
	}

	if author.ID == "" {
		return res, failure.NotFound("user not found")
	}

	if _, err = s.getItem(ctx, itemID); err != nil {
		return res, err
	}

	finished, err := s.bookings.ExistFinishedApproved(ctx, itemID, authorID, s.clock.Now())
	if err != nil {
		log.Error().Err(err).Msg("failed to check finished bookings")

		return res, fmt.Errorf("failed to check finished bookings: %w", err)
	}

	if !finished {
		return res, failure.BadRequestFromString("only users with a completed booking may comment")
	}

	comment := req.ToModel(itemID, authorID)
	comment.AuthorName = author.Name

	if err = s.comments.Insert(ctx, comment); err != nil {
		log.Error().Err(err).Msg("failed to create comment")

		return res, fmt.Errorf("failed to create comment: %w", err)
	}

	res.FromModel(comment)

	return res, nil
}

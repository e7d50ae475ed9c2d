package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"shareit/config"
	"shareit/infras/otel"
	itemModel "shareit/internal/domains/item/model"
	itemRepo "shareit/internal/domains/item/repository"
	"shareit/internal/domains/request/model"
	"shareit/internal/domains/request/model/dto"
	"shareit/internal/domains/request/repository"
	userModel "shareit/internal/domains/user/model"
	userRepo "shareit/internal/domains/user/repository"
	"shareit/shared"
	"shareit/shared/constant"
	gDto "shareit/shared/dto"
	"shareit/shared/failure"
)

type Request interface {
	Create(ctx context.Context, req dto.CreateRequestRequest, requesterID string) (dto.RequestResponse, error)
	GetMine(ctx context.Context, requesterID string) (dto.GetRequestsResponse, error)
	GetOthers(ctx context.Context, requesterID string, params gDto.QueryParams) (dto.GetRequestsResponse, error)
	Get(ctx context.Context, id, requesterID string) (dto.RequestResponse, error)
}

type serviceImpl struct {
	repo  repository.Request
	items itemRepo.Item
	users userRepo.User
	cfg   *config.Config
	otel  otel.Otel
}

func New(repo repository.Request, items itemRepo.Item, users userRepo.User, cfg *config.Config, otl otel.Otel) Request {
	return &serviceImpl{
		repo:  repo,
		items: items,
		users: users,
		cfg:   cfg,
		otel:  otl,
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

func (s *serviceImpl) attachItems(ctx context.Context, res *dto.RequestResponse) error {
	filter := shared.FilterByID(res.ID, itemModel.FieldRequestID, itemModel.TableName)

	items, err := s.items.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		return fmt.Errorf("failed to get items for request: %w", err)
	}

	res.Items = make([]dto.ItemBrief, len(items))
	for i, item := range items {
		res.Items[i].FromModel(item)
	}

	return nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRequestRequest, requesterID string) (res dto.RequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.ensureUserExists(ctx, requesterID); err != nil {
		return res, err
	}

	request := req.ToModel(requesterID)

	if err = s.repo.Insert(ctx, request); err != nil {
		log.Error().Err(err).Msg("failed to create request")

		return res, fmt.Errorf("failed to create request: %w", err)
	}

	res.FromModel(request)

	return res, nil
}

func (s *serviceImpl) GetMine(ctx context.Context, requesterID string) (res dto.GetRequestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.GetMine")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.ensureUserExists(ctx, requesterID); err != nil {
		return res, err
	}

	filter := shared.FilterByID(requesterID, model.FieldRequesterID, model.TableName)
	params := gDto.QueryParams{SortBy: model.TableName + ".created_at", SortDir: "DESC"}

	requests, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get requests")

		return res, fmt.Errorf("failed to get requests: %w", err)
	}

	res.FromModels(requests, len(requests), 0)

	for i := range res.Requests {
		if err = s.attachItems(ctx, &res.Requests[i]); err != nil {
			log.Error().Err(err).Msg("failed to get items for request")

			return res, err
		}
	}

	return res, nil
}

func (s *serviceImpl) GetOthers(ctx context.Context, requesterID string, params gDto.QueryParams) (res dto.GetRequestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.GetOthers")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.ensureUserExists(ctx, requesterID); err != nil {
		return res, err
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRequesterID,
				Operator: gDto.FilterOperatorNotEq,
				Value:    requesterID,
				Table:    model.TableName,
			},
		},
	}

	if params.SortBy == "" {
		params.SortBy = model.TableName + ".created_at"
		params.SortDir = "DESC"
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count requests")

		return res, fmt.Errorf("failed to count requests: %w", err)
	}

	requests, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get requests")

		return res, fmt.Errorf("failed to get requests: %w", err)
	}

	res.FromModels(requests, total, params.Limit)

	for i := range res.Requests {
		if err = s.attachItems(ctx, &res.Requests[i]); err != nil {
			log.Error().Err(err).Msg("failed to get items for request")

			return res, err
		}
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id, requesterID string) (res dto.RequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.ensureUserExists(ctx, requesterID); err != nil {
		return res, err
	}

	request, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get request")

		return res, fmt.Errorf("failed to get request: %w", err)
	}

	if request.ID == "" {
		return res, failure.NotFound("item request not found")
	}

	res.FromModel(request)

	if err = s.attachItems(ctx, &res); err != nil {
		log.Error().Err(err).Msg("failed to get items for request")

		return res, err
	}

	return res, nil
}

package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"shareit/config"
	"shareit/infras/otel/mocks"
	itemMocks "shareit/internal/domains/item/mocks"
	itemModel "shareit/internal/domains/item/model"
	requestMocks "shareit/internal/domains/request/mocks"
	"shareit/internal/domains/request/model"
	"shareit/internal/domains/request/model/dto"
	"shareit/internal/domains/request/service"
	userMocks "shareit/internal/domains/user/mocks"
	gDto "shareit/shared/dto"
	"shareit/shared/failure"
)

type requestServiceMocks struct {
	repo  *requestMocks.MockRequest
	items *itemMocks.MockItem
	users *userMocks.MockUser
}

func newRequestService(t *testing.T) (service.Request, requestServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := requestServiceMocks{
		repo:  requestMocks.NewMockRequest(ctrl),
		items: itemMocks.NewMockItem(ctrl),
		users: userMocks.NewMockUser(ctrl),
	}

	svc := service.New(m.repo, m.items, m.users, &config.Config{}, mocks.NewOtel())

	return svc, m
}

func TestRequestService_Create(t *testing.T) {
	req := dto.CreateRequestRequest{Description: "Looking for a ladder"}

	t.Run("successful creation", func(t *testing.T) {
		svc, m := newRequestService(t)

		m.users.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		m.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := svc.Create(context.Background(), req, "requester-id")

		assert.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, "Looking for a ladder", res.Description)
	})

	t.Run("requester does not exist", func(t *testing.T) {
		svc, m := newRequestService(t)

		m.users.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := svc.Create(context.Background(), req, "requester-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRequestService_GetMine(t *testing.T) {
	svc, m := newRequestService(t)

	requests := []model.Request{
		{ID: "r2", Description: "Newest", RequesterID: "requester-id"},
		{ID: "r1", Description: "Oldest", RequesterID: "requester-id"},
	}

	m.users.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)
	m.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(requests, nil)
	m.items.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]itemModel.Item{{ID: "item-id", Name: "Ladder", RequestID: strPtr("r2")}}, nil)
	m.items.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]itemModel.Item{}, nil)

	res, err := svc.GetMine(context.Background(), "requester-id")

	assert.NoError(t, err)
	assert.Len(t, res.Requests, 2)
	assert.Equal(t, "r2", res.Requests[0].ID)
	assert.Len(t, res.Requests[0].Items, 1)
	assert.Equal(t, "Ladder", res.Requests[0].Items[0].Name)
	assert.Empty(t, res.Requests[1].Items)
}

func TestRequestService_GetOthers(t *testing.T) {
	svc, m := newRequestService(t)

	m.users.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)
	m.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)
	m.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Request{{ID: "r1", Description: "Ladder", RequesterID: "other-id"}}, nil)
	m.items.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]itemModel.Item{}, nil)

	res, err := svc.GetOthers(context.Background(), "requester-id", gDto.QueryParams{Limit: 10, Page: 1})

	assert.NoError(t, err)
	assert.Len(t, res.Requests, 1)
	assert.Equal(t, "r1", res.Requests[0].ID)
}

func TestRequestService_Get(t *testing.T) {
	t.Run("found with items", func(t *testing.T) {
		svc, m := newRequestService(t)

		m.users.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Request{ID: "r1", Description: "Ladder", RequesterID: "other-id"}, nil)
		m.items.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]itemModel.Item{{ID: "item-id", Name: "Ladder"}}, nil)

		res, err := svc.Get(context.Background(), "r1", "requester-id")

		assert.NoError(t, err)
		assert.Equal(t, "r1", res.ID)
		assert.Len(t, res.Items, 1)
	})

	t.Run("request does not exist", func(t *testing.T) {
		svc, m := newRequestService(t)

		m.users.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Request{}, nil)

		_, err := svc.Get(context.Background(), "r1", "requester-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("requester does not exist", func(t *testing.T) {
		svc, m := newRequestService(t)

		m.users.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := svc.Get(context.Background(), "r1", "requester-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func strPtr(s string) *string {
	return &s
}

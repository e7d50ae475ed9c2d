package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"shareit/config"
	"shareit/infras/otel/mocks"
	bookingMocks "shareit/internal/domains/booking/mocks"
	bookingModel "shareit/internal/domains/booking/model"
	itemMocks "shareit/internal/domains/item/mocks"
	"shareit/internal/domains/item/model"
	"shareit/internal/domains/item/model/dto"
	"shareit/internal/domains/item/service"
	requestMocks "shareit/internal/domains/request/mocks"
	userMocks "shareit/internal/domains/user/mocks"
	userModel "shareit/internal/domains/user/model"
	cacheMocks "shareit/shared/cache/mocks"
	"shareit/shared/clock"
	gDto "shareit/shared/dto"
	"shareit/shared/failure"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type itemServiceMocks struct {
	repo     *itemMocks.MockItem
	comments *itemMocks.MockComment
	users    *userMocks.MockUser
	bookings *bookingMocks.MockBooking
	requests *requestMocks.MockRequest
	cache    *cacheMocks.MockRedisCache
}

func newItemService(t *testing.T) (service.Item, itemServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := itemServiceMocks{
		repo:     itemMocks.NewMockItem(ctrl),
		comments: itemMocks.NewMockComment(ctrl),
		users:    userMocks.NewMockUser(ctrl),
		bookings: bookingMocks.NewMockBooking(ctrl),
		requests: requestMocks.NewMockRequest(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(
		m.repo,
		m.comments,
		m.users,
		m.bookings,
		m.requests,
		cfg,
		m.cache,
		clock.NewFixed(testNow),
		mocks.NewOtel(),
	)

	return svc, m
}

func ownedItem() model.Item {
	return model.Item{
		ID:          "item-id",
		Name:        "Drill",
		Description: "Cordless drill",
		Available:   true,
		OwnerID:     "owner-id",
	}
}

func TestItemService_Create(t *testing.T) {
	available := true
	req := dto.CreateItemRequest{
		Name:        "Drill",
		Description: "Cordless drill",
		Available:   &available,
	}

	requestID := "request-id"

	tests := []struct {
		name      string
		requestID *string
		setupMock func(m itemServiceMocks)
		wantCode  int
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func(m itemServiceMocks) {
				m.users.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name:      "answers an existing request",
			requestID: &requestID,
			setupMock: func(m itemServiceMocks) {
				m.users.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				m.requests.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name:      "answered request does not exist",
			requestID: &requestID,
			setupMock: func(m itemServiceMocks) {
				m.users.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				m.requests.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "owner does not exist",
			setupMock: func(m itemServiceMocks) {
				m.users.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			setupMock: func(m itemServiceMocks) {
				m.users.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newItemService(t)
			tt.setupMock(m)

			createReq := req
			createReq.RequestID = tt.requestID

			res, err := svc.Create(context.Background(), createReq, "owner-id")

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.Equal(t, "owner-id", res.OwnerID)
			assert.True(t, res.Available)
		})
	}
}

func TestItemService_Update(t *testing.T) {
	name := "Hammer drill"

	tests := []struct {
		name      string
		req       dto.UpdateItemRequest
		requester string
		setupMock func(m itemServiceMocks)
		wantCode  int
		wantErr   bool
	}{
		{
			name:      "owner updates the name",
			req:       dto.UpdateItemRequest{Name: &name},
			requester: "owner-id",
			setupMock: func(m itemServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(ownedItem(), nil)
				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				updated := ownedItem()
				updated.Name = name

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(updated, nil)
				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name:      "empty update is rejected",
			req:       dto.UpdateItemRequest{},
			requester: "owner-id",
			setupMock: func(_ itemServiceMocks) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "requester is not the owner",
			req:       dto.UpdateItemRequest{Name: &name},
			requester: "someone-else",
			setupMock: func(m itemServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(ownedItem(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name:      "item does not exist",
			req:       dto.UpdateItemRequest{Name: &name},
			requester: "owner-id",
			setupMock: func(m itemServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Item{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newItemService(t)
			tt.setupMock(m)

			res, err := svc.Update(context.Background(), tt.req, "item-id", tt.requester)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, name, res.Name)
		})
	}
}

func TestItemService_Get(t *testing.T) {
	lastBooking := bookingModel.Booking{
		ID:       "last-id",
		ItemID:   "item-id",
		BookerID: "booker-id",
		Start:    testNow.Add(-48 * time.Hour),
		End:      testNow.Add(-24 * time.Hour),
		Status:   bookingModel.StatusApproved,
	}
	nextBooking := bookingModel.Booking{
		ID:       "next-id",
		ItemID:   "item-id",
		BookerID: "booker-id",
		Start:    testNow.Add(24 * time.Hour),
		End:      testNow.Add(48 * time.Hour),
		Status:   bookingModel.StatusApproved,
	}

	tests := []struct {
		name           string
		requester      string
		setupMock      func(m itemServiceMocks)
		wantErr        bool
		wantCode       int
		wantProjection bool
	}{
		{
			name:      "owner sees booking projections",
			requester: "owner-id",
			setupMock: func(m itemServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(ownedItem(), nil)
				m.comments.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Comment{}, nil)
				m.bookings.EXPECT().
					GetLastApproved(gomock.Any(), "item-id", testNow).
					Return(lastBooking, nil)
				m.bookings.EXPECT().
					GetNextApproved(gomock.Any(), "item-id", testNow).
					Return(nextBooking, nil)
			},
			wantProjection: true,
		},
		{
			name:      "other users do not see projections",
			requester: "someone-else",
			setupMock: func(m itemServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(ownedItem(), nil)
				m.comments.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Comment{}, nil)
			},
		},
		{
			name:      "item does not exist",
			requester: "owner-id",
			setupMock: func(m itemServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Item{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newItemService(t)
			tt.setupMock(m)

			res, err := svc.Get(context.Background(), "item-id", tt.requester)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, res.Comments)

			if tt.wantProjection {
				assert.NotNil(t, res.LastBooking)
				assert.Equal(t, "last-id", res.LastBooking.ID)
				assert.NotNil(t, res.NextBooking)
				assert.Equal(t, "next-id", res.NextBooking.ID)
			} else {
				assert.Nil(t, res.LastBooking)
				assert.Nil(t, res.NextBooking)
			}
		})
	}
}

func TestItemService_Search(t *testing.T) {
	t.Run("empty text returns empty result without queries", func(t *testing.T) {
		svc, _ := newItemService(t)

		res, err := svc.Search(context.Background(), "", gDto.QueryParams{Limit: 10, Page: 1})

		assert.NoError(t, err)
		assert.Empty(t, res.Items)
	})

	t.Run("matching text queries the repository", func(t *testing.T) {
		svc, m := newItemService(t)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		m.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)
		m.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Item{ownedItem()}, nil)
		m.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Search(context.Background(), "drill", gDto.QueryParams{Limit: 10, Page: 1})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Len(t, res.Items, 1)
		assert.Equal(t, "item-id", res.Items[0].ID)
	})
}

func TestItemService_Delete(t *testing.T) {
	t.Run("owner deletes the item", func(t *testing.T) {
		svc, m := newItemService(t)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(ownedItem(), nil)
		m.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)
		m.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		err := svc.Delete(context.Background(), "item-id", "owner-id")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("requester is not the owner", func(t *testing.T) {
		svc, m := newItemService(t)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(ownedItem(), nil)

		err := svc.Delete(context.Background(), "item-id", "someone-else")

		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})
}

func TestItemService_AddComment(t *testing.T) {
	req := dto.CreateCommentRequest{Text: "Great drill"}

	author := userModel.User{ID: "author-id", Name: "Alice"}

	tests := []struct {
		name      string
		setupMock func(m itemServiceMocks)
		wantCode  int
		wantErr   bool
	}{
		{
			name: "author with a finished booking comments",
			setupMock: func(m itemServiceMocks) {
				m.users.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(author, nil)
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(ownedItem(), nil)
				m.bookings.EXPECT().
					ExistFinishedApproved(gomock.Any(), "item-id", "author-id", testNow).
					Return(true, nil)
				m.comments.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "author never completed a booking",
			setupMock: func(m itemServiceMocks) {
				m.users.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(author, nil)
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(ownedItem(), nil)
				m.bookings.EXPECT().
					ExistFinishedApproved(gomock.Any(), "item-id", "author-id", testNow).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "author does not exist",
			setupMock: func(m itemServiceMocks) {
				m.users.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "item does not exist",
			setupMock: func(m itemServiceMocks) {
				m.users.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(author, nil)
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Item{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newItemService(t)
			tt.setupMock(m)

			res, err := svc.AddComment(context.Background(), req, "item-id", "author-id")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "Great drill", res.Text)
			assert.Equal(t, "Alice", res.AuthorName)
		})
	}
}

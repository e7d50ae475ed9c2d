package dto_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"shareit/internal/domains/booking/model"
	"shareit/internal/domains/booking/model/dto"
	"shareit/shared/validator"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	req := dto.CreateBookingRequest{
		ItemID: "item-id",
		Start:  now.Add(24 * time.Hour),
		End:    now.Add(48 * time.Hour),
	}

	booking := req.ToModel("booker-id", now)

	_, err := uuid.Parse(booking.ID)
	assert.NoError(t, err)

	assert.Equal(t, "item-id", booking.ItemID)
	assert.Equal(t, "booker-id", booking.BookerID)
	assert.Equal(t, req.Start, booking.Start)
	assert.Equal(t, req.End, booking.End)
	assert.Equal(t, model.StatusWaiting, booking.Status)
	assert.Equal(t, now, booking.CreatedAt)
	assert.Equal(t, "booker-id", booking.CreatedBy)
}

func TestCreateBookingRequest_Validate(t *testing.T) {
	start := time.Date(2030, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		end     time.Time
		wantErr bool
	}{
		{
			name:    "end after start",
			end:     start.Add(time.Hour),
			wantErr: false,
		},
		{
			name:    "end equals start",
			end:     start,
			wantErr: true,
		},
		{
			name:    "end before start",
			end:     start.Add(-time.Hour),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateBookingRequest{
				ItemID: uuid.NewString(),
				Start:  start,
				End:    tt.end,
			}

			err := validator.ValidateStruct(&req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingResponse_FromModel(t *testing.T) {
	booking := model.Booking{
		ID:       "booking-id",
		ItemID:   "item-id",
		BookerID: "booker-id",
		Start:    time.Date(2025, 6, 16, 12, 0, 0, 0, time.UTC),
		End:      time.Date(2025, 6, 17, 12, 0, 0, 0, time.UTC),
		Status:   model.StatusApproved,
	}

	var res dto.BookingResponse

	res.FromModel(booking)

	assert.Equal(t, booking.ID, res.ID)
	assert.Equal(t, booking.ItemID, res.ItemID)
	assert.Equal(t, booking.BookerID, res.BookerID)
	assert.Equal(t, booking.Start, res.Start)
	assert.Equal(t, booking.End, res.End)
	assert.Equal(t, model.StatusApproved, res.Status)
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	bookings := []model.Booking{
		{ID: "b1", Status: model.StatusWaiting},
		{ID: "b2", Status: model.StatusApproved},
	}

	var res dto.GetBookingsResponse

	res.FromModels(bookings)

	assert.Len(t, res.Bookings, 2)
	assert.Equal(t, "b1", res.Bookings[0].ID)
	assert.Equal(t, "b2", res.Bookings[1].ID)

	res.FromModels(nil)

	assert.Empty(t, res.Bookings)
	assert.NotNil(t, res.Bookings)
}

func TestNewBookingEvent(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	booking := model.Booking{
		ID:       "booking-id",
		ItemID:   "item-id",
		BookerID: "booker-id",
		Start:    now.Add(24 * time.Hour),
		End:      now.Add(48 * time.Hour),
		Status:   model.StatusApproved,
	}

	event := dto.NewBookingEvent(dto.EventBookingApproved, booking, now)

	assert.Equal(t, "booking.approved", event.Event)
	assert.Equal(t, "booking-id", event.BookingID)
	assert.Equal(t, "item-id", event.ItemID)
	assert.Equal(t, "booker-id", event.BookerID)
	assert.Equal(t, model.StatusApproved, event.Status)
	assert.Equal(t, now, event.OccurredAt)
}

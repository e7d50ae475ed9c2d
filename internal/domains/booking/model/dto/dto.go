package dto

import (
	"time"

	"github.com/google/uuid"

	"shareit/internal/domains/booking/model"
	gDto "shareit/shared/dto"
	gModel "shareit/shared/model"
)

type CreateBookingRequest struct {
	ItemID string    `json:"item_id" validate:"required,uuid"`
	Start  time.Time `json:"start"   validate:"required"`
	End    time.Time `json:"end"     validate:"required,gtfield=Start"`
}

func (r *CreateBookingRequest) ToModel(bookerID string, now time.Time) model.Booking {
	return model.Booking{
		ID:       uuid.NewString(),
		ItemID:   r.ItemID,
		BookerID: bookerID,
		Start:    r.Start,
		End:      r.End,
		Status:   model.StatusWaiting,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  bookerID,
			ModifiedBy: bookerID,
		},
	}
}

type BookingResponse struct {
	ID       string    `json:"id"`
	ItemID   string    `json:"item_id"`
	BookerID string    `json:"booker_id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Status   string    `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.ItemID = model.ItemID
	r.BookerID = model.BookerID
	r.Start = model.Start
	r.End = model.End
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking) {
	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookingEvent is what gets published to the booking lifecycle topic.
type BookingEvent struct {
	Event      string    `json:"event"`
	BookingID  string    `json:"booking_id"`
	ItemID     string    `json:"item_id"`
	BookerID   string    `json:"booker_id"`
	Status     string    `json:"status"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	OccurredAt time.Time `json:"occurred_at"`
}

const (
	EventBookingCreated  = "booking.created"
	EventBookingApproved = "booking.approved"
	EventBookingRejected = "booking.rejected"
)

func NewBookingEvent(event string, booking model.Booking, now time.Time) BookingEvent {
	return BookingEvent{
		Event:      event,
		BookingID:  booking.ID,
		ItemID:     booking.ItemID,
		BookerID:   booking.BookerID,
		Status:     booking.Status,
		Start:      booking.Start,
		End:        booking.End,
		OccurredAt: now,
	}
}

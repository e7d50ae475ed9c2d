package model

import (
	"strings"
	"time"

	"shareit/shared/failure"
	"shareit/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID       = "id"
	FieldItemID   = "item_id"
	FieldBookerID = "booker_id"
	FieldStart    = "start_date"
	FieldEnd      = "end_date"
	FieldStatus   = "status"
)

const (
	StatusWaiting  = "WAITING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// State is the temporal view a caller asks bookings to be filtered by.
// CURRENT, PAST and FUTURE are evaluated against the clock; WAITING and
// REJECTED match the stored status.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

func ParseState(raw string) (State, error) {
	if raw == "" {
		return StateAll, nil
	}

	state := State(strings.ToUpper(raw))
	switch state {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return state, nil
	default:
		return "", failure.BadRequestFromString("Unknown state: " + raw) //nolint:wrapcheck
	}
}

type Booking struct {
	ID       string    `db:"id"`
	ItemID   string    `db:"item_id"`
	BookerID string    `db:"booker_id"`
	Start    time.Time `db:"start_date"`
	End      time.Time `db:"end_date"`
	Status   string    `db:"status"`
	model.Metadata
}

// Matches reports whether the booking falls into the given state at the
// given instant. Interval ends are inclusive, so a booking is CURRENT only
// while now lies strictly inside it.
func (b Booking) Matches(state State, now time.Time) bool {
	switch state {
	case StateAll:
		return true
	case StateCurrent:
		return b.Start.Before(now) && b.End.After(now)
	case StatePast:
		return b.End.Before(now)
	case StateFuture:
		return b.Start.After(now)
	case StateWaiting:
		return b.Status == StatusWaiting
	case StateRejected:
		return b.Status == StatusRejected
	default:
		return false
	}
}

// Overlaps reports whether the two closed intervals share at least one
// instant. Back-to-back bookings touching at a boundary overlap.
func (b Booking) Overlaps(start, end time.Time) bool {
	return !b.Start.After(end) && !b.End.Before(start)
}

// FilterByState keeps the bookings matching the state at the given instant,
// preserving input order.
func FilterByState(bookings []Booking, state State, now time.Time) []Booking {
	if state == StateAll {
		return bookings
	}

	matched := []Booking{}

	for _, booking := range bookings {
		if booking.Matches(state, now) {
			matched = append(matched, booking)
		}
	}

	return matched
}

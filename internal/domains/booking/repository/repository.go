package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"time"

	"shareit/internal/domains/booking/model"
)

// Booking is the storage contract of the booking lifecycle. Listings are
// ordered by start ascending, ties broken by id, so repeated reads return
// the same sequence. Temporal state filtering happens above the store.
type Booking interface {
	Insert(ctx context.Context, booking model.Booking) error
	GetByID(ctx context.Context, id string) (model.Booking, error)
	GetByBooker(ctx context.Context, bookerID string) ([]model.Booking, error)
	GetByItem(ctx context.Context, itemID string) ([]model.Booking, error)
	GetByItemOwner(ctx context.Context, ownerID string) ([]model.Booking, error)
	GetLastApproved(ctx context.Context, itemID string, now time.Time) (model.Booking, error)
	GetNextApproved(ctx context.Context, itemID string, now time.Time) (model.Booking, error)
	ExistApprovedOverlap(ctx context.Context, itemID string, start, end time.Time) (bool, error)
	ExistFinishedApproved(ctx context.Context, itemID, bookerID string, now time.Time) (bool, error)

	// UpdateStatusIfWaiting flips the status of a WAITING booking and
	// reports whether a row was actually written. A false return means the
	// booking had already been decided.
	UpdateStatusIfWaiting(ctx context.Context, id, status, modifiedBy string) (bool, error)
}

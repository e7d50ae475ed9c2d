package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"shareit/internal/domains/booking/model"
)

// memoryImpl keeps bookings in process memory. It backs the "memory"
// storage profile and the repository contract tests; semantics mirror the
// postgres implementation.
type memoryImpl struct {
	mu       sync.RWMutex
	bookings map[string]model.Booking
	ownerOf  func(ctx context.Context, itemID string) (string, bool)
}

// NewMemory builds an in-memory booking store. ownerOf resolves the owner
// of an item so owner listings can be answered without a join.
func NewMemory(ownerOf func(ctx context.Context, itemID string) (string, bool)) Booking {
	return &memoryImpl{
		bookings: make(map[string]model.Booking),
		ownerOf:  ownerOf,
	}
}

func sortByStart(bookings []model.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		if bookings[i].Start.Equal(bookings[j].Start) {
			return bookings[i].ID < bookings[j].ID
		}

		return bookings[i].Start.Before(bookings[j].Start)
	})
}

func (repo *memoryImpl) Insert(_ context.Context, booking model.Booking) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.bookings[booking.ID] = booking

	return nil
}

func (repo *memoryImpl) GetByID(_ context.Context, id string) (model.Booking, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return repo.bookings[id], nil
}

func (repo *memoryImpl) collect(match func(model.Booking) bool) []model.Booking {
	matched := []model.Booking{}

	for _, booking := range repo.bookings {
		if match(booking) {
			matched = append(matched, booking)
		}
	}

	sortByStart(matched)

	return matched
}

func (repo *memoryImpl) GetByBooker(_ context.Context, bookerID string) ([]model.Booking, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return repo.collect(func(b model.Booking) bool {
		return b.BookerID == bookerID
	}), nil
}

func (repo *memoryImpl) GetByItem(_ context.Context, itemID string) ([]model.Booking, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return repo.collect(func(b model.Booking) bool {
		return b.ItemID == itemID
	}), nil
}

func (repo *memoryImpl) GetByItemOwner(ctx context.Context, ownerID string) ([]model.Booking, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return repo.collect(func(b model.Booking) bool {
		owner, ok := repo.ownerOf(ctx, b.ItemID)

		return ok && owner == ownerID
	}), nil
}

func (repo *memoryImpl) GetLastApproved(_ context.Context, itemID string, now time.Time) (model.Booking, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var last model.Booking

	for _, booking := range repo.bookings {
		if booking.ItemID != itemID || booking.Status != model.StatusApproved || !booking.End.Before(now) {
			continue
		}

		if last.ID == "" || booking.End.After(last.End) || (booking.End.Equal(last.End) && booking.ID > last.ID) {
			last = booking
		}
	}

	return last, nil
}

func (repo *memoryImpl) GetNextApproved(_ context.Context, itemID string, now time.Time) (model.Booking, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var next model.Booking

	for _, booking := range repo.bookings {
		if booking.ItemID != itemID || booking.Status != model.StatusApproved || !booking.Start.After(now) {
			continue
		}

		if next.ID == "" || booking.Start.Before(next.Start) || (booking.Start.Equal(next.Start) && booking.ID < next.ID) {
			next = booking
		}
	}

	return next, nil
}

func (repo *memoryImpl) ExistApprovedOverlap(_ context.Context, itemID string, start, end time.Time) (bool, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, booking := range repo.bookings {
		if booking.ItemID == itemID && booking.Status == model.StatusApproved && booking.Overlaps(start, end) {
			return true, nil
		}
	}

	return false, nil
}

func (repo *memoryImpl) ExistFinishedApproved(_ context.Context, itemID, bookerID string, now time.Time) (bool, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, booking := range repo.bookings {
		if booking.ItemID == itemID && booking.BookerID == bookerID && booking.Status == model.StatusApproved && booking.End.Before(now) {
			return true, nil
		}
	}

	return false, nil
}

func (repo *memoryImpl) UpdateStatusIfWaiting(_ context.Context, id, status, modifiedBy string) (bool, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	booking, ok := repo.bookings[id]
	if !ok || booking.Status != model.StatusWaiting {
		return false, nil
	}

	booking.Status = status
	booking.ModifiedBy = modifiedBy
	repo.bookings[id] = booking

	return true, nil
}

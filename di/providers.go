package di

import (
	"context"

	"shareit/config"
	"shareit/infras/otel"
	"shareit/infras/postgres"
	"shareit/shared"
	"shareit/shared/constant"

	bookingRepository "shareit/internal/domains/booking/repository"
	itemModel "shareit/internal/domains/item/model"
	itemRepository "shareit/internal/domains/item/repository"
)

// ProvideBookingRepository selects the booking storage backend from
// configuration. The in-memory profile backs integration-style runs
// without a database and resolves item ownership through the item
// repository.
func ProvideBookingRepository(
	cfg *config.Config,
	db *postgres.Connection,
	items itemRepository.Item,
	otl otel.Otel,
) bookingRepository.Booking {
	if cfg.DB.Profile == constant.DBProfileMemory {
		return bookingRepository.NewMemory(func(ctx context.Context, itemID string) (string, bool) {
			item, err := items.Get(ctx, shared.FilterByID(itemID, itemModel.FieldID, itemModel.TableName))
			if err != nil || item.ID == constant.Empty {
				return constant.Empty, false
			}

			return item.OwnerID, true
		})
	}

	return bookingRepository.New(db, otl)
}

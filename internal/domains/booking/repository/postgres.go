package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"shareit/infras/otel"
	"shareit/infras/postgres"
	"shareit/internal/domains/booking/model"
	itemModel "shareit/internal/domains/item/model"
	"shareit/shared"
	"shareit/shared/constant"
	gDto "shareit/shared/dto"
	"shareit/shared/logger"
	gRepo "shareit/shared/repository"
	"shareit/shared/timezone"
)

const (
	selectColumns = "bookings.id, bookings.item_id, bookings.booker_id, bookings.start_date, bookings.end_date, bookings.status, " +
		"bookings.created_at, bookings.created_by, bookings.modified_at, bookings.modified_by"

	orderByStart = "ORDER BY bookings.start_date ASC, bookings.id ASC"
)

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otl otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otl),
		db:         db,
		otel:       otl,
	}
}

func (repo *repositoryImpl) selectBookings(ctx context.Context, query string, args map[string]any) ([]model.Booking, error) {
	bookings := []model.Booking{}

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return bookings, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &bookings, args)
	if err != nil {
		logger.ErrorWithStack(err)

		return bookings, fmt.Errorf("failed to get bookings: %w", err)
	}

	return bookings, nil
}

func (repo *repositoryImpl) selectBooking(ctx context.Context, query string, args map[string]any) (model.Booking, error) {
	var booking model.Booking

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return booking, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &booking, args)
	if errors.Is(err, sql.ErrNoRows) {
		return booking, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	return booking, nil
}

func (repo *repositoryImpl) GetByID(ctx context.Context, id string) (model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetByID")
	defer scope.End()

	return repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetByBooker(ctx context.Context, bookerID string) ([]model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetByBooker")
	defer scope.End()

	filter := shared.FilterByID(bookerID, model.FieldBookerID, model.TableName)
	where, args := repo.BuildWhereClause(ctx, filter)

	query := fmt.Sprintf("SELECT %s FROM %s %s %s", selectColumns, model.TableName, where, orderByStart)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	return repo.selectBookings(ctx, query, args)
}

func (repo *repositoryImpl) GetByItem(ctx context.Context, itemID string) ([]model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetByItem")
	defer scope.End()

	filter := shared.FilterByID(itemID, model.FieldItemID, model.TableName)
	where, args := repo.BuildWhereClause(ctx, filter)

	query := fmt.Sprintf("SELECT %s FROM %s %s %s", selectColumns, model.TableName, where, orderByStart)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	return repo.selectBookings(ctx, query, args)
}

func (repo *repositoryImpl) GetByItemOwner(ctx context.Context, ownerID string) ([]model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetByItemOwner")
	defer scope.End()

	filter := shared.FilterByID(ownerID, itemModel.FieldOwnerID, itemModel.TableName)
	where, args := repo.BuildWhereClause(ctx, filter)

	query := fmt.Sprintf("SELECT %s FROM %s JOIN %s ON %s.id = %s.item_id %s %s",
		selectColumns, model.TableName, itemModel.TableName, itemModel.TableName, model.TableName, where, orderByStart)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	return repo.selectBookings(ctx, query, args)
}

func (repo *repositoryImpl) GetLastApproved(ctx context.Context, itemID string, now time.Time) (model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetLastApproved")
	defer scope.End()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldItemID, Operator: gDto.FilterOperatorEq, Value: itemID, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorEq, Value: model.StatusApproved, Table: model.TableName},
			gDto.Filter{Field: model.FieldEnd, ArgName: "now", Operator: gDto.FilterOperatorLess, Value: now, Table: model.TableName},
		},
	}

	where, args := repo.BuildWhereClause(ctx, filter)

	query := fmt.Sprintf("SELECT %s FROM %s %s ORDER BY bookings.end_date DESC, bookings.id DESC LIMIT 1", selectColumns, model.TableName, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	return repo.selectBooking(ctx, query, args)
}

func (repo *repositoryImpl) GetNextApproved(ctx context.Context, itemID string, now time.Time) (model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetNextApproved")
	defer scope.End()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldItemID, Operator: gDto.FilterOperatorEq, Value: itemID, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorEq, Value: model.StatusApproved, Table: model.TableName},
			gDto.Filter{Field: model.FieldStart, ArgName: "now", Operator: gDto.FilterOperatorGreater, Value: now, Table: model.TableName},
		},
	}

	where, args := repo.BuildWhereClause(ctx, filter)

	query := fmt.Sprintf("SELECT %s FROM %s %s ORDER BY bookings.start_date ASC, bookings.id ASC LIMIT 1", selectColumns, model.TableName, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	return repo.selectBooking(ctx, query, args)
}

func (repo *repositoryImpl) ExistApprovedOverlap(ctx context.Context, itemID string, start, end time.Time) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ExistApprovedOverlap")
	defer scope.End()

	// closed intervals: existing.start <= end AND existing.end >= start
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldItemID, Operator: gDto.FilterOperatorEq, Value: itemID, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorEq, Value: model.StatusApproved, Table: model.TableName},
			gDto.Filter{Field: model.FieldStart, ArgName: "overlap_end", Operator: gDto.FilterOperatorLessEq, Value: end, Table: model.TableName},
			gDto.Filter{Field: model.FieldEnd, ArgName: "overlap_start", Operator: gDto.FilterOperatorGreaterEq, Value: start, Table: model.TableName},
		},
	}

	return repo.Exist(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) ExistFinishedApproved(ctx context.Context, itemID, bookerID string, now time.Time) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ExistFinishedApproved")
	defer scope.End()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldItemID, Operator: gDto.FilterOperatorEq, Value: itemID, Table: model.TableName},
			gDto.Filter{Field: model.FieldBookerID, Operator: gDto.FilterOperatorEq, Value: bookerID, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorEq, Value: model.StatusApproved, Table: model.TableName},
			gDto.Filter{Field: model.FieldEnd, ArgName: "now", Operator: gDto.FilterOperatorLess, Value: now, Table: model.TableName},
		},
	}

	return repo.Exist(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) UpdateStatusIfWaiting(ctx context.Context, id, status, modifiedBy string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.UpdateStatusIfWaiting")
	defer scope.End()

	query := fmt.Sprintf("UPDATE %s SET status = :status, modified_at = :modified_at, modified_by = :modified_by WHERE id = :id AND status = :waiting", model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.NamedExecContext(ctx, query, map[string]any{
		"status":      status,
		"modified_at": timezone.Now(),
		"modified_by": modifiedBy,
		"id":          id,
		"waiting":     model.StatusWaiting,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to update booking status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}

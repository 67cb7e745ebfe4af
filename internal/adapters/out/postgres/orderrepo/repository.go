package orderrepo

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockNotAvailable is the Postgres error code raised when lock_timeout
// expires while waiting for a row lock.
const lockNotAvailable = pq.ErrorCode("55P03")

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its lines to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order and reconciles its line rows against the
// aggregate's current set: new lines are inserted, changed lines updated
// and rows for removed lines deleted.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("CustomerID", "Discount", "Status").
		Updates(map[string]any{
			"customer_id": dto.CustomerID,
			"discount":    dto.Discount,
			"status":      dto.Status,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	if err := r.reconcileItems(ctx, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetForUpdate retrieves an order by ID holding an exclusive row lock until
// the surrounding transaction ends. When the lock cannot be acquired within
// the transaction's lock timeout, a ConcurrencyConflictError is returned.
// Lines are loaded after the lock is held, so the view is consistent.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}

		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == lockNotAvailable {
			return nil, errs.NewConcurrencyConflictErrorWithCause("order", id.String(), err)
		}

		return nil, err
	}

	if err = r.db.WithContext(ctx).
		Order("id").
		Find(&dto.Items, "order_id = ?", dto.ID).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an order and all of its line rows.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).
		Delete(&ItemDTO{}, "order_id = ?", id.Bytes()).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

// reconcileItems diffs the persisted line rows against the aggregate's
// lines by product and applies inserts, updates and deletes accordingly.
func (r *GormOrderRepository) reconcileItems(ctx context.Context, dto OrderDTO) error {
	var existing []ItemDTO
	if err := r.db.WithContext(ctx).
		Find(&existing, "order_id = ?", dto.ID).Error; err != nil {
		return err
	}

	existingByProduct := make(map[uuid.UUID]ItemDTO, len(existing))
	for _, item := range existing {
		existingByProduct[item.ProductID] = item
	}

	keep := make(map[uuid.UUID]bool, len(dto.Items))
	for _, item := range dto.Items {
		keep[item.ProductID] = true

		current, ok := existingByProduct[item.ProductID]
		if !ok {
			if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
				return err
			}
			continue
		}

		if current.Quantity == item.Quantity && current.Price.Equal(item.Price) {
			continue
		}

		err := r.db.WithContext(ctx).
			Model(&ItemDTO{}).
			Where("id = ?", current.ID).
			Updates(map[string]any{
				"quantity": item.Quantity,
				"price":    item.Price,
			}).Error
		if err != nil {
			return err
		}
	}

	for productID, item := range existingByProduct {
		if keep[productID] {
			continue
		}

		if err := r.db.WithContext(ctx).Delete(&ItemDTO{}, "id = ?", item.ID).Error; err != nil {
			return err
		}
	}

	return nil
}

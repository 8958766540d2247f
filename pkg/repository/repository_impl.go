package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/smallbiznis/coffeestore/internal/clock"
	"gorm.io/gorm"
)

type store[T any, P EntityPtr[T]] struct {
	db    *gorm.DB
	clock clock.Clock
}

func ProvideStore[T any, P EntityPtr[T]](db *gorm.DB, clk clock.Clock) Repository[T] {
	if clk == nil {
		clk = clock.SystemClock{}
	}
	return &store[T, P]{db: db, clock: clk}
}

func (r *store[T, P]) WithTrx(tx *gorm.DB) Repository[T] {
	return &store[T, P]{db: tx, clock: r.clock}
}

func (r *store[T, P]) FindAll(ctx context.Context) ([]*T, error) {
	var result []*T
	err := r.db.WithContext(ctx).
		Order("created_at asc, id asc").
		Find(&result).Error
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *store[T, P]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	if id == uuid.Nil {
		return nil, nil
	}

	var result T
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *store[T, P]) Save(ctx context.Context, entity *T) (*T, error) {
	if entity == nil {
		return nil, ErrNilEntity
	}

	ptr := P(entity)
	now := r.now()

	if ptr.EntityID() == uuid.Nil {
		// v7 ids grow with insertion order inside the process.
		id, err := uuid.NewV7()
		if err != nil {
			return nil, err
		}
		ptr.PrePersist(id, now)
		if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
			return nil, err
		}
		return entity, nil
	}

	ptr.PreUpdate(now)
	if err := r.db.WithContext(ctx).Save(entity).Error; err != nil {
		return nil, err
	}
	return entity, nil
}

func (r *store[T, P]) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return nil
	}
	var dummy T
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&dummy).Error
}

// now is truncated to microseconds so values survive a round trip through
// postgres timestamptz unchanged.
func (r *store[T, P]) now() time.Time {
	return r.clock.Now().UTC().Truncate(time.Microsecond)
}

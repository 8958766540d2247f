package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNilEntity = errors.New("nil_entity")

// Entity is implemented by every model persisted through Repository.
// PrePersist runs once, before the first insert; PreUpdate runs before
// every later save.
type Entity interface {
	EntityID() uuid.UUID
	PrePersist(id uuid.UUID, now time.Time)
	PreUpdate(now time.Time)
}

// EntityPtr lets the store call pointer-receiver lifecycle methods on *T.
type EntityPtr[T any] interface {
	*T
	Entity
}

type Repository[T any] interface {
	WithTrx(tx *gorm.DB) Repository[T]
	FindAll(ctx context.Context) ([]*T, error)
	// FindByID returns nil, nil when no row matches.
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	Save(ctx context.Context, entity *T) (*T, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// Model carries identity and lifecycle timestamps. Embed it by value.
type Model struct {
	ID        uuid.UUID  `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time  `gorm:"not null;autoCreateTime:false" json:"createdAt"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt,omitempty"`
}

func (m Model) EntityID() uuid.UUID {
	return m.ID
}

func (m *Model) PrePersist(id uuid.UUID, now time.Time) {
	m.ID = id
	m.CreatedAt = now
	m.UpdatedAt = nil
}

// PreUpdate never lets updatedAt fall behind createdAt or a previous update,
// even if the wall clock steps backwards.
func (m *Model) PreUpdate(now time.Time) {
	floor := m.CreatedAt
	if m.UpdatedAt != nil && m.UpdatedAt.After(floor) {
		floor = *m.UpdatedAt
	}
	if now.Before(floor) {
		now = floor
	}
	m.UpdatedAt = &now
}

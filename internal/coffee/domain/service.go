package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateCoffeeRequest struct {
	Name  string          `json:"name"`
	Size  Size            `json:"size"`
	Price decimal.Decimal `json:"price"`
}

type UpdateCoffeeRequest struct {
	Name  string          `json:"name"`
	Size  Size            `json:"size"`
	Price decimal.Decimal `json:"price"`
}

type Response struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Size      Size       `json:"size"`
	Price     Price      `json:"price"`
	Enabled   bool       `json:"enabled"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Service manages coffees. Lookups and updates return a nil Response when
// the id is unknown; Activate and Inactivate do nothing in that case.
type Service interface {
	Create(ctx context.Context, req CreateCoffeeRequest) (*Response, error)
	FindAll(ctx context.Context) ([]Response, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Response, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateCoffeeRequest) (*Response, error)
	Activate(ctx context.Context, id uuid.UUID) error
	Inactivate(ctx context.Context, id uuid.UUID) error
}

var (
	ErrInvalidSize = errors.New("invalid_size")
)

package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/smallbiznis/coffeestore/pkg/repository"
)

// Repository lists addresses in insertion order.
type Repository interface {
	repository.Repository[Address]
	FindByClientID(ctx context.Context, clientID uuid.UUID) ([]*Address, error)
	FindByClientIDs(ctx context.Context, clientIDs []uuid.UUID) ([]*Address, error)
}

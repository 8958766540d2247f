package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	addressdomain "github.com/smallbiznis/coffeestore/internal/address/domain"
)

type CreateClientRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UpdateClientRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Response struct {
	ID        string                   `json:"id"`
	Name      string                   `json:"name"`
	Email     string                   `json:"email"`
	Addresses []addressdomain.Response `json:"addresses"`
	Enabled   bool                     `json:"enabled"`
	CreatedAt time.Time                `json:"createdAt"`
	UpdatedAt *time.Time               `json:"updatedAt,omitempty"`
}

// Service manages clients and their addresses. A nil Response with a nil
// error means the client does not exist.
type Service interface {
	Create(ctx context.Context, req CreateClientRequest) (*Response, error)
	FindAll(ctx context.Context) ([]Response, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Response, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateClientRequest) (*Response, error)
	Activate(ctx context.Context, id uuid.UUID) error
	Inactivate(ctx context.Context, id uuid.UUID) error

	FindAddresses(ctx context.Context, clientID uuid.UUID) ([]addressdomain.Response, error)
	AddAddress(ctx context.Context, clientID uuid.UUID, req addressdomain.CreateAddressRequest) (*addressdomain.Response, error)
}

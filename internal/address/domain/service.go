package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type CreateAddressRequest struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
}

type Response struct {
	ID           string     `json:"id"`
	Street       string     `json:"street"`
	Number       string     `json:"number"`
	Complement   string     `json:"complement"`
	Neighborhood string     `json:"neighborhood"`
	City         string     `json:"city"`
	State        string     `json:"state"`
	ZipCode      string     `json:"zipCode"`
	ClientID     string     `json:"clientId"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

type Service interface {
	// Create stores a new address for clientID. The caller checks that the
	// client exists.
	Create(ctx context.Context, clientID uuid.UUID, req CreateAddressRequest) (*Response, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]Response, error)
	ListByClients(ctx context.Context, clientIDs []uuid.UUID) (map[uuid.UUID][]Response, error)
	// DeleteByID succeeds whether or not the address exists.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

var (
	ErrInvalidClient = errors.New("invalid_client")
)

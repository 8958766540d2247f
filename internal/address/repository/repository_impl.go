package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/smallbiznis/coffeestore/internal/address/domain"
	"github.com/smallbiznis/coffeestore/internal/clock"
	"github.com/smallbiznis/coffeestore/pkg/repository"
	"gorm.io/gorm"
)

type repo struct {
	repository.Repository[domain.Address]
	db *gorm.DB
}

func Provide(db *gorm.DB, clk clock.Clock) domain.Repository {
	return &repo{
		Repository: repository.ProvideStore[domain.Address](db, clk),
		db:         db,
	}
}

func (r *repo) FindByClientID(ctx context.Context, clientID uuid.UUID) ([]*domain.Address, error) {
	var addresses []*domain.Address
	err := r.db.WithContext(ctx).Raw(
		`SELECT id, street, number, complement, neighborhood, city, state, zip_code, client_id, created_at, updated_at
		 FROM address WHERE client_id = ? ORDER BY id ASC`,
		clientID,
	).Scan(&addresses).Error
	if err != nil {
		return nil, err
	}
	return addresses, nil
}

func (r *repo) FindByClientIDs(ctx context.Context, clientIDs []uuid.UUID) ([]*domain.Address, error) {
	if len(clientIDs) == 0 {
		return nil, nil
	}

	var addresses []*domain.Address
	err := r.db.WithContext(ctx).Raw(
		`SELECT id, street, number, complement, neighborhood, city, state, zip_code, client_id, created_at, updated_at
		 FROM address WHERE client_id IN ? ORDER BY id ASC`,
		clientIDs,
	).Scan(&addresses).Error
	if err != nil {
		return nil, err
	}
	return addresses, nil
}

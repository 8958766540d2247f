package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/smallbiznis/coffeestore/internal/address/domain"
	obsmetrics "github.com/smallbiznis/coffeestore/internal/observability/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const entityName = "address"

type Params struct {
	fx.In

	Log     *zap.Logger
	Repo    domain.Repository
	Metrics *obsmetrics.Metrics `optional:"true"`
}

type Service struct {
	log     *zap.Logger
	repo    domain.Repository
	metrics *obsmetrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		log:     p.Log.Named("address.service"),
		repo:    p.Repo,
		metrics: p.Metrics,
	}
}

func (s *Service) Create(ctx context.Context, clientID uuid.UUID, req domain.CreateAddressRequest) (*domain.Response, error) {
	if clientID == uuid.Nil {
		return nil, domain.ErrInvalidClient
	}

	saved, err := s.repo.Save(ctx, domain.ToModel(clientID, req))
	if err != nil {
		return nil, err
	}
	s.metrics.RecordTransition(ctx, entityName, obsmetrics.TransitionCreate)

	resp := domain.ToResponse(saved)
	return &resp, nil
}

func (s *Service) ListByClient(ctx context.Context, clientID uuid.UUID) ([]domain.Response, error) {
	items, err := s.repo.FindByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return domain.ToResponseList(items), nil
}

func (s *Service) ListByClients(ctx context.Context, clientIDs []uuid.UUID) (map[uuid.UUID][]domain.Response, error) {
	items, err := s.repo.FindByClientIDs(ctx, clientIDs)
	if err != nil {
		return nil, err
	}

	grouped := make(map[uuid.UUID][]domain.Response, len(clientIDs))
	for _, item := range items {
		if item == nil {
			continue
		}
		grouped[item.ClientID] = append(grouped[item.ClientID], domain.ToResponse(item))
	}
	return grouped, nil
}

func (s *Service) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.metrics.RecordTransition(ctx, entityName, obsmetrics.TransitionDelete)
	return nil
}

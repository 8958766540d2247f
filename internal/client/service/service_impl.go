package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	addressdomain "github.com/smallbiznis/coffeestore/internal/address/domain"
	"github.com/smallbiznis/coffeestore/internal/client/domain"
	obsmetrics "github.com/smallbiznis/coffeestore/internal/observability/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const entityName = "client"

type Params struct {
	fx.In

	Log       *zap.Logger
	Repo      domain.Repository
	Addresses addressdomain.Service
	Metrics   *obsmetrics.Metrics `optional:"true"`
}

type Service struct {
	log       *zap.Logger
	repo      domain.Repository
	addresses addressdomain.Service
	metrics   *obsmetrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		log:       p.Log.Named("client.service"),
		repo:      p.Repo,
		addresses: p.Addresses,
		metrics:   p.Metrics,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateClientRequest) (*domain.Response, error) {
	saved, err := s.repo.Save(ctx, domain.ToModel(req))
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	s.metrics.RecordTransition(ctx, entityName, obsmetrics.TransitionCreate)

	return s.toResponse(ctx, saved)
}

func (s *Service) FindAll(ctx context.Context) ([]domain.Response, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		if item != nil {
			ids = append(ids, item.ID)
		}
	}

	addresses, err := s.addresses.ListByClients(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list client addresses: %w", err)
	}
	return domain.ToResponseList(items, addresses), nil
}

func (s *Service) FindByID(ctx context.Context, id uuid.UUID) (*domain.Response, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find client: %w", err)
	}
	if item == nil {
		return nil, nil
	}
	return s.toResponse(ctx, item)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req domain.UpdateClientRequest) (*domain.Response, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find client: %w", err)
	}
	if item == nil {
		return nil, nil
	}

	domain.ApplyUpdate(item, req)
	saved, err := s.repo.Save(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}
	s.metrics.RecordTransition(ctx, entityName, obsmetrics.TransitionUpdate)

	return s.toResponse(ctx, saved)
}

func (s *Service) Activate(ctx context.Context, id uuid.UUID) error {
	return s.setEnabled(ctx, id, true)
}

func (s *Service) Inactivate(ctx context.Context, id uuid.UUID) error {
	return s.setEnabled(ctx, id, false)
}

func (s *Service) FindAddresses(ctx context.Context, clientID uuid.UUID) ([]addressdomain.Response, error) {
	return s.addresses.ListByClient(ctx, clientID)
}

func (s *Service) AddAddress(ctx context.Context, clientID uuid.UUID, req addressdomain.CreateAddressRequest) (*addressdomain.Response, error) {
	client, err := s.repo.FindByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("find client: %w", err)
	}
	if client == nil {
		return nil, nil
	}
	return s.addresses.Create(ctx, client.ID, req)
}

func (s *Service) setEnabled(ctx context.Context, id uuid.UUID, enabled bool) error {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find client: %w", err)
	}
	if item == nil {
		s.log.Debug("client not found, nothing to change",
			zap.String("client_id", id.String()),
			zap.Bool("enabled", enabled),
		)
		return nil
	}

	item.Enabled = enabled
	if _, err := s.repo.Save(ctx, item); err != nil {
		return fmt.Errorf("save client: %w", err)
	}

	transition := obsmetrics.TransitionInactivate
	if enabled {
		transition = obsmetrics.TransitionActivate
	}
	s.metrics.RecordTransition(ctx, entityName, transition)
	return nil
}

func (s *Service) toResponse(ctx context.Context, c *domain.Client) (*domain.Response, error) {
	addresses, err := s.addresses.ListByClient(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("list client addresses: %w", err)
	}
	resp := domain.ToResponse(c, addresses)
	return &resp, nil
}

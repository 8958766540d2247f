package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/smallbiznis/coffeestore/internal/coffee/domain"
	obsmetrics "github.com/smallbiznis/coffeestore/internal/observability/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const entityName = "coffee"

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
		log:     p.Log.Named("coffee.service"),
		repo:    p.Repo,
		metrics: p.Metrics,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateCoffeeRequest) (*domain.Response, error) {
	if !req.Size.Valid() {
		return nil, domain.ErrInvalidSize
	}

	saved, err := s.repo.Save(ctx, domain.ToModel(req))
	if err != nil {
		return nil, fmt.Errorf("create coffee: %w", err)
	}
	s.metrics.RecordTransition(ctx, entityName, obsmetrics.TransitionCreate)

	resp := domain.ToResponse(saved)
	return &resp, nil
}

func (s *Service) FindAll(ctx context.Context) ([]domain.Response, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list coffees: %w", err)
	}
	return domain.ToResponseList(items), nil
}

func (s *Service) FindByID(ctx context.Context, id uuid.UUID) (*domain.Response, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find coffee: %w", err)
	}
	if item == nil {
		return nil, nil
	}

	resp := domain.ToResponse(item)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req domain.UpdateCoffeeRequest) (*domain.Response, error) {
	if !req.Size.Valid() {
		return nil, domain.ErrInvalidSize
	}

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find coffee: %w", err)
	}
	if item == nil {
		return nil, nil
	}

	domain.ApplyUpdate(item, req)
	saved, err := s.repo.Save(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("update coffee: %w", err)
	}
	s.metrics.RecordTransition(ctx, entityName, obsmetrics.TransitionUpdate)

	resp := domain.ToResponse(saved)
	return &resp, nil
}

func (s *Service) Activate(ctx context.Context, id uuid.UUID) error {
	return s.setEnabled(ctx, id, true)
}

func (s *Service) Inactivate(ctx context.Context, id uuid.UUID) error {
	return s.setEnabled(ctx, id, false)
}

func (s *Service) setEnabled(ctx context.Context, id uuid.UUID, enabled bool) error {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find coffee: %w", err)
	}
	if item == nil {
		s.log.Debug("coffee not found, nothing to change",
			zap.String("coffee_id", id.String()),
			zap.Bool("enabled", enabled),
		)
		return nil
	}

	item.Enabled = enabled
	if _, err := s.repo.Save(ctx, item); err != nil {
		return fmt.Errorf("save coffee: %w", err)
	}

	transition := obsmetrics.TransitionInactivate
	if enabled {
		transition = obsmetrics.TransitionActivate
	}
	s.metrics.RecordTransition(ctx, entityName, transition)
	return nil
}

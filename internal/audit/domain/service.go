package domain

import (
	"context"
	"errors"
)

const (
	TargetClient  = "client"
	TargetCoffee  = "coffee"
	TargetAddress = "address"
)

type Service interface {
	// AuditLog writes one entry. Request id, IP address and user agent are
	// taken from ctx when present.
	AuditLog(ctx context.Context, action string, targetType string, targetID *string, metadata map[string]any) error
	// ListByTarget returns the newest entries first.
	ListByTarget(ctx context.Context, targetType, targetID string) ([]AuditLog, error)
}

var (
	ErrInvalidAction = errors.New("invalid_action")
	ErrInvalidTarget = errors.New("invalid_target")
)

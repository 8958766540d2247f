package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	auditdomain "github.com/smallbiznis/coffeestore/internal/audit/domain"
	coffeedomain "github.com/smallbiznis/coffeestore/internal/coffee/domain"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		kind   string
	}{
		{"nil", nil, http.StatusInternalServerError, "internal_error"},
		{"validation", invalidIDError(), http.StatusBadRequest, "validation_error"},
		{"wrapped size", fmt.Errorf("create: %w", coffeedomain.ErrInvalidSize), http.StatusBadRequest, "validation_error"},
		{"not found", gorm.ErrRecordNotFound, http.StatusNotFound, "not_found"},
		{"duplicate", &pgconn.PgError{Code: "23505"}, http.StatusConflict, "conflict"},
		{"foreign key", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503"}), http.StatusConflict, "conflict"},
		{"rate limited", ErrRateLimited, http.StatusTooManyRequests, "rate_limited"},
		{"unavailable", ErrServiceUnavailable, http.StatusServiceUnavailable, "service_unavailable"},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, payload := mapError(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.kind, payload.Type)
		})
	}
}

func TestWrappedSizeErrorKeepsCode(t *testing.T) {
	_, payload := mapError(fmt.Errorf("update: %w", coffeedomain.ErrInvalidSize))
	if assert.Len(t, payload.Errors, 1) {
		assert.Equal(t, "invalid_size", payload.Errors[0].Code)
		assert.Equal(t, "size", payload.Errors[0].Field)
	}
}

func TestAuditTargetErrorNamesField(t *testing.T) {
	status, payload := mapError(fmt.Errorf("list: %w", auditdomain.ErrInvalidTarget))
	assert.Equal(t, http.StatusBadRequest, status)
	if assert.Len(t, payload.Errors, 1) {
		assert.Equal(t, "invalid_target", payload.Errors[0].Code)
		assert.Equal(t, "targetType", payload.Errors[0].Field)
	}
}

func TestClassifyErrorForLog(t *testing.T) {
	kind, code := classifyErrorForLog(invalidRequestError())
	assert.Equal(t, "validation_error", kind)
	assert.Equal(t, "invalid_request", code)

	kind, code = classifyErrorForLog(ErrRateLimited)
	assert.Equal(t, "rate_limited", kind)
	assert.Equal(t, "rate_limited", code)
}

func TestRetryAfterSeconds(t *testing.T) {
	assert.Equal(t, "1", retryAfterSeconds(0))
	assert.Equal(t, "1", retryAfterSeconds(200_000_000))
	assert.Equal(t, "3", retryAfterSeconds(2_100_000_000))
}

package postgres

import (
	"context"
	"testing"

	domainerrors "secrets/internal/domain/errors"
	"secrets/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, want: true},
		{name: "driver message", err: errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_username" (SQLSTATE 23505)`), want: true},
		{name: "other error", err: errors.New("connection refused"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueConstraintViolation(tt.err))
		})
	}
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	assert.True(t, isNotNullConstraintViolation(errors.New(`null value in column "username" violates not-null constraint (SQLSTATE 23502)`)))
	assert.False(t, isNotNullConstraintViolation(errors.New("timeout")))
}

func TestStoreError(t *testing.T) {
	assert.NoError(t, storeError(nil, "noop"))

	err := storeError(errors.New("connection refused"), "failed to find user")
	assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))

	var appErr domainerrors.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "failed to find user", appErr.Details())

	timeout := storeError(context.DeadlineExceeded, "slow")
	assert.True(t, errors.Is(timeout, domainerrors.ErrStoreUnavailable))
	assert.True(t, errors.Is(timeout, context.DeadlineExceeded))

	canceled := storeError(context.Canceled, "gone")
	assert.False(t, errors.Is(canceled, domainerrors.ErrStoreUnavailable))
}

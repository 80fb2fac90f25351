package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTranslate(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		target error
	}{
		{name: "record not found", err: gorm.ErrRecordNotFound, target: ErrNotFound},
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, target: ErrConflict},
		{name: "sqlite unique", err: errors.New("constraint failed: UNIQUE constraint failed: customers.tax_id (2067)"), target: ErrConflict},
		{name: "postgres unique", err: errors.New(`ERROR: duplicate key value violates unique constraint "idx_customers_tax_id" (SQLSTATE 23505)`), target: ErrConflict},
		{name: "mysql unique", err: errors.New("Error 1062 (23000): Duplicate entry '123' for key 'customers.idx_customers_tax_id'"), target: ErrConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Translate("customer", "123", tc.err)
			require.ErrorIs(t, err, tc.target)

			var recErr *RecordError
			require.ErrorAs(t, err, &recErr)
			require.Equal(t, "customer", recErr.Entity)
			require.Equal(t, "123", recErr.Key)
		})
	}
}

func TestTranslate_Passthrough(t *testing.T) {
	require.NoError(t, Translate("x", "y", nil))

	raw := errors.New("connection refused")
	require.Equal(t, raw, Translate("x", "y", raw))
	require.False(t, IsBusiness(raw))
}

func TestValidation(t *testing.T) {
	err := Validation("price must be greater than zero, got %s", "0")
	require.ErrorIs(t, err, ErrValidation)
	require.Contains(t, err.Error(), "got 0")
	require.True(t, IsBusiness(fmt.Errorf("wrap: %w", err)))
}

//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"coupon-processor/internal/infra"
	"coupon-processor/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		kind       []infra.RepositoryErrorKind
		expectKind infra.RepositoryErrorKind
		dbFailure  bool
	}{
		{
			name:       "explicit not found",
			err:        pgx.ErrNoRows,
			kind:       []infra.RepositoryErrorKind{infra.KindNotFound},
			expectKind: infra.KindNotFound,
		},
		{
			name:       "unique violation",
			err:        &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
			expectKind: infra.KindDuplicateKey,
			dbFailure:  true,
		},
		{
			name:       "check violation",
			err:        &pgconn.PgError{Code: "23514", Message: "new row violates check constraint"},
			expectKind: infra.KindCheckViolated,
			dbFailure:  true,
		},
		{
			name:       "generic failure",
			err:        errors.New("connection reset by peer"),
			expectKind: infra.KindDBFailure,
			dbFailure:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := infra.WrapRepoErr("failed to load coupon", tc.err, tc.kind...)

			assert.True(t, infra.IsKind(wrapped, tc.expectKind), "got %v", wrapped)
			assert.Equal(t, tc.dbFailure, errs.Is(wrapped, errs.ErrDatabaseOperationFailed))
			assert.ErrorIs(t, wrapped, tc.err)
			assert.Contains(t, wrapped.Error(), "failed to load coupon")
		})
	}
}

func TestIsKind_ForeignError(t *testing.T) {
	assert.False(t, infra.IsKind(errors.New("plain"), infra.KindNotFound))
}

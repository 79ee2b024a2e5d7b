//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// Querier is satisfied by *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CreateTestCoupon inserts a coupon that expires in a day and returns its id.
func CreateTestCoupon(t *testing.T, db Querier, code string, status string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO coupons (code, description, discount_value, expiration_date, status, published)
		VALUES ($1, $2, $3, $4, $5, false)
		RETURNING id`,
		code, "fixture coupon", 0.8, time.Now().Add(24*time.Hour), status,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func CouponStatus(t *testing.T, db Querier, id int64) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM coupons WHERE id = $1", id).Scan(&status)
	require.NoError(t, err)

	return status
}

// ResetDB empties the coupons table and restarts its id sequence.
// goose_db_version is left alone.
func ResetDB(db Querier) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := db.Exec(ctx, "TRUNCATE coupons RESTART IDENTITY")
	return err
}

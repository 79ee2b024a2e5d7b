//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"coupon-processor/internal/domain/coupon"
	sqlc "coupon-processor/internal/infra/sqlc/generated"
	"coupon-processor/internal/pkg/clock"
	"coupon-processor/internal/pkg/errs"
	"coupon-processor/internal/usecase/commands"
	"coupon-processor/internal/usecase/readmodel"
	"coupon-processor/internal/usecase/shared"
	"coupon-processor/tests/common/builder"
	sharedmock "coupon-processor/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	uow   *sharedmock.MockUnitOfWork
	tx    *sharedmock.MockTx
	repo  *sharedmock.MockCouponRepository
	cache *sharedmock.MockCouponCache
	clock *clock.MockClock
	cmds  commands.CouponCommands
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		uow:   sharedmock.NewMockUnitOfWork(ctrl),
		tx:    sharedmock.NewMockTx(ctrl),
		repo:  sharedmock.NewMockCouponRepository(ctrl),
		cache: sharedmock.NewMockCouponCache(ctrl),
		clock: clock.NewMockClock(builder.NewCouponBuilder().Now),
	}
	f.cmds = commands.NewCouponCommands(f.uow, f.cache, f.clock)

	f.tx.EXPECT().Coupons().Return(f.repo).AnyTimes()
	f.tx.EXPECT().DB().Return(sqlc.DBTX(nil)).AnyTimes()
	return f
}

func (f *fixture) runWithinTx() {
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		})
}

// =============================================================================
// Create Coupon Tests
// =============================================================================

func TestCouponCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success: coupon stored as active with normalized code", func(t *testing.T) {
		f := newFixture(t)
		b := builder.NewCouponBuilder().WithCode("AB-C12@3").WithPublished(true)
		stored := builder.NewCouponBuilder().WithID(10).WithPublished(true).BuildRM()

		f.runWithinTx()
		f.repo.EXPECT().Store(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, c *coupon.Coupon) (*readmodel.CouponRM, error) {
				assert.Nil(t, c.ID())
				assert.Equal(t, "ABC123", c.Code().String())
				assert.Equal(t, coupon.StatusActive, c.Status())
				assert.True(t, c.Published())
				assert.False(t, c.Redeemed())
				return stored, nil
			})

		rm, err := f.cmds.Create(ctx, b.BuildCommand())

		require.NoError(t, err)
		assert.Equal(t, int64(10), rm.ID)
		assert.Equal(t, "ACTIVE", rm.Status)
	})

	t.Run("error: validation fails before any storage access", func(t *testing.T) {
		f := newFixture(t)
		req := builder.NewCouponBuilder().WithDiscountValue("0.3").BuildCommand()

		rm, err := f.cmds.Create(ctx, req)

		require.Error(t, err)
		assert.Nil(t, rm)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
		assert.Equal(t, "minimum discount value is 0.5", err.Error())
	})

	t.Run("error: expiration equal to the clock is rejected", func(t *testing.T) {
		f := newFixture(t)
		req := builder.NewCouponBuilder().WithExpirationDate(f.clock.Now()).BuildCommand()

		_, err := f.cmds.Create(ctx, req)

		assert.ErrorIs(t, err, coupon.ErrExpirationInPast)
	})

	t.Run("error: storage failure is propagated", func(t *testing.T) {
		f := newFixture(t)
		dbErr := errs.Mark(errors.New("connection refused"), errs.ErrDatabaseOperationFailed)

		f.runWithinTx()
		f.repo.EXPECT().Store(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, dbErr)

		rm, err := f.cmds.Create(ctx, builder.NewCouponBuilder().BuildCommand())

		require.Error(t, err)
		assert.Nil(t, rm)
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}

// =============================================================================
// Delete Coupon Tests
// =============================================================================

func TestCouponCommands_Delete(t *testing.T) {
	ctx := context.Background()
	const id int64 = 5

	t.Run("success: active coupon is soft deleted and cache invalidated", func(t *testing.T) {
		f := newFixture(t)
		existing := builder.NewCouponBuilder().WithID(id).BuildStored()

		gomock.InOrder(
			f.repo.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), id).Return(existing, nil),
			f.repo.EXPECT().SoftDelete(gomock.Any(), gomock.Any(), id).Return(int64(1), nil),
			f.cache.EXPECT().Invalidate(gomock.Any(), id).Return(nil),
		)
		f.runWithinTx()

		err := f.cmds.Delete(ctx, id)

		require.NoError(t, err)
		assert.True(t, existing.IsDeleted())
	})

	t.Run("success: cache failure does not fail the delete", func(t *testing.T) {
		f := newFixture(t)
		existing := builder.NewCouponBuilder().WithID(id).BuildStored()

		f.runWithinTx()
		f.repo.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), id).Return(existing, nil)
		f.repo.EXPECT().SoftDelete(gomock.Any(), gomock.Any(), id).Return(int64(1), nil)
		f.cache.EXPECT().Invalidate(gomock.Any(), id).Return(errors.New("redis down"))

		assert.NoError(t, f.cmds.Delete(ctx, id))
	})

	t.Run("error: unknown id", func(t *testing.T) {
		f := newFixture(t)
		repoErr := errs.Mark(errors.New("no rows in result set"), errs.ErrCouponNotFound)

		f.runWithinTx()
		f.repo.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), id).Return(nil, repoErr)

		err := f.cmds.Delete(ctx, id)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrCouponNotFound))
		assert.Equal(t, "coupon not found with id: 5", err.Error())
	})

	t.Run("error: coupon already deleted", func(t *testing.T) {
		f := newFixture(t)
		existing := builder.NewCouponBuilder().WithID(id).AsDeleted().BuildStored()

		f.runWithinTx()
		f.repo.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), id).Return(existing, nil)

		err := f.cmds.Delete(ctx, id)

		assert.ErrorIs(t, err, coupon.ErrCouponAlreadyDeleted)
	})

	t.Run("error: concurrent delete wins the conditional update", func(t *testing.T) {
		f := newFixture(t)
		existing := builder.NewCouponBuilder().WithID(id).BuildStored()

		f.runWithinTx()
		f.repo.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), id).Return(existing, nil)
		f.repo.EXPECT().SoftDelete(gomock.Any(), gomock.Any(), id).Return(int64(0), nil)

		err := f.cmds.Delete(ctx, id)

		assert.ErrorIs(t, err, coupon.ErrCouponAlreadyDeleted)
	})

	t.Run("error: storage failure on lock", func(t *testing.T) {
		f := newFixture(t)
		dbErr := errs.Mark(errors.New("timeout"), errs.ErrDatabaseOperationFailed)

		f.runWithinTx()
		f.repo.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), id).Return(nil, dbErr)

		err := f.cmds.Delete(ctx, id)

		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
		assert.False(t, errs.Is(err, errs.ErrCouponNotFound))
	})

	t.Run("clock does not affect deleting an expired coupon", func(t *testing.T) {
		f := newFixture(t)
		f.clock.Add(365 * 24 * time.Hour)
		existing := builder.NewCouponBuilder().WithID(id).BuildStored()

		f.runWithinTx()
		f.repo.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), id).Return(existing, nil)
		f.repo.EXPECT().SoftDelete(gomock.Any(), gomock.Any(), id).Return(int64(1), nil)
		f.cache.EXPECT().Invalidate(gomock.Any(), id).Return(nil)

		assert.NoError(t, f.cmds.Delete(ctx, id))
	})
}

//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"coupon-processor/internal/pkg/errs"
	"coupon-processor/internal/usecase/queries"
	"coupon-processor/tests/common/builder"
	queriesmock "coupon-processor/tests/mock/queries"
	sharedmock "coupon-processor/tests/mock/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCouponQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	const id int64 = 3

	testCases := []struct {
		name        string
		setupMock   func(*queriesmock.MockCouponReadStore, *sharedmock.MockCouponCache)
		expectedErr error
		expectedMsg string
	}{
		{
			name: "success: cache hit skips the store",
			setupMock: func(store *queriesmock.MockCouponReadStore, cache *sharedmock.MockCouponCache) {
				cache.EXPECT().Get(ctx, id).Return(builder.NewCouponBuilder().WithID(id).BuildRM(), true, nil)
			},
		},
		{
			name: "success: cache miss loads and fills the cache",
			setupMock: func(store *queriesmock.MockCouponReadStore, cache *sharedmock.MockCouponCache) {
				rm := builder.NewCouponBuilder().WithID(id).BuildRM()
				cache.EXPECT().Get(ctx, id).Return(nil, false, nil)
				store.EXPECT().FindByID(ctx, id).Return(rm, nil)
				cache.EXPECT().Set(ctx, rm).Return(nil)
			},
		},
		{
			name: "success: cache errors fall back to the store",
			setupMock: func(store *queriesmock.MockCouponReadStore, cache *sharedmock.MockCouponCache) {
				rm := builder.NewCouponBuilder().WithID(id).BuildRM()
				cache.EXPECT().Get(ctx, id).Return(nil, false, errors.New("redis down"))
				store.EXPECT().FindByID(ctx, id).Return(rm, nil)
				cache.EXPECT().Set(ctx, rm).Return(errors.New("redis down"))
			},
		},
		{
			name: "error: coupon not found",
			setupMock: func(store *queriesmock.MockCouponReadStore, cache *sharedmock.MockCouponCache) {
				cache.EXPECT().Get(ctx, id).Return(nil, false, nil)
				store.EXPECT().FindByID(ctx, id).Return(nil, errs.Mark(errors.New("no rows"), errs.ErrCouponNotFound))
			},
			expectedErr: errs.ErrCouponNotFound,
			expectedMsg: "coupon not found with id: 3",
		},
		{
			name: "error: database failure",
			setupMock: func(store *queriesmock.MockCouponReadStore, cache *sharedmock.MockCouponCache) {
				cache.EXPECT().Get(ctx, id).Return(nil, false, nil)
				store.EXPECT().FindByID(ctx, id).Return(nil, errs.Mark(errors.New("timeout"), errs.ErrDatabaseOperationFailed))
			},
			expectedErr: errs.ErrDatabaseOperationFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := queriesmock.NewMockCouponReadStore(ctrl)
			cache := sharedmock.NewMockCouponCache(ctrl)
			tc.setupMock(store, cache)

			q := queries.NewCouponQueries(store, cache)
			rm, err := q.GetByID(ctx, id)

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectedErr), "expected [%v] but got [%v]", tc.expectedErr, err)
				if tc.expectedMsg != "" {
					assert.Equal(t, tc.expectedMsg, err.Error())
				}
				assert.Nil(t, rm)
				return
			}

			require.NoError(t, err)
			want := builder.NewCouponBuilder().WithID(id).BuildRM()
			if diff := cmp.Diff(want, rm); diff != "" {
				t.Errorf("coupon mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

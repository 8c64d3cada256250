package core

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAprToApy(t *testing.T) {
	assert.True(t, AprToApy(decimal.Zero).IsZero())

	// Hourly compounding lifts the APY above the APR, but not by much at
	// moderate rates.
	apr := decimal.NewFromFloat(0.05)
	apy := AprToApy(apr)
	assert.True(t, apy.GreaterThan(apr), "apy %s should exceed apr %s", apy, apr)
	assert.True(t, apy.LessThan(apr.Mul(decimal.NewFromFloat(1.06))))
}

func TestBpsToDecimal(t *testing.T) {
	assert.True(t, BpsToDecimal(10_000).Equal(ONE))
	assert.True(t, BpsToDecimal(500).Equal(decimal.NewFromFloat(0.05)))
	assert.True(t, BpsToDecimal(0).IsZero())
}

func TestPoolAnalytics(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	require.NoError(t, f.engine.Deposit(ctx, f.lender, 10_000, 0))
	f.collateral.value = 1_500
	f.collateral.price = 2_000
	require.NoError(t, f.engine.Borrow(ctx, f.borrower, 1_000, "ETH"))

	analytics, err := f.engine.PoolAnalytics(ctx, "ETH")
	require.NoError(t, err)

	assert.Equal(t, uint64(1_000), analytics.UtilizationBps)
	assert.Equal(t, uint64(300), analytics.BorrowRateBps)
	assert.True(t, analytics.BorrowApr.Equal(decimal.NewFromFloat(0.03)))
	assert.True(t, analytics.BorrowApy.GreaterThan(analytics.BorrowApr))
	assert.Len(t, analytics.TierApys, 3)
	// Higher tiers compound a higher effective rate.
	assert.True(t, analytics.TierApys[2].GreaterThan(analytics.TierApys[0]))

	assert.Equal(t, uint64(NO_LIMIT), analytics.RemainingDepositCapacity)
	// min(available 9000, utilization headroom 9500-1000).
	assert.Equal(t, uint64(8_500), analytics.RemainingBorrowCapacity)
	assert.Equal(t, uint64(2_000), analytics.CollateralPrice)
}

func TestPoolAnalyticsStalePrice(t *testing.T) {
	f := newEngineFixture(t)
	f.collateral.priceErr = StalePrice

	_, err := f.engine.PoolAnalytics(context.Background(), "ETH")
	assert.ErrorIs(t, err, StalePrice)

	// Without a collateral token the price feed is never consulted.
	_, err = f.engine.PoolAnalytics(context.Background(), "")
	assert.NoError(t, err)
}

func TestAccountNetApy(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	require.NoError(t, f.engine.Deposit(ctx, f.lender, 10_000, 0))
	f.collateral.value = 1_500
	require.NoError(t, f.engine.Borrow(ctx, f.borrower, 1_000, "ETH"))

	// Pure lender: net APY is the compounded pool rate.
	lenderApy, err := f.engine.AccountNetApy(ctx, f.lender)
	require.NoError(t, err)
	assert.True(t, lenderApy.Equal(AprToApy(BpsToDecimal(300))), "got %s", lenderApy)

	// Pure borrower: negative.
	borrowerApy, err := f.engine.AccountNetApy(ctx, f.borrower)
	require.NoError(t, err)
	assert.True(t, borrowerApy.IsNegative(), "got %s", borrowerApy)

	// No positions at all: zero.
	idleApy, err := f.engine.AccountNetApy(ctx, f.liquidator)
	require.NoError(t, err)
	assert.True(t, idleApy.IsZero())
}

func TestProjectedInterest(t *testing.T) {
	f := newEngineFixture(t)

	// Idle pool projects at the 2% base rate.
	projected := f.engine.ProjectedInterest(1_000_000, SECONDS_PER_YEAR)
	assert.True(t, projected.Equal(decimal.NewFromInt(20_000)), "got %s", projected)

	assert.True(t, f.engine.ProjectedInterest(1_000_000, 0).IsZero())
	assert.True(t, f.engine.ProjectedInterest(1_000_000, -1).IsZero())
}

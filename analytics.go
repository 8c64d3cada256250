package core

import (
	"context"

	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
)

// Display-side analytics. Engine state lives in integer basis points;
// everything here converts to decimals for reporting only and never
// feeds back into ledger math.

type PoolAnalytics struct {
	PoolId         uuid.UUID `json:"poolId"`
	UtilizationBps uint64    `json:"utilizationBps"`
	BorrowRateBps  uint64    `json:"borrowRateBps"`

	BorrowApr decimal.Decimal `json:"borrowApr"`
	BorrowApy decimal.Decimal `json:"borrowApy"`
	SupplyApr decimal.Decimal `json:"supplyApr"`
	SupplyApy decimal.Decimal `json:"supplyApy"`

	// Effective supply APY per lock tier, indexed like the schedule.
	TierApys []decimal.Decimal `json:"tierApys"`

	RemainingDepositCapacity uint64 `json:"remainingDepositCapacity"`
	RemainingBorrowCapacity  uint64 `json:"remainingBorrowCapacity"`

	CollateralPrice uint64 `json:"collateralPrice,omitempty"`
}

/*
const aprToApy = (apr: number, compoundingFrequency = HOURS_PER_YEAR) =>

	(1 + apr / compoundingFrequency) ** compoundingFrequency - 1;
*/
func AprToApy(apr decimal.Decimal) decimal.Decimal {
	hoursPerYear := decimal.NewFromInt(HOURS_PER_YEAR)
	if hoursPerYear.IsZero() {
		return decimal.Zero
	}
	return (ONE.Add(apr.Div(hoursPerYear))).Pow(hoursPerYear).Sub(ONE).Round(8)
}

// BpsToDecimal converts an integer basis-point rate to its decimal ratio.
func BpsToDecimal(bps uint64) decimal.Decimal {
	return decimal.NewFromUint64(bps).Div(BPS_DENOMINATOR_DEC)
}

// PoolAnalytics reports the pool's current rates and remaining capacity.
// When collateralToken is non-empty the collateral manager's reference
// price is included.
func (e *PoolEngine) PoolAnalytics(ctx context.Context, collateralToken string) (*PoolAnalytics, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	utilizationBps := e.pool.PoolState.UtilizationBps()
	borrowRateBps := e.pool.InterestRateConfig.CurrentRateBps(utilizationBps)
	borrowApr := BpsToDecimal(borrowRateBps)

	analytics := &PoolAnalytics{
		PoolId:         e.pool.Id,
		UtilizationBps: utilizationBps,
		BorrowRateBps:  borrowRateBps,
		BorrowApr:      borrowApr,
		BorrowApy:      AprToApy(borrowApr),
		SupplyApr:      borrowApr,
		SupplyApy:      AprToApy(borrowApr),
	}

	for _, tier := range e.pool.LockSchedule {
		tierApr := BpsToDecimal(borrowRateBps + tier.BonusRateBps)
		analytics.TierApys = append(analytics.TierApys, AprToApy(tierApr))
	}

	analytics.RemainingDepositCapacity = e.remainingDepositCapacity()
	analytics.RemainingBorrowCapacity = e.remainingBorrowCapacity()

	if collateralToken != "" {
		price, err := e.collateral.GetCollateralPrice(ctx, collateralToken)
		if err != nil {
			return nil, err
		}
		analytics.CollateralPrice = price
	}

	return analytics, nil
}

// AccountNetApy blends an account's lending and borrowing exposure into
// one rate: each position's APR weighted by its value over the account's
// net value in this pool, compounded to an APY. Negative when the
// account borrows more than it lends.
func (e *PoolEngine) AccountNetApy(ctx context.Context, accountId uuid.UUID) (decimal.Decimal, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clk.Now().Unix()
	poolRate := e.currentRateBps()

	var assetValue, assetApr, liabilityValue, liabilityApr decimal.Decimal
	if position, ok := e.lenders[accountId]; ok {
		claim, err := position.TotalClaim()
		if err != nil {
			return decimal.Zero, err
		}
		assetValue = decimal.NewFromUint64(claim)
		assetApr = BpsToDecimal(position.EffectiveRateBps(poolRate, e.pool.LockSchedule, now))
	}
	if position, ok := e.borrowers[accountId]; ok && position.IsActive() {
		owed, err := position.TotalOwed()
		if err != nil {
			return decimal.Zero, err
		}
		liabilityValue = decimal.NewFromUint64(owed)
		liabilityApr = BpsToDecimal(poolRate)
	}

	netValue := assetValue.Sub(liabilityValue).Abs()
	if netValue.IsZero() {
		netValue = ONE
	}
	weightedApr := assetApr.Mul(assetValue).
		Sub(liabilityApr.Mul(liabilityValue)).
		Div(netValue)
	return AprToApy(weightedApr), nil
}

// ProjectedInterest is the interest a principal would accrue at the
// pool's current rate over the given horizon, as a decimal amount. A
// quote, not a commitment: the realized rate floats with utilization.
func (e *PoolEngine) ProjectedInterest(principal uint64, horizonSeconds int64) decimal.Decimal {
	e.mu.Lock()
	defer e.mu.Unlock()

	if horizonSeconds <= 0 {
		return decimal.Zero
	}
	rate := BpsToDecimal(e.currentRateBps())
	return decimal.NewFromUint64(principal).
		Mul(rate).
		Mul(decimal.NewFromInt(horizonSeconds)).
		Div(decimal.NewFromInt(SECONDS_PER_YEAR))
}

// caller holds e.mu
func (e *PoolEngine) remainingDepositCapacity() uint64 {
	if !e.pool.IsDepositLimitActive() {
		return NO_LIMIT
	}
	if e.pool.TotalPoolFunds >= e.pool.DepositLimit {
		return 0
	}
	return e.pool.DepositLimit - e.pool.TotalPoolFunds
}

// caller holds e.mu
func (e *PoolEngine) remainingBorrowCapacity() uint64 {
	capacity := e.pool.AvailableFunds

	// Utilization ceiling headroom.
	maxBorrow, err := BpsOf(e.pool.TotalPoolFunds, MAX_UTILIZATION_BPS)
	if err == nil {
		if maxBorrow <= e.pool.TotalBorrowed {
			return 0
		}
		if headroom := maxBorrow - e.pool.TotalBorrowed; headroom < capacity {
			capacity = headroom
		}
	}

	if e.pool.IsBorrowCapActive() {
		if e.pool.BorrowCap <= e.pool.TotalBorrowed {
			return 0
		}
		if headroom := e.pool.BorrowCap - e.pool.TotalBorrowed; headroom < capacity {
			capacity = headroom
		}
	}
	return capacity
}

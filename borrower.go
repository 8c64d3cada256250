package core

import (
	"context"

	"github.com/facebookgo/clock"
	"github.com/gofrs/uuid"
)

type (
	BorrowerStore interface {
		FindBorrowerPosition(ctx context.Context, poolId, borrowerId uuid.UUID) (*BorrowerPosition, error)
		UpsertBorrowerPosition(ctx context.Context, position *BorrowerPosition) error
		ListBorrowerPositions(ctx context.Context, poolId uuid.UUID) ([]*BorrowerPosition, error)
	}

	// BorrowerPosition tracks outstanding principal and accumulated
	// interest for one borrower, plus a reference to the collateral
	// asset backing the debt. The collateral itself is owned by the
	// external collateral manager. Created on first borrow, zeroed on
	// full repay or liquidation, never hard-deleted.
	BorrowerPosition struct {
		BorrowerId uuid.UUID `json:"borrowerId"`
		PoolId     uuid.UUID `json:"poolId"`

		Borrowed            uint64 `json:"borrowed"`
		AccumulatedInterest uint64 `json:"accumulatedInterest"`
		CollateralToken     string `json:"collateralToken"`
		LastUpdate          int64  `json:"lastUpdate"`
	}
)

func NewBorrowerPosition(clk clock.Clock, poolId, borrowerId uuid.UUID) *BorrowerPosition {
	return &BorrowerPosition{
		BorrowerId: borrowerId,
		PoolId:     poolId,
		LastUpdate: clk.Now().Unix(),
	}
}

func (bp *BorrowerPosition) Clone() *BorrowerPosition {
	clone := *bp
	return &clone
}

func (bp *BorrowerPosition) Restore(snap *BorrowerPosition) {
	*bp = *snap
}

func (bp *BorrowerPosition) IsActive() bool {
	return bp.Borrowed > 0 || bp.AccumulatedInterest > 0
}

// TotalOwed is principal plus accumulated interest.
func (bp *BorrowerPosition) TotalOwed() (uint64, error) {
	return CheckedAdd(bp.Borrowed, bp.AccumulatedInterest)
}

// SettleInterest lazily accrues borrow interest on the outstanding
// principal for the elapsed time since last touch. Returns the interest
// added for this settlement.
func (bp *BorrowerPosition) SettleInterest(rateBps uint64, now int64) (uint64, error) {
	elapsed := now - bp.LastUpdate
	if elapsed <= 0 {
		return 0, nil
	}
	bp.LastUpdate = now

	interest, err := CalcAccruedInterest(bp.Borrowed, rateBps, elapsed)
	if err != nil {
		return 0, err
	}
	if interest == 0 {
		return 0, nil
	}

	accumulated, err := CheckedAdd(bp.AccumulatedInterest, interest)
	if err != nil {
		return 0, err
	}
	bp.AccumulatedInterest = accumulated
	return interest, nil
}

// ZeroDebt closes the position after a full repay or liquidation. The
// record survives with zero balances so history queries keep working.
func (bp *BorrowerPosition) ZeroDebt(now int64) {
	bp.Borrowed = 0
	bp.AccumulatedInterest = 0
	bp.CollateralToken = ""
	bp.LastUpdate = now
}

// SplitRepayment apportions a partial repayment between interest and
// principal proportionally to their share of the total owed:
// interestPortion = amount * accumulatedInterest / totalOwed, truncating
// toward zero, with the remainder reducing principal. The truncation
// direction determines how quickly principal shrinks on large loans and
// must not change.
func (bp *BorrowerPosition) SplitRepayment(amount uint64) (interestPortion, principalPortion uint64, err error) {
	totalOwed, err := bp.TotalOwed()
	if err != nil {
		return 0, 0, err
	}
	if totalOwed == 0 || amount > totalOwed {
		return 0, 0, RepayAmountExceeded
	}
	if amount == totalOwed {
		return bp.AccumulatedInterest, bp.Borrowed, nil
	}
	interestPortion, err = MulDiv(amount, bp.AccumulatedInterest, totalOwed)
	if err != nil {
		return 0, 0, err
	}
	return interestPortion, amount - interestPortion, nil
}

package core

import (
	"context"

	"github.com/facebookgo/clock"
	"github.com/gofrs/uuid"
)

type (
	LenderStore interface {
		FindLenderPosition(ctx context.Context, poolId, lenderId uuid.UUID) (*LenderPosition, error)
		UpsertLenderPosition(ctx context.Context, position *LenderPosition) error
		ListLenderPositions(ctx context.Context, poolId uuid.UUID) ([]*LenderPosition, error)
	}

	// LenderPosition tracks a single depositor: principal balance, lock
	// commitment and interest earned but not yet withdrawn. Created on
	// first deposit, never hard-deleted; the balance can return to zero.
	LenderPosition struct {
		LenderId uuid.UUID `json:"lenderId"`
		PoolId   uuid.UUID `json:"poolId"`

		Balance        uint64 `json:"balance"`
		LockedUntil    int64  `json:"lockedUntil"`
		LockTierIndex  int    `json:"lockTierIndex"`
		EarnedInterest uint64 `json:"earnedInterest"`
		LastUpdate     int64  `json:"lastUpdate"`
	}
)

func NewLenderPosition(clk clock.Clock, poolId, lenderId uuid.UUID) *LenderPosition {
	return &LenderPosition{
		LenderId:   lenderId,
		PoolId:     poolId,
		LastUpdate: clk.Now().Unix(),
	}
}

func (lp *LenderPosition) Clone() *LenderPosition {
	clone := *lp
	return &clone
}

func (lp *LenderPosition) Restore(snap *LenderPosition) {
	*lp = *snap
}

// IsLocked reports whether the position's lock commitment is still
// running at the given timestamp.
func (lp *LenderPosition) IsLocked(now int64) bool {
	return now < lp.LockedUntil
}

// EffectiveRateBps is the lender's accrual rate: the pool rate plus the
// lock-tier bonus while the commitment is still running.
func (lp *LenderPosition) EffectiveRateBps(poolRateBps uint64, schedule LockSchedule, now int64) uint64 {
	if !lp.IsLocked(now) {
		return poolRateBps
	}
	if !schedule.ValidIndex(lp.LockTierIndex) {
		return poolRateBps
	}
	return poolRateBps + schedule[lp.LockTierIndex].BonusRateBps
}

// SettleInterest lazily accrues interest for the elapsed wall-clock time
// since the position was last touched. Accrual happens exactly at point
// of access on state-changing calls; there is no background ticking.
// Returns the interest credited for this settlement.
func (lp *LenderPosition) SettleInterest(rateBps uint64, now int64) (uint64, error) {
	elapsed := now - lp.LastUpdate
	if elapsed <= 0 {
		return 0, nil
	}
	lp.LastUpdate = now

	interest, err := CalcAccruedInterest(lp.Balance, rateBps, elapsed)
	if err != nil {
		return 0, err
	}
	if interest == 0 {
		return 0, nil
	}

	earned, err := CheckedAdd(lp.EarnedInterest, interest)
	if err != nil {
		return 0, err
	}
	lp.EarnedInterest = earned
	return interest, nil
}

// TotalClaim is the maximum amount the lender could withdraw ignoring
// locks and pool liquidity: balance plus settled interest.
func (lp *LenderPosition) TotalClaim() (uint64, error) {
	return CheckedAdd(lp.Balance, lp.EarnedInterest)
}

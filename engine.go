package core

import (
	"context"
	"sync"

	"github.com/facebookgo/clock"
	"github.com/gofrs/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// PoolEngine owns one pool: the aggregate totals and both ledgers. The
// whole engine is guarded by a single mutex held for the full duration of
// every public operation, external transfer included: one state-mutating
// operation in flight at a time, no reentry until it completes, so no
// caller can observe pool state mid-update.
type PoolEngine struct {
	mu sync.Mutex

	clk clock.Clock
	log Log

	pool      *Pool
	lenders   map[uuid.UUID]*LenderPosition
	borrowers map[uuid.UUID]*BorrowerPosition

	collateral CollateralManager
	token      TokenAdapter

	operations   OperationStore
	receipts     ReceiptStore
	liquidations LiquidationStore
}

type EngineOption func(e *PoolEngine)

func WithClock(clk clock.Clock) EngineOption {
	return func(e *PoolEngine) {
		e.clk = clk
	}
}

func WithLog(log Log) EngineOption {
	return func(e *PoolEngine) {
		e.log = log
	}
}

func WithOperationStore(store OperationStore) EngineOption {
	return func(e *PoolEngine) {
		e.operations = store
	}
}

func WithReceiptStore(store ReceiptStore) EngineOption {
	return func(e *PoolEngine) {
		e.receipts = store
	}
}

func WithLiquidationStore(store LiquidationStore) EngineOption {
	return func(e *PoolEngine) {
		e.liquidations = store
	}
}

func NewPoolEngine(pool *Pool, collateral CollateralManager, token TokenAdapter, opts ...EngineOption) *PoolEngine {
	nop := zerolog.Nop()
	e := &PoolEngine{
		clk:        clock.New(),
		log:        &nop,
		pool:       pool,
		lenders:    make(map[uuid.UUID]*LenderPosition),
		borrowers:  make(map[uuid.UUID]*BorrowerPosition),
		collateral: collateral,
		token:      token,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Deposit settles the lender's pending interest, adds amount to the
// balance and pool totals, then starts the lock commitment for tiers
// above zero. The inbound transfer is issued last; a failure rolls every
// mutation back.
func (e *PoolEngine) Deposit(ctx context.Context, lenderId uuid.UUID, amount uint64, lockTierIndex int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if lenderId == uuid.Nil {
		return InvalidAddress
	}
	if amount == 0 {
		return InvalidAmount
	}
	if !e.pool.LockSchedule.ValidIndex(lockTierIndex) {
		return InvalidLockTier
	}
	if err := e.pool.AssertOperationalMode(true); err != nil {
		return err
	}
	if e.pool.IsDepositLimitActive() {
		newTotal, err := CheckedAdd(e.pool.TotalPoolFunds, amount)
		if err != nil {
			return err
		}
		if newTotal > e.pool.DepositLimit {
			return DepositCapacityExceeded
		}
	}

	now := e.clk.Now().Unix()
	position := e.lenderPosition(lenderId)
	posSnap := position.Clone()
	poolSnap := e.pool.PoolState.Snapshot()
	rollback := func() {
		position.Restore(posSnap)
		e.pool.PoolState.Restore(poolSnap)
	}

	rate := position.EffectiveRateBps(e.currentRateBps(), e.pool.LockSchedule, now)
	settled, err := position.SettleInterest(rate, now)
	if err != nil {
		rollback()
		return err
	}

	balance, err := CheckedAdd(position.Balance, amount)
	if err != nil {
		rollback()
		return err
	}
	total, err := CheckedAdd(e.pool.TotalPoolFunds, amount)
	if err != nil {
		rollback()
		return err
	}
	available, err := CheckedAdd(e.pool.AvailableFunds, amount)
	if err != nil {
		rollback()
		return err
	}

	position.Balance = balance
	e.pool.TotalPoolFunds = total
	e.pool.AvailableFunds = available
	e.pool.PoolState.LastUpdate = now

	if lockTierIndex > 0 {
		position.LockTierIndex = lockTierIndex
		position.LockedUntil = now + e.pool.LockSchedule[lockTierIndex].Duration
	}

	if err := e.transferIn(ctx, lenderId, OpDeposit, amount); err != nil {
		rollback()
		return err
	}

	if err := e.pool.PoolState.CheckReconciled(); err != nil {
		rollback()
		return err
	}

	e.log.Info().Msgf("deposit: lender %s amount %d tier %d settled %d", lenderId, amount, lockTierIndex, settled)
	e.journal(ctx, lenderId, OpDeposit, amount, OperationDetail{InterestSettled: settled, LockTierIndex: lockTierIndex})
	return nil
}

// Withdraw settles interest first, then pays out up to the lender's
// balance plus earned interest, consuming interest before principal.
// Before the lock expires only the emergency path is allowed, with a
// basis-point penalty that stays in the pool. Returns the amount paid
// out.
func (e *PoolEngine) Withdraw(ctx context.Context, lenderId uuid.UUID, amount uint64, emergency bool) (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if lenderId == uuid.Nil {
		return 0, InvalidAddress
	}
	if amount == 0 {
		return 0, InvalidAmount
	}
	if err := e.pool.AssertOperationalMode(false); err != nil {
		return 0, err
	}

	position, ok := e.lenders[lenderId]
	if !ok {
		return 0, InsufficientBalance
	}

	now := e.clk.Now().Unix()
	posSnap := position.Clone()
	poolSnap := e.pool.PoolState.Snapshot()
	rollback := func() {
		position.Restore(posSnap)
		e.pool.PoolState.Restore(poolSnap)
	}

	rate := position.EffectiveRateBps(e.currentRateBps(), e.pool.LockSchedule, now)
	if _, err := position.SettleInterest(rate, now); err != nil {
		rollback()
		return 0, err
	}

	locked := position.IsLocked(now)
	if locked && !emergency {
		rollback()
		return 0, FundsLocked
	}

	claim, err := position.TotalClaim()
	if err != nil {
		rollback()
		return 0, err
	}
	if amount > claim {
		rollback()
		return 0, InsufficientBalance
	}
	if amount > e.pool.AvailableFunds {
		rollback()
		return 0, InsufficientPoolLiquidity
	}

	fromInterest := position.EarnedInterest
	if fromInterest > amount {
		fromInterest = amount
	}
	fromBalance := amount - fromInterest

	position.EarnedInterest -= fromInterest
	if position.Balance, err = CheckedSub(position.Balance, fromBalance); err != nil {
		rollback()
		return 0, err
	}
	if e.pool.AvailableFunds, err = CheckedSub(e.pool.AvailableFunds, amount); err != nil {
		rollback()
		return 0, err
	}
	if e.pool.TotalPoolFunds, err = CheckedSub(e.pool.TotalPoolFunds, amount); err != nil {
		rollback()
		return 0, err
	}

	payout := amount
	var penalty uint64
	if emergency && locked {
		if penalty, err = BpsOf(amount, e.pool.EmergencyPenaltyBps); err != nil {
			rollback()
			return 0, err
		}
		payout = amount - penalty
		// The haircut stays in the pool as liquidity.
		if e.pool.AvailableFunds, err = CheckedAdd(e.pool.AvailableFunds, penalty); err != nil {
			rollback()
			return 0, err
		}
		if e.pool.TotalPoolFunds, err = CheckedAdd(e.pool.TotalPoolFunds, penalty); err != nil {
			rollback()
			return 0, err
		}
	}
	e.pool.PoolState.LastUpdate = now

	if err := e.transferOut(ctx, lenderId, OpWithdraw, payout); err != nil {
		rollback()
		return 0, err
	}

	if err := e.pool.PoolState.CheckReconciled(); err != nil {
		rollback()
		return 0, err
	}

	e.log.Info().Msgf("withdraw: lender %s amount %d payout %d penalty %d", lenderId, amount, payout, penalty)
	e.journal(ctx, lenderId, OpWithdraw, amount, OperationDetail{
		InterestPortion:  fromInterest,
		PrincipalPortion: fromBalance,
		PenaltyApplied:   penalty,
	})
	return payout, nil
}

// Borrow settles the borrower's accumulated interest, verifies the
// collateral covers the post-borrow principal at the origination floor,
// then moves funds from available to borrowed. The outbound transfer is
// issued last.
func (e *PoolEngine) Borrow(ctx context.Context, borrowerId uuid.UUID, amount uint64, collateralToken string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if borrowerId == uuid.Nil || collateralToken == "" {
		return InvalidAddress
	}
	if amount == 0 {
		return InvalidAmount
	}
	if err := e.pool.AssertOperationalMode(true); err != nil {
		return err
	}
	if amount > e.pool.AvailableFunds {
		return InsufficientPoolLiquidity
	}

	newTotalBorrowed, err := CheckedAdd(e.pool.TotalBorrowed, amount)
	if err != nil {
		return err
	}
	if e.pool.IsBorrowCapActive() && newTotalBorrowed > e.pool.BorrowCap {
		return BorrowCapExceeded
	}
	if UtilizationBps(newTotalBorrowed, e.pool.TotalPoolFunds) > MAX_UTILIZATION_BPS {
		return BorrowCapExceeded
	}

	now := e.clk.Now().Unix()
	position := e.borrowerPosition(borrowerId)
	if position.IsActive() && position.CollateralToken != collateralToken {
		return CollateralTokenMismatch
	}

	posSnap := position.Clone()
	poolSnap := e.pool.PoolState.Snapshot()
	rollback := func() {
		position.Restore(posSnap)
		e.pool.PoolState.Restore(poolSnap)
	}

	settled, err := position.SettleInterest(e.currentRateBps(), now)
	if err != nil {
		rollback()
		return err
	}

	newPrincipal, err := CheckedAdd(position.Borrowed, amount)
	if err != nil {
		rollback()
		return err
	}
	totalOwed, err := position.TotalOwed()
	if err != nil {
		rollback()
		return err
	}
	newDebt, err := CheckedAdd(totalOwed, amount)
	if err != nil {
		rollback()
		return err
	}

	collateralValue, err := e.collateral.CalculateCollateralValue(ctx, borrowerId, collateralToken)
	if err != nil {
		rollback()
		return err
	}
	// The origination floor covers the whole debt, accrued interest
	// included.
	required, err := MulDiv(newDebt, COLLATERAL_RATIO_BPS, BPS_DENOMINATOR)
	if err != nil {
		rollback()
		return err
	}
	if collateralValue < required {
		rollback()
		return InsufficientCollateral
	}

	position.Borrowed = newPrincipal
	position.CollateralToken = collateralToken
	if e.pool.AvailableFunds, err = CheckedSub(e.pool.AvailableFunds, amount); err != nil {
		rollback()
		return err
	}
	e.pool.TotalBorrowed = newTotalBorrowed
	e.pool.PoolState.LastUpdate = now

	if err := e.transferOut(ctx, borrowerId, OpBorrow, amount); err != nil {
		rollback()
		return err
	}

	if err := e.pool.PoolState.CheckReconciled(); err != nil {
		rollback()
		return err
	}

	e.log.Info().Msgf("borrow: borrower %s amount %d collateral %s settled %d", borrowerId, amount, collateralToken, settled)
	e.journal(ctx, borrowerId, OpBorrow, amount, OperationDetail{InterestSettled: settled})
	return nil
}

// Repay settles interest, splits the payment proportionally between
// interest and principal, and credits the full amount back to available
// funds. A payment covering the total owed closes the position.
func (e *PoolEngine) Repay(ctx context.Context, borrowerId uuid.UUID, amount uint64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if borrowerId == uuid.Nil {
		return InvalidAddress
	}
	if amount == 0 {
		return InvalidAmount
	}
	if err := e.pool.AssertOperationalMode(false); err != nil {
		return err
	}

	position, ok := e.borrowers[borrowerId]
	if !ok || position.Borrowed == 0 {
		return NoBalance
	}

	now := e.clk.Now().Unix()
	posSnap := position.Clone()
	poolSnap := e.pool.PoolState.Snapshot()
	rollback := func() {
		position.Restore(posSnap)
		e.pool.PoolState.Restore(poolSnap)
	}

	settled, err := position.SettleInterest(e.currentRateBps(), now)
	if err != nil {
		rollback()
		return err
	}

	totalOwed, err := position.TotalOwed()
	if err != nil {
		rollback()
		return err
	}
	if amount > totalOwed {
		rollback()
		return RepayAmountExceeded
	}

	interestPortion, principalPortion, err := position.SplitRepayment(amount)
	if err != nil {
		rollback()
		return err
	}

	if amount == totalOwed {
		position.ZeroDebt(now)
	} else {
		position.AccumulatedInterest -= interestPortion
		position.Borrowed -= principalPortion
	}

	if e.pool.AvailableFunds, err = CheckedAdd(e.pool.AvailableFunds, amount); err != nil {
		rollback()
		return err
	}
	if e.pool.TotalBorrowed, err = CheckedSub(e.pool.TotalBorrowed, principalPortion); err != nil {
		rollback()
		return err
	}
	// Interest paid by borrowers grows the pool; principal merely moves
	// back from borrowed to available.
	if e.pool.TotalPoolFunds, err = CheckedAdd(e.pool.TotalPoolFunds, interestPortion); err != nil {
		rollback()
		return err
	}
	e.pool.PoolState.LastUpdate = now

	if err := e.transferIn(ctx, borrowerId, OpRepay, amount); err != nil {
		rollback()
		return err
	}

	if err := e.pool.PoolState.CheckReconciled(); err != nil {
		rollback()
		return err
	}

	e.log.Info().Msgf("repay: borrower %s amount %d interest %d principal %d settled %d", borrowerId, amount, interestPortion, principalPortion, settled)
	e.journal(ctx, borrowerId, OpRepay, amount, OperationDetail{
		InterestSettled:  settled,
		InterestPortion:  interestPortion,
		PrincipalPortion: principalPortion,
	})
	return nil
}

// Liquidate closes an undercollateralized position. Callable by anyone:
// permissionless liquidation outsources monitoring to economically
// motivated third parties. Eligibility comes from the collateral
// manager's per-asset threshold, which sits below the origination floor.
// The caller is paid the seized value plus the liquidation bonus; the
// pool absorbs the bonus and recognizes the total owed as repaid.
func (e *PoolEngine) Liquidate(ctx context.Context, borrowerId, liquidatorId uuid.UUID) (*LiquidateResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if borrowerId == uuid.Nil || liquidatorId == uuid.Nil {
		return nil, InvalidAddress
	}
	if err := e.pool.AssertOperationalMode(false); err != nil {
		return nil, err
	}

	position, ok := e.borrowers[borrowerId]
	if !ok || !position.IsActive() {
		return nil, NoBalance
	}

	now := e.clk.Now().Unix()
	posSnap := position.Clone()
	poolSnap := e.pool.PoolState.Snapshot()
	rollback := func() {
		position.Restore(posSnap)
		e.pool.PoolState.Restore(poolSnap)
	}

	if _, err := position.SettleInterest(e.currentRateBps(), now); err != nil {
		rollback()
		return nil, err
	}

	totalOwed, err := position.TotalOwed()
	if err != nil {
		rollback()
		return nil, err
	}

	needs, err := e.collateral.NeedsLiquidation(ctx, borrowerId, position.CollateralToken, totalOwed)
	if err != nil {
		rollback()
		return nil, err
	}
	if !needs {
		rollback()
		return nil, PositionHealthy
	}

	var preHealthBps uint64
	if collateralValue, err := e.collateral.CalculateCollateralValue(ctx, borrowerId, position.CollateralToken); err == nil && totalOwed > 0 {
		if health, err := MulDiv(collateralValue, BPS_DENOMINATOR, totalOwed); err == nil {
			preHealthBps = health
		}
	}

	seized, err := e.collateral.LiquidatePosition(ctx, borrowerId, position.CollateralToken, totalOwed)
	if err != nil {
		rollback()
		return nil, err
	}

	payout, err := MulDiv(seized, BPS_DENOMINATOR+LIQUIDATION_BONUS_BPS, BPS_DENOMINATOR)
	if err != nil {
		rollback()
		return nil, err
	}

	prePosition := position.Clone()
	repaidPrincipal := position.Borrowed
	repaidInterest := position.AccumulatedInterest
	position.ZeroDebt(now)

	if e.pool.TotalBorrowed, err = CheckedSub(e.pool.TotalBorrowed, repaidPrincipal); err != nil {
		rollback()
		return nil, err
	}
	if e.pool.AvailableFunds, err = CheckedAdd(e.pool.AvailableFunds, totalOwed); err != nil {
		rollback()
		return nil, err
	}
	if e.pool.TotalPoolFunds, err = CheckedAdd(e.pool.TotalPoolFunds, repaidInterest); err != nil {
		rollback()
		return nil, err
	}
	if payout > e.pool.AvailableFunds {
		rollback()
		return nil, InsufficientPoolLiquidity
	}
	e.pool.AvailableFunds -= payout
	if e.pool.TotalPoolFunds, err = CheckedSub(e.pool.TotalPoolFunds, payout); err != nil {
		rollback()
		return nil, err
	}
	e.pool.PoolState.LastUpdate = now

	if err := e.transferOut(ctx, liquidatorId, OpLiquidate, payout); err != nil {
		rollback()
		return nil, err
	}

	if err := e.pool.PoolState.CheckReconciled(); err != nil {
		rollback()
		return nil, err
	}

	result := &LiquidateResult{
		PoolId:           e.pool.Id,
		BorrowerId:       borrowerId,
		LiquidatorId:     liquidatorId,
		PrePosition:      prePosition,
		PostPosition:     position.Clone(),
		RepaidPrincipal:  repaidPrincipal,
		RepaidInterest:   repaidInterest,
		SeizedAmount:     seized,
		LiquidatorPayout: payout,
		PreHealthBps:     preHealthBps,
		CreatedAt:        now,
	}
	if e.liquidations != nil {
		if err := e.liquidations.StoreLiquidationResult(ctx, result); err != nil {
			e.log.Warn().Msgf("liquidation result not stored: %v", err)
		}
	}

	e.log.Info().Msgf("liquidate: borrower %s owed %d seized %d payout %d", borrowerId, totalOwed, seized, payout)
	e.journal(ctx, borrowerId, OpLiquidate, totalOwed, OperationDetail{
		SeizedAmount:     seized,
		LiquidatorPayout: payout,
	})
	return result, nil
}

// SettleLenderInterest runs an interest settlement for a lender without
// moving funds. Settling twice with no elapsed time accrues nothing.
func (e *PoolEngine) SettleLenderInterest(ctx context.Context, lenderId uuid.UUID) (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	position, ok := e.lenders[lenderId]
	if !ok {
		return 0, InsufficientBalance
	}

	now := e.clk.Now().Unix()
	rate := position.EffectiveRateBps(e.currentRateBps(), e.pool.LockSchedule, now)
	settled, err := position.SettleInterest(rate, now)
	if err != nil {
		return 0, err
	}
	e.journal(ctx, lenderId, OpSettle, settled, OperationDetail{InterestSettled: settled})
	return settled, nil
}

// SettleBorrowerInterest runs an interest settlement for a borrower
// without moving funds.
func (e *PoolEngine) SettleBorrowerInterest(ctx context.Context, borrowerId uuid.UUID) (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	position, ok := e.borrowers[borrowerId]
	if !ok || !position.IsActive() {
		return 0, NoBalance
	}

	settled, err := position.SettleInterest(e.currentRateBps(), e.clk.Now().Unix())
	if err != nil {
		return 0, err
	}
	e.journal(ctx, borrowerId, OpSettle, settled, OperationDetail{InterestSettled: settled})
	return settled, nil
}

// ------------ Views

func (e *PoolEngine) PoolSnapshot() *Pool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pool.Clone()
}

func (e *PoolEngine) GetLenderPosition(lenderId uuid.UUID) (*LenderPosition, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	position, ok := e.lenders[lenderId]
	if !ok {
		return nil, LenderPositionNotFound
	}
	return position.Clone(), nil
}

func (e *PoolEngine) GetBorrowerPosition(borrowerId uuid.UUID) (*BorrowerPosition, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	position, ok := e.borrowers[borrowerId]
	if !ok {
		return nil, BorrowerNotFound
	}
	return position.Clone(), nil
}

// CollateralHealthBps reports collateral value over total owed in basis
// points for an active position.
func (e *PoolEngine) CollateralHealthBps(ctx context.Context, borrowerId uuid.UUID) (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	position, ok := e.borrowers[borrowerId]
	if !ok || !position.IsActive() {
		return 0, NoBalance
	}
	totalOwed, err := position.TotalOwed()
	if err != nil {
		return 0, err
	}
	collateralValue, err := e.collateral.CalculateCollateralValue(ctx, borrowerId, position.CollateralToken)
	if err != nil {
		return 0, err
	}
	return MulDiv(collateralValue, BPS_DENOMINATOR, totalOwed)
}

// CurrentRateBps returns the pool's borrow rate at current utilization.
func (e *PoolEngine) CurrentRateBps() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.currentRateBps()
}

// ------------ internal helpers, caller holds e.mu

func (e *PoolEngine) currentRateBps() uint64 {
	return e.pool.InterestRateConfig.CurrentRateBps(e.pool.PoolState.UtilizationBps())
}

func (e *PoolEngine) lenderPosition(lenderId uuid.UUID) *LenderPosition {
	position, ok := e.lenders[lenderId]
	if !ok {
		position = NewLenderPosition(e.clk, e.pool.Id, lenderId)
		e.lenders[lenderId] = position
	}
	return position
}

func (e *PoolEngine) borrowerPosition(borrowerId uuid.UUID) *BorrowerPosition {
	position, ok := e.borrowers[borrowerId]
	if !ok {
		position = NewBorrowerPosition(e.clk, e.pool.Id, borrowerId)
		e.borrowers[borrowerId] = position
	}
	return position
}

func (e *PoolEngine) transferOut(ctx context.Context, to uuid.UUID, kind OperationKind, amount uint64) error {
	receipt := NewTransferReceipt(e.clk, e.pool.Id, to, kind, false, amount)
	e.recordReceipt(ctx, receipt)
	if err := e.token.Transfer(ctx, to, amount); err != nil {
		e.resolveReceipt(ctx, receipt, ReceiptStatusFailed, err.Error())
		return errors.Wrap(TransferFailed, err.Error())
	}
	e.resolveReceipt(ctx, receipt, ReceiptStatusConfirmed, "")
	return nil
}

func (e *PoolEngine) transferIn(ctx context.Context, from uuid.UUID, kind OperationKind, amount uint64) error {
	receipt := NewTransferReceipt(e.clk, e.pool.Id, from, kind, true, amount)
	e.recordReceipt(ctx, receipt)
	if err := e.token.TransferFrom(ctx, from, e.pool.Id, amount); err != nil {
		e.resolveReceipt(ctx, receipt, ReceiptStatusFailed, err.Error())
		return errors.Wrap(TransferFailed, err.Error())
	}
	e.resolveReceipt(ctx, receipt, ReceiptStatusConfirmed, "")
	return nil
}

func (e *PoolEngine) recordReceipt(ctx context.Context, receipt *TransferReceipt) {
	if e.receipts == nil {
		return
	}
	if err := e.receipts.CreateReceipt(ctx, receipt); err != nil {
		e.log.Warn().Msgf("receipt not recorded: %v", err)
	}
}

func (e *PoolEngine) resolveReceipt(ctx context.Context, receipt *TransferReceipt, status ReceiptStatus, message string) {
	receipt.UpdateStatus(e.clk, status, message)
	if e.receipts == nil {
		return
	}
	if err := e.receipts.UpdateReceiptStatus(ctx, receipt.RequestId, status, message, receipt.UpdatedAt); err != nil {
		e.log.Warn().Msgf("receipt not resolved: %v", err)
	}
}

func (e *PoolEngine) journal(ctx context.Context, accountId uuid.UUID, kind OperationKind, amount uint64, extra OperationDetail) {
	if e.operations == nil {
		return
	}
	op := NewOperation(e.clk, e.pool.Id, accountId, kind, amount, extra)
	if err := e.operations.CreateOperation(ctx, op); err != nil {
		e.log.Warn().Msgf("operation not journaled: %v", err)
	}
}

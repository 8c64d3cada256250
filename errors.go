package core

import (
	"github.com/pkg/errors"
)

// Validation errors: rejected before any state is touched.
var (
	InvalidAmount   = errors.New("invalid amount")
	InvalidLockTier = errors.New("invalid lock tier")
	InvalidAddress  = errors.New("invalid address")
	InvalidConfig   = errors.New("invalid config")
)

// State-precondition errors: deterministic functions of current state,
// safe to retry once state changes. No mutation survives the rejection.
var (
	FundsLocked               = errors.New("funds locked")
	InsufficientBalance       = errors.New("insufficient balance")
	InsufficientPoolLiquidity = errors.New("insufficient pool liquidity")
	InsufficientCollateral    = errors.New("insufficient collateral")
	NoBalance                 = errors.New("no balance")
	RepayAmountExceeded       = errors.New("repay amount exceeded")
	BorrowCapExceeded         = errors.New("borrow cap exceeded")
	DepositCapacityExceeded   = errors.New("deposit capacity exceeded")
	PositionHealthy           = errors.New("position healthy")
	CollateralTokenMismatch   = errors.New("collateral token mismatch")
	PoolPaused                = errors.New("pool paused")
	PoolReduceOnly            = errors.New("pool reduce only")
)

// Collaborator failures: any mutation already performed in the operation
// is rolled back before these are returned.
var (
	NoCollateralDeposited = errors.New("no collateral deposited")
	StalePrice            = errors.New("stale price")
	TransferFailed        = errors.New("transfer failed")
)

// Arithmetic errors. State updates use checked arithmetic; overflow is a
// loud failure, never a silent wrap.
var (
	ErrMathOverflow  = errors.New("math overflow")
	ErrMathUnderflow = errors.New("math underflow")
)

// PoolNotReconciled means the aggregate totals disagree after an
// operation committed. It indicates a bug in the engine, not caller
// error.
var PoolNotReconciled = errors.New("pool accounting not reconciled")

// Config validation errors.
var (
	ErrBaseRateTooHigh   = errors.New("base rate too high")
	ErrMultiplierTooHigh = errors.New("rate multiplier too high")
	ErrPenaltyTooHigh    = errors.New("emergency penalty too high")
	ErrLockDuration      = errors.New("lock duration must be positive")
)

// Store-level errors.
var (
	PoolNotFound           = errors.New("pool not found")
	LenderPositionNotFound = errors.New("lender position not found")
	BorrowerNotFound       = errors.New("borrower position not found")
)

package core

import (
	"context"

	"github.com/gofrs/uuid"
)

// CollateralManager is the engine's port to the external collateral and
// price collaborator. Collateral positions are consulted, not owned,
// by this core; the only mutation it ever requests is a seize during
// liquidation.
type CollateralManager interface {
	// CalculateCollateralValue returns the current value of the user's
	// pledged collateral in pool-asset units. Fails with
	// NoCollateralDeposited when the user pledged nothing.
	CalculateCollateralValue(ctx context.Context, user uuid.UUID, token string) (uint64, error)

	// NeedsLiquidation reports whether the position is eligible for
	// liquidation given its current debt. The eligibility threshold is
	// per-asset and deliberately lower than the origination floor.
	NeedsLiquidation(ctx context.Context, user uuid.UUID, token string, debtAmount uint64) (bool, error)

	// LiquidatePosition seizes collateral against the given debt and
	// returns the value actually seized.
	LiquidatePosition(ctx context.Context, user uuid.UUID, token string, debtAmount uint64) (uint64, error)

	// GetCollateralPrice returns the current price of the collateral
	// asset, failing with StalePrice when the underlying feed's
	// freshness window has elapsed.
	GetCollateralPrice(ctx context.Context, token string) (uint64, error)
}

// TokenAdapter is the engine's port to the token custody collaborator.
// Transfers are always issued last in an operation so that a failure
// triggers a full rollback of the ledger and pool mutations.
type TokenAdapter interface {
	Transfer(ctx context.Context, to uuid.UUID, amount uint64) error
	TransferFrom(ctx context.Context, from, to uuid.UUID, amount uint64) error
}

package core

import (
	"context"

	"github.com/gofrs/uuid"
)

type (
	LiquidationStore interface {
		StoreLiquidationResult(ctx context.Context, result *LiquidateResult) error
	}

	// LiquidateResult captures the before/after of a liquidation for
	// auditing: what was owed, what was seized and what the liquidator
	// was paid.
	LiquidateResult struct {
		PoolId       uuid.UUID `json:"poolId"`
		BorrowerId   uuid.UUID `json:"borrowerId"`
		LiquidatorId uuid.UUID `json:"liquidatorId"`

		PrePosition  *BorrowerPosition `json:"prePosition"`
		PostPosition *BorrowerPosition `json:"postPosition"`

		RepaidPrincipal  uint64 `json:"repaidPrincipal"`
		RepaidInterest   uint64 `json:"repaidInterest"`
		SeizedAmount     uint64 `json:"seizedAmount"`
		LiquidatorPayout uint64 `json:"liquidatorPayout"`

		// Collateral value over debt at the moment of liquidation, in
		// basis points.
		PreHealthBps uint64 `json:"preHealthBps"`

		CreatedAt int64 `json:"createdAt"`
	}
)

package core

import (
	"context"
	"database/sql/driver"
	"encoding/json"

	"github.com/facebookgo/clock"
	"github.com/gofrs/uuid"
)

type OperationKind uint8

const (
	OpDeposit OperationKind = iota + 1
	OpWithdraw
	OpBorrow
	OpRepay
	OpLiquidate
	OpSettle
)

func (k OperationKind) String() string {
	switch k {
	case OpDeposit:
		return "Deposit"
	case OpWithdraw:
		return "Withdraw"
	case OpBorrow:
		return "Borrow"
	case OpRepay:
		return "Repay"
	case OpLiquidate:
		return "Liquidate"
	case OpSettle:
		return "Settle"
	default:
		return "Unknown"
	}
}

func (k OperationKind) Valid() bool {
	switch k {
	case OpDeposit, OpWithdraw, OpBorrow, OpRepay, OpLiquidate, OpSettle:
		return true
	default:
		return false
	}
}

type (
	OperationStore interface {
		CreateOperation(ctx context.Context, operation *Operation) error
		ListOperations(ctx context.Context, poolId uuid.UUID, kind OperationKind, createdBeforeAt, limit int64) ([]Operation, error)
	}

	// Operation is the journal record appended after every successful
	// state-changing call.
	Operation struct {
		PoolId    uuid.UUID       `json:"poolId"`
		AccountId uuid.UUID       `json:"accountId"`
		Kind      OperationKind   `json:"kind"`
		Amount    uint64          `json:"amount"`
		Extra     OperationDetail `json:"extra"`
		CreatedAt int64           `json:"createdAt"`
	}

	OperationDetail struct {
		InterestSettled  uint64 `json:"interestSettled,omitempty"`
		InterestPortion  uint64 `json:"interestPortion,omitempty"`
		PrincipalPortion uint64 `json:"principalPortion,omitempty"`
		PenaltyApplied   uint64 `json:"penaltyApplied,omitempty"`
		LockTierIndex    int    `json:"lockTierIndex,omitempty"`
		SeizedAmount     uint64 `json:"seizedAmount,omitempty"`
		LiquidatorPayout uint64 `json:"liquidatorPayout,omitempty"`
	}
)

func NewOperation(clk clock.Clock, poolId, accountId uuid.UUID, kind OperationKind, amount uint64, extra OperationDetail) *Operation {
	return &Operation{
		PoolId:    poolId,
		AccountId: accountId,
		Kind:      kind,
		Amount:    amount,
		Extra:     extra,
		CreatedAt: clk.Now().Unix(),
	}
}

func (j OperationDetail) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *OperationDetail) Scan(value any) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}

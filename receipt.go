package core

import (
	"context"

	"github.com/facebookgo/clock"
	"github.com/gofrs/uuid"
)

type (
	ReceiptStore interface {
		CreateReceipt(ctx context.Context, receipt *TransferReceipt) error
		UpdateReceiptStatus(ctx context.Context, requestId uuid.UUID, status ReceiptStatus, message string, updatedAt int64) error
		GetReceiptByRequestId(ctx context.Context, requestId uuid.UUID) (*TransferReceipt, error)
	}

	// TransferReceipt records an external transfer requested by the
	// engine. Receipts start pending and are resolved in the same
	// operation; a failed receipt always pairs with a rolled-back
	// ledger mutation.
	TransferReceipt struct {
		RequestId uuid.UUID     `json:"requestId"`
		PoolId    uuid.UUID     `json:"poolId"`
		AccountId uuid.UUID     `json:"accountId"`
		Kind      OperationKind `json:"kind"`
		Inbound   bool          `json:"inbound"`
		Amount    uint64        `json:"amount"`
		Status    ReceiptStatus `json:"status"`
		Message   string        `json:"message"`

		CreatedAt int64 `json:"createdAt"`
		UpdatedAt int64 `json:"updatedAt"`
	}
)

type ReceiptStatus string

const (
	ReceiptStatusPending   ReceiptStatus = "pending"
	ReceiptStatusConfirmed ReceiptStatus = "confirmed"
	ReceiptStatusFailed    ReceiptStatus = "failed"
)

func (s ReceiptStatus) String() string {
	return string(s)
}

func NewTransferReceipt(clk clock.Clock, poolId, accountId uuid.UUID, kind OperationKind, inbound bool, amount uint64) *TransferReceipt {
	return &TransferReceipt{
		RequestId: uuid.Must(uuid.NewV4()),
		PoolId:    poolId,
		AccountId: accountId,
		Kind:      kind,
		Inbound:   inbound,
		Amount:    amount,
		Status:    ReceiptStatusPending,
		CreatedAt: clk.Now().Unix(),
		UpdatedAt: clk.Now().Unix(),
	}
}

func (r *TransferReceipt) UpdateStatus(clk clock.Clock, status ReceiptStatus, message string) {
	r.Status = status
	r.Message = message
	r.UpdatedAt = clk.Now().Unix()
}

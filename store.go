package core

import (
	"context"

	"github.com/facebookgo/clock"
	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

// LedgerService aggregates the stores a host must provide to hydrate and
// persist an engine.
type LedgerService struct {
	PoolStore
	LenderStore
	BorrowerStore
}

func FindOrCreateLenderPosition(ctx context.Context, clk clock.Clock, svc LedgerService, pool *Pool, lenderId uuid.UUID) (*LenderPosition, error) {
	if _, err := svc.GetPoolById(ctx, pool.Id); err != nil {
		return nil, PoolNotFound
	}

	position, err := svc.FindLenderPosition(ctx, pool.Id, lenderId)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			position = NewLenderPosition(clk, pool.Id, lenderId)
			if err := svc.UpsertLenderPosition(ctx, position); err != nil {
				return nil, err
			}
			return position, nil
		}
		return nil, err
	}
	return position, nil
}

func FindOrCreateBorrowerPosition(ctx context.Context, clk clock.Clock, svc LedgerService, pool *Pool, borrowerId uuid.UUID) (*BorrowerPosition, error) {
	if _, err := svc.GetPoolById(ctx, pool.Id); err != nil {
		return nil, PoolNotFound
	}

	position, err := svc.FindBorrowerPosition(ctx, pool.Id, borrowerId)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			position = NewBorrowerPosition(clk, pool.Id, borrowerId)
			if err := svc.UpsertBorrowerPosition(ctx, position); err != nil {
				return nil, err
			}
			return position, nil
		}
		return nil, err
	}
	return position, nil
}

// LoadPoolEngine hydrates an engine from the stores: the pool record plus
// every lender and borrower position.
func LoadPoolEngine(ctx context.Context, svc LedgerService, poolId uuid.UUID, collateral CollateralManager, token TokenAdapter, opts ...EngineOption) (*PoolEngine, error) {
	pool, err := svc.GetPoolById(ctx, poolId)
	if err != nil {
		return nil, PoolNotFound
	}

	engine := NewPoolEngine(pool, collateral, token, opts...)

	lenders, err := svc.ListLenderPositions(ctx, poolId)
	if err != nil {
		return nil, err
	}
	for _, position := range lenders {
		engine.lenders[position.LenderId] = position
	}

	borrowers, err := svc.ListBorrowerPositions(ctx, poolId)
	if err != nil {
		return nil, err
	}
	for _, position := range borrowers {
		engine.borrowers[position.BorrowerId] = position
	}

	return engine, nil
}

// Flush writes the engine's current state back through the stores.
func (e *PoolEngine) Flush(ctx context.Context, svc LedgerService) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := svc.UpsertPool(ctx, e.pool); err != nil {
		return err
	}
	for _, position := range e.lenders {
		if err := svc.UpsertLenderPosition(ctx, position); err != nil {
			return err
		}
	}
	for _, position := range e.borrowers {
		if err := svc.UpsertBorrowerPosition(ctx, position); err != nil {
			return err
		}
	}
	return nil
}

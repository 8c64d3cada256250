package core

import (
	"context"
	"time"

	"github.com/facebookgo/clock"
	"github.com/gofrs/uuid"
	"github.com/meridianfi/core/utils"
)

type (
	PoolStore interface {
		CreatePool(ctx context.Context, pool *Pool) error
		UpsertPool(ctx context.Context, pool *Pool) error
		ListPools(ctx context.Context) ([]*Pool, error)
		GetPoolById(ctx context.Context, poolId uuid.UUID) (*Pool, error)
		GetPoolByName(ctx context.Context, poolName string) (*Pool, error)
		ListPoolsByGroupId(ctx context.Context, groupId uuid.UUID) ([]*Pool, error)
		UpdatePoolConfig(ctx context.Context, poolId uuid.UUID, poolConfig *PoolConfig) error
	}

	// Pool is the process-wide singleton per pool instance: aggregate
	// totals plus configuration. Mutated only by deposit, withdraw,
	// borrow, repay and liquidate; never destroyed.
	Pool struct {
		Id      uuid.UUID `json:"id"`
		GroupId uuid.UUID `json:"groupId"`
		Name    string    `json:"name"`

		AssetId string `json:"assetId"`

		PoolState  `json:"poolState"`
		PoolConfig `json:"poolConfig"`

		CreatedAt int64 `json:"createdAt"`
	}

	// PoolState holds the aggregate totals that every mutating
	// operation must keep reconciled with the ledgers:
	// TotalPoolFunds == AvailableFunds + TotalBorrowed at every
	// quiescent point.
	PoolState struct {
		TotalPoolFunds uint64 `json:"totalPoolFunds"`
		AvailableFunds uint64 `json:"availableFunds"`
		TotalBorrowed  uint64 `json:"totalBorrowed"`
		LastUpdate     int64  `json:"lastUpdate"`
	}

	PoolConfig struct {
		InterestRateConfig `json:"interestRateConfig"`

		LockSchedule LockSchedule `json:"lockSchedule"`

		EmergencyPenaltyBps uint64 `json:"emergencyPenaltyBps"`

		DepositLimit uint64 `json:"depositLimit"`
		BorrowCap    uint64 `json:"borrowCap"`

		OperationalState PoolOperationalState `json:"operationalState"`
	}
)

type PoolOperationalState uint8

const (
	PoolOperationalStatePaused PoolOperationalState = iota
	PoolOperationalStateOperational
	PoolOperationalStateReduceOnly
)

func (pos PoolOperationalState) String() string {
	switch pos {
	case PoolOperationalStatePaused:
		return "Paused"
	case PoolOperationalStateOperational:
		return "Operational"
	case PoolOperationalStateReduceOnly:
		return "Reduce Only"
	default:
		return "Unknown"
	}
}

func NewPool(clk clock.Clock, groupId uuid.UUID, name string, assetId string, poolConfig PoolConfig) (*Pool, error) {
	return NewPoolWithCreateTime(clk, groupId, name, assetId, poolConfig, clk.Now())
}

func NewPoolWithCreateTime(clk clock.Clock, groupId uuid.UUID, name string, assetId string, poolConfig PoolConfig, createTime time.Time) (*Pool, error) {
	if err := poolConfig.Validate(); err != nil {
		return nil, err
	}
	return &Pool{
		Id:      utils.DeriveID(groupId.String(), name, assetId),
		GroupId: groupId,
		Name:    name,
		AssetId: assetId,
		PoolState: PoolState{
			TotalPoolFunds: 0,
			AvailableFunds: 0,
			TotalBorrowed:  0,
			LastUpdate:     createTime.Unix(),
		},
		PoolConfig: poolConfig,
		CreatedAt:  createTime.Unix(),
	}, nil
}

func (p *Pool) Clone() *Pool {
	clone := *p
	clone.LockSchedule = append(LockSchedule(nil), p.LockSchedule...)
	return &clone
}

// CheckReconciled verifies the pool accounting invariant. Operations call
// it after committing their mutations; a failure means a bug, not caller
// error.
func (ps *PoolState) CheckReconciled() error {
	sum, err := CheckedAdd(ps.AvailableFunds, ps.TotalBorrowed)
	if err != nil {
		return err
	}
	if sum != ps.TotalPoolFunds {
		return PoolNotReconciled
	}
	if ps.TotalBorrowed > ps.TotalPoolFunds {
		return PoolNotReconciled
	}
	return nil
}

func (ps *PoolState) Snapshot() PoolState {
	return *ps
}

func (ps *PoolState) Restore(snap PoolState) {
	*ps = snap
}

// UtilizationBps returns the pool's current utilization in basis points.
func (ps *PoolState) UtilizationBps() uint64 {
	return UtilizationBps(ps.TotalBorrowed, ps.TotalPoolFunds)
}

func (pc *PoolConfig) Validate() error {
	if err := pc.InterestRateConfig.Validate(); err != nil {
		return err
	}
	if err := pc.LockSchedule.Validate(); err != nil {
		return err
	}
	if pc.EmergencyPenaltyBps > BPS_DENOMINATOR {
		return ErrPenaltyTooHigh
	}
	return nil
}

func (pc *PoolConfig) IsDepositLimitActive() bool {
	return pc.DepositLimit != NO_LIMIT
}

func (pc *PoolConfig) IsBorrowCapActive() bool {
	return pc.BorrowCap != NO_LIMIT
}

// Configure applies a partial config update, leaving zero-valued fields
// untouched, then re-validates.
func (p *Pool) Configure(config *PoolConfig) error {
	if config.InterestRateConfig != (InterestRateConfig{}) {
		p.PoolConfig.InterestRateConfig.Update(&config.InterestRateConfig)
	}
	if config.EmergencyPenaltyBps != 0 {
		p.PoolConfig.EmergencyPenaltyBps = config.EmergencyPenaltyBps
	}
	if config.DepositLimit != 0 {
		p.PoolConfig.DepositLimit = config.DepositLimit
	}
	if config.BorrowCap != 0 {
		p.PoolConfig.BorrowCap = config.BorrowCap
	}
	if config.OperationalState != 0 {
		p.PoolConfig.OperationalState = config.OperationalState
	}
	return p.PoolConfig.Validate()
}

// AppendLockTier adds a lock tier to the pool's schedule.
func (p *Pool) AppendLockTier(tier LockTier) error {
	schedule, err := p.PoolConfig.LockSchedule.Append(tier)
	if err != nil {
		return err
	}
	p.PoolConfig.LockSchedule = schedule
	return nil
}

func (pc *PoolConfig) AssertOperationalMode(isIncreasing bool) error {
	switch pc.OperationalState {
	case PoolOperationalStatePaused:
		return PoolPaused
	case PoolOperationalStateReduceOnly:
		if isIncreasing {
			return PoolReduceOnly
		}
		return nil
	default:
		return nil
	}
}

package core

// LockTier is a deposit commitment period granting a bonus interest rate.
// Index 0 is always the no-lock tier.
type LockTier struct {
	Duration     int64  `json:"duration"`
	BonusRateBps uint64 `json:"bonusRateBps"`
}

// LockSchedule is the ordered list of lock tiers for a pool. The schedule
// is append-only after deployment.
type LockSchedule []LockTier

func DefaultLockSchedule() LockSchedule {
	return LockSchedule{
		{Duration: 0, BonusRateBps: 0},
	}
}

func (s LockSchedule) Validate() error {
	if len(s) == 0 {
		return InvalidConfig
	}
	if s[0].Duration != 0 || s[0].BonusRateBps != 0 {
		return InvalidConfig
	}
	for _, tier := range s[1:] {
		if tier.Duration <= 0 {
			return ErrLockDuration
		}
		if tier.BonusRateBps > maxRateCoefficientBps {
			return ErrMultiplierTooHigh
		}
	}
	return nil
}

// Append adds a tier to the end of the schedule. Existing tiers are never
// reordered or removed, so stored tier indexes stay stable.
func (s LockSchedule) Append(tier LockTier) (LockSchedule, error) {
	if tier.Duration <= 0 {
		return s, ErrLockDuration
	}
	if tier.BonusRateBps > maxRateCoefficientBps {
		return s, ErrMultiplierTooHigh
	}
	return append(s, tier), nil
}

func (s LockSchedule) ValidIndex(index int) bool {
	return index >= 0 && index < len(s)
}

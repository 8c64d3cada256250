package core

// InterestRateConfig holds the basis-point coefficients of the borrow
// rate curve. Admin-set, read-only during normal operation.
type InterestRateConfig struct {
	BaseRateBps              uint64 `json:"baseRateBps"`
	UtilizationMultiplierBps uint64 `json:"utilizationMultiplierBps"`
	ExcessMultiplierBps      uint64 `json:"excessMultiplierBps"`
}

// Coefficients above this bound would let the curve overflow on
// pathological admin input; Validate rejects them up front.
const maxRateCoefficientBps = 1_000_000

// UtilizationBps returns borrowed funds as basis points of total pool
// funds, zero for an empty pool.
func UtilizationBps(totalBorrowed, totalPoolFunds uint64) uint64 {
	if totalPoolFunds == 0 {
		return 0
	}
	u, err := MulDiv(totalBorrowed, BPS_DENOMINATOR, totalPoolFunds)
	if err != nil {
		// totalBorrowed <= totalPoolFunds is a pool invariant, so the
		// quotient is bounded by BPS_DENOMINATOR.
		return BPS_DENOMINATOR
	}
	return u
}

// CurrentRateBps evaluates the two-segment piecewise-linear rate curve.
// Below the kink the rate climbs gently; past OPTIMAL_UTILIZATION_BPS the
// excess multiplier takes over so that driving utilization toward 100%
// becomes sharply more expensive. The curve is continuous at the kink.
func (i *InterestRateConfig) CurrentRateBps(utilizationBps uint64) uint64 {
	if utilizationBps <= OPTIMAL_UTILIZATION_BPS {
		return i.BaseRateBps + utilizationBps*i.UtilizationMultiplierBps/BPS_DENOMINATOR
	}
	rateAtKink := i.BaseRateBps + OPTIMAL_UTILIZATION_BPS*i.UtilizationMultiplierBps/BPS_DENOMINATOR
	return rateAtKink + (utilizationBps-OPTIMAL_UTILIZATION_BPS)*i.ExcessMultiplierBps/BPS_DENOMINATOR
}

// CalcAccruedInterest computes simple interest for an elapsed period:
// principal * rateBps * elapsedSeconds / (10000 * SECONDS_PER_YEAR),
// truncating toward zero. Sub-threshold combinations legitimately accrue
// zero; interest never rounds in the protocol's favor.
func CalcAccruedInterest(principal, rateBps uint64, elapsedSeconds int64) (uint64, error) {
	if elapsedSeconds <= 0 || principal == 0 || rateBps == 0 {
		return 0, nil
	}
	return mulDiv3(principal, rateBps, uint64(elapsedSeconds), BPS_DENOMINATOR, SECONDS_PER_YEAR)
}

func (i *InterestRateConfig) Validate() error {
	if i.BaseRateBps > maxRateCoefficientBps {
		return ErrBaseRateTooHigh
	}
	if i.UtilizationMultiplierBps > maxRateCoefficientBps {
		return ErrMultiplierTooHigh
	}
	if i.ExcessMultiplierBps > maxRateCoefficientBps {
		return ErrMultiplierTooHigh
	}
	return nil
}

func (i *InterestRateConfig) Update(irConfig *InterestRateConfig) {
	if irConfig.BaseRateBps != 0 {
		i.BaseRateBps = irConfig.BaseRateBps
	}
	if irConfig.UtilizationMultiplierBps != 0 {
		i.UtilizationMultiplierBps = irConfig.UtilizationMultiplierBps
	}
	if irConfig.ExcessMultiplierBps != 0 {
		i.ExcessMultiplierBps = irConfig.ExcessMultiplierBps
	}
}

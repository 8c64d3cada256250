package core

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	SECONDS_PER_YEAR = 31_536_000

	HOURS_PER_YEAR = 365.25 * 24

	// Basis-point denominator. All rates, ratios and penalties are
	// integers scaled by this value.
	BPS_DENOMINATOR = 10_000

	// Kink of the two-segment interest rate curve.
	OPTIMAL_UTILIZATION_BPS = 8_000

	// Policy ceiling on utilization, enforced at borrow time.
	MAX_UTILIZATION_BPS = 9_500

	// Origination collateralization floor: collateral value must cover
	// at least 150% of the debt when a borrow is opened.
	COLLATERAL_RATIO_BPS = 15_000

	// Incentive paid to whoever triggers a liquidation, on top of the
	// seized collateral value.
	LIQUIDATION_BONUS_BPS = 1_000
)

// Deposit limits and borrow caps are disabled when set to this value.
const NO_LIMIT = math.MaxUint64

var (
	ONE = decimal.NewFromInt(1)

	BPS_DENOMINATOR_DEC = decimal.NewFromInt(BPS_DENOMINATOR)
)

package types

import (
	"fmt"
	"time"

	sdk "github.com/tessera-chain/tessera/types"
)

// Coefficient is the global decay factor (N-k)/N applied to all staked
// voting weight at one tick. It is kept as an exact integer fraction and
// applied with a single floored multiply-divide, never as a float, so every
// node computes bit-identical weights.
type Coefficient struct {
	Numerator   int64 `json:"numerator"`
	Denominator int64 `json:"denominator"`
}

// FullWeight is the coefficient before any decay (and before the subsystem
// activates).
func FullWeight() Coefficient {
	return Coefficient{Numerator: 1, Denominator: 1}
}

func (c Coefficient) IsZero() bool { return c.Numerator == 0 }

func (c Coefficient) String() string {
	return fmt.Sprintf("%d/%d", c.Numerator, c.Denominator)
}

// Apply scales a stake amount by the coefficient, flooring the result.
// Returns false on arithmetic overflow; overflow is never saturated, since
// masking it inconsistently would fork the chain.
func (c Coefficient) Apply(amount int64) (int64, bool) {
	if amount < 0 {
		return 0, false
	}
	return sdk.MulDiv64(amount, c.Numerator, c.Denominator)
}

// CoefficientAt computes the decay coefficient for the given chain time.
//
// With N = floor(vesting_period / vesting_subperiod) and k the number of
// whole subperiods elapsed since period_start clamped to [0, N], the
// coefficient is (N-k)/N. A chain time before period_start clamps to k = 0,
// full weight.
func CoefficientAt(now time.Time, params Params) (Coefficient, error) {
	n, err := params.SubperiodCount()
	if err != nil {
		return Coefficient{}, err
	}
	elapsed := now.Sub(params.PeriodStart)
	k := int64(elapsed / params.VestingSubperiod)
	if k < 0 {
		k = 0
	}
	if k > n {
		k = n
	}
	return Coefficient{Numerator: n - k, Denominator: n}, nil
}

package types

import (
	"fmt"
	"time"
)

const (
	// defaultVestingPeriod is six months, the rolling window over which
	// staked voting power decays to zero.
	defaultVestingPeriod = 180 * 24 * time.Hour

	// defaultVestingSubperiod is one month, giving six discrete decay steps
	// per period.
	defaultVestingSubperiod = 30 * 24 * time.Hour
)

// Params are the governance-period settings. Only PeriodStart is ever
// rewritten by the engine itself (at rollover); the durations change solely
// through the privileged external update path.
type Params struct {
	VestingPeriod    time.Duration `json:"vesting_period"`
	VestingSubperiod time.Duration `json:"vesting_subperiod"`
	PeriodStart      time.Time     `json:"period_start"`
}

// DefaultParams returns a default set of parameters.
func DefaultParams() Params {
	return Params{
		VestingPeriod:    defaultVestingPeriod,
		VestingSubperiod: defaultVestingSubperiod,
	}
}

// SubperiodCount returns N, the number of decay steps per period. It is the
// floor of period/subperiod and must be at least 1 for decay to be defined.
func (p Params) SubperiodCount() (int64, error) {
	if err := p.UpdateCheck(); err != nil {
		return 0, err
	}
	return int64(p.VestingPeriod / p.VestingSubperiod), nil
}

// UpdateCheck validates the parameter set. A violation observed at tick time
// means the external validation path was bypassed and the tick must abort.
func (p Params) UpdateCheck() error {
	if p.VestingPeriod <= 0 {
		return fmt.Errorf("vesting_period must be positive, got %s", p.VestingPeriod)
	}
	if p.VestingSubperiod <= 0 {
		return fmt.Errorf("vesting_subperiod must be positive, got %s", p.VestingSubperiod)
	}
	if p.VestingSubperiod > p.VestingPeriod {
		return fmt.Errorf("vesting_subperiod %s exceeds vesting_period %s",
			p.VestingSubperiod, p.VestingPeriod)
	}
	return nil
}

// HumanReadableString returns a human readable string representation of the
// parameters.
func (p Params) HumanReadableString() string {
	resp := "Params \n"
	resp += fmt.Sprintf("Vesting Period: %s\n", p.VestingPeriod)
	resp += fmt.Sprintf("Vesting Subperiod: %s\n", p.VestingSubperiod)
	resp += fmt.Sprintf("Period Start: %s\n", p.PeriodStart.UTC())
	return resp
}

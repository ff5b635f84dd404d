package types

import (
	"fmt"
	"time"

	sdk "github.com/tessera-chain/tessera/types"
)

// Options is the per-asset payout schedule. The issuer mutates it through
// MsgUpdateDividendOptions; the distributor reads it to decide whether to
// fire and rewrites NextPayoutTime when it does.
type Options struct {
	PayoutInterval time.Duration `json:"payout_interval"`
	NextPayoutTime time.Time     `json:"next_payout_time"`
}

// UpdateCheck validates the payout schedule.
func (o Options) UpdateCheck() error {
	if o.PayoutInterval <= 0 {
		return fmt.Errorf("payout_interval must be positive, got %s", o.PayoutInterval)
	}
	return nil
}

// Asset is one dividend-bearing asset: the denomination paid out, the account
// accumulating the not-yet-paid funds, the issuer allowed to reschedule, and
// the schedule itself.
type Asset struct {
	Denom               string        `json:"denom"`
	Issuer              sdk.AccountID `json:"issuer"`
	DistributionAccount sdk.AccountID `json:"distribution_account"`
	Options             Options       `json:"options"`
}

// UpdateCheck validates the asset definition. A violation at distribution
// time is the recoverable misconfiguration case: the asset is skipped for
// that tick only.
func (a Asset) UpdateCheck() error {
	if a.Denom == "" {
		return fmt.Errorf("dividend asset denom must not be empty")
	}
	if a.DistributionAccount == 0 {
		return fmt.Errorf("dividend asset %s has no distribution account", a.Denom)
	}
	return a.Options.UpdateCheck()
}

// Payout is one recipient's share of a distribution.
type Payout struct {
	Recipient sdk.AccountID `json:"recipient"`
	Amount    int64         `json:"amount"`
}

// HumanReadableString returns a human readable string representation of the
// asset.
func (a Asset) HumanReadableString() string {
	resp := "Dividend Asset \n"
	resp += fmt.Sprintf("Denom: %s\n", a.Denom)
	resp += fmt.Sprintf("Issuer: %s\n", a.Issuer)
	resp += fmt.Sprintf("Distribution Account: %s\n", a.DistributionAccount)
	resp += fmt.Sprintf("Payout Interval: %s\n", a.Options.PayoutInterval)
	resp += fmt.Sprintf("Next Payout Time: %s\n", a.Options.NextPayoutTime.UTC())
	return resp
}

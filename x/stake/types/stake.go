package types

import (
	"fmt"

	sdk "github.com/tessera-chain/tessera/types"
)

// StakeRecord is one governance-tagged locked balance. An account may own
// any number of records; governance logic always works on the per-owner sum.
// The engine reads records as a snapshot at maintenance time and never
// mutates amounts.
type StakeRecord struct {
	ID     uint64        `json:"id"`
	Owner  sdk.AccountID `json:"owner"`
	Amount int64         `json:"amount"`
}

func (r StakeRecord) String() string {
	return fmt.Sprintf("stake %d: owner %s amount %d", r.ID, r.Owner, r.Amount)
}

// StakeEntry is the per-owner aggregate of all active records.
type StakeEntry struct {
	Owner  sdk.AccountID `json:"owner"`
	Amount int64         `json:"amount"`
}

// Params defines the stake module settings.
type Params struct {
	// BondDenom is the denomination locked for governance participation.
	BondDenom string `json:"bond_denom"`
}

func DefaultParams() Params {
	return Params{BondDenom: "core"}
}

func (p Params) UpdateCheck() error {
	if p.BondDenom == "" {
		return fmt.Errorf("bond_denom must not be empty")
	}
	return nil
}

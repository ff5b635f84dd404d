package keeper

import (
	"fmt"
	"sort"

	sdk "github.com/tessera-chain/tessera/types"
	"github.com/tessera-chain/tessera/x/gov/types"
)

// Retally recomputes the total voting weight of every candidate from the
// current stake snapshot and vote selections, scaled by the given decay
// coefficient, and overwrites the stored tally set. Previous totals are
// discarded, never accumulated.
//
// Per candidate the raw stakes are summed first and the coefficient is
// applied once to the aggregate, so no per-account rounding drift creeps in:
// total(c) = floor(coefficient * sum of stake(a) over accounts voting c).
func (k Keeper) Retally(ctx sdk.Context, coef types.Coefficient) ([]types.CandidateTally, sdk.Error) {
	entries, err := k.stakeKeeper.ActiveStakes(ctx)
	if err != nil {
		return nil, types.ErrTallyOverflow(k.codespace, err.Error())
	}
	stakeByOwner := make(map[sdk.AccountID]int64, len(entries))
	for _, entry := range entries {
		stakeByOwner[entry.Owner] = entry.Amount
	}

	// accounts are visited in ascending owner id order; the sums are
	// order-independent but the deterministic walk keeps replay logs aligned
	// across nodes
	rawTotals := make(map[types.CandidateID]int64)
	var overflowErr sdk.Error
	k.IterateVoteSelections(ctx, func(selection types.VoteSelection) bool {
		stake := stakeByOwner[selection.Owner]
		if stake == 0 {
			return false
		}
		for _, target := range selection.Targets {
			sum, ok := sdk.Add64(rawTotals[target], stake)
			if !ok {
				overflowErr = types.ErrTallyOverflow(k.codespace,
					fmt.Sprintf("vote total overflow for %s", target))
				return true
			}
			rawTotals[target] = sum
		}
		return false
	})
	if overflowErr != nil {
		return nil, overflowErr
	}

	candidates := make([]types.CandidateID, 0, len(rawTotals))
	for candidate := range rawTotals {
		candidates = append(candidates, candidate)
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Less(candidates[j]) })

	tallies := make([]types.CandidateTally, 0, len(candidates))
	for _, candidate := range candidates {
		total, ok := coef.Apply(rawTotals[candidate])
		if !ok {
			return nil, types.ErrTallyOverflow(k.codespace,
				fmt.Sprintf("decay scaling overflow for %s", candidate))
		}
		tallies = append(tallies, types.CandidateTally{Candidate: candidate, TotalVotes: total})
	}

	k.clearTallies(ctx)
	for _, tally := range tallies {
		k.setTally(ctx, tally)
	}
	return tallies, nil
}

package types

import (
	"fmt"

	sdk "github.com/tessera-chain/tessera/types"
)

// CandidateTally is the total decayed voting weight backing one candidate,
// as of the last maintenance tick. The whole set is overwritten at every
// tick; a tally is never patched incrementally.
type CandidateTally struct {
	Candidate  CandidateID `json:"candidate"`
	TotalVotes int64       `json:"total_votes"`
}

func (t CandidateTally) String() string {
	return fmt.Sprintf("%s: %d", t.Candidate, t.TotalVotes)
}

// VoteSelection is one account's current set of governance targets. An
// update replaces the set wholesale; no per-vote timestamps exist, since
// decay is a global function of chain time only.
type VoteSelection struct {
	Owner   sdk.AccountID `json:"owner"`
	Targets []CandidateID `json:"targets"`
}

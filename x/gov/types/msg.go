package types

import (
	"fmt"

	sdk "github.com/tessera-chain/tessera/types"
)

const MsgRoute = "gov"

// maxVoteTargets bounds one account's selection so a single update cannot
// blow up the per-tick tally work.
const maxVoteTargets = 256

// MsgSetVoteSelection replaces the owner's governance targets wholesale.
type MsgSetVoteSelection struct {
	Owner   sdk.AccountID `json:"owner"`
	Targets []CandidateID `json:"targets"`
}

func NewMsgSetVoteSelection(owner sdk.AccountID, targets []CandidateID) MsgSetVoteSelection {
	return MsgSetVoteSelection{Owner: owner, Targets: targets}
}

func (msg MsgSetVoteSelection) Route() string { return MsgRoute }
func (msg MsgSetVoteSelection) Type() string  { return "set_vote_selection" }

func (msg MsgSetVoteSelection) ValidateBasic() sdk.Error {
	if len(msg.Targets) > maxVoteTargets {
		return ErrInvalidVoteSelection(DefaultCodespace,
			fmt.Sprintf("too many vote targets: %d > %d", len(msg.Targets), maxVoteTargets))
	}
	seen := make(map[CandidateID]struct{}, len(msg.Targets))
	for _, target := range msg.Targets {
		switch target.Kind {
		case KindWitness, KindCommitteeMember, KindWorker:
		default:
			return ErrInvalidVoteSelection(DefaultCodespace,
				fmt.Sprintf("unknown candidate kind %d", target.Kind))
		}
		if _, ok := seen[target]; ok {
			return ErrInvalidVoteSelection(DefaultCodespace,
				fmt.Sprintf("duplicate vote target %s", target))
		}
		seen[target] = struct{}{}
	}
	return nil
}

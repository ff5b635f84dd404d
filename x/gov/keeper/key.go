package keeper

import (
	sdk "github.com/tessera-chain/tessera/types"
	"github.com/tessera-chain/tessera/x/gov/types"
)

// nolint
var (
	ParamsKey        = []byte{0x00}
	TallyKey         = []byte{0x01} // prefix + candidate id
	VoteSelectionKey = []byte{0x02} // prefix + owner id
	LastTallyTimeKey = []byte{0x03}
)

// GetTallyKey returns the store key of one candidate's tally.
func GetTallyKey(candidate types.CandidateID) []byte {
	return append(append([]byte{}, TallyKey...), candidate.Bytes()...)
}

// GetVoteSelectionKey returns the store key of one account's selection.
func GetVoteSelectionKey(owner sdk.AccountID) []byte {
	return append(append([]byte{}, VoteSelectionKey...), owner.Bytes()...)
}

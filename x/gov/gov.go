// nolint
package gov

import (
	"github.com/tessera-chain/tessera/x/gov/keeper"
	"github.com/tessera-chain/tessera/x/gov/types"
)

type (
	Keeper         = keeper.Keeper
	Params         = types.Params
	Coefficient    = types.Coefficient
	CandidateID    = types.CandidateID
	CandidateTally = types.CandidateTally
	VoteSelection  = types.VoteSelection

	MsgSetVoteSelection = types.MsgSetVoteSelection
)

var (
	NewKeeper              = keeper.NewKeeper
	NewMsgSetVoteSelection = types.NewMsgSetVoteSelection
	DefaultParams          = types.DefaultParams
	CoefficientAt          = types.CoefficientAt
	FullWeight             = types.FullWeight
	SortCandidateIDs       = types.SortCandidateIDs

	DefaultCodespace = types.DefaultCodespace
)

const (
	KindWitness         = types.KindWitness
	KindCommitteeMember = types.KindCommitteeMember
	KindWorker          = types.KindWorker
)

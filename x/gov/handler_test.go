package gov

import (
	"testing"

	"github.com/stretchr/testify/require"

	sdk "github.com/tessera-chain/tessera/types"
	"github.com/tessera-chain/tessera/x/gov/keeper"
	"github.com/tessera-chain/tessera/x/gov/types"
)

func TestHandleMsgSetVoteSelection(t *testing.T) {
	ctx, _, _, k := keeper.CreateTestInput(t)
	handler := NewHandler(k)

	owner := sdk.AccountID(10)
	witness := types.CandidateID{Kind: types.KindWitness, Index: 1}
	worker := types.CandidateID{Kind: types.KindWorker, Index: 4}

	// targets come back sorted
	res := handler(ctx, NewMsgSetVoteSelection(owner, []types.CandidateID{worker, witness}))
	require.True(t, res.IsOK())
	selection := k.GetVoteSelection(ctx, owner)
	require.Equal(t, []types.CandidateID{witness, worker}, selection.Targets)

	// an empty selection clears the entry
	res = handler(ctx, NewMsgSetVoteSelection(owner, nil))
	require.True(t, res.IsOK())
	require.Empty(t, k.GetVoteSelection(ctx, owner).Targets)
}

func TestHandleMsgSetVoteSelectionInvalid(t *testing.T) {
	ctx, _, _, k := keeper.CreateTestInput(t)
	handler := NewHandler(k)

	bad := types.CandidateID{Kind: 0x7f, Index: 1}
	res := handler(ctx, NewMsgSetVoteSelection(sdk.AccountID(10), []types.CandidateID{bad}))
	require.False(t, res.IsOK())
	require.Empty(t, k.GetVoteSelection(ctx, sdk.AccountID(10)).Targets)

	witness := types.CandidateID{Kind: types.KindWitness, Index: 1}
	res = handler(ctx, NewMsgSetVoteSelection(sdk.AccountID(10), []types.CandidateID{witness, witness}))
	require.False(t, res.IsOK())
}

func TestGenesisRoundTrip(t *testing.T) {
	ctx, _, _, k := keeper.CreateTestInput(t)

	data := DefaultGenesisState()
	data.Params.PeriodStart = ctx.BlockTime()
	data.Selections = []types.VoteSelection{
		{Owner: sdk.AccountID(3), Targets: []types.CandidateID{{Kind: types.KindWitness, Index: 1}}},
		{Owner: sdk.AccountID(8), Targets: []types.CandidateID{{Kind: types.KindCommitteeMember, Index: 2}}},
	}
	InitGenesis(ctx, k, data)

	exported := WriteGenesis(ctx, k)
	require.Equal(t, data.Params, exported.Params)
	require.Equal(t, data.Selections, exported.Selections)
}

func TestInitGenesisRejectsBadParams(t *testing.T) {
	ctx, _, _, k := keeper.CreateTestInput(t)

	data := DefaultGenesisState()
	data.Params.VestingSubperiod = 0
	require.Panics(t, func() { InitGenesis(ctx, k, data) })
}

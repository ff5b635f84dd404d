package keeper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	sdk "github.com/tessera-chain/tessera/types"
	"github.com/tessera-chain/tessera/x/gov/types"
)

func TestEndBreatheBlockDecay(t *testing.T) {
	ctx, ck, sk, gk := CreateTestInput(t)

	params := gk.GetParams(ctx)
	params.VestingPeriod = 4 * 24 * time.Hour
	params.VestingSubperiod = 24 * time.Hour
	params.PeriodStart = testGenesisTime
	gk.SetParams(ctx, params)

	alice := sdk.AccountID(10)
	fundAndLock(t, ctx, ck, sk, alice, 100)
	gk.SetVoteSelection(ctx, alice, []types.CandidateID{witness1})

	// N=4 schedule inside one window: 100, 75, 50, 25
	expected := []int64{100, 75, 50, 25}
	for k, want := range expected {
		now := testGenesisTime.Add(time.Duration(k) * 24 * time.Hour)
		tallies, err := gk.EndBreatheBlock(ctx.WithBlockTime(now))
		require.Nil(t, err)
		require.Len(t, tallies, 1)
		require.EqualValues(t, want, tallies[0].TotalVotes, "subperiod %d", k)
		require.Equal(t, now.Unix(), gk.GetLastTallyTime(ctx))
	}

	// the boundary tick rolls the window and tallies at full weight again
	boundary := testGenesisTime.Add(4 * 24 * time.Hour)
	tallies, err := gk.EndBreatheBlock(ctx.WithBlockTime(boundary))
	require.Nil(t, err)
	require.Len(t, tallies, 1)
	require.EqualValues(t, 100, tallies[0].TotalVotes)
	require.Equal(t, boundary, gk.GetParams(ctx).PeriodStart)
}

func TestEndBreatheBlockBeforeActivation(t *testing.T) {
	ctx, ck, sk, gk := CreateTestInput(t)

	// decay activates one year from genesis
	sdk.ResetUpgradeMgr()
	sdk.SetUpgradeTime(sdk.VoteDecayUpgrade, testGenesisTime.AddDate(1, 0, 0))

	alice := sdk.AccountID(10)
	fundAndLock(t, ctx, ck, sk, alice, 100)
	gk.SetVoteSelection(ctx, alice, []types.CandidateID{witness1})

	// far past the window end, yet pre-activation: full weight, no rollover
	now := testGenesisTime.Add(200 * 24 * time.Hour)
	tallies, err := gk.EndBreatheBlock(ctx.WithBlockTime(now))
	require.Nil(t, err)
	require.Len(t, tallies, 1)
	require.EqualValues(t, 100, tallies[0].TotalVotes)
	require.Equal(t, testGenesisTime, gk.GetParams(ctx).PeriodStart)
}

func TestEndBreatheBlockActivationBoundary(t *testing.T) {
	ctx, ck, sk, gk := CreateTestInput(t)

	activation := testGenesisTime.Add(30 * 24 * time.Hour)
	sdk.ResetUpgradeMgr()
	sdk.SetUpgradeTime(sdk.VoteDecayUpgrade, activation)

	params := gk.GetParams(ctx)
	params.VestingPeriod = 6 * 24 * time.Hour
	params.VestingSubperiod = 24 * time.Hour
	params.PeriodStart = testGenesisTime
	gk.SetParams(ctx, params)

	alice := sdk.AccountID(10)
	fundAndLock(t, ctx, ck, sk, alice, 100)
	gk.SetVoteSelection(ctx, alice, []types.CandidateID{witness1})

	// one tick before activation: still full weight
	tallies, err := gk.EndBreatheBlock(ctx.WithBlockTime(activation.Add(-time.Second)))
	require.Nil(t, err)
	require.EqualValues(t, 100, tallies[0].TotalVotes)

	// the first post-activation tick is past the window end, so it rolls the
	// window and tallies at full weight of the fresh window
	tallies, err = gk.EndBreatheBlock(ctx.WithBlockTime(activation))
	require.Nil(t, err)
	require.EqualValues(t, 100, tallies[0].TotalVotes)
	require.Equal(t, activation, gk.GetParams(ctx).PeriodStart)

	// a day later decay is in effect
	tallies, err = gk.EndBreatheBlock(ctx.WithBlockTime(activation.Add(24 * time.Hour)))
	require.Nil(t, err)
	require.EqualValues(t, 83, tallies[0].TotalVotes)
}

func TestEndBreatheBlockBadConfigAborts(t *testing.T) {
	ctx, ck, sk, gk := CreateTestInput(t)

	alice := sdk.AccountID(10)
	fundAndLock(t, ctx, ck, sk, alice, 100)
	gk.SetVoteSelection(ctx, alice, []types.CandidateID{witness1})

	_, err := gk.EndBreatheBlock(ctx)
	require.Nil(t, err)
	require.EqualValues(t, 100, gk.GetTally(ctx, witness1).TotalVotes)

	params := gk.GetParams(ctx)
	params.VestingSubperiod = 2 * params.VestingPeriod
	gk.SetParams(ctx, params)

	_, err = gk.EndBreatheBlock(ctx.WithBlockTime(testGenesisTime.Add(time.Hour)))
	require.NotNil(t, err)
	require.EqualValues(t, types.CodeInvalidVestingConfig, err.Code())
}

func TestEndBreatheBlockNoVoters(t *testing.T) {
	ctx, _, _, gk := CreateTestInput(t)

	tallies, err := gk.EndBreatheBlock(ctx)
	require.Nil(t, err)
	require.Empty(t, tallies)
	require.Equal(t, testGenesisTime.Unix(), gk.GetLastTallyTime(ctx))
}

package gov

import (
	"fmt"

	sdk "github.com/tessera-chain/tessera/types"
	"github.com/tessera-chain/tessera/x/gov/keeper"
	"github.com/tessera-chain/tessera/x/gov/types"
)

// NewHandler routes gov messages to the keeper.
func NewHandler(k keeper.Keeper) sdk.Handler {
	return func(ctx sdk.Context, msg sdk.Msg) sdk.Result {
		switch msg := msg.(type) {
		case types.MsgSetVoteSelection:
			return handleMsgSetVoteSelection(ctx, k, msg)
		default:
			errMsg := fmt.Sprintf("unrecognized gov msg type: %T", msg)
			return sdk.ErrResult(sdk.ErrInternal(errMsg))
		}
	}
}

func handleMsgSetVoteSelection(ctx sdk.Context, k keeper.Keeper, msg types.MsgSetVoteSelection) sdk.Result {
	if err := msg.ValidateBasic(); err != nil {
		return sdk.ErrResult(err)
	}
	k.SetVoteSelection(ctx, msg.Owner, msg.Targets)
	return sdk.Result{}
}

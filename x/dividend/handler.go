package dividend

import (
	"fmt"

	sdk "github.com/tessera-chain/tessera/types"
	"github.com/tessera-chain/tessera/x/dividend/keeper"
	"github.com/tessera-chain/tessera/x/dividend/types"
)

// NewHandler routes dividend messages to the keeper.
func NewHandler(k keeper.Keeper) sdk.Handler {
	return func(ctx sdk.Context, msg sdk.Msg) sdk.Result {
		switch msg := msg.(type) {
		case types.MsgUpdateDividendOptions:
			return handleMsgUpdateDividendOptions(ctx, k, msg)
		default:
			errMsg := fmt.Sprintf("unrecognized dividend msg type: %T", msg)
			return sdk.ErrResult(sdk.ErrInternal(errMsg))
		}
	}
}

func handleMsgUpdateDividendOptions(ctx sdk.Context, k keeper.Keeper, msg types.MsgUpdateDividendOptions) sdk.Result {
	if err := msg.ValidateBasic(); err != nil {
		return sdk.ErrResult(err)
	}
	if err := k.UpdateOptions(ctx, msg.Issuer, msg.Denom, msg.Options); err != nil {
		return sdk.ErrResult(err)
	}
	return sdk.Result{}
}

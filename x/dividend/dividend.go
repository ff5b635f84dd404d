// nolint
package dividend

import (
	"github.com/tessera-chain/tessera/x/dividend/keeper"
	"github.com/tessera-chain/tessera/x/dividend/types"
)

type (
	Keeper  = keeper.Keeper
	Asset   = types.Asset
	Options = types.Options
	Payout  = types.Payout

	MsgUpdateDividendOptions = types.MsgUpdateDividendOptions
)

var (
	NewKeeper                   = keeper.NewKeeper
	NewMsgUpdateDividendOptions = types.NewMsgUpdateDividendOptions

	DefaultCodespace = types.DefaultCodespace
)

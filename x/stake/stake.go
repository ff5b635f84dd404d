// nolint
package stake

import (
	"github.com/tessera-chain/tessera/x/stake/keeper"
	"github.com/tessera-chain/tessera/x/stake/types"
)

type (
	Keeper      = keeper.Keeper
	Params      = types.Params
	StakeRecord = types.StakeRecord
	StakeEntry  = types.StakeEntry
)

var (
	NewKeeper     = keeper.NewKeeper
	DefaultParams = types.DefaultParams

	StakePoolAccountID = keeper.StakePoolAccountID
	DefaultCodespace   = types.DefaultCodespace
)

package dividend

import (
	"fmt"

	sdk "github.com/tessera-chain/tessera/types"
	"github.com/tessera-chain/tessera/x/dividend/keeper"
	"github.com/tessera-chain/tessera/x/dividend/types"
)

// GenesisState is the dividend state that must be provided at genesis.
type GenesisState struct {
	Assets []types.Asset `json:"assets"`
}

func NewGenesisState(assets []types.Asset) GenesisState {
	return GenesisState{Assets: assets}
}

// DefaultGenesisState registers no assets.
func DefaultGenesisState() GenesisState {
	return GenesisState{}
}

// InitGenesis stores the genesis asset registry. An invalid asset here is a
// setup bug, not a runtime condition, so it panics.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, data GenesisState) {
	for _, asset := range data.Assets {
		if err := asset.UpdateCheck(); err != nil {
			panic(fmt.Errorf("invalid genesis dividend asset: %v", err))
		}
		k.SetAsset(ctx, asset)
	}
}

// WriteGenesis returns a GenesisState for the current store contents.
func WriteGenesis(ctx sdk.Context, k keeper.Keeper) GenesisState {
	return GenesisState{Assets: k.GetAllAssets(ctx)}
}

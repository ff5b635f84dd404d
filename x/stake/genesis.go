package stake

import (
	"fmt"

	sdk "github.com/tessera-chain/tessera/types"
	"github.com/tessera-chain/tessera/x/stake/keeper"
	"github.com/tessera-chain/tessera/x/stake/types"
)

// GenesisState - stake state that must be provided at genesis. Records listed
// here are assumed backed by the stake pool's balance in the bank genesis.
type GenesisState struct {
	Params  types.Params        `json:"params"`
	Records []types.StakeRecord `json:"records"`
}

func NewGenesisState(params types.Params, records []types.StakeRecord) GenesisState {
	return GenesisState{
		Params:  params,
		Records: records,
	}
}

func DefaultGenesisState() GenesisState {
	return GenesisState{
		Params: types.DefaultParams(),
	}
}

// InitGenesis - store genesis parameters and stake records
func InitGenesis(ctx sdk.Context, k keeper.Keeper, data GenesisState) {
	if err := data.Params.UpdateCheck(); err != nil {
		panic(err)
	}
	k.SetParams(ctx, data.Params)

	var maxID uint64
	for _, record := range data.Records {
		if record.Amount <= 0 {
			panic(fmt.Errorf("invalid genesis stake record %d: amount %d", record.ID, record.Amount))
		}
		k.SetStakeRecord(ctx, record)
		if record.ID >= maxID {
			maxID = record.ID + 1
		}
	}
	k.SetNextRecordID(ctx, maxID)
}

// WriteGenesis - output genesis parameters and stake records
func WriteGenesis(ctx sdk.Context, k keeper.Keeper) GenesisState {
	return GenesisState{
		Params:  k.GetParams(ctx),
		Records: k.GetAllStakeRecords(ctx),
	}
}

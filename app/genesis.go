package app

import (
	"time"

	sdk "github.com/tessera-chain/tessera/types"
	"github.com/tessera-chain/tessera/x/dividend"
	"github.com/tessera-chain/tessera/x/gov"
	"github.com/tessera-chain/tessera/x/stake"
)

// GenesisAccount funds one account at genesis.
type GenesisAccount struct {
	ID    sdk.AccountID `json:"id"`
	Coins sdk.Coins     `json:"coins"`
}

// GenesisState is the full application genesis: balances, per-module state,
// the maintenance schedule and the vote-decay activation time.
type GenesisState struct {
	Accounts []GenesisAccount      `json:"accounts"`
	Stake    stake.GenesisState    `json:"stake"`
	Gov      gov.GenesisState      `json:"gov"`
	Dividend dividend.GenesisState `json:"dividend"`

	FirstMaintenanceTime time.Time     `json:"first_maintenance_time"`
	MaintenanceInterval  time.Duration `json:"maintenance_interval"`

	// VoteDecayActivationTime is the fixed protocol timestamp of the one-time
	// cutover. Before it, votes count at full nominal weight and no dividend
	// fires.
	VoteDecayActivationTime time.Time `json:"vote_decay_activation_time"`
}

// DefaultGenesisState activates vote decay at genesis time, determined when
// InitGenesis runs.
func DefaultGenesisState(genesisTime time.Time) GenesisState {
	return GenesisState{
		Stake:                   stake.DefaultGenesisState(),
		Gov:                     gov.DefaultGenesisState(),
		Dividend:                dividend.DefaultGenesisState(),
		FirstMaintenanceTime:    genesisTime,
		MaintenanceInterval:     defaultMaintenanceInterval,
		VoteDecayActivationTime: genesisTime,
	}
}

// InitGenesis seeds the application state. It panics on invalid genesis data,
// like the module InitGenesis functions it delegates to.
func (app *TesseraApp) InitGenesis(ctx sdk.Context, data GenesisState) {
	if data.MaintenanceInterval <= 0 {
		panic("maintenance_interval must be positive")
	}
	for _, acc := range data.Accounts {
		app.BankKeeper.SetCoins(ctx, acc.ID, acc.Coins)
	}
	stake.InitGenesis(ctx, app.StakeKeeper, data.Stake)
	gov.InitGenesis(ctx, app.GovKeeper, data.Gov)
	dividend.InitGenesis(ctx, app.DividendKeeper, data.Dividend)

	app.setMaintenanceSchedule(ctx, data.FirstMaintenanceTime, data.MaintenanceInterval)
	sdk.SetUpgradeTime(sdk.VoteDecayUpgrade, data.VoteDecayActivationTime)
}

// WriteGenesis exports the current state in genesis form. Account balances
// are not walked here; export tooling reads them straight from the bank
// store.
func (app *TesseraApp) WriteGenesis(ctx sdk.Context) GenesisState {
	next, interval := app.GetMaintenanceSchedule(ctx)
	activation, _ := sdk.GetUpgradeTime(sdk.VoteDecayUpgrade)
	return GenesisState{
		Stake:                   stake.WriteGenesis(ctx, app.StakeKeeper),
		Gov:                     gov.WriteGenesis(ctx, app.GovKeeper),
		Dividend:                dividend.WriteGenesis(ctx, app.DividendKeeper),
		FirstMaintenanceTime:    next,
		MaintenanceInterval:     interval,
		VoteDecayActivationTime: activation,
	}
}

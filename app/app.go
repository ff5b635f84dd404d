package app

import (
	"time"

	dbm "github.com/tendermint/tendermint/libs/db"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/tessera-chain/tessera/codec"
	"github.com/tessera-chain/tessera/pubsub"
	"github.com/tessera-chain/tessera/store"
	sdk "github.com/tessera-chain/tessera/types"
	"github.com/tessera-chain/tessera/x/bank"
	"github.com/tessera-chain/tessera/x/dividend"
	"github.com/tessera-chain/tessera/x/gov"
	"github.com/tessera-chain/tessera/x/stake"
)

const appName = "TesseraApp"

// TesseraApp wires the stores, keepers and the maintenance scheduler into one
// ledger application. It drives the single synchronous maintenance tick: per
// block, EndBlock checks the schedule and, when due, runs rollover, retally
// and all dividend distributions inside one cache wrap that commits or
// discards as a unit.
type TesseraApp struct {
	Logger log.Logger

	cdc *codec.Codec
	cms sdk.CommitMultiStore

	keyMain     sdk.StoreKey
	keyBank     sdk.StoreKey
	keyStake    sdk.StoreKey
	keyGov      sdk.StoreKey
	keyDividend sdk.StoreKey

	BankKeeper     bank.Keeper
	StakeKeeper    stake.Keeper
	GovKeeper      gov.Keeper
	DividendKeeper dividend.Keeper

	PbsbServer *pubsub.Publisher
	metrics    *Metrics
}

// NewTesseraApp builds the application over the given database.
func NewTesseraApp(logger log.Logger, db dbm.DB) (*TesseraApp, error) {
	cdc := codec.New()

	app := &TesseraApp{
		Logger:      logger,
		cdc:         cdc,
		keyMain:     sdk.NewKVStoreKey("main"),
		keyBank:     sdk.NewKVStoreKey("bank"),
		keyStake:    sdk.NewKVStoreKey("stake"),
		keyGov:      sdk.NewKVStoreKey("gov"),
		keyDividend: sdk.NewKVStoreKey("dividend"),
		metrics:     DefaultMetrics(),
	}

	cms := store.NewCommitMultiStore(db)
	cms.MountStore(app.keyMain)
	cms.MountStore(app.keyBank)
	cms.MountStore(app.keyStake)
	cms.MountStore(app.keyGov)
	cms.MountStore(app.keyDividend)
	if err := cms.LoadLatestVersion(); err != nil {
		return nil, err
	}
	app.cms = cms

	app.BankKeeper = bank.NewKeeper(cdc, app.keyBank, bank.DefaultCodespace)
	app.StakeKeeper = stake.NewKeeper(cdc, app.keyStake, app.BankKeeper, stake.DefaultCodespace)
	app.GovKeeper = gov.NewKeeper(cdc, app.keyGov, app.StakeKeeper, gov.DefaultCodespace)
	app.DividendKeeper = dividend.NewKeeper(cdc, app.keyDividend, app.BankKeeper, app.StakeKeeper, dividend.DefaultCodespace)

	app.PbsbServer = pubsub.NewPublisher(appName, logger.With("module", "pubsub"))
	app.StakeKeeper.SetupPubsub(app.PbsbServer)
	app.GovKeeper.SetupPubsub(app.PbsbServer)
	app.DividendKeeper.SetupPubsub(app.PbsbServer)
	if err := app.PbsbServer.Start(); err != nil {
		return nil, err
	}
	if err := app.metrics.observePayouts(app.PbsbServer); err != nil {
		return nil, err
	}
	return app, nil
}

// NewContext returns a context over the committed state.
func (app *TesseraApp) NewContext(height int64, blockTime time.Time) sdk.Context {
	return sdk.NewContext(app.cms, height, blockTime, app.Logger)
}

// EndBlock runs the per-block maintenance check. When the schedule has not
// come due it is a no-op. When it fires, the whole tick runs against a cache
// wrap; a tick error discards every buffered write and is returned to the
// caller, which rejects the enclosing block.
func (app *TesseraApp) EndBlock(ctx sdk.Context) ([]gov.CandidateTally, sdk.Error) {
	now := ctx.BlockTime()
	next, interval := app.GetMaintenanceSchedule(ctx)
	if now.Before(next) {
		return nil, nil
	}

	started := time.Now()
	tickCtx, writeCache := ctx.CacheContext()

	tallies, err := app.GovKeeper.EndBreatheBlock(tickCtx)
	if err != nil {
		app.metrics.TickFailures.Inc()
		return nil, err
	}
	if sdk.IsUpgradeActive(sdk.VoteDecayUpgrade, now) {
		if err := app.DividendKeeper.DistributeAll(tickCtx); err != nil {
			app.metrics.TickFailures.Inc()
			return nil, err
		}
	}
	// schedule rolls forward from the firing instant, like the per-asset
	// payout times: a late block does not trigger catch-up ticks
	app.setMaintenanceSchedule(tickCtx, now.Add(interval), interval)
	writeCache()

	app.metrics.Ticks.Inc()
	app.metrics.TickDuration.Observe(time.Since(started).Seconds())
	app.Logger.Info("maintenance tick applied",
		"height", ctx.BlockHeight(), "time", now,
		"next_maintenance_time", now.Add(interval))
	return tallies, nil
}

// Commit persists the current state and returns its commit id.
func (app *TesseraApp) Commit() sdk.CommitID {
	return app.cms.Commit()
}

// LastCommitID returns the id of the last committed version.
func (app *TesseraApp) LastCommitID() sdk.CommitID {
	return app.cms.LastCommitID()
}

// Stop shuts the event publisher down.
func (app *TesseraApp) Stop() {
	if app.PbsbServer != nil {
		app.PbsbServer.Stop()
	}
}

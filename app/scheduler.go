package app

import (
	"time"

	sdk "github.com/tessera-chain/tessera/types"
)

var (
	maintenanceScheduleKey = []byte{0x01}
)

// defaultMaintenanceInterval matches one decay subperiod under the default
// governance parameters, so each tick observes one coefficient step.
const defaultMaintenanceInterval = 24 * time.Hour

type maintenanceSchedule struct {
	NextTime time.Time     `json:"next_time"`
	Interval time.Duration `json:"interval"`
}

// GetMaintenanceSchedule returns the next maintenance boundary and the
// interval the schedule advances by.
func (app *TesseraApp) GetMaintenanceSchedule(ctx sdk.Context) (time.Time, time.Duration) {
	store := ctx.KVStore(app.keyMain)
	bz := store.Get(maintenanceScheduleKey)
	if bz == nil {
		return time.Time{}, defaultMaintenanceInterval
	}
	var sched maintenanceSchedule
	app.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &sched)
	return sched.NextTime, sched.Interval
}

func (app *TesseraApp) setMaintenanceSchedule(ctx sdk.Context, next time.Time, interval time.Duration) {
	store := ctx.KVStore(app.keyMain)
	store.Set(maintenanceScheduleKey, app.cdc.MustMarshalBinaryLengthPrefixed(maintenanceSchedule{
		NextTime: next,
		Interval: interval,
	}))
}

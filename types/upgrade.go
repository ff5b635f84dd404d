package types

import (
	"sync"
	"time"
)

// Upgrade names for one-time protocol cutovers. An upgrade activates at a
// fixed chain timestamp and never deactivates.
const (
	// VoteDecayUpgrade activates the decayed-voting and dividend subsystem.
	// Before it, votes tally at full nominal weight and no dividend fires.
	VoteDecayUpgrade = "VoteDecay"
)

// UpgradeMgr tracks the activation timestamps of named protocol upgrades.
// Activation times are part of the chain configuration and are set once
// during app construction, before any block is applied.
type UpgradeMgr struct {
	mtx   sync.RWMutex
	times map[string]time.Time
}

var upgradeMgr = &UpgradeMgr{times: make(map[string]time.Time)}

// SetUpgradeTime registers the activation time of a named upgrade.
func SetUpgradeTime(name string, t time.Time) {
	upgradeMgr.mtx.Lock()
	defer upgradeMgr.mtx.Unlock()
	upgradeMgr.times[name] = t
}

// IsUpgradeActive reports whether the named upgrade is active at blockTime.
// An unregistered upgrade is never active.
func IsUpgradeActive(name string, blockTime time.Time) bool {
	upgradeMgr.mtx.RLock()
	defer upgradeMgr.mtx.RUnlock()
	at, ok := upgradeMgr.times[name]
	if !ok {
		return false
	}
	return !blockTime.Before(at)
}

// GetUpgradeTime returns the registered activation time of a named upgrade.
func GetUpgradeTime(name string) (time.Time, bool) {
	upgradeMgr.mtx.RLock()
	defer upgradeMgr.mtx.RUnlock()
	at, ok := upgradeMgr.times[name]
	return at, ok
}

// ResetUpgradeMgr clears all registered upgrades. Test helper.
func ResetUpgradeMgr() {
	upgradeMgr.mtx.Lock()
	defer upgradeMgr.mtx.Unlock()
	upgradeMgr.times = make(map[string]time.Time)
}

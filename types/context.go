package types

import (
	"time"

	"github.com/tendermint/tendermint/libs/log"
)

// Context carries the state access and block metadata for one step of the
// state transition. It is a value type: With* methods return a shallow copy,
// so a callee can never mutate the caller's view.
type Context struct {
	ms          MultiStore
	blockHeight int64
	blockTime   time.Time
	logger      log.Logger
}

// NewContext creates a Context over the given multistore.
func NewContext(ms MultiStore, height int64, blockTime time.Time, logger log.Logger) Context {
	return Context{
		ms:          ms,
		blockHeight: height,
		blockTime:   blockTime,
		logger:      logger,
	}
}

// KVStore fetches a KVStore from the MultiStore.
func (c Context) KVStore(key StoreKey) KVStore {
	return c.ms.GetKVStore(key)
}

func (c Context) MultiStore() MultiStore { return c.ms }
func (c Context) BlockHeight() int64     { return c.blockHeight }
func (c Context) BlockTime() time.Time   { return c.blockTime }
func (c Context) Logger() log.Logger     { return c.logger }

func (c Context) WithMultiStore(ms MultiStore) Context {
	c.ms = ms
	return c
}

func (c Context) WithBlockHeight(height int64) Context {
	c.blockHeight = height
	return c
}

func (c Context) WithBlockTime(t time.Time) Context {
	c.blockTime = t
	return c
}

func (c Context) WithLogger(logger log.Logger) Context {
	c.logger = logger
	return c
}

// CacheContext returns a context whose multistore is cache-wrapped, plus a
// writeCache function that flushes the buffered writes to the parent store.
// If writeCache is never called the buffered writes are discarded, which is
// how a failed maintenance tick leaves no partial effects behind.
func (c Context) CacheContext() (cc Context, writeCache func()) {
	cms := c.ms.CacheMultiStore()
	cc = c.WithMultiStore(cms)
	return cc, cms.Write
}

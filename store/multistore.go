package store

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"github.com/tendermint/tendermint/crypto/merkle"
	dbm "github.com/tendermint/tendermint/libs/db"

	sdk "github.com/tessera-chain/tessera/types"
)

var (
	_ sdk.CommitMultiStore = (*rootMultiStore)(nil)
	_ sdk.CacheMultiStore  = (*cacheMultiStore)(nil)
)

// rootMultiStore maps each mounted StoreKey to an iavl substore backed by a
// prefixed region of one underlying database, fronted by an LRU read cache.
type rootMultiStore struct {
	db     dbm.DB
	keys   map[string]sdk.StoreKey
	stores map[string]*readCacheStore
}

// NewCommitMultiStore creates an empty multistore over db. Mount every store
// key, then call LoadLatestVersion before use.
func NewCommitMultiStore(db dbm.DB) *rootMultiStore {
	return &rootMultiStore{
		db:     db,
		keys:   make(map[string]sdk.StoreKey),
		stores: make(map[string]*readCacheStore),
	}
}

// MountStore registers a substore under the given key.
func (rs *rootMultiStore) MountStore(key sdk.StoreKey) {
	if _, ok := rs.keys[key.Name()]; ok {
		panic(fmt.Sprintf("store key %s already mounted", key.Name()))
	}
	rs.keys[key.Name()] = key
}

// LoadLatestVersion loads every mounted substore at its latest version.
func (rs *rootMultiStore) LoadLatestVersion() error {
	for name := range rs.keys {
		prefix := []byte("s/" + name + "/")
		ist, err := LoadIavlStore(dbm.NewPrefixDB(rs.db, prefix))
		if err != nil {
			return errors.Wrapf(err, "load substore %s", name)
		}
		rs.stores[name] = newReadCacheStore(ist, defaultReadCacheSize)
	}
	return nil
}

func (rs *rootMultiStore) GetKVStore(key sdk.StoreKey) sdk.KVStore {
	st, ok := rs.stores[key.Name()]
	if !ok {
		panic(fmt.Sprintf("store %s not loaded", key.Name()))
	}
	return st
}

func (rs *rootMultiStore) CacheMultiStore() sdk.CacheMultiStore {
	return newCacheMultiStore(rs)
}

// Commit persists a new version of every substore. The aggregate hash is the
// merkle root of the substore hashes in store-name order.
func (rs *rootMultiStore) Commit() sdk.CommitID {
	names := make([]string, 0, len(rs.stores))
	for name := range rs.stores {
		names = append(names, name)
	}
	sort.Strings(names)

	var version int64
	hashes := make([][]byte, 0, len(names))
	for _, name := range names {
		id := rs.stores[name].parent.Commit()
		version = id.Version
		hashes = append(hashes, id.Hash)
	}
	return sdk.CommitID{
		Version: version,
		Hash:    merkle.SimpleHashFromByteSlices(hashes),
	}
}

func (rs *rootMultiStore) LastCommitID() sdk.CommitID {
	names := make([]string, 0, len(rs.stores))
	for name := range rs.stores {
		names = append(names, name)
	}
	sort.Strings(names)

	var version int64
	hashes := make([][]byte, 0, len(names))
	for _, name := range names {
		id := rs.stores[name].parent.LastCommitID()
		version = id.Version
		hashes = append(hashes, id.Hash)
	}
	return sdk.CommitID{
		Version: version,
		Hash:    merkle.SimpleHashFromByteSlices(hashes),
	}
}

//----------------------------------------

// cacheMultiStore cache-wraps every substore of its parent. Write flushes
// all substores in name order.
type cacheMultiStore struct {
	parent sdk.MultiStore
	stores map[string]*cacheKVStore
	keys   map[string]sdk.StoreKey
}

func newCacheMultiStore(parent sdk.MultiStore) *cacheMultiStore {
	return &cacheMultiStore{
		parent: parent,
		stores: make(map[string]*cacheKVStore),
		keys:   make(map[string]sdk.StoreKey),
	}
}

func (cms *cacheMultiStore) GetKVStore(key sdk.StoreKey) sdk.KVStore {
	if st, ok := cms.stores[key.Name()]; ok {
		return st
	}
	st := NewCacheKVStore(cms.parent.GetKVStore(key))
	cms.stores[key.Name()] = st
	cms.keys[key.Name()] = key
	return st
}

func (cms *cacheMultiStore) CacheMultiStore() sdk.CacheMultiStore {
	return newCacheMultiStore(cms)
}

func (cms *cacheMultiStore) Write() {
	names := make([]string, 0, len(cms.stores))
	for name := range cms.stores {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		cms.stores[name].Write()
	}
}

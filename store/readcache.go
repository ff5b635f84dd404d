package store

import (
	lru "github.com/hashicorp/golang-lru"

	sdk "github.com/tessera-chain/tessera/types"
)

const defaultReadCacheSize = 4096

var _ sdk.KVStore = (*readCacheStore)(nil)

// readCacheStore keeps recently read values in an LRU cache in front of a
// committed store. Writes update the cache in place, so a reader behind the
// cache never observes a stale value. Iterators bypass the cache and read
// the parent directly.
type readCacheStore struct {
	parent *IavlStore
	cache  *lru.Cache
}

func newReadCacheStore(parent *IavlStore, size int) *readCacheStore {
	cache, err := lru.New(size)
	if err != nil {
		panic(err)
	}
	return &readCacheStore{parent: parent, cache: cache}
}

func (st *readCacheStore) Get(key []byte) []byte {
	if v, ok := st.cache.Get(string(key)); ok {
		if v == nil {
			return nil
		}
		return v.([]byte)
	}
	value := st.parent.Get(key)
	st.cache.Add(string(key), value)
	return value
}

func (st *readCacheStore) Set(key, value []byte) {
	st.parent.Set(key, value)
	st.cache.Add(string(key), value)
}

func (st *readCacheStore) Has(key []byte) bool {
	return st.Get(key) != nil
}

func (st *readCacheStore) Delete(key []byte) {
	st.parent.Delete(key)
	st.cache.Remove(string(key))
}

func (st *readCacheStore) Iterator(start, end []byte) sdk.Iterator {
	return st.parent.Iterator(start, end)
}

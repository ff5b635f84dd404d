package store

import (
	"sort"

	sdk "github.com/tessera-chain/tessera/types"
)

// cValue is a buffered write. deleted and dirty distinguish "written as
// deleted" from "read through and memoized".
type cValue struct {
	value   []byte
	deleted bool
	dirty   bool
}

var _ sdk.KVStore = (*cacheKVStore)(nil)

// cacheKVStore buffers writes on top of a parent store. Reads fall through
// to the parent for keys not yet touched. Write flushes the buffered
// mutations to the parent in ascending key order, so the flush itself is
// deterministic.
type cacheKVStore struct {
	cache  map[string]cValue
	parent sdk.KVStore
}

// NewCacheKVStore wraps parent in a write buffer.
func NewCacheKVStore(parent sdk.KVStore) *cacheKVStore {
	return &cacheKVStore{
		cache:  make(map[string]cValue),
		parent: parent,
	}
}

func (ci *cacheKVStore) Get(key []byte) []byte {
	if cv, ok := ci.cache[string(key)]; ok {
		if cv.deleted {
			return nil
		}
		return cv.value
	}
	value := ci.parent.Get(key)
	ci.cache[string(key)] = cValue{value: value}
	return value
}

func (ci *cacheKVStore) Set(key, value []byte) {
	ci.cache[string(key)] = cValue{value: value, dirty: true}
}

func (ci *cacheKVStore) Has(key []byte) bool {
	return ci.Get(key) != nil
}

func (ci *cacheKVStore) Delete(key []byte) {
	ci.cache[string(key)] = cValue{deleted: true, dirty: true}
}

// Write flushes the buffered writes to the parent store.
func (ci *cacheKVStore) Write() {
	keys := make([]string, 0, len(ci.cache))
	for key, cv := range ci.cache {
		if cv.dirty {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		cv := ci.cache[key]
		if cv.deleted {
			ci.parent.Delete([]byte(key))
		} else if cv.value != nil {
			ci.parent.Set([]byte(key), cv.value)
		}
	}
	ci.cache = make(map[string]cValue)
}

// Iterator merges the buffered writes with the parent's range. Both inputs
// are in ascending key order, so the merge is a plain two-way walk.
func (ci *cacheKVStore) Iterator(start, end []byte) sdk.Iterator {
	var dirty []kvPair
	for key, cv := range ci.cache {
		if !cv.dirty {
			continue
		}
		bz := []byte(key)
		if !inRange(bz, start, end) {
			continue
		}
		if cv.deleted {
			dirty = append(dirty, kvPair{key: bz, value: nil})
		} else {
			dirty = append(dirty, kvPair{key: bz, value: cv.value})
		}
	}
	sort.Slice(dirty, func(i, j int) bool {
		return string(dirty[i].key) < string(dirty[j].key)
	})

	var merged []kvPair
	parent := ci.parent.Iterator(start, end)
	defer parent.Close()

	di := 0
	for parent.Valid() || di < len(dirty) {
		switch {
		case di == len(dirty):
			merged = append(merged, kvPair{key: parent.Key(), value: parent.Value()})
			parent.Next()
		case !parent.Valid():
			if dirty[di].value != nil {
				merged = append(merged, dirty[di])
			}
			di++
		default:
			pk := string(parent.Key())
			dk := string(dirty[di].key)
			switch {
			case pk < dk:
				merged = append(merged, kvPair{key: parent.Key(), value: parent.Value()})
				parent.Next()
			case pk > dk:
				if dirty[di].value != nil {
					merged = append(merged, dirty[di])
				}
				di++
			default: // dirty entry shadows the parent's
				if dirty[di].value != nil {
					merged = append(merged, dirty[di])
				}
				parent.Next()
				di++
			}
		}
	}
	return &sliceIterator{items: merged}
}

func inRange(key, start, end []byte) bool {
	if start != nil && string(key) < string(start) {
		return false
	}
	if end != nil && string(key) >= string(end) {
		return false
	}
	return true
}

package store

import (
	"github.com/pkg/errors"
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"

	sdk "github.com/tessera-chain/tessera/types"
)

const defaultIAVLCacheSize = 10000

var _ sdk.KVStore = (*IavlStore)(nil)

// IavlStore exposes an iavl tree as a KVStore that can commit versions.
type IavlStore struct {
	tree *iavl.MutableTree
}

// LoadIavlStore loads the latest version of the tree stored in db.
func LoadIavlStore(db dbm.DB) (*IavlStore, error) {
	tree := iavl.NewMutableTree(db, defaultIAVLCacheSize)
	if _, err := tree.Load(); err != nil {
		return nil, errors.Wrap(err, "load iavl tree")
	}
	return &IavlStore{tree: tree}, nil
}

// Commit saves a new version of the tree.
func (st *IavlStore) Commit() sdk.CommitID {
	hash, version, err := st.tree.SaveVersion()
	if err != nil {
		panic(err)
	}
	return sdk.CommitID{Version: version, Hash: hash}
}

// LastCommitID returns the id of the latest saved version.
func (st *IavlStore) LastCommitID() sdk.CommitID {
	return sdk.CommitID{Version: st.tree.Version(), Hash: st.tree.Hash()}
}

func (st *IavlStore) Get(key []byte) []byte {
	_, value := st.tree.Get(key)
	return value
}

func (st *IavlStore) Set(key, value []byte) {
	st.tree.Set(key, value)
}

func (st *IavlStore) Has(key []byte) bool {
	return st.tree.Has(key)
}

func (st *IavlStore) Delete(key []byte) {
	st.tree.Remove(key)
}

// Iterator materializes the range [start, end) and iterates the snapshot.
// The engine's ranges are small (per-prefix scans of module state), so a
// snapshot iterator keeps the store interface free of goroutines.
func (st *IavlStore) Iterator(start, end []byte) sdk.Iterator {
	var items []kvPair
	st.tree.IterateRange(start, end, true, func(key, value []byte) bool {
		items = append(items, kvPair{key: key, value: value})
		return false
	})
	return &sliceIterator{items: items}
}

type kvPair struct {
	key   []byte
	value []byte
}

type sliceIterator struct {
	items []kvPair
	pos   int
}

func (it *sliceIterator) Valid() bool   { return it.pos < len(it.items) }
func (it *sliceIterator) Next()         { it.pos++ }
func (it *sliceIterator) Key() []byte   { return it.items[it.pos].key }
func (it *sliceIterator) Value() []byte { return it.items[it.pos].value }
func (it *sliceIterator) Close()        {}

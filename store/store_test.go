package store

import (
	"testing"

	"github.com/stretchr/testify/require"
	dbm "github.com/tendermint/tendermint/libs/db"

	sdk "github.com/tessera-chain/tessera/types"
)

func setupMultiStore(t *testing.T, keys ...sdk.StoreKey) *rootMultiStore {
	db := dbm.NewMemDB()
	ms := NewCommitMultiStore(db)
	for _, key := range keys {
		ms.MountStore(key)
	}
	require.NoError(t, ms.LoadLatestVersion())
	return ms
}

func TestMultiStoreGetSetCommit(t *testing.T) {
	key := sdk.NewKVStoreKey("main")
	ms := setupMultiStore(t, key)

	st := ms.GetKVStore(key)
	require.Nil(t, st.Get([]byte("k")))
	st.Set([]byte("k"), []byte("v"))
	require.Equal(t, []byte("v"), st.Get([]byte("k")))
	require.True(t, st.Has([]byte("k")))

	id := ms.Commit()
	require.EqualValues(t, 1, id.Version)
	require.NotEmpty(t, id.Hash)

	st.Delete([]byte("k"))
	require.False(t, st.Has([]byte("k")))
	id = ms.Commit()
	require.EqualValues(t, 2, id.Version)
}

func TestCacheMultiStoreIsolation(t *testing.T) {
	key := sdk.NewKVStoreKey("main")
	ms := setupMultiStore(t, key)
	ms.GetKVStore(key).Set([]byte("a"), []byte("1"))

	cms := ms.CacheMultiStore()
	cst := cms.GetKVStore(key)
	require.Equal(t, []byte("1"), cst.Get([]byte("a")))

	cst.Set([]byte("a"), []byte("2"))
	cst.Set([]byte("b"), []byte("3"))
	cst.Delete([]byte("a"))

	// parent unchanged until Write
	require.Equal(t, []byte("1"), ms.GetKVStore(key).Get([]byte("a")))
	require.Nil(t, ms.GetKVStore(key).Get([]byte("b")))

	cms.Write()
	require.Nil(t, ms.GetKVStore(key).Get([]byte("a")))
	require.Equal(t, []byte("3"), ms.GetKVStore(key).Get([]byte("b")))
}

func TestCacheKVStoreIterator(t *testing.T) {
	key := sdk.NewKVStoreKey("main")
	ms := setupMultiStore(t, key)
	parent := ms.GetKVStore(key)
	parent.Set([]byte{0x01, 0x01}, []byte("a"))
	parent.Set([]byte{0x01, 0x02}, []byte("b"))
	parent.Set([]byte{0x02, 0x01}, []byte("z"))

	cst := NewCacheKVStore(parent)
	cst.Set([]byte{0x01, 0x03}, []byte("c"))
	cst.Delete([]byte{0x01, 0x01})
	cst.Set([]byte{0x01, 0x02}, []byte("bb"))

	it := sdk.KVStorePrefixIterator(cst, []byte{0x01})
	defer it.Close()

	var keys [][]byte
	var values [][]byte
	for ; it.Valid(); it.Next() {
		keys = append(keys, it.Key())
		values = append(values, it.Value())
	}
	require.Equal(t, [][]byte{{0x01, 0x02}, {0x01, 0x03}}, keys)
	require.Equal(t, [][]byte{[]byte("bb"), []byte("c")}, values)
}

func TestReadCacheCoherence(t *testing.T) {
	key := sdk.NewKVStoreKey("main")
	ms := setupMultiStore(t, key)
	st := ms.GetKVStore(key)

	st.Set([]byte("k"), []byte("v1"))
	require.Equal(t, []byte("v1"), st.Get([]byte("k")))

	// the cached read must not survive an overwrite or delete
	st.Set([]byte("k"), []byte("v2"))
	require.Equal(t, []byte("v2"), st.Get([]byte("k")))
	st.Delete([]byte("k"))
	require.Nil(t, st.Get([]byte("k")))
}

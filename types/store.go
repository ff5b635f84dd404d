package types

// StoreKey names a substore of the MultiStore. Keys are compared by name, so
// two keys constructed with the same name address the same substore.
type StoreKey interface {
	Name() string
	String() string
}

// KVStore is an ordered key-value store. Iteration order over a range is the
// ascending byte order of keys, which every node observes identically.
type KVStore interface {
	Get(key []byte) []byte
	Set(key, value []byte)
	Has(key []byte) bool
	Delete(key []byte)

	// Iterator returns an iterator over the half-open range [start, end).
	// A nil end iterates to the last key of the store.
	Iterator(start, end []byte) Iterator
}

// Iterator walks a key range in ascending order.
type Iterator interface {
	Valid() bool
	Next()
	Key() []byte
	Value() []byte
	Close()
}

// MultiStore holds one KVStore per registered StoreKey.
type MultiStore interface {
	GetKVStore(key StoreKey) KVStore

	// CacheMultiStore wraps every substore in a write buffer. Nothing reaches
	// the underlying stores until Write is called on the returned store.
	CacheMultiStore() CacheMultiStore
}

// CacheMultiStore is a buffered MultiStore; Write flushes the buffered
// mutations of all substores to the parent atomically.
type CacheMultiStore interface {
	MultiStore
	Write()
}

// CommitID identifies a committed version of the store.
type CommitID struct {
	Version int64
	Hash    []byte
}

// CommitMultiStore is a MultiStore that can persist a version.
type CommitMultiStore interface {
	MultiStore
	Commit() CommitID
	LastCommitID() CommitID
}

type kvStoreKey struct {
	name string
}

// NewKVStoreKey returns a new StoreKey with the given name.
func NewKVStoreKey(name string) StoreKey {
	return &kvStoreKey{name: name}
}

func (k *kvStoreKey) Name() string   { return k.name }
func (k *kvStoreKey) String() string { return "KVStoreKey(" + k.name + ")" }

// KVStorePrefixIterator iterates over all keys with the given prefix.
func KVStorePrefixIterator(store KVStore, prefix []byte) Iterator {
	return store.Iterator(prefix, PrefixEndBytes(prefix))
}

// PrefixEndBytes returns the smallest byte slice greater than every key that
// has the given prefix, or nil if no such bound exists.
func PrefixEndBytes(prefix []byte) []byte {
	if len(prefix) == 0 {
		return nil
	}
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] != 0xFF {
			end[i]++
			return end[:i+1]
		}
	}
	// prefix is all 0xFF, iterate to the end of the store
	return nil
}

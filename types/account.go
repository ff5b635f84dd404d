package types

import (
	"encoding/binary"
	"fmt"
)

// AccountID is the dense ledger-assigned id of an account. The engine never
// deals in addresses or keys; accounts are referenced by id throughout,
// matching the id-addressed object model of the surrounding ledger.
type AccountID uint64

// Bytes returns the big-endian encoding of the id. Big-endian keeps store
// iteration in ascending id order.
func (id AccountID) Bytes() []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, uint64(id))
	return bz
}

func (id AccountID) String() string {
	return fmt.Sprintf("account-%d", uint64(id))
}

// AccountIDFromBytes decodes a big-endian account id.
func AccountIDFromBytes(bz []byte) AccountID {
	if len(bz) != 8 {
		panic(fmt.Sprintf("invalid account id encoding: %d bytes", len(bz)))
	}
	return AccountID(binary.BigEndian.Uint64(bz))
}

package keeper

import (
	"encoding/binary"

	sdk "github.com/tessera-chain/tessera/types"
)

// nolint
var (
	ParamsKey          = []byte{0x00}
	NextRecordIDKey    = []byte{0x01}
	StakeRecordKey     = []byte{0x02} // prefix + owner id + record id
	StakePoolAccountID = sdk.AccountID(2)
)

// GetStakeRecordKey returns the store key of one record. Owner-major ordering
// keeps all records of an account adjacent and iteration ascending by id.
func GetStakeRecordKey(owner sdk.AccountID, recordID uint64) []byte {
	bz := make([]byte, 0, len(StakeRecordKey)+16)
	bz = append(bz, StakeRecordKey...)
	bz = append(bz, owner.Bytes()...)
	idBz := make([]byte, 8)
	binary.BigEndian.PutUint64(idBz, recordID)
	return append(bz, idBz...)
}

// GetStakeRecordsKey returns the prefix of all records owned by the account.
func GetStakeRecordsKey(owner sdk.AccountID) []byte {
	return append(append([]byte{}, StakeRecordKey...), owner.Bytes()...)
}

// Package codec wraps go-amino. Every value persisted by a keeper goes
// through an amino length-prefixed encoding registered on a shared codec, so
// the byte layout of the state is stable across nodes and releases.
package codec

import (
	amino "github.com/tendermint/go-amino"
)

// Codec is the amino codec used for all store values.
type Codec = amino.Codec

// New returns a fresh amino codec.
func New() *Codec {
	return amino.NewCodec()
}

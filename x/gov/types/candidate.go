package types

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sort"
)

// CandidateKind distinguishes the three kinds of governance candidates a
// stakeholder can back.
type CandidateKind byte

const (
	KindWitness         CandidateKind = 0x01
	KindCommitteeMember CandidateKind = 0x02
	KindWorker          CandidateKind = 0x03
)

func (k CandidateKind) String() string {
	switch k {
	case KindWitness:
		return "witness"
	case KindCommitteeMember:
		return "committee-member"
	case KindWorker:
		return "worker"
	default:
		return fmt.Sprintf("kind-%d", byte(k))
	}
}

// CandidateID identifies one governance candidate by kind and dense index,
// matching the ledger's id-addressed object model. The byte encoding orders
// candidates by kind, then index, which fixes the tally iteration order.
type CandidateID struct {
	Kind  CandidateKind `json:"kind"`
	Index uint64        `json:"index"`
}

func (id CandidateID) Bytes() []byte {
	bz := make([]byte, 9)
	bz[0] = byte(id.Kind)
	binary.BigEndian.PutUint64(bz[1:], id.Index)
	return bz
}

func (id CandidateID) String() string {
	return fmt.Sprintf("%s-%d", id.Kind, id.Index)
}

// CandidateIDFromBytes decodes a candidate id from its store encoding.
func CandidateIDFromBytes(bz []byte) CandidateID {
	if len(bz) != 9 {
		panic(fmt.Sprintf("invalid candidate id encoding: %d bytes", len(bz)))
	}
	return CandidateID{
		Kind:  CandidateKind(bz[0]),
		Index: binary.BigEndian.Uint64(bz[1:]),
	}
}

// Less orders candidate ids by their byte encoding.
func (id CandidateID) Less(other CandidateID) bool {
	return bytes.Compare(id.Bytes(), other.Bytes()) < 0
}

// SortCandidateIDs sorts ids in place and drops duplicates.
func SortCandidateIDs(ids []CandidateID) []CandidateID {
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })
	out := ids[:0]
	var prev CandidateID
	for i, id := range ids {
		if i > 0 && id == prev {
			continue
		}
		prev = id
		out = append(out, id)
	}
	return out
}

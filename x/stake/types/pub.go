package types

import (
	"github.com/tessera-chain/tessera/pubsub"
)

const Topic = pubsub.Topic("stake")

type StakeEvent struct{}

func (event StakeEvent) GetTopic() pubsub.Topic {
	return Topic
}

// stake locked for governance participation
type StakeLockedEvent struct {
	StakeEvent
	Record StakeRecord
}

// stake released back to the owner's liquid balance
type StakeUnlockedEvent struct {
	StakeEvent
	Record StakeRecord
}

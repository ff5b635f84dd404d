package types

import (
	"time"

	"github.com/tessera-chain/tessera/pubsub"
)

const Topic = pubsub.Topic("gov")

type GovEvent struct{}

func (event GovEvent) GetTopic() pubsub.Topic {
	return Topic
}

// tally set overwritten at a maintenance tick
type TallyUpdatedEvent struct {
	GovEvent
	BlockHeight int64
	Coefficient Coefficient
	Tallies     []CandidateTally
}

// governance period window realigned
type PeriodRolledOverEvent struct {
	GovEvent
	NewPeriodStart time.Time
}

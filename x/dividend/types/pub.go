package types

import (
	"time"

	"github.com/tessera-chain/tessera/pubsub"
)

const Topic = pubsub.Topic("dividend")

type DividendEvent struct{}

func (event DividendEvent) GetTopic() pubsub.Topic {
	return Topic
}

// DividendPaidEvent fires after one asset's distribution commits.
type DividendPaidEvent struct {
	DividendEvent
	Denom          string
	Distributed    int64
	Remainder      int64
	Payouts        []Payout
	NextPayoutTime time.Time
}

// AssetSkippedEvent fires when a misconfigured asset is passed over for one
// tick.
type AssetSkippedEvent struct {
	DividendEvent
	Denom  string
	Reason string
}

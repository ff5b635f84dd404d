package app

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tessera-chain/tessera/pubsub"
	dividendtypes "github.com/tessera-chain/tessera/x/dividend/types"
	govtypes "github.com/tessera-chain/tessera/x/gov/types"
)

// Metrics are the application-level maintenance counters. They observe, never
// steer: the state transition does not read them.
type Metrics struct {
	Ticks        prometheus.Counter
	TickFailures prometheus.Counter
	TickDuration prometheus.Histogram

	DistributedTotal *prometheus.CounterVec
	TallyCandidates  prometheus.Gauge
}

func DefaultMetrics() *Metrics {
	return &Metrics{
		Ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tessera",
			Subsystem: "maintenance",
			Name:      "ticks_total",
			Help:      "Number of applied maintenance ticks.",
		}),
		TickFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tessera",
			Subsystem: "maintenance",
			Name:      "tick_failures_total",
			Help:      "Number of maintenance ticks aborted and discarded.",
		}),
		TickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "tessera",
			Subsystem: "maintenance",
			Name:      "tick_duration_seconds",
			Help:      "Wall time of one applied maintenance tick.",
		}),
		DistributedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tessera",
			Subsystem: "dividend",
			Name:      "distributed_total",
			Help:      "Total amount distributed, by denom.",
		}, []string{"denom"}),
		TallyCandidates: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tessera",
			Subsystem: "gov",
			Name:      "tally_candidates",
			Help:      "Number of candidates in the last tally.",
		}),
	}
}

// Register adds the metrics to a prometheus registry.
func (m *Metrics) Register(r prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		m.Ticks, m.TickFailures, m.TickDuration, m.DistributedTotal, m.TallyCandidates,
	} {
		if err := r.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// observePayouts wires the metrics to the event stream.
func (m *Metrics) observePayouts(server *pubsub.Publisher) error {
	sub, err := server.NewSubscriber("metrics")
	if err != nil {
		return err
	}
	if err := sub.Subscribe(dividendtypes.Topic, func(e pubsub.Event) {
		if paid, ok := e.(dividendtypes.DividendPaidEvent); ok {
			m.DistributedTotal.WithLabelValues(paid.Denom).Add(float64(paid.Distributed))
		}
	}); err != nil {
		return err
	}
	return sub.Subscribe(govtypes.Topic, func(e pubsub.Event) {
		if tally, ok := e.(govtypes.TallyUpdatedEvent); ok {
			m.TallyCandidates.Set(float64(len(tally.Tallies)))
		}
	})
}

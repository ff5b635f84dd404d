// Package pubsub delivers ledger events to read-only observers. Delivery is
// asynchronous and off the consensus path: a slow or failing subscriber can
// never affect the state transition.
package pubsub

import (
	"errors"
	"sync"

	"github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"
)

var (
	// ErrDuplicateClientID is returned when a client subscribes with an
	// existing client id.
	ErrDuplicateClientID = errors.New("client id already registered")

	// ErrAlreadySubscribed is returned when a client subscribes twice to the
	// same topic.
	ErrAlreadySubscribed = errors.New("already subscribed")

	// ErrSubscriptionNotFound is returned when a client unsubscribes from a
	// topic it never subscribed to.
	ErrSubscriptionNotFound = errors.New("subscription not found")

	ErrNilHandler = errors.New("handler is nil")
)

type Topic string

type ClientID string

// Event is anything routable by topic.
type Event interface {
	GetTopic() Topic
}

type Handler func(Event)

// Publisher fans events out to subscribers by topic.
type Publisher struct {
	common.BaseService

	mtx     sync.RWMutex
	clients map[ClientID]*Subscriber
	subs    map[Topic]map[ClientID]*Subscriber
}

func NewPublisher(name string, logger log.Logger) *Publisher {
	p := &Publisher{
		clients: make(map[ClientID]*Subscriber),
		subs:    make(map[Topic]map[ClientID]*Subscriber),
	}
	p.BaseService = *common.NewBaseService(logger, name, p)
	return p
}

func (p *Publisher) OnStart() error { return nil }
func (p *Publisher) OnStop()        {}

// Publish hands the event to every subscriber of its topic. Handlers run on
// their own goroutines; use Subscriber.Wait to join them in tests.
func (p *Publisher) Publish(e Event) {
	if !p.IsRunning() {
		return
	}
	p.mtx.RLock()
	defer p.mtx.RUnlock()
	for _, s := range p.subs[e.GetTopic()] {
		s := s
		s.wg.Add(1)
		handler := s.handlers[e.GetTopic()]
		go func() {
			defer s.wg.Done()
			handler(e)
		}()
	}
}

// HasSubscribed reports whether the client is subscribed to the topic.
func (p *Publisher) HasSubscribed(clientID ClientID, topic Topic) bool {
	p.mtx.RLock()
	defer p.mtx.RUnlock()
	_, ok := p.subs[topic][clientID]
	return ok
}

// Subscriber receives events for the topics it subscribes to.
type Subscriber struct {
	clientID ClientID
	pub      *Publisher
	handlers map[Topic]Handler
	wg       sync.WaitGroup
}

// NewSubscriber registers a new client on the publisher.
func (p *Publisher) NewSubscriber(clientID ClientID) (*Subscriber, error) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	if _, ok := p.clients[clientID]; ok {
		return nil, ErrDuplicateClientID
	}
	s := &Subscriber{
		clientID: clientID,
		pub:      p,
		handlers: make(map[Topic]Handler),
	}
	p.clients[clientID] = s
	return s, nil
}

// Subscribe registers a handler for the topic.
func (s *Subscriber) Subscribe(topic Topic, handler Handler) error {
	if handler == nil {
		return ErrNilHandler
	}
	s.pub.mtx.Lock()
	defer s.pub.mtx.Unlock()
	if _, ok := s.pub.subs[topic][s.clientID]; ok {
		return ErrAlreadySubscribed
	}
	s.handlers[topic] = handler
	if s.pub.subs[topic] == nil {
		s.pub.subs[topic] = make(map[ClientID]*Subscriber)
	}
	s.pub.subs[topic][s.clientID] = s
	return nil
}

// Unsubscribe removes the handler for the topic.
func (s *Subscriber) Unsubscribe(topic Topic) error {
	s.pub.mtx.Lock()
	defer s.pub.mtx.Unlock()
	if _, ok := s.pub.subs[topic][s.clientID]; !ok {
		return ErrSubscriptionNotFound
	}
	delete(s.pub.subs[topic], s.clientID)
	if len(s.pub.subs[topic]) == 0 {
		delete(s.pub.subs, topic)
	}
	delete(s.handlers, topic)
	return nil
}

// Wait blocks until all in-flight handlers of this subscriber return.
func (s *Subscriber) Wait() {
	s.wg.Wait()
}

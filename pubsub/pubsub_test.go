package pubsub

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const tickTopic = Topic("maintenance")

type tickAppliedEvent struct {
	height int64
}

func (e tickAppliedEvent) GetTopic() Topic {
	return tickTopic
}

func startPublisher(t *testing.T) *Publisher {
	pub := NewPublisher("test_pubsub", nil)
	require.NoError(t, pub.Start())
	return pub
}

func TestSubscribe(t *testing.T) {
	pub := startPublisher(t)
	defer pub.Stop()

	sub, err := pub.NewSubscriber("test_client")
	require.NoError(t, err)

	_, err = pub.NewSubscriber("test_client")
	require.Equal(t, ErrDuplicateClientID, err)

	var gotHeight int64
	err = sub.Subscribe(tickTopic, func(event Event) {
		if e, ok := event.(tickAppliedEvent); ok {
			gotHeight = e.height
		}
	})
	require.NoError(t, err)

	err = sub.Subscribe(tickTopic, func(event Event) {})
	require.Equal(t, ErrAlreadySubscribed, err)

	pub.Publish(tickAppliedEvent{height: 42})
	sub.Wait()
	require.EqualValues(t, 42, gotHeight)
}

func TestUnsubscribe(t *testing.T) {
	pub := startPublisher(t)
	defer pub.Stop()

	sub, err := pub.NewSubscriber("test_client")
	require.NoError(t, err)

	require.NoError(t, sub.Subscribe(tickTopic, func(event Event) {}))
	require.True(t, pub.HasSubscribed("test_client", tickTopic))

	require.NoError(t, sub.Unsubscribe(tickTopic))
	require.False(t, pub.HasSubscribed("test_client", tickTopic))

	require.Equal(t, ErrSubscriptionNotFound, sub.Unsubscribe(tickTopic))
}

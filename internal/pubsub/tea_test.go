package pubsub

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListenCmd_ReturnsEventAsMsg(t *testing.T) {
	broker := NewBroker[string]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := broker.Subscribe(ctx)
	broker.Publish(LoggedEvent, "hello")

	msg := ListenCmd(ctx, ch)()

	event, ok := msg.(Event[string])
	require.True(t, ok, "msg should be Event[string]")
	require.Equal(t, "hello", event.Payload)
}

func TestListenCmd_NilAfterCancel(t *testing.T) {
	broker := NewBroker[string]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch := broker.Subscribe(ctx)
	cancel()

	require.Nil(t, ListenCmd(ctx, ch)())
}

func TestContinuousListener_KeepsReceiving(t *testing.T) {
	broker := NewBroker[int]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listener := NewContinuousListener[int](ctx, broker)

	broker.Publish(ShownEvent, 1)
	first := listener.Listen()().(Event[int])
	require.Equal(t, 1, first.Payload)

	broker.Publish(ClosedEvent, 2)
	second := listener.Listen()().(Event[int])
	require.Equal(t, 2, second.Payload)
	require.Equal(t, ClosedEvent, second.Type)
}

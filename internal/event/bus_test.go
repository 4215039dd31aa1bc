package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBusDeliversToSubscribers(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	ch, unsubscribe := bus.Subscribe()
	defer unsubscribe()

	bus.Publish(Event{Type: TypeAnnouncementCreated, Payload: "hello"})

	select {
	case e := <-ch:
		require.Equal(t, TypeAnnouncementCreated, e.Type)
		require.Equal(t, "hello", e.Payload)
		require.NotEmpty(t, e.ID)
		require.NotEmpty(t, e.Timestamp)
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestBusDropsWhenSubscriberIsFull(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	_, unsubscribe := bus.Subscribe()
	defer unsubscribe()

	// The subscriber buffer holds 100 events; publishing past that must not
	// block the publisher.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 250; i++ {
			bus.Publish(Event{Type: TypeScoreRecorded})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	ch, unsubscribe := bus.Subscribe()
	unsubscribe()

	// The channel is closed on unsubscribe.
	_, open := <-ch
	require.False(t, open)
}

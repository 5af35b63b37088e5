package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var received []Event
	dispatcher.Subscribe(EventTicketCreated, func(ctx context.Context, event Event) error {
		received = append(received, event)
		return nil
	})

	dispatcher.Publish(context.Background(), Event{Type: EventTicketCreated})
	dispatcher.Publish(context.Background(), Event{Type: EventPresetDeleted})

	require.Len(t, received, 1)
	assert.NotEmpty(t, received[0].ID)
	assert.False(t, received[0].Timestamp.IsZero())
}

func TestDispatcherContinuesPastFailingHandler(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var calls int
	dispatcher.Subscribe(EventTicketStatusChanged, func(ctx context.Context, event Event) error {
		calls++
		return errors.New("handler failed")
	})
	dispatcher.Subscribe(EventTicketStatusChanged, func(ctx context.Context, event Event) error {
		calls++
		return nil
	})

	dispatcher.Publish(context.Background(), Event{Type: EventTicketStatusChanged})
	assert.Equal(t, 2, calls)
}

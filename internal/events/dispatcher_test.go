package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishInvokesSubscribersInOrder(t *testing.T) {
	d := NewInMemoryDispatcher()

	var order []string
	d.Subscribe(EventChatAnswered, func(_ context.Context, e Event) error {
		order = append(order, "first")
		return nil
	})
	d.Subscribe(EventChatAnswered, func(_ context.Context, e Event) error {
		order = append(order, "second")
		return nil
	})
	d.Subscribe(EventLoginFailed, func(_ context.Context, e Event) error {
		order = append(order, "unrelated")
		return nil
	})

	err := d.Publish(context.Background(), Event{ID: "e1", Type: EventChatAnswered, Timestamp: time.Now()})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestPublishContinuesPastFailingHandler(t *testing.T) {
	d := NewInMemoryDispatcher()

	called := false
	d.Subscribe(EventDelegateFailed, func(_ context.Context, e Event) error {
		return errors.New("handler boom")
	})
	d.Subscribe(EventDelegateFailed, func(_ context.Context, e Event) error {
		called = true
		return nil
	})

	err := d.Publish(context.Background(), Event{ID: "e2", Type: EventDelegateFailed})
	assert.Error(t, err)
	assert.True(t, called, "later handlers still run after a failure")
}

func TestPublishWithoutSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	assert.NoError(t, d.Publish(context.Background(), Event{ID: "e3", Type: EventLoginSucceeded}))
}

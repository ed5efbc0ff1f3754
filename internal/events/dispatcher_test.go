package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	t.Parallel()
	d := NewInMemoryDispatcher()

	var got []Event
	d.Subscribe(EventEmployeeRegistered, func(_ context.Context, e Event) error {
		got = append(got, e)
		return nil
	})

	event := Event{ID: "evt-1", Type: EventEmployeeRegistered, EmployeeID: 7, Email: "a@x.com"}
	require.NoError(t, d.Publish(context.Background(), event))

	require.Len(t, got, 1)
	assert.Equal(t, event.ID, got[0].ID)
	assert.Equal(t, int64(7), got[0].EmployeeID)
}

func TestDispatcherIgnoresUnsubscribedTypes(t *testing.T) {
	t.Parallel()
	d := NewInMemoryDispatcher()

	called := false
	d.Subscribe(EventEmployeeDeleted, func(context.Context, Event) error {
		called = true
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventEmployeeUpdated}))
	assert.False(t, called)
}

func TestDispatcherFailingHandlerDoesNotBlockOthers(t *testing.T) {
	t.Parallel()
	d := NewInMemoryDispatcher()

	var order []string
	d.Subscribe(EventEmployeeUpdated, func(context.Context, Event) error {
		order = append(order, "first")
		return errors.New("handler failed")
	})
	d.Subscribe(EventEmployeeUpdated, func(context.Context, Event) error {
		order = append(order, "second")
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventEmployeeUpdated}))
	assert.Equal(t, []string{"first", "second"}, order)
}

package events

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	BaseEvent
	seq int
}

func newTestEvent(eventType string, seq int) testEvent {
	return testEvent{
		BaseEvent: BaseEvent{
			AggregateID: fmt.Sprintf("%d", seq),
			EventType:   eventType,
			OccurredAt:  time.Now(),
		},
		seq: seq,
	}
}

func TestChannelDispatcher_DeliversInPublishOrder(t *testing.T) {
	d := NewChannelDispatcher(16, nil)

	var mu sync.Mutex
	var got []int
	err := d.Subscribe("test.event", NewHandlerFunc("test.event", func(e DomainEvent) error {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, e.(testEvent).seq)
		return nil
	}))
	require.NoError(t, err)

	require.NoError(t, d.Start())
	for i := 0; i < 5; i++ {
		require.NoError(t, d.Publish(newTestEvent("test.event", i)))
	}
	require.NoError(t, d.Stop())

	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

func TestChannelDispatcher_StopDrainsBufferedEvents(t *testing.T) {
	d := NewChannelDispatcher(16, nil)

	var mu sync.Mutex
	delivered := 0
	err := d.Subscribe("test.event", NewHandlerFunc("test.event", func(e DomainEvent) error {
		mu.Lock()
		defer mu.Unlock()
		delivered++
		return nil
	}))
	require.NoError(t, err)

	require.NoError(t, d.Start())
	for i := 0; i < 10; i++ {
		require.NoError(t, d.Publish(newTestEvent("test.event", i)))
	}
	require.NoError(t, d.Stop())

	assert.Equal(t, 10, delivered)
}

func TestChannelDispatcher_PublishWhenNotRunning(t *testing.T) {
	d := NewChannelDispatcher(1, nil)

	err := d.Publish(newTestEvent("test.event", 1))
	assert.Error(t, err)
}

func TestChannelDispatcher_HandlerErrorReachesCallback(t *testing.T) {
	var mu sync.Mutex
	var reported []error
	d := NewChannelDispatcher(4, func(event DomainEvent, err error) {
		mu.Lock()
		defer mu.Unlock()
		reported = append(reported, err)
	})

	err := d.Subscribe("test.event", NewHandlerFunc("test.event", func(e DomainEvent) error {
		return fmt.Errorf("handler failed")
	}))
	require.NoError(t, err)

	require.NoError(t, d.Start())
	require.NoError(t, d.Publish(newTestEvent("test.event", 1)))
	require.NoError(t, d.Stop())

	require.Len(t, reported, 1)
	assert.EqualError(t, reported[0], "handler failed")
}

func TestChannelDispatcher_OnlyMatchingHandlersRun(t *testing.T) {
	d := NewChannelDispatcher(4, nil)

	var mu sync.Mutex
	var seen []string
	record := func(name string) func(DomainEvent) error {
		return func(e DomainEvent) error {
			mu.Lock()
			defer mu.Unlock()
			seen = append(seen, name)
			return nil
		}
	}
	require.NoError(t, d.Subscribe("a", NewHandlerFunc("a", record("a"))))
	require.NoError(t, d.Subscribe("b", NewHandlerFunc("b", record("b"))))

	require.NoError(t, d.Start())
	require.NoError(t, d.Publish(newTestEvent("a", 1)))
	require.NoError(t, d.Stop())

	assert.Equal(t, []string{"a"}, seen)
}

package events

import (
	"fmt"
	"sync"
)

// ChannelDispatcher buffers published events on an outbound channel
// and delivers them to subscribed handlers from a single consumer
// goroutine. Delivery order matches publish order per channel.
type ChannelDispatcher struct {
	handlers map[string][]EventHandler
	mu       sync.RWMutex
	running  bool
	stopCh   chan struct{}
	eventCh  chan DomainEvent
	wg       sync.WaitGroup

	onError func(event DomainEvent, err error)
}

// NewChannelDispatcher creates a dispatcher with the given buffer
// size. onError may be nil; handler failures are then dropped.
func NewChannelDispatcher(bufferSize int, onError func(event DomainEvent, err error)) *ChannelDispatcher {
	if bufferSize <= 0 {
		bufferSize = 100
	}

	return &ChannelDispatcher{
		handlers: make(map[string][]EventHandler),
		stopCh:   make(chan struct{}),
		eventCh:  make(chan DomainEvent, bufferSize),
		onError:  onError,
	}
}

// Publish publishes a single event
func (d *ChannelDispatcher) Publish(event DomainEvent) error {
	d.mu.RLock()
	running := d.running
	d.mu.RUnlock()
	if !running {
		return fmt.Errorf("event dispatcher is not running")
	}

	select {
	case d.eventCh <- event:
		return nil
	default:
		return fmt.Errorf("event channel is full")
	}
}

// PublishAll publishes multiple events
func (d *ChannelDispatcher) PublishAll(events []DomainEvent) error {
	for _, event := range events {
		if err := d.Publish(event); err != nil {
			return fmt.Errorf("failed to publish event %s: %w", event.GetEventType(), err)
		}
	}
	return nil
}

// Subscribe registers a handler for a specific event type
func (d *ChannelDispatcher) Subscribe(eventType string, handler EventHandler) error {
	if eventType == "" {
		return fmt.Errorf("event type cannot be empty")
	}
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventType] = append(d.handlers[eventType], handler)
	return nil
}

// Start starts the consumer goroutine
func (d *ChannelDispatcher) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running {
		return fmt.Errorf("event dispatcher is already running")
	}

	d.running = true
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.consume()
	}()
	return nil
}

// Stop drains buffered events and stops the consumer
func (d *ChannelDispatcher) Stop() error {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return fmt.Errorf("event dispatcher is not running")
	}
	d.running = false
	d.mu.Unlock()

	close(d.stopCh)
	d.wg.Wait()
	return nil
}

func (d *ChannelDispatcher) consume() {
	for {
		select {
		case <-d.stopCh:
			for {
				select {
				case event := <-d.eventCh:
					d.deliver(event)
				default:
					return
				}
			}
		case event := <-d.eventCh:
			d.deliver(event)
		}
	}
}

func (d *ChannelDispatcher) deliver(event DomainEvent) {
	d.mu.RLock()
	handlers := append([]EventHandler(nil), d.handlers[event.GetEventType()]...)
	d.mu.RUnlock()

	for _, handler := range handlers {
		if !handler.CanHandle(event.GetEventType()) {
			continue
		}
		if err := handler.Handle(event); err != nil && d.onError != nil {
			d.onError(event, err)
		}
	}
}

// HandlerFunc adapts a function to the EventHandler interface for a
// single event type.
type HandlerFunc struct {
	eventType string
	fn        func(DomainEvent) error
}

func NewHandlerFunc(eventType string, fn func(DomainEvent) error) *HandlerFunc {
	return &HandlerFunc{eventType: eventType, fn: fn}
}

func (h *HandlerFunc) Handle(event DomainEvent) error {
	if h.fn != nil {
		return h.fn(event)
	}
	return nil
}

func (h *HandlerFunc) CanHandle(eventType string) bool {
	return h.eventType == eventType
}

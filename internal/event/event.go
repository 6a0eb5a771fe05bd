package event

import (
	"context"
	"fmt"
	"sync"
)

// Type represents the type of an event
type Type string

// AllTypes subscribes a handler to every event type
const AllTypes Type = "*"

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// SessionID returns the session the event belongs to, if tagged
func (e Event) SessionID() string {
	id, _ := e.GetMetadataValue(MetadataKeySessionID).(string)
	return id
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// FailureHook is told about every handler that returned an error or panicked
type FailureHook func(ctx context.Context, event Event, err error)

type subscription struct {
	eventType Type
	handler   Handler
}

// MemoryBus is an in-memory implementation of the Event Bus.
// Handlers run synchronously in subscription order; a failing or panicking
// handler never stops delivery to the ones after it.
type MemoryBus struct {
	subs      []subscription
	onFailure FailureHook
	mu        sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{}
}

// OnFailure installs a hook called for each failed delivery
func (b *MemoryBus) OnFailure(hook FailureHook) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onFailure = hook
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	subs := make([]subscription, len(b.subs))
	copy(subs, b.subs)
	hook := b.onFailure
	b.mu.RUnlock()

	var errs []error
	for _, s := range subs {
		if s.eventType != AllTypes && s.eventType != event.Type {
			continue
		}
		if err := deliver(ctx, s.handler, event); err != nil {
			errs = append(errs, err)
			if hook != nil {
				hook(ctx, event, err)
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type, or to every type with AllTypes
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subs = append(b.subs, subscription{eventType: eventType, handler: handler})
}

func deliver(ctx context.Context, h Handler, event Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf(ErrMsgHandlerPanicFormat, r)
		}
	}()
	return h(ctx, event)
}

package task

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event types published by Bus.
const (
	EventCreated = "task.created"
	EventToggled = "task.toggled"
	EventDeleted = "task.deleted"
)

// Event reports a successful mutation of the collection.
type Event struct {
	ID        string    `json:"id"` // UUID v7 (time-ordered)
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Task      Task      `json:"task"`
}

// Bus wraps a Store with in-process fan-out notification.
// Every successful Create, Toggle or Delete is sent to all subscribers.
type Bus struct {
	Store
	mu   sync.RWMutex
	subs map[chan *Event]struct{}
}

// NewBus creates a Bus wrapping the given store.
func NewBus(store Store) *Bus {
	return &Bus{
		Store: store,
		subs:  make(map[chan *Event]struct{}),
	}
}

func (b *Bus) Create(ctx context.Context, text *string) (*Task, error) {
	t, err := b.Store.Create(ctx, text)
	if err != nil {
		return nil, err
	}
	b.publish(EventCreated, t)
	return t, nil
}

func (b *Bus) Toggle(ctx context.Context, id int) (*Task, error) {
	t, err := b.Store.Toggle(ctx, id)
	if err != nil {
		return nil, err
	}
	b.publish(EventToggled, t)
	return t, nil
}

func (b *Bus) Delete(ctx context.Context, id int) (*Task, error) {
	t, err := b.Store.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	b.publish(EventDeleted, t)
	return t, nil
}

func (b *Bus) publish(eventType string, t *Task) {
	e := &Event{
		ID:        uuid.Must(uuid.NewV7()).String(),
		Type:      eventType,
		Timestamp: time.Now(),
		Task:      *t,
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.subs {
		select {
		case ch <- e:
		default:
			// subscriber is behind; drop rather than block the mutation
		}
	}
}

// Subscribe returns a buffered channel that receives all new events.
func (b *Bus) Subscribe() chan *Event {
	ch := make(chan *Event, 64)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (b *Bus) Unsubscribe(ch chan *Event) {
	b.mu.Lock()
	delete(b.subs, ch)
	b.mu.Unlock()
	close(ch)
}

package ecs

// EventType identifies different types of events
type EventType string

// Event interface that all events must implement
type Event interface {
	Type() EventType
}

// EventHandler is a function that processes events
type EventHandler func(Event)

// Subscription identifies a registered handler so it can be removed again
type Subscription uint64

type subscriber struct {
	id      Subscription
	handler EventHandler
}

// EventManager manages event subscriptions and dispatches
type EventManager struct {
	subscribers map[EventType][]subscriber
	nextID      Subscription
}

// NewEventManager creates a new event manager
func NewEventManager() *EventManager {
	return &EventManager{
		subscribers: make(map[EventType][]subscriber),
	}
}

// Subscribe registers a handler for a specific event type
func (em *EventManager) Subscribe(eventType EventType, handler EventHandler) Subscription {
	em.nextID++
	em.subscribers[eventType] = append(em.subscribers[eventType], subscriber{id: em.nextID, handler: handler})
	return em.nextID
}

// Unsubscribe removes a handler for a specific event type
func (em *EventManager) Unsubscribe(eventType EventType, id Subscription) {
	handlers, exists := em.subscribers[eventType]
	if !exists {
		return
	}

	remaining := make([]subscriber, 0, len(handlers))
	for _, s := range handlers {
		if s.id != id {
			remaining = append(remaining, s)
		}
	}

	if len(remaining) == 0 {
		delete(em.subscribers, eventType)
	} else {
		em.subscribers[eventType] = remaining
	}
}

// Emit dispatches an event to all subscribed handlers in subscription order
func (em *EventManager) Emit(event Event) {
	for _, s := range em.subscribers[event.Type()] {
		s.handler(event)
	}
}

// HasSubscribers reports whether anything listens for an event type
func (em *EventManager) HasSubscribers(eventType EventType) bool {
	return len(em.subscribers[eventType]) > 0
}

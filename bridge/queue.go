package bridge

import (
	"errors"
	"sync"
	"time"
)

// ErrEmpty reports that no event arrived within the pop timeout.
var ErrEmpty = errors.New("event queue empty")

// DefaultQueueCapacity bounds undelivered agent events.
const DefaultQueueCapacity = 100

// Event is a single uncorrelated agent frame buffered for stream subscribers.
type Event struct {
	Payload []byte
	Created time.Time
}

// Queue is a bounded FIFO buffer of agent events. When full, the oldest event
// is evicted to admit a new one; the stream favours recency over completeness.
type Queue struct {
	mux    sync.Mutex
	events chan Event
}

// NewQueue creates a queue bounded to capacity events.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &Queue{events: make(chan Event, capacity)}
}

// Push appends payload, evicting the single oldest event first when at
// capacity. Eviction and append happen under one lock so two producers can
// never both observe "full" and evict twice.
func (q *Queue) Push(payload []byte) {
	event := Event{Payload: payload, Created: time.Now()}
	q.mux.Lock()
	defer q.mux.Unlock()
	select {
	case q.events <- event:
	default:
		select {
		case <-q.events:
		default:
		}
		q.events <- event
	}
}

// Pop removes and returns the oldest event, or ErrEmpty once timeout elapses
// with nothing buffered. Stream subscribers use the timeout to emit periodic
// keep-alive signals.
func (q *Queue) Pop(timeout time.Duration) (Event, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case event := <-q.events:
		return event, nil
	case <-timer.C:
		return Event{}, ErrEmpty
	}
}

// Size returns the number of buffered events.
func (q *Queue) Size() int {
	return len(q.events)
}

package audit

import (
	"log"
	"sync"
)

type Event struct {
	RestaurantID string
	UserID       *string
	Action       string
	Entity       string
	EntityID     *string
	Metadata     any
}

// Sink persists a single event. *Logger is the production sink.
type Sink interface {
	Log(ev Event) error
}

const DefaultQueueSize = 100

type Dispatcher struct {
	sink  Sink
	queue chan Event

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(sink Sink, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}

	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, queueSize),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		if err := d.sink.Log(ev); err != nil {
			log.Printf("audit: %s on %s: %v", ev.Action, ev.RestaurantID, err)
		}
	}
}

// Dispatch never blocks the request: a full queue drops the event.
// A nil or closed dispatcher discards everything.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
	default:
		log.Printf("audit: queue full, dropping %s", ev.Action)
	}
}

// Close stops accepting events and waits until the queued ones are written.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	<-d.done
}

package audit

import (
	"errors"
	"sync"
	"testing"
)

type memorySink struct {
	mu     sync.Mutex
	events []Event
	fail   bool
}

func (s *memorySink) Log(ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("sink down")
	}
	s.events = append(s.events, ev)
	return nil
}

func TestDispatcherDrainsOnClose(t *testing.T) {
	sink := &memorySink{}
	d := NewDispatcher(sink, 10)

	for i := 0; i < 5; i++ {
		d.Dispatch(Event{RestaurantID: "r-1", Action: "order_placed"})
	}
	d.Close()

	if len(sink.events) != 5 {
		t.Fatalf("written = %d, want 5", len(sink.events))
	}

	// after Close events are discarded and a second Close is harmless
	d.Dispatch(Event{Action: "late"})
	d.Close()
	if len(sink.events) != 5 {
		t.Fatalf("late event was written")
	}
}

func TestDispatcherSurvivesSinkErrors(t *testing.T) {
	sink := &memorySink{fail: true}
	d := NewDispatcher(sink, 0)

	d.Dispatch(Event{Action: "table_created"})
	d.Close()

	if len(sink.events) != 0 {
		t.Fatalf("unexpected events: %+v", sink.events)
	}
}

func TestNilDispatcherIsNoop(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Action: "ignored"})
	d.Close()
}

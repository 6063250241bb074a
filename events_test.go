package estatekit

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestDispatcherDeliversToSink(t *testing.T) {
	sink := NewChannelSink(8)
	d := newEventDispatcher(EventsConfig{Enabled: true, BufferSize: 8, DropIfFull: true}, sink)
	defer d.Close()

	d.Emit(context.Background(), Event{Type: EventLogin, UserID: "7", Success: true})

	select {
	case got := <-sink.Events():
		if got.Type != EventLogin || got.UserID != "7" || !got.Success {
			t.Fatalf("event = %+v", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("event never arrived")
	}
}

func TestDispatcherDisabledReturnsNil(t *testing.T) {
	if d := newEventDispatcher(EventsConfig{Enabled: false}, NoOpSink{}); d != nil {
		t.Fatal("disabled config produced a dispatcher")
	}

	// nil dispatcher methods are safe no-ops
	var d *eventDispatcher
	d.Emit(context.Background(), Event{})
	d.Close()
	if d.Dropped() != 0 {
		t.Fatal("nil Dropped() != 0")
	}
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	block := make(chan struct{})
	sink := blockingSink{release: block}
	d := newEventDispatcher(EventsConfig{Enabled: true, BufferSize: 1, DropIfFull: true}, sink)
	defer func() {
		close(block)
		d.Close()
	}()

	// saturate the worker and the buffer, then overflow
	for i := 0; i < 10; i++ {
		d.Emit(context.Background(), Event{Type: EventLogin})
	}

	if d.Dropped() == 0 {
		t.Fatal("no drops recorded against a saturated buffer")
	}
}

type blockingSink struct {
	release chan struct{}
}

func (s blockingSink) Emit(context.Context, Event) {
	<-s.release
}

func TestDispatcherCloseDrains(t *testing.T) {
	sink := NewChannelSink(16)
	d := newEventDispatcher(EventsConfig{Enabled: true, BufferSize: 16, DropIfFull: true}, sink)

	for i := 0; i < 5; i++ {
		d.Emit(context.Background(), Event{Type: EventRefresh})
	}
	d.Close()
	d.Close() // idempotent

	delivered := 0
	for {
		select {
		case <-sink.Events():
			delivered++
		default:
			if delivered != 5 {
				t.Fatalf("delivered = %d, want 5", delivered)
			}
			return
		}
	}
}

func TestDispatcherEmitAfterClose(t *testing.T) {
	d := newEventDispatcher(EventsConfig{Enabled: true, BufferSize: 1, DropIfFull: true}, NoOpSink{})
	d.Close()
	d.Emit(context.Background(), Event{Type: EventLogout})
}

func TestJSONWriterSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewJSONWriterSink(&buf)

	sink.Emit(context.Background(), Event{Type: EventLogout, UserID: "7", Success: true})
	sink.Emit(context.Background(), Event{Type: EventLogin, Success: false, Error: "bad"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d", len(lines))
	}

	var first Event
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("decode line: %v", err)
	}
	if first.Type != EventLogout || first.UserID != "7" {
		t.Fatalf("event = %+v", first)
	}
}

func TestChannelSinkRespectsContext(t *testing.T) {
	sink := NewChannelSink(1)
	sink.Emit(context.Background(), Event{Type: EventLogin})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	done := make(chan struct{})
	go func() {
		sink.Emit(ctx, Event{Type: EventLogin}) // full channel, cancelled ctx
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Emit blocked past context cancellation")
	}
}

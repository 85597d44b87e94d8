package eventbus

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/treykane/shell-layout/internal/layout"
)

type chanSender chan tea.Msg

func (c chanSender) Send(msg tea.Msg) { c <- msg }

func drain(ch <-chan layout.Notification) []layout.Notification {
	var got []layout.Notification
	for {
		select {
		case n, ok := <-ch:
			if !ok {
				return got
			}
			got = append(got, n)
		default:
			return got
		}
	}
}

func TestPublishDeliversByTopic(t *testing.T) {
	bus := New(context.Background())
	defer bus.Shutdown()

	resizes, _ := bus.Subscribe(layout.SystemResize, 4)
	rotations, _ := bus.Subscribe(layout.OrientationChange, 4)

	bus.Publish(layout.SystemResize)
	bus.Publish(layout.OrientationChange)
	bus.Publish(layout.SystemResize)

	if diff := cmp.Diff([]layout.Notification{layout.SystemResize, layout.SystemResize}, drain(resizes)); diff != "" {
		t.Fatalf("resize subscriber mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]layout.Notification{layout.OrientationChange}, drain(rotations)); diff != "" {
		t.Fatalf("orientation subscriber mismatch (-want +got):\n%s", diff)
	}
}

func TestPublishDropsWhenSubscriberIsFull(t *testing.T) {
	bus := New(context.Background())
	defer bus.Shutdown()

	ch, _ := bus.Subscribe(layout.SystemResize, 1)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 5; i++ {
			bus.Publish(layout.SystemResize)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}
	if got := len(drain(ch)); got != 1 {
		t.Fatalf("expected 1 buffered notification, got %d", got)
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	bus := New(context.Background())
	defer bus.Shutdown()

	ch, id := bus.Subscribe(layout.SystemResize, 1)
	other, _ := bus.Subscribe(layout.SystemResize, 1)

	bus.Unsubscribe(id)
	bus.Unsubscribe(id)
	bus.Unsubscribe("not-a-subscription")

	if _, ok := <-ch; ok {
		t.Fatal("expected unsubscribed channel to be closed")
	}

	bus.Publish(layout.SystemResize)
	if got := len(drain(other)); got != 1 {
		t.Fatalf("expected remaining subscriber to receive 1 notification, got %d", got)
	}
}

func TestSubscribeReturnsDistinctIDs(t *testing.T) {
	bus := New(context.Background())
	defer bus.Shutdown()

	_, first := bus.Subscribe(layout.SystemResize, 1)
	_, second := bus.Subscribe(layout.SystemResize, 1)
	if first == "" || first == second {
		t.Fatalf("expected distinct non-empty ids, got %q and %q", first, second)
	}
}

func TestShutdownClosesSubscribersAndStopsDelivery(t *testing.T) {
	bus := New(context.Background())
	ch, _ := bus.Subscribe(layout.OrientationChange, 1)

	bus.Shutdown()
	bus.Publish(layout.OrientationChange)

	if _, ok := <-ch; ok {
		t.Fatal("expected channel closed after shutdown")
	}
}

func TestCancelledContextStopsDelivery(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	bus := New(ctx)
	defer bus.Shutdown()
	ch, _ := bus.Subscribe(layout.SystemResize, 1)

	cancel()
	bus.Publish(layout.SystemResize)

	if got := len(drain(ch)); got != 0 {
		t.Fatalf("expected no delivery after cancel, got %d", got)
	}
}

func TestSetProgramForwardsInOrder(t *testing.T) {
	bus := New(context.Background())
	defer bus.Shutdown()

	sender := make(chanSender, 4)
	bus.SetProgram(sender)

	bus.Publish(layout.SystemResize)
	bus.Publish(layout.OrientationChange)

	want := []layout.Notification{layout.SystemResize, layout.OrientationChange}
	for i, w := range want {
		select {
		case msg := <-sender:
			got, ok := msg.(NotificationMsg)
			if !ok {
				t.Fatalf("message %d: got %T, want NotificationMsg", i, msg)
			}
			if got.Notification != w {
				t.Fatalf("message %d: got %q, want %q", i, got.Notification, w)
			}
		case <-time.After(time.Second):
			t.Fatalf("message %d: timed out waiting for forward", i)
		}
	}
}

func TestBusSatisfiesPublisher(t *testing.T) {
	bus := New(context.Background())
	defer bus.Shutdown()

	ch, _ := bus.Subscribe(layout.SystemResize, 2)
	m := layout.New(layout.Deps{Publisher: bus})
	m.HandleEvent(layout.EventKeyboardHide)

	if got := len(drain(ch)); got != 1 {
		t.Fatalf("expected manager notification on the bus, got %d", got)
	}
}

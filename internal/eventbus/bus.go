// Package eventbus delivers layout notifications to the rest of the shell.
//
// Subscribers receive notifications on buffered channels. Publishing never
// blocks: a full subscriber channel drops the notification, and nothing about
// delivery is reported back to the publisher. When a Bubble Tea program is
// attached, every notification is also forwarded to it as a NotificationMsg,
// in publish order, from a dedicated goroutine. Publish is typically called
// from inside the program's Update, where a direct Send would deadlock.
package eventbus

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/treykane/shell-layout/internal/layout"
	"github.com/treykane/shell-layout/internal/logging"
)

var busLog = logging.New("eventbus")

// NotificationMsg wraps a notification for a Bubble Tea program.
type NotificationMsg struct {
	Notification layout.Notification
}

// Sender is the part of *tea.Program the bus forwards to.
type Sender interface {
	Send(msg tea.Msg)
}

// forwardBuffer bounds how many notifications may wait for the program.
const forwardBuffer = 64

type subscription struct {
	id    string
	topic layout.Notification
	ch    chan layout.Notification
}

// Bus is a topic-keyed publish/subscribe bus. It is safe for concurrent use.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[layout.Notification][]*subscription
	byID        map[string]*subscription
	ctx         context.Context
	cancel      context.CancelFunc
	forward     chan NotificationMsg
}

// New creates a bus that stops delivering once ctx is cancelled or Shutdown
// is called.
func New(ctx context.Context) *Bus {
	busCtx, cancel := context.WithCancel(ctx)
	return &Bus{
		subscribers: make(map[layout.Notification][]*subscription),
		byID:        make(map[string]*subscription),
		ctx:         busCtx,
		cancel:      cancel,
	}
}

// SetProgram forwards every published notification to p until the bus shuts
// down. It may be called once.
func (b *Bus) SetProgram(p Sender) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.forward != nil {
		return
	}
	b.forward = make(chan NotificationMsg, forwardBuffer)
	go b.forwardTo(p, b.forward)
}

func (b *Bus) forwardTo(p Sender, msgs <-chan NotificationMsg) {
	for {
		select {
		case msg := <-msgs:
			p.Send(msg)
		case <-b.ctx.Done():
			return
		}
	}
}

// Subscribe returns a channel receiving notifications of the given topic and
// an id for Unsubscribe.
func (b *Bus) Subscribe(topic layout.Notification, bufferSize int) (<-chan layout.Notification, string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := &subscription{
		id:    uuid.NewString(),
		topic: topic,
		ch:    make(chan layout.Notification, bufferSize),
	}
	b.subscribers[topic] = append(b.subscribers[topic], sub)
	b.byID[sub.id] = sub
	return sub.ch, sub.id
}

// Unsubscribe closes the subscription's channel. Unknown ids are ignored.
func (b *Bus) Unsubscribe(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub, ok := b.byID[id]
	if !ok {
		return
	}
	delete(b.byID, id)
	subs := b.subscribers[sub.topic]
	for i, s := range subs {
		if s == sub {
			b.subscribers[sub.topic] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	close(sub.ch)
}

// Publish implements layout.Publisher. It never blocks.
func (b *Bus) Publish(n layout.Notification) {
	if b.ctx.Err() != nil {
		return
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, sub := range b.subscribers[n] {
		select {
		case sub.ch <- n:
		default:
			busLog.Debug("dropped notification", "notification", string(n), "subscription", sub.id)
		}
	}

	if b.forward != nil {
		select {
		case b.forward <- NotificationMsg{Notification: n}:
		default:
			busLog.Debug("dropped notification", "notification", string(n), "subscription", "program")
		}
	}
}

// Shutdown stops delivery and closes every subscriber channel.
func (b *Bus) Shutdown() {
	b.cancel()

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, sub := range b.byID {
		close(sub.ch)
	}
	b.subscribers = make(map[layout.Notification][]*subscription)
	b.byID = make(map[string]*subscription)
}

package network

import (
	"sync"

	"github.com/nancyzera/jurassic-game/pkg/api"
	"github.com/nancyzera/jurassic-game/pkg/logger"
)

// outboxSize is how many frames a slow subscriber may lag behind before
// frames are dropped.
const outboxSize = 100

// Broadcaster fans session snapshots out to subscribers.
type Broadcaster struct {
	mu sync.RWMutex
	// session id -> outbound channel
	subscribers map[string]chan api.ServerResponse
	dropped     map[string]int
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.ServerResponse),
		dropped:     make(map[string]int),
	}
}

// Register creates the outbound channel for a session. A previous
// channel for the same id is closed.
func (b *Broadcaster) Register(sessionID string) chan api.ServerResponse {
	b.mu.Lock()
	defer b.mu.Unlock()

	if old, ok := b.subscribers[sessionID]; ok {
		close(old)
	}

	ch := make(chan api.ServerResponse, outboxSize)
	b.subscribers[sessionID] = ch
	b.dropped[sessionID] = 0
	return ch
}

// Unregister closes and forgets a session's channel.
func (b *Broadcaster) Unregister(sessionID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[sessionID]; ok {
		close(ch)
		delete(b.subscribers, sessionID)
		delete(b.dropped, sessionID)
	}
}

// SendTo delivers a frame without blocking. Frames for a full channel
// are dropped: every frame is a full snapshot, so the next one catches up.
func (b *Broadcaster) SendTo(sessionID string, msg api.ServerResponse) bool {
	b.mu.RLock()
	ch, ok := b.subscribers[sessionID]
	if !ok {
		b.mu.RUnlock()
		return false
	}
	select {
	case ch <- msg:
		b.mu.RUnlock()
		return true
	default:
	}
	b.mu.RUnlock()

	b.mu.Lock()
	b.dropped[sessionID]++
	n := b.dropped[sessionID]
	b.mu.Unlock()
	if n == 1 || n%600 == 0 {
		logger.Component("hub").WithField("session_id", sessionID).WithField("dropped", n).Warn("Subscriber is lagging, frames dropped")
	}
	return false
}

func (b *Broadcaster) HasSubscriber(sessionID string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.subscribers[sessionID]
	return ok
}

func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Dropped returns how many frames were dropped for a session.
func (b *Broadcaster) Dropped(sessionID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.dropped[sessionID]
}

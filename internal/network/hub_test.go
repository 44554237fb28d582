package network

import (
	"testing"

	"github.com/nancyzera/jurassic-game/pkg/api"
)

func TestBroadcaster_SendTo(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("s1")

	if !b.SendTo("s1", api.ServerResponse{Type: "UPDATE", Tick: 1}) {
		t.Fatal("SendTo to a registered session failed")
	}
	if msg := <-ch; msg.Tick != 1 {
		t.Errorf("Expected tick 1, got %d", msg.Tick)
	}

	if b.SendTo("nobody", api.ServerResponse{}) {
		t.Error("SendTo to an unknown session should report false")
	}
}

func TestBroadcaster_DropsWhenFull(t *testing.T) {
	b := NewBroadcaster()
	b.Register("s1")

	for i := 0; i < outboxSize; i++ {
		b.SendTo("s1", api.ServerResponse{})
	}
	if b.SendTo("s1", api.ServerResponse{}) {
		t.Error("Expected the frame to be dropped")
	}
	if b.Dropped("s1") != 1 {
		t.Errorf("Expected 1 dropped frame, got %d", b.Dropped("s1"))
	}
}

func TestBroadcaster_RegisterReplacesAndUnregisterCloses(t *testing.T) {
	b := NewBroadcaster()
	old := b.Register("s1")
	fresh := b.Register("s1")

	if _, ok := <-old; ok {
		t.Error("Old channel should be closed on re-register")
	}

	b.Unregister("s1")
	if _, ok := <-fresh; ok {
		t.Error("Channel should be closed on unregister")
	}
	if b.HasSubscriber("s1") || b.SubscriberCount() != 0 {
		t.Error("Subscriber still registered")
	}
}

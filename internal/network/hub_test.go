package network

import (
	"os"
	"testing"

	"github.com/angband/angband-sub026/pkg/api"
	"github.com/angband/angband-sub026/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestBroadcast(t *testing.T) {
	b := NewBroadcaster()
	player := b.Register("alice")
	watcher := b.Register("watch_1")

	if n := b.Broadcast(api.ServerResponse{Type: api.TypeUpdate, Turn: 10}); n != 2 {
		t.Fatalf("delivered = %d, want 2", n)
	}
	for _, ch := range []chan api.ServerResponse{player, watcher} {
		if got := <-ch; got.Turn != 10 {
			t.Errorf("turn = %d", got.Turn)
		}
	}

	b.SendTo("alice", api.ServerResponse{Type: api.TypeError, Error: "no"})
	if got := <-player; got.Type != api.TypeError {
		t.Errorf("личное сообщение: %+v", got)
	}
	if len(watcher) != 0 {
		t.Error("зритель получил чужую ошибку")
	}
}

func TestBroadcastDropsWhenFull(t *testing.T) {
	b := NewBroadcaster()
	slow := b.Register("slow")
	for i := 0; i < sendBuffer; i++ {
		b.Broadcast(api.ServerResponse{Turn: int64(i)})
	}
	if n := b.Broadcast(api.ServerResponse{}); n != 0 {
		t.Errorf("delivered = %d, переполненный канал не блокирует рассылку", n)
	}
	if len(slow) != sendBuffer {
		t.Errorf("buffered = %d", len(slow))
	}
}

func TestRegisterTwice(t *testing.T) {
	b := NewBroadcaster()
	old := b.Register("alice")
	b.Register("alice")

	if _, ok := <-old; ok {
		t.Error("старый канал должен быть закрыт")
	}
	if b.SubscriberCount() != 1 || !b.HasSubscriber("alice") {
		t.Errorf("subscribers = %d", b.SubscriberCount())
	}

	b.Unregister("alice")
	b.Unregister("alice")
	if b.HasSubscriber("alice") {
		t.Error("сессия осталась после Unregister")
	}
}

package network

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/angband/angband-sub026/pkg/api"
	"github.com/angband/angband-sub026/pkg/logger"
)

// sendBuffer — размер личного канала подписчика.
const sendBuffer = 100

// Broadcaster раздает снимки партии игроку, боту и зрителям.
type Broadcaster struct {
	mu          sync.RWMutex
	subscribers map[string]chan api.ServerResponse
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.ServerResponse),
	}
}

// Register создает личный канал для сессии (игрока, бота или зрителя).
// Повторная регистрация закрывает старый канал.
func (b *Broadcaster) Register(session string) chan api.ServerResponse {
	b.mu.Lock()
	defer b.mu.Unlock()

	if old, ok := b.subscribers[session]; ok {
		close(old)
	}

	ch := make(chan api.ServerResponse, sendBuffer)
	b.subscribers[session] = ch
	return ch
}

// Unregister закрывает канал сессии. Неизвестная сессия игнорируется.
func (b *Broadcaster) Unregister(session string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[session]; ok {
		close(ch)
		delete(b.subscribers, session)
	}
}

// SendTo отправляет сообщение одной сессии. Переполненный канал пропускает сообщение.
func (b *Broadcaster) SendTo(session string, msg api.ServerResponse) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if ch, ok := b.subscribers[session]; ok {
		select {
		case ch <- msg:
		default:
			logger.For("hub").WithField("session", session).Warn("channel full, update dropped")
		}
	}
}

// Broadcast рассылает снимок всем сессиям и возвращает, скольким он дошел.
// Отставший зритель теряет кадр, следующий снимок его догонит.
func (b *Broadcaster) Broadcast(msg api.ServerResponse) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	sent := 0
	for session, ch := range b.subscribers {
		select {
		case ch <- msg:
			sent++
		default:
			logger.For("hub").WithFields(logrus.Fields{
				"session": session,
				"turn":    msg.Turn,
			}).Debug("subscriber lagging, snapshot dropped")
		}
	}
	return sent
}

// HasSubscriber проверяет, подключена ли сессия.
func (b *Broadcaster) HasSubscriber(session string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.subscribers[session]
	return ok
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

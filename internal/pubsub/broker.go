package pubsub

import (
	"sync"

	"go.uber.org/zap"
)

// Broker is a simple in-memory pub/sub fanout. It remembers only the latest
// message per topic so a new subscriber immediately gets the current snapshot
// instead of a replay.
type Broker struct {
	mu          sync.RWMutex
	subscribers map[string][]chan []byte
	latest      map[string][]byte
}

func NewBroker() *Broker {
	return &Broker{
		subscribers: make(map[string][]chan []byte),
		latest:      make(map[string][]byte),
	}
}

// Subscribe registers a channel for a topic. The latest message, if any, is
// delivered first. The returned function removes the subscription and closes
// the channel.
func (b *Broker) Subscribe(topic string) (<-chan []byte, func()) {
	b.mu.Lock()

	ch := make(chan []byte, 16)
	if snapshot, ok := b.latest[topic]; ok {
		ch <- snapshot
	}
	b.subscribers[topic] = append(b.subscribers[topic], ch)
	b.mu.Unlock()

	unsubscribe := func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subscribers := b.subscribers[topic]
		for i, sub := range subscribers {
			if sub == ch {
				b.subscribers[topic] = append(subscribers[:i], subscribers[i+1:]...)
				close(ch)
				break
			}
		}
		zap.S().Debugf("unsubscribed from topic %s", topic)
	}

	zap.S().Debugf("new subscription to topic %s", topic)
	return ch, unsubscribe
}

// Publish stores the message as the topic's snapshot and broadcasts it to all
// live subscribers. A subscriber with a full channel misses the message; a
// slow client must never block the publisher.
func (b *Broker) Publish(topic string, msg []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.latest[topic] = msg

	for _, ch := range b.subscribers[topic] {
		select {
		case ch <- msg:
		default:
		}
	}
}

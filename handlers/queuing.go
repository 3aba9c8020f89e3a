// Package handlers queuing.go holds the outbound backlog used when a client's
// send buffer is full.
// Package handlers serves the game page and runs one play session per websocket.
package handlers

import (
	"fmt"
	"sync"
)

type queued struct {
	data   []byte
	pinned bool
}

// MessageQueue buffers outbound messages for clients whose send channel is
// full. Each client keeps at most limit messages; the oldest unpinned ones are
// dropped first. Pinned messages are never dropped.
type MessageQueue struct {
	mu       sync.Mutex
	limit    int
	messages map[string][]queued // map of client ID to message queue
}

func NewMessageQueue(limit int) *MessageQueue {
	return &MessageQueue{
		limit:    limit,
		messages: make(map[string][]queued),
	}
}

// Enqueue appends message and reports how many older messages were dropped.
func (mq *MessageQueue) Enqueue(clientID string, message []byte, pinned bool) int {
	mq.mu.Lock()
	defer mq.mu.Unlock()

	q := append(mq.messages[clientID], queued{data: message, pinned: pinned})
	dropped := 0
	if mq.limit > 0 && len(q) > mq.limit {
		excess := len(q) - mq.limit
		kept := q[:0]
		for _, m := range q {
			if excess > 0 && !m.pinned {
				excess--
				dropped++
				continue
			}
			kept = append(kept, m)
		}
		q = kept
	}
	mq.messages[clientID] = q
	return dropped
}

func (mq *MessageQueue) Dequeue(clientID string) ([]byte, error) {
	mq.mu.Lock()
	defer mq.mu.Unlock()

	messages, ok := mq.messages[clientID]
	if !ok || len(messages) == 0 {
		return nil, fmt.Errorf("no messages for client %s", clientID)
	}

	message := messages[0]
	mq.messages[clientID] = messages[1:]

	return message.data, nil
}

func (mq *MessageQueue) QueueSize(clientID string) int {
	mq.mu.Lock()
	defer mq.mu.Unlock()

	return len(mq.messages[clientID])
}

func (mq *MessageQueue) ClearQueue(clientID string) {
	mq.mu.Lock()
	defer mq.mu.Unlock()

	delete(mq.messages, clientID)
}

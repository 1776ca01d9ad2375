package messaging

import (
	"errors"
	"sync"
)

// Store keeps a journal of messages that were handed off successfully.
type Store interface {
	Append(msg Message) error
	List() ([]Message, error)
}

// MemoryStore is a simple in-memory implementation suitable for short-lived sessions.
type MemoryStore struct {
	mu   sync.RWMutex
	sent []Message
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(msg Message) error {
	if msg.ID == "" {
		return errors.New("message ID is empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, msg)
	return nil
}

func (s *MemoryStore) List() ([]Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Message, len(s.sent))
	copy(out, s.sent)
	return out, nil
}

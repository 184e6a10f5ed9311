package assistant

import (
	"context"
	"sync"
)

type MemoryRepo struct {
	mu   sync.RWMutex
	data map[int][]Message
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: map[int][]Message{}}
}

func (r *MemoryRepo) Append(ctx context.Context, userId int, message Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[userId] = append(r.data[userId], message)
	return nil
}

func (r *MemoryRepo) GetAll(ctx context.Context, userId int) ([]Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	messages := make([]Message, len(r.data[userId]))
	copy(messages, r.data[userId])
	return messages, nil
}

package savings

import (
	"context"
	"sync"
)

type MemoryRepo struct {
	mu   sync.RWMutex
	data map[int]map[string]Goal
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: map[int]map[string]Goal{}}
}

func (r *MemoryRepo) Store(ctx context.Context, userId int, goal Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.data[userId] == nil {
		r.data[userId] = map[string]Goal{}
	}
	r.data[userId][goal.ID] = goal
	return nil
}

func (r *MemoryRepo) GetAll(ctx context.Context, userId int) ([]Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	goals := make([]Goal, 0, len(r.data[userId]))
	for _, goal := range r.data[userId] {
		goals = append(goals, goal)
	}
	return goals, nil
}

func (r *MemoryRepo) Update(ctx context.Context, userId int, goal Goal) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[userId][goal.ID]; !ok {
		return false, nil
	}
	r.data[userId][goal.ID] = goal
	return true, nil
}

func (r *MemoryRepo) Delete(ctx context.Context, userId int, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[userId][id]; !ok {
		return false, nil
	}
	delete(r.data[userId], id)
	return true, nil
}

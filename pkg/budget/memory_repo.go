package budget

import (
	"context"
	"sync"
)

type MemoryRepo struct {
	mu   sync.RWMutex
	data map[int]map[string]Budget
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: map[int]map[string]Budget{}}
}

func (r *MemoryRepo) Store(ctx context.Context, userId int, budget Budget) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.data[userId] == nil {
		r.data[userId] = map[string]Budget{}
	}
	r.data[userId][budget.ID] = budget
	return nil
}

func (r *MemoryRepo) GetAll(ctx context.Context, userId int) ([]Budget, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	budgets := make([]Budget, 0, len(r.data[userId]))
	for _, budget := range r.data[userId] {
		budgets = append(budgets, budget)
	}
	return budgets, nil
}

func (r *MemoryRepo) Update(ctx context.Context, userId int, budget Budget) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[userId][budget.ID]; !ok {
		return false, nil
	}
	r.data[userId][budget.ID] = budget
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

package expense

import (
	"context"
	"sync"
)

// MemoryRepo is the default store: records live only for the lifetime of the
// process, matching the session-scoped ownership of the record collections.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[int]map[string]Expense
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: map[int]map[string]Expense{}}
}

func (r *MemoryRepo) Store(ctx context.Context, userId int, expense Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.data[userId] == nil {
		r.data[userId] = map[string]Expense{}
	}
	r.data[userId][expense.ID] = expense
	return nil
}

func (r *MemoryRepo) GetAll(ctx context.Context, userId int) ([]Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	expenses := make([]Expense, 0, len(r.data[userId]))
	for _, expense := range r.data[userId] {
		expenses = append(expenses, expense)
	}
	return expenses, nil
}

func (r *MemoryRepo) Update(ctx context.Context, userId int, expense Expense) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[userId][expense.ID]; !ok {
		return false, nil
	}
	r.data[userId][expense.ID] = expense
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

package transaction

import (
	"context"
	"sync"
)

type MemoryRepo struct {
	mu   sync.RWMutex
	data map[int]map[string]Transaction
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: map[int]map[string]Transaction{}}
}

func (r *MemoryRepo) Store(ctx context.Context, userId int, transaction Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.data[userId] == nil {
		r.data[userId] = map[string]Transaction{}
	}
	r.data[userId][transaction.ID] = transaction
	return nil
}

func (r *MemoryRepo) GetAll(ctx context.Context, userId int) ([]Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	transactions := make([]Transaction, 0, len(r.data[userId]))
	for _, transaction := range r.data[userId] {
		transactions = append(transactions, transaction)
	}
	return transactions, nil
}

func (r *MemoryRepo) Update(ctx context.Context, userId int, transaction Transaction) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[userId][transaction.ID]; !ok {
		return false, nil
	}
	r.data[userId][transaction.ID] = transaction
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

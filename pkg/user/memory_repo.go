package user

import (
	"context"
	"sync"
)

type MemoryRepo struct {
	mu     sync.RWMutex
	nextId int
	data   map[int]User
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: map[int]User{}}
}

func (r *MemoryRepo) CreateUser(ctx context.Context, user User) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextId++
	user.Id = r.nextId
	r.data[user.Id] = user
	return user.Id, nil
}

func (r *MemoryRepo) GetUser(ctx context.Context, id int) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.data[id]
	if !ok {
		return User{}, ErrNoUser
	}
	return user, nil
}

func (r *MemoryRepo) GetUserByUid(ctx context.Context, uid string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.data {
		if user.Uid == uid {
			return user, nil
		}
	}
	return User{}, ErrNoUser
}

func (r *MemoryRepo) UpdateUser(ctx context.Context, user User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[user.Id]; !ok {
		return User{}, ErrNoUser
	}
	r.data[user.Id] = user
	return user, nil
}

package user

import (
	"context"
	"sync"
)

// RepoStub is an in-memory Repo for tests.
type RepoStub struct {
	mu     sync.RWMutex
	users  map[string]User // uid -> user
	nextId int
}

func NewRepoStub() *RepoStub {
	return &RepoStub{users: make(map[string]User), nextId: 1}
}

func (r *RepoStub) CreateUser(_ context.Context, user User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.Id = r.nextId
	r.nextId++
	r.users[user.Uid] = user
	return user, nil
}

func (r *RepoStub) GetUserByUid(_ context.Context, uid string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[uid]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return u, nil
}

func (r *RepoStub) IsUsernameAvailable(_ context.Context, username string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			return false, nil
		}
	}
	return true, nil
}

func (r *RepoStub) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = make(map[string]User)
	r.nextId = 1
}

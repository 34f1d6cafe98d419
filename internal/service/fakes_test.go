package service

import (
	"context"
	"sync"

	"github.com/deppfellow/bff-service/internal/database"
	"github.com/deppfellow/bff-service/internal/model"
	"github.com/deppfellow/bff-service/internal/repository"
)

type fakeUserRepo struct {
	mu        sync.Mutex
	users     []model.User
	getErr    error
	createErr error
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) List(_ context.Context, skip, limit int) ([]model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.User, 0)
	for i := skip; i < len(f.users) && len(out) < limit; i++ {
		out = append(out, f.users[i])
	}
	return out, nil
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *user
	created.ID = int64(len(f.users) + 1)
	f.users = append(f.users, created)
	return &created, nil
}

type fakeItemRepo struct {
	items     []model.Item
	createErr error
}

func (f *fakeItemRepo) GetByID(_ context.Context, id int64) (*model.Item, error) {
	for _, it := range f.items {
		if it.ID == id {
			return &it, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeItemRepo) List(_ context.Context, skip, limit int) ([]model.Item, error) {
	out := make([]model.Item, 0)
	for i := skip; i < len(f.items) && len(out) < limit; i++ {
		out = append(out, f.items[i])
	}
	return out, nil
}

func (f *fakeItemRepo) Create(_ context.Context, item *model.Item) (*model.Item, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *item
	created.ID = int64(len(f.items) + 1)
	f.items = append(f.items, created)
	return &created, nil
}

type fakeNotifier struct {
	calls []string
	err   error
}

func (f *fakeNotifier) EnqueueWelcomeEmail(_ context.Context, to, _ string) error {
	f.calls = append(f.calls, to)
	return f.err
}

func newTestUserService(repo *fakeUserRepo, notifier WelcomeNotifier) *UserService {
	svc := NewUserService(repository.NewRepositories(), notifier)
	svc.users = func(database.DBTX) userRepository { return repo }
	svc.bcryptCost = 4 // bcrypt.MinCost
	return svc
}

func newTestItemService(repo *fakeItemRepo) *ItemService {
	svc := NewItemService(repository.NewRepositories())
	svc.items = func(database.DBTX) itemRepository { return repo }
	return svc
}

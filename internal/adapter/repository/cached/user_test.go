package cached

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"user-seed-service/internal/adapter/cache"
	domain "user-seed-service/internal/domain/user"
)

// fakeRepo is an in-memory user.Repository that counts DB hits.
type fakeRepo struct {
	users  map[int64]*domain.User
	gets   int
	failed bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[int64]*domain.User)}
}

func (f *fakeRepo) Create(_ context.Context, u *domain.User) (int64, error) {
	id := int64(len(f.users) + 1)
	cp := *u
	cp.ID = id
	f.users[id] = &cp
	return id, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	f.gets++
	if f.failed {
		return nil, errors.New("db unavailable")
	}
	u, ok := f.users[id]
	if !ok {
		return nil, errors.New("user not found")
	}
	cp := *u
	return &cp, nil
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) Update(_ context.Context, u *domain.User) (int64, error) {
	cp := *u
	f.users[u.ID] = &cp
	return u.ID, nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) (int64, error) {
	delete(f.users, id)
	return id, nil
}

func (f *fakeRepo) List(_ context.Context, _ string, _, _ int64) ([]domain.User, int64, error) {
	out := make([]domain.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

// fakeCache is an in-memory cache.UserCache.
type fakeCache struct {
	store map[int64]*domain.User
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[int64]*domain.User)}
}

func (c *fakeCache) Get(_ context.Context, id int64) (*domain.User, error) {
	u, ok := c.store[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (c *fakeCache) Set(_ context.Context, u *domain.User) error {
	cp := *u
	c.store[u.ID] = &cp
	return nil
}

func (c *fakeCache) Delete(_ context.Context, id int64) error {
	delete(c.store, id)
	return nil
}

var _ cache.UserCache = (*fakeCache)(nil)

func TestCachedRepository_GetByID_PopulatesCache(t *testing.T) {
	dbRepo := newFakeRepo()
	uc := newFakeCache()
	repo := NewUserRepository(dbRepo, uc, zaptest.NewLogger(t))
	ctx := context.Background()

	id, err := repo.Create(ctx, &domain.User{FirstName: "Bob", LastName: "Doe", Email: "bob@example.com"})
	require.NoError(t, err)

	// First get hits the DB and fills the cache
	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Bob", got.FirstName)
	assert.Equal(t, 1, dbRepo.gets)

	// Second get is served from cache
	got, err = repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Bob", got.FirstName)
	assert.Equal(t, 1, dbRepo.gets)
}

func TestCachedRepository_Update_InvalidatesCache(t *testing.T) {
	dbRepo := newFakeRepo()
	uc := newFakeCache()
	repo := NewUserRepository(dbRepo, uc, zaptest.NewLogger(t))
	ctx := context.Background()

	id, err := repo.Create(ctx, &domain.User{FirstName: "Bob", LastName: "Doe", Email: "bob@example.com"})
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, id)
	require.NoError(t, err)

	_, err = repo.Update(ctx, &domain.User{ID: id, FirstName: "Robert", LastName: "Doe", Email: "bob@example.com"})
	require.NoError(t, err)

	// The update evicted the stale entry, so this read goes to the DB.
	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Robert", got.FirstName)
}

func TestCachedRepository_Delete_InvalidatesCache(t *testing.T) {
	dbRepo := newFakeRepo()
	uc := newFakeCache()
	repo := NewUserRepository(dbRepo, uc, zaptest.NewLogger(t))
	ctx := context.Background()

	id, err := repo.Create(ctx, &domain.User{FirstName: "Bob", LastName: "Doe", Email: "bob@example.com"})
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, id)
	require.NoError(t, err)

	_, err = repo.Delete(ctx, id)
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, id)
	require.Error(t, err)
}

func TestCachedRepository_NilCache_FallsThrough(t *testing.T) {
	dbRepo := newFakeRepo()
	repo := NewUserRepository(dbRepo, nil, zaptest.NewLogger(t))
	ctx := context.Background()

	id, err := repo.Create(ctx, &domain.User{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Jane", got.FirstName)

	_, err = repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2, dbRepo.gets)
}

func TestCachedRepository_DBError_Propagates(t *testing.T) {
	dbRepo := newFakeRepo()
	dbRepo.failed = true
	repo := NewUserRepository(dbRepo, newFakeCache(), zaptest.NewLogger(t))

	_, err := repo.GetByID(context.Background(), 1)
	require.Error(t, err)
}

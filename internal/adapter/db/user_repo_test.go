package db

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"user-seed-service/internal/domain/user"
	"user-seed-service/internal/schema"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&schema.UserSchema{}, &schema.FruitSchema{}))
	return db
}

func TestUserRepo_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepo(db, zaptest.NewLogger(t))
	ctx := context.Background()

	id, err := repo.Create(ctx, &user.User{FirstName: "Bob", LastName: "Doe", Email: "bob@example.com"})
	require.NoError(t, err)
	require.Positive(t, id)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Bob", got.FirstName)
	assert.Equal(t, "Doe", got.LastName)
	assert.Equal(t, "bob@example.com", got.Email)
}

func TestUserRepo_Create_Nil(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepo(db, zaptest.NewLogger(t))

	_, err := repo.Create(context.Background(), nil)
	require.Error(t, err)
}

func TestUserRepo_GetByEmail_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepo(db, zaptest.NewLogger(t))

	got, err := repo.GetByEmail(context.Background(), "missing@example.com")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepo_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepo(db, zaptest.NewLogger(t))
	ctx := context.Background()

	id, err := repo.Create(ctx, &user.User{FirstName: "Bob", LastName: "Doe", Email: "bob@example.com"})
	require.NoError(t, err)

	_, err = repo.Update(ctx, &user.User{ID: id, FirstName: "Robert", LastName: "Doe", Email: "bob@example.com"})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Robert", got.FirstName)
}

func TestUserRepo_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepo(db, zaptest.NewLogger(t))
	ctx := context.Background()

	id, err := repo.Create(ctx, &user.User{FirstName: "Bob", LastName: "Doe", Email: "bob@example.com"})
	require.NoError(t, err)

	_, err = repo.Delete(ctx, id)
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, id)
	require.Error(t, err)
}

func TestUserRepo_Delete_InvalidID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepo(db, zaptest.NewLogger(t))

	_, err := repo.Delete(context.Background(), 0)
	require.Error(t, err)
}

func TestUserRepo_List_SearchValidation(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepo(db, zaptest.NewLogger(t))
	ctx := context.Background()

	seed := []user.User{
		{FirstName: "Bob", LastName: "Doe", Email: "bob@example.com"},
		{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"},
		{FirstName: "Alice", LastName: "Smith", Email: "alice@other.org"},
	}
	for i := range seed {
		_, err := repo.Create(ctx, &seed[i])
		require.NoError(t, err)
	}

	tests := []struct {
		name        string
		query       string
		expectError bool
		expectCount int
		expectTotal int64
	}{
		{
			name:        "empty query returns all",
			query:       "",
			expectCount: 3,
			expectTotal: 3,
		},
		{
			name:        "match by first name",
			query:       "Jane",
			expectCount: 1,
			expectTotal: 1,
		},
		{
			name:        "match by last name",
			query:       "Doe",
			expectCount: 2,
			expectTotal: 2,
		},
		{
			name:        "match by email domain",
			query:       "example.com",
			expectCount: 2,
			expectTotal: 2,
		},
		{
			name:        "injection attempt rejected",
			query:       "x; DROP TABLE users",
			expectError: true,
		},
		{
			name:        "comment sequence rejected",
			query:       "jane --",
			expectError: true,
		},
		{
			name:        "query too long rejected",
			query:       string(make([]rune, 101)),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, total, err := repo.List(ctx, tt.query, 1, 10)
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid search query")
				return
			}
			require.NoError(t, err)
			assert.Len(t, users, tt.expectCount)
			assert.Equal(t, tt.expectTotal, total)
		})
	}
}

func TestUserRepo_List_Pagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepo(db, zaptest.NewLogger(t))
	ctx := context.Background()

	for _, u := range []user.User{
		{FirstName: "A", LastName: "One", Email: "a@example.com"},
		{FirstName: "B", LastName: "Two", Email: "b@example.com"},
		{FirstName: "C", LastName: "Three", Email: "c@example.com"},
	} {
		u := u
		_, err := repo.Create(ctx, &u)
		require.NoError(t, err)
	}

	users, total, err := repo.List(ctx, "", 1, 2)
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, int64(3), total)

	users, total, err = repo.List(ctx, "", 2, 2)
	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, int64(3), total)
}

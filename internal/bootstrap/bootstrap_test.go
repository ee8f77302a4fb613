package bootstrap

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"user-seed-service/internal/schema"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db
}

func setupRegistry(t *testing.T) *schema.Registry {
	registry, err := schema.Default()
	require.NoError(t, err)
	return registry
}

func TestRunner_FreshRun_SeedsExactRows(t *testing.T) {
	db := setupTestDB(t)
	registry := setupRegistry(t)
	runner := NewRunner(db, registry, zaptest.NewLogger(t))

	err := runner.Run(context.Background())
	require.NoError(t, err)

	var users []schema.UserSchema
	require.NoError(t, db.Order("id").Find(&users).Error)
	require.Len(t, users, 2)

	assert.Equal(t, "Bob", users[0].FirstName)
	assert.Equal(t, "Doe", users[0].LastName)
	assert.Equal(t, "bob@example.com", users[0].Email)

	assert.Equal(t, "Jane", users[1].FirstName)
	assert.Equal(t, "Doe", users[1].LastName)
	assert.Equal(t, "jane@example.com", users[1].Email)

	var fruits []schema.FruitSchema
	require.NoError(t, db.Order("id").Find(&fruits).Error)
	require.Len(t, fruits, 2)
	assert.Equal(t, "apple", fruits[0].Name)
	assert.Equal(t, "banana", fruits[1].Name)
}

func TestRunner_FreshRun_CreatesDeclaredColumns(t *testing.T) {
	db := setupTestDB(t)
	registry := setupRegistry(t)
	runner := NewRunner(db, registry, zaptest.NewLogger(t))

	require.NoError(t, runner.Run(context.Background()))

	migrator := db.Migrator()
	assert.True(t, migrator.HasTable(&schema.UserSchema{}))
	assert.True(t, migrator.HasColumn(&schema.UserSchema{}, "first_name"))
	assert.True(t, migrator.HasColumn(&schema.UserSchema{}, "last_name"))
	assert.True(t, migrator.HasColumn(&schema.UserSchema{}, "email"))

	assert.True(t, migrator.HasTable(&schema.FruitSchema{}))
	assert.True(t, migrator.HasColumn(&schema.FruitSchema{}, "name"))
	assert.True(t, migrator.HasColumn(&schema.FruitSchema{}, "color"))
}

func TestRunner_RunTwice_NoDuplicates(t *testing.T) {
	db := setupTestDB(t)
	registry := setupRegistry(t)
	runner := NewRunner(db, registry, zaptest.NewLogger(t))

	require.NoError(t, runner.Run(context.Background()))
	// Drop always precedes sync, so a second run must not fail on
	// existing tables or accumulate seed rows.
	require.NoError(t, runner.Run(context.Background()))

	var userCount int64
	require.NoError(t, db.Model(&schema.UserSchema{}).Count(&userCount).Error)
	assert.Equal(t, int64(2), userCount)

	var fruitCount int64
	require.NoError(t, db.Model(&schema.FruitSchema{}).Count(&fruitCount).Error)
	assert.Equal(t, int64(2), fruitCount)
}

func TestRunner_StepOrdering(t *testing.T) {
	db := setupTestDB(t)
	registry := setupRegistry(t)

	var steps []string
	runner := NewRunner(db, registry, zaptest.NewLogger(t),
		WithStepObserver(func(step string) {
			steps = append(steps, step)
		}),
	)

	require.NoError(t, runner.Run(context.Background()))
	assert.Equal(t, []string{StepVerify, StepDrop, StepSync, StepSeed}, steps)

	// The ordering is unconditional: a second invocation repeats the
	// full sequence with no step skipped.
	steps = nil
	require.NoError(t, runner.Run(context.Background()))
	assert.Equal(t, []string{StepVerify, StepDrop, StepSync, StepSeed}, steps)
}

func TestRunner_DeclarationDoesNotMutateStorage(t *testing.T) {
	db := setupTestDB(t)
	registry := setupRegistry(t)

	// Building the registry and the runner must not create any table.
	_ = NewRunner(db, registry, zaptest.NewLogger(t))

	migrator := db.Migrator()
	assert.False(t, migrator.HasTable(&schema.UserSchema{}))
	assert.False(t, migrator.HasTable(&schema.FruitSchema{}))
}

func TestRunner_FailedStepShortCircuits(t *testing.T) {
	db := setupTestDB(t)
	registry := setupRegistry(t)
	runner := NewRunner(db, registry, zaptest.NewLogger(t))

	// Close the underlying connection so the verify step fails.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	err = runner.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), StepVerify)
}

func TestUserSeeds_Literals(t *testing.T) {
	seeds := UserSeeds()
	require.Len(t, seeds, 2)
	assert.Equal(t, schema.UserSchema{FirstName: "Bob", LastName: "Doe", Email: "bob@example.com"}, seeds[0])
	assert.Equal(t, schema.UserSchema{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"}, seeds[1])
}

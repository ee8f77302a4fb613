// Package bootstrap resets and seeds the database.
//
// The sequence is a strict ordering contract: verify the connection, drop
// every declared table, recreate the tables from the schema registry, then
// insert the seed rows. Each step runs only after the previous one
// completed; the first failure aborts the rest and is returned to the
// caller with the failing step's name.
package bootstrap

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"user-seed-service/internal/schema"
)

// Step names, in execution order.
const (
	StepVerify = "verify"
	StepDrop   = "drop"
	StepSync   = "sync"
	StepSeed   = "seed"
)

// Runner executes the bootstrap sequence against a database handle.
type Runner struct {
	db       *gorm.DB
	registry *schema.Registry
	log      *zap.Logger
	observer func(step string)
}

// Option configures a Runner.
type Option func(*Runner)

// WithStepObserver registers a callback invoked with each step's name
// just before the step runs. Used by tests to assert ordering.
func WithStepObserver(fn func(step string)) Option {
	return func(r *Runner) {
		r.observer = fn
	}
}

// NewRunner creates a bootstrap runner for the given handle and registry.
func NewRunner(db *gorm.DB, registry *schema.Registry, log *zap.Logger, opts ...Option) *Runner {
	r := &Runner{
		db:       db,
		registry: registry,
		log:      log,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes verify, drop, sync and seed in order. The first failing
// step short-circuits the remainder and its error is returned wrapped
// with the step name.
func (r *Runner) Run(ctx context.Context) error {
	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{StepVerify, r.verify},
		{StepDrop, r.drop},
		{StepSync, r.sync},
		{StepSeed, r.seed},
	}

	for _, step := range steps {
		if r.observer != nil {
			r.observer(step.name)
		}
		if err := step.fn(ctx); err != nil {
			r.log.Error("bootstrap step failed", zap.String("step", step.name), zap.Error(err))
			return fmt.Errorf("bootstrap step %q failed: %w", step.name, err)
		}
	}

	r.log.Info("bootstrap sequence complete",
		zap.Int("entities", len(r.registry.Descriptors())),
	)
	return nil
}

// verify performs a round-trip check against the database.
func (r *Runner) verify(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("connection check failed: %w", err)
	}

	r.log.Info("database connection verified")
	return nil
}

// drop removes every declared table. Tables that do not exist yet are
// skipped, so a fresh database drops nothing.
func (r *Runner) drop(ctx context.Context) error {
	migrator := r.db.WithContext(ctx).Migrator()

	for _, d := range r.registry.Descriptors() {
		if !migrator.HasTable(d.Model) {
			continue
		}
		if err := migrator.DropTable(d.Model); err != nil {
			return fmt.Errorf("failed to drop table %q: %w", d.Table, err)
		}
		r.log.Info("table dropped", zap.String("entity", d.Entity), zap.String("table", d.Table))
	}

	return nil
}

// sync recreates the tables from the registered schemas.
func (r *Runner) sync(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(r.registry.Models()...); err != nil {
		return fmt.Errorf("failed to sync schemas: %w", err)
	}

	for _, d := range r.registry.Descriptors() {
		r.log.Info("table created", zap.String("entity", d.Entity), zap.String("table", d.Table))
	}
	return nil
}

// seed inserts the fixed seed rows for every entity that has them.
func (r *Runner) seed(ctx context.Context) error {
	users := UserSeeds()
	if err := r.db.WithContext(ctx).Create(&users).Error; err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	r.log.Info("users seeded", zap.Int("count", len(users)))

	fruits := FruitSeeds()
	if err := r.db.WithContext(ctx).Create(&fruits).Error; err != nil {
		return fmt.Errorf("failed to seed fruits: %w", err)
	}
	r.log.Info("fruits seeded", zap.Int("count", len(fruits)))

	return nil
}

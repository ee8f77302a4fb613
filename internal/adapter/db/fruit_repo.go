package db

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"user-seed-service/internal/domain/fruit"
	"user-seed-service/internal/schema"
)

// FruitRepo implements the fruit Repository interface using GORM.
type FruitRepo struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewFruitRepo creates a new instance of FruitRepo.
func NewFruitRepo(db *gorm.DB, log *zap.Logger) *FruitRepo {
	return &FruitRepo{db: db, log: log}
}

// Create inserts a new fruit into the database.
func (r *FruitRepo) Create(ctx context.Context, f *fruit.Fruit) (int64, error) {
	if f == nil {
		return 0, errors.New("fruit cannot be nil")
	}

	model := schema.FruitSchema{
		Name:  f.Name,
		Color: f.Color,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create fruit in db", zap.Error(err), zap.String("name", f.Name))
		return 0, fmt.Errorf("failed to create fruit: %w", err)
	}

	r.log.Info("fruit created in db", zap.Int64("id", model.ID))
	return model.ID, nil
}

// Update updates an existing fruit in the database.
func (r *FruitRepo) Update(ctx context.Context, f *fruit.Fruit) (int64, error) {
	if f == nil {
		return 0, errors.New("fruit cannot be nil")
	}

	model := schema.FruitSchema{
		ID:    f.ID,
		Name:  f.Name,
		Color: f.Color,
	}

	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		r.log.Error("failed to update fruit in db", zap.Error(err), zap.Int64("id", f.ID))
		return 0, fmt.Errorf("failed to update fruit: %w", err)
	}

	r.log.Info("fruit updated in db", zap.Int64("id", model.ID))
	return model.ID, nil
}

// Delete removes a fruit from the database by ID.
func (r *FruitRepo) Delete(ctx context.Context, id int64) (int64, error) {
	if id <= 0 {
		return 0, errors.New("invalid fruit id")
	}

	if err := r.db.WithContext(ctx).Delete(&schema.FruitSchema{}, id).Error; err != nil {
		r.log.Error("failed to delete fruit in db", zap.Error(err), zap.Int64("id", id))
		return 0, fmt.Errorf("failed to delete fruit: %w", err)
	}

	r.log.Info("fruit deleted in db", zap.Int64("id", id))
	return id, nil
}

// GetByID retrieves a fruit from the database by its unique ID.
func (r *FruitRepo) GetByID(ctx context.Context, id int64) (*fruit.Fruit, error) {
	var model schema.FruitSchema
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Warn("fruit not found", zap.Int64("id", id))
			return nil, fmt.Errorf("fruit not found: id=%d", id)
		}
		r.log.Error("failed to get fruit from db", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to get fruit: %w", err)
	}

	return &fruit.Fruit{ID: model.ID, Name: model.Name, Color: model.Color}, nil
}

// List retrieves all fruits from the database.
func (r *FruitRepo) List(ctx context.Context) ([]fruit.Fruit, error) {
	var models []schema.FruitSchema
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		r.log.Error("failed to list fruits from db", zap.Error(err))
		return nil, fmt.Errorf("failed to list fruits: %w", err)
	}

	fruits := make([]fruit.Fruit, len(models))
	for i, model := range models {
		fruits[i] = fruit.Fruit{ID: model.ID, Name: model.Name, Color: model.Color}
	}

	return fruits, nil
}

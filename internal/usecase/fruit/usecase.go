package fruit

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domain "user-seed-service/internal/domain/fruit"
	apperrors "user-seed-service/pkg/errors"
)

// Repository defines the interface for fruit data access operations.
type Repository interface {
	Create(ctx context.Context, f *domain.Fruit) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Fruit, error)
	Update(ctx context.Context, f *domain.Fruit) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	List(ctx context.Context) ([]domain.Fruit, error)
}

// Usecase defines the interface for fruit business logic operations.
type Usecase interface {
	CreateFruit(ctx context.Context, in CreateFruitRequest) (*CreateFruitResponse, error)
	UpdateFruit(ctx context.Context, in UpdateFruitRequest) (*UpdateFruitResponse, error)
	DeleteFruit(ctx context.Context, id int64) error
	GetFruit(ctx context.Context, id int64) (*Fruit, error)
	ListFruits(ctx context.Context) ([]Fruit, error)
}

// CreateFruitRequest represents the request payload for creating a fruit.
type CreateFruitRequest struct {
	Name  string `validate:"required,min=1,max=100"`
	Color string `validate:"omitempty,max=50"`
}

// CreateFruitResponse represents the response payload after creating a fruit.
type CreateFruitResponse struct {
	ID int64
}

// UpdateFruitRequest represents the request payload for updating a fruit.
type UpdateFruitRequest struct {
	ID    int64  `validate:"required"`
	Name  string `validate:"omitempty,min=1,max=100"`
	Color string `validate:"omitempty,max=50"`
}

// UpdateFruitResponse represents the response payload after updating a fruit.
type UpdateFruitResponse struct {
	ID int64
}

// Fruit represents a fruit DTO for API responses.
type Fruit struct {
	ID    int64
	Name  string
	Color string
}

// Service implements the business logic for fruit management operations.
type Service struct {
	repo     Repository
	log      *zap.Logger
	validate *validator.Validate
}

// New creates a new instance of Service with the provided repository and logger.
func New(r Repository, log *zap.Logger) *Service {
	return &Service{repo: r, log: log, validate: validator.New()}
}

// CreateFruit creates a new fruit after validating the request.
func (s *Service) CreateFruit(ctx context.Context, in CreateFruitRequest) (*CreateFruitResponse, error) {
	s.log.Info("creating fruit", zap.String("name", in.Name))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, apperrors.NewValidationError("", err.Error())
	}

	id, err := s.repo.Create(ctx, &domain.Fruit{Name: in.Name, Color: in.Color})
	if err != nil {
		s.log.Error("failed to create fruit", zap.Error(err))
		return nil, err
	}
	return &CreateFruitResponse{ID: id}, nil
}

// UpdateFruit updates an existing fruit after validating the request.
func (s *Service) UpdateFruit(ctx context.Context, in UpdateFruitRequest) (*UpdateFruitResponse, error) {
	s.log.Info("updating fruit", zap.Int64("id", in.ID))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, apperrors.NewValidationError("", err.Error())
	}

	id, err := s.repo.Update(ctx, &domain.Fruit{ID: in.ID, Name: in.Name, Color: in.Color})
	if err != nil {
		s.log.Error("failed to update fruit", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}
	return &UpdateFruitResponse{ID: id}, nil
}

// DeleteFruit deletes a fruit after validating the fruit ID.
func (s *Service) DeleteFruit(ctx context.Context, id int64) error {
	s.log.Info("deleting fruit", zap.Int64("id", id))

	if id <= 0 {
		return apperrors.NewValidationError("id", "invalid fruit id")
	}

	if _, err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete fruit", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

// GetFruit retrieves a fruit by ID.
func (s *Service) GetFruit(ctx context.Context, id int64) (*Fruit, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("id", "invalid fruit id")
	}

	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Warn("failed to get fruit", zap.Int64("id", id), zap.Error(err))
		return nil, apperrors.NewNotFoundError("fruit", "")
	}

	return &Fruit{ID: f.ID, Name: f.Name, Color: f.Color}, nil
}

// ListFruits retrieves all fruits.
func (s *Service) ListFruits(ctx context.Context) ([]Fruit, error) {
	fruits, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list fruits", zap.Error(err))
		return nil, err
	}

	out := make([]Fruit, len(fruits))
	for i, f := range fruits {
		out[i] = Fruit{ID: f.ID, Name: f.Name, Color: f.Color}
	}
	return out, nil
}

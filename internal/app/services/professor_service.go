package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sid77x/profhub/internal/app/models"
	"github.com/sid77x/profhub/internal/app/models/dto"
	"github.com/sid77x/profhub/internal/app/repositories"
	"github.com/sid77x/profhub/internal/pkg/apperrors"
)

// ProfessorService handles professor profile operations
type ProfessorService struct {
	professors ProfessorStore
}

// NewProfessorService creates a new professor service
func NewProfessorService(professors ProfessorStore) *ProfessorService {
	return &ProfessorService{professors: professors}
}

// GetByID retrieves a professor profile
func (s *ProfessorService) GetByID(ctx context.Context, id string) (*models.Professor, error) {
	if err := validateID(id, "professor"); err != nil {
		return nil, err
	}

	professor, err := s.professors.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrProfessorNotFound
		}
		return nil, fmt.Errorf("error getting professor: %w", err)
	}

	return professor, nil
}

// List retrieves all professors
func (s *ProfessorService) List(ctx context.Context) ([]*models.Professor, error) {
	return s.professors.GetAll(ctx)
}

// Update applies a partial profile update. An empty request is rejected.
func (s *ProfessorService) Update(ctx context.Context, id string, req *dto.UpdateProfessorRequest) (*models.Professor, error) {
	if err := validateID(id, "professor"); err != nil {
		return nil, err
	}
	if req.IsEmpty() {
		return nil, apperrors.NewValidationError("no fields to update")
	}

	professor, err := s.professors.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrProfessorNotFound
		}
		return nil, fmt.Errorf("error updating professor: %w", err)
	}

	return professor, nil
}

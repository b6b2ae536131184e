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

// GigService handles gig posting and lifecycle operations
type GigService struct {
	gigs GigStore
}

// NewGigService creates a new gig service
func NewGigService(gigs GigStore) *GigService {
	return &GigService{gigs: gigs}
}

// Create posts a new gig. Status is always forced to open.
func (s *GigService) Create(ctx context.Context, req *dto.CreateGigRequest) (*models.Gig, error) {
	if err := validateID(req.ProfessorID, "professor"); err != nil {
		return nil, err
	}

	gig := &models.Gig{
		ProfessorID:     req.ProfessorID,
		Title:           req.Title,
		Description:     req.Description,
		AreaOfStudy:     req.AreaOfStudy,
		Technologies:    req.Technologies,
		TargetType:      req.TargetType,
		PaperType:       req.PaperType,
		Timeline:        req.Timeline,
		YearRequirement: req.YearRequirement,
		CGPARequirement: req.CGPARequirement,
		Funded:          req.Funded,
		CandidateCount:  req.CandidateCount,
		Status:          models.GigStatusOpen,
	}

	if err := s.gigs.Create(ctx, gig); err != nil {
		return nil, fmt.Errorf("error creating gig: %w", err)
	}

	return gig, nil
}

// GetByID retrieves a gig
func (s *GigService) GetByID(ctx context.Context, id string) (*models.Gig, error) {
	if err := validateID(id, "gig"); err != nil {
		return nil, err
	}

	gig, err := s.gigs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrGigNotFound
		}
		return nil, fmt.Errorf("error getting gig: %w", err)
	}

	return gig, nil
}

// List retrieves gigs with optional status and professor filters
func (s *GigService) List(ctx context.Context, status, professorID string) ([]*models.Gig, error) {
	filter := repositories.GigFilter{}

	if status != "" {
		gigStatus := models.GigStatus(status)
		if !models.IsValidGigStatus(gigStatus) {
			return nil, apperrors.NewValidationError("status must be open, closed, or on-hold")
		}
		filter.Status = &gigStatus
	}
	if professorID != "" {
		if err := validateID(professorID, "professor"); err != nil {
			return nil, err
		}
		filter.ProfessorID = &professorID
	}

	return s.gigs.List(ctx, filter)
}

// ListByProfessor retrieves all gigs posted by one professor
func (s *GigService) ListByProfessor(ctx context.Context, professorID string) ([]*models.Gig, error) {
	if err := validateID(professorID, "professor"); err != nil {
		return nil, err
	}

	return s.gigs.List(ctx, repositories.GigFilter{ProfessorID: &professorID})
}

// Update applies a partial update. An empty request is rejected.
func (s *GigService) Update(ctx context.Context, id string, req *dto.UpdateGigRequest) (*models.Gig, error) {
	if err := validateID(id, "gig"); err != nil {
		return nil, err
	}
	if req.IsEmpty() {
		return nil, apperrors.NewValidationError("no fields to update")
	}

	gig, err := s.gigs.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrGigNotFound
		}
		return nil, fmt.Errorf("error updating gig: %w", err)
	}

	return gig, nil
}

// Close marks a gig closed, optionally recording where the work was published
func (s *GigService) Close(ctx context.Context, id string, req *dto.CloseGigRequest) (*models.Gig, error) {
	if err := validateID(id, "gig"); err != nil {
		return nil, err
	}

	gig, err := s.gigs.Close(ctx, id, req.PublicationLink, req.PublicationVenue)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrGigNotFound
		}
		return nil, fmt.Errorf("error closing gig: %w", err)
	}

	return gig, nil
}

// Hold pauses a gig with a reason
func (s *GigService) Hold(ctx context.Context, id, pausedReason string) (*models.Gig, error) {
	if err := validateID(id, "gig"); err != nil {
		return nil, err
	}

	gig, err := s.gigs.Hold(ctx, id, pausedReason)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrGigNotFound
		}
		return nil, fmt.Errorf("error putting gig on hold: %w", err)
	}

	return gig, nil
}

// Activate reopens an on-hold gig
func (s *GigService) Activate(ctx context.Context, id string) (*models.Gig, error) {
	if err := validateID(id, "gig"); err != nil {
		return nil, err
	}

	gig, err := s.gigs.Activate(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrGigNotFound
		}
		return nil, fmt.Errorf("error activating gig: %w", err)
	}

	return gig, nil
}

// Delete removes a gig
func (s *GigService) Delete(ctx context.Context, id string) error {
	if err := validateID(id, "gig"); err != nil {
		return err
	}

	if err := s.gigs.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrGigNotFound
		}
		return fmt.Errorf("error deleting gig: %w", err)
	}

	return nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sid77x/profhub/internal/app/models"
	"github.com/sid77x/profhub/internal/app/models/dto"
	"github.com/sid77x/profhub/internal/app/repositories"
	"github.com/sid77x/profhub/internal/pkg/apperrors"
	"github.com/sid77x/profhub/internal/pkg/logger"
)

// notifier is the slice of NotificationService the application lifecycle needs
type notifier interface {
	NotifyNewApplication(ctx context.Context, professorID, gigID, gigTitle string) error
	NotifyStatusChange(ctx context.Context, studentID, gigID, gigTitle string, status models.ApplicationStatus) error
}

// ApplicationService manages the pending -> accepted/rejected lifecycle of
// applications and triggers the notification side effects
type ApplicationService struct {
	applications ApplicationStore
	gigs         GigStore
	students     StudentStore
	notifier     notifier
}

// NewApplicationService creates a new application service
func NewApplicationService(applications ApplicationStore, gigs GigStore, students StudentStore, notifier notifier) *ApplicationService {
	return &ApplicationService{
		applications: applications,
		gigs:         gigs,
		students:     students,
		notifier:     notifier,
	}
}

// Submit persists a new application and notifies the gig's professor.
//
// Status is always forced to pending and applied_at to the submission time,
// whatever the client sent. A missing gig does not fail the submission: the
// primary write must succeed even when the notification side effect cannot
// be computed, so the alert is silently skipped.
func (s *ApplicationService) Submit(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error) {
	if err := validateID(req.GigID, "gig"); err != nil {
		return nil, err
	}
	if req.StudentID != nil {
		if err := validateID(*req.StudentID, "student"); err != nil {
			return nil, err
		}
	}

	application := &models.Application{
		GigID:        req.GigID,
		StudentID:    req.StudentID,
		StudentName:  req.StudentName,
		StudentEmail: req.StudentEmail,
		StudentYear:  req.StudentYear,
		StudentCGPA:  req.StudentCGPA,
		ResumeLink:   req.ResumeLink,
		CoverLetter:  req.CoverLetter,
		Status:       models.ApplicationStatusPending,
		AppliedAt:    time.Now().UTC(),
	}

	if err := s.applications.Create(ctx, application); err != nil {
		return nil, fmt.Errorf("error submitting application: %w", err)
	}

	gig, err := s.gigs.GetByID(ctx, application.GigID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.Warn().
				Str("gigID", application.GigID).
				Str("applicationID", application.ID).
				Msg("Gig missing during submission, skipping professor notification")
			return application, nil
		}
		return nil, fmt.Errorf("error loading gig for notification: %w", err)
	}

	if err := s.notifier.NotifyNewApplication(ctx, gig.ProfessorID, gig.ID, gig.Title); err != nil {
		return nil, err
	}

	return application, nil
}

// UpdateStatus transitions an application into any of the three recognized
// states. The prior record is fetched first to recover the student and gig
// references for the notification; the two steps are not atomic.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id, status string) (*models.Application, error) {
	if err := validateID(id, "application"); err != nil {
		return nil, err
	}

	newStatus := models.ApplicationStatus(status)
	if !models.IsValidApplicationStatus(newStatus) {
		return nil, apperrors.NewValidationError("status must be pending, accepted, or rejected")
	}

	prior, err := s.applications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error loading application: %w", err)
	}

	updated, err := s.applications.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error updating application status: %w", err)
	}

	if newStatus == models.ApplicationStatusAccepted || newStatus == models.ApplicationStatusRejected {
		if err := s.notifyDecision(ctx, prior, newStatus); err != nil {
			return nil, err
		}
	}

	return updated, nil
}

// notifyDecision alerts the student behind an accepted/rejected application.
// A missing gig or an application without a student reference suppresses the
// alert only; the status update itself has already succeeded.
func (s *ApplicationService) notifyDecision(ctx context.Context, prior *models.Application, status models.ApplicationStatus) error {
	if prior.StudentID == nil {
		logger.Warn().
			Str("applicationID", prior.ID).
			Msg("Application has no student reference, skipping status notification")
		return nil
	}

	gig, err := s.gigs.GetByID(ctx, prior.GigID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.Warn().
				Str("gigID", prior.GigID).
				Str("applicationID", prior.ID).
				Msg("Gig missing during status update, skipping student notification")
			return nil
		}
		return fmt.Errorf("error loading gig for notification: %w", err)
	}

	return s.notifier.NotifyStatusChange(ctx, *prior.StudentID, gig.ID, gig.Title, status)
}

// HasApplied reports whether an application already exists for the
// (gig, student) pair, returning the existing record if so. Pure read;
// submission does not enforce this as a write-time constraint.
func (s *ApplicationService) HasApplied(ctx context.Context, gigID, studentID string) (bool, *models.Application, error) {
	if err := validateID(gigID, "gig"); err != nil {
		return false, nil, err
	}
	if err := validateID(studentID, "student"); err != nil {
		return false, nil, err
	}

	application, err := s.applications.FindByGigAndStudent(ctx, gigID, studentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return false, nil, nil
		}
		return false, nil, fmt.Errorf("error checking existing application: %w", err)
	}

	return true, application, nil
}

// ListByGig retrieves all applications for a gig
func (s *ApplicationService) ListByGig(ctx context.Context, gigID string) ([]*models.Application, error) {
	if err := validateID(gigID, "gig"); err != nil {
		return nil, err
	}
	return s.applications.ListByGig(ctx, gigID)
}

// ListByStudent retrieves a student's applications with gig summaries.
// Legacy rows without a student reference are matched by email.
func (s *ApplicationService) ListByStudent(ctx context.Context, studentID string) ([]*models.ApplicationWithGig, error) {
	if err := validateID(studentID, "student"); err != nil {
		return nil, err
	}

	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error loading student: %w", err)
	}

	return s.applications.ListByStudent(ctx, student.ID, student.Email)
}

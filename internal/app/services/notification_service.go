package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sid77x/profhub/internal/app/models"
	"github.com/sid77x/profhub/internal/app/repositories"
	"github.com/sid77x/profhub/internal/pkg/apperrors"
	"github.com/sid77x/profhub/internal/pkg/logger"
)

// NotificationService delivers alerts to professors and students.
//
// New-application alerts are coalesced: while a professor's notification for
// a gig stays unread, further submissions to that gig increment its count
// instead of creating more rows. Once the notification is read it is never
// reused; the next submission starts a fresh one. Status-change alerts are
// never coalesced so that every decision stays individually visible.
type NotificationService struct {
	store NotificationStore
}

// NewNotificationService creates a new notification service
func NewNotificationService(store NotificationStore) *NotificationService {
	return &NotificationService{store: store}
}

// NotifyNewApplication records a submission against a gig for its owning
// professor, coalescing with any unread notification for the same gig
func (s *NotificationService) NotifyNewApplication(ctx context.Context, professorID, gigID, gigTitle string) error {
	notification, err := s.store.UpsertNewApplication(ctx, professorID, gigID, gigTitle)
	if err != nil {
		return fmt.Errorf("error notifying professor of new application: %w", err)
	}

	logger.Debug().
		Str("professorID", professorID).
		Str("gigID", gigID).
		Interface("count", notification.Metadata[models.MetaKeyCount]).
		Msg("New-application notification written")

	return nil
}

// NotifyStatusChange alerts a student that their application was decided.
// A transition back to pending (or any unrecognized value) is a deliberate
// no-op, not an error.
func (s *NotificationService) NotifyStatusChange(ctx context.Context, studentID, gigID, gigTitle string, status models.ApplicationStatus) error {
	var notification *models.Notification
	link := fmt.Sprintf("/student/gigs/%s", gigID)

	switch status {
	case models.ApplicationStatusAccepted:
		notification = &models.Notification{
			UserID:   studentID,
			UserType: models.RoleStudent,
			Title:    "Application Accepted",
			Message:  fmt.Sprintf("Your application for %s has been accepted!", gigTitle),
			Type:     models.NotificationTypeSuccess,
			Link:     &link,
			Metadata: map[string]interface{}{
				models.MetaKeyGigID:   gigID,
				models.MetaKeySubtype: models.SubtypeApplicationAccepted,
			},
		}
	case models.ApplicationStatusRejected:
		notification = &models.Notification{
			UserID:   studentID,
			UserType: models.RoleStudent,
			Title:    "Application Update",
			Message:  fmt.Sprintf("Your application for %s was not selected this time.", gigTitle),
			Type:     models.NotificationTypeWarning,
			Link:     &link,
			Metadata: map[string]interface{}{
				models.MetaKeyGigID:   gigID,
				models.MetaKeySubtype: models.SubtypeApplicationRejected,
			},
		}
	default:
		return nil
	}

	if err := s.store.Insert(ctx, notification); err != nil {
		return fmt.Errorf("error notifying student of status change: %w", err)
	}

	return nil
}

// ListByUser retrieves a user's notifications, most recent first
func (s *NotificationService) ListByUser(ctx context.Context, userID string) ([]*models.Notification, error) {
	if err := validateID(userID, "user"); err != nil {
		return nil, err
	}
	return s.store.ListByUser(ctx, userID)
}

// UnreadCount returns the number of unread notifications for a user
func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	if err := validateID(userID, "user"); err != nil {
		return 0, err
	}
	return s.store.CountUnread(ctx, userID)
}

// MarkRead marks a single notification as read
func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	if err := validateID(id, "notification"); err != nil {
		return err
	}

	if err := s.store.MarkRead(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return err
	}

	return nil
}

// MarkAllRead marks every unread notification of a user as read
func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	if err := validateID(userID, "user"); err != nil {
		return 0, err
	}
	return s.store.MarkAllRead(ctx, userID)
}

// Delete removes a notification
func (s *NotificationService) Delete(ctx context.Context, id string) error {
	if err := validateID(id, "notification"); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return err
	}

	return nil
}

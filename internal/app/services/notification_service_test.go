package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sid77x/profhub/internal/app/models"
	"github.com/sid77x/profhub/internal/app/repositories"
	"github.com/sid77x/profhub/internal/pkg/apperrors"
)

// fakeNotificationStore reproduces the coalescing contract of the Postgres
// repository in memory: one unread new-applications row per (user, gig).
type fakeNotificationStore struct {
	notifications []*models.Notification
	upsertErr     error
	insertErr     error
}

func (f *fakeNotificationStore) UpsertNewApplication(_ context.Context, professorID, gigID, gigTitle string) (*models.Notification, error) {
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}

	for _, n := range f.notifications {
		if n.UserID == professorID && !n.Read &&
			n.Metadata[models.MetaKeyGigID] == gigID &&
			n.Metadata[models.MetaKeySubtype] == models.SubtypeNewApplications {
			count := n.Metadata[models.MetaKeyCount].(int) + 1
			n.Metadata[models.MetaKeyCount] = count
			n.Message = fmt.Sprintf("You have %d new applications for %s", count, gigTitle)
			n.CreatedAt = time.Now().UTC()
			return n, nil
		}
	}

	link := fmt.Sprintf("/professor/gigs/%s/applications", gigID)
	n := &models.Notification{
		ID:       uuid.New().String(),
		UserID:   professorID,
		UserType: models.RoleProfessor,
		Title:    "New Application",
		Message:  fmt.Sprintf("You have 1 new application for %s", gigTitle),
		Type:     models.NotificationTypeInfo,
		Link:     &link,
		Metadata: map[string]interface{}{
			models.MetaKeyGigID:   gigID,
			models.MetaKeySubtype: models.SubtypeNewApplications,
			models.MetaKeyCount:   1,
		},
		CreatedAt: time.Now().UTC(),
	}
	f.notifications = append(f.notifications, n)
	return n, nil
}

func (f *fakeNotificationStore) Insert(_ context.Context, notification *models.Notification) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	notification.ID = uuid.New().String()
	notification.CreatedAt = time.Now().UTC()
	f.notifications = append(f.notifications, notification)
	return nil
}

func (f *fakeNotificationStore) ListByUser(_ context.Context, userID string) ([]*models.Notification, error) {
	var out []*models.Notification
	for _, n := range f.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationStore) CountUnread(_ context.Context, userID string) (int64, error) {
	var count int64
	for _, n := range f.notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationStore) MarkRead(_ context.Context, id string) error {
	for _, n := range f.notifications {
		if n.ID == id {
			n.Read = true
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (f *fakeNotificationStore) MarkAllRead(_ context.Context, userID string) (int64, error) {
	var modified int64
	for _, n := range f.notifications {
		if n.UserID == userID && !n.Read {
			n.Read = true
			modified++
		}
	}
	return modified, nil
}

func (f *fakeNotificationStore) Delete(_ context.Context, id string) error {
	for i, n := range f.notifications {
		if n.ID == id {
			f.notifications = append(f.notifications[:i], f.notifications[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func TestNotifyNewApplicationCoalescesWhileUnread(t *testing.T) {
	store := &fakeNotificationStore{}
	service := NewNotificationService(store)
	ctx := context.Background()

	professorID := uuid.New().String()
	gigID := uuid.New().String()

	require.NoError(t, service.NotifyNewApplication(ctx, professorID, gigID, "Quantum Sensing"))
	require.NoError(t, service.NotifyNewApplication(ctx, professorID, gigID, "Quantum Sensing"))
	require.NoError(t, service.NotifyNewApplication(ctx, professorID, gigID, "Quantum Sensing"))

	require.Len(t, store.notifications, 1)

	n := store.notifications[0]
	assert.Equal(t, professorID, n.UserID)
	assert.Equal(t, models.RoleProfessor, n.UserType)
	assert.Equal(t, "New Application", n.Title)
	assert.Equal(t, "You have 3 new applications for Quantum Sensing", n.Message)
	assert.Equal(t, models.NotificationTypeInfo, n.Type)
	assert.Equal(t, 3, n.Metadata[models.MetaKeyCount])
	require.NotNil(t, n.Link)
	assert.Equal(t, fmt.Sprintf("/professor/gigs/%s/applications", gigID), *n.Link)
}

func TestNotifyNewApplicationStartsFreshAfterRead(t *testing.T) {
	store := &fakeNotificationStore{}
	service := NewNotificationService(store)
	ctx := context.Background()

	professorID := uuid.New().String()
	gigID := uuid.New().String()

	require.NoError(t, service.NotifyNewApplication(ctx, professorID, gigID, "NLP Survey"))
	require.NoError(t, service.MarkRead(ctx, store.notifications[0].ID))

	require.NoError(t, service.NotifyNewApplication(ctx, professorID, gigID, "NLP Survey"))

	require.Len(t, store.notifications, 2)
	assert.True(t, store.notifications[0].Read)
	assert.False(t, store.notifications[1].Read)
	assert.Equal(t, 1, store.notifications[1].Metadata[models.MetaKeyCount])
	assert.Equal(t, "You have 1 new application for NLP Survey", store.notifications[1].Message)
}

func TestNotifyNewApplicationSeparateGigsDoNotCoalesce(t *testing.T) {
	store := &fakeNotificationStore{}
	service := NewNotificationService(store)
	ctx := context.Background()

	professorID := uuid.New().String()

	require.NoError(t, service.NotifyNewApplication(ctx, professorID, uuid.New().String(), "Gig A"))
	require.NoError(t, service.NotifyNewApplication(ctx, professorID, uuid.New().String(), "Gig B"))

	assert.Len(t, store.notifications, 2)
}

func TestNotifyStatusChangeAccepted(t *testing.T) {
	store := &fakeNotificationStore{}
	service := NewNotificationService(store)

	studentID := uuid.New().String()
	gigID := uuid.New().String()

	err := service.NotifyStatusChange(context.Background(), studentID, gigID, "Robotics RA", models.ApplicationStatusAccepted)
	require.NoError(t, err)

	require.Len(t, store.notifications, 1)
	n := store.notifications[0]
	assert.Equal(t, studentID, n.UserID)
	assert.Equal(t, models.RoleStudent, n.UserType)
	assert.Equal(t, "Application Accepted", n.Title)
	assert.Equal(t, "Your application for Robotics RA has been accepted!", n.Message)
	assert.Equal(t, models.NotificationTypeSuccess, n.Type)
	assert.Equal(t, models.SubtypeApplicationAccepted, n.Metadata[models.MetaKeySubtype])
	require.NotNil(t, n.Link)
	assert.Equal(t, fmt.Sprintf("/student/gigs/%s", gigID), *n.Link)
}

func TestNotifyStatusChangeRejected(t *testing.T) {
	store := &fakeNotificationStore{}
	service := NewNotificationService(store)

	err := service.NotifyStatusChange(context.Background(), uuid.New().String(), uuid.New().String(), "Robotics RA", models.ApplicationStatusRejected)
	require.NoError(t, err)

	require.Len(t, store.notifications, 1)
	n := store.notifications[0]
	assert.Equal(t, "Application Update", n.Title)
	assert.Equal(t, "Your application for Robotics RA was not selected this time.", n.Message)
	assert.Equal(t, models.NotificationTypeWarning, n.Type)
	assert.Equal(t, models.SubtypeApplicationRejected, n.Metadata[models.MetaKeySubtype])
}

func TestNotifyStatusChangePendingIsNoOp(t *testing.T) {
	store := &fakeNotificationStore{}
	service := NewNotificationService(store)

	err := service.NotifyStatusChange(context.Background(), uuid.New().String(), uuid.New().String(), "Robotics RA", models.ApplicationStatusPending)
	require.NoError(t, err)
	assert.Empty(t, store.notifications)
}

func TestStatusChangeNotificationsNeverCoalesce(t *testing.T) {
	store := &fakeNotificationStore{}
	service := NewNotificationService(store)
	ctx := context.Background()

	studentID := uuid.New().String()
	gigID := uuid.New().String()

	require.NoError(t, service.NotifyStatusChange(ctx, studentID, gigID, "Gig", models.ApplicationStatusRejected))
	require.NoError(t, service.NotifyStatusChange(ctx, studentID, gigID, "Gig", models.ApplicationStatusAccepted))

	assert.Len(t, store.notifications, 2)
}

func TestMarkReadUnknownNotification(t *testing.T) {
	service := NewNotificationService(&fakeNotificationStore{})

	err := service.MarkRead(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, apperrors.ErrNotificationNotFound)
}

func TestMarkAllReadReportsModifiedCount(t *testing.T) {
	store := &fakeNotificationStore{}
	service := NewNotificationService(store)
	ctx := context.Background()

	userID := uuid.New().String()
	require.NoError(t, service.NotifyStatusChange(ctx, userID, uuid.New().String(), "A", models.ApplicationStatusAccepted))
	require.NoError(t, service.NotifyStatusChange(ctx, userID, uuid.New().String(), "B", models.ApplicationStatusRejected))

	modified, err := service.MarkAllRead(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), modified)

	count, err := service.UnreadCount(ctx, userID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestNotificationIDsAreValidated(t *testing.T) {
	service := NewNotificationService(&fakeNotificationStore{})
	ctx := context.Background()

	_, err := service.ListByUser(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	err = service.MarkRead(ctx, "nope")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	err = service.Delete(ctx, "")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

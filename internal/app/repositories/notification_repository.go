package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sid77x/profhub/internal/app/models"
)

// Notification error types
var ErrNotificationNotFound = ErrNotFound

const notificationColumns = "id, user_id, user_type, title, message, type, read, link, metadata, created_at"

// NotificationRepository handles notification database operations
type NotificationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanNotification(row pgx.Row) (*models.Notification, error) {
	n := &models.Notification{}
	err := row.Scan(
		&n.ID,
		&n.UserID,
		&n.UserType,
		&n.Title,
		&n.Message,
		&n.Type,
		&n.Read,
		&n.Link,
		&n.Metadata,
		&n.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// upsertNewApplicationSQL coalesces repeat submissions into one unread
// notification per (professor, gig). The partial unique index
// notifications_unread_new_applications_idx makes the insert-or-increment a
// single atomic statement, so two near-simultaneous submissions cannot both
// insert. On conflict the stored count is incremented, the message rewritten
// and created_at refreshed, which resets the recipient's unread-since view.
const upsertNewApplicationSQL = `
	INSERT INTO notifications (id, user_id, user_type, title, message, type, read, link, metadata, created_at)
	VALUES ($1, $2, 'professor', 'New Application',
	        'You have 1 new application for ' || $3::text,
	        'info', FALSE, $4,
	        jsonb_build_object('gig_id', $5::text, 'notification_type', 'new_applications', 'count', 1),
	        $6)
	ON CONFLICT (user_id, (metadata->>'gig_id'))
	WHERE read = FALSE AND metadata->>'notification_type' = 'new_applications'
	DO UPDATE SET
		metadata   = jsonb_set(notifications.metadata, '{count}',
		             to_jsonb(COALESCE((notifications.metadata->>'count')::int, 1) + 1)),
		message    = 'You have ' || (COALESCE((notifications.metadata->>'count')::int, 1) + 1)::text
		             || ' new applications for ' || $3::text,
		created_at = EXCLUDED.created_at
	RETURNING ` + notificationColumns

// UpsertNewApplication records a new submission against a gig for its owning
// professor. Exactly one write: either a fresh unread notification with
// count = 1 or an increment of the existing unread one.
func (r *NotificationRepository) UpsertNewApplication(ctx context.Context, professorID, gigID, gigTitle string) (*models.Notification, error) {
	link := fmt.Sprintf("/professor/gigs/%s/applications", gigID)

	notification, err := scanNotification(r.db.QueryRow(ctx, upsertNewApplicationSQL,
		uuid.New().String(), professorID, gigTitle, link, gigID, time.Now().UTC()))
	if err != nil {
		return nil, fmt.Errorf("error upserting new-application notification: %w", err)
	}

	return notification, nil
}

// Insert stores a notification as-is. Used for status-change alerts, which
// are never coalesced.
func (r *NotificationRepository) Insert(ctx context.Context, notification *models.Notification) error {
	notification.ID = uuid.New().String()
	notification.CreatedAt = time.Now().UTC()

	sql, args, err := r.sb.Insert("notifications").
		Columns("id", "user_id", "user_type", "title", "message", "type", "read", "link", "metadata", "created_at").
		Values(notification.ID, notification.UserID, notification.UserType, notification.Title,
			notification.Message, notification.Type, notification.Read, notification.Link,
			notification.Metadata, notification.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert notification query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error inserting notification: %w", err)
	}

	return nil
}

// ListByUser retrieves all notifications for a user, most recent first
func (r *NotificationRepository) ListByUser(ctx context.Context, userID string) ([]*models.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := []*models.Notification{}
	for rows.Next() {
		notification, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, notification)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}

// CountUnread returns the number of unread notifications for a user
func (r *NotificationRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read = FALSE`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting unread notifications: %w", err)
	}
	return count, nil
}

// MarkRead marks a single notification as read
func (r *NotificationRepository) MarkRead(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE notifications SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error marking notification read: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// MarkAllRead marks every unread notification of a user as read and returns
// how many rows were touched
func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE notifications SET read = TRUE WHERE user_id = $1 AND read = FALSE`, userID)
	if err != nil {
		return 0, fmt.Errorf("error marking notifications read: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

// Delete removes a notification by ID
func (r *NotificationRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting notification: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

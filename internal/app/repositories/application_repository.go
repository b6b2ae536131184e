package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sid77x/profhub/internal/app/models"
)

// Application error types
var ErrApplicationNotFound = ErrNotFound

const applicationColumns = "id, gig_id, student_id, student_name, student_email, student_year, student_cgpa, resume_link, cover_letter, status, applied_at"

// ApplicationRepository handles application database operations
type ApplicationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanApplication(row pgx.Row) (*models.Application, error) {
	a := &models.Application{}
	err := row.Scan(
		&a.ID,
		&a.GigID,
		&a.StudentID,
		&a.StudentName,
		&a.StudentEmail,
		&a.StudentYear,
		&a.StudentCGPA,
		&a.ResumeLink,
		&a.CoverLetter,
		&a.Status,
		&a.AppliedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Create inserts a new application. The caller is expected to have forced
// status to pending and applied_at to the submission time.
func (r *ApplicationRepository) Create(ctx context.Context, application *models.Application) error {
	application.ID = uuid.New().String()

	sql, args, err := r.sb.Insert("applications").
		Columns("id", "gig_id", "student_id", "student_name", "student_email",
			"student_year", "student_cgpa", "resume_link", "cover_letter", "status", "applied_at").
		Values(application.ID, application.GigID, application.StudentID, application.StudentName,
			application.StudentEmail, application.StudentYear, application.StudentCGPA,
			application.ResumeLink, application.CoverLetter, application.Status, application.AppliedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create application query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error creating application: %w", err)
	}

	return nil
}

// GetByID retrieves an application by ID
func (r *ApplicationRepository) GetByID(ctx context.Context, id string) (*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`

	application, err := scanApplication(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error getting application by ID: %w", err)
	}

	return application, nil
}

// ListByGig retrieves all applications for a gig, newest first
func (r *ApplicationRepository) ListByGig(ctx context.Context, gigID string) ([]*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE gig_id = $1 ORDER BY applied_at DESC`

	rows, err := r.db.Query(ctx, query, gigID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applications := []*models.Application{}
	for rows.Next() {
		application, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		applications = append(applications, application)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return applications, nil
}

// ListByStudent retrieves applications matched by student ID or, for rows
// created before student accounts existed, by the student's email. Each row
// carries a summary of its gig when the gig still exists.
func (r *ApplicationRepository) ListByStudent(ctx context.Context, studentID, email string) ([]*models.ApplicationWithGig, error) {
	query := `
		SELECT a.id, a.gig_id, a.student_id, a.student_name, a.student_email,
		       a.student_year, a.student_cgpa, a.resume_link, a.cover_letter, a.status, a.applied_at,
		       g.id, g.title, g.description, g.status
		FROM applications a
		LEFT JOIN gigs g ON g.id = a.gig_id
		WHERE a.student_id = $1 OR a.student_email = $2
		ORDER BY a.applied_at DESC
	`

	rows, err := r.db.Query(ctx, query, studentID, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applications := []*models.ApplicationWithGig{}
	for rows.Next() {
		var a models.ApplicationWithGig
		var gigID, gigTitle, gigDescription *string
		var gigStatus *models.GigStatus
		err := rows.Scan(
			&a.ID,
			&a.GigID,
			&a.StudentID,
			&a.StudentName,
			&a.StudentEmail,
			&a.StudentYear,
			&a.StudentCGPA,
			&a.ResumeLink,
			&a.CoverLetter,
			&a.Status,
			&a.AppliedAt,
			&gigID,
			&gigTitle,
			&gigDescription,
			&gigStatus,
		)
		if err != nil {
			return nil, err
		}
		if gigID != nil {
			a.Gig = &models.GigSummary{
				ID:          *gigID,
				Title:       *gigTitle,
				Description: *gigDescription,
				Status:      *gigStatus,
			}
		}
		applications = append(applications, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return applications, nil
}

// FindByGigAndStudent returns the existing application for a (gig, student)
// pair, or ErrApplicationNotFound
func (r *ApplicationRepository) FindByGigAndStudent(ctx context.Context, gigID, studentID string) (*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE gig_id = $1 AND student_id = $2 LIMIT 1`

	application, err := scanApplication(r.db.QueryRow(ctx, query, gigID, studentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error finding application: %w", err)
	}

	return application, nil
}

// UpdateStatus sets the status field of an application
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) (*models.Application, error) {
	query := `
		UPDATE applications
		SET status = $1
		WHERE id = $2
		RETURNING ` + applicationColumns

	application, err := scanApplication(r.db.QueryRow(ctx, query, status, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error updating application status: %w", err)
	}

	return application, nil
}

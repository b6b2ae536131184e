package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sid77x/profhub/internal/app/models"
	"github.com/sid77x/profhub/internal/app/models/dto"
)

// Gig error types
var ErrGigNotFound = ErrNotFound

const gigColumns = "id, professor_id, title, description, area_of_study, technologies, target_type, paper_type, timeline, year_requirement, cgpa_requirement, funded, candidate_count, status, publication_link, publication_venue, paused_reason, created_at"

// GigFilter narrows gig listings
type GigFilter struct {
	Status      *models.GigStatus
	ProfessorID *string
}

// GigRepository handles gig database operations
type GigRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewGigRepository creates a new GigRepository
func NewGigRepository(db *pgxpool.Pool) *GigRepository {
	return &GigRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanGig(row pgx.Row) (*models.Gig, error) {
	g := &models.Gig{}
	err := row.Scan(
		&g.ID,
		&g.ProfessorID,
		&g.Title,
		&g.Description,
		&g.AreaOfStudy,
		&g.Technologies,
		&g.TargetType,
		&g.PaperType,
		&g.Timeline,
		&g.YearRequirement,
		&g.CGPARequirement,
		&g.Funded,
		&g.CandidateCount,
		&g.Status,
		&g.PublicationLink,
		&g.PublicationVenue,
		&g.PausedReason,
		&g.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Create inserts a new gig and fills in its generated ID
func (r *GigRepository) Create(ctx context.Context, gig *models.Gig) error {
	gig.ID = uuid.New().String()
	gig.CreatedAt = time.Now().UTC()

	sql, args, err := r.sb.Insert("gigs").
		Columns("id", "professor_id", "title", "description", "area_of_study", "technologies",
			"target_type", "paper_type", "timeline", "year_requirement", "cgpa_requirement",
			"funded", "candidate_count", "status", "created_at").
		Values(gig.ID, gig.ProfessorID, gig.Title, gig.Description, gig.AreaOfStudy,
			gig.Technologies, gig.TargetType, gig.PaperType, gig.Timeline,
			gig.YearRequirement, gig.CGPARequirement, gig.Funded, gig.CandidateCount,
			gig.Status, gig.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create gig query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error creating gig: %w", err)
	}

	return nil
}

// GetByID retrieves a gig by ID
func (r *GigRepository) GetByID(ctx context.Context, id string) (*models.Gig, error) {
	query := `SELECT ` + gigColumns + ` FROM gigs WHERE id = $1`

	gig, err := scanGig(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGigNotFound
		}
		return nil, fmt.Errorf("error getting gig by ID: %w", err)
	}

	return gig, nil
}

// List retrieves gigs matching the optional filter, newest first
func (r *GigRepository) List(ctx context.Context, filter GigFilter) ([]*models.Gig, error) {
	builder := r.sb.Select(gigColumns).From("gigs").OrderBy("created_at DESC")

	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.ProfessorID != nil {
		builder = builder.Where(squirrel.Eq{"professor_id": *filter.ProfessorID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list gigs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	gigs := []*models.Gig{}
	for rows.Next() {
		gig, err := scanGig(rows)
		if err != nil {
			return nil, err
		}
		gigs = append(gigs, gig)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return gigs, nil
}

// Update applies the non-nil fields of the request and returns the updated row
func (r *GigRepository) Update(ctx context.Context, id string, req *dto.UpdateGigRequest) (*models.Gig, error) {
	builder := r.sb.Update("gigs").Where(squirrel.Eq{"id": id})

	if req.Title != nil {
		builder = builder.Set("title", *req.Title)
	}
	if req.Description != nil {
		builder = builder.Set("description", *req.Description)
	}
	if req.AreaOfStudy != nil {
		builder = builder.Set("area_of_study", *req.AreaOfStudy)
	}
	if req.Technologies != nil {
		builder = builder.Set("technologies", *req.Technologies)
	}
	if req.TargetType != nil {
		builder = builder.Set("target_type", *req.TargetType)
	}
	if req.PaperType != nil {
		builder = builder.Set("paper_type", *req.PaperType)
	}
	if req.Timeline != nil {
		builder = builder.Set("timeline", *req.Timeline)
	}
	if req.YearRequirement != nil {
		builder = builder.Set("year_requirement", *req.YearRequirement)
	}
	if req.CGPARequirement != nil {
		builder = builder.Set("cgpa_requirement", *req.CGPARequirement)
	}
	if req.Funded != nil {
		builder = builder.Set("funded", *req.Funded)
	}
	if req.CandidateCount != nil {
		builder = builder.Set("candidate_count", *req.CandidateCount)
	}

	sql, args, err := builder.Suffix("RETURNING " + gigColumns).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update gig query: %w", err)
	}

	gig, err := scanGig(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGigNotFound
		}
		return nil, fmt.Errorf("error updating gig: %w", err)
	}

	return gig, nil
}

// Close marks a gig closed, optionally recording publication metadata
func (r *GigRepository) Close(ctx context.Context, id string, publicationLink, publicationVenue *string) (*models.Gig, error) {
	builder := r.sb.Update("gigs").
		Set("status", models.GigStatusClosed).
		Where(squirrel.Eq{"id": id})

	if publicationLink != nil {
		builder = builder.Set("publication_link", *publicationLink)
	}
	if publicationVenue != nil {
		builder = builder.Set("publication_venue", *publicationVenue)
	}

	sql, args, err := builder.Suffix("RETURNING " + gigColumns).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build close gig query: %w", err)
	}

	gig, err := scanGig(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGigNotFound
		}
		return nil, fmt.Errorf("error closing gig: %w", err)
	}

	return gig, nil
}

// Hold pauses a gig with a reason
func (r *GigRepository) Hold(ctx context.Context, id, pausedReason string) (*models.Gig, error) {
	query := `
		UPDATE gigs
		SET status = $1, paused_reason = $2
		WHERE id = $3
		RETURNING ` + gigColumns

	gig, err := scanGig(r.db.QueryRow(ctx, query, models.GigStatusOnHold, pausedReason, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGigNotFound
		}
		return nil, fmt.Errorf("error putting gig on hold: %w", err)
	}

	return gig, nil
}

// Activate reopens an on-hold gig and clears its paused reason
func (r *GigRepository) Activate(ctx context.Context, id string) (*models.Gig, error) {
	query := `
		UPDATE gigs
		SET status = $1, paused_reason = NULL
		WHERE id = $2
		RETURNING ` + gigColumns

	gig, err := scanGig(r.db.QueryRow(ctx, query, models.GigStatusOpen, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGigNotFound
		}
		return nil, fmt.Errorf("error activating gig: %w", err)
	}

	return gig, nil
}

// Delete removes a gig by ID
func (r *GigRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM gigs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting gig: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrGigNotFound
	}

	return nil
}

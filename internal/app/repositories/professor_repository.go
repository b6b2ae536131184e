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
	"github.com/sid77x/profhub/internal/pkg/logger"
)

// Professor error types
var (
	ErrProfessorNotFound    = ErrNotFound
	ErrProfessorEmailExists = errors.New("professor with this email already exists")
)

const professorColumns = "id, name, email, hashed_password, department, college_name, qualification, research_areas, experience_years, previous_publications, created_at"

// ProfessorRepository handles professor database operations
type ProfessorRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProfessorRepository creates a new ProfessorRepository
func NewProfessorRepository(db *pgxpool.Pool) *ProfessorRepository {
	return &ProfessorRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanProfessor(row pgx.Row) (*models.Professor, error) {
	p := &models.Professor{}
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Email,
		&p.HashedPassword,
		&p.Department,
		&p.CollegeName,
		&p.Qualification,
		&p.ResearchAreas,
		&p.ExperienceYears,
		&p.PreviousPublications,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Create inserts a new professor and fills in its generated ID
func (r *ProfessorRepository) Create(ctx context.Context, professor *models.Professor) error {
	professor.ID = uuid.New().String()
	professor.CreatedAt = time.Now().UTC()

	sql, args, err := r.sb.Insert("professors").
		Columns("id", "name", "email", "hashed_password", "department", "college_name",
			"qualification", "research_areas", "experience_years", "previous_publications", "created_at").
		Values(professor.ID, professor.Name, professor.Email, professor.HashedPassword,
			professor.Department, professor.CollegeName, professor.Qualification,
			professor.ResearchAreas, professor.ExperienceYears, professor.PreviousPublications,
			professor.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create professor query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if isDuplicateKeyError(err) {
			return ErrProfessorEmailExists
		}
		logger.Error().Err(err).Msg("Error executing create professor query")
		return fmt.Errorf("error creating professor: %w", err)
	}

	return nil
}

// GetByID retrieves a professor by ID
func (r *ProfessorRepository) GetByID(ctx context.Context, id string) (*models.Professor, error) {
	query := `SELECT ` + professorColumns + ` FROM professors WHERE id = $1`

	professor, err := scanProfessor(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfessorNotFound
		}
		return nil, fmt.Errorf("error getting professor by ID: %w", err)
	}

	return professor, nil
}

// GetByEmail retrieves a professor by email
func (r *ProfessorRepository) GetByEmail(ctx context.Context, email string) (*models.Professor, error) {
	query := `SELECT ` + professorColumns + ` FROM professors WHERE email = $1`

	professor, err := scanProfessor(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfessorNotFound
		}
		return nil, fmt.Errorf("error getting professor by email: %w", err)
	}

	return professor, nil
}

// ExistsByEmail checks whether a professor with the given email exists
func (r *ProfessorRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM professors WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking professor existence: %w", err)
	}
	return exists, nil
}

// GetAll retrieves all professors
func (r *ProfessorRepository) GetAll(ctx context.Context) ([]*models.Professor, error) {
	query := `SELECT ` + professorColumns + ` FROM professors ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var professors []*models.Professor
	for rows.Next() {
		professor, err := scanProfessor(rows)
		if err != nil {
			return nil, err
		}
		professors = append(professors, professor)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return professors, nil
}

// Update applies the non-nil fields of the request and returns the updated row
func (r *ProfessorRepository) Update(ctx context.Context, id string, req *dto.UpdateProfessorRequest) (*models.Professor, error) {
	builder := r.sb.Update("professors").Where(squirrel.Eq{"id": id})

	if req.Name != nil {
		builder = builder.Set("name", *req.Name)
	}
	if req.Department != nil {
		builder = builder.Set("department", *req.Department)
	}
	if req.CollegeName != nil {
		builder = builder.Set("college_name", *req.CollegeName)
	}
	if req.Qualification != nil {
		builder = builder.Set("qualification", *req.Qualification)
	}
	if req.ResearchAreas != nil {
		builder = builder.Set("research_areas", *req.ResearchAreas)
	}
	if req.ExperienceYears != nil {
		builder = builder.Set("experience_years", *req.ExperienceYears)
	}
	if req.PreviousPublications != nil {
		builder = builder.Set("previous_publications", *req.PreviousPublications)
	}

	sql, args, err := builder.Suffix("RETURNING " + professorColumns).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update professor query: %w", err)
	}

	professor, err := scanProfessor(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfessorNotFound
		}
		return nil, fmt.Errorf("error updating professor: %w", err)
	}

	return professor, nil
}

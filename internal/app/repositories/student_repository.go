package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sid77x/profhub/internal/app/models"
	"github.com/sid77x/profhub/internal/app/models/dto"
)

// Student error types
var (
	ErrStudentNotFound    = ErrNotFound
	ErrStudentEmailExists = errors.New("student with this email already exists")
	ErrStudentRegNoExists = errors.New("student with this registration number already exists")
)

const studentColumns = "id, name, email, reg_no, hashed_password, department, year, college_name, skills, resume_url, bio, created_at, updated_at"

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Email,
		&s.RegNo,
		&s.HashedPassword,
		&s.Department,
		&s.Year,
		&s.CollegeName,
		&s.Skills,
		&s.ResumeURL,
		&s.Bio,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Create inserts a new student and fills in its generated ID
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	student.ID = uuid.New().String()
	student.CreatedAt = time.Now().UTC()
	if student.Skills == nil {
		student.Skills = []string{}
	}

	sql, args, err := r.sb.Insert("students").
		Columns("id", "name", "email", "reg_no", "hashed_password", "department", "year",
			"college_name", "skills", "resume_url", "bio", "created_at").
		Values(student.ID, student.Name, student.Email, student.RegNo, student.HashedPassword,
			student.Department, student.Year, student.CollegeName, student.Skills,
			student.ResumeURL, student.Bio, student.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if isDuplicateKeyError(err) {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.ConstraintName == "students_reg_no_key" {
				return ErrStudentRegNoExists
			}
			return ErrStudentEmailExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}

	return student, nil
}

// GetByEmail retrieves a student by email
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE email = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("error getting student by email: %w", err)
	}

	return student, nil
}

// Update applies the non-nil fields of the request and returns the updated row
func (r *StudentRepository) Update(ctx context.Context, id string, req *dto.UpdateStudentRequest) (*models.Student, error) {
	builder := r.sb.Update("students").
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id})

	if req.Name != nil {
		builder = builder.Set("name", *req.Name)
	}
	if req.Department != nil {
		builder = builder.Set("department", *req.Department)
	}
	if req.Year != nil {
		builder = builder.Set("year", *req.Year)
	}
	if req.CollegeName != nil {
		builder = builder.Set("college_name", *req.CollegeName)
	}
	if req.Skills != nil {
		builder = builder.Set("skills", *req.Skills)
	}
	if req.ResumeURL != nil {
		builder = builder.Set("resume_url", *req.ResumeURL)
	}
	if req.Bio != nil {
		builder = builder.Set("bio", *req.Bio)
	}

	sql, args, err := builder.Suffix("RETURNING " + studentColumns).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("error updating student: %w", err)
	}

	return student, nil
}

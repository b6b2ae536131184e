package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is the shared sentinel for missing rows
var ErrNotFound = errors.New("resource not found")

// Repositories bundles all repository instances
type Repositories struct {
	ProfessorRepository    *ProfessorRepository
	StudentRepository      *StudentRepository
	GigRepository          *GigRepository
	ApplicationRepository  *ApplicationRepository
	NotificationRepository *NotificationRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		ProfessorRepository:    NewProfessorRepository(db),
		StudentRepository:      NewStudentRepository(db),
		GigRepository:          NewGigRepository(db),
		ApplicationRepository:  NewApplicationRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

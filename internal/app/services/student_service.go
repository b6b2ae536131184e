package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sid77x/profhub/internal/app/models"
	"github.com/sid77x/profhub/internal/app/models/dto"
	"github.com/sid77x/profhub/internal/app/repositories"
	"github.com/sid77x/profhub/internal/pkg/apperrors"
	pkgauth "github.com/sid77x/profhub/internal/pkg/auth"
)

// StudentService handles student accounts and profiles
type StudentService struct {
	students StudentStore
	jwt      *pkgauth.JWTService
}

// NewStudentService creates a new student service
func NewStudentService(students StudentStore, jwt *pkgauth.JWTService) *StudentService {
	return &StudentService{
		students: students,
		jwt:      jwt,
	}
}

// Register creates a new student account
func (s *StudentService) Register(ctx context.Context, req *dto.RegisterStudentRequest) (*models.Student, error) {
	hashed, err := pkgauth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	student := &models.Student{
		Name:           req.Name,
		Email:          req.Email,
		RegNo:          req.RegNo,
		HashedPassword: hashed,
		Department:     req.Department,
		Year:           req.Year,
		CollegeName:    req.CollegeName,
		Skills:         []string{},
	}

	if err := s.students.Create(ctx, student); err != nil {
		switch {
		case errors.Is(err, repositories.ErrStudentEmailExists):
			return nil, apperrors.ErrEmailAlreadyExists
		case errors.Is(err, repositories.ErrStudentRegNoExists):
			return nil, apperrors.ErrRegNoAlreadyExists
		default:
			return nil, fmt.Errorf("error creating student: %w", err)
		}
	}

	return student, nil
}

// Login verifies credentials and issues a bearer token
func (s *StudentService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.StudentTokenResponse, error) {
	student, err := s.students.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error loading student: %w", err)
	}

	if !pkgauth.CheckPassword(student.HashedPassword, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwt.GenerateToken(student.ID, student.Email, string(models.RoleStudent))
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	return &dto.StudentTokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   expiresIn,
		StudentID:   student.ID,
		Student:     student,
	}, nil
}

// GetByID retrieves a student profile
func (s *StudentService) GetByID(ctx context.Context, id string) (*models.Student, error) {
	if err := validateID(id, "student"); err != nil {
		return nil, err
	}

	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error getting student: %w", err)
	}

	return student, nil
}

// Update applies a partial profile update. An empty request is rejected.
func (s *StudentService) Update(ctx context.Context, id string, req *dto.UpdateStudentRequest) (*models.Student, error) {
	if err := validateID(id, "student"); err != nil {
		return nil, err
	}
	if req.IsEmpty() {
		return nil, apperrors.NewValidationError("no fields to update")
	}

	student, err := s.students.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error updating student: %w", err)
	}

	return student, nil
}

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

// AuthService handles professor registration and login
type AuthService struct {
	professors ProfessorStore
	jwt        *pkgauth.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(professors ProfessorStore, jwt *pkgauth.JWTService) *AuthService {
	return &AuthService{
		professors: professors,
		jwt:        jwt,
	}
}

// Register creates a new professor account
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.Professor, error) {
	exists, err := s.professors.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashed, err := pkgauth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	professor := &models.Professor{
		Name:                 req.Name,
		Email:                req.Email,
		HashedPassword:       hashed,
		Department:           req.Department,
		CollegeName:          req.CollegeName,
		Qualification:        req.Qualification,
		ResearchAreas:        req.ResearchAreas,
		ExperienceYears:      req.ExperienceYears,
		PreviousPublications: req.PreviousPublications,
	}

	if err := s.professors.Create(ctx, professor); err != nil {
		if errors.Is(err, repositories.ErrProfessorEmailExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("error creating professor: %w", err)
	}

	return professor, nil
}

// Login verifies credentials and issues a bearer token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	professor, err := s.professors.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error loading professor: %w", err)
	}

	if !pkgauth.CheckPassword(professor.HashedPassword, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwt.GenerateToken(professor.ID, professor.Email, string(models.RoleProfessor))
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   expiresIn,
		ProfessorID: professor.ID,
	}, nil
}

// Me resolves a bearer token to the professor behind it
func (s *AuthService) Me(ctx context.Context, token string) (*models.Professor, error) {
	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		if errors.Is(err, pkgauth.ErrExpiredToken) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenInvalid
	}

	professor, err := s.professors.GetByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrProfessorNotFound
		}
		return nil, fmt.Errorf("error loading professor: %w", err)
	}

	return professor, nil
}

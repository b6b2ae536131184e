package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sid77x/profhub/internal/app/models"
	"github.com/sid77x/profhub/internal/app/models/dto"
	"github.com/sid77x/profhub/internal/app/repositories"
	"github.com/sid77x/profhub/internal/pkg/apperrors"
	pkgauth "github.com/sid77x/profhub/internal/pkg/auth"
)

type fakeProfessorStore struct {
	professors map[string]*models.Professor
}

func newFakeProfessorStore() *fakeProfessorStore {
	return &fakeProfessorStore{professors: make(map[string]*models.Professor)}
}

func (f *fakeProfessorStore) Create(_ context.Context, professor *models.Professor) error {
	for _, p := range f.professors {
		if p.Email == professor.Email {
			return repositories.ErrProfessorEmailExists
		}
	}
	professor.ID = uuid.New().String()
	f.professors[professor.ID] = professor
	return nil
}

func (f *fakeProfessorStore) GetByID(_ context.Context, id string) (*models.Professor, error) {
	professor, ok := f.professors[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return professor, nil
}

func (f *fakeProfessorStore) GetByEmail(_ context.Context, email string) (*models.Professor, error) {
	for _, p := range f.professors {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeProfessorStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (f *fakeProfessorStore) GetAll(_ context.Context) ([]*models.Professor, error) {
	var out []*models.Professor
	for _, p := range f.professors {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProfessorStore) Update(ctx context.Context, id string, _ *dto.UpdateProfessorRequest) (*models.Professor, error) {
	return f.GetByID(ctx, id)
}

func testJWTService() *pkgauth.JWTService {
	return pkgauth.NewJWTService(pkgauth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "profhub.test",
	})
}

func registerRequest(email string) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Name:        "Grace Hopper",
		Email:       email,
		Password:    "correct-horse",
		Department:  "Computer Science",
		CollegeName: "Example Institute",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	store := newFakeProfessorStore()
	service := NewAuthService(store, testJWTService())
	ctx := context.Background()

	professor, err := service.Register(ctx, registerRequest("grace@example.edu"))
	require.NoError(t, err)
	assert.NotEmpty(t, professor.ID)
	assert.NotEqual(t, "correct-horse", professor.HashedPassword)

	token, err := service.Login(ctx, &dto.LoginRequest{Email: "grace@example.edu", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, "bearer", token.TokenType)
	assert.Equal(t, professor.ID, token.ProfessorID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service := NewAuthService(newFakeProfessorStore(), testJWTService())
	ctx := context.Background()

	_, err := service.Register(ctx, registerRequest("grace@example.edu"))
	require.NoError(t, err)

	_, err = service.Register(ctx, registerRequest("grace@example.edu"))
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLoginWrongPassword(t *testing.T) {
	service := NewAuthService(newFakeProfessorStore(), testJWTService())
	ctx := context.Background()

	_, err := service.Register(ctx, registerRequest("grace@example.edu"))
	require.NoError(t, err)

	_, err = service.Login(ctx, &dto.LoginRequest{Email: "grace@example.edu", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	service := NewAuthService(newFakeProfessorStore(), testJWTService())

	_, err := service.Login(context.Background(), &dto.LoginRequest{Email: "nobody@example.edu", Password: "whatever"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestMeResolvesToken(t *testing.T) {
	service := NewAuthService(newFakeProfessorStore(), testJWTService())
	ctx := context.Background()

	professor, err := service.Register(ctx, registerRequest("grace@example.edu"))
	require.NoError(t, err)

	token, err := service.Login(ctx, &dto.LoginRequest{Email: "grace@example.edu", Password: "correct-horse"})
	require.NoError(t, err)

	resolved, err := service.Me(ctx, token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, professor.ID, resolved.ID)
}

func TestMeRejectsGarbageToken(t *testing.T) {
	service := NewAuthService(newFakeProfessorStore(), testJWTService())

	_, err := service.Me(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

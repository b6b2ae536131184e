package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sid77x/profhub/internal/app/models"
	"github.com/sid77x/profhub/internal/app/models/dto"
	"github.com/sid77x/profhub/internal/app/repositories"
	"github.com/sid77x/profhub/internal/pkg/apperrors"
	pkgauth "github.com/sid77x/profhub/internal/pkg/auth"
)

// Store interfaces are declared on the consumer side so services can be
// tested against in-memory fakes. The concrete repositories satisfy them.

// ProfessorStore is the persistence surface the services need for professors
type ProfessorStore interface {
	Create(ctx context.Context, professor *models.Professor) error
	GetByID(ctx context.Context, id string) (*models.Professor, error)
	GetByEmail(ctx context.Context, email string) (*models.Professor, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	GetAll(ctx context.Context) ([]*models.Professor, error)
	Update(ctx context.Context, id string, req *dto.UpdateProfessorRequest) (*models.Professor, error)
}

// StudentStore is the persistence surface the services need for students
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id string) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	Update(ctx context.Context, id string, req *dto.UpdateStudentRequest) (*models.Student, error)
}

// GigStore is the persistence surface the services need for gigs
type GigStore interface {
	Create(ctx context.Context, gig *models.Gig) error
	GetByID(ctx context.Context, id string) (*models.Gig, error)
	List(ctx context.Context, filter repositories.GigFilter) ([]*models.Gig, error)
	Update(ctx context.Context, id string, req *dto.UpdateGigRequest) (*models.Gig, error)
	Close(ctx context.Context, id string, publicationLink, publicationVenue *string) (*models.Gig, error)
	Hold(ctx context.Context, id, pausedReason string) (*models.Gig, error)
	Activate(ctx context.Context, id string) (*models.Gig, error)
	Delete(ctx context.Context, id string) error
}

// ApplicationStore is the persistence surface the services need for applications
type ApplicationStore interface {
	Create(ctx context.Context, application *models.Application) error
	GetByID(ctx context.Context, id string) (*models.Application, error)
	ListByGig(ctx context.Context, gigID string) ([]*models.Application, error)
	ListByStudent(ctx context.Context, studentID, email string) ([]*models.ApplicationWithGig, error)
	FindByGigAndStudent(ctx context.Context, gigID, studentID string) (*models.Application, error)
	UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) (*models.Application, error)
}

// NotificationStore is the persistence surface the notification service needs
type NotificationStore interface {
	UpsertNewApplication(ctx context.Context, professorID, gigID, gigTitle string) (*models.Notification, error)
	Insert(ctx context.Context, notification *models.Notification) error
	ListByUser(ctx context.Context, userID string) ([]*models.Notification, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	Delete(ctx context.Context, id string) error
}

// Services bundles all service instances
type Services struct {
	AuthService         *AuthService
	ProfessorService    *ProfessorService
	StudentService      *StudentService
	GigService          *GigService
	ApplicationService  *ApplicationService
	NotificationService *NotificationService
}

// NewServices wires all services against the concrete repositories
func NewServices(repos *repositories.Repositories, jwtService *pkgauth.JWTService) *Services {
	notificationService := NewNotificationService(repos.NotificationRepository)

	return &Services{
		AuthService:         NewAuthService(repos.ProfessorRepository, jwtService),
		ProfessorService:    NewProfessorService(repos.ProfessorRepository),
		StudentService:      NewStudentService(repos.StudentRepository, jwtService),
		GigService:          NewGigService(repos.GigRepository),
		ApplicationService:  NewApplicationService(repos.ApplicationRepository, repos.GigRepository, repos.StudentRepository, notificationService),
		NotificationService: notificationService,
	}
}

// validateID rejects malformed identifiers before any store call
func validateID(id, label string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.NewValidationError(fmt.Sprintf("invalid %s ID", label))
	}
	return nil
}

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sid77x/profhub/internal/app/models"
	"github.com/sid77x/profhub/internal/app/models/dto"
	"github.com/sid77x/profhub/internal/app/repositories"
	"github.com/sid77x/profhub/internal/pkg/apperrors"
)

type fakeApplicationStore struct {
	applications map[string]*models.Application
	createErr    error
}

func newFakeApplicationStore() *fakeApplicationStore {
	return &fakeApplicationStore{applications: make(map[string]*models.Application)}
}

func (f *fakeApplicationStore) Create(_ context.Context, application *models.Application) error {
	if f.createErr != nil {
		return f.createErr
	}
	application.ID = uuid.New().String()
	f.applications[application.ID] = application
	return nil
}

func (f *fakeApplicationStore) GetByID(_ context.Context, id string) (*models.Application, error) {
	application, ok := f.applications[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return application, nil
}

func (f *fakeApplicationStore) ListByGig(_ context.Context, gigID string) ([]*models.Application, error) {
	var out []*models.Application
	for _, a := range f.applications {
		if a.GigID == gigID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApplicationStore) ListByStudent(_ context.Context, studentID, email string) ([]*models.ApplicationWithGig, error) {
	var out []*models.ApplicationWithGig
	for _, a := range f.applications {
		if (a.StudentID != nil && *a.StudentID == studentID) || a.StudentEmail == email {
			out = append(out, &models.ApplicationWithGig{Application: *a})
		}
	}
	return out, nil
}

func (f *fakeApplicationStore) FindByGigAndStudent(_ context.Context, gigID, studentID string) (*models.Application, error) {
	for _, a := range f.applications {
		if a.GigID == gigID && a.StudentID != nil && *a.StudentID == studentID {
			return a, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeApplicationStore) UpdateStatus(_ context.Context, id string, status models.ApplicationStatus) (*models.Application, error) {
	application, ok := f.applications[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	application.Status = status
	return application, nil
}

type fakeGigStore struct {
	gigs map[string]*models.Gig
}

func newFakeGigStore() *fakeGigStore {
	return &fakeGigStore{gigs: make(map[string]*models.Gig)}
}

func (f *fakeGigStore) Create(_ context.Context, gig *models.Gig) error {
	gig.ID = uuid.New().String()
	gig.CreatedAt = time.Now().UTC()
	f.gigs[gig.ID] = gig
	return nil
}

func (f *fakeGigStore) GetByID(_ context.Context, id string) (*models.Gig, error) {
	gig, ok := f.gigs[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return gig, nil
}

func (f *fakeGigStore) List(_ context.Context, filter repositories.GigFilter) ([]*models.Gig, error) {
	var out []*models.Gig
	for _, g := range f.gigs {
		if filter.Status != nil && g.Status != *filter.Status {
			continue
		}
		if filter.ProfessorID != nil && g.ProfessorID != *filter.ProfessorID {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

func (f *fakeGigStore) Update(_ context.Context, id string, _ *dto.UpdateGigRequest) (*models.Gig, error) {
	return f.GetByID(context.Background(), id)
}

func (f *fakeGigStore) Close(_ context.Context, id string, publicationLink, publicationVenue *string) (*models.Gig, error) {
	gig, ok := f.gigs[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	gig.Status = models.GigStatusClosed
	gig.PublicationLink = publicationLink
	gig.PublicationVenue = publicationVenue
	return gig, nil
}

func (f *fakeGigStore) Hold(_ context.Context, id, pausedReason string) (*models.Gig, error) {
	gig, ok := f.gigs[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	gig.Status = models.GigStatusOnHold
	gig.PausedReason = &pausedReason
	return gig, nil
}

func (f *fakeGigStore) Activate(_ context.Context, id string) (*models.Gig, error) {
	gig, ok := f.gigs[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	gig.Status = models.GigStatusOpen
	gig.PausedReason = nil
	return gig, nil
}

func (f *fakeGigStore) Delete(_ context.Context, id string) error {
	if _, ok := f.gigs[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.gigs, id)
	return nil
}

type fakeStudentStore struct {
	students map[string]*models.Student
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: make(map[string]*models.Student)}
}

func (f *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	student.ID = uuid.New().String()
	f.students[student.ID] = student
	return nil
}

func (f *fakeStudentStore) GetByID(_ context.Context, id string) (*models.Student, error) {
	student, ok := f.students[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return student, nil
}

func (f *fakeStudentStore) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	for _, s := range f.students {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeStudentStore) Update(_ context.Context, id string, _ *dto.UpdateStudentRequest) (*models.Student, error) {
	return f.GetByID(context.Background(), id)
}

// recordingNotifier captures the notification calls the lifecycle makes
type recordingNotifier struct {
	newApplications []string
	decisions       []models.ApplicationStatus
	decisionUsers   []string
	err             error
}

func (r *recordingNotifier) NotifyNewApplication(_ context.Context, professorID, gigID, gigTitle string) error {
	if r.err != nil {
		return r.err
	}
	r.newApplications = append(r.newApplications, gigTitle)
	return nil
}

func (r *recordingNotifier) NotifyStatusChange(_ context.Context, studentID, gigID, gigTitle string, status models.ApplicationStatus) error {
	if r.err != nil {
		return r.err
	}
	r.decisions = append(r.decisions, status)
	r.decisionUsers = append(r.decisionUsers, studentID)
	return nil
}

func newGig(t *testing.T, gigs *fakeGigStore, title string) *models.Gig {
	t.Helper()
	gig := &models.Gig{
		ProfessorID: uuid.New().String(),
		Title:       title,
		Status:      models.GigStatusOpen,
	}
	require.NoError(t, gigs.Create(context.Background(), gig))
	return gig
}

func submitRequest(gigID string, studentID *string) *dto.CreateApplicationRequest {
	return &dto.CreateApplicationRequest{
		GigID:        gigID,
		StudentID:    studentID,
		StudentName:  "Ada Lovelace",
		StudentEmail: "ada@example.edu",
		ResumeLink:   "https://example.edu/resume.pdf",
	}
}

func TestSubmitForcesPendingAndTimestamp(t *testing.T) {
	applications := newFakeApplicationStore()
	gigs := newFakeGigStore()
	notifier := &recordingNotifier{}
	service := NewApplicationService(applications, gigs, newFakeStudentStore(), notifier)

	gig := newGig(t, gigs, "Graph Mining")
	before := time.Now().UTC()

	application, err := service.Submit(context.Background(), submitRequest(gig.ID, nil))
	require.NoError(t, err)

	assert.Equal(t, models.ApplicationStatusPending, application.Status)
	assert.False(t, application.AppliedAt.Before(before))
	assert.NotEmpty(t, application.ID)
	assert.Equal(t, []string{"Graph Mining"}, notifier.newApplications)
}

func TestSubmitSkipsNotificationWhenGigMissing(t *testing.T) {
	applications := newFakeApplicationStore()
	notifier := &recordingNotifier{}
	service := NewApplicationService(applications, newFakeGigStore(), newFakeStudentStore(), notifier)

	application, err := service.Submit(context.Background(), submitRequest(uuid.New().String(), nil))
	require.NoError(t, err)

	assert.NotEmpty(t, application.ID)
	assert.Empty(t, notifier.newApplications)
}

func TestSubmitPropagatesNotifierFailure(t *testing.T) {
	applications := newFakeApplicationStore()
	gigs := newFakeGigStore()
	notifier := &recordingNotifier{err: errors.New("notification store down")}
	service := NewApplicationService(applications, gigs, newFakeStudentStore(), notifier)

	gig := newGig(t, gigs, "Graph Mining")

	_, err := service.Submit(context.Background(), submitRequest(gig.ID, nil))
	assert.Error(t, err)
}

func TestSubmitRejectsMalformedGigID(t *testing.T) {
	service := NewApplicationService(newFakeApplicationStore(), newFakeGigStore(), newFakeStudentStore(), &recordingNotifier{})

	_, err := service.Submit(context.Background(), submitRequest("not-a-uuid", nil))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	applications := newFakeApplicationStore()
	gigs := newFakeGigStore()
	notifier := &recordingNotifier{}
	service := NewApplicationService(applications, gigs, newFakeStudentStore(), notifier)

	gig := newGig(t, gigs, "Gig")
	studentID := uuid.New().String()
	application, err := service.Submit(context.Background(), submitRequest(gig.ID, &studentID))
	require.NoError(t, err)

	_, err = service.UpdateStatus(context.Background(), application.ID, "approved")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, models.ApplicationStatusPending, applications.applications[application.ID].Status)
	assert.Empty(t, notifier.decisions)
}

func TestUpdateStatusUnknownApplication(t *testing.T) {
	service := NewApplicationService(newFakeApplicationStore(), newFakeGigStore(), newFakeStudentStore(), &recordingNotifier{})

	_, err := service.UpdateStatus(context.Background(), uuid.New().String(), "accepted")
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)
}

func TestUpdateStatusAcceptedNotifiesStudent(t *testing.T) {
	applications := newFakeApplicationStore()
	gigs := newFakeGigStore()
	notifier := &recordingNotifier{}
	service := NewApplicationService(applications, gigs, newFakeStudentStore(), notifier)

	gig := newGig(t, gigs, "Gig")
	studentID := uuid.New().String()
	application, err := service.Submit(context.Background(), submitRequest(gig.ID, &studentID))
	require.NoError(t, err)

	updated, err := service.UpdateStatus(context.Background(), application.ID, "accepted")
	require.NoError(t, err)

	assert.Equal(t, models.ApplicationStatusAccepted, updated.Status)
	assert.Equal(t, []models.ApplicationStatus{models.ApplicationStatusAccepted}, notifier.decisions)
	assert.Equal(t, []string{studentID}, notifier.decisionUsers)
}

func TestUpdateStatusBackToPendingDoesNotNotify(t *testing.T) {
	applications := newFakeApplicationStore()
	gigs := newFakeGigStore()
	notifier := &recordingNotifier{}
	service := NewApplicationService(applications, gigs, newFakeStudentStore(), notifier)

	gig := newGig(t, gigs, "Gig")
	studentID := uuid.New().String()
	application, err := service.Submit(context.Background(), submitRequest(gig.ID, &studentID))
	require.NoError(t, err)

	_, err = service.UpdateStatus(context.Background(), application.ID, "accepted")
	require.NoError(t, err)

	updated, err := service.UpdateStatus(context.Background(), application.ID, "pending")
	require.NoError(t, err)

	assert.Equal(t, models.ApplicationStatusPending, updated.Status)
	assert.Len(t, notifier.decisions, 1)
}

func TestUpdateStatusSkipsNotificationWithoutStudentRef(t *testing.T) {
	applications := newFakeApplicationStore()
	gigs := newFakeGigStore()
	notifier := &recordingNotifier{}
	service := NewApplicationService(applications, gigs, newFakeStudentStore(), notifier)

	gig := newGig(t, gigs, "Gig")
	application, err := service.Submit(context.Background(), submitRequest(gig.ID, nil))
	require.NoError(t, err)

	updated, err := service.UpdateStatus(context.Background(), application.ID, "rejected")
	require.NoError(t, err)

	assert.Equal(t, models.ApplicationStatusRejected, updated.Status)
	assert.Empty(t, notifier.decisions)
}

func TestHasApplied(t *testing.T) {
	applications := newFakeApplicationStore()
	gigs := newFakeGigStore()
	service := NewApplicationService(applications, gigs, newFakeStudentStore(), &recordingNotifier{})

	gig := newGig(t, gigs, "Gig")
	studentID := uuid.New().String()

	found, _, err := service.HasApplied(context.Background(), gig.ID, studentID)
	require.NoError(t, err)
	assert.False(t, found)

	_, err = service.Submit(context.Background(), submitRequest(gig.ID, &studentID))
	require.NoError(t, err)

	found, existing, err := service.HasApplied(context.Background(), gig.ID, studentID)
	require.NoError(t, err)
	assert.True(t, found)
	require.NotNil(t, existing)
	assert.Equal(t, gig.ID, existing.GigID)
}

func TestListByStudentMatchesLegacyEmailRows(t *testing.T) {
	applications := newFakeApplicationStore()
	gigs := newFakeGigStore()
	students := newFakeStudentStore()
	service := NewApplicationService(applications, gigs, students, &recordingNotifier{})

	student := &models.Student{Name: "Ada", Email: "ada@example.edu"}
	require.NoError(t, students.Create(context.Background(), student))

	gig := newGig(t, gigs, "Gig")
	_, err := service.Submit(context.Background(), submitRequest(gig.ID, nil))
	require.NoError(t, err)

	listed, err := service.ListByStudent(context.Background(), student.ID)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sid77x/profhub/internal/app/models"
	"github.com/sid77x/profhub/internal/app/models/dto"
	"github.com/sid77x/profhub/internal/app/repositories"
	"github.com/sid77x/profhub/internal/app/services"
)

type memApplicationStore struct {
	applications map[string]*models.Application
}

func (m *memApplicationStore) Create(_ context.Context, a *models.Application) error {
	a.ID = uuid.New().String()
	m.applications[a.ID] = a
	return nil
}

func (m *memApplicationStore) GetByID(_ context.Context, id string) (*models.Application, error) {
	a, ok := m.applications[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return a, nil
}

func (m *memApplicationStore) ListByGig(_ context.Context, gigID string) ([]*models.Application, error) {
	out := []*models.Application{}
	for _, a := range m.applications {
		if a.GigID == gigID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memApplicationStore) ListByStudent(_ context.Context, studentID, email string) ([]*models.ApplicationWithGig, error) {
	out := []*models.ApplicationWithGig{}
	for _, a := range m.applications {
		if (a.StudentID != nil && *a.StudentID == studentID) || a.StudentEmail == email {
			out = append(out, &models.ApplicationWithGig{Application: *a})
		}
	}
	return out, nil
}

func (m *memApplicationStore) FindByGigAndStudent(_ context.Context, gigID, studentID string) (*models.Application, error) {
	for _, a := range m.applications {
		if a.GigID == gigID && a.StudentID != nil && *a.StudentID == studentID {
			return a, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *memApplicationStore) UpdateStatus(_ context.Context, id string, status models.ApplicationStatus) (*models.Application, error) {
	a, ok := m.applications[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	a.Status = status
	return a, nil
}

type memGigStore struct {
	gigs map[string]*models.Gig
}

func (m *memGigStore) Create(_ context.Context, gig *models.Gig) error {
	gig.ID = uuid.New().String()
	gig.CreatedAt = time.Now().UTC()
	m.gigs[gig.ID] = gig
	return nil
}

func (m *memGigStore) GetByID(_ context.Context, id string) (*models.Gig, error) {
	gig, ok := m.gigs[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return gig, nil
}

func (m *memGigStore) List(_ context.Context, _ repositories.GigFilter) ([]*models.Gig, error) {
	out := []*models.Gig{}
	for _, g := range m.gigs {
		out = append(out, g)
	}
	return out, nil
}

func (m *memGigStore) Update(ctx context.Context, id string, _ *dto.UpdateGigRequest) (*models.Gig, error) {
	return m.GetByID(ctx, id)
}

func (m *memGigStore) Close(ctx context.Context, id string, _, _ *string) (*models.Gig, error) {
	return m.GetByID(ctx, id)
}

func (m *memGigStore) Hold(ctx context.Context, id, _ string) (*models.Gig, error) {
	return m.GetByID(ctx, id)
}

func (m *memGigStore) Activate(ctx context.Context, id string) (*models.Gig, error) {
	return m.GetByID(ctx, id)
}

func (m *memGigStore) Delete(_ context.Context, id string) error {
	delete(m.gigs, id)
	return nil
}

type memStudentStore struct {
	students map[string]*models.Student
}

func (m *memStudentStore) Create(_ context.Context, s *models.Student) error {
	s.ID = uuid.New().String()
	m.students[s.ID] = s
	return nil
}

func (m *memStudentStore) GetByID(_ context.Context, id string) (*models.Student, error) {
	s, ok := m.students[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return s, nil
}

func (m *memStudentStore) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	for _, s := range m.students {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *memStudentStore) Update(ctx context.Context, id string, _ *dto.UpdateStudentRequest) (*models.Student, error) {
	return m.GetByID(ctx, id)
}

type applicationTestEnv struct {
	router        *gin.Engine
	applications  *memApplicationStore
	gigs          *memGigStore
	notifications *memNotificationStore
}

func newApplicationTestEnv() *applicationTestEnv {
	gin.SetMode(gin.TestMode)

	applications := &memApplicationStore{applications: make(map[string]*models.Application)}
	gigs := &memGigStore{gigs: make(map[string]*models.Gig)}
	students := &memStudentStore{students: make(map[string]*models.Student)}
	notifications := &memNotificationStore{}

	notificationService := services.NewNotificationService(notifications)
	applicationService := services.NewApplicationService(applications, gigs, students, notificationService)
	controller := NewApplicationController(applicationService)

	router := gin.New()
	group := router.Group("/api/applications")
	group.POST("", controller.CreateApplication)
	group.GET("/check", controller.CheckApplication)
	group.GET("/gig/:gigId", controller.GetApplicationsByGig)
	group.PUT("/:id/status", controller.UpdateApplicationStatus)

	return &applicationTestEnv{
		router:        router,
		applications:  applications,
		gigs:          gigs,
		notifications: notifications,
	}
}

func (e *applicationTestEnv) seedGig(t *testing.T, title string) *models.Gig {
	t.Helper()
	gig := &models.Gig{
		ProfessorID: uuid.New().String(),
		Title:       title,
		Status:      models.GigStatusOpen,
	}
	require.NoError(t, e.gigs.Create(context.Background(), gig))
	return gig
}

func (e *applicationTestEnv) postJSON(t *testing.T, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	e.router.ServeHTTP(w, req)
	return w
}

func (e *applicationTestEnv) putJSON(t *testing.T, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	e.router.ServeHTTP(w, req)
	return w
}

func TestCreateApplicationReturnsCreated(t *testing.T) {
	env := newApplicationTestEnv()
	gig := env.seedGig(t, "Distributed Tracing Study")

	w := env.postJSON(t, "/api/applications", map[string]interface{}{
		"gig_id":        gig.ID,
		"student_name":  "Ada Lovelace",
		"student_email": "ada@example.edu",
		"resume_link":   "https://example.edu/resume.pdf",
		"status":        "accepted",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Application
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, models.ApplicationStatusPending, created.Status)
	assert.False(t, created.AppliedAt.IsZero())

	// Side effect: one coalescable notification to the professor
	require.Len(t, env.notifications.notifications, 1)
	assert.Equal(t, gig.ProfessorID, env.notifications.notifications[0].UserID)
}

func TestCreateApplicationMissingFields(t *testing.T) {
	env := newApplicationTestEnv()

	w := env.postJSON(t, "/api/applications", map[string]interface{}{
		"gig_id": uuid.New().String(),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VAL_001")
}

func TestCreateApplicationSucceedsWhenGigMissing(t *testing.T) {
	env := newApplicationTestEnv()

	w := env.postJSON(t, "/api/applications", map[string]interface{}{
		"gig_id":        uuid.New().String(),
		"student_name":  "Ada Lovelace",
		"student_email": "ada@example.edu",
		"resume_link":   "https://example.edu/resume.pdf",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, env.notifications.notifications)
}

func TestUpdateApplicationStatusInvalidValue(t *testing.T) {
	env := newApplicationTestEnv()
	gig := env.seedGig(t, "Gig")

	w := env.postJSON(t, "/api/applications", map[string]interface{}{
		"gig_id":        gig.ID,
		"student_name":  "Ada",
		"student_email": "ada@example.edu",
		"resume_link":   "https://example.edu/resume.pdf",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Application
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	resp := env.putJSON(t, "/api/applications/"+created.ID+"/status", map[string]string{"status": "maybe"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestUpdateApplicationStatusUnknownApplication(t *testing.T) {
	env := newApplicationTestEnv()

	resp := env.putJSON(t, "/api/applications/"+uuid.New().String()+"/status", map[string]string{"status": "accepted"})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestCheckApplicationRequiresParams(t *testing.T) {
	env := newApplicationTestEnv()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/applications/check?gig_id="+uuid.New().String(), nil)
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckApplicationReportsExisting(t *testing.T) {
	env := newApplicationTestEnv()
	gig := env.seedGig(t, "Gig")
	studentID := uuid.New().String()

	w := env.postJSON(t, "/api/applications", map[string]interface{}{
		"gig_id":        gig.ID,
		"student_id":    studentID,
		"student_name":  "Ada",
		"student_email": "ada@example.edu",
		"resume_link":   "https://example.edu/resume.pdf",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	check := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/applications/check?gig_id="+gig.ID+"&student_id="+studentID, nil)
	env.router.ServeHTTP(check, req)

	require.Equal(t, http.StatusOK, check.Code)

	var body dto.HasAppliedResponse
	require.NoError(t, json.Unmarshal(check.Body.Bytes(), &body))
	assert.True(t, body.HasApplied)
	assert.NotNil(t, body.Application)
}

func TestGetApplicationsByGig(t *testing.T) {
	env := newApplicationTestEnv()
	gig := env.seedGig(t, "Gig")

	for i := 0; i < 2; i++ {
		w := env.postJSON(t, "/api/applications", map[string]interface{}{
			"gig_id":        gig.ID,
			"student_name":  "Student",
			"student_email": "student@example.edu",
			"resume_link":   "https://example.edu/resume.pdf",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/applications/gig/"+gig.ID, nil)
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var listed []models.Application
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Len(t, listed, 2)
}

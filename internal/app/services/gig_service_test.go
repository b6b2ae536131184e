package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sid77x/profhub/internal/app/models"
	"github.com/sid77x/profhub/internal/app/models/dto"
	"github.com/sid77x/profhub/internal/pkg/apperrors"
)

func createGigRequest(professorID string) *dto.CreateGigRequest {
	return &dto.CreateGigRequest{
		ProfessorID: professorID,
		Title:       "Federated Learning Study",
		Description: "Survey and benchmark",
		AreaOfStudy: "Machine Learning",
	}
}

func TestCreateGigStartsOpen(t *testing.T) {
	gigs := newFakeGigStore()
	service := NewGigService(gigs)

	gig, err := service.Create(context.Background(), createGigRequest(uuid.New().String()))
	require.NoError(t, err)

	assert.Equal(t, models.GigStatusOpen, gig.Status)
	assert.NotEmpty(t, gig.ID)
}

func TestCreateGigRejectsMalformedProfessorID(t *testing.T) {
	service := NewGigService(newFakeGigStore())

	_, err := service.Create(context.Background(), createGigRequest("prof-1"))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestListRejectsUnknownStatusFilter(t *testing.T) {
	service := NewGigService(newFakeGigStore())

	_, err := service.List(context.Background(), "archived", "")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestListFiltersByStatus(t *testing.T) {
	gigs := newFakeGigStore()
	service := NewGigService(gigs)
	ctx := context.Background()

	professorID := uuid.New().String()
	open, err := service.Create(ctx, createGigRequest(professorID))
	require.NoError(t, err)
	second, err := service.Create(ctx, createGigRequest(professorID))
	require.NoError(t, err)

	_, err = service.Close(ctx, second.ID, &dto.CloseGigRequest{})
	require.NoError(t, err)

	listed, err := service.List(ctx, "open", "")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, open.ID, listed[0].ID)
}

func TestGigLifecycleTransitions(t *testing.T) {
	gigs := newFakeGigStore()
	service := NewGigService(gigs)
	ctx := context.Background()

	gig, err := service.Create(ctx, createGigRequest(uuid.New().String()))
	require.NoError(t, err)

	held, err := service.Hold(ctx, gig.ID, "reviewing applicants")
	require.NoError(t, err)
	assert.Equal(t, models.GigStatusOnHold, held.Status)
	require.NotNil(t, held.PausedReason)
	assert.Equal(t, "reviewing applicants", *held.PausedReason)

	reopened, err := service.Activate(ctx, gig.ID)
	require.NoError(t, err)
	assert.Equal(t, models.GigStatusOpen, reopened.Status)
	assert.Nil(t, reopened.PausedReason)

	link := "https://doi.org/10.1000/example"
	venue := "ICML"
	closed, err := service.Close(ctx, gig.ID, &dto.CloseGigRequest{PublicationLink: &link, PublicationVenue: &venue})
	require.NoError(t, err)
	assert.Equal(t, models.GigStatusClosed, closed.Status)
	require.NotNil(t, closed.PublicationLink)
	assert.Equal(t, link, *closed.PublicationLink)
}

func TestUpdateGigRejectsEmptyRequest(t *testing.T) {
	service := NewGigService(newFakeGigStore())

	_, err := service.Update(context.Background(), uuid.New().String(), &dto.UpdateGigRequest{})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestDeleteGigUnknownID(t *testing.T) {
	service := NewGigService(newFakeGigStore())

	err := service.Delete(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, apperrors.ErrGigNotFound)
}

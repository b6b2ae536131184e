package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sid77x/profhub/internal/app/models/dto"
	"github.com/sid77x/profhub/internal/app/services"
	"github.com/sid77x/profhub/internal/middleware"
)

// ApplicationController handles application submission and lifecycle endpoints
type ApplicationController struct {
	applicationService *services.ApplicationService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService *services.ApplicationService) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
	}
}

// CreateApplication submits a new application
// @Summary Submit an application
// @Description Submits an application for a gig and notifies its professor.
// Status and applied_at are set server-side.
// @Tags applications
// @Accept json
// @Produce json
// @Param request body dto.CreateApplicationRequest true "Application information"
// @Success 201 {object} models.Application "Application submitted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications [post]
func (c *ApplicationController) CreateApplication(ctx *gin.Context) {
	var req dto.CreateApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid application data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	application, err := c.applicationService.Submit(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, application)
}

// GetApplicationsByGig retrieves all applications for a gig
// @Summary List applications for a gig
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param gigId path string true "Gig ID"
// @Success 200 {array} models.Application "Applications retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid gig ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications/gig/{gigId} [get]
func (c *ApplicationController) GetApplicationsByGig(ctx *gin.Context) {
	applications, err := c.applicationService.ListByGig(ctx, ctx.Param("gigId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, applications)
}

// CheckApplication reports whether a student already applied to a gig
// @Summary Duplicate-application check
// @Tags applications
// @Produce json
// @Param gig_id query string true "Gig ID"
// @Param student_id query string true "Student ID"
// @Success 200 {object} dto.HasAppliedResponse "Check result"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications/check [get]
func (c *ApplicationController) CheckApplication(ctx *gin.Context) {
	gigID := ctx.Query("gig_id")
	studentID := ctx.Query("student_id")
	if gigID == "" || studentID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "gig_id and student_id are required")))
		return
	}

	hasApplied, application, err := c.applicationService.HasApplied(ctx, gigID, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	response := dto.HasAppliedResponse{HasApplied: hasApplied}
	if application != nil {
		response.Application = application
	}

	ctx.JSON(http.StatusOK, response)
}

// UpdateApplicationStatus transitions an application's status
// @Summary Update application status
// @Description Moves an application to pending, accepted or rejected and
// notifies the student on a decision.
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param request body dto.UpdateApplicationStatusRequest true "Target status"
// @Success 200 {object} models.Application "Application updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications/{id}/status [put]
func (c *ApplicationController) UpdateApplicationStatus(ctx *gin.Context) {
	var req dto.UpdateApplicationStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid status data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	application, err := c.applicationService.UpdateStatus(ctx, ctx.Param("id"), req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, application)
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sid77x/profhub/internal/app/models/dto"
	"github.com/sid77x/profhub/internal/app/services"
	"github.com/sid77x/profhub/internal/middleware"
)

// GigController handles gig posting and lifecycle endpoints
type GigController struct {
	gigService *services.GigService
}

// NewGigController creates a new GigController
func NewGigController(gigService *services.GigService) *GigController {
	return &GigController{
		gigService: gigService,
	}
}

// CreateGig posts a new gig
// @Summary Create a gig
// @Description Posts a new gig. New gigs always start open.
// @Tags gigs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateGigRequest true "Gig information"
// @Success 201 {object} models.Gig "Gig created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /gigs [post]
func (c *GigController) CreateGig(ctx *gin.Context) {
	var req dto.CreateGigRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid gig data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	gig, err := c.gigService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gig)
}

// GetAllGigs retrieves gigs with optional filters
// @Summary List gigs
// @Tags gigs
// @Produce json
// @Param status query string false "Filter by status (open, closed, on-hold)"
// @Param professor_id query string false "Filter by professor"
// @Success 200 {array} models.Gig "Gigs retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter value"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /gigs [get]
func (c *GigController) GetAllGigs(ctx *gin.Context) {
	gigs, err := c.gigService.List(ctx, ctx.Query("status"), ctx.Query("professor_id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gigs)
}

// GetGigByID retrieves a gig by ID
// @Summary Get gig by ID
// @Tags gigs
// @Produce json
// @Param id path string true "Gig ID"
// @Success 200 {object} models.Gig "Gig retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid gig ID"
// @Failure 404 {object} dto.ErrorResponse "Gig not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /gigs/{id} [get]
func (c *GigController) GetGigByID(ctx *gin.Context) {
	gig, err := c.gigService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gig)
}

// GetGigsByProfessor retrieves all gigs posted by one professor
// @Summary List a professor's gigs
// @Tags gigs
// @Produce json
// @Param professorId path string true "Professor ID"
// @Success 200 {array} models.Gig "Gigs retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid professor ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /gigs/professor/{professorId} [get]
func (c *GigController) GetGigsByProfessor(ctx *gin.Context) {
	gigs, err := c.gigService.ListByProfessor(ctx, ctx.Param("professorId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gigs)
}

// UpdateGig applies a partial update
// @Summary Update a gig
// @Description Updates only the fields present in the request body
// @Tags gigs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gig ID"
// @Param request body dto.UpdateGigRequest true "Fields to update"
// @Success 200 {object} models.Gig "Gig updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Gig not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /gigs/{id} [put]
func (c *GigController) UpdateGig(ctx *gin.Context) {
	var req dto.UpdateGigRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid gig data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	gig, err := c.gigService.Update(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gig)
}

// CloseGig marks a gig closed
// @Summary Close a gig
// @Description Closes a gig, optionally recording where the work was published
// @Tags gigs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gig ID"
// @Param request body dto.CloseGigRequest false "Publication details"
// @Success 200 {object} models.Gig "Gig closed successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid gig ID"
// @Failure 404 {object} dto.ErrorResponse "Gig not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /gigs/{id}/close [put]
func (c *GigController) CloseGig(ctx *gin.Context) {
	var req dto.CloseGigRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid close data")
			errorDetail = errorDetail.WithDetails(err.Error())
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
	}

	gig, err := c.gigService.Close(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gig)
}

// HoldGig pauses a gig with a reason
// @Summary Put a gig on hold
// @Tags gigs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gig ID"
// @Param request body dto.HoldGigRequest true "Pause reason"
// @Success 200 {object} models.Gig "Gig put on hold"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Gig not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /gigs/{id}/hold [put]
func (c *GigController) HoldGig(ctx *gin.Context) {
	var req dto.HoldGigRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid hold data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	gig, err := c.gigService.Hold(ctx, ctx.Param("id"), req.PausedReason)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gig)
}

// ActivateGig reopens an on-hold gig
// @Summary Reactivate a gig
// @Tags gigs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gig ID"
// @Success 200 {object} models.Gig "Gig reactivated"
// @Failure 400 {object} dto.ErrorResponse "Invalid gig ID"
// @Failure 404 {object} dto.ErrorResponse "Gig not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /gigs/{id}/activate [put]
func (c *GigController) ActivateGig(ctx *gin.Context) {
	gig, err := c.gigService.Activate(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gig)
}

// DeleteGig removes a gig
// @Summary Delete a gig
// @Tags gigs
// @Security BearerAuth
// @Param id path string true "Gig ID"
// @Success 204 "Gig deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid gig ID"
// @Failure 404 {object} dto.ErrorResponse "Gig not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /gigs/{id} [delete]
func (c *GigController) DeleteGig(ctx *gin.Context) {
	if err := c.gigService.Delete(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

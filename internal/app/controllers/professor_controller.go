package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sid77x/profhub/internal/app/models/dto"
	"github.com/sid77x/profhub/internal/app/services"
	"github.com/sid77x/profhub/internal/middleware"
)

// ProfessorController handles professor profile operations
type ProfessorController struct {
	professorService *services.ProfessorService
}

// NewProfessorController creates a new ProfessorController
func NewProfessorController(professorService *services.ProfessorService) *ProfessorController {
	return &ProfessorController{
		professorService: professorService,
	}
}

// GetAllProfessors retrieves all professors
// @Summary List professors
// @Tags professors
// @Produce json
// @Success 200 {array} models.Professor "Professors retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professors [get]
func (c *ProfessorController) GetAllProfessors(ctx *gin.Context) {
	professors, err := c.professorService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, professors)
}

// GetProfessorByID retrieves a professor by ID
// @Summary Get professor by ID
// @Tags professors
// @Produce json
// @Param id path string true "Professor ID"
// @Success 200 {object} models.Professor "Professor retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid professor ID"
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professors/{id} [get]
func (c *ProfessorController) GetProfessorByID(ctx *gin.Context) {
	professor, err := c.professorService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, professor)
}

// UpdateProfessor applies a partial profile update
// @Summary Update professor profile
// @Description Updates only the fields present in the request body
// @Tags professors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Professor ID"
// @Param request body dto.UpdateProfessorRequest true "Fields to update"
// @Success 200 {object} models.Professor "Professor updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professors/{id} [put]
func (c *ProfessorController) UpdateProfessor(ctx *gin.Context) {
	var req dto.UpdateProfessorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid professor data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	professor, err := c.professorService.Update(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, professor)
}

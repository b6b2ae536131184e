package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sid77x/profhub/internal/app/models/dto"
	"github.com/sid77x/profhub/internal/pkg/apperrors"
	"github.com/sid77x/profhub/internal/pkg/logger"
)

// isAny reports whether err matches any of the targets
func isAny(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// HandleAPIError maps service errors onto HTTP responses. Controllers call
// it for every error a service returns so that status codes stay consistent
// across the API.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case isAny(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest,
		apperrors.ErrInvalidID, apperrors.ErrInvalidApplicationStatus, apperrors.ErrInvalidGigStatus):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))

	case isAny(err, apperrors.ErrResourceNotFound, apperrors.ErrProfessorNotFound,
		apperrors.ErrStudentNotFound, apperrors.ErrGigNotFound,
		apperrors.ErrApplicationNotFound, apperrors.ErrNotificationNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())))

	case isAny(err, apperrors.ErrEmailAlreadyExists, apperrors.ErrRegNoAlreadyExists, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error())))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid email or password")))

	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")))

	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")))

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled service error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}

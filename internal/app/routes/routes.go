package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sid77x/profhub/internal/app/controllers"
	"github.com/sid77x/profhub/internal/middleware"
)

// Auth endpoints share one limiter so an IP cannot hammer logins
const (
	authRateLimit  = 20
	authRateWindow = time.Minute
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	professorController *controllers.ProfessorController,
	studentController *controllers.StudentController,
	gigController *controllers.GigController,
	applicationController *controllers.ApplicationController,
	notificationController *controllers.NotificationController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	limiter := middleware.NewRateLimiter()
	limited := middleware.RateLimit(limiter, authRateLimit, authRateWindow)

	// --- Public auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", limited, authController.Register)
		auth.POST("/login", limited, authController.Login)
		auth.GET("/me", authController.Me)
	}

	// --- Professor routes ---
	professors := api.Group("/professors")
	{
		professors.GET("", professorController.GetAllProfessors)
		professors.POST("", limited, authController.Register)
		professors.GET("/:id", professorController.GetProfessorByID)
		professors.PUT("/:id", authMiddleware.JWTAuth(), professorController.UpdateProfessor)
	}

	// --- Student routes ---
	students := api.Group("/students")
	{
		students.POST("/register", limited, studentController.Register)
		students.POST("/login", limited, studentController.Login)
		students.GET("/:id", studentController.GetStudentByID)
		students.PUT("/:id", authMiddleware.JWTAuth(), studentController.UpdateStudent)
		students.GET("/:id/applications", authMiddleware.JWTAuth(), studentController.GetStudentApplications)
	}

	// --- Gig routes ---
	gigs := api.Group("/gigs")
	{
		gigs.GET("", gigController.GetAllGigs)
		gigs.GET("/:id", gigController.GetGigByID)
		gigs.GET("/professor/:professorId", gigController.GetGigsByProfessor)

		gigsProtected := gigs.Group("")
		gigsProtected.Use(authMiddleware.JWTAuth())
		{
			gigsProtected.POST("", gigController.CreateGig)
			gigsProtected.PUT("/:id", gigController.UpdateGig)
			gigsProtected.PUT("/:id/close", gigController.CloseGig)
			gigsProtected.PUT("/:id/hold", gigController.HoldGig)
			gigsProtected.PUT("/:id/activate", gigController.ActivateGig)
			gigsProtected.DELETE("/:id", gigController.DeleteGig)
		}
	}

	// --- Application routes ---
	applications := api.Group("/applications")
	{
		applications.POST("", applicationController.CreateApplication)
		applications.GET("/check", applicationController.CheckApplication)
		applications.GET("/gig/:gigId", authMiddleware.JWTAuth(), applicationController.GetApplicationsByGig)
		applications.PUT("/:id/status", authMiddleware.JWTAuth(), applicationController.UpdateApplicationStatus)
	}

	// --- Notification routes ---
	// Every route keys on one :id segment; gin forbids mixing param names at
	// the same position, so list/unread/mark-all-read take the user ID where
	// read/delete take the notification ID.
	notifications := api.Group("/notifications")
	notifications.Use(authMiddleware.JWTAuth())
	{
		notifications.GET("/:id", notificationController.GetNotifications)
		notifications.GET("/:id/unread", notificationController.GetUnreadCount)
		notifications.PUT("/:id/read", notificationController.MarkNotificationRead)
		notifications.PUT("/:id/mark-all-read", notificationController.MarkAllNotificationsRead)
		notifications.DELETE("/:id", notificationController.DeleteNotification)
	}
}

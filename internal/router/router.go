package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"jobboard/internal/auth"
	"jobboard/internal/config"
	"jobboard/internal/handler"
	"jobboard/internal/metrics"
	"jobboard/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	employerHandler *handler.EmployerHandler,
	jobSeekerHandler *handler.JobSeekerHandler,
	jobHandler *handler.JobHandler,
	resumeHandler *handler.ResumeHandler,
	applicationHandler *handler.ApplicationHandler,
	notificationHandler *handler.NotificationHandler,
	adminHandler *handler.AdminHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(metrics.Middleware())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)
	api.POST("/auth/password-reset/request", authHandler.RequestPasswordReset)
	api.POST("/auth/password-reset/confirm", authHandler.ConfirmPasswordReset)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}))

	secured.GET("/me", func(c echo.Context) error {
		claims, ok := tokenClaims(c)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		return c.JSON(http.StatusOK, echo.Map{
			"user_id": claims.UserID,
			"email":   claims.Email,
			"role":    claims.Role,
		})
	})

	// User routes. Listing, hard delete and the purge sweep are admin-only.
	secured.GET("/users/:id", userHandler.GetUser)
	secured.PUT("/users/:id", userHandler.UpdateUser)
	secured.POST("/users/:id/deactivate", userHandler.Deactivate)
	secured.GET("/users", userHandler.ListUsers, RequireRole(model.RoleAdmin))
	secured.DELETE("/users/:id", userHandler.DeleteUser, RequireRole(model.RoleAdmin))
	secured.POST("/users/:id/reactivate", userHandler.Reactivate, RequireRole(model.RoleAdmin))
	secured.POST("/users/purge-deactivated", userHandler.PurgeDeactivated, RequireRole(model.RoleAdmin))

	// Employer routes
	secured.GET("/employers", employerHandler.ListEmployers)
	secured.GET("/employers/search", employerHandler.SearchEmployers)
	secured.GET("/employers/:id", employerHandler.GetEmployer)
	secured.POST("/employers", employerHandler.CreateEmployer, RequireRole(model.RoleAdmin, model.RoleEmployer))
	secured.PUT("/employers/:id", employerHandler.UpdateEmployer, RequireRole(model.RoleAdmin, model.RoleEmployer))
	secured.DELETE("/employers/:id", employerHandler.DeleteEmployer, RequireRole(model.RoleAdmin))

	// Job seeker routes
	secured.GET("/jobseekers", jobSeekerHandler.ListJobSeekers)
	secured.GET("/jobseekers/search", jobSeekerHandler.SearchJobSeekers)
	secured.GET("/jobseekers/:id", jobSeekerHandler.GetJobSeeker)
	secured.POST("/jobseekers", jobSeekerHandler.CreateJobSeeker, RequireRole(model.RoleAdmin, model.RoleJobSeeker))
	secured.PUT("/jobseekers/:id", jobSeekerHandler.UpdateJobSeeker, RequireRole(model.RoleAdmin, model.RoleJobSeeker))
	secured.DELETE("/jobseekers/:id", jobSeekerHandler.DeleteJobSeeker, RequireRole(model.RoleAdmin))

	// Job routes
	secured.GET("/jobs", jobHandler.ListJobs)
	secured.GET("/jobs/search", jobHandler.SearchJobs)
	secured.GET("/jobs/:id", jobHandler.GetJob)
	secured.POST("/jobs", jobHandler.CreateJob, RequireRole(model.RoleAdmin, model.RoleEmployer))
	secured.PUT("/jobs/:id", jobHandler.UpdateJob, RequireRole(model.RoleAdmin, model.RoleEmployer))
	secured.DELETE("/jobs/:id", jobHandler.DeleteJob, RequireRole(model.RoleAdmin, model.RoleEmployer))

	// Resume routes
	secured.GET("/resumes", resumeHandler.ListResumes)
	secured.GET("/resumes/:id", resumeHandler.GetResume)
	secured.GET("/resumes/:id/download", resumeHandler.DownloadResume)
	secured.POST("/resumes", resumeHandler.UploadResume, RequireRole(model.RoleAdmin, model.RoleJobSeeker))
	secured.PUT("/resumes/:id", resumeHandler.UpdateResume, RequireRole(model.RoleAdmin, model.RoleJobSeeker))
	secured.DELETE("/resumes/:id", resumeHandler.DeleteResume, RequireRole(model.RoleAdmin, model.RoleJobSeeker))
	secured.POST("/resumes/set-default", resumeHandler.SetDefault, RequireRole(model.RoleAdmin, model.RoleJobSeeker))

	// Application routes
	secured.GET("/applications", applicationHandler.ListApplications)
	secured.GET("/applications/:id", applicationHandler.GetApplication)
	secured.POST("/applications", applicationHandler.Apply, RequireRole(model.RoleAdmin, model.RoleJobSeeker))
	secured.PUT("/applications/:id", applicationHandler.UpdateApplication)
	secured.DELETE("/applications/:id", applicationHandler.DeleteApplication)
	secured.POST("/applications/:id/review", applicationHandler.MarkReviewed, RequireRole(model.RoleAdmin, model.RoleEmployer))
	secured.POST("/applications/:id/shortlist", applicationHandler.Shortlist, RequireRole(model.RoleAdmin, model.RoleEmployer))
	secured.POST("/applications/:id/interview", applicationHandler.ScheduleInterview, RequireRole(model.RoleAdmin, model.RoleEmployer))

	// Notification routes
	secured.GET("/notifications", notificationHandler.ListNotifications)
	secured.GET("/notifications/unsent-email", notificationHandler.ListUnsentEmail, RequireRole(model.RoleAdmin))
	secured.POST("/notifications", notificationHandler.CreateNotification, RequireRole(model.RoleAdmin, model.RoleEmployer))
	secured.POST("/notifications/read-all", notificationHandler.MarkAllRead)
	secured.POST("/notifications/:id/read", notificationHandler.MarkRead)
	secured.DELETE("/notifications/:id", notificationHandler.DeleteNotification)

	// Admin routes
	secured.GET("/admin/stats", adminHandler.Stats, RequireRole(model.RoleAdmin))
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

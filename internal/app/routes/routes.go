// Package routes maps URLs to controllers
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/adithi-k-max/FSAD-project/internal/app/controllers"
	"github.com/adithi-k-max/FSAD-project/internal/app/models"
	"github.com/adithi-k-max/FSAD-project/internal/middleware"
)

// Controllers bundles the handlers mounted by SetupRouter
type Controllers struct {
	Auth         *controllers.AuthController
	Jobs         *controllers.JobController
	Applications *controllers.ApplicationController
	Users        *controllers.UserController
	Health       *controllers.HealthController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware) {
	router.GET("/ping", c.Health.Ping)

	api := router.Group("/api")
	api.GET("/health", c.Health.Health)

	// --- Public auth routes ---
	api.POST("/register", c.Auth.Register)
	api.POST("/login", c.Auth.Login)

	// --- Session routes ---
	api.POST("/logout", authMiddleware.RequireAuth(), c.Auth.Logout)
	api.GET("/user", authMiddleware.RequireAuth(), c.Auth.CurrentUser)

	// Role checks that carry a specific message happen in the services
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.RequireUser())
	{
		jobs := authenticated.Group("/jobs")
		{
			jobs.GET("", c.Jobs.ListJobs)
			jobs.POST("", c.Jobs.CreateJob)
			jobs.GET("/:id", c.Jobs.GetJob)
			jobs.GET("/:id/applications", c.Jobs.ListJobApplications)
		}

		applications := authenticated.Group("/applications")
		{
			applications.GET("", c.Applications.ListApplications)
			applications.POST("", c.Applications.CreateApplication)
			applications.PATCH("/:id/status", c.Applications.UpdateApplicationStatus)
		}
	}

	// --- Placement office routes ---
	office := api.Group("")
	office.Use(authMiddleware.RequireRole(models.RoleAdmin, models.RoleOfficer))
	{
		office.GET("/stats", c.Users.GetStats)
		office.GET("/users", c.Users.ListUsers)
		office.GET("/employers", c.Users.ListEmployers)
		office.PATCH("/employers/:id/approve", c.Users.ApproveEmployer)
	}

	api.GET("/students",
		authMiddleware.RequireRole(models.RoleAdmin, models.RoleOfficer, models.RoleEmployer),
		c.Users.ListStudents,
	)
}

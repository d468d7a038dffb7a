package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adithi-k-max/FSAD-project/internal/app/services"
	"github.com/adithi-k-max/FSAD-project/internal/middleware"
)

// UserController serves the administrative user, profile and stats views
type UserController struct {
	adminService services.AdminService
}

// NewUserController creates a new UserController
func NewUserController(adminService services.AdminService) *UserController {
	return &UserController{adminService: adminService}
}

// ListUsers lists every account
// @Summary List users
// @Tags admin
// @Produce json
// @Security CookieAuth
// @Success 200 {array} models.User
// @Failure 403 {object} dto.ErrorResponse "Insufficient permissions"
// @Router /users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	users, err := c.adminService.ListUsers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// ListStudents lists student profiles
// @Summary List students
// @Tags admin
// @Produce json
// @Security CookieAuth
// @Success 200 {array} models.Student
// @Failure 403 {object} dto.ErrorResponse "Insufficient permissions"
// @Router /students [get]
func (c *UserController) ListStudents(ctx *gin.Context) {
	students, err := c.adminService.ListStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, students)
}

// ListEmployers lists employer profiles
// @Summary List employers
// @Tags admin
// @Produce json
// @Security CookieAuth
// @Success 200 {array} models.Employer
// @Failure 403 {object} dto.ErrorResponse "Insufficient permissions"
// @Router /employers [get]
func (c *UserController) ListEmployers(ctx *gin.Context) {
	employers, err := c.adminService.ListEmployers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, employers)
}

// ApproveEmployer marks an employer profile approved
// @Summary Approve employer
// @Tags admin
// @Produce json
// @Security CookieAuth
// @Param id path int true "Employer profile ID"
// @Success 200 {object} models.Employer
// @Failure 404 {object} dto.ErrorResponse "Employer not found"
// @Router /employers/{id}/approve [patch]
func (c *UserController) ApproveEmployer(ctx *gin.Context) {
	id, ok := middleware.ParamID(ctx, "id")
	if !ok {
		return
	}

	employer, err := c.adminService.ApproveEmployer(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, employer)
}

// GetStats returns placement dashboard counters
// @Summary Placement statistics
// @Tags admin
// @Produce json
// @Security CookieAuth
// @Success 200 {object} models.Stats
// @Failure 403 {object} dto.ErrorResponse "Insufficient permissions"
// @Router /stats [get]
func (c *UserController) GetStats(ctx *gin.Context) {
	stats, err := c.adminService.GetStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

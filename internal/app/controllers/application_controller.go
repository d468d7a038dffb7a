package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adithi-k-max/FSAD-project/internal/app/models"
	"github.com/adithi-k-max/FSAD-project/internal/app/models/dto"
	"github.com/adithi-k-max/FSAD-project/internal/app/services"
	"github.com/adithi-k-max/FSAD-project/internal/middleware"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/apperrors"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/validation"
)

// ApplicationController handles job applications
type ApplicationController struct {
	appService services.ApplicationService
	logger     zerolog.Logger
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(appService services.ApplicationService, logger zerolog.Logger) *ApplicationController {
	return &ApplicationController{appService: appService, logger: logger}
}

// ListApplications lists the applications visible to the caller
// @Summary List applications
// @Description Students see their own, employers those on their jobs, admins and officers all.
// @Tags applications
// @Produce json
// @Security CookieAuth
// @Success 200 {array} models.ApplicationDetail
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Router /applications [get]
func (c *ApplicationController) ListApplications(ctx *gin.Context) {
	caller, _ := middleware.CurrentUser(ctx)

	apps, err := c.appService.List(ctx.Request.Context(), caller)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, apps)
}

// CreateApplication applies the calling student to a job
// @Summary Apply to a job
// @Tags applications
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param request body dto.CreateApplicationRequest true "Job to apply to"
// @Success 201 {object} models.Application
// @Failure 400 {object} dto.ErrorResponse "Invalid input or already applied"
// @Failure 403 {object} dto.ErrorResponse "Only students can apply for jobs"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /applications [post]
func (c *ApplicationController) CreateApplication(ctx *gin.Context) {
	caller, _ := middleware.CurrentUser(ctx)
	if !middleware.EnsureRole(ctx, caller, apperrors.ErrStudentsOnly, models.RoleStudent) {
		return
	}

	var req dto.CreateApplicationRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	app, err := c.appService.Apply(ctx.Request.Context(), caller, req.JobID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("applicationID", app.ID).Int64("jobID", app.JobID).Int64("studentID", app.StudentID).Msg("Application created")
	ctx.JSON(http.StatusCreated, app)
}

// UpdateApplicationStatus sets the review status of an application
// @Summary Update application status
// @Description Employers may only update applications on their own jobs.
// @Tags applications
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param id path int true "Application ID"
// @Param request body dto.UpdateApplicationStatusRequest true "New status"
// @Success 200 {object} models.Application
// @Failure 400 {object} dto.ErrorResponse "Invalid status value"
// @Failure 403 {object} dto.ErrorResponse "Cannot update applications for this job"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Router /applications/{id}/status [patch]
func (c *ApplicationController) UpdateApplicationStatus(ctx *gin.Context) {
	caller, _ := middleware.CurrentUser(ctx)
	if !middleware.EnsureRole(ctx, caller, apperrors.ErrApplicationManagers, models.RoleEmployer, models.RoleAdmin, models.RoleOfficer) {
		return
	}
	id, ok := middleware.ParamID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		verr := validation.FromBindingError(err)
		var ce *apperrors.CustomError
		if errors.As(verr, &ce) {
			verr = apperrors.NewValidationError(apperrors.ErrInvalidStatus.Message, ce.Fields)
		}
		middleware.HandleAPIError(ctx, verr)
		return
	}

	app, err := c.appService.UpdateStatus(ctx.Request.Context(), caller, id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("applicationID", app.ID).Str("status", string(app.Status)).Int64("by", caller.ID).Msg("Application status updated")
	ctx.JSON(http.StatusOK, app)
}

package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adithi-k-max/FSAD-project/internal/app/models"
	"github.com/adithi-k-max/FSAD-project/internal/app/models/dto"
	"github.com/adithi-k-max/FSAD-project/internal/app/services"
	"github.com/adithi-k-max/FSAD-project/internal/middleware"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/apperrors"
)

// JobController handles job postings
type JobController struct {
	jobService services.JobService
	appService services.ApplicationService
}

// NewJobController creates a new JobController
func NewJobController(jobService services.JobService, appService services.ApplicationService) *JobController {
	return &JobController{jobService: jobService, appService: appService}
}

// ListJobs lists job postings, newest first
// @Summary List jobs
// @Description Lists all postings joined with the posting employer. Filter by employer with employerId.
// @Tags jobs
// @Produce json
// @Security CookieAuth
// @Param employerId query int false "Only jobs posted by this employer user id"
// @Success 200 {array} models.JobWithEmployer
// @Failure 400 {object} dto.ErrorResponse "Invalid employerId"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Router /jobs [get]
func (c *JobController) ListJobs(ctx *gin.Context) {
	var employerID *int64
	if raw := ctx.Query("employerId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid employerId"))
			return
		}
		employerID = &id
	}

	jobs, err := c.jobService.ListJobs(ctx.Request.Context(), employerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, jobs)
}

// GetJob returns one posting
// @Summary Get job
// @Tags jobs
// @Produce json
// @Security CookieAuth
// @Param id path int true "Job ID"
// @Success 200 {object} models.JobWithEmployer
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /jobs/{id} [get]
func (c *JobController) GetJob(ctx *gin.Context) {
	id, ok := middleware.ParamID(ctx, "id")
	if !ok {
		return
	}

	job, err := c.jobService.GetJob(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, job)
}

// CreateJob posts a job for the calling employer
// @Summary Create job
// @Description The posting always belongs to the caller.
// @Tags jobs
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param request body dto.CreateJobRequest true "Job posting"
// @Success 201 {object} models.Job
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Only employers can post jobs"
// @Router /jobs [post]
func (c *JobController) CreateJob(ctx *gin.Context) {
	caller, _ := middleware.CurrentUser(ctx)
	if !middleware.EnsureRole(ctx, caller, apperrors.ErrEmployersOnly, models.RoleEmployer) {
		return
	}

	var req dto.CreateJobRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	job, err := c.jobService.CreateJob(ctx.Request.Context(), caller, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, job)
}

// ListJobApplications lists the applications received by one job
// @Summary List applications for a job
// @Tags jobs
// @Produce json
// @Security CookieAuth
// @Param id path int true "Job ID"
// @Success 200 {array} models.ApplicationDetail
// @Failure 403 {object} dto.ErrorResponse "Insufficient permissions"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /jobs/{id}/applications [get]
func (c *JobController) ListJobApplications(ctx *gin.Context) {
	caller, _ := middleware.CurrentUser(ctx)
	id, ok := middleware.ParamID(ctx, "id")
	if !ok {
		return
	}

	apps, err := c.appService.ListForJob(ctx.Request.Context(), caller, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, apps)
}

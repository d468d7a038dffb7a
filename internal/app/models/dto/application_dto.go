package dto

import "github.com/adithi-k-max/FSAD-project/internal/app/models"

// CreateApplicationRequest applies the caller to a job
type CreateApplicationRequest struct {
	JobID int64 `json:"jobId" binding:"required,gt=0" example:"1"`
}

// UpdateApplicationStatusRequest sets a new review status
type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required,oneof=applied shortlisted selected rejected" example:"shortlisted"`
}

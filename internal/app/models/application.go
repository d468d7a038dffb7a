package models

import "time"

// Application is a student's application to a job, a row of the 'applications' table.
// (JobID, StudentID) is unique.
type Application struct {
	ID        int64             `json:"id" db:"id" example:"1"`
	JobID     int64             `json:"jobId" db:"job_id" example:"1"`
	StudentID int64             `json:"studentId" db:"student_id" example:"5"`
	Status    ApplicationStatus `json:"status" db:"status" example:"applied"`
	AppliedAt time.Time         `json:"appliedAt" db:"applied_at" example:"2024-01-02T10:00:00Z"`
}

// ApplicationDetail is an application joined with its job and applicant
type ApplicationDetail struct {
	Application
	Job     *Job  `json:"job"`
	Student *User `json:"student"`
}

package models

import "time"

// Job is a posting owned by an employer user, a row of the 'jobs' table
type Job struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	EmployerID   int64     `json:"employerId" db:"employer_id" example:"2"`
	Title        string    `json:"title" db:"title" example:"Software Engineer"`
	Description  string    `json:"description" db:"description"`
	Requirements string    `json:"requirements" db:"requirements"`
	Location     string    `json:"location" db:"location" example:"Bangalore"`
	Salary       string    `json:"salary" db:"salary" example:"12 LPA"`
	PostedAt     time.Time `json:"postedAt" db:"posted_at" example:"2024-01-01T10:00:00Z"`
}

// JobWithEmployer is a job joined with the user that posted it
type JobWithEmployer struct {
	Job
	Employer *User `json:"employer"`
}

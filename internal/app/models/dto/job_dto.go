package dto

// CreateJobRequest is the body of a job posting. Any employer id in the
// body is ignored; the posting always belongs to the caller.
type CreateJobRequest struct {
	Title        string `json:"title" binding:"required,max=200" example:"Software Engineer"`
	Description  string `json:"description" binding:"required" example:"Build and ship backend services"`
	Requirements string `json:"requirements" binding:"required" example:"Go, SQL"`
	Location     string `json:"location" binding:"required,max=200" example:"Bangalore"`
	Salary       string `json:"salary" binding:"required,max=100" example:"12 LPA"`
}

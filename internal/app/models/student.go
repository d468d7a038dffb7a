package models

// Student is the profile of a student user, a row of the 'students' table
type Student struct {
	ID             int64   `json:"id" db:"id" example:"1"`
	UserID         int64   `json:"userId" db:"user_id" example:"5"`
	Department     *string `json:"department" db:"department" example:"Computer Science"`
	CGPA           *string `json:"cgpa" db:"cgpa" example:"8.9"`
	GraduationYear *int    `json:"graduationYear" db:"graduation_year" example:"2025"`
	ResumeURL      *string `json:"resumeUrl" db:"resume_url" example:"https://example.com/resume.pdf"`
}

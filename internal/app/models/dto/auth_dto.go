package dto

import "github.com/adithi-k-max/FSAD-project/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// StudentDetails is the optional profile supplied when a student registers
type StudentDetails struct {
	Department     *string `json:"department" binding:"omitempty,max=100" example:"Computer Science"`
	CGPA           *string `json:"cgpa" binding:"omitempty,max=10" example:"8.9"`
	GraduationYear *int    `json:"graduationYear" binding:"omitempty,gte=1900,lte=2200" example:"2025"`
	ResumeURL      *string `json:"resumeUrl" binding:"omitempty,url" example:"https://example.com/resume.pdf"`
}

// EmployerDetails is the company profile supplied when an employer registers.
// CompanyName is required for employers, checked by the auth service.
type EmployerDetails struct {
	CompanyName string  `json:"companyName" binding:"omitempty,max=200" example:"TechCorp Solutions"`
	Industry    *string `json:"industry" binding:"omitempty,max=100" example:"Technology"`
	Website     *string `json:"website" binding:"omitempty,url" example:"https://techcorp.example.com"`
}

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Username        string           `json:"username" binding:"required,min=3,max=50" example:"alice"`
	Password        string           `json:"password" binding:"required,password" example:"Secret123"`
	Email           string           `json:"email" binding:"required,email" example:"alice@college.edu"`
	Name            string           `json:"name" binding:"required,max=100" example:"Alice Johnson"`
	Role            models.RoleType  `json:"role" binding:"required,oneof=admin student employer officer" example:"student"`
	StudentDetails  *StudentDetails  `json:"studentDetails"`
	EmployerDetails *EmployerDetails `json:"employerDetails"`
}

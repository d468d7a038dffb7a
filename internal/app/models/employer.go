package models

// Employer is the company profile of an employer user, a row of the 'employers' table
type Employer struct {
	ID          int64   `json:"id" db:"id" example:"1"`
	UserID      int64   `json:"userId" db:"user_id" example:"2"`
	CompanyName string  `json:"companyName" db:"company_name" example:"TechCorp Solutions"`
	Industry    *string `json:"industry" db:"industry" example:"Technology"`
	Website     *string `json:"website" db:"website" example:"https://techcorp.example.com"`
	IsApproved  bool    `json:"isApproved" db:"is_approved" example:"false"`
}

// Package models holds the persisted entities of the placement domain and
// the denormalized views returned by joined queries.
package models

// RoleType is the immutable role a user registers with
type RoleType string

const (
	RoleAdmin    RoleType = "admin"
	RoleStudent  RoleType = "student"
	RoleEmployer RoleType = "employer"
	RoleOfficer  RoleType = "officer"
)

// Roles lists every role in display order
var Roles = []RoleType{RoleAdmin, RoleStudent, RoleEmployer, RoleOfficer}

// Valid reports whether r is a known role
func (r RoleType) Valid() bool {
	switch r {
	case RoleAdmin, RoleStudent, RoleEmployer, RoleOfficer:
		return true
	}
	return false
}

// Privileged reports whether r has campus-wide visibility
func (r RoleType) Privileged() bool {
	return r == RoleAdmin || r == RoleOfficer
}

// ApplicationStatus is the review state of an application
type ApplicationStatus string

const (
	StatusApplied     ApplicationStatus = "applied"
	StatusShortlisted ApplicationStatus = "shortlisted"
	StatusSelected    ApplicationStatus = "selected"
	StatusRejected    ApplicationStatus = "rejected"
)

// Valid reports whether s is a known status
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusApplied, StatusShortlisted, StatusSelected, StatusRejected:
		return true
	}
	return false
}

// Stats is the campus-wide placement summary
type Stats struct {
	TotalStudents  int64 `json:"totalStudents" example:"5"`
	TotalEmployers int64 `json:"totalEmployers" example:"3"`
	TotalJobs      int64 `json:"totalJobs" example:"6"`
	Placements     int64 `json:"placements" example:"1"`
}

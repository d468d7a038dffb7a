// Package seed loads the demo placement data into an empty store.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/adithi-k-max/FSAD-project/internal/app/models"
	"github.com/adithi-k-max/FSAD-project/internal/app/repositories"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/apperrors"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/auth"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/helpers"
)

// AdminUsername marks a seeded store; seeding is skipped once it exists
const AdminUsername = "admin"

// Credentials are the generated demo passwords, one per role group
type Credentials struct {
	Admin     string
	Employers string
	Students  string
}

// Options controls CreateDefaultData
type Options struct {
	// LogCredentials prints the generated passwords. Never set in production.
	LogCredentials bool
}

type employerSeed struct {
	user    models.User
	profile models.Employer
}

type studentSeed struct {
	user    models.User
	profile models.Student
}

type jobSeed struct {
	employer int // index into employers
	job      models.Job
}

type applicationSeed struct {
	job     int // index into jobs
	student int // index into students
	status  models.ApplicationStatus
}

var employers = []employerSeed{
	{
		user:    models.User{Username: "techcorp", Name: "Tech Corp HR", Email: "hr@techcorp.com"},
		profile: models.Employer{CompanyName: "Tech Corp", Industry: helpers.Ptr("Software"), Website: helpers.Ptr("https://techcorp.com")},
	},
	{
		user:    models.User{Username: "innovateinc", Name: "Innovate Inc HR", Email: "hr@innovate.com"},
		profile: models.Employer{CompanyName: "Innovate Inc", Industry: helpers.Ptr("AI/ML"), Website: helpers.Ptr("https://innovate.com")},
	},
	{
		user:    models.User{Username: "globalenterprises", Name: "Global Enterprises HR", Email: "hr@globalenterprises.com"},
		profile: models.Employer{CompanyName: "Global Enterprises", Industry: helpers.Ptr("Consulting"), Website: helpers.Ptr("https://globalenterprises.com")},
	},
}

var students = []studentSeed{
	{
		user:    models.User{Username: "alice", Name: "Alice Smith", Email: "alice@student.edu"},
		profile: models.Student{Department: helpers.Ptr("Computer Science"), CGPA: helpers.Ptr("3.8"), GraduationYear: helpers.Ptr(2024), ResumeURL: helpers.Ptr("https://example.com/resume_alice.pdf")},
	},
	{
		user:    models.User{Username: "bob", Name: "Bob Johnson", Email: "bob@student.edu"},
		profile: models.Student{Department: helpers.Ptr("Information Technology"), CGPA: helpers.Ptr("3.6"), GraduationYear: helpers.Ptr(2024), ResumeURL: helpers.Ptr("https://example.com/resume_bob.pdf")},
	},
	{
		user:    models.User{Username: "carol", Name: "Carol Davis", Email: "carol@student.edu"},
		profile: models.Student{Department: helpers.Ptr("Computer Science"), CGPA: helpers.Ptr("3.9"), GraduationYear: helpers.Ptr(2025), ResumeURL: helpers.Ptr("https://example.com/resume_carol.pdf")},
	},
	{
		user:    models.User{Username: "david", Name: "David Brown", Email: "david@student.edu"},
		profile: models.Student{Department: helpers.Ptr("Electronics Engineering"), CGPA: helpers.Ptr("3.5"), GraduationYear: helpers.Ptr(2024), ResumeURL: helpers.Ptr("https://example.com/resume_david.pdf")},
	},
	{
		user:    models.User{Username: "emma", Name: "Emma Wilson", Email: "emma@student.edu"},
		profile: models.Student{Department: helpers.Ptr("Data Science"), CGPA: helpers.Ptr("3.7"), GraduationYear: helpers.Ptr(2024), ResumeURL: helpers.Ptr("https://example.com/resume_emma.pdf")},
	},
}

var jobs = []jobSeed{
	{0, models.Job{
		Title:        "Junior React Developer",
		Description:  "We are looking for a junior developer with React skills to join our fast-growing team. You'll work on innovative products and cutting-edge technologies.",
		Requirements: "React, Node.js, TypeScript, CSS/HTML",
		Location:     "Remote",
		Salary:       "$60,000 - $70,000",
	}},
	{0, models.Job{
		Title:        "Senior Backend Engineer",
		Description:  "Looking for an experienced backend engineer to lead our infrastructure team.",
		Requirements: "Node.js, PostgreSQL, System Design, Docker",
		Location:     "San Francisco, CA",
		Salary:       "$120,000 - $150,000",
	}},
	{1, models.Job{
		Title:        "ML Engineer",
		Description:  "Join our AI/ML team to develop cutting-edge machine learning solutions.",
		Requirements: "Python, TensorFlow, PyTorch, AWS",
		Location:     "Remote",
		Salary:       "$100,000 - $130,000",
	}},
	{1, models.Job{
		Title:        "Data Scientist",
		Description:  "Work with large-scale datasets and build predictive models.",
		Requirements: "Python, SQL, Pandas, Statistics",
		Location:     "New York, NY",
		Salary:       "$90,000 - $120,000",
	}},
	{2, models.Job{
		Title:        "Management Consultant",
		Description:  "Help our clients solve complex business problems and drive transformations.",
		Requirements: "Problem-solving, Communication, Analytics",
		Location:     "Various",
		Salary:       "$80,000 - $100,000",
	}},
	{2, models.Job{
		Title:        "Full Stack Developer",
		Description:  "Build end-to-end solutions for our enterprise clients.",
		Requirements: "React, Node.js, MongoDB, AWS",
		Location:     "Chicago, IL",
		Salary:       "$85,000 - $110,000",
	}},
}

var applications = []applicationSeed{
	{job: 0, student: 0, status: models.StatusApplied},
	{job: 0, student: 1, status: models.StatusShortlisted},
	{job: 2, student: 4, status: models.StatusApplied},
	{job: 3, student: 4, status: models.StatusApplied},
	{job: 1, student: 2, status: models.StatusSelected},
}

// CreateDefaultData seeds the demo admin, employers, students, jobs and
// applications in one transaction. It returns (nil, nil) when the admin
// user already exists.
func CreateDefaultData(ctx context.Context, store repositories.Store, opts Options, lgr zerolog.Logger) (*Credentials, error) {
	_, err := store.GetUserByUsername(ctx, AdminUsername)
	if err == nil {
		lgr.Debug().Msg("Admin user exists, skipping demo data")
		return nil, nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, fmt.Errorf("checking for admin user: %w", err)
	}

	lgr.Info().Msg("Seeding database with sample data...")

	creds, hashes, err := newCredentials()
	if err != nil {
		return nil, err
	}

	err = store.WithTx(ctx, func(ctx context.Context, tx repositories.Store) error {
		admin := &models.User{
			Username: AdminUsername,
			Password: hashes.Admin,
			Role:     models.RoleAdmin,
			Name:     "System Admin",
			Email:    "admin@college.edu",
		}
		if err := tx.CreateUser(ctx, admin); err != nil {
			return fmt.Errorf("admin: %w", err)
		}

		employerIDs := make([]int64, len(employers))
		for i, e := range employers {
			u := e.user
			u.Role, u.Password = models.RoleEmployer, hashes.Employers
			if err := tx.CreateUser(ctx, &u); err != nil {
				return fmt.Errorf("employer %s: %w", u.Username, err)
			}
			p := e.profile
			p.UserID = u.ID
			if err := tx.CreateEmployer(ctx, &p); err != nil {
				return fmt.Errorf("employer profile %s: %w", u.Username, err)
			}
			employerIDs[i] = u.ID
		}

		studentIDs := make([]int64, len(students))
		for i, s := range students {
			u := s.user
			u.Role, u.Password = models.RoleStudent, hashes.Students
			if err := tx.CreateUser(ctx, &u); err != nil {
				return fmt.Errorf("student %s: %w", u.Username, err)
			}
			p := s.profile
			p.UserID = u.ID
			if err := tx.CreateStudent(ctx, &p); err != nil {
				return fmt.Errorf("student profile %s: %w", u.Username, err)
			}
			studentIDs[i] = u.ID
		}

		jobIDs := make([]int64, len(jobs))
		for i, j := range jobs {
			job := j.job
			job.EmployerID = employerIDs[j.employer]
			if err := tx.CreateJob(ctx, &job); err != nil {
				return fmt.Errorf("job %q: %w", job.Title, err)
			}
			jobIDs[i] = job.ID
		}

		for _, a := range applications {
			app := &models.Application{
				JobID:     jobIDs[a.job],
				StudentID: studentIDs[a.student],
				Status:    models.StatusApplied,
			}
			if err := tx.CreateApplication(ctx, app); err != nil {
				return fmt.Errorf("application: %w", err)
			}
			if a.status != models.StatusApplied {
				if _, err := tx.UpdateApplicationStatus(ctx, app.ID, a.status); err != nil {
					return fmt.Errorf("application status: %w", err)
				}
			}
		}
		return nil
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to seed sample data")
		return nil, err
	}

	if opts.LogCredentials {
		lgr.Warn().
			Str("admin", creds.Admin).
			Str("employers", creds.Employers).
			Str("students", creds.Students).
			Msg("Demo credentials (development only)")
	}
	lgr.Info().
		Int("employers", len(employers)).
		Int("students", len(students)).
		Int("jobs", len(jobs)).
		Int("applications", len(applications)).
		Msg("Database seeded with sample data")
	return creds, nil
}

func newCredentials() (*Credentials, *Credentials, error) {
	var creds, hashes Credentials
	for _, pair := range []struct{ plain, hash *string }{
		{&creds.Admin, &hashes.Admin},
		{&creds.Employers, &hashes.Employers},
		{&creds.Students, &hashes.Students},
	} {
		secret, err := auth.RandomSecret(16)
		if err != nil {
			return nil, nil, fmt.Errorf("generating demo password: %w", err)
		}
		hash, err := auth.HashPassword(secret)
		if err != nil {
			return nil, nil, fmt.Errorf("hashing demo password: %w", err)
		}
		*pair.plain, *pair.hash = secret, hash
	}
	return &creds, &hashes, nil
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/adithi-k-max/FSAD-project/internal/app/auth"
	"github.com/adithi-k-max/FSAD-project/internal/app/models"
	"github.com/adithi-k-max/FSAD-project/internal/app/models/dto"
	"github.com/adithi-k-max/FSAD-project/internal/app/repositories"
	"github.com/adithi-k-max/FSAD-project/internal/app/repositories/memory"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/apperrors"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/helpers"
)

func newTestServices(t *testing.T, opts AuthOptions) (*Services, *memory.Store) {
	t.Helper()
	store := memory.New()
	return NewServices(store, auth.NewAuthorizationService(store), opts, zerolog.Nop()), store
}

func studentRequest(username string) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Username: username,
		Password: "Secret123",
		Email:    username + "@college.edu",
		Name:     "Student " + username,
		Role:     models.RoleStudent,
	}
}

func employerRequest(username, company string) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Username:        username,
		Password:        "Secret123",
		Email:           username + "@corp.example",
		Name:            "Recruiter " + username,
		Role:            models.RoleEmployer,
		EmployerDetails: &dto.EmployerDetails{CompanyName: company},
	}
}

func mustRegister(t *testing.T, svc AuthService, req *dto.RegisterRequest) *models.User {
	t.Helper()
	u, err := svc.Register(context.Background(), req)
	if err != nil {
		t.Fatalf("Register(%s): %v", req.Username, err)
	}
	return u
}

// ---------------------------------------------------------------------------
// Registration and login
// ---------------------------------------------------------------------------

func TestRegister_CreatesProfiles(t *testing.T) {
	svcs, store := newTestServices(t, AuthOptions{})
	ctx := context.Background()

	req := studentRequest("alice")
	req.StudentDetails = &dto.StudentDetails{Department: helpers.Ptr("Computer Science"), CGPA: helpers.Ptr(" ")}
	alice := mustRegister(t, svcs.Auth, req)

	if alice.Password == "Secret123" || alice.Password == "" {
		t.Error("password must be stored hashed")
	}
	st, err := store.GetStudentByUserID(ctx, alice.ID)
	if err != nil {
		t.Fatalf("student profile: %v", err)
	}
	if st.Department == nil || *st.Department != "Computer Science" {
		t.Errorf("department: %v", st.Department)
	}
	if st.CGPA != nil {
		t.Errorf("blank cgpa should be stored as NULL, got %q", *st.CGPA)
	}

	// Students without details still get a profile
	bob := mustRegister(t, svcs.Auth, studentRequest("bob"))
	if _, err := store.GetStudentByUserID(ctx, bob.ID); err != nil {
		t.Errorf("student without details: %v", err)
	}

	emp := mustRegister(t, svcs.Auth, employerRequest("techcorp", "TechCorp"))
	e, err := store.GetEmployerByUserID(ctx, emp.ID)
	if err != nil || e.CompanyName != "TechCorp" || e.IsApproved {
		t.Errorf("employer profile: %+v, %v", e, err)
	}
}

func TestRegister_Rejections(t *testing.T) {
	svcs, _ := newTestServices(t, AuthOptions{})
	mustRegister(t, svcs.Auth, studentRequest("alice"))

	dupName := studentRequest("alice")
	dupName.Email = "new@college.edu"
	dupEmail := studentRequest("alice2")
	dupEmail.Email = "alice@college.edu"
	noCompany := employerRequest("corp", "  ")
	weak := studentRequest("weak")
	weak.Password = "password"

	tests := []struct {
		name string
		req  *dto.RegisterRequest
		want error
	}{
		{"duplicate username", dupName, apperrors.ErrUsernameTaken},
		{"duplicate email", dupEmail, apperrors.ErrEmailTaken},
		{"employer without company", noCompany, apperrors.ErrCompanyNameRequired},
		{"weak password", weak, apperrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svcs.Auth.Register(context.Background(), tt.req); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRegister_AnyRole(t *testing.T) {
	svcs, _ := newTestServices(t, AuthOptions{})

	for _, role := range []models.RoleType{models.RoleOfficer, models.RoleAdmin} {
		req := studentRequest(string(role) + "1")
		req.Role = role
		u := mustRegister(t, svcs.Auth, req)
		if u.Role != role {
			t.Errorf("role: got %q, want %q", u.Role, role)
		}
	}
}

func TestRegister_PrivilegedRestrictedByOption(t *testing.T) {
	svcs, _ := newTestServices(t, AuthOptions{RestrictPrivilegedRegistration: true})

	req := studentRequest("officer1")
	req.Role = models.RoleOfficer
	if _, err := svcs.Auth.Register(context.Background(), req); !errors.Is(err, apperrors.ErrPrivilegedRole) {
		t.Errorf("got %v, want %v", err, apperrors.ErrPrivilegedRole)
	}
}

// failingProfiles fails employer profile creation inside transactions
type failingProfiles struct {
	*memory.Store
}

var errProfile = errors.New("profile insert failed")

func (f *failingProfiles) CreateEmployer(ctx context.Context, e *models.Employer) error {
	return errProfile
}

func (f *failingProfiles) WithTx(ctx context.Context, fn repositories.TxFn) error {
	return f.Store.WithTx(ctx, func(ctx context.Context, tx repositories.Store) error {
		return fn(ctx, &failingProfiles{Store: tx.(*memory.Store)})
	})
}

func TestRegister_IsAtomic(t *testing.T) {
	store := memory.New()
	svc := NewAuthService(&failingProfiles{Store: store}, AuthOptions{}, zerolog.Nop())

	_, err := svc.Register(context.Background(), employerRequest("techcorp", "TechCorp"))
	if !errors.Is(err, errProfile) {
		t.Fatalf("got %v", err)
	}

	if _, err := store.GetUserByUsername(context.Background(), "techcorp"); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("user without profile left behind: %v", err)
	}
}

func TestLogin(t *testing.T) {
	svcs, _ := newTestServices(t, AuthOptions{})
	ctx := context.Background()
	alice := mustRegister(t, svcs.Auth, studentRequest("alice"))

	got, err := svcs.Auth.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "Secret123"})
	if err != nil || got.ID != alice.ID {
		t.Fatalf("Login: %+v, %v", got, err)
	}

	for _, req := range []*dto.LoginRequest{
		{Username: "alice", Password: "Secret124"},
		{Username: "nobody", Password: "Secret123"},
	} {
		if _, err := svcs.Auth.Login(ctx, req); !errors.Is(err, apperrors.ErrInvalidCredentials) {
			t.Errorf("login %s: got %v", req.Username, err)
		}
	}
}

// ---------------------------------------------------------------------------
// Jobs and applications
// ---------------------------------------------------------------------------

func TestCreateJob_OwnedByCaller(t *testing.T) {
	svcs, _ := newTestServices(t, AuthOptions{})
	ctx := context.Background()
	emp := mustRegister(t, svcs.Auth, employerRequest("techcorp", "TechCorp"))
	stu := mustRegister(t, svcs.Auth, studentRequest("alice"))
	req := &dto.CreateJobRequest{Title: "Engineer", Description: "d", Requirements: "r", Location: "l", Salary: "s"}

	job, err := svcs.Jobs.CreateJob(ctx, emp, req)
	if err != nil {
		t.Fatalf("CreateJob: %v", err)
	}
	if job.EmployerID != emp.ID {
		t.Errorf("employerId: got %d, want %d", job.EmployerID, emp.ID)
	}

	if _, err := svcs.Jobs.CreateJob(ctx, stu, req); !errors.Is(err, apperrors.ErrEmployersOnly) {
		t.Errorf("student posting: got %v", err)
	}

	mine, _ := svcs.Jobs.ListJobs(ctx, &emp.ID)
	if len(mine) != 1 {
		t.Errorf("by employer: got %d", len(mine))
	}
	none, _ := svcs.Jobs.ListJobs(ctx, &stu.ID)
	if len(none) != 0 {
		t.Errorf("by non-employer: got %d", len(none))
	}
}

func TestApplicationLifecycle(t *testing.T) {
	svcs, _ := newTestServices(t, AuthOptions{})
	ctx := context.Background()
	owner := mustRegister(t, svcs.Auth, employerRequest("techcorp", "TechCorp"))
	rival := mustRegister(t, svcs.Auth, employerRequest("innovate", "Innovate"))
	alice := mustRegister(t, svcs.Auth, studentRequest("alice"))
	job, _ := svcs.Jobs.CreateJob(ctx, owner, &dto.CreateJobRequest{Title: "Engineer", Description: "d", Requirements: "r", Location: "l", Salary: "s"})

	if _, err := svcs.Applications.Apply(ctx, owner, job.ID); !errors.Is(err, apperrors.ErrStudentsOnly) {
		t.Errorf("employer applying: got %v", err)
	}

	app, err := svcs.Applications.Apply(ctx, alice, job.ID)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if _, err := svcs.Applications.Apply(ctx, alice, job.ID); !errors.Is(err, apperrors.ErrAlreadyApplied) {
		t.Errorf("second application: got %v", err)
	}
	if _, err := svcs.Applications.Apply(ctx, alice, 9999); !errors.Is(err, apperrors.ErrJobNotFound) {
		t.Errorf("unknown job: got %v", err)
	}

	if _, err := svcs.Applications.UpdateStatus(ctx, rival, app.ID, models.StatusSelected); !errors.Is(err, apperrors.ErrNotJobOwner) {
		t.Errorf("rival update: got %v", err)
	}
	if _, err := svcs.Applications.UpdateStatus(ctx, owner, app.ID, "hired"); !errors.Is(err, apperrors.ErrInvalidStatus) {
		t.Errorf("bad status: got %v", err)
	}

	// Any order of statuses is accepted
	for _, st := range []models.ApplicationStatus{models.StatusRejected, models.StatusApplied, models.StatusSelected} {
		got, err := svcs.Applications.UpdateStatus(ctx, owner, app.ID, st)
		if err != nil || got.Status != st {
			t.Fatalf("UpdateStatus(%s): %+v, %v", st, got, err)
		}
	}

	rivalView, _ := svcs.Applications.List(ctx, rival)
	if len(rivalView) != 0 {
		t.Errorf("rival sees %d applications", len(rivalView))
	}
	ownerView, _ := svcs.Applications.List(ctx, owner)
	if len(ownerView) != 1 || ownerView[0].Status != models.StatusSelected {
		t.Errorf("owner view: %+v", ownerView)
	}

	stats, _ := svcs.Admin.GetStats(ctx)
	want := models.Stats{TotalStudents: 1, TotalEmployers: 2, TotalJobs: 1, Placements: 1}
	if *stats != want {
		t.Errorf("stats: got %+v, want %+v", *stats, want)
	}
}

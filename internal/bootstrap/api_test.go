package bootstrap_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/adithi-k-max/FSAD-project/internal/app/models"
	"github.com/adithi-k-max/FSAD-project/internal/app/repositories/memory"
	"github.com/adithi-k-max/FSAD-project/internal/bootstrap"
	"github.com/adithi-k-max/FSAD-project/internal/config"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/logger"
	"github.com/adithi-k-max/FSAD-project/internal/seed"
)

func TestMain(m *testing.M) {
	logger.Configure(logger.Config{Level: logger.Disabled, Output: io.Discard})
	os.Exit(m.Run())
}

type testAPI struct {
	t     *testing.T
	srv   *httptest.Server
	creds *seed.Credentials
}

func newTestAPI(t *testing.T, seeded bool) *testAPI {
	t.Helper()

	cfg := config.Default()
	cfg.Server.Mode = config.ModeTest
	cfg.Database.Driver = config.DriverMemory
	cfg.Session.Store = config.DriverMemory

	lgr := zerolog.Nop()
	store := memory.New()

	var creds *seed.Credentials
	if seeded {
		creds = bootstrap.SeedData(context.Background(), cfg, store, lgr)
		if creds == nil {
			t.Fatal("seeding returned no credentials")
		}
	}

	deps, err := bootstrap.BuildDependencies(cfg, store, nil, lgr)
	if err != nil {
		t.Fatalf("BuildDependencies: %v", err)
	}
	srv := httptest.NewServer(bootstrap.SetupRouter(cfg, deps, lgr))
	t.Cleanup(srv.Close)

	return &testAPI{t: t, srv: srv, creds: creds}
}

// client is one browser: its own cookie jar
type client struct {
	api  *testAPI
	http *http.Client
}

func (a *testAPI) client() *client {
	a.t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		a.t.Fatalf("cookiejar: %v", err)
	}
	return &client{api: a, http: &http.Client{Jar: jar}}
}

type response struct {
	status int
	body   []byte
}

func (r response) decode(t *testing.T, v any) {
	t.Helper()
	if err := json.Unmarshal(r.body, v); err != nil {
		t.Fatalf("decoding %s: %v", r.body, err)
	}
}

func (r response) message(t *testing.T) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	r.decode(t, &body)
	return body.Message
}

func (c *client) do(method, path string, body any) response {
	c.api.t.Helper()

	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			c.api.t.Fatalf("marshal: %v", err)
		}
		rd = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, c.api.srv.URL+path, rd)
	if err != nil {
		c.api.t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		c.api.t.Fatalf("%s %s: %v", method, path, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		c.api.t.Fatalf("reading body: %v", err)
	}
	return response{status: res.StatusCode, body: raw}
}

func (c *client) expect(method, path string, body any, status int) response {
	c.api.t.Helper()
	res := c.do(method, path, body)
	if res.status != status {
		c.api.t.Fatalf("%s %s: status %d, want %d (body %s)", method, path, res.status, status, res.body)
	}
	return res
}

func (a *testAPI) login(username, password string) *client {
	a.t.Helper()
	c := a.client()
	c.expect(http.MethodPost, "/api/login", map[string]string{"username": username, "password": password}, http.StatusOK)
	return c
}

func (a *testAPI) loginStudent(username string) *client {
	return a.login(username, a.creds.Students)
}

func (a *testAPI) loginEmployer(username string) *client {
	return a.login(username, a.creds.Employers)
}

func (a *testAPI) loginAdmin() *client {
	return a.login(seed.AdminUsername, a.creds.Admin)
}

func registerBody(username string, role models.RoleType) map[string]any {
	body := map[string]any{
		"username": username,
		"password": "Secret123",
		"email":    username + "@college.edu",
		"name":     "User " + username,
		"role":     role,
	}
	if role == models.RoleEmployer {
		body["employerDetails"] = map[string]any{"companyName": "Acme " + username}
	}
	return body
}

func jobIDByTitle(t *testing.T, c *client, title string) int64 {
	t.Helper()
	var jobs []models.JobWithEmployer
	c.expect(http.MethodGet, "/api/jobs", nil, http.StatusOK).decode(t, &jobs)
	for _, j := range jobs {
		if j.Title == title {
			return j.ID
		}
	}
	t.Fatalf("job %q not listed", title)
	return 0
}

// ---------------------------------------------------------------------------
// Auth
// ---------------------------------------------------------------------------

func TestRegister_StartsSession(t *testing.T) {
	api := newTestAPI(t, false)
	c := api.client()

	var created models.User
	c.expect(http.MethodPost, "/api/register", registerBody("alice", models.RoleStudent), http.StatusCreated).decode(t, &created)
	if created.ID == 0 || created.Role != models.RoleStudent {
		t.Fatalf("unexpected user %+v", created)
	}

	res := c.expect(http.MethodGet, "/api/user", nil, http.StatusOK)
	if bytes.Contains(res.body, []byte("password")) {
		t.Fatalf("password leaked in %s", res.body)
	}
	var me models.User
	res.decode(t, &me)
	if me.ID != created.ID {
		t.Fatalf("session user %d, want %d", me.ID, created.ID)
	}
}

func TestRegister_DuplicatesRejected(t *testing.T) {
	api := newTestAPI(t, false)
	c := api.client()
	c.expect(http.MethodPost, "/api/register", registerBody("alice", models.RoleStudent), http.StatusCreated)

	res := c.expect(http.MethodPost, "/api/register", registerBody("alice", models.RoleStudent), http.StatusBadRequest)
	if got := res.message(t); got != "Username already exists" {
		t.Errorf("message = %q", got)
	}

	sameEmail := registerBody("alice2", models.RoleStudent)
	sameEmail["email"] = "alice@college.edu"
	res = c.expect(http.MethodPost, "/api/register", sameEmail, http.StatusBadRequest)
	if got := res.message(t); got != "Email already exists" {
		t.Errorf("message = %q", got)
	}
}

func TestRegister_PrivilegedRoles(t *testing.T) {
	api := newTestAPI(t, false)

	for _, role := range []models.RoleType{models.RoleOfficer, models.RoleAdmin} {
		c := api.client()
		var created models.User
		c.expect(http.MethodPost, "/api/register", registerBody(string(role)+"1", role), http.StatusCreated).decode(t, &created)
		if created.Role != role {
			t.Errorf("role = %q, want %q", created.Role, role)
		}
		c.expect(http.MethodGet, "/api/stats", nil, http.StatusOK)
	}
}

func TestRegister_Validation(t *testing.T) {
	api := newTestAPI(t, false)
	c := api.client()

	tests := []struct {
		name   string
		mutate func(map[string]any)
		status int
	}{
		{"weak password", func(b map[string]any) { b["password"] = "secret" }, http.StatusBadRequest},
		{"bad email", func(b map[string]any) { b["email"] = "nope" }, http.StatusBadRequest},
		{"unknown role", func(b map[string]any) { b["role"] = "dean" }, http.StatusBadRequest},
		{"employer without company", func(b map[string]any) {
			b["role"] = models.RoleEmployer
			delete(b, "employerDetails")
		}, http.StatusBadRequest},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := registerBody(fmt.Sprintf("user%d", i), models.RoleStudent)
			tt.mutate(body)
			c.expect(http.MethodPost, "/api/register", body, tt.status)
		})
	}
}

func TestRegister_FieldErrors(t *testing.T) {
	api := newTestAPI(t, false)
	res := api.client().expect(http.MethodPost, "/api/register", map[string]any{"username": "x"}, http.StatusBadRequest)

	var body struct {
		Message string `json:"message"`
		Errors  []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	res.decode(t, &body)
	fields := map[string]bool{}
	for _, e := range body.Errors {
		fields[e.Field] = true
	}
	for _, f := range []string{"username", "password", "email", "name", "role"} {
		if !fields[f] {
			t.Errorf("missing field error for %s in %s", f, res.body)
		}
	}
}

func TestLogin(t *testing.T) {
	api := newTestAPI(t, true)

	c := api.client()
	res := c.expect(http.MethodPost, "/api/login", map[string]string{"username": "alice", "password": "wrong"}, http.StatusUnauthorized)
	if got := res.message(t); got != "Invalid credentials" {
		t.Errorf("wrong password message = %q", got)
	}
	res = c.expect(http.MethodPost, "/api/login", map[string]string{"username": "ghost", "password": "whatever"}, http.StatusUnauthorized)
	if got := res.message(t); got != "Invalid credentials" {
		t.Errorf("unknown user message = %q", got)
	}
	c.expect(http.MethodGet, "/api/user", nil, http.StatusUnauthorized)

	alice := api.loginStudent("alice")
	var me models.User
	alice.expect(http.MethodGet, "/api/user", nil, http.StatusOK).decode(t, &me)
	if me.Username != "alice" {
		t.Fatalf("current user = %q", me.Username)
	}
}

func TestLogout_EndsSession(t *testing.T) {
	api := newTestAPI(t, true)
	alice := api.loginStudent("alice")

	res := alice.expect(http.MethodPost, "/api/logout", nil, http.StatusOK)
	if got := res.message(t); got != "Logged out" {
		t.Errorf("message = %q", got)
	}
	res = alice.expect(http.MethodGet, "/api/user", nil, http.StatusUnauthorized)
	if got := res.message(t); got != "Not authenticated" {
		t.Errorf("message = %q", got)
	}
}

func TestSession_TamperedCookie(t *testing.T) {
	api := newTestAPI(t, true)
	c := api.client()

	req, _ := http.NewRequest(http.MethodGet, api.srv.URL+"/api/user", nil)
	req.AddCookie(&http.Cookie{Name: "placement.sid", Value: "not-a-token"})
	res, err := c.http.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status %d, want 401", res.StatusCode)
	}
}

// ---------------------------------------------------------------------------
// Jobs
// ---------------------------------------------------------------------------

func TestCreateJob_EmployersOnly(t *testing.T) {
	api := newTestAPI(t, true)
	job := map[string]any{
		"title":        "Go Developer",
		"description":  "Services",
		"requirements": "Go",
		"location":     "Remote",
		"salary":       "10 LPA",
		"employerId":   999,
	}

	res := api.loginStudent("alice").expect(http.MethodPost, "/api/jobs", job, http.StatusForbidden)
	if got := res.message(t); got != "Only employers can post jobs" {
		t.Errorf("message = %q", got)
	}

	techcorp := api.loginEmployer("techcorp")
	var me models.User
	techcorp.expect(http.MethodGet, "/api/user", nil, http.StatusOK).decode(t, &me)

	var created models.Job
	techcorp.expect(http.MethodPost, "/api/jobs", job, http.StatusCreated).decode(t, &created)
	if created.EmployerID != me.ID {
		t.Fatalf("employerId = %d, want caller %d", created.EmployerID, me.ID)
	}

	var fetched models.JobWithEmployer
	techcorp.expect(http.MethodGet, fmt.Sprintf("/api/jobs/%d", created.ID), nil, http.StatusOK).decode(t, &fetched)
	if fetched.Employer == nil || fetched.Employer.Username != "techcorp" {
		t.Fatalf("job employer = %+v", fetched.Employer)
	}
}

func TestRoleCheckedBeforeInput(t *testing.T) {
	api := newTestAPI(t, true)
	alice := api.loginStudent("alice")
	admin := api.loginAdmin()

	tests := []struct {
		name    string
		c       *client
		method  string
		path    string
		body    any
		message string
	}{
		{"student posts incomplete job", alice, http.MethodPost, "/api/jobs", map[string]any{"title": "x"}, "Only employers can post jobs"},
		{"admin applies without jobId", admin, http.MethodPost, "/api/applications", map[string]any{}, "Only students can apply for jobs"},
		{"student sets bogus status", alice, http.MethodPatch, "/api/applications/1/status", map[string]any{"status": "bogus"}, "Only employers and admins can update applications"},
		{"student updates with bad id", alice, http.MethodPatch, "/api/applications/abc/status", map[string]any{}, "Only employers and admins can update applications"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tt.c.expect(tt.method, tt.path, tt.body, http.StatusForbidden)
			var body struct {
				Message string `json:"message"`
				Errors  []any  `json:"errors"`
			}
			res.decode(t, &body)
			if body.Message != tt.message || len(body.Errors) != 0 {
				t.Errorf("body = %s", res.body)
			}
		})
	}
}

func TestJobs_Lookup(t *testing.T) {
	api := newTestAPI(t, true)
	alice := api.loginStudent("alice")

	var all []models.JobWithEmployer
	alice.expect(http.MethodGet, "/api/jobs", nil, http.StatusOK).decode(t, &all)
	if len(all) != 6 {
		t.Fatalf("listed %d jobs, want 6", len(all))
	}

	employerID := all[0].EmployerID
	var filtered []models.JobWithEmployer
	alice.expect(http.MethodGet, fmt.Sprintf("/api/jobs?employerId=%d", employerID), nil, http.StatusOK).decode(t, &filtered)
	if len(filtered) != 2 {
		t.Fatalf("filtered %d jobs, want 2", len(filtered))
	}
	for _, j := range filtered {
		if j.EmployerID != employerID {
			t.Errorf("job %d belongs to %d", j.ID, j.EmployerID)
		}
	}

	alice.expect(http.MethodGet, "/api/jobs?employerId=abc", nil, http.StatusBadRequest)
	alice.expect(http.MethodGet, "/api/jobs/abc", nil, http.StatusBadRequest)
	alice.expect(http.MethodGet, "/api/jobs/99999", nil, http.StatusNotFound)

	api.client().expect(http.MethodGet, "/api/jobs", nil, http.StatusUnauthorized)
}

// ---------------------------------------------------------------------------
// Applications
// ---------------------------------------------------------------------------

func TestApply_Rules(t *testing.T) {
	api := newTestAPI(t, true)
	david := api.loginStudent("david")
	jobID := jobIDByTitle(t, david, "ML Engineer")

	david.expect(http.MethodPost, "/api/applications", map[string]any{"jobId": jobID}, http.StatusCreated)
	res := david.expect(http.MethodPost, "/api/applications", map[string]any{"jobId": jobID}, http.StatusBadRequest)
	if got := res.message(t); got != "Already applied to this job" {
		t.Errorf("message = %q", got)
	}

	david.expect(http.MethodPost, "/api/applications", map[string]any{"jobId": 99999}, http.StatusNotFound)

	res = api.loginEmployer("techcorp").expect(http.MethodPost, "/api/applications", map[string]any{"jobId": jobID}, http.StatusForbidden)
	if got := res.message(t); got != "Only students can apply for jobs" {
		t.Errorf("message = %q", got)
	}
}

func TestApply_ConcurrentDuplicates(t *testing.T) {
	api := newTestAPI(t, true)
	david := api.loginStudent("david")
	jobID := jobIDByTitle(t, david, "Data Scientist")

	const attempts = 10
	statuses := make(chan int, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			statuses <- david.do(http.MethodPost, "/api/applications", map[string]any{"jobId": jobID}).status
		}()
	}
	wg.Wait()
	close(statuses)

	counts := map[int]int{}
	for s := range statuses {
		counts[s]++
	}
	if counts[http.StatusCreated] != 1 || counts[http.StatusBadRequest] != attempts-1 {
		t.Fatalf("status counts = %v, want one 201 and %d 400", counts, attempts-1)
	}
}

func TestListApplications_ScopedByRole(t *testing.T) {
	api := newTestAPI(t, true)

	tests := []struct {
		name  string
		login func() *client
		want  int
	}{
		{"alice sees her own", func() *client { return api.loginStudent("alice") }, 1},
		{"emma sees her own", func() *client { return api.loginStudent("emma") }, 2},
		{"david has none", func() *client { return api.loginStudent("david") }, 0},
		{"techcorp sees its jobs", func() *client { return api.loginEmployer("techcorp") }, 3},
		{"innovateinc sees its jobs", func() *client { return api.loginEmployer("innovateinc") }, 2},
		{"globalenterprises has none", func() *client { return api.loginEmployer("globalenterprises") }, 0},
		{"admin sees all", api.loginAdmin, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.login()
			var me models.User
			c.expect(http.MethodGet, "/api/user", nil, http.StatusOK).decode(t, &me)

			var apps []models.ApplicationDetail
			c.expect(http.MethodGet, "/api/applications", nil, http.StatusOK).decode(t, &apps)
			if len(apps) != tt.want {
				t.Fatalf("got %d applications, want %d", len(apps), tt.want)
			}
			for _, a := range apps {
				if a.Job == nil || a.Student == nil {
					t.Fatalf("application %d not joined", a.ID)
				}
				switch me.Role {
				case models.RoleStudent:
					if a.StudentID != me.ID {
						t.Errorf("student sees application of %d", a.StudentID)
					}
				case models.RoleEmployer:
					if a.Job.EmployerID != me.ID {
						t.Errorf("employer sees application on job of %d", a.Job.EmployerID)
					}
				}
			}
		})
	}
}

func TestUpdateStatus_Ownership(t *testing.T) {
	api := newTestAPI(t, true)

	techcorp := api.loginEmployer("techcorp")
	var apps []models.ApplicationDetail
	techcorp.expect(http.MethodGet, "/api/applications", nil, http.StatusOK).decode(t, &apps)
	if len(apps) == 0 {
		t.Fatal("techcorp has no applications")
	}
	path := fmt.Sprintf("/api/applications/%d/status", apps[0].ID)

	res := api.loginEmployer("innovateinc").expect(http.MethodPatch, path, map[string]any{"status": "rejected"}, http.StatusForbidden)
	if got := res.message(t); got != "Cannot update applications for this job" {
		t.Errorf("message = %q", got)
	}

	res = api.loginStudent("alice").expect(http.MethodPatch, path, map[string]any{"status": "selected"}, http.StatusForbidden)
	if got := res.message(t); got != "Only employers and admins can update applications" {
		t.Errorf("message = %q", got)
	}

	res = techcorp.expect(http.MethodPatch, path, map[string]any{"status": "hired"}, http.StatusBadRequest)
	var body struct {
		Message string `json:"message"`
		Errors  []any  `json:"errors"`
	}
	res.decode(t, &body)
	if body.Message != "Invalid status value" || len(body.Errors) == 0 {
		t.Errorf("invalid status body = %s", res.body)
	}

	var updated models.Application
	techcorp.expect(http.MethodPatch, path, map[string]any{"status": "shortlisted"}, http.StatusOK).decode(t, &updated)
	if updated.Status != models.StatusShortlisted {
		t.Fatalf("status = %q", updated.Status)
	}

	// Any order of transitions is accepted
	api.loginAdmin().expect(http.MethodPatch, path, map[string]any{"status": "applied"}, http.StatusOK)

	techcorp.expect(http.MethodPatch, "/api/applications/99999/status", map[string]any{"status": "rejected"}, http.StatusNotFound)
}

func TestJobApplications_Ownership(t *testing.T) {
	api := newTestAPI(t, true)
	techcorp := api.loginEmployer("techcorp")
	jobID := jobIDByTitle(t, techcorp, "Junior React Developer")
	path := fmt.Sprintf("/api/jobs/%d/applications", jobID)

	var apps []models.ApplicationDetail
	techcorp.expect(http.MethodGet, path, nil, http.StatusOK).decode(t, &apps)
	if len(apps) != 2 {
		t.Fatalf("got %d applications, want 2", len(apps))
	}

	api.loginEmployer("innovateinc").expect(http.MethodGet, path, nil, http.StatusForbidden)
	api.loginStudent("alice").expect(http.MethodGet, path, nil, http.StatusForbidden)
	api.loginAdmin().expect(http.MethodGet, path, nil, http.StatusOK)
}

// ---------------------------------------------------------------------------
// Placement office
// ---------------------------------------------------------------------------

func TestStats_AfterSeed(t *testing.T) {
	api := newTestAPI(t, true)

	var stats models.Stats
	api.loginAdmin().expect(http.MethodGet, "/api/stats", nil, http.StatusOK).decode(t, &stats)
	want := models.Stats{TotalStudents: 5, TotalEmployers: 3, TotalJobs: 6, Placements: 1}
	if stats != want {
		t.Fatalf("stats = %+v, want %+v", stats, want)
	}
}

func TestRoleGates(t *testing.T) {
	api := newTestAPI(t, true)
	alice := api.loginStudent("alice")
	techcorp := api.loginEmployer("techcorp")
	admin := api.loginAdmin()

	for _, path := range []string{"/api/stats", "/api/users", "/api/employers", "/api/students"} {
		res := alice.expect(http.MethodGet, path, nil, http.StatusForbidden)
		if got := res.message(t); got != "Insufficient permissions" {
			t.Errorf("%s message = %q", path, got)
		}
		api.client().expect(http.MethodGet, path, nil, http.StatusUnauthorized)
		admin.expect(http.MethodGet, path, nil, http.StatusOK)
	}

	techcorp.expect(http.MethodGet, "/api/students", nil, http.StatusOK)
	techcorp.expect(http.MethodGet, "/api/stats", nil, http.StatusForbidden)
}

func TestApproveEmployer(t *testing.T) {
	api := newTestAPI(t, true)
	admin := api.loginAdmin()

	var employers []models.Employer
	admin.expect(http.MethodGet, "/api/employers", nil, http.StatusOK).decode(t, &employers)
	if len(employers) != 3 {
		t.Fatalf("got %d employers, want 3", len(employers))
	}

	var approved models.Employer
	admin.expect(http.MethodPatch, fmt.Sprintf("/api/employers/%d/approve", employers[0].ID), nil, http.StatusOK).decode(t, &approved)
	if !approved.IsApproved {
		t.Fatal("employer not approved")
	}

	admin.expect(http.MethodPatch, "/api/employers/99999/approve", nil, http.StatusNotFound)
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t, false)
	c := api.client()
	c.expect(http.MethodGet, "/ping", nil, http.StatusOK)
	c.expect(http.MethodGet, "/api/health", nil, http.StatusOK)
}

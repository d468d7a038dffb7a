// Package memory is an in-process implementation of repositories.Store.
// It enforces the same uniqueness and reference rules as the SQL schema and
// gives WithTx all-or-nothing semantics by snapshotting state.
package memory

import (
	"context"
	"maps"
	"sort"
	"sync"
	"time"

	"github.com/adithi-k-max/FSAD-project/internal/app/models"
	"github.com/adithi-k-max/FSAD-project/internal/app/repositories"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/apperrors"
)

type state struct {
	users        map[int64]models.User
	students     map[int64]models.Student
	employers    map[int64]models.Employer
	jobs         map[int64]models.Job
	applications map[int64]models.Application
	seq          int64
}

func (s *state) clone() *state {
	c := *s
	c.users = maps.Clone(s.users)
	c.students = maps.Clone(s.students)
	c.employers = maps.Clone(s.employers)
	c.jobs = maps.Clone(s.jobs)
	c.applications = maps.Clone(s.applications)
	return &c
}

func (s *state) nextID() int64 {
	s.seq++
	return s.seq
}

// Store keeps all records in maps guarded by one lock.
// A transaction holds the write lock for its whole duration.
type Store struct {
	mu   *sync.RWMutex
	data **state
	now  func() time.Time
	inTx bool
}

var _ repositories.Store = (*Store)(nil)

// New creates an empty store
func New() *Store {
	st := &state{
		users:        map[int64]models.User{},
		students:     map[int64]models.Student{},
		employers:    map[int64]models.Employer{},
		jobs:         map[int64]models.Job{},
		applications: map[int64]models.Application{},
	}
	return &Store{mu: &sync.RWMutex{}, data: &st, now: time.Now}
}

func (s *Store) read() func() {
	if s.inTx {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

func (s *Store) write() func() {
	if s.inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Store) st() *state {
	return *s.data
}

// WithTx implements repositories.Store
func (s *Store) WithTx(ctx context.Context, fn repositories.TxFn) (err error) {
	if s.inTx {
		return fn(ctx, s)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st().clone()
	tx := &Store{mu: s.mu, data: s.data, now: s.now, inTx: true}

	defer func() {
		if r := recover(); r != nil {
			*s.data = snapshot
			panic(r)
		}
		if err != nil {
			*s.data = snapshot
		}
	}()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx, tx)
}

// Users

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	defer s.write()()
	st := s.st()

	for _, u := range st.users {
		if u.Username == user.Username {
			return apperrors.ErrUsernameTaken
		}
		if u.Email == user.Email {
			return apperrors.ErrEmailTaken
		}
	}

	user.ID = st.nextID()
	user.CreatedAt = s.now()
	st.users[user.ID] = *user
	return nil
}

func (s *Store) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	defer s.read()()
	u, ok := s.st().users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &u, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	defer s.read()()
	for _, u := range s.st().users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *Store) ListUsers(ctx context.Context) ([]*models.User, error) {
	defer s.read()()
	out := make([]*models.User, 0, len(s.st().users))
	for _, u := range s.st().users {
		out = append(out, &u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Profiles

func (s *Store) CreateStudent(ctx context.Context, student *models.Student) error {
	defer s.write()()
	st := s.st()
	if _, ok := st.users[student.UserID]; !ok {
		return apperrors.ErrUserNotFound
	}
	for _, p := range st.students {
		if p.UserID == student.UserID {
			return apperrors.NewBadRequestError("Student profile already exists")
		}
	}
	student.ID = st.nextID()
	st.students[student.ID] = *student
	return nil
}

func (s *Store) GetStudentByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	defer s.read()()
	for _, p := range s.st().students {
		if p.UserID == userID {
			return &p, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (s *Store) ListStudents(ctx context.Context) ([]*models.Student, error) {
	defer s.read()()
	out := make([]*models.Student, 0, len(s.st().students))
	for _, p := range s.st().students {
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) CreateEmployer(ctx context.Context, employer *models.Employer) error {
	defer s.write()()
	st := s.st()
	if _, ok := st.users[employer.UserID]; !ok {
		return apperrors.ErrUserNotFound
	}
	for _, p := range st.employers {
		if p.UserID == employer.UserID {
			return apperrors.NewBadRequestError("Employer profile already exists")
		}
	}
	employer.ID = st.nextID()
	employer.IsApproved = false
	st.employers[employer.ID] = *employer
	return nil
}

func (s *Store) GetEmployerByUserID(ctx context.Context, userID int64) (*models.Employer, error) {
	defer s.read()()
	for _, p := range s.st().employers {
		if p.UserID == userID {
			return &p, nil
		}
	}
	return nil, apperrors.ErrEmployerNotFound
}

func (s *Store) ListEmployers(ctx context.Context) ([]*models.Employer, error) {
	defer s.read()()
	out := make([]*models.Employer, 0, len(s.st().employers))
	for _, p := range s.st().employers {
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) ApproveEmployer(ctx context.Context, id int64) (*models.Employer, error) {
	defer s.write()()
	st := s.st()
	p, ok := st.employers[id]
	if !ok {
		return nil, apperrors.ErrEmployerNotFound
	}
	p.IsApproved = true
	st.employers[id] = p
	return &p, nil
}

// Jobs

func (s *Store) CreateJob(ctx context.Context, job *models.Job) error {
	defer s.write()()
	st := s.st()
	if _, ok := st.users[job.EmployerID]; !ok {
		return apperrors.ErrUserNotFound
	}
	job.ID = st.nextID()
	job.PostedAt = s.now()
	st.jobs[job.ID] = *job
	return nil
}

func (s *Store) GetJob(ctx context.Context, id int64) (*models.Job, error) {
	defer s.read()()
	j, ok := s.st().jobs[id]
	if !ok {
		return nil, apperrors.ErrJobNotFound
	}
	return &j, nil
}

func (s *Store) GetJobWithEmployer(ctx context.Context, id int64) (*models.JobWithEmployer, error) {
	defer s.read()()
	st := s.st()
	j, ok := st.jobs[id]
	if !ok {
		return nil, apperrors.ErrJobNotFound
	}
	jw, ok := st.joinJob(j)
	if !ok {
		return nil, apperrors.ErrJobNotFound
	}
	return jw, nil
}

func (s *Store) ListJobs(ctx context.Context) ([]*models.JobWithEmployer, error) {
	defer s.read()()
	return s.st().listJobs(func(models.Job) bool { return true }), nil
}

func (s *Store) ListJobsByEmployer(ctx context.Context, employerID int64) ([]*models.JobWithEmployer, error) {
	defer s.read()()
	return s.st().listJobs(func(j models.Job) bool { return j.EmployerID == employerID }), nil
}

// joinJob mirrors the inner join: jobs whose employer row is gone are dropped
func (st *state) joinJob(j models.Job) (*models.JobWithEmployer, bool) {
	u, ok := st.users[j.EmployerID]
	if !ok {
		return nil, false
	}
	u.Password = ""
	return &models.JobWithEmployer{Job: j, Employer: &u}, true
}

func (st *state) listJobs(keep func(models.Job) bool) []*models.JobWithEmployer {
	out := []*models.JobWithEmployer{}
	for _, j := range st.jobs {
		if !keep(j) {
			continue
		}
		if jw, ok := st.joinJob(j); ok {
			out = append(out, jw)
		}
	}
	sort.Slice(out, func(a, b int) bool {
		if !out[a].PostedAt.Equal(out[b].PostedAt) {
			return out[a].PostedAt.After(out[b].PostedAt)
		}
		return out[a].ID > out[b].ID
	})
	return out
}

// Applications

func (s *Store) CreateApplication(ctx context.Context, app *models.Application) error {
	defer s.write()()
	st := s.st()

	if _, ok := st.jobs[app.JobID]; !ok {
		return apperrors.ErrJobNotFound
	}
	if _, ok := st.users[app.StudentID]; !ok {
		return apperrors.ErrUserNotFound
	}
	for _, a := range st.applications {
		if a.JobID == app.JobID && a.StudentID == app.StudentID {
			return apperrors.ErrAlreadyApplied
		}
	}

	if app.Status == "" {
		app.Status = models.StatusApplied
	}
	app.ID = st.nextID()
	app.AppliedAt = s.now()
	st.applications[app.ID] = *app
	return nil
}

func (s *Store) GetApplication(ctx context.Context, id int64) (*models.Application, error) {
	defer s.read()()
	a, ok := s.st().applications[id]
	if !ok {
		return nil, apperrors.ErrApplicationNotFound
	}
	return &a, nil
}

func (s *Store) ListApplications(ctx context.Context) ([]*models.ApplicationDetail, error) {
	defer s.read()()
	return s.st().listApplications(func(models.Application, models.Job) bool { return true }), nil
}

func (s *Store) ListApplicationsByStudent(ctx context.Context, studentID int64) ([]*models.ApplicationDetail, error) {
	defer s.read()()
	return s.st().listApplications(func(a models.Application, _ models.Job) bool { return a.StudentID == studentID }), nil
}

func (s *Store) ListApplicationsByEmployer(ctx context.Context, employerID int64) ([]*models.ApplicationDetail, error) {
	defer s.read()()
	return s.st().listApplications(func(_ models.Application, j models.Job) bool { return j.EmployerID == employerID }), nil
}

func (s *Store) ListApplicationsByJob(ctx context.Context, jobID int64) ([]*models.ApplicationDetail, error) {
	defer s.read()()
	return s.st().listApplications(func(a models.Application, _ models.Job) bool { return a.JobID == jobID }), nil
}

func (st *state) listApplications(keep func(models.Application, models.Job) bool) []*models.ApplicationDetail {
	out := []*models.ApplicationDetail{}
	for _, a := range st.applications {
		j, ok := st.jobs[a.JobID]
		if !ok {
			continue
		}
		u, ok := st.users[a.StudentID]
		if !ok {
			continue
		}
		if !keep(a, j) {
			continue
		}
		u.Password = ""
		out = append(out, &models.ApplicationDetail{Application: a, Job: &j, Student: &u})
	}
	sort.Slice(out, func(x, y int) bool {
		if !out[x].AppliedAt.Equal(out[y].AppliedAt) {
			return out[x].AppliedAt.After(out[y].AppliedAt)
		}
		return out[x].ID > out[y].ID
	})
	return out
}

func (s *Store) UpdateApplicationStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.Application, error) {
	defer s.write()()
	st := s.st()
	a, ok := st.applications[id]
	if !ok {
		return nil, apperrors.ErrApplicationNotFound
	}
	if !status.Valid() {
		return nil, apperrors.ErrInvalidStatus
	}
	a.Status = status
	st.applications[id] = a
	return &a, nil
}

// Stats

func (s *Store) GetStats(ctx context.Context) (*models.Stats, error) {
	defer s.read()()
	st := s.st()
	stats := &models.Stats{
		TotalStudents:  int64(len(st.students)),
		TotalEmployers: int64(len(st.employers)),
		TotalJobs:      int64(len(st.jobs)),
	}
	for _, a := range st.applications {
		if a.Status == models.StatusSelected {
			stats.Placements++
		}
	}
	return stats, nil
}

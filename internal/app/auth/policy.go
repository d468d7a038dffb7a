package auth

import "github.com/adithi-k-max/FSAD-project/internal/app/models"

// Policy decides whether caller may act on resource
type Policy[R any] func(caller *models.User, resource R) bool

// Allows evaluates the policy. A nil caller is never allowed.
func (p Policy[R]) Allows(caller *models.User, resource R) bool {
	return caller != nil && p(caller, resource)
}

// AnyOf allows when at least one policy allows
func AnyOf[R any](policies ...Policy[R]) Policy[R] {
	return func(caller *models.User, resource R) bool {
		for _, p := range policies {
			if p.Allows(caller, resource) {
				return true
			}
		}
		return false
	}
}

// AllOf allows when every policy allows
func AllOf[R any](policies ...Policy[R]) Policy[R] {
	return func(caller *models.User, resource R) bool {
		for _, p := range policies {
			if !p.Allows(caller, resource) {
				return false
			}
		}
		return len(policies) > 0
	}
}

// HasRole allows callers holding any of roles, whatever the resource
func HasRole[R any](roles ...models.RoleType) Policy[R] {
	return func(caller *models.User, _ R) bool {
		return caller.HasRole(roles...)
	}
}

// OwnsJob allows the employer who posted the job
func OwnsJob(caller *models.User, job *models.Job) bool {
	return job != nil && caller.Role == models.RoleEmployer && job.EmployerID == caller.ID
}

// CanManageApplicationsOf allows admins and officers on any job, and
// employers on their own jobs.
var CanManageApplicationsOf = AnyOf(
	HasRole[*models.Job](models.RoleAdmin, models.RoleOfficer),
	Policy[*models.Job](OwnsJob),
)

// Package services holds the placement business rules. Controllers call
// services; services call the repositories.Store façade.
package services

import (
	"github.com/rs/zerolog"

	"github.com/adithi-k-max/FSAD-project/internal/app/auth"
	"github.com/adithi-k-max/FSAD-project/internal/app/repositories"
)

// Services groups every service the HTTP layer depends on
type Services struct {
	Auth         AuthService
	Jobs         JobService
	Applications ApplicationService
	Admin        AdminService
}

// NewServices wires all services over one store
func NewServices(store repositories.Store, authz *auth.AuthorizationService, opts AuthOptions, lgr zerolog.Logger) *Services {
	return &Services{
		Auth:         NewAuthService(store, opts, lgr),
		Jobs:         NewJobService(store),
		Applications: NewApplicationService(store, authz),
		Admin:        NewAdminService(store),
	}
}

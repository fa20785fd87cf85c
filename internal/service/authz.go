package service

import (
	"context"

	"hrbot/internal/model"
	"hrbot/internal/repository"
	"hrbot/pkg/apierror"
)

const errNoPermission = "no permission to perform this action"

// Authorizer is the single authorization check every mutating operation goes
// through. Authentication (who you are) and authorization (what you may do)
// are independently revocable, so the actor is re-validated against the store
// on each call even when the caller already holds a session.
type Authorizer struct {
	users repository.UserRepository
}

// NewAuthorizer returns an Authorizer backed by the user repository.
func NewAuthorizer(users repository.UserRepository) *Authorizer {
	return &Authorizer{users: users}
}

// RequireCapability loads the acting user and verifies they exist, are
// active, and their role carries the capability. Any failure is Forbidden.
func (a *Authorizer) RequireCapability(ctx context.Context, actorID uint, cap model.Capability) (*model.User, error) {
	actor, err := a.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, apierror.Forbidden(errNoPermission)
	}
	if !actor.IsActive || actor.Role == nil || !actor.Role.Has(cap) {
		return nil, apierror.Forbidden(errNoPermission)
	}
	return actor, nil
}

package service

import (
	"context"

	"hrbot/internal/model"
	"hrbot/internal/repository"
	"hrbot/pkg/apierror"
	"hrbot/pkg/pagination"

	"golang.org/x/crypto/bcrypt"
)

const (
	errUsernameTaken  = "username is already taken"
	errEntryNotExist  = "requested entry does not exist"
	errUnknownRole    = "requested role does not exist"
	errUnknownCreator = "acting user does not exist"
)

type CreateUserRequest struct {
	Username    string `json:"username" binding:"required,max=150"`
	Password    string `json:"password" binding:"required,min=6,max=150"`
	RoleID      uint   `json:"role_id" binding:"required"`
	CreatedByID uint   `json:"created_by_id" binding:"required"`
}

// UpdateUserRequest merges only non-nil fields into the stored user.
type UpdateUserRequest struct {
	Username    *string `json:"username" binding:"omitempty,max=150"`
	Password    *string `json:"password" binding:"omitempty,min=6,max=150"`
	RoleID      *uint   `json:"role_id"`
	IsActive    *bool   `json:"is_active"`
	UpdatedByID uint    `json:"updated_by_id" binding:"required"`
}

// UserService wraps user and role CRUD with the domain rules: capability
// gating, username uniqueness, and audit enrichment.
type UserService interface {
	ListRoles(ctx context.Context) ([]model.Role, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
	ListUsers(ctx context.Context, filter repository.UserFilter, p pagination.Params) (pagination.Page[model.User], error)
	CreateUser(ctx context.Context, req CreateUserRequest) (*model.User, error)
	UpdateUser(ctx context.Context, id uint, req UpdateUserRequest) (*model.User, error)
}

type userService struct {
	users repository.UserRepository
	roles repository.RoleRepository
	authz *Authorizer
}

// NewUserService returns a new instance of UserService.
func NewUserService(users repository.UserRepository, roles repository.RoleRepository, authz *Authorizer) UserService {
	return &userService{users: users, roles: roles, authz: authz}
}

func (s *userService) ListRoles(ctx context.Context) ([]model.Role, error) {
	return s.roles.List(ctx)
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound(errEntryNotExist)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, filter repository.UserFilter, p pagination.Params) (pagination.Page[model.User], error) {
	users, total, err := s.users.List(ctx, filter, p.Offset, p.Size)
	if err != nil {
		return pagination.Page[model.User]{}, err
	}
	return pagination.NewPage(users, total, p), nil
}

func (s *userService) CreateUser(ctx context.Context, req CreateUserRequest) (*model.User, error) {
	if _, err := s.authz.RequireCapability(ctx, req.CreatedByID, model.CapEditUsers); err != nil {
		return nil, err
	}

	// Validate against the store what request binding cannot.
	if _, err := s.users.GetByUsername(ctx, req.Username); err == nil {
		return nil, apierror.Unprocessable(errUsernameTaken)
	}
	if _, err := s.roles.GetByID(ctx, req.RoleID); err != nil {
		return nil, apierror.Unprocessable(errUnknownRole)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apierror.Internal("failed to hash password")
	}

	creator := req.CreatedByID
	user := &model.User{
		Username:    req.Username,
		Password:    string(hashed),
		RoleID:      req.RoleID,
		IsActive:    true,
		CreatedByID: &creator,
		UpdatedByID: &creator,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, id uint, req UpdateUserRequest) (*model.User, error) {
	if _, err := s.authz.RequireCapability(ctx, req.UpdatedByID, model.CapEditUsers); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound(errEntryNotExist)
	}

	if req.Username != nil && *req.Username != user.Username {
		if _, err := s.users.GetByUsername(ctx, *req.Username); err == nil {
			return nil, apierror.Unprocessable(errUsernameTaken)
		}
		user.Username = *req.Username
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apierror.Internal("failed to hash password")
		}
		user.Password = string(hashed)
	}
	if req.RoleID != nil {
		if _, err := s.roles.GetByID(ctx, *req.RoleID); err != nil {
			return nil, apierror.Unprocessable(errUnknownRole)
		}
		user.RoleID = *req.RoleID
		user.Role = nil
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	editor := req.UpdatedByID
	user.UpdatedByID = &editor

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

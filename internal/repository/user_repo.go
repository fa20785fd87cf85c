package repository

import (
	"context"
	"strings"

	"hrbot/internal/model"

	"gorm.io/gorm"
)

// UserFilter narrows a user listing. Nil fields are not applied.
type UserFilter struct {
	RoleID   *uint
	IsActive *bool
	Name     string
}

// UserRepository defines the interface for data access of User entities.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uint) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context, filter UserFilter, offset, limit int) ([]model.User, int64, error)
	Update(ctx context.Context, user *model.User) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new instance of UserRepository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return err
	}
	// Reload to pick up server-computed defaults and the role association.
	if err := r.db.WithContext(ctx).Preload("Role").First(user, "id = ?", user.ID).Error; err != nil {
		return err
	}
	logAccess("entry creation: model=User, id=%d", user.ID)
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	// Audit links are preloaded one level deep, never recursively.
	err := r.db.WithContext(ctx).
		Preload("Role").
		Preload("CreatedBy").
		Preload("UpdatedBy").
		First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	logAccess("entry retrieve: model=User, id=%d", id)
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Preload("Role").
		First(&user, "username = ?", username).Error
	if err != nil {
		return nil, err
	}
	logAccess("entry retrieve: model=User, id=%d found by username", user.ID)
	return &user, nil
}

func (r *userRepository) List(ctx context.Context, filter UserFilter, offset, limit int) ([]model.User, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.User{})

	if filter.RoleID != nil {
		q = q.Where("role_id = ?", *filter.RoleID)
	}
	if filter.IsActive != nil {
		q = q.Where("is_active = ?", *filter.IsActive)
	}
	if filter.Name != "" {
		q = q.Where("lower(username) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.User
	err := q.Preload("Role").
		Order("lower(username) asc").
		Offset(offset).Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	logAccess("entry retrieve: model=User, %d entries retrieved", len(users))
	return users, total, nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Preload("Role").First(user, "id = ?", user.ID).Error; err != nil {
		return err
	}
	logAccess("entry update: model=User, id=%d", user.ID)
	return nil
}

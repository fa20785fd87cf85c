package repository

import (
	"context"

	"hrbot/internal/model"

	"gorm.io/gorm"
)

// SettingRepository defines the interface for data access of Setting
// entities.
type SettingRepository interface {
	Create(ctx context.Context, setting *model.Setting) error
	GetByID(ctx context.Context, id uint) (*model.Setting, error)
	ListAll(ctx context.Context) ([]model.Setting, error)
	Update(ctx context.Context, setting *model.Setting) error
	DeleteAll(ctx context.Context) error
}

type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository returns a new instance of SettingRepository.
func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) Create(ctx context.Context, setting *model.Setting) error {
	if err := r.db.WithContext(ctx).Create(setting).Error; err != nil {
		return err
	}
	logAccess("entry creation: model=Setting, id=%d", setting.ID)
	return nil
}

func (r *settingRepository) GetByID(ctx context.Context, id uint) (*model.Setting, error) {
	var setting model.Setting
	if err := r.db.WithContext(ctx).First(&setting, "id = ?", id).Error; err != nil {
		return nil, err
	}
	logAccess("entry retrieve: model=Setting, id=%d", id)
	return &setting, nil
}

func (r *settingRepository) ListAll(ctx context.Context) ([]model.Setting, error) {
	var settings []model.Setting
	if err := r.db.WithContext(ctx).Order("id asc").Find(&settings).Error; err != nil {
		return nil, err
	}
	logAccess("entry retrieve: model=Setting, %d entries retrieved", len(settings))
	return settings, nil
}

func (r *settingRepository) Update(ctx context.Context, setting *model.Setting) error {
	if err := r.db.WithContext(ctx).Save(setting).Error; err != nil {
		return err
	}
	logAccess("entry update: model=Setting, id=%d", setting.ID)
	return nil
}

func (r *settingRepository) DeleteAll(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Where("1 = 1").Delete(&model.Setting{}).Error; err != nil {
		return err
	}
	logAccess("all data from model=Setting was deleted")
	return nil
}

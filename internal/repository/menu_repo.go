package repository

import (
	"context"

	"hrbot/internal/model"

	"gorm.io/gorm"
)

// MenuRepository defines the interface for data access of MenuItem entities.
type MenuRepository interface {
	Create(ctx context.Context, item *model.MenuItem) error
	GetByID(ctx context.Context, id uint) (*model.MenuItem, error)
	GetByButtonText(ctx context.Context, buttonText string) (*model.MenuItem, error)
	List(ctx context.Context, offset, limit int) ([]model.MenuItem, int64, error)
	ListAll(ctx context.Context) ([]model.MenuItem, error)
	Update(ctx context.Context, item *model.MenuItem) error
	Delete(ctx context.Context, id uint) error
	DeleteAll(ctx context.Context) error
}

type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository returns a new instance of MenuRepository.
func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) Create(ctx context.Context, item *model.MenuItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).First(item, "id = ?", item.ID).Error; err != nil {
		return err
	}
	logAccess("entry creation: model=MenuItem, id=%d", item.ID)
	return nil
}

func (r *menuRepository) GetByID(ctx context.Context, id uint) (*model.MenuItem, error) {
	var item model.MenuItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	logAccess("entry retrieve: model=MenuItem, id=%d", id)
	return &item, nil
}

func (r *menuRepository) GetByButtonText(ctx context.Context, buttonText string) (*model.MenuItem, error) {
	var item model.MenuItem
	if err := r.db.WithContext(ctx).First(&item, "button_text = ?", buttonText).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) List(ctx context.Context, offset, limit int) ([]model.MenuItem, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.MenuItem{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []model.MenuItem
	err := r.db.WithContext(ctx).Order("id asc").Offset(offset).Limit(limit).Find(&items).Error
	if err != nil {
		return nil, 0, err
	}

	logAccess("entry retrieve: model=MenuItem, %d entries retrieved", len(items))
	return items, total, nil
}

func (r *menuRepository) ListAll(ctx context.Context) ([]model.MenuItem, error) {
	var items []model.MenuItem
	if err := r.db.WithContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	logAccess("entry retrieve: model=MenuItem, %d entries retrieved", len(items))
	return items, nil
}

func (r *menuRepository) Update(ctx context.Context, item *model.MenuItem) error {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).First(item, "id = ?", item.ID).Error; err != nil {
		return err
	}
	logAccess("entry update: model=MenuItem, id=%d", item.ID)
	return nil
}

// Delete is idempotent: removing an unknown id is a no-op.
func (r *menuRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.MenuItem{}, "id = ?", id).Error; err != nil {
		return err
	}
	logAccess("entry deletion: model=MenuItem, id=%d", id)
	return nil
}

func (r *menuRepository) DeleteAll(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Where("1 = 1").Delete(&model.MenuItem{}).Error; err != nil {
		return err
	}
	logAccess("all data from model=MenuItem was deleted")
	return nil
}

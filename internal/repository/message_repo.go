package repository

import (
	"context"

	"hrbot/internal/model"

	"gorm.io/gorm"
)

// MessageRepository defines the interface for data access of Message
// entities.
type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
	ListByEmployee(ctx context.Context, employeeID int64, offset, limit int) ([]model.Message, int64, error)
	MarkChatAsRead(ctx context.Context, employeeID int64) (int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository returns a new instance of MessageRepository.
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *model.Message) error {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).First(message, "id = ?", message.ID).Error; err != nil {
		return err
	}
	logAccess("entry creation: model=Message, id=%d", message.ID)
	return nil
}

func (r *messageRepository) ListByEmployee(ctx context.Context, employeeID int64, offset, limit int) ([]model.Message, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Message{}).Where("employee_id = ?", employeeID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []model.Message
	err := q.Order("created_at asc").Offset(offset).Limit(limit).Find(&messages).Error
	if err != nil {
		return nil, 0, err
	}

	logAccess("entry retrieve: model=Message, %d entries retrieved", len(messages))
	return messages, total, nil
}

// MarkChatAsRead flips is_read on every message of the employee's chat in a
// single statement.
func (r *messageRepository) MarkChatAsRead(ctx context.Context, employeeID int64) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Message{}).
		Where("employee_id = ?", employeeID).
		Update("is_read", true)
	if res.Error != nil {
		return 0, res.Error
	}
	logAccess("entry change: model=Message, employee_id=%d, entries affected=%d", employeeID, res.RowsAffected)
	return res.RowsAffected, nil
}

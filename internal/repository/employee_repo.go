package repository

import (
	"context"
	"time"

	"hrbot/internal/model"

	"gorm.io/gorm"
)

// ChatListEntry aggregates per-employee message statistics for the chat list.
type ChatListEntry struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	IsBanned      bool       `json:"is_banned"`
	UnreadCount   int64      `json:"unread_count"`
	LastMessageAt *time.Time `json:"last_message_at"`
}

// EmployeeRepository defines the interface for data access of Employee
// entities.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *model.Employee) error
	GetByID(ctx context.Context, id int64) (*model.Employee, error)
	Update(ctx context.Context, employee *model.Employee) error
	ChatList(ctx context.Context) ([]ChatListEntry, error)
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository returns a new instance of EmployeeRepository.
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	if err := r.db.WithContext(ctx).Create(employee).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).First(employee, "id = ?", employee.ID).Error; err != nil {
		return err
	}
	logAccess("entry creation: model=Employee, id=%d", employee.ID)
	return nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*model.Employee, error) {
	var employee model.Employee
	if err := r.db.WithContext(ctx).First(&employee, "id = ?", id).Error; err != nil {
		return nil, err
	}
	logAccess("entry retrieve: model=Employee, id=%d", id)
	return &employee, nil
}

func (r *employeeRepository) Update(ctx context.Context, employee *model.Employee) error {
	if err := r.db.WithContext(ctx).Save(employee).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).First(employee, "id = ?", employee.ID).Error; err != nil {
		return err
	}
	logAccess("entry update: model=Employee, id=%d", employee.ID)
	return nil
}

// ChatList joins employees against grouped message statistics: unread counts
// and last-message timestamps, most recently active chats first, employees
// without messages last.
func (r *employeeRepository) ChatList(ctx context.Context) ([]ChatListEntry, error) {
	stats := r.db.Model(&model.Message{}).
		Select("employee_id, count(case when is_read = ? then 1 end) as unread_count, max(created_at) as last_message_at", false).
		Group("employee_id")

	var entries []ChatListEntry
	err := r.db.WithContext(ctx).Model(&model.Employee{}).
		Select("employees.id, employees.name, employees.is_banned, coalesce(stats.unread_count, 0) as unread_count, stats.last_message_at").
		Joins("LEFT JOIN (?) stats ON employees.id = stats.employee_id", stats).
		Order("stats.last_message_at DESC NULLS LAST").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}

	logAccess("entry retrieve: model=Employee, %d chats retrieved", len(entries))
	return entries, nil
}

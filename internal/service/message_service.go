package service

import (
	"context"
	"time"

	"hrbot/internal/model"
	"hrbot/internal/repository"
	"hrbot/pkg/apierror"
	"hrbot/pkg/pagination"
)

const (
	errEmployeeNotExist = "requested employee does not exist"
	errEmployeeBanned   = "employee is banned"
)

type EmployeeRequest struct {
	ID   int64  `json:"id" binding:"required"`
	Name string `json:"name" binding:"max=150"`
}

type ChangeEmployeeRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=150"`
	IsBanned    *bool   `json:"is_banned"`
	UpdatedByID uint    `json:"updated_by_id" binding:"required"`
}

type CreateMessageRequest struct {
	EmployeeID int64  `json:"employee_id" binding:"required"`
	Text       string `json:"text" binding:"required,max=2048"`
	ManagerID  *uint  `json:"manager_id"`
}

// EmployeeChat is an employee with a page of their message history.
type EmployeeChat struct {
	ID        int64                           `json:"id"`
	Name      string                          `json:"name"`
	IsBanned  bool                            `json:"is_banned"`
	CreatedAt time.Time                       `json:"created_at"`
	Messages  pagination.Page[model.Message] `json:"messages"`
}

// ReplyNotifier delivers a manager's reply to the employee's chat. Delivery
// happens outside the request transaction and failures do not undo the
// stored message.
type ReplyNotifier interface {
	NotifyEmployee(chatID int64, text string)
}

// ChatEventBroadcaster fans out new-message events to connected admin panels.
type ChatEventBroadcaster interface {
	NewMessage(message *model.Message)
}

// MessageService owns employees and their chats: get-or-create on first bot
// contact, ban gating, message creation, and read tracking.
type MessageService interface {
	GetOrCreateEmployee(ctx context.Context, req EmployeeRequest) (*model.Employee, error)
	GetEmployee(ctx context.Context, id int64) (*model.Employee, error)
	ChatList(ctx context.Context) ([]repository.ChatListEntry, error)
	ChangeEmployee(ctx context.Context, id int64, req ChangeEmployeeRequest) (*model.Employee, error)
	CreateMessage(ctx context.Context, req CreateMessageRequest) (*model.Message, error)
	GetEmployeeChat(ctx context.Context, employeeID int64, p pagination.Params) (*EmployeeChat, error)
	MarkChatAsRead(ctx context.Context, employeeID int64) error
}

type messageService struct {
	employees repository.EmployeeRepository
	messages  repository.MessageRepository
	authz     *Authorizer
	notifier  ReplyNotifier
	events    ChatEventBroadcaster
}

// NewMessageService returns a new instance of MessageService. notifier and
// events may be nil when reply delivery or live updates are not wired.
func NewMessageService(
	employees repository.EmployeeRepository,
	messages repository.MessageRepository,
	authz *Authorizer,
	notifier ReplyNotifier,
	events ChatEventBroadcaster,
) MessageService {
	return &messageService{
		employees: employees,
		messages:  messages,
		authz:     authz,
		notifier:  notifier,
		events:    events,
	}
}

// GetOrCreateEmployee looks the employee up by their external chat id,
// creating the record on first contact. Banned employees are rejected.
func (s *messageService) GetOrCreateEmployee(ctx context.Context, req EmployeeRequest) (*model.Employee, error) {
	employee, err := s.employees.GetByID(ctx, req.ID)
	if err != nil {
		if !IsNotFound(err) {
			return nil, err
		}
		employee = &model.Employee{ID: req.ID, Name: req.Name}
		if err := s.employees.Create(ctx, employee); err != nil {
			return nil, err
		}
	}
	if employee.IsBanned {
		return nil, apierror.Forbidden(errNoPermission)
	}
	return employee, nil
}

func (s *messageService) GetEmployee(ctx context.Context, id int64) (*model.Employee, error) {
	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound(errEmployeeNotExist)
	}
	return employee, nil
}

func (s *messageService) ChatList(ctx context.Context) ([]repository.ChatListEntry, error) {
	return s.employees.ChatList(ctx)
}

// ChangeEmployee bans, unbans, or renames an employee on behalf of a manager
// holding the send-messages capability.
func (s *messageService) ChangeEmployee(ctx context.Context, id int64, req ChangeEmployeeRequest) (*model.Employee, error) {
	if _, err := s.authz.RequireCapability(ctx, req.UpdatedByID, model.CapSendMessages); err != nil {
		return nil, err
	}

	employee, err := s.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.IsBanned != nil {
		employee.IsBanned = *req.IsBanned
	}
	editor := req.UpdatedByID
	employee.UpdatedByID = &editor

	if err := s.employees.Update(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// CreateMessage stores a message from an employee or a manager. Manager
// messages require the send-messages capability, are auto-marked read, and
// are delivered back to the employee's chat asynchronously.
func (s *messageService) CreateMessage(ctx context.Context, req CreateMessageRequest) (*model.Message, error) {
	employee, err := s.GetEmployee(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if employee.IsBanned {
		return nil, apierror.Forbidden(errEmployeeBanned)
	}

	message := &model.Message{
		EmployeeID: req.EmployeeID,
		Text:       req.Text,
		ManagerID:  req.ManagerID,
	}
	if req.ManagerID != nil {
		if _, err := s.authz.RequireCapability(ctx, *req.ManagerID, model.CapSendMessages); err != nil {
			return nil, err
		}
		message.IsRead = true
	}

	if err := s.messages.Create(ctx, message); err != nil {
		return nil, err
	}

	if req.ManagerID != nil && s.notifier != nil {
		go s.notifier.NotifyEmployee(message.EmployeeID, message.Text)
	}
	if s.events != nil {
		s.events.NewMessage(message)
	}
	return message, nil
}

func (s *messageService) GetEmployeeChat(ctx context.Context, employeeID int64, p pagination.Params) (*EmployeeChat, error) {
	employee, err := s.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	messages, total, err := s.messages.ListByEmployee(ctx, employeeID, p.Offset, p.Size)
	if err != nil {
		return nil, err
	}

	return &EmployeeChat{
		ID:        employee.ID,
		Name:      employee.Name,
		IsBanned:  employee.IsBanned,
		CreatedAt: employee.CreatedAt,
		Messages:  pagination.NewPage(messages, total, p),
	}, nil
}

func (s *messageService) MarkChatAsRead(ctx context.Context, employeeID int64) error {
	if _, err := s.GetEmployee(ctx, employeeID); err != nil {
		return err
	}
	_, err := s.messages.MarkChatAsRead(ctx, employeeID)
	return err
}

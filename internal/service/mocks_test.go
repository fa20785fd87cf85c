package service

import (
	"context"
	"time"

	"hrbot/internal/model"
	"hrbot/internal/repository"

	"gorm.io/gorm"
)

// Func-field mocks for the repository interfaces. Getters default to
// gorm.ErrRecordNotFound, mutations to success, lists to empty.

type mockUserRepository struct {
	createFunc        func(ctx context.Context, user *model.User) error
	getByIDFunc       func(ctx context.Context, id uint) (*model.User, error)
	getByUsernameFunc func(ctx context.Context, username string) (*model.User, error)
	listFunc          func(ctx context.Context, filter repository.UserFilter, offset, limit int) ([]model.User, int64, error)
	updateFunc        func(ctx context.Context, user *model.User) error
}

func (m *mockUserRepository) Create(ctx context.Context, user *model.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*model.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.getByUsernameFunc != nil {
		return m.getByUsernameFunc(ctx, username)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepository) List(ctx context.Context, filter repository.UserFilter, offset, limit int) ([]model.User, int64, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) Update(ctx context.Context, user *model.User) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, user)
	}
	return nil
}

type mockSessionRepository struct {
	createFunc      func(ctx context.Context, session *model.Session) error
	getByIDFunc     func(ctx context.Context, id string) (*model.Session, error)
	deleteFunc      func(ctx context.Context, id string) error
	deleteStaleFunc func(ctx context.Context, now time.Time) (int64, error)
}

func (m *mockSessionRepository) Create(ctx context.Context, session *model.Session) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, session)
	}
	return nil
}

func (m *mockSessionRepository) GetByID(ctx context.Context, id string) (*model.Session, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSessionRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockSessionRepository) DeleteStale(ctx context.Context, now time.Time) (int64, error) {
	if m.deleteStaleFunc != nil {
		return m.deleteStaleFunc(ctx, now)
	}
	return 0, nil
}

type mockRoleRepository struct {
	createFunc  func(ctx context.Context, role *model.Role) error
	getByIDFunc func(ctx context.Context, id uint) (*model.Role, error)
	listFunc    func(ctx context.Context) ([]model.Role, error)
}

func (m *mockRoleRepository) Create(ctx context.Context, role *model.Role) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, role)
	}
	return nil
}

func (m *mockRoleRepository) GetByID(ctx context.Context, id uint) (*model.Role, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRoleRepository) List(ctx context.Context) ([]model.Role, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

type mockMenuRepository struct {
	createFunc          func(ctx context.Context, item *model.MenuItem) error
	getByIDFunc         func(ctx context.Context, id uint) (*model.MenuItem, error)
	getByButtonTextFunc func(ctx context.Context, buttonText string) (*model.MenuItem, error)
	listFunc            func(ctx context.Context, offset, limit int) ([]model.MenuItem, int64, error)
	listAllFunc         func(ctx context.Context) ([]model.MenuItem, error)
	updateFunc          func(ctx context.Context, item *model.MenuItem) error
	deleteFunc          func(ctx context.Context, id uint) error
	deleteAllFunc       func(ctx context.Context) error
}

func (m *mockMenuRepository) Create(ctx context.Context, item *model.MenuItem) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, item)
	}
	return nil
}

func (m *mockMenuRepository) GetByID(ctx context.Context, id uint) (*model.MenuItem, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMenuRepository) GetByButtonText(ctx context.Context, buttonText string) (*model.MenuItem, error) {
	if m.getByButtonTextFunc != nil {
		return m.getByButtonTextFunc(ctx, buttonText)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMenuRepository) List(ctx context.Context, offset, limit int) ([]model.MenuItem, int64, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockMenuRepository) ListAll(ctx context.Context) ([]model.MenuItem, error) {
	if m.listAllFunc != nil {
		return m.listAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockMenuRepository) Update(ctx context.Context, item *model.MenuItem) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, item)
	}
	return nil
}

func (m *mockMenuRepository) Delete(ctx context.Context, id uint) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockMenuRepository) DeleteAll(ctx context.Context) error {
	if m.deleteAllFunc != nil {
		return m.deleteAllFunc(ctx)
	}
	return nil
}

type mockSettingRepository struct {
	createFunc    func(ctx context.Context, setting *model.Setting) error
	getByIDFunc   func(ctx context.Context, id uint) (*model.Setting, error)
	listAllFunc   func(ctx context.Context) ([]model.Setting, error)
	updateFunc    func(ctx context.Context, setting *model.Setting) error
	deleteAllFunc func(ctx context.Context) error
}

func (m *mockSettingRepository) Create(ctx context.Context, setting *model.Setting) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, setting)
	}
	return nil
}

func (m *mockSettingRepository) GetByID(ctx context.Context, id uint) (*model.Setting, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSettingRepository) ListAll(ctx context.Context) ([]model.Setting, error) {
	if m.listAllFunc != nil {
		return m.listAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockSettingRepository) Update(ctx context.Context, setting *model.Setting) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, setting)
	}
	return nil
}

func (m *mockSettingRepository) DeleteAll(ctx context.Context) error {
	if m.deleteAllFunc != nil {
		return m.deleteAllFunc(ctx)
	}
	return nil
}

type mockEmployeeRepository struct {
	createFunc   func(ctx context.Context, employee *model.Employee) error
	getByIDFunc  func(ctx context.Context, id int64) (*model.Employee, error)
	updateFunc   func(ctx context.Context, employee *model.Employee) error
	chatListFunc func(ctx context.Context) ([]repository.ChatListEntry, error)
}

func (m *mockEmployeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, employee)
	}
	return nil
}

func (m *mockEmployeeRepository) GetByID(ctx context.Context, id int64) (*model.Employee, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepository) Update(ctx context.Context, employee *model.Employee) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, employee)
	}
	return nil
}

func (m *mockEmployeeRepository) ChatList(ctx context.Context) ([]repository.ChatListEntry, error) {
	if m.chatListFunc != nil {
		return m.chatListFunc(ctx)
	}
	return nil, nil
}

type mockMessageRepository struct {
	createFunc         func(ctx context.Context, message *model.Message) error
	listByEmployeeFunc func(ctx context.Context, employeeID int64, offset, limit int) ([]model.Message, int64, error)
	markAsReadFunc     func(ctx context.Context, employeeID int64) (int64, error)
}

func (m *mockMessageRepository) Create(ctx context.Context, message *model.Message) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, message)
	}
	return nil
}

func (m *mockMessageRepository) ListByEmployee(ctx context.Context, employeeID int64, offset, limit int) ([]model.Message, int64, error) {
	if m.listByEmployeeFunc != nil {
		return m.listByEmployeeFunc(ctx, employeeID, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockMessageRepository) MarkChatAsRead(ctx context.Context, employeeID int64) (int64, error) {
	if m.markAsReadFunc != nil {
		return m.markAsReadFunc(ctx, employeeID)
	}
	return 0, nil
}

// managerUser builds an active user whose role carries the given
// capabilities, keyed by the Capability constants.
func managerUser(id uint, caps ...model.Capability) *model.User {
	role := &model.Role{ID: 1, Name: "test-role"}
	for _, c := range caps {
		switch c {
		case model.CapEditSettings:
			role.CanEditSettings = true
		case model.CapEditUsers:
			role.CanEditUsers = true
		case model.CapSendMessages:
			role.CanSendMessages = true
		case model.CapEditMenu:
			role.CanEditMenu = true
		}
	}
	return &model.User{ID: id, Username: "manager", RoleID: role.ID, Role: role, IsActive: true}
}

// authzFor returns an Authorizer that resolves every actor id to the given
// user.
func authzFor(user *model.User) *Authorizer {
	return NewAuthorizer(&mockUserRepository{
		getByIDFunc: func(ctx context.Context, id uint) (*model.User, error) {
			if user != nil && id == user.ID {
				return user, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	})
}

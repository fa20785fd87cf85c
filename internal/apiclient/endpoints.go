package apiclient

import (
	"fmt"
	"net/url"

	"hrbot/internal/model"
	"hrbot/internal/repository"
	"hrbot/internal/service"
	"hrbot/pkg/pagination"
)

// Login exchanges credentials for a session.
func (c *Client) Login(username, password string) (*model.Session, error) {
	var session model.Session
	req := service.LoginRequest{Username: username, Password: password}
	if err := c.post("/auth/sessions", req, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// ResolveSession returns the user behind a live session id.
func (c *Client) ResolveSession(sessionID string) (*model.User, error) {
	var user model.User
	if err := c.get("/auth/sessions/"+sessionID, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout invalidates a session. Unknown ids succeed.
func (c *Client) Logout(sessionID string) error {
	return c.delete("/auth/sessions/" + sessionID)
}

func (c *Client) ListRoles() ([]model.Role, error) {
	var roles []model.Role
	if err := c.get("/users/roles", &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

// ListUsers accepts the raw filter query (page, size, role, is_active,
// name) as the backend understands it.
func (c *Client) ListUsers(query url.Values) (*pagination.Page[model.User], error) {
	var out pagination.Page[model.User]
	if err := c.get("/users?"+query.Encode(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetUser(id uint) (*model.User, error) {
	var user model.User
	if err := c.get(fmt.Sprintf("/users/%d", id), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) CreateUser(req service.CreateUserRequest) (*model.User, error) {
	var user model.User
	if err := c.post("/users", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateUser(id uint, req service.UpdateUserRequest) (*model.User, error) {
	var user model.User
	if err := c.patch(fmt.Sprintf("/users/%d", id), req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListSettings returns every bot setting. The bot polls this to keep its
// settings snapshot fresh.
func (c *Client) ListSettings() ([]model.Setting, error) {
	var settings []model.Setting
	if err := c.get("/settings", &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (c *Client) UpdateSetting(id uint, req service.UpdateSettingRequest) (*model.Setting, error) {
	var setting model.Setting
	if err := c.patch(fmt.Sprintf("/settings/%d", id), req, &setting); err != nil {
		return nil, err
	}
	return &setting, nil
}

func (c *Client) DownloadSettings(path string, actorID uint) error {
	return c.post("/settings/download", transferRequest{Path: path, ActorID: actorID}, nil)
}

func (c *Client) UploadSettings(path string, actorID uint) error {
	return c.post("/settings/upload", transferRequest{Path: path, ActorID: actorID}, nil)
}

func (c *Client) GetMenuPage(page, size int) (*pagination.Page[model.MenuItem], error) {
	var out pagination.Page[model.MenuItem]
	if err := c.get(fmt.Sprintf("/menu?page=%d&size=%d", page, size), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetMenuItem(id uint) (*model.MenuItem, error) {
	var item model.MenuItem
	if err := c.get(fmt.Sprintf("/menu/%d", id), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) CreateMenuItem(req service.CreateMenuItemRequest) (*model.MenuItem, error) {
	var item model.MenuItem
	if err := c.post("/menu", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) UpdateMenuItem(id uint, req service.UpdateMenuItemRequest) (*model.MenuItem, error) {
	var item model.MenuItem
	if err := c.patch(fmt.Sprintf("/menu/%d", id), req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) DeleteMenuItem(id uint) error {
	return c.delete(fmt.Sprintf("/menu/%d", id))
}

func (c *Client) DownloadMenu(path string, actorID uint) error {
	return c.post("/menu/download", transferRequest{Path: path, ActorID: actorID}, nil)
}

func (c *Client) UploadMenu(path string, actorID uint) error {
	return c.post("/menu/upload", transferRequest{Path: path, ActorID: actorID}, nil)
}

// GetOrCreateEmployee registers the chat on first contact and returns the
// stored employee afterwards.
func (c *Client) GetOrCreateEmployee(id int64, name string) (*model.Employee, error) {
	var employee model.Employee
	req := service.EmployeeRequest{ID: id, Name: name}
	if err := c.post("/messages/employees", req, &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (c *Client) GetEmployee(id int64) (*model.Employee, error) {
	var employee model.Employee
	if err := c.get(fmt.Sprintf("/messages/employees/%d", id), &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (c *Client) ChangeEmployee(id int64, req service.ChangeEmployeeRequest) (*model.Employee, error) {
	var employee model.Employee
	if err := c.patch(fmt.Sprintf("/messages/employees/%d", id), req, &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (c *Client) ChatList() ([]repository.ChatListEntry, error) {
	var chats []repository.ChatListEntry
	if err := c.get("/messages/employees", &chats); err != nil {
		return nil, err
	}
	return chats, nil
}

func (c *Client) GetEmployeeChat(id int64, page, size int) (*service.EmployeeChat, error) {
	var chat service.EmployeeChat
	if err := c.get(fmt.Sprintf("/messages/employees/%d/chat?page=%d&size=%d", id, page, size), &chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

// SendEmployeeMessage records an incoming message from an employee chat.
func (c *Client) SendEmployeeMessage(employeeID int64, text string) (*model.Message, error) {
	return c.createMessage(service.CreateMessageRequest{EmployeeID: employeeID, Text: text})
}

// SendManagerMessage records a manager reply. The backend delivers it to
// the employee chat.
func (c *Client) SendManagerMessage(employeeID int64, managerID uint, text string) (*model.Message, error) {
	return c.createMessage(service.CreateMessageRequest{EmployeeID: employeeID, Text: text, ManagerID: &managerID})
}

func (c *Client) createMessage(req service.CreateMessageRequest) (*model.Message, error) {
	var message model.Message
	if err := c.post("/messages", req, &message); err != nil {
		return nil, err
	}
	return &message, nil
}

func (c *Client) MarkChatAsRead(employeeID int64) error {
	return c.post(fmt.Sprintf("/messages/employees/%d/chat/mark_as_read", employeeID), nil, nil)
}

type transferRequest struct {
	Path    string `json:"path"`
	ActorID uint   `json:"actor_id"`
}

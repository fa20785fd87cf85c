package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hrbot/internal/model"
	"hrbot/internal/repository"
	"hrbot/internal/service"
	"hrbot/pkg/apierror"
	"hrbot/pkg/pagination"

	"github.com/gin-gonic/gin"
)

type mockMessageService struct {
	getOrCreateFunc     func(ctx context.Context, req service.EmployeeRequest) (*model.Employee, error)
	getEmployeeFunc     func(ctx context.Context, id int64) (*model.Employee, error)
	chatListFunc        func(ctx context.Context) ([]repository.ChatListEntry, error)
	changeEmployeeFunc  func(ctx context.Context, id int64, req service.ChangeEmployeeRequest) (*model.Employee, error)
	createMessageFunc   func(ctx context.Context, req service.CreateMessageRequest) (*model.Message, error)
	getEmployeeChatFunc func(ctx context.Context, employeeID int64, p pagination.Params) (*service.EmployeeChat, error)
	markAsReadFunc      func(ctx context.Context, employeeID int64) error
}

func (m *mockMessageService) GetOrCreateEmployee(ctx context.Context, req service.EmployeeRequest) (*model.Employee, error) {
	return m.getOrCreateFunc(ctx, req)
}

func (m *mockMessageService) GetEmployee(ctx context.Context, id int64) (*model.Employee, error) {
	return m.getEmployeeFunc(ctx, id)
}

func (m *mockMessageService) ChatList(ctx context.Context) ([]repository.ChatListEntry, error) {
	return m.chatListFunc(ctx)
}

func (m *mockMessageService) ChangeEmployee(ctx context.Context, id int64, req service.ChangeEmployeeRequest) (*model.Employee, error) {
	return m.changeEmployeeFunc(ctx, id, req)
}

func (m *mockMessageService) CreateMessage(ctx context.Context, req service.CreateMessageRequest) (*model.Message, error) {
	return m.createMessageFunc(ctx, req)
}

func (m *mockMessageService) GetEmployeeChat(ctx context.Context, employeeID int64, p pagination.Params) (*service.EmployeeChat, error) {
	return m.getEmployeeChatFunc(ctx, employeeID, p)
}

func (m *mockMessageService) MarkChatAsRead(ctx context.Context, employeeID int64) error {
	return m.markAsReadFunc(ctx, employeeID)
}

func messageRouter(svc service.MessageService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewMessageHandler(svc).RegisterRoutes(router.Group("/bot/api"))
	return router
}

func TestCreateOrGetEmployee(t *testing.T) {
	svc := &mockMessageService{
		getOrCreateFunc: func(ctx context.Context, req service.EmployeeRequest) (*model.Employee, error) {
			if req.ID == 42 {
				return &model.Employee{ID: 42, Name: req.Name}, nil
			}
			return nil, apierror.Forbidden("no permission to perform this action")
		},
	}
	router := messageRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/bot/api/messages/employees",
		strings.NewReader(`{"id":42,"name":"Ivan"}`)))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/bot/api/messages/employees",
		strings.NewReader(`{"id":13,"name":"Banned"}`)))
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestGetEmployeeChat(t *testing.T) {
	svc := &mockMessageService{
		getEmployeeChatFunc: func(ctx context.Context, employeeID int64, p pagination.Params) (*service.EmployeeChat, error) {
			if employeeID != 42 {
				return nil, apierror.NotFound("requested employee does not exist")
			}
			return &service.EmployeeChat{
				ID:   42,
				Name: "Ivan",
				Messages: pagination.NewPage([]model.Message{
					{ID: 1, EmployeeID: 42, Text: "Hello"},
				}, 1, p),
			}, nil
		},
	}
	router := messageRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/bot/api/messages/employees/42/chat?page=1&size=10", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var chat struct {
		ID       int64 `json:"id"`
		Messages struct {
			Items []model.Message `json:"items"`
			Total int64           `json:"total"`
			Page  int             `json:"page"`
			Size  int             `json:"size"`
			Pages int             `json:"pages"`
		} `json:"messages"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &chat); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if chat.ID != 42 || len(chat.Messages.Items) != 1 || chat.Messages.Pages != 1 {
		t.Fatalf("unexpected chat payload: %s", w.Body.String())
	}
}

func TestEmployeeIDParsing(t *testing.T) {
	svc := &mockMessageService{
		getEmployeeFunc: func(ctx context.Context, id int64) (*model.Employee, error) {
			return &model.Employee{ID: id, Name: "Ivan"}, nil
		},
	}
	router := messageRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/bot/api/messages/employees/garbage", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for a malformed id, got %d", w.Code)
	}
}

func TestMarkChatAsRead(t *testing.T) {
	var marked int64
	svc := &mockMessageService{
		markAsReadFunc: func(ctx context.Context, employeeID int64) error {
			marked = employeeID
			return nil
		},
	}
	router := messageRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/bot/api/messages/employees/42/chat/mark_as_read", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if marked != 42 {
		t.Fatalf("marked the wrong chat: %d", marked)
	}
}

package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"hrbot/internal/model"

	"gorm.io/gorm"
)

type recordingNotifier struct {
	delivered chan string
}

func (n *recordingNotifier) NotifyEmployee(chatID int64, text string) {
	n.delivered <- text
}

// employeeStore is a tiny in-memory EmployeeRepository used where the test
// needs real get-or-create behavior instead of canned responses.
func employeeStore() *mockEmployeeRepository {
	byID := map[int64]*model.Employee{}
	repo := &mockEmployeeRepository{}
	repo.getByIDFunc = func(ctx context.Context, id int64) (*model.Employee, error) {
		if e, ok := byID[id]; ok {
			clone := *e
			return &clone, nil
		}
		return nil, gorm.ErrRecordNotFound
	}
	repo.createFunc = func(ctx context.Context, employee *model.Employee) error {
		employee.CreatedAt = time.Now()
		byID[employee.ID] = employee
		return nil
	}
	repo.updateFunc = func(ctx context.Context, employee *model.Employee) error {
		byID[employee.ID] = employee
		return nil
	}
	return repo
}

func TestGetOrCreateEmployee(t *testing.T) {
	employees := employeeStore()
	svc := NewMessageService(employees, &mockMessageRepository{}, authzFor(nil), nil, nil)

	first, err := svc.GetOrCreateEmployee(context.Background(), EmployeeRequest{ID: 42, Name: "Ivan"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ID != 42 || first.Name != "Ivan" {
		t.Fatalf("unexpected employee: %+v", first)
	}

	// Second contact returns the stored record instead of creating another.
	second, err := svc.GetOrCreateEmployee(context.Background(), EmployeeRequest{ID: 42, Name: "Ivan Renamed"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Name != "Ivan" {
		t.Fatalf("existing record was overwritten: %+v", second)
	}
}

func TestGetOrCreateEmployeeRejectsBanned(t *testing.T) {
	manager := managerUser(1, model.CapSendMessages)
	employees := employeeStore()
	svc := NewMessageService(employees, &mockMessageRepository{}, authzFor(manager), nil, nil)

	if _, err := svc.GetOrCreateEmployee(context.Background(), EmployeeRequest{ID: 42, Name: "Ivan"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	banned := true
	if _, err := svc.ChangeEmployee(context.Background(), 42, ChangeEmployeeRequest{IsBanned: &banned, UpdatedByID: manager.ID}); err != nil {
		t.Fatalf("ban failed: %v", err)
	}

	_, err := svc.GetOrCreateEmployee(context.Background(), EmployeeRequest{ID: 42, Name: "Ivan"})
	wantStatus(t, err, http.StatusForbidden)
}

func TestCreateMessage(t *testing.T) {
	manager := managerUser(1, model.CapSendMessages)

	setup := func(t *testing.T, notifier ReplyNotifier) (MessageService, *[]*model.Message) {
		t.Helper()
		employees := employeeStore()
		svc := NewMessageService(employees, &mockMessageRepository{}, authzFor(manager), notifier, nil)
		if _, err := svc.GetOrCreateEmployee(context.Background(), EmployeeRequest{ID: 42, Name: "Ivan"}); err != nil {
			t.Fatalf("seed employee: %v", err)
		}

		var stored []*model.Message
		messages := &mockMessageRepository{
			createFunc: func(ctx context.Context, message *model.Message) error {
				message.ID = uint(len(stored) + 1)
				stored = append(stored, message)
				return nil
			},
		}
		return NewMessageService(employees, messages, authzFor(manager), notifier, nil), &stored
	}

	t.Run("employee message starts unread", func(t *testing.T) {
		svc, stored := setup(t, nil)
		message, err := svc.CreateMessage(context.Background(), CreateMessageRequest{EmployeeID: 42, Text: "Hello"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if message.IsRead {
			t.Fatal("employee message must start unread")
		}
		if message.ManagerID != nil {
			t.Fatal("employee message must have no manager")
		}
		if len(*stored) != 1 {
			t.Fatalf("expected 1 stored message, got %d", len(*stored))
		}
	})

	t.Run("manager reply is read and delivered to the chat", func(t *testing.T) {
		notifier := &recordingNotifier{delivered: make(chan string, 1)}
		svc, _ := setup(t, notifier)

		managerID := manager.ID
		message, err := svc.CreateMessage(context.Background(), CreateMessageRequest{
			EmployeeID: 42, Text: "Hi", ManagerID: &managerID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !message.IsRead {
			t.Fatal("manager reply must be marked read")
		}

		select {
		case text := <-notifier.delivered:
			if text != "Hi" {
				t.Fatalf("delivered %q", text)
			}
		case <-time.After(time.Second):
			t.Fatal("reply was never delivered")
		}
	})

	t.Run("manager without the capability is rejected", func(t *testing.T) {
		svc, stored := setup(t, nil)
		outsider := uint(99)
		_, err := svc.CreateMessage(context.Background(), CreateMessageRequest{
			EmployeeID: 42, Text: "Hi", ManagerID: &outsider,
		})
		wantStatus(t, err, http.StatusForbidden)
		if len(*stored) != 0 {
			t.Fatal("rejected message was stored")
		}
	})

	t.Run("unknown employee", func(t *testing.T) {
		svc, _ := setup(t, nil)
		_, err := svc.CreateMessage(context.Background(), CreateMessageRequest{EmployeeID: 7, Text: "Hello"})
		wantStatus(t, err, http.StatusNotFound)
	})

	t.Run("banned employee cannot write", func(t *testing.T) {
		svc, stored := setup(t, nil)
		banned := true
		if _, err := svc.ChangeEmployee(context.Background(), 42, ChangeEmployeeRequest{IsBanned: &banned, UpdatedByID: manager.ID}); err != nil {
			t.Fatalf("ban failed: %v", err)
		}
		_, err := svc.CreateMessage(context.Background(), CreateMessageRequest{EmployeeID: 42, Text: "Hello"})
		wantStatus(t, err, http.StatusForbidden)
		if len(*stored) != 0 {
			t.Fatal("message from banned employee was stored")
		}
	})
}

func TestMarkChatAsReadRequiresExistingEmployee(t *testing.T) {
	svc := NewMessageService(employeeStore(), &mockMessageRepository{}, authzFor(nil), nil, nil)
	err := svc.MarkChatAsRead(context.Background(), 7)
	wantStatus(t, err, http.StatusNotFound)
}

func TestChangeEmployeeRequiresCapability(t *testing.T) {
	viewer := managerUser(2, model.CapEditMenu)
	svc := NewMessageService(employeeStore(), &mockMessageRepository{}, authzFor(viewer), nil, nil)

	banned := true
	_, err := svc.ChangeEmployee(context.Background(), 42, ChangeEmployeeRequest{IsBanned: &banned, UpdatedByID: viewer.ID})
	wantStatus(t, err, http.StatusForbidden)
}

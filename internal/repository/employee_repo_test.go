package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"hrbot/internal/database"
	"hrbot/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestChatListAggregatesMessageStats(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	employees := NewEmployeeRepository(db)
	messages := NewMessageRepository(db)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for _, e := range []*model.Employee{
		{ID: 101, Name: "Ivanov"},
		{ID: 102, Name: "Petrova"},
		{ID: 103, Name: "Sidorov"},
	} {
		if err := employees.Create(ctx, e); err != nil {
			t.Fatalf("create employee %d: %v", e.ID, err)
		}
	}

	// Ivanov: two messages, one unread. Petrova: a single read message, but
	// the most recent one. Sidorov never wrote.
	for _, m := range []*model.Message{
		{EmployeeID: 101, Text: "Hello", IsRead: true, CreatedAt: base},
		{EmployeeID: 101, Text: "Anyone there?", CreatedAt: base.Add(time.Hour)},
		{EmployeeID: 102, Text: "Thanks", IsRead: true, CreatedAt: base.Add(2 * time.Hour)},
	} {
		if err := messages.Create(ctx, m); err != nil {
			t.Fatalf("create message: %v", err)
		}
	}

	entries, err := employees.ChatList(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	// Most recently active chats first, message-less employees last.
	if entries[0].ID != 102 || entries[1].ID != 101 || entries[2].ID != 103 {
		t.Fatalf("unexpected order: %d, %d, %d", entries[0].ID, entries[1].ID, entries[2].ID)
	}

	if entries[0].UnreadCount != 0 {
		t.Fatalf("Petrova unread = %d, want 0", entries[0].UnreadCount)
	}
	if entries[1].UnreadCount != 1 {
		t.Fatalf("Ivanov unread = %d, want 1", entries[1].UnreadCount)
	}
	if entries[1].LastMessageAt == nil || !entries[1].LastMessageAt.Equal(base.Add(time.Hour)) {
		t.Fatalf("Ivanov last message at %v, want %v", entries[1].LastMessageAt, base.Add(time.Hour))
	}

	if entries[2].UnreadCount != 0 || entries[2].LastMessageAt != nil {
		t.Fatalf("Sidorov should have no stats, got %+v", entries[2])
	}
}

func TestChatListOnEmptyDatabase(t *testing.T) {
	db := testDB(t)

	entries, err := NewEmployeeRepository(db).ChatList(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}

package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"hrbot/internal/model"
	"hrbot/internal/repository"
	"hrbot/pkg/apierror"
	"hrbot/pkg/csvx"
	"hrbot/pkg/pagination"
)

const errButtonTextTaken = "button text is already taken"

type CreateMenuItemRequest struct {
	ButtonText  string `json:"button_text" binding:"required,max=64"`
	Answer      string `json:"answer" binding:"required,max=2048"`
	CreatedByID uint   `json:"created_by_id" binding:"required"`
}

type UpdateMenuItemRequest struct {
	ButtonText  *string `json:"button_text" binding:"omitempty,max=64"`
	Answer      *string `json:"answer" binding:"omitempty,max=2048"`
	UpdatedByID uint    `json:"updated_by_id" binding:"required"`
}

// MenuService wraps menu CRUD with uniqueness and capability rules, plus the
// CSV interchange pair.
type MenuService interface {
	GetMenuItem(ctx context.Context, id uint) (*model.MenuItem, error)
	GetMenuPage(ctx context.Context, p pagination.Params) (pagination.Page[model.MenuItem], error)
	CreateMenuItem(ctx context.Context, req CreateMenuItemRequest) (*model.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id uint, req UpdateMenuItemRequest) (*model.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id uint) error
	Download(ctx context.Context, path string) error
	Upload(ctx context.Context, path string, actorID uint) error
}

type menuService struct {
	menu  repository.MenuRepository
	authz *Authorizer
}

// NewMenuService returns a new instance of MenuService.
func NewMenuService(menu repository.MenuRepository, authz *Authorizer) MenuService {
	return &menuService{menu: menu, authz: authz}
}

func (s *menuService) GetMenuItem(ctx context.Context, id uint) (*model.MenuItem, error) {
	item, err := s.menu.GetByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound(errEntryNotExist)
	}
	return item, nil
}

func (s *menuService) GetMenuPage(ctx context.Context, p pagination.Params) (pagination.Page[model.MenuItem], error) {
	items, total, err := s.menu.List(ctx, p.Offset, p.Size)
	if err != nil {
		return pagination.Page[model.MenuItem]{}, err
	}
	return pagination.NewPage(items, total, p), nil
}

func (s *menuService) CreateMenuItem(ctx context.Context, req CreateMenuItemRequest) (*model.MenuItem, error) {
	if _, err := s.authz.RequireCapability(ctx, req.CreatedByID, model.CapEditMenu); err != nil {
		return nil, err
	}
	if _, err := s.menu.GetByButtonText(ctx, req.ButtonText); err == nil {
		return nil, apierror.Unprocessable(errButtonTextTaken)
	}

	creator := req.CreatedByID
	item := &model.MenuItem{
		ButtonText:  req.ButtonText,
		Answer:      req.Answer,
		CreatedByID: &creator,
		UpdatedByID: &creator,
	}
	if err := s.menu.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *menuService) UpdateMenuItem(ctx context.Context, id uint, req UpdateMenuItemRequest) (*model.MenuItem, error) {
	if _, err := s.authz.RequireCapability(ctx, req.UpdatedByID, model.CapEditMenu); err != nil {
		return nil, err
	}

	item, err := s.menu.GetByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound(errEntryNotExist)
	}

	if req.ButtonText != nil && *req.ButtonText != item.ButtonText {
		if _, err := s.menu.GetByButtonText(ctx, *req.ButtonText); err == nil {
			return nil, apierror.Unprocessable(errButtonTextTaken)
		}
		item.ButtonText = *req.ButtonText
	}
	if req.Answer != nil {
		item.Answer = *req.Answer
	}
	editor := req.UpdatedByID
	item.UpdatedByID = &editor

	if err := s.menu.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *menuService) DeleteMenuItem(ctx context.Context, id uint) error {
	return s.menu.Delete(ctx, id)
}

// Download exports the menu to a semicolon-delimited CSV file.
func (s *menuService) Download(ctx context.Context, path string) error {
	items, err := s.menu.ListAll(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		log.Printf("menu download to %s skipped: table is empty", path)
		return nil
	}

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{item.ButtonText, item.Answer})
	}
	if err := csvx.WriteFile(path, []string{"button_text", "answer"}, rows); err != nil {
		return err
	}
	log.Printf("menu downloaded to %s, %d rows", path, len(rows))
	return nil
}

// Upload replaces the menu table with the file contents. The current rows are
// snapshotted to a backup file first and all incoming rows are validated
// before any row is written. The replace itself is best-effort, not atomic:
// a crash between truncate and reload leaves the table empty.
func (s *menuService) Upload(ctx context.Context, path string, actorID uint) error {
	if _, err := s.authz.RequireCapability(ctx, actorID, model.CapEditMenu); err != nil {
		return err
	}

	rows, err := csvx.ReadFile(path)
	if err != nil {
		return apierror.Unprocessable(fmt.Sprintf("failed to read %s: %v", path, err))
	}

	actor := actorID
	items := make([]*model.MenuItem, 0, len(rows))
	seen := make(map[string]bool, len(rows))
	for i, row := range rows {
		buttonText := strings.TrimSpace(row["button_text"])
		answer := row["answer"]
		if buttonText == "" || answer == "" {
			return apierror.Unprocessable(fmt.Sprintf("row %d: button_text and answer are required", i+1))
		}
		if utf8.RuneCountInString(buttonText) > model.MenuButtonTextMaxLength ||
			utf8.RuneCountInString(answer) > model.MenuAnswerMaxLength {
			return apierror.Unprocessable(fmt.Sprintf("row %d: value too long", i+1))
		}
		if seen[buttonText] {
			return apierror.Unprocessable(fmt.Sprintf("row %d: duplicate button text %q", i+1, buttonText))
		}
		seen[buttonText] = true
		items = append(items, &model.MenuItem{
			ButtonText:  buttonText,
			Answer:      answer,
			CreatedByID: &actor,
			UpdatedByID: &actor,
		})
	}

	backupPath := backupName(path)
	if err := s.Download(ctx, backupPath); err != nil {
		log.Printf("menu upload aborted, backup failed: %v", err)
		return err
	}
	log.Printf("menu backed up to %s", backupPath)

	if err := s.menu.DeleteAll(ctx); err != nil {
		return err
	}
	for _, item := range items {
		if err := s.menu.Create(ctx, item); err != nil {
			return err
		}
	}
	log.Printf("menu uploaded from %s, %d rows in total", path, len(items))
	return nil
}

func backupName(path string) string {
	if i := strings.LastIndex(path, ".csv"); i >= 0 {
		return path[:i] + "_backup.csv"
	}
	return path + "_backup.csv"
}

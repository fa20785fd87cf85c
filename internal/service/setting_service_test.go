package service

import (
	"context"
	"net/http"
	"testing"

	"hrbot/internal/model"

	"gorm.io/gorm"
)

func TestUpdateSettingBoundsIntegerValues(t *testing.T) {
	editor := managerUser(1, model.CapEditSettings)

	intSetting := &model.Setting{ID: 1, Name: "MENU_BUTTONS_PER_PAGE", Value: "4", IntType: true}
	textSetting := &model.Setting{ID: 2, Name: "INITIAL_GREETING", Value: "Hello"}

	settings := &mockSettingRepository{
		getByIDFunc: func(ctx context.Context, id uint) (*model.Setting, error) {
			switch id {
			case intSetting.ID:
				clone := *intSetting
				return &clone, nil
			case textSetting.ID:
				clone := *textSetting
				return &clone, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewSettingService(settings, authzFor(editor))

	cases := []struct {
		name       string
		id         uint
		value      string
		wantStatus int
	}{
		{"valid int", intSetting.ID, "8", 0},
		{"lower bound is exclusive", intSetting.ID, "0", http.StatusUnprocessableEntity},
		{"negative", intSetting.ID, "-1", http.StatusUnprocessableEntity},
		{"upper bound is exclusive", intSetting.ID, "4096", http.StatusUnprocessableEntity},
		{"just below the upper bound", intSetting.ID, "4095", 0},
		{"not a number", intSetting.ID, "four", http.StatusUnprocessableEntity},
		{"free text for a text setting", textSetting.ID, "Good morning!", 0},
		{"numeric text for a text setting", textSetting.ID, "12abc", 0},
		{"unknown setting", 99, "1", http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			updated, err := svc.UpdateSetting(context.Background(), tc.id, UpdateSettingRequest{
				Value: tc.value, UpdatedByID: editor.ID,
			})
			if tc.wantStatus == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if updated.Value != tc.value {
					t.Fatalf("value not applied: %q", updated.Value)
				}
				return
			}
			wantStatus(t, err, tc.wantStatus)
		})
	}
}

func TestUpdateSettingRequiresCapability(t *testing.T) {
	viewer := managerUser(2, model.CapEditMenu)
	svc := NewSettingService(&mockSettingRepository{}, authzFor(viewer))

	_, err := svc.UpdateSetting(context.Background(), 1, UpdateSettingRequest{Value: "5", UpdatedByID: viewer.ID})
	wantStatus(t, err, http.StatusForbidden)
}

package service

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"hrbot/internal/model"
	"hrbot/internal/repository"
	"hrbot/pkg/apierror"
	"hrbot/pkg/csvx"
)

const (
	errSettingNotInt      = "setting value must be an integer"
	errSettingOutOfBounds = "setting value is out of bounds"
)

type UpdateSettingRequest struct {
	Value       string `json:"value" binding:"max=256"`
	UpdatedByID uint   `json:"updated_by_id" binding:"required"`
}

// SettingService wraps setting reads and bounded updates, plus the CSV
// interchange pair.
type SettingService interface {
	GetSetting(ctx context.Context, id uint) (*model.Setting, error)
	ListSettings(ctx context.Context) ([]model.Setting, error)
	UpdateSetting(ctx context.Context, id uint, req UpdateSettingRequest) (*model.Setting, error)
	Download(ctx context.Context, path string) error
	Upload(ctx context.Context, path string, actorID uint) error
}

type settingService struct {
	settings repository.SettingRepository
	authz    *Authorizer
}

// NewSettingService returns a new instance of SettingService.
func NewSettingService(settings repository.SettingRepository, authz *Authorizer) SettingService {
	return &settingService{settings: settings, authz: authz}
}

func (s *settingService) GetSetting(ctx context.Context, id uint) (*model.Setting, error) {
	setting, err := s.settings.GetByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound(errEntryNotExist)
	}
	return setting, nil
}

func (s *settingService) ListSettings(ctx context.Context) ([]model.Setting, error) {
	return s.settings.ListAll(ctx)
}

// checkValue validates a new value against the setting's declared type:
// integer-typed settings must parse and satisfy 0 < v < SettingIntMaxValue.
func checkValue(intType bool, value string) error {
	if !intType {
		return nil
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		return apierror.Unprocessable(errSettingNotInt)
	}
	if v <= 0 || v >= model.SettingIntMaxValue {
		return apierror.Unprocessable(errSettingOutOfBounds)
	}
	return nil
}

func (s *settingService) UpdateSetting(ctx context.Context, id uint, req UpdateSettingRequest) (*model.Setting, error) {
	if _, err := s.authz.RequireCapability(ctx, req.UpdatedByID, model.CapEditSettings); err != nil {
		return nil, err
	}

	setting, err := s.settings.GetByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound(errEntryNotExist)
	}
	if err := checkValue(setting.IntType, req.Value); err != nil {
		return nil, err
	}

	setting.Value = req.Value
	if err := s.settings.Update(ctx, setting); err != nil {
		return nil, err
	}
	return setting, nil
}

// Download exports the settings table to a semicolon-delimited CSV file.
func (s *settingService) Download(ctx context.Context, path string) error {
	settings, err := s.settings.ListAll(ctx)
	if err != nil {
		return err
	}
	if len(settings) == 0 {
		log.Printf("settings download to %s skipped: table is empty", path)
		return nil
	}

	rows := make([][]string, 0, len(settings))
	for _, setting := range settings {
		rows = append(rows, []string{
			setting.Name,
			setting.Value,
			strconv.FormatBool(setting.IntType),
			setting.Description,
		})
	}
	header := []string{"name", "value", "int_type", "description"}
	if err := csvx.WriteFile(path, header, rows); err != nil {
		return err
	}
	log.Printf("settings downloaded to %s, %d rows", path, len(rows))
	return nil
}

// Upload replaces the settings table with the file contents, backing up the
// current rows first. Best-effort, not atomic; see MenuService.Upload.
func (s *settingService) Upload(ctx context.Context, path string, actorID uint) error {
	if _, err := s.authz.RequireCapability(ctx, actorID, model.CapEditSettings); err != nil {
		return err
	}

	rows, err := csvx.ReadFile(path)
	if err != nil {
		return apierror.Unprocessable(fmt.Sprintf("failed to read %s: %v", path, err))
	}

	settings := make([]*model.Setting, 0, len(rows))
	for i, row := range rows {
		if row["name"] == "" {
			return apierror.Unprocessable(fmt.Sprintf("row %d: name is required", i+1))
		}
		intType, err := strconv.ParseBool(row["int_type"])
		if err != nil {
			return apierror.Unprocessable(fmt.Sprintf("row %d: invalid int_type %q", i+1, row["int_type"]))
		}
		if err := checkValue(intType, row["value"]); err != nil {
			return apierror.Unprocessable(fmt.Sprintf("row %d: %v", i+1, err))
		}
		settings = append(settings, &model.Setting{
			Name:        row["name"],
			Value:       row["value"],
			IntType:     intType,
			Description: row["description"],
		})
	}

	backupPath := backupName(path)
	if err := s.Download(ctx, backupPath); err != nil {
		log.Printf("settings upload aborted, backup failed: %v", err)
		return err
	}
	log.Printf("settings backed up to %s", backupPath)

	if err := s.settings.DeleteAll(ctx); err != nil {
		return err
	}
	for _, setting := range settings {
		if err := s.settings.Create(ctx, setting); err != nil {
			return err
		}
	}
	log.Printf("settings uploaded from %s, %d rows in total", path, len(settings))
	return nil
}

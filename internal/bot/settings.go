package bot

import (
	"context"
	"log"
	"strconv"
	"sync/atomic"
	"time"

	"hrbot/internal/apiclient"
	"hrbot/internal/model"
)

// Setting names the bot reads from the backend.
const (
	SettingInitialGreeting         = "INITIAL_GREETING"
	SettingMessageToReplaceAnother = "MESSAGE_TO_REPLACE_ANOTHER"
	SettingErrorUserNotFound       = "ERROR_USER_NOT_FOUND"
	SettingInvitationToMenu        = "INVITATION_TO_EXPLORE_THE_MENU"
	SettingInvitationToMessage     = "INVITATION_TO_SEND_MESSAGE"
	SettingSuccessMessageSent      = "SUCCESS_MESSAGE_SENT"
	SettingErrorMessageTooLong     = "ERROR_MESSAGE_TOO_LONG"
	SettingErrorMessageNotExpected = "ERROR_MESSAGE_NOT_EXPECTED"
	SettingErrorMessageNotSent     = "ERROR_MESSAGE_NOT_SENT"
	SettingOperationCancelled      = "OPERATION_CANCELLED"
	SettingHelpText                = "HELP_BUTTON_TEXT"
	SettingInlineButtonMenu        = "INLINE_BUTTON_TEXT_MENU"
	SettingInlineButtonMessage     = "INLINE_BUTTON_TEXT_MESSAGE"
	SettingMenuButtonsPerRow       = "MENU_BUTTONS_PER_INLINE_ROW"
	SettingMenuButtonsPerPage      = "MENU_BUTTONS_PER_PAGE"
)

const SettingsRefreshInterval = 10 * time.Second

// ErrConnectionText is the only phrase the bot can show without a settings
// snapshot, so it is not itself a setting.
const ErrConnectionText = "Connection error, please try again later"

// Settings is a snapshot of the bot texts and limits managed in the admin
// panel.
type Settings struct {
	InitialGreeting         string
	MessageToReplaceAnother string
	ErrorUserNotFound       string
	InvitationToMenu        string
	InvitationToMessage     string
	SuccessMessageSent      string
	ErrorMessageTooLong     string
	ErrorMessageNotExpected string
	ErrorMessageNotSent     string
	OperationCancelled      string
	HelpText                string
	InlineButtonMenu        string
	InlineButtonMessage     string

	MenuButtonsPerRow  int
	MenuButtonsPerPage int
}

// newSettings maps the backend setting rows onto a snapshot. Missing or
// unparseable numeric values fall back to usable defaults.
func newSettings(rows []model.Setting) *Settings {
	byName := make(map[string]string, len(rows))
	for _, row := range rows {
		byName[row.Name] = row.Value
	}

	intValue := func(name string, fallback int) int {
		v, err := strconv.Atoi(byName[name])
		if err != nil || v < 1 {
			return fallback
		}
		return v
	}

	return &Settings{
		InitialGreeting:         byName[SettingInitialGreeting],
		MessageToReplaceAnother: byName[SettingMessageToReplaceAnother],
		ErrorUserNotFound:       byName[SettingErrorUserNotFound],
		InvitationToMenu:        byName[SettingInvitationToMenu],
		InvitationToMessage:     byName[SettingInvitationToMessage],
		SuccessMessageSent:      byName[SettingSuccessMessageSent],
		ErrorMessageTooLong:     byName[SettingErrorMessageTooLong],
		ErrorMessageNotExpected: byName[SettingErrorMessageNotExpected],
		ErrorMessageNotSent:     byName[SettingErrorMessageNotSent],
		OperationCancelled:      byName[SettingOperationCancelled],
		HelpText:                byName[SettingHelpText],
		InlineButtonMenu:        byName[SettingInlineButtonMenu],
		InlineButtonMessage:     byName[SettingInlineButtonMessage],
		MenuButtonsPerRow:       intValue(SettingMenuButtonsPerRow, 2),
		MenuButtonsPerPage:      intValue(SettingMenuButtonsPerPage, 4),
	}
}

// SettingsStore holds the current snapshot and refreshes it from the
// backend in the background. Current returns nil until the first
// successful load.
type SettingsStore struct {
	client  *apiclient.Client
	current atomic.Pointer[Settings]
}

func NewSettingsStore(client *apiclient.Client) *SettingsStore {
	return &SettingsStore{client: client}
}

func (s *SettingsStore) Current() *Settings {
	return s.current.Load()
}

// Run refreshes the snapshot on a fixed interval until ctx is done.
// Failed refreshes keep the previous snapshot.
func (s *SettingsStore) Run(ctx context.Context) {
	s.refresh()

	ticker := time.NewTicker(SettingsRefreshInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.refresh()
		}
	}
}

func (s *SettingsStore) refresh() {
	rows, err := s.client.ListSettings()
	if err != nil {
		log.Printf("settings refresh failed: %v", err)
		return
	}
	s.current.Store(newSettings(rows))
}

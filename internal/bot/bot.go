// Package bot implements the Telegram front end. It talks to the backend
// REST API only, keeps no state of its own beyond the per-chat message
// wait flag, and renders texts from the settings snapshot.
package bot

import (
	"context"
	"errors"
	"log"

	"hrbot/internal/apiclient"
	"hrbot/internal/model"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const MessageMaxLength = 2048

var botCommands = []tgbotapi.BotCommand{
	{Command: "start", Description: "Start over"},
	{Command: "menu", Description: "Browse the FAQ menu"},
	{Command: "message", Description: "Send a message to the managers"},
	{Command: "help", Description: "Help"},
}

type Bot struct {
	api      *tgbotapi.BotAPI
	client   *apiclient.Client
	settings *SettingsStore
	states   *chatStates
}

func New(api *tgbotapi.BotAPI, client *apiclient.Client, settings *SettingsStore) *Bot {
	return &Bot{
		api:      api,
		client:   client,
		settings: settings,
		states:   newChatStates(),
	}
}

// Run consumes the given update channel until ctx is done.
func (b *Bot) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	if _, err := b.api.Request(tgbotapi.NewSetMyCommands(botCommands...)); err != nil {
		log.Printf("set commands failed: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.handleUpdate(update)
		}
	}
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	var (
		from *tgbotapi.User
		chat *tgbotapi.Chat
	)
	switch {
	case update.Message != nil:
		from, chat = update.Message.From, update.Message.Chat
	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil:
		from, chat = update.CallbackQuery.From, update.CallbackQuery.Message.Chat
	default:
		return
	}
	if from == nil || chat == nil {
		return
	}

	bs := b.settings.Current()
	if bs == nil {
		b.send(chat.ID, ErrConnectionText)
		return
	}

	if !b.checkEmployee(chat.ID, from, bs) {
		return
	}

	if update.Message != nil {
		b.handleMessage(update.Message, bs)
	} else {
		b.handleCallback(update.CallbackQuery, bs)
	}
}

// checkEmployee registers the chat on first contact and blocks banned
// employees. Returns false when the update must not be handled further.
func (b *Bot) checkEmployee(chatID int64, from *tgbotapi.User, bs *Settings) bool {
	name := from.FirstName
	if from.LastName != "" {
		name += " " + from.LastName
	}

	_, err := b.client.GetOrCreateEmployee(chatID, name)
	if err == nil {
		return true
	}
	if errors.Is(err, apiclient.ErrUnreachable) {
		b.send(chatID, ErrConnectionText)
	} else {
		b.send(chatID, bs.ErrorUserNotFound)
	}
	return false
}

func (b *Bot) handleMessage(message *tgbotapi.Message, bs *Settings) {
	if message.IsCommand() {
		// A command always cancels a pending message wait.
		b.states.setAwaiting(message.Chat.ID, false)

		switch message.Command() {
		case "start":
			b.handleStart(message.Chat.ID, bs)
		case "menu":
			b.sendMenuPage(message.Chat.ID, 1, bs)
		case "message":
			b.handleMessageCommand(message.Chat.ID, bs)
		case "help":
			b.send(message.Chat.ID, bs.HelpText)
		}
		return
	}

	b.handleIncomingText(message, bs)
}

func (b *Bot) handleStart(chatID int64, bs *Settings) {
	msg := tgbotapi.NewMessage(chatID, bs.InitialGreeting)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(bs.InlineButtonMenu, callbackData{Action: actionMenu}.pack()),
			tgbotapi.NewInlineKeyboardButtonData(bs.InlineButtonMessage, callbackData{Action: actionMessage}.pack()),
		),
	)
	b.sendMsg(msg)
}

func (b *Bot) handleMessageCommand(chatID int64, bs *Settings) {
	b.states.setAwaiting(chatID, true)
	b.send(chatID, bs.InvitationToMessage)
}

// handleIncomingText forwards free text to the backend when the chat is in
// the message wait state.
func (b *Bot) handleIncomingText(message *tgbotapi.Message, bs *Settings) {
	chatID := message.Chat.ID
	if !b.states.isAwaiting(chatID) {
		b.send(chatID, bs.ErrorMessageNotExpected)
		return
	}

	if len([]rune(message.Text)) > MessageMaxLength {
		b.send(chatID, bs.ErrorMessageTooLong)
		return
	}

	if _, err := b.client.SendEmployeeMessage(chatID, message.Text); err != nil {
		b.send(chatID, bs.ErrorMessageNotSent)
		return
	}
	b.states.setAwaiting(chatID, false)
	b.send(chatID, bs.SuccessMessageSent)
}

func (b *Bot) handleCallback(callback *tgbotapi.CallbackQuery, bs *Settings) {
	chatID := callback.Message.Chat.ID
	data, err := parseCallback(callback.Data)
	if err != nil {
		log.Printf("callback ignored: %v", err)
		return
	}

	// Strip the pressed keyboard so a stale button cannot be pressed twice.
	b.request(tgbotapi.NewEditMessageReplyMarkup(
		chatID, callback.Message.MessageID,
		tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}},
	))

	switch data.Action {
	case actionMenu:
		b.request(tgbotapi.NewEditMessageText(chatID, callback.Message.MessageID, "👍"))
		if data.ItemID != 0 {
			b.sendMenuItem(chatID, data.ItemID, bs)
		} else {
			page := data.Page
			if page == 0 {
				page = 1
			}
			b.sendMenuPage(chatID, page, bs)
		}
	case actionMessage:
		b.request(tgbotapi.NewEditMessageText(chatID, callback.Message.MessageID, bs.MessageToReplaceAnother))
		b.handleMessageCommand(chatID, bs)
	}

	// Telegram keeps the loading spinner until the callback is answered.
	b.request(tgbotapi.NewCallback(callback.ID, ""))
}

func (b *Bot) sendMenuItem(chatID int64, itemID uint, bs *Settings) {
	item, err := b.client.GetMenuItem(itemID)
	if err != nil {
		b.send(chatID, ErrConnectionText)
		return
	}
	b.send(chatID, item.Answer)
}

func (b *Bot) sendMenuPage(chatID int64, page int, bs *Settings) {
	menuPage, err := b.client.GetMenuPage(page, bs.MenuButtonsPerPage)
	if err != nil {
		b.send(chatID, ErrConnectionText)
		return
	}

	keyboard := menuKeyboard(menuPage.Items, menuPage.Page, menuPage.Pages, bs.MenuButtonsPerRow)
	if len(keyboard) == 0 {
		return
	}

	msg := tgbotapi.NewMessage(chatID, bs.InvitationToMenu)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(keyboard...)
	b.sendMsg(msg)
}

// menuKeyboard lays the menu items out in rows of perRow buttons, with a
// navigation row appended when there is more than one page.
func menuKeyboard(items []model.MenuItem, page, pages, perRow int) [][]tgbotapi.InlineKeyboardButton {
	var keyboard [][]tgbotapi.InlineKeyboardButton
	for i, item := range items {
		if i%perRow == 0 {
			keyboard = append(keyboard, nil)
		}
		button := tgbotapi.NewInlineKeyboardButtonData(
			item.ButtonText,
			callbackData{Action: actionMenu, ItemID: item.ID}.pack(),
		)
		keyboard[len(keyboard)-1] = append(keyboard[len(keyboard)-1], button)
	}

	if pages > 1 {
		var nav []tgbotapi.InlineKeyboardButton
		if page > 1 {
			nav = append(nav, tgbotapi.NewInlineKeyboardButtonData(
				"⬅️", callbackData{Action: actionMenu, Page: page - 1}.pack()))
		}
		if page < pages {
			nav = append(nav, tgbotapi.NewInlineKeyboardButtonData(
				"➡️", callbackData{Action: actionMenu, Page: page + 1}.pack()))
		}
		keyboard = append(keyboard, nav)
	}
	return keyboard
}

func (b *Bot) send(chatID int64, text string) {
	if text == "" {
		return
	}
	b.sendMsg(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) sendMsg(msg tgbotapi.MessageConfig) {
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("send to chat %d failed: %v", msg.ChatID, err)
	}
}

func (b *Bot) request(c tgbotapi.Chattable) {
	if _, err := b.api.Request(c); err != nil {
		log.Printf("telegram request failed: %v", err)
	}
}

package service

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"
)

// ManagerReplyPrefix marks backend-originated replies in the employee chat.
const ManagerReplyPrefix = "Reply from the manager:\n"

// TelegramNotifier delivers manager replies to employees through the
// Telegram HTTP API sendMessage method.
type TelegramNotifier struct {
	apiURL string
	token  string
	client *http.Client
}

// NewTelegramNotifier returns a notifier for the given API base URL and bot
// token.
func NewTelegramNotifier(apiURL, token string) *TelegramNotifier {
	return &TelegramNotifier{
		apiURL: apiURL,
		token:  token,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// NotifyEmployee sends the reply text to the employee's chat. Failures are
// logged only: the message is already stored and the employee can still read
// it through the bot.
func (n *TelegramNotifier) NotifyEmployee(chatID int64, text string) {
	endpoint := fmt.Sprintf("%s%s/sendMessage?chat_id=%d&text=%s",
		n.apiURL, n.token, chatID, url.QueryEscape(ManagerReplyPrefix+text))

	resp, err := n.client.Get(endpoint)
	if err != nil {
		log.Printf("telegram delivery to chat %d failed: %v", chatID, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("telegram delivery to chat %d failed: status %d", chatID, resp.StatusCode)
	}
}

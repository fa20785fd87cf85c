package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Load reads configs/.env when present. Missing files are fine: everything
// can come from real environment variables.
func Load() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}
}

// getenv returns the environment value or a fallback default.
func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// API holds the backend service configuration.
type API struct {
	Host           string
	Port           string
	DatabaseDSN    string
	AllowedOrigins []string
	TelegramAPIURL string
	TelegramToken  string
}

// LoadAPI assembles backend configuration from the environment. An empty DSN
// means the sqlite fallback.
func LoadAPI() API {
	dsn := ""
	if host := os.Getenv("HRBOT_POSTGRES_HOST"); host != "" {
		dsn = "postgres://" +
			getenv("HRBOT_POSTGRES_USER", "postgres") + ":" +
			getenv("HRBOT_POSTGRES_PASSWORD", "postgres") + "@" +
			host + ":" +
			getenv("HRBOT_POSTGRES_PORT", "5432") + "/" +
			getenv("HRBOT_POSTGRES_DB", "hrbot") +
			"?sslmode=" + getenv("HRBOT_POSTGRES_SSLMODE", "disable")
	}

	return API{
		Host:           getenv("HRBOT_BACKEND_HOST", "127.0.0.1"),
		Port:           getenv("HRBOT_BACKEND_PORT", "8000"),
		DatabaseDSN:    dsn,
		AllowedOrigins: []string{getenv("HRBOT_ADMIN_ORIGIN", "http://localhost:8080")},
		TelegramAPIURL: getenv("HRBOT_TELEGRAM_API_URL", "https://api.telegram.org/bot"),
		TelegramToken:  os.Getenv("HRBOT_TELEGRAM_BOT_TOKEN"),
	}
}

// Bot holds the Telegram bot configuration.
type Bot struct {
	Token       string
	APIBaseURL  string
	UseWebhook  bool
	WebhookURL  string
	WebhookPort string
}

// LoadBot assembles bot configuration from the environment. Webhook mode is
// configured but disabled unless explicitly switched on.
func LoadBot() Bot {
	apiHost := getenv("HRBOT_API_HOST", "http://127.0.0.1")
	apiPort := getenv("HRBOT_API_PORT", "8000")

	return Bot{
		Token:       os.Getenv("HRBOT_TELEGRAM_BOT_TOKEN"),
		APIBaseURL:  apiHost + ":" + apiPort + "/bot/api",
		UseWebhook:  getenv("HRBOT_USE_WEBHOOK", "false") == "true",
		WebhookURL:  os.Getenv("HRBOT_BASE_WEBHOOK_URL"),
		WebhookPort: getenv("HRBOT_WEB_SERVER_PORT", "8081"),
	}
}

// Admin holds the admin web panel configuration.
type Admin struct {
	Host       string
	Port       string
	APIBaseURL string
}

// LoadAdmin assembles admin panel configuration from the environment.
func LoadAdmin() Admin {
	apiHost := getenv("HRBOT_API_HOST", "http://127.0.0.1")
	apiPort := getenv("HRBOT_API_PORT", "8000")

	return Admin{
		Host:       getenv("HRBOT_ADMIN_HOST", "127.0.0.1"),
		Port:       getenv("HRBOT_ADMIN_PORT", "8080"),
		APIBaseURL: apiHost + ":" + apiPort + "/bot/api",
	}
}

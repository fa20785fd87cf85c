package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"hrbot/internal/apiclient"
	"hrbot/internal/bot"
	"hrbot/internal/config"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func main() {
	config.Load()
	cfg := config.LoadBot()
	if cfg.Token == "" {
		log.Fatal("HRBOT_TELEGRAM_BOT_TOKEN is not set")
	}

	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		log.Fatalf("telegram authorization failed: %v", err)
	}
	log.Printf("Authorized on account %s", api.Self.UserName)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := apiclient.New(cfg.APIBaseURL)
	settings := bot.NewSettingsStore(client)
	go settings.Run(ctx)

	var updates tgbotapi.UpdatesChannel
	if cfg.UseWebhook {
		updates, err = listenWebhook(api, cfg)
		if err != nil {
			log.Fatalf("webhook setup failed: %v", err)
		}
		log.Printf("Running in webhook mode on %s", cfg.WebhookURL)
	} else {
		if _, err := api.Request(tgbotapi.DeleteWebhookConfig{DropPendingUpdates: true}); err != nil {
			log.Printf("delete webhook failed: %v", err)
		}
		u := tgbotapi.NewUpdate(0)
		u.Timeout = 60
		u.AllowedUpdates = []string{tgbotapi.UpdateTypeMessage, tgbotapi.UpdateTypeCallbackQuery}
		updates = api.GetUpdatesChan(u)
		defer api.StopReceivingUpdates()
		log.Println("Running in polling mode")
	}

	bot.New(api, client, settings).Run(ctx, updates)
}

func listenWebhook(api *tgbotapi.BotAPI, cfg config.Bot) (tgbotapi.UpdatesChannel, error) {
	wh, err := tgbotapi.NewWebhook(cfg.WebhookURL + "/webhook")
	if err != nil {
		return nil, err
	}
	if _, err := api.Request(wh); err != nil {
		return nil, err
	}

	updates := api.ListenForWebhook("/webhook")
	go func() {
		if err := http.ListenAndServe(":"+cfg.WebhookPort, nil); err != nil {
			log.Fatalf("webhook server failed: %v", err)
		}
	}()
	return updates, nil
}

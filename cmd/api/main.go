package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	_ "hrbot/api/swagger" // swagger docs
	"hrbot/internal/config"
	"hrbot/internal/database"
	"hrbot/internal/handler"
	"hrbot/internal/middleware"
	"hrbot/internal/repository"
	"hrbot/internal/service"
	"hrbot/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           HR Helpdesk API
// @version         1.0
// @description     Backend for the HR helpdesk bot and admin panel.
// @BasePath        /bot/api
func main() {
	config.Load()
	cfg := config.LoadAPI()

	db, err := database.NewConnection(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Connected to the database successfully.")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Set up WebSocket hub for admin chat notifications
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Set up dependencies (Repository -> Service -> Handler)
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	authz := service.NewAuthorizer(userRepo)
	authService := service.NewAuthService(userRepo, sessionRepo)
	userService := service.NewUserService(userRepo, roleRepo, authz)
	menuService := service.NewMenuService(menuRepo, authz)
	settingService := service.NewSettingService(settingRepo, authz)

	var notifier service.ReplyNotifier
	if cfg.TelegramToken != "" {
		notifier = service.NewTelegramNotifier(cfg.TelegramAPIURL, cfg.TelegramToken)
	}
	messageService := service.NewMessageService(employeeRepo, messageRepo, authz, notifier, wsHub)

	// Session cleanup sweep runs for the life of the process.
	go authService.RunCleanupLoop(ctx)

	// Set up Gin router
	router := gin.Default()
	router.Use(middleware.RequestID())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, authService)
	})

	// API routing under the fixed prefix
	api := router.Group("/bot/api")
	handler.NewAuthHandler(authService).RegisterRoutes(api)
	handler.NewUserHandler(userService).RegisterRoutes(api)
	handler.NewSettingHandler(settingService).RegisterRoutes(api)
	handler.NewMenuHandler(menuService).RegisterRoutes(api)
	handler.NewMessageHandler(messageService).RegisterRoutes(api)

	addr := cfg.Host + ":" + cfg.Port
	log.Printf("Server listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// Command createadmin bootstraps the first account: an "admin" role with
// every capability and a user attached to it. It writes to the database
// directly since no actor exists yet to authorize the creation.
package main

import (
	"context"
	"flag"
	"log"

	"hrbot/internal/config"
	"hrbot/internal/database"
	"hrbot/internal/model"
	"hrbot/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	username := flag.String("username", "", "admin username")
	password := flag.String("password", "", "admin password")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal("both -username and -password are required")
	}

	config.Load()
	cfg := config.LoadAPI()

	db, err := database.NewConnection(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	ctx := context.Background()
	roleRepo := repository.NewRoleRepository(db)
	userRepo := repository.NewUserRepository(db)

	role := &model.Role{
		Name:            "admin",
		CanEditSettings: true,
		CanEditUsers:    true,
		CanSendMessages: true,
		CanEditMenu:     true,
	}
	if err := roleRepo.Create(ctx, role); err != nil {
		log.Fatalf("role creation failed: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("password hashing failed: %v", err)
	}
	user := &model.User{
		Username: *username,
		Password: string(hash),
		RoleID:   role.ID,
		IsActive: true,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		log.Fatalf("admin creation failed: %v", err)
	}

	log.Printf("New admin was created, id = %d", user.ID)
}

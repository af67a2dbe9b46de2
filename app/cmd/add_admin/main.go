package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/Chirag-c499/result-menegment-system/app/config"
	"github.com/Chirag-c499/result-menegment-system/app/database"
	"github.com/Chirag-c499/result-menegment-system/app/models"
	"github.com/Chirag-c499/result-menegment-system/app/routes/auth"
)

// Seeds an admin account. Admins can also register through the signup
// form, but a fresh deployment needs one before anyone can log in as
// admin to add subjects.
func main() {
	name := flag.String("name", "Administrator", "admin display name")
	email := flag.String("email", "", "admin email (required)")
	rollNo := flag.String("roll-no", "ADMIN-1", "admin roll number")
	password := flag.String("password", "", "admin password (required)")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	cfg := config.Load()
	store, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}
	defer store.Close()

	if err := database.RunMigrations(store.DB()); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	hashedPassword, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password: ", err)
	}

	user := &models.User{
		Name:     *name,
		Email:    *email,
		RollNo:   *rollNo,
		Password: hashedPassword,
		UserType: models.UserTypeAdmin,
	}

	if err := store.CreateUser(context.Background(), user); err != nil {
		log.Fatal("Failed to create admin: ", err)
	}

	fmt.Printf("Admin created: %s (%s)\n", user.Name, user.Email)
}

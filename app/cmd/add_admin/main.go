package main

import (
	"flag"
	"fmt"
	"os"

	"summit-schools/app/config"
	"summit-schools/app/database"
	"summit-schools/app/models"
	"summit-schools/app/routes/auth"
)

func main() {
	email := flag.String("email", "", "admin email address")
	password := flag.String("password", "", "admin password")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Println("Usage: add_admin -email admin@example.com -password secret")
		os.Exit(1)
	}

	config.Load()
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		os.Exit(1)
	}

	user := &models.User{
		Email:    *email,
		Password: hashed,
		Role:     models.RoleAdmin,
	}

	if err := database.CreateUser(db, user); err != nil {
		if database.IsUniqueViolation(err) {
			fmt.Printf("User already exists with email %s\n", *email)
		} else {
			fmt.Printf("Error creating user: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("Admin user created successfully: %s (%s)\n", user.Email, user.ID)
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/studypilot/server/internal/auth"
)

// creates a test user (if missing) and prints a bearer token for it
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	dbConnString := os.Getenv("DATABASE_URL")
	if dbConnString == "" {
		log.Fatal("DATABASE_URL not set")
	}

	dbPool, err := pgxpool.New(context.Background(), dbConnString)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	ctx := context.Background()

	testEmail := "test@studypilot.dev"
	var userID string

	err = dbPool.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", testEmail).Scan(&userID)
	if err != nil {
		err = dbPool.QueryRow(ctx, `
			INSERT INTO users (email, name, referral_code, email_verified)
			VALUES ($1, $2, $3, true)
			RETURNING id
		`, testEmail, "Test User", "testcode").Scan(&userID)

		if err != nil {
			log.Fatalf("Failed to create test user: %v", err)
		}
		fmt.Printf("Created test user: %s (ID: %s)\n", testEmail, userID)
	} else {
		fmt.Printf("Using existing test user (ID: %s)\n", userID)
	}

	verifier := auth.NewVerifier(os.Getenv("JWT_SECRET"), false)

	token, err := verifier.GenerateToken(userID, testEmail)
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}

	fmt.Printf("\nTest token:\n%s\n\n", token)
	fmt.Printf("Export it for the review client:\nexport STUDYPILOT_TOKEN=\"%s\"\n", token)
}

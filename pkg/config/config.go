package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                    string
	Env                     string
	FirebaseCredentialsPath string
	FirebaseProjectID       string
	ImgbbAPIKey             string
	ImgbbEndpoint           string
	AdminEmails             []string
	PostgresConnStr         string
}

func Load() *Config {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	return &Config{
		Port:                    getEnv("PORT", "8080"),
		Env:                     getEnv("ENV", "development"),
		FirebaseCredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", "./firebase_credentials.json"),
		FirebaseProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
		ImgbbAPIKey:             getEnv("IMGBB_API_KEY", ""),
		ImgbbEndpoint:           getEnv("IMGBB_ENDPOINT", "https://api.imgbb.com/1/upload"),
		AdminEmails:             splitEmails(getEnv("ADMIN_EMAILS", "")),
		PostgresConnStr:         getEnv("POSTGRES_CONN_STR", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// splitEmails parses a comma-separated allow-list into normalized addresses
func splitEmails(s string) []string {
	var emails []string
	for _, part := range strings.Split(s, ",") {
		email := strings.ToLower(strings.TrimSpace(part))
		if email != "" {
			emails = append(emails, email)
		}
	}
	return emails
}

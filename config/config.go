package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv pulls in a local .env file when one exists. In deployed
// environments everything comes from the real environment instead.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading configuration from environment")
	}
}

func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

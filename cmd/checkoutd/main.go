package main

import (
	"errors"
	"io/fs"
	"log"

	"CheckoutSDK/config"
	"CheckoutSDK/internal/api"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Load .env: %s", err)
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}
	if err := api.Run(cfg); err != nil {
		log.Fatalf("Checkout service stopped: %s", err)
	}
}

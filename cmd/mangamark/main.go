package main

import (
	"github.com/joho/godotenv"

	"github.com/mangamark/mangamark/cmd/mangamark/cmd"
)

func main() {
	// Optional .env for MANGAMARK_DATA_DIR / MANGAMARK_LOG_LEVEL.
	_ = godotenv.Load()

	cmd.Execute()
}

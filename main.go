package main

import (
	"github.com/joho/godotenv"

	"github.com/dylan-dingjan/bebetterbot/bot"
	"github.com/dylan-dingjan/bebetterbot/logger"
)

func main() {
	// Load .env if present (for TOKEN / SIGNING_SECRET / ADMIN_PASSWORD)
	_ = godotenv.Load()

	logger.Init()
	defer logger.Sync()

	bot.Start()
}

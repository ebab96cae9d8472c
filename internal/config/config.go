package config

import (
	"os"
	"strconv"
)

// Config, seluruh konfigurasi proses yang dibaca dari environment.
// Dibaca sekali di main lalu disuntikkan, tidak ada os.Getenv di tempat lain.
type Config struct {
	Port     string
	MongoURI string
	MongoDB  string

	TelegramBotToken string
	TelegramChatID   string

	SMTPHost   string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	AdminEmail string
}

// Load, membaca konfigurasi dari environment dengan default lokal.
func Load() Config {
	return Config{
		Port:     os.Getenv("PORT"),
		MongoURI: getenv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:  getenv("MONGODB_DB", "kograph"),

		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   os.Getenv("TELEGRAM_CHAT_ID"),

		SMTPHost:   getenv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:   getenvInt("SMTP_PORT", 587),
		SMTPUser:   os.Getenv("SMTP_USER"),
		SMTPPass:   os.Getenv("SMTP_PASS"),
		AdminEmail: os.Getenv("ADMIN_EMAIL"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

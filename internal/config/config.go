package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port          string
	BaseURL       string
	AllowedOrigin string
	StorageDir    string

	SMTPHost   string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	EmailFrom  string
	AdminEmail string
}

func Load() Config {
	port := getenv("PORT", "8080")
	return Config{
		Port:          port,
		BaseURL:       getenv("BASE_URL", "http://localhost:"+port),
		AllowedOrigin: getenv("ALLOWED_ORIGIN", "http://localhost:5173"),
		StorageDir:    getenv("STORAGE_DIR", "uploads"),
		SMTPHost:      getenv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:      getenvInt("SMTP_PORT", 587),
		SMTPUser:      os.Getenv("EMAIL_USER"),
		SMTPPass:      os.Getenv("EMAIL_PASSWORD"),
		EmailFrom:     os.Getenv("EMAIL_FROM"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

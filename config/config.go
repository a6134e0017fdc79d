package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DB       DBConfig
	HTTP     HTTPConfig
	Telegram TelegramConfig
	Paths    PathsConfig
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type HTTPConfig struct {
	Addr string
}

type TelegramConfig struct {
	Token       string // bot token for order notifications, optional
	AdminChatID int64  // chat that receives them
}

// PathsConfig holds the base URL paths the dashboard builds its
// per-entity update/delete form actions from.
type PathsConfig struct {
	MenuUpdateBase     string
	CustomerUpdateBase string
	OrderUpdateBase    string
	MenuDeleteBase     string
	CustomerDeleteBase string
	OrderDeleteBase    string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	chatID, _ := strconv.ParseInt(getEnv("TG_ADMIN_CHAT_ID", "0"), 10, 64)

	return &Config{
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     port,
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "cafe"),
		},
		HTTP: HTTPConfig{
			Addr: getEnv("HTTP_ADDR", ":8080"),
		},
		Telegram: TelegramConfig{
			Token:       getEnv("TG_TOKEN", ""),
			AdminChatID: chatID,
		},
		Paths: PathsConfig{
			MenuUpdateBase:     getEnv("MENU_UPDATE_BASE", "/menu"),
			CustomerUpdateBase: getEnv("CUSTOMER_UPDATE_BASE", "/customers"),
			OrderUpdateBase:    getEnv("ORDER_UPDATE_BASE", "/orders"),
			MenuDeleteBase:     getEnv("MENU_DELETE_BASE", "/menu"),
			CustomerDeleteBase: getEnv("CUSTOMER_DELETE_BASE", "/customers"),
			OrderDeleteBase:    getEnv("ORDER_DELETE_BASE", "/orders"),
		},
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type SlackConfig struct {
	BotToken      string
	SigningSecret string
}

// IsConfigured returns true if all required Slack configuration is present
func (c SlackConfig) IsConfigured() bool {
	return c.BotToken != "" &&
		c.SigningSecret != ""
}

type QiitaConfig struct {
	ClientID     string
	ClientSecret string
}

// IsConfigured returns true if all required Qiita configuration is present.
// Token registration and article creation are refused with a local
// diagnostic when it is not.
func (c QiitaConfig) IsConfigured() bool {
	return c.ClientID != "" &&
		c.ClientSecret != ""
}

type AppConfig struct {
	// Core configuration (always required)
	MongoDBURL string
	DBName     string
	Port       string // Optional with default "3000"

	// Integration configurations (grouped)
	SlackConfig SlackConfig
	QiitaConfig QiitaConfig
}

func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️ Could not load .env file, continuing with system env vars")
	}

	// Core required configuration
	mongoDBURL, err := getEnvRequired("MONGODB_URL")
	if err != nil {
		return nil, err
	}

	dbName, err := getEnvRequired("DB_NAME")
	if err != nil {
		return nil, err
	}

	config := &AppConfig{
		// Core configuration
		MongoDBURL: mongoDBURL,
		DBName:     dbName,
		Port:       getEnvWithDefault("PORT", "3000"),

		// Slack configuration (required)
		SlackConfig: SlackConfig{
			BotToken:      os.Getenv("SLACK_BOT_TOKEN"),
			SigningSecret: os.Getenv("SLACK_SIGNING_SECRET"),
		},

		// Qiita configuration (optional; registration flows refuse to run without it)
		QiitaConfig: QiitaConfig{
			ClientID:     os.Getenv("QIITA_CLIENT_ID"),
			ClientSecret: os.Getenv("QIITA_CLIENT_SECRET"),
		},
	}

	if !config.SlackConfig.IsConfigured() {
		return nil, fmt.Errorf("slack integration is not fully configured (SLACK_BOT_TOKEN, SLACK_SIGNING_SECRET)")
	}
	log.Printf("✅ Slack integration configured")

	if config.QiitaConfig.IsConfigured() {
		log.Printf("✅ Qiita application configured")
	} else {
		log.Printf("⚠️ Qiita application not configured - token registration and article creation will be refused")
	}

	return config, nil
}

func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set", key)
	}
	return value, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

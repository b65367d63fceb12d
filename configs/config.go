package config

import "os"

type Config struct {
	Port         string
	DatabasePath string
	UploadDir    string
	BaseURL      string
}

func LoadConfig() *Config {
	return &Config{
		Port:         getEnv("PORT", "3000"),
		DatabasePath: getEnv("DATABASE_PATH", "glowup.db"),
		UploadDir:    getEnv("UPLOAD_DIR", "uploads"),
		BaseURL:      getEnv("BASE_URL", "http://localhost:3000"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

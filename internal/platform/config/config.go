package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	DatabaseFile   string
	AttachmentsDir string
	FontFile       string
	LogLevel       string
	ExportTitle    string
}

func Load() Config {
	return Config{
		DatabaseFile:   getEnv("MASAR_DB_FILE", "masar.db"),
		AttachmentsDir: getEnv("MASAR_ATTACHMENTS_DIR", "attachments"),
		FontFile:       getEnv("MASAR_FONT_FILE", "Amiri-Regular.ttf"),
		LogLevel:       getEnv("MASAR_LOG_LEVEL", "info"),
		ExportTitle:    getEnv("MASAR_EXPORT_TITLE", "تقرير الموظفين"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseFile) == "" {
		return fmt.Errorf("MASAR_DB_FILE must not be empty")
	}
	if strings.TrimSpace(c.AttachmentsDir) == "" {
		return fmt.Errorf("MASAR_ATTACHMENTS_DIR must not be empty")
	}
	return nil
}

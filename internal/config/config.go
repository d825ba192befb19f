package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime knobs of the reconciler.
type Config struct {
	// Workers caps how many OTA/left-table pairings run concurrently.
	Workers int
	// ForceOCR skips the text pass and recognizes every PDF page.
	ForceOCR bool
	// OCRLanguage is the recognition language passed to the recognizer.
	OCRLanguage string
	// OutputPath is the report workbook destination.
	OutputPath string
	// LogLevel is the zap level name.
	LogLevel string
}

// Load reads configuration from the environment, with a .env file if one
// exists. Every value has a usable default.
func Load() *Config {
	godotenv.Load()

	return &Config{
		Workers:     getEnvAsInt("RECON_WORKERS", 4),
		ForceOCR:    getEnvAsBool("RECON_FORCE_OCR", false),
		OCRLanguage: getEnv("RECON_OCR_LANG", "eng"),
		OutputPath:  getEnv("RECON_OUTPUT", "Reconciliation_Report.xlsx"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

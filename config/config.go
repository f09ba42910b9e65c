package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

var loadOnce sync.Once

func load() {
	loadOnce.Do(func() {
		// .env is optional, real environment variables win
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			fmt.Println("Error loading .env file:", err)
		}
	})
}

// Config returns the value of an environment variable, reading .env on first use.
func Config(key string) string {
	load()
	return os.Getenv(key)
}

func ConfigDefault(key, def string) string {
	if v := strings.TrimSpace(Config(key)); v != "" {
		return v
	}
	return def
}

func ConfigInt(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(Config(key)))
	if err != nil {
		return def
	}
	return v
}

func ConfigFloat(key string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(Config(key)), 64)
	if err != nil {
		return def
	}
	return v
}

func ConfigBool(key string, def bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(Config(key)))
	if err != nil {
		return def
	}
	return v
}

// ReportSchedule returns the cron expression for the daily report mail.
// An expression that the standard five-field parser rejects is an error.
func ReportSchedule() (string, error) {
	expr := ConfigDefault("REPORT_SCHEDULE", "0 6 * * *")
	if _, err := cron.ParseStandard(expr); err != nil {
		return "", fmt.Errorf("invalid REPORT_SCHEDULE %q: %w", expr, err)
	}
	return expr, nil
}

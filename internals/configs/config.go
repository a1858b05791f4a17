package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret string

	// ExamTimezone is the single reference timezone for every wall-clock
	// exam field (date, start, end). The closest-exam math must never
	// fall back to host-local time.
	ExamTimezone *time.Location
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("no .env file found, using system ENV")
		}
	} else {
		log.Println("running in Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	if JWTSecret == "" {
		log.Println("[WARNING] JWT_SECRET is not set")
	}

	tzName := GetEnv("EXAM_TIMEZONE", "Asia/Jakarta")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		log.Fatalf("invalid EXAM_TIMEZONE %q: %v", tzName, err)
	}
	ExamTimezone = loc
	log.Printf("exam timezone: %s", tzName)
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

type Config struct {
	Addr           string
	DBDriver       string // sqlite3 or postgres
	DatabaseURL    string
	AllowedOrigins []string

	// ScopeTakenToUser restricts POST /medications/{user_id}/{med_id}/taken
	// to medications owned by user_id. Off by default.
	ScopeTakenToUser bool
}

// Load reads an optional .env file and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return FromEnv()
}

func FromEnv() Config {
	return Config{
		Addr:             getEnv("ADDR", ":8080"),
		DBDriver:         getEnv("DB_DRIVER", "sqlite3"),
		DatabaseURL:      getEnv("DATABASE_URL", "seniorsched.db"),
		AllowedOrigins:   splitList(getEnv("ALLOWED_ORIGINS", "*")),
		ScopeTakenToUser: getEnvBool("SCOPE_TAKEN_TO_USER", false),
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("Ignoring invalid %s=%q", k, v)
		return def
	}
	return b
}

func splitList(s string) []string {
	return lo.Compact(lo.Map(strings.Split(s, ","), func(item string, _ int) string {
		return strings.TrimSpace(item)
	}))
}

package config

// Environment defaults: tools read SPT_* variables as flag defaults so a
// corpus directory can carry its own settings in a .env file. CLI flags
// always win because they are parsed after the environment is loaded.

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// LoadEnv loads the env file named by SPT_ENV, falling back to ./.env.
// A missing file is not an error; existing process env vars are never
// overwritten (godotenv.Load semantics).
func LoadEnv() {
	if p := strings.TrimSpace(os.Getenv("SPT_ENV")); p != "" {
		_ = godotenv.Load(p)
		return
	}
	_ = godotenv.Load()
}

// envString returns the value of key, or def when unset or blank.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envInt returns the integer value of key, or def when unset or malformed.
func envInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// envFloat returns the float value of key, or def when unset or malformed.
func envFloat(key string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Addr        string        // API bind address, e.g., "127.0.0.1:8080" or ":8080" (Docker)
	LogDir      string        // logs directory
	APIKeys     []string      // accepted API keys; empty means open access (local dev)
	PublicRPM   int           // per-IP rate limit, requests per minute; 0 disables
	PublicBurst int           // per-IP burst
	MaxTimeout  time.Duration // upper bound on a caller-supplied check timeout
}

func FromEnv() Config {
	addr := os.Getenv("API_ADDR")
	if addr == "" {
		addr = "127.0.0.1:8080"
	}

	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	var keys []string
	if v := os.Getenv("API_KEYS"); v != "" {
		for _, k := range strings.Split(v, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keys = append(keys, k)
			}
		}
	}

	rpm := 120
	if v := os.Getenv("PUBLIC_RPM"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			rpm = n
		}
	}

	burst := 30
	if v := os.Getenv("PUBLIC_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			burst = n
		}
	}

	maxTimeout := 60 * time.Second
	if v := os.Getenv("MAX_TIMEOUT_S"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			maxTimeout = time.Duration(n) * time.Second
		}
	}

	return Config{
		Addr:        addr,
		LogDir:      logDir,
		APIKeys:     keys,
		PublicRPM:   rpm,
		PublicBurst: burst,
		MaxTimeout:  maxTimeout,
	}
}

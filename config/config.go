package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all server configuration
type Config struct {
	Port            int    // Twilio webhook server port
	ConsolePort     int    // WebSocket console port (used when ServerType is "both")
	ServerType      string // "webhook", "console", or "both"
	RedisURL        string
	RedisPassword   string
	MaxSessions     int
	SessionTimeout  time.Duration
	GeminiAPIKey    string
	AllowedOrigins  []string
	DefaultLanguage string
	WebhookURL      string        // order confirmation endpoint; empty means log-only dispatch
	WebhookTimeout  time.Duration // bound on the confirmation dispatch
}

// Load reads configuration from environment variables with defaults
func Load() (*Config, error) {
	// Load .env file if it exists (doesn't error if missing)
	_ = godotenv.Load()

	cfg := &Config{
		Port:            8080,
		ConsolePort:     8081,
		ServerType:      "webhook",
		RedisURL:        "localhost:6379",
		RedisPassword:   "",
		MaxSessions:     100,
		SessionTimeout:  30 * time.Minute,
		AllowedOrigins:  []string{"*"},
		DefaultLanguage: "en-US",
		WebhookTimeout:  10 * time.Second,
	}

	// Required: GEMINI_API_KEY
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	// Optional: PORT
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %w", err)
		}
		cfg.Port = p
	}

	// Optional: CONSOLE_PORT (used when SERVER_TYPE is "both")
	if port := os.Getenv("CONSOLE_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid CONSOLE_PORT: %w", err)
		}
		cfg.ConsolePort = p
	}

	// Optional: SERVER_TYPE ("webhook", "console", or "both")
	if serverType := os.Getenv("SERVER_TYPE"); serverType != "" {
		switch serverType {
		case "webhook", "console", "both":
			cfg.ServerType = serverType
		default:
			return nil, fmt.Errorf("invalid SERVER_TYPE: must be 'webhook', 'console', or 'both'")
		}
	}

	// Optional: REDIS_URL
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		cfg.RedisURL = redisURL
	}

	// Optional: REDIS_PASSWORD
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		cfg.RedisPassword = redisPassword
	}

	// Optional: MAX_SESSIONS
	if maxSessions := os.Getenv("MAX_SESSIONS"); maxSessions != "" {
		m, err := strconv.Atoi(maxSessions)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_SESSIONS: %w", err)
		}
		cfg.MaxSessions = m
	}

	// Optional: SESSION_TIMEOUT (in minutes)
	if timeout := os.Getenv("SESSION_TIMEOUT"); timeout != "" {
		t, err := strconv.Atoi(timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_TIMEOUT: %w", err)
		}
		cfg.SessionTimeout = time.Duration(t) * time.Minute
	}

	// Optional: ALLOWED_ORIGINS (comma-separated)
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	}

	// Optional: DEFAULT_LANGUAGE (BCP-47 tag, e.g. "en-US")
	if lang := os.Getenv("DEFAULT_LANGUAGE"); lang != "" {
		cfg.DefaultLanguage = lang
	}

	// Optional: ORDER_WEBHOOK_URL (order confirmations are logged when unset)
	if url := os.Getenv("ORDER_WEBHOOK_URL"); url != "" {
		cfg.WebhookURL = url
	}

	// Optional: ORDER_WEBHOOK_TIMEOUT (in seconds)
	if timeout := os.Getenv("ORDER_WEBHOOK_TIMEOUT"); timeout != "" {
		t, err := strconv.Atoi(timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid ORDER_WEBHOOK_TIMEOUT: %w", err)
		}
		cfg.WebhookTimeout = time.Duration(t) * time.Second
	}

	return cfg, nil
}

package config

import (
	"bufio"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Credentials identifies one test account.
type Credentials struct {
	Role     string
	Email    string
	Password string
}

// TestConfig holds all configuration for the E2E harness
type TestConfig struct {
	BaseURL      string
	APIURL       string
	Timeout      time.Duration // default per-action timeout
	ProbeTimeout time.Duration // optional-element visibility probe window
	LoginTimeout time.Duration // sign-in navigation budget
	Headless     bool
	SlowMo       int
	Screenshots  bool
	Videos       bool
	LogLevel     string

	Agent   Credentials
	Manager Credentials
}

var loadOnce sync.Once

// loadDotEnv loads simple KEY=VALUE lines from .env if present.
// Existing environment variables take precedence and are not overwritten.
func loadDotEnv() {
	f, err := os.Open(".env")
	if err != nil {
		return
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		i := strings.Index(line, "=")
		if i <= 0 {
			continue
		}
		key := strings.TrimSpace(line[:i])
		val := strings.TrimSpace(line[i+1:])
		if key == "" || val == "" {
			continue
		}
		if (strings.HasPrefix(val, `"`) && strings.HasSuffix(val, `"`)) ||
			(strings.HasPrefix(val, "'") && strings.HasSuffix(val, "'")) {
			val = val[1 : len(val)-1]
		}
		if os.Getenv(key) == "" {
			_ = os.Setenv(key, val)
		}
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetConfig returns the harness configuration from environment variables,
// falling back to the documented defaults.
func GetConfig() *TestConfig {
	loadOnce.Do(loadDotEnv)

	baseURL := envOr("BASE_URL", "http://localhost:3000")
	apiURL := envOr("API_URL", baseURL)

	slowMo := 0
	if v := os.Getenv("SLOW_MO"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			slowMo = n
		} else {
			slowMo = 100
		}
	}

	return &TestConfig{
		BaseURL:      strings.TrimRight(baseURL, "/"),
		APIURL:       strings.TrimRight(apiURL, "/"),
		Timeout:      5 * time.Second,
		ProbeTimeout: 4 * time.Second,
		LoginTimeout: 10 * time.Second,
		Headless:     os.Getenv("HEADLESS") != "false",
		SlowMo:       slowMo,
		Screenshots:  os.Getenv("SCREENSHOTS") != "false",
		Videos:       os.Getenv("VIDEOS") == "true",
		LogLevel:     envOr("LOG_LEVEL", "info"),
		Agent: Credentials{
			Role:     "agent",
			Email:    envOr("TEST_AGENT_EMAIL", "test@example.com"),
			Password: envOr("TEST_AGENT_PASSWORD", "password123"),
		},
		Manager: Credentials{
			Role:     "manager",
			Email:    envOr("TEST_MANAGER_EMAIL", "manager@example.com"),
			Password: envOr("TEST_MANAGER_PASSWORD", "password123"),
		},
	}
}

// ForRole returns the credentials configured for the given role.
// Unknown roles fall back to the agent account.
func (c *TestConfig) ForRole(role string) Credentials {
	if strings.EqualFold(role, "manager") {
		return c.Manager
	}
	return c.Agent
}

package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the central typed configuration struct shared by both programs.
type Config struct {
	App       AppConfig
	DB        DBConfig
	Log       LogConfig
	Resources ResourceConfig
}

type AppConfig struct {
	Name     string
	Env      string // local | production | testing
	Debug    bool
	Port     string
	Profiles []string // active profiles, APP_PROFILES=jc,other

	// ShutdownSeconds bounds graceful HTTP shutdown.
	ShutdownSeconds int
}

type DBConfig struct {
	Driver string
	Path   string
}

type LogConfig struct {
	Level string // debug | info | warn | error
}

// ResourceConfig overrides the bean descriptors embedded in the binary.
// Empty paths mean "use the embedded resource".
type ResourceConfig struct {
	PropertiesPath string
	XMLPath        string
}

// Load reads .env (if present) and populates a Config from environment variables.
// Call once at bootstrap: cfg := config.Load()
func Load(envFiles ...string) *Config {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env may not exist in production
	_ = godotenv.Load(files...)

	return &Config{
		App: AppConfig{
			Name:     env("APP_NAME", "go-beans"),
			Env:      env("APP_ENV", "local"),
			Debug:    envBool("APP_DEBUG", true),
			Port:     env("APP_PORT", "8080"),
			Profiles: SplitProfiles(env("APP_PROFILES", "")),

			ShutdownSeconds: GetInt("APP_SHUTDOWN_SECONDS", 5),
		},
		DB: DBConfig{
			Driver: env("DB_DRIVER", "sqlite"),
			Path:   env("DB_PATH", "users.db"),
		},
		Log: LogConfig{
			Level: env("LOG_LEVEL", "info"),
		},
		Resources: ResourceConfig{
			PropertiesPath: env("BEANS_PROPERTIES_PATH", ""),
			XMLPath:        env("BEANS_XML_PATH", ""),
		},
	}
}

// SplitProfiles turns "jc, other,," into ["jc", "other"].
func SplitProfiles(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// IsLocal reports whether the app runs in the local environment.
func (c *Config) IsLocal() bool { return c.App.Env == "local" }

// Get returns a raw env value, falling back to defaultVal.
func Get(key, defaultVal string) string {
	return env(key, defaultVal)
}

// GetInt returns an int env value.
func GetInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

// GetBool returns a bool env value.
func GetBool(key string, defaultVal bool) bool {
	return envBool(key, defaultVal)
}

// ── helpers ─────────────────────────────────────────────────────────────────

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

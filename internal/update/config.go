package update

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

type RuntimeConfig struct {
	DBPath                string `toml:"db_path"`
	LogPath               string `toml:"log_path"`
	InsightEnabled        bool   `toml:"insight_enabled"`
	InsightBaseURL        string `toml:"insight_base_url"`
	InsightModel          string `toml:"insight_model"`
	InsightRefreshMinutes int    `toml:"insight_refresh_minutes"`
	RefreshBuffer         int    `toml:"refresh_buffer"`
}

func DefaultRuntimeConfig() RuntimeConfig {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return RuntimeConfig{
		DBPath:                filepath.Join(home, ".steelmaster", "steelmaster.db"),
		LogPath:               filepath.Join(home, ".steelmaster", "steelmaster.log"),
		InsightEnabled:        true,
		InsightBaseURL:        "https://api.openai.com/v1",
		InsightModel:          "gpt-4o-mini",
		InsightRefreshMinutes: 60,
		RefreshBuffer:         4,
	}
}

// ConfigFilePath is where LoadRuntimeConfig looks for the optional TOML
// file unless STEELMASTER_CONFIG points elsewhere.
func ConfigFilePath() string {
	if p := strings.TrimSpace(os.Getenv("STEELMASTER_CONFIG")); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".steelmaster", "config.toml")
}

// LoadRuntimeConfig layers defaults, then the TOML file if present, then
// env overrides. A missing file is fine; a malformed one is an error.
func LoadRuntimeConfig(path string) (RuntimeConfig, error) {
	cfg := DefaultRuntimeConfig()
	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// no file, defaults apply
		case err != nil:
			return RuntimeConfig{}, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := toml.Unmarshal(raw, &cfg); err != nil {
				return RuntimeConfig{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	return runtimeConfigFromEnv(cfg), nil
}

func runtimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("STEELMASTER_DB_PATH")); v != "" {
		cfg.DBPath = v
	}
	if v := strings.TrimSpace(os.Getenv("STEELMASTER_LOG_PATH")); v != "" {
		cfg.LogPath = v
	}
	if v, ok := getEnvBool("STEELMASTER_INSIGHT_ENABLED"); ok {
		cfg.InsightEnabled = v
	}
	if v := strings.TrimSpace(os.Getenv("STEELMASTER_INSIGHT_BASE_URL")); v != "" {
		cfg.InsightBaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("STEELMASTER_INSIGHT_MODEL")); v != "" {
		cfg.InsightModel = v
	}
	if v, ok := getEnvInt("STEELMASTER_INSIGHT_REFRESH_MINUTES"); ok && v > 0 {
		cfg.InsightRefreshMinutes = v
	}
	if v, ok := getEnvInt("STEELMASTER_REFRESH_BUFFER"); ok && v > 0 {
		cfg.RefreshBuffer = v
	}
	return cfg
}

// InsightAPIKey is env-only; it never lives in the config file.
func InsightAPIKey() string {
	if v := strings.TrimSpace(os.Getenv("STEELMASTER_API_KEY")); v != "" {
		return v
	}
	return strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}

// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/ledgerflow/ledgerbot/internal/common"
	"github.com/ledgerflow/ledgerbot/internal/model"
	"github.com/spf13/viper"
)

// Config holds everything the bot needs to run.
type Config struct {
	TelegramToken  string
	DatabasePath   string
	LogLevel       string
	LogFormat      string
	AdminIDs       []int64
	RUPayinChatID  int64
	ENGPayinChatID int64
	PayoutChatID   int64
}

// Load reads configuration from a .env file (when present) and the
// environment, with LEDGERBOT_ prefixed variables taking precedence.
func Load() (*Config, error) {
	// A missing .env file is fine; the environment may carry everything.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("LEDGERBOT")
	v.AutomaticEnv()

	v.SetDefault("database_path", defaultDatabasePath())
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")

	cfg := &Config{
		TelegramToken:  v.GetString("telegram_token"),
		DatabasePath:   ExpandPath(v.GetString("database_path")),
		LogLevel:       v.GetString("log_level"),
		LogFormat:      v.GetString("log_format"),
		RUPayinChatID:  v.GetInt64("ru_payin_chat_id"),
		ENGPayinChatID: v.GetInt64("eng_payin_chat_id"),
		PayoutChatID:   v.GetInt64("payout_chat_id"),
	}

	adminIDs, err := parseAdminIDs(v.GetString("admin_ids"))
	if err != nil {
		return nil, err
	}
	cfg.AdminIDs = adminIDs

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DatabasePath resolves just the database location, for commands that
// touch the store without talking to Telegram.
func DatabasePath() string {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("LEDGERBOT")
	v.AutomaticEnv()
	v.SetDefault("database_path", defaultDatabasePath())
	return ExpandPath(v.GetString("database_path"))
}

// Validate checks that the required settings are present and coherent.
func (c *Config) Validate() error {
	if c.TelegramToken == "" {
		return fmt.Errorf("%w: LEDGERBOT_TELEGRAM_TOKEN is required", common.ErrMissingConfig)
	}
	if len(c.AdminIDs) == 0 {
		return fmt.Errorf("%w: LEDGERBOT_ADMIN_IDS is required", common.ErrMissingConfig)
	}
	if c.RUPayinChatID == 0 && c.ENGPayinChatID == 0 && c.PayoutChatID == 0 {
		return fmt.Errorf("%w: at least one monitored chat ID is required", common.ErrMissingConfig)
	}
	seen := make(map[int64]struct{}, 3)
	for _, id := range []int64{c.RUPayinChatID, c.ENGPayinChatID, c.PayoutChatID} {
		if id == 0 {
			continue
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: monitored chat IDs must be distinct", common.ErrInvalidConfig)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// IsAdmin reports whether the given Telegram user may use the admin menu.
func (c *Config) IsAdmin(userID int64) bool {
	for _, id := range c.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// PayinKind maps a chat ID to the language of its pay-in records.
// The second return is false for the pay-out chat and for unmonitored chats.
func (c *Config) PayinKind(chatID int64) (model.ChatKind, bool) {
	switch {
	case chatID != 0 && chatID == c.RUPayinChatID:
		return model.ChatKindRU, true
	case chatID != 0 && chatID == c.ENGPayinChatID:
		return model.ChatKindENG, true
	default:
		return "", false
	}
}

// IsPayoutChat reports whether the chat carries pay-out records.
func (c *Config) IsPayoutChat(chatID int64) bool {
	return chatID != 0 && chatID == c.PayoutChatID
}

func parseAdminIDs(raw string) ([]int64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad admin ID %q", common.ErrInvalidConfig, part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func defaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "ledgerbot.db"
	}
	return filepath.Join(home, ".local", "share", "ledgerbot", "ledgerbot.db")
}

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}
	return os.ExpandEnv(path)
}

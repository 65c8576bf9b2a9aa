package config

import (
	"testing"

	"github.com/ledgerflow/ledgerbot/internal/common"
	"github.com/ledgerflow/ledgerbot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		TelegramToken:  "123:abc",
		DatabasePath:   "test.db",
		AdminIDs:       []int64{100, 200},
		RUPayinChatID:  -1001,
		ENGPayinChatID: -1002,
		PayoutChatID:   -1003,
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("LEDGERBOT_TELEGRAM_TOKEN", "123:abc")
	t.Setenv("LEDGERBOT_ADMIN_IDS", "100, 200")
	t.Setenv("LEDGERBOT_RU_PAYIN_CHAT_ID", "-1001")
	t.Setenv("LEDGERBOT_ENG_PAYIN_CHAT_ID", "-1002")
	t.Setenv("LEDGERBOT_PAYOUT_CHAT_ID", "-1003")
	t.Setenv("LEDGERBOT_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "123:abc", cfg.TelegramToken)
	assert.Equal(t, []int64{100, 200}, cfg.AdminIDs)
	assert.Equal(t, int64(-1001), cfg.RUPayinChatID)
	assert.Equal(t, int64(-1002), cfg.ENGPayinChatID)
	assert.Equal(t, int64(-1003), cfg.PayoutChatID)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.NotEmpty(t, cfg.DatabasePath)
}

func TestLoad_MissingToken(t *testing.T) {
	t.Setenv("LEDGERBOT_TELEGRAM_TOKEN", "")
	t.Setenv("LEDGERBOT_ADMIN_IDS", "100")
	t.Setenv("LEDGERBOT_RU_PAYIN_CHAT_ID", "-1001")

	_, err := Load()
	assert.ErrorIs(t, err, common.ErrMissingConfig)
}

func TestLoad_BadAdminID(t *testing.T) {
	t.Setenv("LEDGERBOT_TELEGRAM_TOKEN", "123:abc")
	t.Setenv("LEDGERBOT_ADMIN_IDS", "100,nope")
	t.Setenv("LEDGERBOT_RU_PAYIN_CHAT_ID", "-1001")

	_, err := Load()
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		mutate  func(*Config)
		wantErr error
		name    string
	}{
		{name: "valid", mutate: func(_ *Config) {}},
		{
			name:    "no admins",
			mutate:  func(c *Config) { c.AdminIDs = nil },
			wantErr: common.ErrMissingConfig,
		},
		{
			name: "no chats",
			mutate: func(c *Config) {
				c.RUPayinChatID, c.ENGPayinChatID, c.PayoutChatID = 0, 0, 0
			},
			wantErr: common.ErrMissingConfig,
		},
		{
			name:    "duplicate chats",
			mutate:  func(c *Config) { c.PayoutChatID = c.RUPayinChatID },
			wantErr: common.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestIsAdmin(t *testing.T) {
	cfg := validConfig()
	assert.True(t, cfg.IsAdmin(100))
	assert.True(t, cfg.IsAdmin(200))
	assert.False(t, cfg.IsAdmin(300))
}

func TestPayinKind(t *testing.T) {
	cfg := validConfig()

	kind, ok := cfg.PayinKind(-1001)
	assert.True(t, ok)
	assert.Equal(t, model.ChatKindRU, kind)

	kind, ok = cfg.PayinKind(-1002)
	assert.True(t, ok)
	assert.Equal(t, model.ChatKindENG, kind)

	_, ok = cfg.PayinKind(-1003)
	assert.False(t, ok)
	_, ok = cfg.PayinKind(42)
	assert.False(t, ok)
}

func TestIsPayoutChat(t *testing.T) {
	cfg := validConfig()
	assert.True(t, cfg.IsPayoutChat(-1003))
	assert.False(t, cfg.IsPayoutChat(-1001))

	unset := validConfig()
	unset.PayoutChatID = 0
	assert.False(t, unset.IsPayoutChat(0))
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			PasswordSecret: "pepper",
			TokenSignKey:   "sign-key",
			TokenIssuer:    "go-forum-board",
			TokenDuration:  24 * time.Hour,
		},
		Storage: Storage{
			DB: DB{DSN: "postgres://localhost/forum", MaxOpenConns: 10},
		},
		Server: Server{
			HTTPAddress:    ":8080",
			RequestTimeout: 30 * time.Second,
		},
	}
}

func TestValidate_Valid(t *testing.T) {
	require.NoError(t, validConfig().validate())
}

func TestValidate_AuthConfigs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*StructuredConfig)
	}{
		{"missing password secret", func(cfg *StructuredConfig) { cfg.Auth.PasswordSecret = "" }},
		{"missing token sign key", func(cfg *StructuredConfig) { cfg.Auth.TokenSignKey = "" }},
		{"zero token duration", func(cfg *StructuredConfig) { cfg.Auth.TokenDuration = 0 }},
		{"negative token duration", func(cfg *StructuredConfig) { cfg.Auth.TokenDuration = -time.Hour }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), ErrInvalidAuthConfigs)
		})
	}
}

func TestValidate_StorageConfigs(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.DB.DSN = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestValidate_ServerConfigs(t *testing.T) {
	cfg := validConfig()
	cfg.Server.HTTPAddress = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)

	cfg = validConfig()
	cfg.Server.RequestTimeout = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)
}

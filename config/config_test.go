package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, StorageTypeJSON, cfg.Storage.Type)
	assert.Equal(t, DefaultMaxItems, cfg.Storage.MaxItems)
	assert.Equal(t, DefaultPollIntervalMs, cfg.PollIntervalMs)
	assert.Equal(t, DefaultPasteKey, cfg.PasteKey)
	assert.NotEmpty(t, cfg.Storage.JSONPath)
}

func TestApplyDefaultsFillsMissingValues(t *testing.T) {
	cfg := &AppConfig{}

	cfg.applyDefaults()

	assert.Equal(t, StorageTypeJSON, cfg.Storage.Type)
	assert.Equal(t, DefaultMaxItems, cfg.Storage.MaxItems)
	assert.Equal(t, DefaultPollIntervalMs, cfg.PollIntervalMs)
	assert.Equal(t, DefaultPasteKey, cfg.PasteKey)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := &AppConfig{
		Storage: StorageConfig{
			Type:       StorageTypeMySQL,
			MaxItems:   50,
			CustomPath: true,
			JSONPath:   "/tmp/custom",
		},
		PollIntervalMs: 2000,
		PasteKey:       "shift+insert",
	}

	cfg.applyDefaults()

	assert.Equal(t, StorageTypeMySQL, cfg.Storage.Type)
	assert.Equal(t, 50, cfg.Storage.MaxItems)
	assert.Equal(t, "/tmp/custom", cfg.Storage.JSONPath)
	assert.Equal(t, 2000, cfg.PollIntervalMs)
	assert.Equal(t, "shift+insert", cfg.PasteKey)
}

func TestApplyDefaultsRejectsNonPositiveMaxItems(t *testing.T) {
	cfg := &AppConfig{Storage: StorageConfig{MaxItems: -5}}

	cfg.applyDefaults()

	assert.Equal(t, DefaultMaxItems, cfg.Storage.MaxItems)
}

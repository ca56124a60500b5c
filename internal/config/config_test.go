package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "MODEL_NAME", "SUMMARY_TIMEOUT", "DAILY_QUOTA"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, DefaultModelName, cfg.ModelName)
	assert.Equal(t, DefaultSummaryTimeout, cfg.SummaryTimeout)
	assert.Equal(t, int64(DefaultDailyQuota), cfg.DailyQuota)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ENV", "production")
	t.Setenv("MODEL_BASE_URL", "http://localhost:11434")
	t.Setenv("MODEL_NAME", "mistral")
	t.Setenv("SUMMARY_TIMEOUT", "90s")
	t.Setenv("DAILY_QUOTA", "25")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "http://localhost:11434", cfg.ModelBaseURL)
	assert.Equal(t, "mistral", cfg.ModelName)
	assert.Equal(t, 90*time.Second, cfg.SummaryTimeout)
	assert.Equal(t, int64(25), cfg.DailyQuota)
}

func TestLoadIgnoresInvalidValues(t *testing.T) {
	t.Setenv("SUMMARY_TIMEOUT", "soon")
	t.Setenv("DAILY_QUOTA", "many")

	cfg := Load()
	assert.Equal(t, DefaultSummaryTimeout, cfg.SummaryTimeout)
	assert.Equal(t, int64(DefaultDailyQuota), cfg.DailyQuota)
}

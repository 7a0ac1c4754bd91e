package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/piresc/quickconnect/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg := InitConfig("")

	assert.Equal(t, "quickconnect", cfg.App.Name)
	assert.Equal(t, 9990, cfg.Server.Port)
	assert.Equal(t, models.SessionStoreMemory, cfg.Session.Store)
	assert.Equal(t, 1500*time.Millisecond, cfg.Hospital.FetchDelay)
	assert.Equal(t, 2*time.Second, cfg.Emergency.SubmitDelay)
	assert.Equal(t, 3*time.Second, cfg.Chat.AckDelay)
	assert.Equal(t, 2*time.Second, cfg.Chat.ReplyDelay)
	assert.Equal(t, 0, cfg.Geocoder.MaxRetries)
	assert.Empty(t, cfg.NATS.URL)
}

func TestInitConfig_FromEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "emergency.env")
	content := "SERVER_PORT=8081\nSESSION_STORE=redis\nHOSPITAL_FETCH_DELAY=10ms\nGEOCODER_MAX_RETRIES=2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("APP_ENV", "local")
	// godotenv does not override variables that are already set, so make sure
	// the ones under test are unset and restored afterwards
	for _, key := range []string{"SERVER_PORT", "SESSION_STORE", "HOSPITAL_FETCH_DELAY", "GEOCODER_MAX_RETRIES"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg := InitConfig(path)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, models.SessionStoreRedis, cfg.Session.Store)
	assert.Equal(t, 10*time.Millisecond, cfg.Hospital.FetchDelay)
	assert.Equal(t, 2, cfg.Geocoder.MaxRetries)
}

func TestGetEnvHelpers_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("QC_INT", "abc")
	t.Setenv("QC_BOOL", "maybe")
	t.Setenv("QC_FLOAT", "x1")
	t.Setenv("QC_DURATION", "soon")

	assert.Equal(t, 7, GetEnvAsInt("QC_INT", 7))
	assert.True(t, GetEnvAsBool("QC_BOOL", true))
	assert.Equal(t, 1.5, GetEnvAsFloat("QC_FLOAT", 1.5))
	assert.Equal(t, time.Minute, GetEnvAsDuration("QC_DURATION", time.Minute))
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("QC_DURATION", "250ms")
	assert.Equal(t, 250*time.Millisecond, GetEnvAsDuration("QC_DURATION", time.Second))
}

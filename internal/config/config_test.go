package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("ENV", "")
	t.Setenv("API_BASE_URL", "")
	t.Setenv("SCHEDULE_OFFICIAL_USER_ID", "")
	t.Setenv("API_TIMEOUT", "")
	t.Setenv("CAMERA_FEEDS", "")

	cfg, err := LoadAppConfig()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, "http://localhost:5000/api", cfg.APIBaseURL)
	assert.Equal(t, int64(15), cfg.OfficialUserID)
	assert.Equal(t, time.Duration(0), cfg.APITimeout)
	assert.Empty(t, cfg.CameraFeeds)
}

func TestLoadAppConfig_Overrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://10.0.2.2:5000/api/")
	t.Setenv("SCHEDULE_OFFICIAL_USER_ID", "42")
	t.Setenv("API_TIMEOUT", "5s")
	t.Setenv("CAMERA_FEEDS", " http://cam/1 , ,http://cam/2")

	cfg, err := LoadAppConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://10.0.2.2:5000/api", cfg.APIBaseURL)
	assert.Equal(t, int64(42), cfg.OfficialUserID)
	assert.Equal(t, 5*time.Second, cfg.APITimeout)
	assert.Equal(t, []string{"http://cam/1", "http://cam/2"}, cfg.CameraFeeds)
}

func TestLoadAppConfig_InvalidOfficialUser(t *testing.T) {
	t.Setenv("SCHEDULE_OFFICIAL_USER_ID", "abc")
	_, err := LoadAppConfig()
	assert.Error(t, err)

	t.Setenv("SCHEDULE_OFFICIAL_USER_ID", "0")
	_, err = LoadAppConfig()
	assert.Error(t, err)
}

func TestLoadAppConfig_ProdRequiresHTTPS(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("API_BASE_URL", "http://api.example.com")

	_, err := LoadAppConfig()
	assert.Error(t, err)
}

func TestLoadBackendConfig_ProdRejectsDefaultSecret(t *testing.T) {
	t.Setenv("APP_ENV", "release")
	t.Setenv("JWT_SECRET", "")

	_, err := LoadBackendConfig()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "a-real-secret")
	cfg, err := LoadBackendConfig()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
}

func TestLoadDotEnv_MissingFileIsNotAnError(t *testing.T) {
	t.Chdir(t.TempDir())
	assert.NoError(t, LoadDotEnv())
}

package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	setDefaults()
	t.Cleanup(viper.Reset)
}

func TestLoadBioGRID_MissingAccessKey(t *testing.T) {
	resetViper(t)
	t.Setenv("BIOGRID_ACCESS_KEY", "")
	viper.AutomaticEnv()

	_, err := LoadBioGRID()
	require.ErrorIs(t, err, ErrMissingAccessKey)
}

func TestLoadBioGRID_Defaults(t *testing.T) {
	resetViper(t)
	viper.Set(KeyAccessKey, "  secret ")

	cfg, err := LoadBioGRID()
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.AccessKey)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
}

func TestLoadBioGRID_FromEnvironment(t *testing.T) {
	resetViper(t)
	t.Setenv("BIOGRID_ACCESS_KEY", "env-key")
	t.Setenv("BIOGRID_BASE_URL", "http://localhost:9999/")
	t.Setenv("BIOGRID_TIMEOUT", "5s")
	viper.AutomaticEnv()

	cfg, err := LoadBioGRID()
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.AccessKey)
	assert.Equal(t, "http://localhost:9999", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoadBioGRID_InvalidTimeout(t *testing.T) {
	resetViper(t)
	viper.Set(KeyAccessKey, "secret")

	viper.Set(KeyTimeout, "soon")
	_, err := LoadBioGRID()
	require.Error(t, err)
	assert.Contains(t, err.Error(), KeyTimeout)

	viper.Set(KeyTimeout, "-1s")
	_, err = LoadBioGRID()
	require.Error(t, err)
}

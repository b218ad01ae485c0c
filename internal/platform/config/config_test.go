package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViper(overrides map[string]any) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for k, val := range overrides {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(newTestViper(nil))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StorageDriverLevelDB, cfg.StorageDriver)
	assert.Equal(t, "data/ledger", cfg.LevelDBPath)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, "ledger.admin", cfg.LedgerAdmin)
	assert.Equal(t, "exchange", cfg.LedgerExchange)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
}

func TestFromViper_PostgresRequiresURL(t *testing.T) {
	_, err := fromViper(newTestViper(map[string]any{"STORAGE_DRIVER": "postgres"}))
	assert.Error(t, err)

	cfg, err := fromViper(newTestViper(map[string]any{
		"STORAGE_DRIVER": "POSTGRES",
		"PGSQL_URL":      "postgres://ledger@localhost/ledger",
	}))
	require.NoError(t, err)
	assert.Equal(t, StorageDriverPostgres, cfg.StorageDriver)
}

func TestFromViper_UnknownDriver(t *testing.T) {
	_, err := fromViper(newTestViper(map[string]any{"STORAGE_DRIVER": "sqlite"}))
	assert.Error(t, err)
}

func TestFromViper_ProductionRejectsDefaultSecret(t *testing.T) {
	_, err := fromViper(newTestViper(map[string]any{"IS_PRODUCTION": true}))
	assert.Error(t, err)

	cfg, err := fromViper(newTestViper(map[string]any{
		"IS_PRODUCTION": true,
		"JWT_SECRET":    "0123456789abcdef0123456789abcdef",
	}))
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction)
}

func TestFromViper_InvalidExpiryFallsBack(t *testing.T) {
	cfg, err := fromViper(newTestViper(map[string]any{"JWT_EXPIRY_DURATION": "soon"}))
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
}

func TestFromViper_CORSOriginsAreSplit(t *testing.T) {
	cfg, err := fromViper(newTestViper(map[string]any{
		"CORS_ALLOWED_ORIGINS": "https://a.example, https://b.example,,",
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv сбрасывает переменные окружения, которые читает Load
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HTTP_PORT", "DB_DRIVER", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
		"DB_PATH", "MONGODB_URI", "CLASSIFIER_URL", "CLASSIFIER_TOKEN", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[server]
http_port = 8080

[database]
driver = "sqlite"
path = "/tmp/bookings.db"

[logs]
level = "debug"

[metrics]
enabled = false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/bookings.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.False(t, cfg.Metrics.Enabled)
	// незаданные значения берутся по умолчанию
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, "bookings", cfg.Database.Collection)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.HTTPPort)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "https://api-inference.huggingface.co/models/valpy/prompt-classification", cfg.Classifier.URL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_DRIVER", "mongo")
	t.Setenv("MONGODB_URI", "mongodb://db:27017")
	t.Setenv("DB_NAME", "stays")
	t.Setenv("CLASSIFIER_TOKEN", "secret")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(writeConfig(t, `
[server]
http_port = 8080
`))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, DriverMongo, cfg.Database.Driver)
	assert.Equal(t, "mongodb://db:27017", cfg.Database.URI)
	assert.Equal(t, "stays", cfg.Database.DBName)
	assert.Equal(t, "secret", cfg.Classifier.Token)
	assert.Equal(t, "warn", cfg.Logs.Level)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	t.Run("bad toml", func(t *testing.T) {
		_, err := Load(writeConfig(t, `[server`))
		assert.Error(t, err)
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[database]\ndriver = \"oracle\"\n"))
		assert.ErrorContains(t, err, "unsupported database.driver")
	})

	t.Run("bad port env", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "eighty")
		_, err := Load(writeConfig(t, ""))
		assert.Error(t, err)
	})

	t.Run("port out of range", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[server]\nhttp_port = 70000\n"))
		assert.Error(t, err)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db",
		Port:     5432,
		User:     "app",
		Password: "pw",
		DBName:   "bookings_db",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=db port=5432 user=app password=pw dbname=bookings_db sslmode=disable", d.DSN())
}

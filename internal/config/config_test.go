package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("PORT", "8088")
	t.Setenv("APP_ENV", "development")
	t.Setenv("DB_NAME", "microblog_test")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8088", cfg.Port)
	assert.Equal(t, "microblog_test", cfg.DBName)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_ProductionRequiresStrongPassword(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_PASSWORD", "postgres")

	_, err := LoadConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
}

func TestConfig_DSN(t *testing.T) {
	t.Run("explicit URL wins", func(t *testing.T) {
		cfg := Config{
			DatabaseURL: "postgres://app:secret@db:5432/microblog",
			DBHost:      "ignored",
		}
		assert.Equal(t, "postgres://app:secret@db:5432/microblog", cfg.DSN())
	})

	t.Run("discrete values assemble a keyword DSN", func(t *testing.T) {
		cfg := Config{
			DBHost:     "localhost",
			DBPort:     "5432",
			DBUser:     "postgres",
			DBPassword: "postgres",
			DBName:     "microblog",
			DBSSLMode:  "disable",
		}
		assert.Equal(t,
			"host=localhost port=5432 user=postgres password=postgres dbname=microblog sslmode=disable",
			cfg.DSN())
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("missing port", func(t *testing.T) {
		cfg := Config{DBName: "microblog"}
		assert.Error(t, cfg.Validate())
	})

	t.Run("needs a database target", func(t *testing.T) {
		cfg := Config{Port: "3000"}
		assert.Error(t, cfg.Validate())
	})

	t.Run("database url alone is enough", func(t *testing.T) {
		cfg := Config{Port: "3000", DatabaseURL: "postgres://app:secret@db/microblog"}
		assert.NoError(t, cfg.Validate())
	})
}

package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "s3cret")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.False(t, cfg.App.SeedDevUsers)
	assert.Equal(t, StoragePostgres, cfg.Storage.Driver)
	assert.False(t, cfg.Workflow.StrictTransitions, "el modo estricto debe estar apagado por defecto")
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "ar", cfg.I18n.DefaultLang)
	assert.Equal(t, "NotoNaskhArabic", cfg.PDF.FontFamily)
	assert.Contains(t, cfg.PDF.FontRegular, "NotoNaskhArabic-Regular.ttf")
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "s3cret")
	v.Set("STORAGE_DRIVER", "MEMORY")
	v.Set("WORKFLOW_STRICT_TRANSITIONS", "true")
	v.Set("HTTP_PORT", "9090")
	v.Set("APP_ENV", "production")
	v.Set("PDF_FONT_REGULAR", "")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.True(t, cfg.Workflow.StrictTransitions)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.True(t, cfg.App.IsProduction())
	assert.Empty(t, cfg.PDF.FontRegular, "vacío desactiva la fuente incrustada")
}

func TestFromViper_Errores(t *testing.T) {
	v := viper.New()
	_, err := fromViper(v)
	assert.Error(t, err, "sin JWT_SECRET debe fallar")

	v.Set("JWT_SECRET", "s3cret")
	v.Set("STORAGE_DRIVER", "mysql")
	_, err = fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "proyectos", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/proyectos?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}

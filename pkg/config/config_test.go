package config_test

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/customers-api/pkg/config"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.True(t, cfg.App.IsDevelopment())
	assert.Equal(t, config.StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, "customers", cfg.DB.CustomerTable)
	assert.True(t, cfg.DB.AutoMigrate, "en development se crea la tabla")
	assert.Equal(t, time.Hour, cfg.DB.MaxConnLifetime)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.True(t, cfg.HTTP.SwaggerEnabled)
	assert.Equal(t, "postgres://postgres:@localhost:5432/customers?sslmode=disable", cfg.DB.ConnectionString())
}

func TestFromViper_SobrescribeDesdeEnv(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "production")
	v.Set("STORE_DRIVER", "MEMORY")
	v.Set("CUSTOMER_TABLE", "crm.clientes")
	v.Set("HTTP_PORT", "9090")
	v.Set("HTTP_BASE_PATH", "/api/")
	v.Set("DB_PASSWORD", "p@ss:w/rd")
	v.Set("DB_MAX_CONN_LIFETIME", "15m")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, config.StoreDriverMemory, cfg.Store.Driver)
	assert.Equal(t, "crm.clientes", cfg.DB.CustomerTable)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "/api", cfg.HTTP.BasePath)
	assert.False(t, cfg.DB.AutoMigrate)
	assert.False(t, cfg.HTTP.SwaggerEnabled)
	assert.Equal(t, 15*time.Minute, cfg.DB.MaxConnLifetime)
	assert.Contains(t, cfg.DB.DSN(), "p%40ss%3Aw%2Frd")
}

func TestFromViper_DatabaseURLTienePrioridad(t *testing.T) {
	v := viper.New()
	v.Set("DATABASE_URL", "postgres://u:p@db:5432/x")
	v.Set("DB_HOST", "ignorado")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.DB.ConnectionString())
}

func TestFromViper_ValoresInvalidos_RetornaError(t *testing.T) {
	tests := map[string]string{
		"STORE_DRIVER": "dynamo",
		"HTTP_PORT":    "70000",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			v := viper.New()
			v.Set(key, value)
			_, err := config.FromViper(v)
			assert.Error(t, err)
		})
	}
}

func TestFromViper_Staging_SinAutoMigrateConSwagger(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "staging")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)

	assert.False(t, cfg.App.IsDevelopment())
	assert.False(t, cfg.DB.AutoMigrate, "solo development crea la tabla por defecto")
	assert.True(t, cfg.HTTP.SwaggerEnabled)
}

package app

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/carbon/internal/carbon/upstream"
	"github.com/aussiebroadwan/carbon/pkg/jwtx"
)

var configKeys = []string{
	"DATABASE_URL", "MONGO_URI", "JWT_SECRET", "JWT_ISSUER", "PASSWORD_HASH_COST",
	"NEWS_API_KEY", "NEWS_API_URL", "NEWS_QUERY",
	"DIALOGFLOW_PROJECT_ID", "DIALOGFLOW_KEYFILE", "DIALOGFLOW_LANGUAGE",
	"UPSTREAM_TIMEOUT", "ENV", "LOG_LEVEL", "LOG_FORMAT", "PORT", "SHUTDOWN_GRACE_PERIOD",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := LoadConfig()
		require.NoError(t, err)
		require.Equal(t, "carbon.db", cfg.DatabaseURL)
		require.Equal(t, "carbon-api", cfg.JWTIssuer)
		require.Equal(t, 10, cfg.PasswordHashCost)
		require.Equal(t, upstream.DefaultNewsURL, cfg.NewsAPIURL)
		require.Equal(t, upstream.DefaultNewsQuery, cfg.NewsQuery)
		require.Equal(t, upstream.DefaultLanguage, cfg.DialogflowLanguage)
		require.Equal(t, 3000, cfg.Port)
		require.Equal(t, "dev", cfg.Env)
		require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
		require.Zero(t, cfg.UpstreamTimeout)
	})

	t.Run("overrides", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DATABASE_URL", "postgres://carbon@db/carbon")
		t.Setenv("PORT", "8081")
		t.Setenv("UPSTREAM_TIMEOUT", "5s")
		t.Setenv("SHUTDOWN_GRACE_PERIOD", "30")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		require.Equal(t, "postgres://carbon@db/carbon", cfg.DatabaseURL)
		require.Equal(t, 8081, cfg.Port)
		require.Equal(t, 5*time.Second, cfg.UpstreamTimeout)
		require.Equal(t, 30*time.Second, cfg.ShutdownGracePeriod)
	})

	t.Run("mongo uri alias", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MONGO_URI", "mongodb://localhost:27017/carbon")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		require.Equal(t, "mongodb://localhost:27017/carbon", cfg.DatabaseURL)
	})

	t.Run("unparseable numbers fall back", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORT", "eighty")
		t.Setenv("UPSTREAM_TIMEOUT", "soon")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		require.Equal(t, 3000, cfg.Port)
		require.Zero(t, cfg.UpstreamTimeout)
	})
}

func TestConfigValidate(t *testing.T) {
	valid := func() Config {
		return Config{DatabaseURL: "carbon.db", Port: 3000, Env: "prod", JWTSecret: strings.Repeat("s", jwtx.MinSecretLength)}
	}

	t.Run("valid", func(t *testing.T) {
		cfg := valid()
		require.NoError(t, cfg.Validate())
		require.False(t, cfg.generatedSecret)
	})

	t.Run("dev generates a secret", func(t *testing.T) {
		cfg := valid()
		cfg.Env = "dev"
		cfg.JWTSecret = ""

		require.NoError(t, cfg.Validate())
		require.True(t, cfg.generatedSecret)
		require.GreaterOrEqual(t, len(cfg.JWTSecret), jwtx.MinSecretLength)
	})

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing secret outside dev", func(c *Config) { c.JWTSecret = "" }},
		{"short secret", func(c *Config) { c.JWTSecret = "short" }},
		{"port zero", func(c *Config) { c.Port = 0 }},
		{"port too big", func(c *Config) { c.Port = 70000 }},
		{"empty dsn", func(c *Config) { c.DatabaseURL = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestDriverFor(t *testing.T) {
	cases := map[string]string{
		"carbon.db":                         driverSQLite,
		"sqlite:///var/lib/carbon.db":       driverSQLite,
		"file:carbon.db?mode=rwc":           driverSQLite,
		":memory:":                          driverSQLite,
		"postgres://u:p@localhost/carbon":   driverPostgres,
		"postgresql://u:p@localhost/carbon": driverPostgres,
		"mongodb://localhost:27017/carbon":  driverMongo,
		"mongodb+srv://cluster.example/db":  driverMongo,
	}
	for dsn, want := range cases {
		require.Equal(t, want, driverFor(dsn), dsn)
	}
}

func TestSQLiteDSN(t *testing.T) {
	require.Equal(t, ":memory:", sqliteDSN(":memory:"))
	require.Equal(t, "file:x.db?mode=ro", sqliteDSN("file:x.db?mode=ro"))
	require.Contains(t, sqliteDSN("sqlite:///tmp/carbon.db"), "file:/tmp/carbon.db?")
	require.Contains(t, sqliteDSN("carbon.db"), "busy_timeout")
}

func TestOpenStore(t *testing.T) {
	st, err := OpenStore(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.Ping(context.Background()))
	vs, err := st.Vehicles().ListVehicles(context.Background())
	require.NoError(t, err)
	require.Empty(t, vs)
}

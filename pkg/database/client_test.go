package database

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dhiyaancnirmal/mintaborate/ent"
	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// newTestClient creates a test database client with CI/local environment detection.
// In CI (when CI_DATABASE_URL is set): connects to an external PostgreSQL service container.
// In local dev: spins up a testcontainer with PostgreSQL.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	ciDatabaseURL := os.Getenv("CI_DATABASE_URL")

	var connStr string
	if ciDatabaseURL != "" {
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
		connStr = ciDatabaseURL
	} else {
		t.Log("Using testcontainers for PostgreSQL")
		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		connStr, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	// Auto-migration for tests; production applies the embedded SQL files.
	err = entClient.Schema.Create(ctx)
	require.NoError(t, err)

	err = CreateGINIndexes(ctx, drv)
	require.NoError(t, err)

	client := NewClientFromEnt(entClient, db)

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestFullTextSearch(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	run, err := client.Run.Create().
		SetID("run-fts").
		SetDocsURL("https://docs.example.com").
		SetConfig(models.RunConfig{}).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.RunArtifact.Create().
		SetRunID(run.ID).
		SetArtifactType(models.ArtifactTypePage).
		SetSourceURL("https://docs.example.com/install").
		SetContent("Install the CLI with npm and authenticate with an API key").
		SetContentHash("h1").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.RunArtifact.Create().
		SetRunID(run.ID).
		SetArtifactType(models.ArtifactTypePage).
		SetSourceURL("https://docs.example.com/webhooks").
		SetContent("Webhooks deliver events to your endpoint with retries").
		SetContentHash("h2").
		Save(ctx)
	require.NoError(t, err)

	rows, err := client.DB().QueryContext(ctx,
		`SELECT source_url FROM run_artifacts
		WHERE to_tsvector('english', content) @@ to_tsquery('english', $1)`,
		"install & authenticate",
	)
	require.NoError(t, err)
	defer rows.Close()

	var results []string
	for rows.Next() {
		var sourceURL string
		require.NoError(t, rows.Scan(&sourceURL))
		results = append(results, sourceURL)
	}
	require.NoError(t, rows.Err())

	assert.Equal(t, []string{"https://docs.example.com/install"}, results)
}

func TestLoadConfigFromEnv(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		wantErr     bool
		errContains string
	}{
		{
			name: "valid config with defaults",
			envVars: map[string]string{
				"DB_PASSWORD": "test",
			},
		},
		{
			name: "valid config with custom values",
			envVars: map[string]string{
				"DB_HOST":           "db.example.com",
				"DB_PORT":           "5433",
				"DB_USER":           "admin",
				"DB_PASSWORD":       "secret",
				"DB_NAME":           "production",
				"DB_SSLMODE":        "require",
				"DB_MAX_OPEN_CONNS": "50",
				"DB_MAX_IDLE_CONNS": "20",
			},
		},
		{
			name: "invalid DB_PORT",
			envVars: map[string]string{
				"DB_PORT":     "invalid",
				"DB_PASSWORD": "test",
			},
			wantErr:     true,
			errContains: "invalid DB_PORT",
		},
		{
			name: "invalid DB_MAX_OPEN_CONNS",
			envVars: map[string]string{
				"DB_MAX_OPEN_CONNS": "not_a_number",
				"DB_PASSWORD":       "test",
			},
			wantErr:     true,
			errContains: "invalid DB_MAX_OPEN_CONNS",
		},
		{
			name: "invalid DB_CONN_MAX_LIFETIME",
			envVars: map[string]string{
				"DB_CONN_MAX_LIFETIME": "invalid_duration",
				"DB_PASSWORD":          "test",
			},
			wantErr:     true,
			errContains: "invalid DB_CONN_MAX_LIFETIME",
		},
		{
			name:        "missing password",
			envVars:     map[string]string{},
			wantErr:     true,
			errContains: "DB_PASSWORD is required",
		},
	}

	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
		"DB_CONN_MAX_LIFETIME", "DB_CONN_MAX_IDLE_TIME",
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range envKeys {
				os.Unsetenv(key)
			}
			for key, val := range tt.envVars {
				os.Setenv(key, val)
			}
			t.Cleanup(func() {
				for _, key := range envKeys {
					os.Unsetenv(key)
				}
			})

			cfg, err := LoadConfigFromEnv()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			if tt.name == "valid config with defaults" {
				assert.Equal(t, "localhost", cfg.Host)
				assert.Equal(t, 5432, cfg.Port)
				assert.Equal(t, 25, cfg.MaxOpenConns)
				assert.Equal(t, 10, cfg.MaxIdleConns)
			}
		})
	}
}

func TestHealthStatus_JSONMilliseconds(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	require.NotNil(t, health)

	assert.GreaterOrEqual(t, health.ResponseTime, int64(0))
	assert.Less(t, health.ResponseTime, int64(1000), "local ping should be fast")

	jsonBytes, err := json.Marshal(health)
	require.NoError(t, err)

	var jsonData map[string]interface{}
	require.NoError(t, json.Unmarshal(jsonBytes, &jsonData))

	// Durations must serialize as milliseconds, not nanoseconds.
	responseTime, ok := jsonData["response_time_ms"].(float64)
	require.True(t, ok, "response_time_ms should be a number")
	assert.Less(t, responseTime, float64(1000000))
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Host:         "localhost",
		Port:         5432,
		User:         "test",
		Password:     "test",
		Database:     "test",
		SSLMode:      "disable",
		MaxOpenConns: 10,
		MaxIdleConns: 5,
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid config", mutate: func(*Config) {}},
		{name: "missing password", mutate: func(c *Config) { c.Password = "" }, wantErr: true},
		{name: "idle conns exceed max conns", mutate: func(c *Config) { c.MaxIdleConns = 20 }, wantErr: true},
		{name: "zero max open conns", mutate: func(c *Config) { c.MaxOpenConns = 0 }, wantErr: true},
		{name: "negative idle conns", mutate: func(c *Config) { c.MaxIdleConns = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

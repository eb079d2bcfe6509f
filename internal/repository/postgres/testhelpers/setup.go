package testhelpers

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/cycleroute-microservice/internal/config"
	"github.com/cycleroute-microservice/internal/repository/postgres"
)

// TestDB is a PostGIS connection for integration suites
type TestDB struct {
	DB     *sqlx.DB
	Logger *zap.Logger

	pg *postgres.DB
}

// testConfig reads TEST_DB_* variables, falling back to the docker-compose defaults
func testConfig() config.DatabaseConfig {
	return config.DatabaseConfig{
		Host:     getEnv("TEST_DB_HOST", "localhost"),
		Port:     getEnvInt("TEST_DB_PORT", 5433),
		User:     getEnv("TEST_DB_USER", "postgres"),
		Password: getEnv("TEST_DB_PASSWORD", "postgres"),
		DBName:   getEnv("TEST_DB_NAME", "cycleroute_test"),
		SSLMode:  getEnv("TEST_DB_SSLMODE", "disable"),
		MaxConns: 4,
	}
}

// SetupTestDB connects through postgres.New so the suite sees the same pool settings
// and PostGIS check as the service. The suite is skipped when no database answers.
func SetupTestDB(t *testing.T) *TestDB {
	cfg := testConfig()
	logger := zaptest.NewLogger(t, zaptest.Level(zap.WarnLevel))

	attempts := getEnvInt("TEST_DB_RETRIES", 3)
	delay := 500 * time.Millisecond

	var (
		pg  *postgres.DB
		err error
	)
	for i := 1; i <= attempts; i++ {
		if pg, err = postgres.New(&cfg, logger); err == nil {
			break
		}
		if i < attempts {
			t.Logf("test database not ready (attempt %d/%d), retrying in %v", i, attempts, delay)
			time.Sleep(delay)
			delay *= 2
		}
	}
	if err != nil {
		t.Skipf("test database %s@%s:%d unavailable: %v", cfg.DBName, cfg.Host, cfg.Port, err)
	}

	return &TestDB{DB: pg.DB, Logger: logger, pg: pg}
}

func (tdb *TestDB) Close() {
	if tdb.pg != nil {
		_ = tdb.pg.Close()
	}
}

// Cleanup empties the network and score tables; a missing schema is not an error
func (tdb *TestDB) Cleanup(ctx context.Context) error {
	var exists bool
	if err := tdb.DB.GetContext(ctx, &exists, `SELECT to_regclass('public.cyclability_score') IS NOT NULL`); err != nil {
		return err
	}
	if !exists {
		return nil
	}
	_, err := tdb.DB.ExecContext(ctx, `TRUNCATE TABLE cyclability_score, edge, all_way RESTART IDENTITY CASCADE`)
	return err
}

func getEnvInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil && value > 0 {
		return value
	}
	return defaultValue
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

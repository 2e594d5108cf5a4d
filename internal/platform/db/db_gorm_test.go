package db

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestBuildDSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "tcp",
			cfg:  Config{Driver: DriverPostgres, User: "u", Password: "p", Name: "closet", Host: "localhost", Port: "5432", SSLMode: "disable"},
			want: "host=localhost user=u password=p dbname=closet sslmode=disable port=5432",
		},
		{
			name: "cloud sql takes precedence over host",
			cfg: Config{Driver: DriverPostgres, User: "u", Password: "p", Name: "closet", Host: "localhost", Port: "5432",
				SSLMode: "disable", InstanceName: "project:region:instance"},
			want: "host=/cloudsql/project:region:instance user=u password=p dbname=closet sslmode=disable",
		},
		{
			name: "database url",
			cfg:  Config{Driver: DriverPostgres, URL: "postgres://u:p@db/closet", Host: "ignored"},
			want: "postgres://u:p@db/closet",
		},
		{
			name: "sqlite",
			cfg:  Config{Driver: DriverSQLite, SQLitePath: "/tmp/closet.db", URL: "postgres://ignored"},
			want: "/tmp/closet.db",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildDSN(tt.cfg))
		})
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_USER", "envuser")
	t.Setenv("DB_PASSWORD", "envpass")
	t.Setenv("DB_NAME", "envdb")
	t.Setenv("DB_HOST", "envhost")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_SSLMODE", "")
	t.Setenv("SQLITE_PATH", "")
	t.Setenv("RUN_MIGRATIONS", "true")

	cfg := LoadConfigFromEnv()

	assert.Equal(t, DriverPostgres, cfg.Driver)
	assert.Equal(t, "envuser", cfg.User)
	assert.Equal(t, "envpass", cfg.Password)
	assert.Equal(t, "envdb", cfg.Name)
	assert.Equal(t, "envhost", cfg.Host)
	assert.Equal(t, "5432", cfg.Port)
	assert.Equal(t, "disable", cfg.SSLMode)
	assert.Equal(t, DefaultSQLitePath, cfg.SQLitePath)
	assert.True(t, cfg.RunMigrations)
}

func TestOpenerFor(t *testing.T) {
	t.Parallel()

	_, err := OpenerFor("mysql")
	assert.Error(t, err)

	open, err := OpenerFor(DriverSQLite)
	require.NoError(t, err)
	db, err := open("file::memory:")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	assert.NoError(t, Migrate(db))
	assert.True(t, db.Migrator().HasTable("clothing_items"))
	assert.True(t, db.Migrator().HasTable("skin_profiles"))
	assert.True(t, db.Migrator().HasTable("users"))
}

func TestConnectWithRetry_SuccessOnFirstTry(t *testing.T) {
	t.Parallel()

	mockDB := &gorm.DB{}
	attempts := 0
	db, err := ConnectWithRetry("test-dsn", 5*time.Second, func(dsn string) (*gorm.DB, error) {
		attempts++
		assert.Equal(t, "test-dsn", dsn)
		return mockDB, nil
	})

	require.NoError(t, err)
	assert.Same(t, mockDB, db)
	assert.Equal(t, 1, attempts)
}

func TestConnectWithRetry_RetriesOnFailure(t *testing.T) {
	// not parallel: waits for two retry intervals

	mockDB := &gorm.DB{}
	attempts := 0
	db, err := ConnectWithRetry("test-dsn", 10*time.Second, func(dsn string) (*gorm.DB, error) {
		attempts++
		if attempts < 3 {
			return nil, errors.New("connection refused")
		}
		return mockDB, nil
	})

	require.NoError(t, err)
	assert.Same(t, mockDB, db)
	assert.Equal(t, 3, attempts)
}

func TestConnectWithRetry_Timeout(t *testing.T) {
	t.Parallel()

	attempts := 0
	_, err := ConnectWithRetry("test-dsn", 100*time.Millisecond, func(dsn string) (*gorm.DB, error) {
		attempts++
		return nil, errors.New("connection refused")
	})

	assert.ErrorContains(t, err, "connection refused")
	assert.Equal(t, 1, attempts)
}

// Package db はgormの接続とスキーマのマイグレーションを提供します。
package db

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "wardrobe_backend/internal/feature/auth/domain/entity"
	clothingadapters "wardrobe_backend/internal/feature/clothing/adapters"
	profileadapters "wardrobe_backend/internal/feature/profile/adapters"
)

// サポートするドライバー
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const (
	// ConnectTimeout は OpenDB での接続リトライ全体のタイムアウトです。
	ConnectTimeout = 60 * time.Second
	// retryInterval は接続試行の間隔です。
	retryInterval = 3 * time.Second
	// DefaultSQLitePath は SQLITE_PATH 未設定時に使用されます。
	DefaultSQLitePath = "wardrobe.db"
)

// Config は環境変数から読み込んだDB設定を保持します。
type Config struct {
	Driver        string
	URL           string // DATABASE_URL、個別設定より優先
	User          string
	Password      string
	Name          string
	Host          string
	Port          string
	SSLMode       string
	InstanceName  string // Cloud SQLインスタンス、/cloudsql/<instance> 経由で接続
	SQLitePath    string
	RunMigrations bool
}

// LoadConfigFromEnv は DB_DRIVER, DATABASE_URL, DB_*, INSTANCE_CONNECTION_NAME,
// SQLITE_PATH, RUN_MIGRATIONS から設定を読み込みます。
func LoadConfigFromEnv() Config {
	cfg := Config{
		Driver:        strings.ToLower(strings.TrimSpace(os.Getenv("DB_DRIVER"))),
		URL:           os.Getenv("DATABASE_URL"),
		User:          os.Getenv("DB_USER"),
		Password:      os.Getenv("DB_PASSWORD"),
		Name:          os.Getenv("DB_NAME"),
		Host:          os.Getenv("DB_HOST"),
		Port:          os.Getenv("DB_PORT"),
		SSLMode:       os.Getenv("DB_SSLMODE"),
		InstanceName:  os.Getenv("INSTANCE_CONNECTION_NAME"),
		SQLitePath:    os.Getenv("SQLITE_PATH"),
		RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",
	}
	if cfg.Driver == "" {
		cfg.Driver = DriverPostgres
	}
	if cfg.Port == "" {
		cfg.Port = "5432"
	}
	if cfg.SSLMode == "" {
		cfg.SSLMode = "disable"
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = DefaultSQLitePath
	}
	return cfg
}

// BuildDSN は cfg.Driver 用の接続文字列を返します。
func BuildDSN(cfg Config) string {
	if cfg.Driver == DriverSQLite {
		return cfg.SQLitePath
	}
	if cfg.URL != "" {
		return cfg.URL
	}
	host, port := cfg.Host, cfg.Port
	if cfg.InstanceName != "" {
		host, port = "/cloudsql/"+cfg.InstanceName, ""
	}
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s sslmode=%s",
		host, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)
	if port != "" {
		dsn += " port=" + port
	}
	return dsn
}

// Opener はDSNからgormの接続を開きます。
type Opener func(dsn string) (*gorm.DB, error)

// OpenerFor はドライバーに対応する Opener を返します。
func OpenerFor(driver string) (Opener, error) {
	switch driver {
	case DriverPostgres:
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		}, nil
	case DriverSQLite:
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
		}, nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}

// ConnectWithRetry は成功するか timeout を過ぎるまで open を繰り返します。
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().Add(retryInterval).After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		slog.Warn("db connect failed, retrying", "error", err, "retry_in", retryInterval)
		time.Sleep(retryInterval)
	}
}

// OpenDB は cfg で接続し、有効な場合はマイグレーションを実行します。
// SQLiteは常にマイグレーションします。
func OpenDB(cfg Config) (*gorm.DB, error) {
	open, err := OpenerFor(cfg.Driver)
	if err != nil {
		return nil, err
	}
	db, err := ConnectWithRetry(BuildDSN(cfg), ConnectTimeout, open)
	if err != nil {
		return nil, err
	}
	slog.Info("db connected", "driver", cfg.Driver)

	// マイグレーション（User, Clothing, Profile）
	if cfg.RunMigrations || cfg.Driver == DriverSQLite {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// Migrate はサービスが使用する全テーブルを作成・更新します。
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&authentity.User{},
		&clothingadapters.ClothingModel{},
		&profileadapters.ProfileModel{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

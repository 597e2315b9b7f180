package db

import (
	"database/sql"
	"fmt"
	"os"

	"app/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect はDBに接続して *gorm.DB と生の *sql.DB を返す。
// migrationとGORMで同じコネクションプールを共有する。
func Connect(cfg config.Config) (*gorm.DB, *sql.DB, error) {
	sqlDB, err := sql.Open("pgx", DSN(cfg))
	if err != nil {
		return nil, nil, fmt.Errorf("open DB: %w", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		return nil, nil, fmt.Errorf("open gorm: %w", err)
	}

	return gormDB, sqlDB, nil
}

// DSN は環境変数からPostgres接続文字列を組み立てる。
// DATABASE_URL があれば最優先で使う。
func DSN(cfg config.Config) string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}

	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresUser,
		cfg.PostgresPassword, cfg.PostgresDB, cfg.PostgresSSLMode,
	)
}

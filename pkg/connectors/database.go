package connectors

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/rapidaai/capture/pkg/commons"
	"github.com/rapidaai/capture/pkg/configs"
)

// DatabaseConnector hands out request-scoped gorm handles.
type DatabaseConnector interface {
	DB(ctx context.Context) *gorm.DB
	Ping(ctx context.Context) error
}

type databaseConnector struct {
	db     *gorm.DB
	logger commons.Logger
}

// NewDatabaseConnector opens the configured driver and applies pool limits.
func NewDatabaseConnector(cfg configs.DatabaseConfig, logger commons.Logger) (DatabaseConnector, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.Postgres.DSN())
	case "sqlite":
		dialector = sqlite.Open(cfg.Sqlite.Path)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("unable to open %s database: %w", cfg.Driver, err)
	}

	if cfg.Driver == "postgres" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("unable to access connection pool: %w", err)
		}
		if cfg.Postgres.MaxOpenConnection > 0 {
			sqlDB.SetMaxOpenConns(cfg.Postgres.MaxOpenConnection)
		}
		if cfg.Postgres.MaxIdealConnection > 0 {
			sqlDB.SetMaxIdleConns(cfg.Postgres.MaxIdealConnection)
		}
	}

	logger.Infof("database connector ready: driver=%s", cfg.Driver)
	return &databaseConnector{db: db, logger: logger}, nil
}

// NewDatabaseConnectorFromDB wraps an existing gorm handle. Tests use this
// to back the connector with sqlmock.
func NewDatabaseConnectorFromDB(db *gorm.DB, logger commons.Logger) DatabaseConnector {
	return &databaseConnector{db: db, logger: logger}
}

func (c *databaseConnector) DB(ctx context.Context) *gorm.DB {
	return c.db.WithContext(ctx)
}

func (c *databaseConnector) Ping(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

package configs

import "fmt"

// PostgresAuthConfig carries database credentials.
type PostgresAuthConfig struct {
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
}

// PostgresConfig is the connection configuration for Postgres.
type PostgresConfig struct {
	Host               string             `mapstructure:"host" validate:"required"`
	Port               int                `mapstructure:"port" validate:"required"`
	DbName             string             `mapstructure:"db_name" validate:"required"`
	Auth               PostgresAuthConfig `mapstructure:"auth" validate:"required"`
	MaxOpenConnection  int                `mapstructure:"max_open_connection"`
	MaxIdealConnection int                `mapstructure:"max_ideal_connection"`
	SslMode            string             `mapstructure:"ssl_mode"`
}

func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Auth.User, c.Auth.Password, c.DbName, c.SslMode)
}

// SqliteConfig points at the on-disk database file.
type SqliteConfig struct {
	Path string `mapstructure:"path"`
}

// DatabaseConfig selects the storage driver. Sqlite serves local and
// single-node deployments; Postgres serves everything else.
type DatabaseConfig struct {
	Driver   string         `mapstructure:"driver" validate:"required,oneof=postgres sqlite"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	Sqlite   SqliteConfig   `mapstructure:"sqlite"`
}

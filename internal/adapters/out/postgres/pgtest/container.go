// Package pgtest starts a throwaway PostgreSQL container with the suggestion schema for
// integration suites.
package pgtest

import (
	"context"
	"time"

	"shipconvenient/internal/adapters/out/postgres/configrepo"
	"shipconvenient/internal/adapters/out/postgres/courierrepo"
	"shipconvenient/internal/adapters/out/postgres/parcelrepo"
	"shipconvenient/internal/adapters/out/postgres/routerepo"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Tables lists every table Migrate creates, in an order TRUNCATE accepts.
const Tables = "products, packages, route_points, routes, config_users, configs, info_users, accounts"

// Database is a running container and a connection to it.
type Database struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
}

// Start runs postgres:15-alpine and migrates the schema.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err := Migrate(db); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Database{Container: container, DB: db}, nil
}

// Migrate creates the tables the repositories read.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&courierrepo.AccountDTO{},
		&courierrepo.InfoUserDTO{},
		&routerepo.RouteDTO{},
		&routerepo.RoutePointDTO{},
		&parcelrepo.PackageDTO{},
		&parcelrepo.ProductDTO{},
		&configrepo.ConfigUserDTO{},
		&configrepo.ConfigDTO{},
	)
}

// Truncate empties every table.
func (d *Database) Truncate() error {
	return d.DB.Exec("TRUNCATE TABLE " + Tables).Error
}

// Terminate stops the container.
func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}

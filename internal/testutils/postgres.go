//go:build integration

package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/linskybing/creative-desk/internal/config/db"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupPostgresForIntegration returns a migrated database. TEST_DB_DSN points at an
// existing server; otherwise a throwaway postgres container is started.
func SetupPostgresForIntegration() (*gorm.DB, func(), error) {
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		sqlDB, err := waitForPostgres(dsn, 1)
		if err != nil {
			return nil, nil, err
		}
		gdb, err := openMigrated(sqlDB)
		if err != nil {
			_ = sqlDB.Close()
			return nil, nil, err
		}
		return gdb, func() { _ = sqlDB.Close() }, nil
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "creative_desk",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	}

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, nil, err
	}

	host, err := pg.Host(ctx)
	if err != nil {
		_ = pg.Terminate(ctx)
		return nil, nil, err
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		_ = pg.Terminate(ctx)
		return nil, nil, err
	}

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/creative_desk?sslmode=disable", host, port.Port())
	sqlDB, err := waitForPostgres(dsn, 10)
	if err != nil {
		_ = pg.Terminate(ctx)
		return nil, nil, err
	}
	gdb, err := openMigrated(sqlDB)
	if err != nil {
		_ = sqlDB.Close()
		_ = pg.Terminate(ctx)
		return nil, nil, err
	}

	cleanup := func() {
		_ = sqlDB.Close()
		_ = pg.Terminate(ctx)
	}
	return gdb, cleanup, nil
}

func waitForPostgres(dsn string, attempts int) (*sql.DB, error) {
	var sqlDB *sql.DB
	var err error
	for i := 0; i < attempts; i++ {
		sqlDB, err = sql.Open("postgres", dsn)
		if err == nil {
			err = sqlDB.Ping()
			if err == nil {
				return sqlDB, nil
			}
			_ = sqlDB.Close()
		}
		time.Sleep(1 * time.Second)
	}
	return nil, err
}

func openMigrated(sqlDB *sql.DB) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(gdb); err != nil {
		return nil, err
	}
	return gdb, nil
}

// ResetTables empties every table between tests.
func ResetTables(gdb *gorm.DB) error {
	return gdb.Exec(`TRUNCATE notifications, activities, collaborators, attachments, comments, tickets, products, departments, users RESTART IDENTITY CASCADE`).Error
}

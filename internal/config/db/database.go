package db

import (
	"fmt"

	"github.com/linskybing/creative-desk/internal/config"
	"github.com/linskybing/creative-desk/internal/domain/activity"
	"github.com/linskybing/creative-desk/internal/domain/department"
	"github.com/linskybing/creative-desk/internal/domain/notification"
	"github.com/linskybing/creative-desk/internal/domain/product"
	"github.com/linskybing/creative-desk/internal/domain/ticket"
	"github.com/linskybing/creative-desk/internal/domain/user"
	"github.com/linskybing/creative-desk/pkg/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

func DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)
}

func Init() {
	logLevel := gormlogger.Warn
	if !config.IsProduction {
		logLevel = gormlogger.Info
	}

	var err error
	DB, err = gorm.Open(postgres.Open(DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := Migrate(DB); err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to migrate database")
	}

	logger.Log.Info().Str("host", config.DbHost).Str("db", config.DbName).Msg("database connected and migrated")
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}

// Migrate creates enum types, tables and secondary indexes. It is idempotent.
func Migrate(gdb *gorm.DB) error {
	createEnums(gdb)

	if err := gdb.AutoMigrate(
		&user.User{},
		&department.Department{},
		&product.Product{},
		&ticket.Ticket{},
		&ticket.Comment{},
		&ticket.Attachment{},
		&ticket.Collaborator{},
		&activity.Activity{},
		&notification.Notification{},
	); err != nil {
		return err
	}

	createIndexes(gdb)
	return nil
}

func createEnums(gdb *gorm.DB) {
	enums := []string{
		`DO $$ BEGIN CREATE TYPE user_role AS ENUM ('admin', 'manager', 'user'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
	}

	for _, enum := range enums {
		if err := gdb.Exec(enum).Error; err != nil {
			logger.Log.Error().Err(err).Str("statement", enum).Msg("failed to create enum")
		}
	}
}

func createIndexes(gdb *gorm.DB) {
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_tickets_status_due ON tickets (status, due_date) WHERE deleted_at IS NULL`,
		`CREATE INDEX IF NOT EXISTS idx_notifications_user_unread ON notifications (user_id) WHERE read = false`,
		`CREATE INDEX IF NOT EXISTS idx_activities_ticket_created ON activities (ticket_id, created_at DESC)`,
	}

	for _, idx := range indexes {
		if err := gdb.Exec(idx).Error; err != nil {
			logger.Log.Error().Err(err).Str("statement", idx).Msg("failed to create index")
		}
	}
}

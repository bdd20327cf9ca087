package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Miraines/StudyPlanner/backend/internal/infra/config"
	"github.com/Miraines/StudyPlanner/backend/internal/infra/db"
	lg "github.com/Miraines/StudyPlanner/backend/internal/infra/log"
	"github.com/Miraines/StudyPlanner/backend/internal/infra/migrate"
)

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "load config")
	}
	zapLog := lg.Must(cfg.LogLevel)
	defer func() { _ = zapLog.Sync() }()

	_, closeDB, err := openAndMigrate(cfg, zapLog)
	if err != nil {
		return err
	}
	defer closeDB()

	cmd.Println("Migrations completed successfully")
	return nil
}

// openAndMigrate connects to DATABASE_URL and brings the schema up to date.
func openAndMigrate(cfg *config.Config, zapLog *zap.Logger) (*gorm.DB, func(), error) {
	gdb, dialect, err := db.Open(cfg.DatabaseURL, zapLog)
	if err != nil {
		return nil, nil, errors.Wrap(err, "connect to database")
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, nil, errors.Wrap(err, "db handle")
	}
	closeDB := func() { _ = sqlDB.Close() }

	if err := migrate.Up(sqlDB, dialect); err != nil {
		closeDB()
		return nil, nil, errors.Wrap(err, "run migrations")
	}
	zapLog.Info("migrations applied", zap.String("dialect", string(dialect)))
	return gdb, closeDB, nil
}

package main

import (
	"fmt"
	"os"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/sekawan/membership-backend/internal/config"
	"github.com/sekawan/membership-backend/internal/migration"
	"github.com/sekawan/membership-backend/pkg/logger"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Runs schema migration and reference data seeding against the configured
// database, then exits. Useful for deploy pipelines that migrate before
// rolling the API.
func main() {
	config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	logger.Init(env)
	log := logger.Get()

	cfg, err := config.Load(fmt.Sprintf("configs/config.%s.yaml", env))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	mysqlCfg, err := mysqldriver.ParseDSN(cfg.Database.GetDSN())
	if err != nil {
		log.Fatal().Err(err).Msg("invalid DSN")
	}
	db, err := gorm.Open(mysql.Open(mysqlCfg.FormatDSN()), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := migration.Run(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	log.Info().Msg("migration complete")
}

package cmd

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/yeremiapane/ecommerce-api/config"
	"github.com/yeremiapane/ecommerce-api/database"
	"github.com/yeremiapane/ecommerce-api/utils"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:           "ecommerce-api",
	Short:         "Customers, catalog items and orders over HTTP",
	SilenceUsage:  true,
	SilenceErrors: true,
	// Tanpa subcommand langsung jalankan server
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		utils.ErrorLogger.Error(err)
		os.Exit(1)
	}
}

// bootstrap loads configuration, configures logging and opens the database.
func bootstrap() (config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	utils.InitLogger(cfg.LogLevel, cfg.LogFormat)

	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(cfg)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, db, nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			utils.ErrorLogger.Errorf("closing database: %v", err)
		}
	}
}

package database

import (
	"fmt"

	"github.com/yeremiapane/ecommerce-api/models"
	"github.com/yeremiapane/ecommerce-api/utils"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema, then verifies every table exists.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	// Verifikasi tabel
	for _, model := range models.All() {
		if !db.Migrator().HasTable(model) {
			return fmt.Errorf("table for %T missing after migration", model)
		}
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err == nil {
			utils.InfoLogger.Printf("Table verified: %s", stmt.Schema.Table)
		}
	}

	utils.InfoLogger.Println("AutoMigrate completed.")
	return nil
}

package database

import (
	_ "embed"
	"fmt"
	"log"

	"github.com/caffeine-junky/jobconnect/internal/repository"

	"gorm.io/gorm"
)

//go:embed schema.sql
var schemaSQL string

// Migrate creates the schema. PostgreSQL gets the full schema with PostGIS,
// full-text and exclusion constraints; other dialects get AutoMigrate.
func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		if err := db.AutoMigrate(repository.Models()...); err != nil {
			return fmt.Errorf("auto migrate: %w", err)
		}
		log.Println("migrate dialect=sqlite status=ok")
		return nil
	}

	if err := db.Exec(schemaSQL).Error; err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	log.Println("migrate dialect=postgres status=ok")
	return nil
}

package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
	"p9e.in/sparkle/models"
)

// Migrations applies schema migrations in order.
func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "29082026_create_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Report{}, &models.Invoice{},
					&models.BankAccount{}, &models.Preset{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("reports", "invoices", "bank_accounts", "presets")
			},
		},
	})
	return m.Migrate()
}

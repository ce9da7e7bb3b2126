package migration

import (
	"Food-Expiry-Tracker/entities"
	"fmt"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.FoodItem{}); err != nil {
		return fmt.Errorf("error migrating food item database: %w", err)
	}

	fmt.Println("Database migration complete")
	return nil
}

package migration

import (
	"fmt"
	"log"

	"supplier-portal-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Ingredient{}); err != nil {
		log.Fatalf("Error migrating ingredient database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.QualityModel{}); err != nil {
		log.Fatalf("Error migrating quality model database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ModelAssignment{}); err != nil {
		log.Fatalf("Error migrating model assignment database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.SupplierAssignment{}); err != nil {
		log.Fatalf("Error migrating supplier assignment database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Submission{}); err != nil {
		log.Fatalf("Error migrating submission database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.BatchResult{}); err != nil {
		log.Fatalf("Error migrating batch result database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}

package storage

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"backend/apperrors"
	"backend/models"
)

var gormDB *gorm.DB

// InitGormDB initializes the GORM connection used by the repositories.
func InitGormDB() (*gorm.DB, error) {
	godotenv.Load()

	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	if user == "" || dbname == "" || host == "" || port == "" {
		return nil, apperrors.Configuration("database connection settings missing (DB_USER, DB_NAME, DB_HOST, DB_PORT)")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Europe/Paris",
		host, user, password, dbname, port)

	var err error
	gormDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Warn),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindConfiguration, err, "failed to connect to database with GORM")
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindConfiguration, err, "failed to get underlying sql.DB")
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	return gormDB, nil
}

// GetGormDB returns the GORM database instance
func GetGormDB() *gorm.DB {
	return gormDB
}

// AutoMigrate creates or updates the schema for every persisted table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserGorm{},
		&models.ProjectGorm{},
		&models.ChantierGorm{},
		&models.QuoteGorm{},
		&models.InvoiceGorm{},
		&models.ProductGorm{},
		&models.DelegateGorm{},
		&models.OrganizationSettingsGorm{},
	)
}

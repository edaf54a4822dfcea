package database

import (
	"log"
	"os"
	"time"

	"gamevault/backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect initializes the database connection and runs migrations.
func Connect(dsn string) {
	var err error

	// Configure GORM logger
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  true,                   // Enable color
		},
	)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: customLogger,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established.")

	// Run migrations
	err = DB.AutoMigrate(Models()...)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Database migrated successfully.")
}

// Models lists every table owned by this service, in migration order.
func Models() []any {
	return []any{
		&models.Game{},
		&models.Person{},
		&models.Company{},
		&models.Character{},
		&models.ExternalID{},
		&models.Tag{},
		&models.TagLink{},
		&models.GamePersonLink{},
		&models.GameCompanyLink{},
		&models.GameCharacterLink{},
		&models.CharacterPersonLink{},
		&models.Collection{},
		&models.CollectionLink{},
	}
}

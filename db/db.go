package db

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/RoyPushkar-kun/Library-Management-System/config"
	"github.com/RoyPushkar-kun/Library-Management-System/models"
)

func ConnectDB(cfg config.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := Migrate(conn); err != nil {
		log.Fatal("Failed to migrate models: ", err)
	}
	log.Println("Database connected")
	return conn
}

func Migrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(&models.Book{}, &models.User{}, &models.Issue{}); err != nil {
		return err
	}

	// open issues are the hot filter for returns, deletes and reports
	if err := conn.Exec(fmt.Sprintf(`
	  CREATE INDEX IF NOT EXISTS %s_open_by_book
	  ON %s (book_id)
	  WHERE return_date IS NULL;
	`, models.IssueTable, models.IssueTable)).Error; err != nil {
		return err
	}

	if err := conn.Exec(fmt.Sprintf(`
	  CREATE INDEX IF NOT EXISTS %s_open_by_user
	  ON %s (user_id)
	  WHERE return_date IS NULL;
	`, models.IssueTable, models.IssueTable)).Error; err != nil {
		return err
	}

	return nil
}

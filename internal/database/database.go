package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/flamesResource6/studyboard/internal/entities"
)

// Database wraps the gorm connection. A nil *Database is valid and means no
// database is configured: every store method on it returns ErrUnavailable,
// which is what puts the API into fallback mode.
type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto-migrate all entities
	err = db.AutoMigrate(
		&entities.Subject{},
		&entities.Chapter{},
		&entities.Topic{},
		&entities.Note{},
		&entities.MCQ{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping reports whether the underlying connection is reachable.
func (d *Database) Ping() error {
	if err := d.available(); err != nil {
		return err
	}
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Tables lists the user tables present in the database, the sqlite
// equivalent of a document store's collection listing.
func (d *Database) Tables() ([]string, error) {
	if err := d.available(); err != nil {
		return nil, err
	}
	var tables []string
	err := d.DB.
		Raw("SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name").
		Scan(&tables).Error
	if err != nil {
		return nil, err
	}
	return tables, nil
}

func (d *Database) available() error {
	if d == nil || d.DB == nil {
		return ErrUnavailable
	}
	return nil
}

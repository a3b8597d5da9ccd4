package configs

import (
	"fmt"
	"strings"

	"foodorder/entity"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectionDB opens the store for the configured driver. SQLite runs with
// foreign keys on and a single connection.
func ConnectionDB(driver, source string) (*gorm.DB, error) {
	gcfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}

	var (
		db  *gorm.DB
		err error
	)
	switch driver {
	case "sqlite", "":
		db, err = gorm.Open(sqlite.Open(sqliteDSN(source)), gcfg)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	case "postgres":
		db, err = gorm.Open(postgres.Open(source), gcfg)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
	return db, nil
}

func sqliteDSN(source string) string {
	if strings.Contains(source, "_foreign_keys") {
		return source
	}
	sep := "?"
	if strings.Contains(source, "?") {
		sep = "&"
	}
	return source + sep + "_foreign_keys=on"
}

// SetupDatabase migrates the schema.
func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Account{},
		&entity.Restaurant{},
		&entity.MenuItem{},
		&entity.RestaurantEmployee{},
		&entity.Order{},
		&entity.OrderItem{},
	)
}

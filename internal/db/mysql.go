package db

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"devconnector/internal/model"
)

// NewMySQL returns a connected GORM DB instance. Driver errors are translated so
// repositories can match gorm.ErrDuplicatedKey.
func NewMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}

// MigrateMySQL creates or updates the schema. With reset set, existing tables are
// dropped first.
func MigrateMySQL(db *gorm.DB, reset bool, log *zap.Logger) error {
	models := []interface{}{&model.User{}, &model.Profile{}, &model.Post{}}
	if reset {
		log.Warn("RESET_DB enabled: dropping tables")
		if err := db.Migrator().DropTable(models...); err != nil {
			return fmt.Errorf("drop tables: %w", err)
		}
	}
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

package db

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"devconnector/internal/config"
	"devconnector/internal/repository"
	"devconnector/internal/repository/mongostore"
)

// Open connects the configured backend, prepares its schema and returns the
// repositories with a function releasing the connection. On error nothing is
// left open.
func Open(ctx context.Context, cfg *config.Config, reset bool, log *zap.Logger) (*repository.Store, func(), error) {
	if cfg.DBDriver == config.DriverMySQL {
		gormDB, err := NewMySQL(cfg.MySQLDSN)
		if err != nil {
			return nil, nil, err
		}
		if err := MigrateMySQL(gormDB, reset, log); err != nil {
			CloseMySQL(gormDB, log)
			return nil, nil, err
		}
		log.Info("connected to mysql")
		return repository.NewGormStore(gormDB), func() { CloseMySQL(gormDB, log) }, nil
	}

	client, err := NewMongo(ctx, cfg.MongoURI)
	if err != nil {
		return nil, nil, err
	}
	database := client.Database(cfg.MongoDatabase)
	if err := MigrateMongo(ctx, database, reset, log); err != nil {
		DisconnectMongo(client, log)
		return nil, nil, err
	}
	log.Info("connected to mongodb", zap.String("database", cfg.MongoDatabase))
	return mongostore.NewStore(database), func() { DisconnectMongo(client, log) }, nil
}

// CloseMySQL releases the connection pool behind db.
func CloseMySQL(db *gorm.DB, log *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Warn("mysql pool unavailable", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Warn("close mysql", zap.Error(err))
	}
}

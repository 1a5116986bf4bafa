package database

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/config"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/pkg/database"
)

const serviceName = "campuslearn"

var (
	DB      *gorm.DB
	RedisDB *database.RedisClient // nil unless redis.enabled
)

// InitDatabase opens the configured store, migrates every table and, when
// enabled, connects to redis. It panics on failure like the rest of startup.
func InitDatabase() {
	databaseConf := config.Conf.Database

	logLevel := databaseConf.LogLevel
	if logLevel == "" {
		logLevel = "warn"
	}

	var err error
	switch databaseConf.Driver {
	case "sqlite":
		DB, err = database.InitSQLite(&database.SQLiteConfig{
			ServiceName: serviceName,
			DSN:         databaseConf.Path,
			LogLevel:    logLevel,
		})
	default:
		DB, err = database.InitPostgres(&database.PostgresConfig{
			ServiceName:     serviceName,
			Username:        databaseConf.Username,
			Password:        databaseConf.Password,
			Host:            databaseConf.Host,
			Port:            databaseConf.Port,
			Database:        databaseConf.Database,
			SSLMode:         databaseConf.SSLMode,
			LogLevel:        logLevel,
			MaxIdleConns:    databaseConf.MaxIdleConns,
			MaxOpenConns:    databaseConf.MaxOpenConns,
			ConnMaxLifetime: time.Duration(databaseConf.MaxLifetime) * time.Second,
		})
	}
	if err != nil {
		panic(fmt.Errorf("init %s: %w", databaseConf.Driver, err))
	}

	if err := model.InitTable(DB); err != nil {
		panic(err)
	}

	redisConf := config.Conf.Redis
	if !redisConf.Enabled {
		return
	}
	RedisDB, err = database.InitRedis(&database.RedisConfig{
		ServiceName: serviceName,
		Host:        redisConf.Host,
		Port:        redisConf.Port,
		Password:    redisConf.Password,
		DB:          redisConf.DB,
		PoolSize:    redisConf.PoolSize,
	})
	if err != nil {
		panic(err)
	}
}

// Close releases the database pool and the redis client
func Close() {
	if DB != nil {
		if sqlDB, err := DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
	if RedisDB != nil {
		RedisDB.Close()
	}
}

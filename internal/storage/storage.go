package storage

import (
	"sync"
	"time"

	"workforce/internal/config"
	"workforce/internal/util/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

var (
	once sync.Once
	db   *gorm.DB
)

func GetDb() *gorm.DB {
	once.Do(connect)
	return db
}

func connect() {
	log := logger.GetLogger()
	dsn := config.GetEnv().DatabaseDsn

	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gorm_logger.Default.LogMode(gorm_logger.Silent),
		})
		if err == nil {
			break
		}

		log.Warn("failed to connect to database, retrying",
			"attempt", i, "maxAttempts", maxAttempts, "error", err)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Error("could not connect to database", "error", err)
		panic(err)
	}
}

// Migrate applies the schema for every registered model. Unique indexes on
// usernames, emails, skill names, category names, project codes and the
// (employee, skill, band) mapping key are declared on the models themselves,
// so uniqueness is enforced by the database rather than by pre-checks alone.
func Migrate(models ...any) error {
	return GetDb().AutoMigrate(models...)
}

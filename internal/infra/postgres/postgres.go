package postgres

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/huhyoujung/footballlog-sub002/config"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func DSN(cfg config.PG) string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s port=%s database=%s sslmode=disable",
		cfg.Host,
		cfg.User,
		cfg.Password,
		cfg.Port,
		cfg.Database,
	)
}

func EstablishDatabaseConnection(cfg config.PG) *gorm.DB {
	return Open(DSN(cfg))
}

func Open(dsn string) *gorm.DB {
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         customLogger,
		TranslateError: true,
	})
	if err != nil {
		panic(err)
	}

	return db
}

// SharedSQLX exposes the pool of a gorm connection to sqlx queries.
func SharedSQLX(db *gorm.DB) *sqlx.DB {
	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}

	return sqlx.NewDb(sqlDB, "pgx")
}

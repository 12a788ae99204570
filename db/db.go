package db

import (
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	mysqldriver "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"
)

var Instance *gorm.DB

// Options selects the database. MySQL wins over PostgreSQL, SQLite is the fallback.
type Options struct {
	MySQLDSN    string
	PostgresDSN string
	SQLiteFile  string
}

func (o Options) dialector() gorm.Dialector {
	if o.MySQLDSN != "" {
		if cfg, err := mysql.ParseDSN(o.MySQLDSN); err == nil {
			log.Info().Str("addr", cfg.Addr).Str("db", cfg.DBName).Msg("using MySQL")
		}
		return mysqldriver.Open(o.MySQLDSN)
	}
	if o.PostgresDSN != "" {
		log.Info().Msg("using PostgreSQL")
		return postgres.Open(o.PostgresDSN)
	}
	log.Info().Str("file", o.SQLiteFile).Msg("using SQLite")
	return sqlite.Open(o.SQLiteFile)
}

func Init(opts Options) error {
	db, err := gorm.Open(opts.dialector(), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Warn),
	})
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if opts.MySQLDSN == "" && opts.PostgresDSN == "" {
		// SQLite allows a single writer
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(20)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(45 * time.Minute)
	}
	Instance = db
	return nil
}

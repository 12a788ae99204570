package main

import (
	"strings"

	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"grandywoods/auth"
	"grandywoods/config"
	"grandywoods/db"
	"grandywoods/models"
	"grandywoods/storage"
	"grandywoods/utils"
	"grandywoods/web"
)

func main() {
	utils.SetupLogger(config.LOG_LEVEL, config.DEBUG_MODE)
	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := db.Init(db.Options{
		MySQLDSN:    config.MYSQL_DSN,
		PostgresDSN: config.POSTGRES_DSN,
		SQLiteFile:  config.SQLITE_FILE,
	}); err != nil {
		log.Fatal().Err(err).Msg("cannot connect to the database")
	}
	if err := models.Init(db.Instance); err != nil {
		log.Fatal().Err(err).Msg("cannot migrate the database")
	}
	if err := storage.Init(); err != nil {
		log.Fatal().Err(err).Msg("cannot set up media storage")
	}
	if err := auth.InitAdmin(config.ADMIN_USERNAME, config.ADMIN_PASSWORD, config.ADMIN_PASSWORD_HASH); err != nil {
		log.Fatal().Err(err).Msg("invalid admin credentials")
	}

	router := web.NewRouter()

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		log.Info().Str("address", config.BIND_ADDRESS).Msg("listening")
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatal().Err(err).Msg("server stopped")
}

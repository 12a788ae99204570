package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	TLS_DOMAINS          = "" // e.g. "grandywoods.com,www.grandywoods.com"
	BIND_ADDRESS         = "0.0.0.0:8080"
	DEBUG_MODE           = false
	LOG_LEVEL            = "info"
	MYSQL_DSN            = "" // MySQL will be used if this is set
	POSTGRES_DSN         = "" // PostgreSQL will be used if MYSQL_DSN is not set and this is
	SQLITE_FILE          = "grandywoods.db"
	MEDIA_ROOT           = "media"   // Disk location of uploaded files
	MEDIA_URL            = "/media/" // URL prefix the uploaded files are served from
	S3_BUCKET            = ""        // Media goes to S3 instead of MEDIA_ROOT if this is set
	S3_REGION            = "us-east-1"
	S3_ENDPOINT          = "" // For S3 compatible providers
	S3_KEY               = ""
	S3_SECRET            = ""
	S3_PUBLIC_URL        = "" // e.g. "https://cdn.grandywoods.com/", defaults to the bucket URL
	SESSION_SECRET       = "change me, this is not a secret"
	SESSION_MAX_AGE      = 14 * 86400 // 2 weeks
	ADMIN_USERNAME       = "admin"
	ADMIN_PASSWORD       = ""
	ADMIN_PASSWORD_HASH  = "" // bcrypt, takes precedence over ADMIN_PASSWORD
	UPLOAD_REQUIRES_AUTH = true
	MAX_UPLOAD_MB        = 20
	THUMB_SIZE           = 600
	CORS_ORIGINS         = "*"
)

func init() {
	// A missing .env is fine, the environment may already be set up
	_ = godotenv.Load()

	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvString("LOG_LEVEL", &LOG_LEVEL)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("POSTGRES_DSN", &POSTGRES_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("MEDIA_ROOT", &MEDIA_ROOT)
	readEnvString("MEDIA_URL", &MEDIA_URL)
	readEnvString("S3_BUCKET", &S3_BUCKET)
	readEnvString("S3_REGION", &S3_REGION)
	readEnvString("S3_ENDPOINT", &S3_ENDPOINT)
	readEnvString("S3_KEY", &S3_KEY)
	readEnvString("S3_SECRET", &S3_SECRET)
	readEnvString("S3_PUBLIC_URL", &S3_PUBLIC_URL)
	readEnvString("SESSION_SECRET", &SESSION_SECRET)
	readEnvInt("SESSION_MAX_AGE", &SESSION_MAX_AGE)
	readEnvString("ADMIN_USERNAME", &ADMIN_USERNAME)
	readEnvString("ADMIN_PASSWORD", &ADMIN_PASSWORD)
	readEnvString("ADMIN_PASSWORD_HASH", &ADMIN_PASSWORD_HASH)
	readEnvBool("UPLOAD_REQUIRES_AUTH", &UPLOAD_REQUIRES_AUTH)
	readEnvInt("MAX_UPLOAD_MB", &MAX_UPLOAD_MB)
	readEnvInt("THUMB_SIZE", &THUMB_SIZE)
	readEnvString("CORS_ORIGINS", &CORS_ORIGINS)

	if !strings.HasPrefix(MEDIA_URL, "/") {
		MEDIA_URL = "/" + MEDIA_URL
	}
	if !strings.HasSuffix(MEDIA_URL, "/") {
		MEDIA_URL += "/"
	}
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = i
}

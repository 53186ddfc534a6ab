package config

import (
	"os"
	"strings"
)

type MySQLConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type Config struct {
	Addr             string
	CORSAllowOrigins string
	PublicOrigin     string
	StorageDriver    string // "mysql" (default) or "memory" for throwaway demo deployments
	MySQL            MySQLConfig
}

func Load() Config {
	port := getenv("PORT", "8080")

	return Config{
		Addr:             ":" + port,
		CORSAllowOrigins: os.Getenv("CORS_ALLOW_ORIGINS"),
		PublicOrigin:     getenv("PUBLIC_ORIGIN", "https://susanalopezstudio.com"),
		StorageDriver:    strings.ToLower(getenv("STORAGE_DRIVER", "mysql")),
		MySQL: MySQLConfig{
			Host:     getenv("DB_HOST", "127.0.0.1"),
			Port:     getenv("DB_PORT", "3306"),
			User:     getenv("DB_USER", "susanalopez"),
			Password: getenv("DB_PASSWORD", "susanalopez"),
			DBName:   getenv("DB_NAME", "susanalopez"),
		},
	}
}

func getenv(key, fallback string) string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	return val
}

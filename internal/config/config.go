package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		Database
		GoogleBooks
		Lookup
		Transfer
	}

	Database struct {
		Path string
	}
	GoogleBooks struct {
		APIKey string
	}
	Lookup struct {
		Timeout time.Duration
	}
	Transfer struct {
		ExportPath string
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("google_books_api_key", "")
	v.SetDefault("lookup_timeout", "10s")
	v.SetDefault("export_path", DefaultExportPath)

	return &Config{
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		GoogleBooks: GoogleBooks{
			APIKey: v.GetString("GOOGLE_BOOKS_API_KEY"),
		},
		Lookup: Lookup{
			Timeout: v.GetDuration("LOOKUP_TIMEOUT"),
		},
		Transfer: Transfer{
			ExportPath: v.GetString("EXPORT_PATH"),
		},
	}
}

package config

// Default paths
const (
	// DefaultDatabasePath is the default path for the book database
	DefaultDatabasePath = "./books.db"

	// DefaultExportPath is the default path for CSV exports
	DefaultExportPath = "./books.csv"
)

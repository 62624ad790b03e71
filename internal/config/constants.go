package config

// Default paths for databases
const (
	// DefaultDatabasePath is the default location of the application database
	DefaultDatabasePath = "./books.db"
)

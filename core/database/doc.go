// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections
// based on the application's configuration.
//
// # Connect
//
// Connect opens the configured driver and pings it. The database is optional: it backs
// the database session store and nothing else, so callers log a failed connection and
// carry on.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table on either dialect. The server integrity
// check compares them against the GORM models of the packages that own the tables.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Database connection failed", zap.Error(err))
//	}
//
//	columns, err := database.GetTableColumns(db, "sessions")
package database

// Package database handles database connections.
//
// It wraps GORM to configure MySQL connections (the production driver) and
// SQLite connections (local development and tests, including the in-memory
// ":memory:" DSN) from the application's configuration.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database

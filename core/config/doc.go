// Package config provides configuration management for craft-planner.
//
// It utilizes Viper for loading configuration from environment variables and an optional
// .env file. Defaults come from the `default` struct tags of every section.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP port and API key
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Database: MySQL or SQLite connection details
//   - Catalog: recipe source (builtin, file, storage) and cache TTL
//   - Session: session store (memory, database, redis)
//   - Calculator: recursion limit and result cache
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Catalog.Source)
package config

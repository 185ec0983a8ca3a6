// Package config provides configuration management for GradeVault.
//
// It utilizes Viper for loading configuration from environment variables
// and a .env file (loaded via godotenv), with defaults declared as struct
// tags on the section configs.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP server settings (port, CORS origins, token secret/TTLs)
//   - Database: MySQL/SQLite connection details
//   - Storage: S3/MinIO settings for the pre-restore archive
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config

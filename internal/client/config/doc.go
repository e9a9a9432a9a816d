// Package config loads runtime configuration for the SkillSwap CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file in the working directory, if present (see loadDotEnv).
//     Values already set in the process environment are not overridden.
//  3. Environment variables with the SKILLSWAP_ prefix (see parseEnv).
//  4. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  5. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d duration    artificial latency of sign-in, refresh and post (e.g. 1s, 0)
//	-catalog name  catalog backend: sqlite or memory
//	-dsn string    SQLite DSN of the catalog store
//	-log-level s   debug, info, warn or error
//
// # Environment
//
//	SKILLSWAP_DELAY, SKILLSWAP_CATALOG, SKILLSWAP_CATALOG_DSN, SKILLSWAP_LOG_LEVEL
//
// # JSON schema
//
//	{
//	  "delay": "1s",
//	  "catalog": "sqlite",
//	  "catalog_dsn": ":memory:",
//	  "log_level": "info"
//	}
package config

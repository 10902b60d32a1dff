// Package config loads runtime configuration for credctl.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment: CREDCTL_ADDR, CREDCTL_DATABASE_DSN, CREDCTL_HASH_ALGORITHM,
//     CREDCTL_TIMEOUT and SALT (bcrypt cost).
//  4. Per-command flags, applied by the cli package.
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "database_dsn": "postgres://...",
//	  "hash_algorithm": "bcrypt",
//	  "bcrypt_cost": 12,
//	  "request_timeout": "10s"
//	}
package config

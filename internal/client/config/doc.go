// Package config loads runtime configuration for the session keeper CLI.
//
// Sources, later ones overriding earlier ones:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. SESSIONKEEPER_CLIENT_* environment variables.
//  4. Command-line flags:
//
//	-a string   address:port of the gRPC endpoint
//	-d string   path of the local sqlite database
//	-t int      per-request timeout (seconds)
//	-i int      online status check interval (seconds)
//
// Durations in JSON accept "3s" as well as integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "database_path": "session.db",
//	  "request_timeout": "10s",
//	  "online_check_interval": "3s"
//	}
package config

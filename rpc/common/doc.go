// Package common provides the configuration and logging utilities shared by
// the client and the command line interface.
//
// The package focuses on:
//   - Configuration structure for the connection to the store
//   - Custom logging implementation integrated with Dragonboat's logger package
//
// Key Components:
//
//   - ClientConfig: Connection parameters (endpoint, credentials, database,
//     timeouts, pool size, retries), the codec bound to keys created by the CLI
//     and the log level. Validate reports unusable values, String renders the
//     configuration in sections for the --verbose output of the CLI.
//
//   - Logger: Custom logging implementation that plugs into Dragonboat's
//     logger factory (github.com/lni/dragonboat/v4/logger) and provides a
//     consistent "LEVEL | package | message" format for all ookv/* loggers.
package common

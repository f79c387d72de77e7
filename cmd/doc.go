// Package cmd implements the command-line interface of ooKV. Every remote data
// type has its own command group, each subcommand maps onto one operation of
// the matching wrapper in lib/collection.
//
// The package is organized into several subpackages:
//
//   - kv: Command groups for the data types (key, str, counter, list, set,
//     zset, hash) and the perf benchmark
//   - util: Shared utilities for command-line processing, configuration and
//     the shared client connection (internal use)
//
// All connection settings can be given as flags or as environment variables
// with the OOKV_ prefix (e.g. OOKV_ENDPOINT, OOKV_PASSWORD). Values are read
// from .env and .env.local as well.
//
// Examples:
//
//	ookv str set greeting hello --codec string
//	ookv counter incr visits 5
//	ookv list rpush queue 1 2 3 --codec int
//	ookv hash set user:1 profile '{"name":"ada"}' --codec json
//	ookv perf --threads 20 --skip str-set-large
//
// See ookv --help for a list of all commands.
package cmd

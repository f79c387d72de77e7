// Package rpc holds everything ooKV needs to talk to a remote store.
//
// The package is organized into two subpackages:
//
//   - common: The client configuration (ClientConfig) and the logger factory
//     shared by all ooKV packages.
//
//   - client: Construction of the go-redis client from a ClientConfig and the
//     MetricsHook that records the latency and error counts of every command.
//
// The wrappers in lib/collection accept any redis.Cmdable, so a client built
// here, a pipeline or a transaction can all be used to back them.
package rpc

// Package config loads, merges, and validates the configuration of the
// peoplescope server and terminal client.
//
// Values are assembled from several sources; a later source only fills
// fields the earlier ones left at their zero value:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// [GetStructuredConfig] is the entry point for the server process;
// [GetClientConfig] derives the client-side view (adapter address, local
// cache, background workers) from the same merged configuration.
package config

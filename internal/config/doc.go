// Package config provides configuration loading, merging, and validation
// facilities for the gateway and resolver binaries.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win, field by field):
//  1. Environment variables (a .env file is loaded first when present)
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetGatewayConfig] for the gateway (api1)
// runtime and [GetResolverConfig] for the resolver (api2) runtime; both
// project per-binary views from the shared [StructuredConfig].
package config

// Package shared provides common utilities used across the Stablecoin SDK
// for Go. It includes cluster name normalization, RPC client construction,
// operator environment variable loading, and keypair parsing helpers.
//
// This package is typically used internally by other SDK packages but is
// also available for direct use when building custom tooling against the
// Solana JSON-RPC API.
//
// # Environment Variables
//
// The shared package supports loading operator credentials from environment
// variables or .env files. Variables already present in the environment are
// never overridden by a .env file.
package shared

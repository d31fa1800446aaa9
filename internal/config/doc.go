// Package config provides configuration loading, merging, and validation
// facilities for ghpocket, plus the profile store that persists the local
// user identity.
//
// Runtime configuration is assembled from multiple sources in the following
// priority order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetClientConfig]. The user profile is handled
// separately by [ProfileStore], which implements the load-or-create
// first-run flow.
package config

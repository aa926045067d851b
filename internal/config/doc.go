// Package config provides configuration loading, merging, and validation
// facilities for gallerysync.
//
// Configuration is assembled from multiple sources in the following
// priority order (later sources fill fields the earlier ones left zero):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetClientConfig] for the gallery client and
// [GetServerConfig] for the cloud stub server.
package config

// Package server runs the cloud stub's HTTP transport, including
// startup, signal handling, and graceful shutdown.
package server

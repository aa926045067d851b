// SPDX-License-Identifier: Apache-2.0

// Package client implements the interactive gallery application
// runtime.
//
// It wires the terminal UI, the sync engine, and the background
// auto-sync job into a single process lifecycle.
package client

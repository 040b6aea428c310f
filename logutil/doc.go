// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil provides a structured logging abstraction built on top of slog.
//
// This package provides a simple, consistent logging interface for the sandbox
// tooling. It wraps the standard library's slog package with convenience
// functions and environment-aware configuration.
//
// # Basic Usage
//
//	// Initialize logging (typically in main.go)
//	logutil.SetupLogger(debug, structured)
//
//	// Log messages at different levels
//	logutil.Debug("created directory", "path", dir)
//	logutil.Info("sandbox ready", "root", root)
//	logutil.Warn("root is world-writable", "root", root)
//	logutil.Error("cleanup failed", "error", err)
//
// # Debug Mode
//
// Debug logging can be enabled in two ways:
//   - Pass debug=true to SetupLogger
//   - Set AZD_SANDBOX_DEBUG=true environment variable
//
// # Structured Logging
//
// When structured=true is passed to SetupLogger, logs are output as JSON:
//
//	{"time":"2024-01-15T10:30:00Z","level":"DEBUG","msg":"created directory","path":"/out/test-1"}
//
// Otherwise, logs use a human-readable text format:
//
//	time=2024-01-15T10:30:00Z level=DEBUG msg="created directory" path=/out/test-1
package logutil

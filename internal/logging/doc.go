// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

// Package logging provides centralized zerolog-based structured logging for Mediarec.
//
// # Overview
//
// The package provides:
//   - A global zerolog logger with package-level Debug/Info/Warn/Error/Fatal helpers
//   - JSON output for production, console output for development
//   - Context-aware logging with request and correlation ID propagation
//   - An slog adapter so the suture supervisor logs through zerolog
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  cfg.Logging.Level,
//	    Format: cfg.Logging.Format,
//	    Caller: cfg.Logging.Caller,
//	})
//
//	logging.Info().Int("records", c.Len()).Msg("Corpus ready")
//	logging.Ctx(r.Context()).Error().Err(err).Msg("Recommendation failed")
//
// # Configuration
//
// Environment Variables (read by internal/config):
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false (default: false)
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send(), and prefer structured
// fields to formatted messages:
//
//	logging.Info().Str("title", title).Int("k", k).Msg("Ranked")  // Correct
//	logging.Info().Msgf("ranked %s k=%d", title, k)               // Avoid
package logging

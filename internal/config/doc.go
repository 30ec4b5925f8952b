// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

/*
Package config provides centralized configuration management for Mediarec.

Configuration is loaded with Koanf v2 from three layers, later layers
overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: CONFIG_PATH, or the first of DefaultConfigPaths that exists
 3. Environment variables, mapped explicitly to config paths

Comma-separated environment values are split for slice fields such as
security.cors_origins. The result is validated before it is returned.

# Configuration Structure

  - ServerConfig: HTTP listener (host, port, timeout, environment)
  - CorpusConfig: records and embeddings artifact locations
  - RecommendConfig: k bounds, facet matching mode, query deadline, response cache
  - SecurityConfig: rate limiting and CORS
  - LoggingConfig: zerolog level, format and caller reporting

# Example config.yaml

	server:
	  port: 8501
	corpus:
	  records_path: /data/media.parquet
	  embeddings_path: /data/embeddings.npy
	recommend:
	  default_k: 5
	  max_k: 20
	  cache_size: 1024
	logging:
	  level: info
	  format: json

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatalf("Failed to load config: %v", err)
	}
	addr := cfg.Server.Addr()
*/
package config

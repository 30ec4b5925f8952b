// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

/*
Package main is the entry point for the mediarec server.

Mediarec serves content-based recommendations over a fixed media catalogue.
Given a title it ranks the rest of the catalogue by cosine similarity of
precomputed embeddings, then narrows the ranked list with metadata filters.

# Startup

 1. Configuration: koanf v2 from defaults, an optional YAML file and the environment
 2. Logging: zerolog, JSON or console
 3. Corpus: records and embeddings are loaded and validated; any error is fatal
 4. Recommendation service: ranker, filter chain, facets, title index and response cache
 5. Supervisor tree: suture v4 running the HTTP server and the cache janitor

The listener opens only after the corpus is loaded, so every accepted
request has a recommendation service behind it.

# Configuration

	RECORDS_PATH=/data/media.parquet      # required
	EMBEDDINGS_PATH=/data/embeddings.npy  # required
	HTTP_PORT=8501
	DEFAULT_K=5 MAX_K=20
	CACHE_SIZE=1024 CACHE_TTL=5m
	LOG_LEVEL=info LOG_FORMAT=json

A YAML file named by CONFIG_PATH supplies the same keys; environment
variables win.

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server stops accepting
connections and drains in-flight requests for up to 10 seconds.

# Example

	export RECORDS_PATH=./data/kdrama.json
	export EMBEDDINGS_PATH=./data/embeddings.npy
	./mediarec

	curl 'localhost:8501/api/v1/recommendations?title=Signal&genres=Thriller&k=10'
*/
package main

// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

/*
Package services provides suture.Service wrappers for mediarec components.

Each wrapper implements suture's Service interface and fmt.Stringer, so the
supervisor can restart it and name it in events:

	type Service interface {
	    Serve(ctx context.Context) error
	}

HTTPServerService:
  - Runs ListenAndServe until the context is canceled
  - Drains connections with Shutdown under a bounded timeout
  - Returns listen errors so the supervisor restarts it

CacheJanitorService:
  - Calls CleanupCache on a ticker
  - Publishes cache_entries and counts expirations in cache_evictions_total

Both log through zerolog with a component field.
*/
package services

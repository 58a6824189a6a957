// Package repositories implements SQLite persistence for the client's
// durable state.
//
// Two repositories back the two local tables:
//   - [SessionRepository] : the single persisted session row, the durable
//     analog of the browser's local storage
//   - [TitleCacheRepository] : resolved display metadata for collection
//     entries, deduplicated on (media_type, tmdb_id)
//
// The server remains the source of truth for everything stored here; the
// cache only saves repeat lookups and the session only survives restarts.
package repositories

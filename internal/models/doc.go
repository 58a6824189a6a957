// Package models defines domain entities for the CineVault terminal client.
//
// The package contains two categories of types:
//
// 1. Tracker state: data owned by the CineVault backend
//   - [Session] : Current user identity and login flag
//   - [User] : Account record returned by login and profile reads
//   - [InteractionState] : The watched/liked/watchlisted booleans for one title
//   - [Rating] : A half-step star value in [0, 5]
//   - [Collections] : The three named id-lists on the profile page
//
// 2. Catalog metadata: display data proxied from the movie metadata provider
//   - [Title] : Minimal display record (poster row, collection card)
//   - [TitleDetail], [Credits], [WatchProviders], [Video], [ImageSet] : The
//     detail page fan-out slices
//   - [SearchPage] : One page of search results with the reported page count
//
// The server is the source of truth for all tracker state; these types only
// mirror what the backend last reported.
package models

// Package tmdb provides a minimal client for The Movie Database API.
//
// reelscan only needs movie search and detail lookups to compare locally
// extracted vote averages against current TMDB values, so the client covers
// exactly those two endpoints.
package tmdb

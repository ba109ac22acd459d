// Package extract pulls rated titles out of movie metadata dumps.
//
// The source is treated as opaque text, not as a structured document: a
// single shortest-match pattern pairs each "title" field with the nearest
// "vote_average" that follows it, even across line breaks. The pattern does
// not verify that both fields belong to the same logical record; that
// looseness is intentional and callers should not depend on record
// boundaries being respected.
package extract

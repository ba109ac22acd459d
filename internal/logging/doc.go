// Package logging builds the slog loggers used across reelscan.
//
// Two formats are supported: a compact console handler that writes
// timestamp, level, message, and key=value attributes on one line, and a
// JSON handler for machine consumption. Loggers write to stderr (plus an
// optional log file) so report output on stdout stays byte-stable.
package logging

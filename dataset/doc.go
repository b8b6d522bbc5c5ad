// Package dataset loads station and trip records from CSV exports,
// either from local files or over HTTP. It owns all parsing concerns:
// flexible header matching across publisher variants, timestamp parsing
// in a configured time zone, and skip-and-log handling of malformed
// rows. The traffic engine only ever sees fully parsed records.
package dataset

// Package traffic implements the station traffic engine: trips are
// bucketed by minute of day once at load time, and each filter change
// selects a ±60-minute window of trips, aggregates arrival/departure
// counts per station and derives the visual scales the map renderer
// consumes.
//
// The bucket tables are built once and read-only afterwards; every
// query is a pure function of the tables and the selected minute.
package traffic

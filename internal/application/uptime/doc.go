// Package uptime tracks the process start time and derives the values the
// health endpoint reports from it.
//
// The start time is captured once by the entrypoint and handed to NewClock;
// a Clock is immutable afterwards and safe for concurrent use.
package uptime

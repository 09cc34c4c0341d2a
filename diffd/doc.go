// Package diffd serves document comparisons over TCP as JSON-RPC.
//
// Methods:
//
//   - diff/summary: summary counts and percent-different for a pair
//   - diff/unified: the unified form
//   - diff/rows: side-by-side rows
//
// Each request carries the two document names and raw texts; the server
// holds no per-document state, so any number of requests may be in
// flight at once.
package diffd

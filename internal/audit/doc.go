// Package audit records changes made through the nstconf CLI.
//
// Each `settings set`, `settings reset` and `input set` appends one entry
// to a JSON Lines file in the configuration directory:
//
//	<config-dir>/history.jsonl
//
// Each entry contains:
//   - Timestamp (RFC3339 with microseconds, UTC)
//   - Local user name
//   - Operation name
//   - Section, key and the old and new values
//
// # Usage
//
//	audit.Log(dir, audit.Entry{
//	    Operation: audit.OpSettingSet,
//	    Section:   "frontend",
//	    Name:      "v_scale",
//	    Old:       "2",
//	    New:       "3",
//	})
//
// # Failure Handling
//
// History is best-effort. If the file cannot be written the change itself
// still stands; Log never returns an error. Changes made by the frontend
// through the settings manager are not recorded.
package audit

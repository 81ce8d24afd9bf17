// Package input keeps input bindings resident in memory in INI form.
//
// A Table maps section -> key -> string. The frontend reads and updates
// bindings at any time during a session; Load replaces the whole table from
// disk and Save writes it back. The table is not safe for concurrent use.
package input

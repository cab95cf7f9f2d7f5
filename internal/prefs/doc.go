// Package prefs persists the board's view preferences.
//
// [Store] is a small string-to-string key/value file (storage.json) in the
// state directory. Every operation holds an exclusive flock(2) on a sidecar
// lock file, and writes go through a temp file renamed into place, so
// several kanban processes can share one state directory.
//
// [Preferences] stores one JSON-encoded ticket.ViewPreferences value under a
// configurable key and can watch the file for changes made by other
// processes.
package prefs

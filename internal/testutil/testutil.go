// Package testutil provides testing utilities for kanban tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SampleFeed is a small ticket feed in the JSONC form the file source
// accepts. It has three statuses, two users and priorities 4, 3 and 0.
const SampleFeed = `{
  "tickets": [
    {"id": "CAM-1", "title": "Update profile page", "tag": ["Feature request"], "userId": "usr-1", "status": "Todo", "priority": 4},
    {"id": "CAM-2", "title": "Add language support", "tag": ["Feature request"], "userId": "usr-2", "status": "In progress", "priority": 3},
    {"id": "CAM-3", "title": "Backfill audit log", "tag": "Chore", "userId": "usr-2", "status": "Backlog", "priority": 0},
  ],
  "users": [
    {"id": "usr-1", "name": "Anoop sharma", "available": false},
    {"id": "usr-2", "name": "Yogesh", "available": true},
  ],
}`

// WriteFeed writes content to a feed file in a temporary directory and
// returns its path. The file is removed when the test completes.
func WriteFeed(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "feed.jsonc")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write feed: %v", err)
	}
	return path
}

// IsolateConfig points XDG_CONFIG_HOME at a temporary directory so config
// files, the preference store and logs never touch the user's home. It
// returns the kanban config directory inside it, which does not exist yet.
func IsolateConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, "kanban")
}

// Package msg defines the message types used by the board TUI's Bubbletea
// event loop, and the command factories that produce them.
//
// Fetches run as commands carrying the generation token handed out by
// board.Controller.Mount, so the model can drop results that arrive after a
// reload or teardown. Preference changes made by other processes arrive
// through [WaitForPrefs], which the model re-arms after every message.
package msg

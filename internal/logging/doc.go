// Package logging provides structured logging for the kanban board.
//
// It wraps log/slog with a JSON handler. Because the board owns the terminal
// while it runs, logs go to a file (debug.log in the state directory) rather
// than stderr. The file is rotated by size.
//
// # Basic Usage
//
//	logger, err := logging.NewWithRotation(stateDir, "INFO", logging.DefaultRotationConfig())
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Info("tickets fetched", "count", 42)
//
// # Context Propagation
//
// Child loggers carry attributes on every entry:
//
//	fetchLog := logger.WithComponent("source").With("url", url)
//	fetchLog.Error("fetch failed", "error", err)
//
// Output:
//
//	{"time":"...","level":"ERROR","msg":"fetch failed","component":"source","url":"...","error":"..."}
//
// # Testing
//
// Use [NopLogger] to discard output, or [NewWriter] to capture it in a buffer.
package logging

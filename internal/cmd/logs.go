package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Iron-Ham/kanban/internal/logging"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View debug logs",
	Long: `View and filter the board's debug log.

Logging must be enabled first: kanban config set logging.enabled true

Examples:
  # Show last 50 lines
  kanban logs

  # Show all logs
  kanban logs -n 0

  # Follow logs in real-time
  kanban logs -F

  # Only preference store messages at warn or above
  kanban logs --component prefs --level warn

  # Show logs from the last hour
  kanban logs --since 1h

  # Search for specific patterns
  kanban logs --grep "fetch|timeout"`,
	Args: cobra.NoArgs,
	RunE: runLogs,
}

var (
	logsTail      int
	logsFollow    bool
	logsLevel     string
	logsSince     string
	logsGrep      string
	logsComponent string
)

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().IntVarP(&logsTail, "tail", "n", 50, "Number of lines to show (0 for all)")
	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "F", false, "Follow log output (like tail -f)")
	logsCmd.Flags().StringVar(&logsLevel, "level", "", "Filter by minimum level (debug/info/warn/error)")
	logsCmd.Flags().StringVar(&logsSince, "since", "", "Show logs since duration ago (e.g., 1h, 30m)")
	logsCmd.Flags().StringVar(&logsGrep, "grep", "", "Filter logs matching pattern (regex)")
	logsCmd.Flags().StringVar(&logsComponent, "component", "", "Only show one component (source, prefs, board, tui)")
}

// logEntry represents a parsed JSON log line
type logEntry struct {
	Time      time.Time      `json:"time"`
	Level     string         `json:"level"`
	Msg       string         `json:"msg"`
	Component string         `json:"component,omitempty"`
	Extra     map[string]any `json:"-"`
}

// UnmarshalJSON implements custom unmarshaling to capture extra fields
func (e *logEntry) UnmarshalJSON(data []byte) error {
	type Alias logEntry
	aux := &struct {
		*Alias
	}{
		Alias: (*Alias)(e),
	}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	var all map[string]any
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}

	delete(all, "time")
	delete(all, "level")
	delete(all, "msg")
	delete(all, "component")

	if len(all) > 0 {
		e.Extra = all
	}

	return nil
}

// logFilter selects which entries are printed.
type logFilter struct {
	minLevel  int
	since     time.Time
	grep      *regexp.Regexp
	component string
}

var (
	logTimeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	logFieldStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	logLevelStyle = map[string]lipgloss.Style{
		logging.LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		logging.LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		logging.LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		logging.LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
)

// levelPriority returns the priority of a log level for filtering
func levelPriority(level string) int {
	switch strings.ToUpper(level) {
	case logging.LevelDebug:
		return 0
	case logging.LevelInfo:
		return 1
	case logging.LevelWarn:
		return 2
	case logging.LevelError:
		return 3
	default:
		return -1
	}
}

// formatLogEntry formats a log entry for terminal output
func formatLogEntry(entry *logEntry) string {
	var sb strings.Builder

	sb.WriteString(logTimeStyle.Render("[" + entry.Time.Format("15:04:05.000") + "]"))

	level := strings.ToUpper(entry.Level)
	sb.WriteString(" ")
	if style, ok := logLevelStyle[level]; ok {
		sb.WriteString(style.Render("[" + level + "]"))
	} else {
		sb.WriteString("[" + level + "]")
	}

	if entry.Component != "" {
		sb.WriteString(" ")
		sb.WriteString(logFieldStyle.Render(entry.Component + ":"))
	}

	sb.WriteString(" ")
	sb.WriteString(entry.Msg)

	for _, key := range slices.Sorted(maps.Keys(entry.Extra)) {
		sb.WriteString(" ")
		sb.WriteString(logFieldStyle.Render(key + "="))
		fmt.Fprintf(&sb, "%v", entry.Extra[key])
	}

	return sb.String()
}

func runLogs(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	logPath := filepath.Join(cfg.ResolveStateDir(), logging.FileName)
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		fmt.Fprintln(out, "No logs found.")
		fmt.Fprintln(out, "Logs are stored at:", logPath)
		if !cfg.Logging.Enabled {
			fmt.Fprintln(out, "Enable them with: kanban config set logging.enabled true")
		}
		return nil
	}

	filter, err := newLogFilter(logsLevel, logsSince, logsGrep, logsComponent, time.Now())
	if err != nil {
		return err
	}

	if logsFollow {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return followLogs(ctx, out, logPath, filter)
	}

	return displayLogs(out, logPath, logsTail, filter)
}

func newLogFilter(level, since, grep, component string, now time.Time) (logFilter, error) {
	f := logFilter{minLevel: -1, component: component}

	if level != "" {
		f.minLevel = levelPriority(logging.ParseLevel(level))
	}

	if since != "" {
		duration, err := time.ParseDuration(since)
		if err != nil {
			return f, fmt.Errorf("invalid duration format: %w", err)
		}
		f.since = now.Add(-duration)
	}

	if grep != "" {
		re, err := regexp.Compile(grep)
		if err != nil {
			return f, fmt.Errorf("invalid grep pattern: %w", err)
		}
		f.grep = re
	}

	return f, nil
}

// displayLogs reads the log file and displays filtered entries
func displayLogs(out io.Writer, logPath string, tail int, filter logFilter) error {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer file.Close()

	var entries []string
	scanner := bufio.NewScanner(file)

	// Increase buffer size for potentially long log lines
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	for scanner.Scan() {
		if line, ok := filterLine(scanner.Text(), filter); ok {
			entries = append(entries, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading log file: %w", err)
	}

	if tail > 0 && len(entries) > tail {
		entries = entries[len(entries)-tail:]
	}

	for _, entry := range entries {
		fmt.Fprintln(out, entry)
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, "No matching log entries found.")
	}

	return nil
}

// followLogs implements tail -f behavior for the log file until ctx is done.
func followLogs(ctx context.Context, out io.Writer, logPath string, filter logFilter) error {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer file.Close()

	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("failed to seek to end: %w", err)
	}

	fmt.Fprintf(out, "Following logs... (Ctrl+C to stop)\n\n")

	reader := bufio.NewReader(file)
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("error reading log file: %w", err)
		}

		if formatted, ok := filterLine(line, filter); ok {
			fmt.Fprintln(out, formatted)
		}
	}
}

// filterLine formats one raw log line, reporting false when it is blank or
// filtered out. Lines that are not JSON pass through unchanged.
func filterLine(line string, filter logFilter) (string, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", false
	}

	var entry logEntry
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		return line, true
	}
	if !passesFilters(&entry, filter) {
		return "", false
	}
	return formatLogEntry(&entry), true
}

// passesFilters checks if a log entry passes all filter criteria
func passesFilters(entry *logEntry, filter logFilter) bool {
	if filter.minLevel >= 0 && levelPriority(entry.Level) < filter.minLevel {
		return false
	}

	if !filter.since.IsZero() && entry.Time.Before(filter.since) {
		return false
	}

	if filter.component != "" && entry.Component != filter.component {
		return false
	}

	// Grep searches the message and extra fields
	if filter.grep != nil {
		searchText := entry.Msg
		for _, v := range entry.Extra {
			searchText += " " + fmt.Sprintf("%v", v)
		}
		if !filter.grep.MatchString(searchText) {
			return false
		}
	}

	return true
}

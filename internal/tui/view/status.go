package view

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/kanban/internal/errors"
	"github.com/Iron-Ham/kanban/internal/tui/styles"
	"github.com/Iron-Ham/kanban/internal/util"
)

// StatusState holds what the status line shows. Err takes precedence over
// Loading, which takes precedence over Notice.
type StatusState struct {
	Loading bool
	Spinner string
	Source  string
	Err     error
	Notice  string
	Width   int
}

// RenderStatus renders the line below the board.
func RenderStatus(s *styles.Styles, st StatusState) string {
	var line string
	switch {
	case st.Err != nil:
		line = severityStyle(s, st.Err).Render("✗ " + ErrorMessage(st.Err))
		if errors.IsRetryable(st.Err) {
			line += s.Muted.Render("  (r to retry)")
		}
	case st.Loading:
		line = st.Spinner + " " + s.Muted.Render("Loading tickets from "+st.Source)
	case st.Notice != "":
		line = s.Warning.Render(st.Notice)
	default:
		line = s.Muted.Render(st.Source)
	}

	if st.Width > 0 {
		line = util.TruncateANSI(line, st.Width)
	}
	return s.StatusBar.Render(line)
}

// severityStyle picks the error style for errors of SeverityError and up and
// the warning style below that.
func severityStyle(s *styles.Styles, err error) lipgloss.Style {
	if errors.GetSeverity(err) >= errors.SeverityError {
		return s.Error
	}
	return s.Warning
}

// ErrorMessage is the text shown for err. Errors that are not meant for the
// user collapse to a generic message; their detail goes to the log.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, errors.ErrCanceled) {
		return "request canceled"
	}
	if errors.IsUserFacing(err) {
		return err.Error()
	}
	return "could not load tickets"
}

// RenderLoading renders the full-screen placeholder shown before the first
// fetch completes.
func RenderLoading(s *styles.Styles, spinner, source string, width, height int) string {
	msg := spinner + " " + s.Muted.Render("Loading tickets from "+source)
	if width <= 0 || height <= 0 {
		return msg
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

// RenderFailed renders the board area after a fetch failed.
func RenderFailed(s *styles.Styles, err error, width, height int) string {
	msg := s.Error.Render("Could not load tickets") + "\n" + s.Muted.Render(ErrorMessage(err))
	if width <= 0 || height <= 0 {
		return msg
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

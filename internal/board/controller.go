// Package board drives one kanban board: it tracks the fetch lifecycle,
// restores and persists view preferences, and turns the fetched tickets
// into labeled columns.
//
// A Controller is not safe for concurrent use; the TUI calls it only from
// its Update loop.
package board

import (
	"time"

	"github.com/Iron-Ham/kanban/internal/errors"
	"github.com/Iron-Ham/kanban/internal/logging"
	"github.com/Iron-Ham/kanban/internal/source"
	"github.com/Iron-Ham/kanban/internal/ticket"
)

// State is the controller lifecycle state.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// PreferenceStore persists view preferences. *prefs.Preferences satisfies it.
type PreferenceStore interface {
	Load() (ticket.ViewPreferences, error)
	Save(ticket.ViewPreferences) error
	Update(fallback ticket.ViewPreferences, mutate func(*ticket.ViewPreferences)) (ticket.ViewPreferences, error)
}

// echoWindow is how long a value this controller wrote is treated as its
// own when the store watch reports it back.
const echoWindow = time.Second

// write is one preference value persisted by this controller.
type write struct {
	prefs ticket.ViewPreferences
	at    time.Time
}

// Controller owns the board state for one mount.
type Controller struct {
	store    PreferenceStore
	collator ticket.Collator
	logger   *logging.Logger

	state  State
	gen    uint64
	active bool
	err    error

	tickets []ticket.Ticket
	users   []ticket.User
	prefs   ticket.ViewPreferences

	// cached arrangement; nil when stale
	view *ticket.GroupedView

	// recent own writes, newest last
	writes []write
	now    func() time.Time
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the controller's logger.
func WithLogger(logger *logging.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithCollator sets the collator used for title ordering.
func WithCollator(coll ticket.Collator) Option {
	return func(c *Controller) {
		c.collator = coll
	}
}

// WithDefaults sets the preferences used until stored ones are read.
func WithDefaults(p ticket.ViewPreferences) Option {
	return func(c *Controller) {
		c.prefs = p
	}
}

// NewController creates a Controller in the Uninitialized state.
func NewController(store PreferenceStore, opts ...Option) *Controller {
	c := &Controller{
		store:  store,
		logger: logging.NopLogger(),
		prefs:  ticket.DefaultPreferences(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.WithComponent("board")
	return c
}

// State returns the lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Err returns the last fetch error of the current mount, if any.
func (c *Controller) Err() error {
	return c.err
}

// Preferences returns the active view preferences.
func (c *Controller) Preferences() ticket.ViewPreferences {
	return c.prefs
}

// Users returns the fetched users.
func (c *Controller) Users() []ticket.User {
	return c.users
}

// TicketCount returns the number of fetched tickets.
func (c *Controller) TicketCount() int {
	return len(c.tickets)
}

// Mount enters Loading and returns the generation token the caller must pass
// back to Resolve with the fetch result. Results carrying an older token are
// dropped.
func (c *Controller) Mount() uint64 {
	c.gen++
	c.active = true
	c.state = StateLoading
	c.err = nil
	c.logger.Debug("mounted", "generation", c.gen)
	return c.gen
}

// Teardown marks the controller inactive. Fetches still in flight resolve
// into nothing.
func (c *Controller) Teardown() {
	if !c.active {
		return
	}
	c.active = false
	c.gen++
	c.logger.Debug("torn down")
}

// Resolve delivers the result of the fetch started for gen. It reports
// whether the result was applied.
//
// On error the controller stays in Loading with the error kept for Err. On
// success the stored preferences are adopted when they name a grouping;
// otherwise the current preferences are written back. Either way the
// controller becomes Ready.
func (c *Controller) Resolve(gen uint64, ds *source.Dataset, err error) bool {
	if !c.active || gen != c.gen || c.state != StateLoading {
		c.logger.Debug("discarding stale fetch result", "generation", gen, "current", c.gen)
		return false
	}

	if err != nil {
		c.err = err
		c.logger.Error("fetch failed", "error", err, "retryable", errors.IsRetryable(err))
		return true
	}
	if ds == nil {
		ds = &source.Dataset{}
	}

	c.tickets = ds.Tickets
	c.users = ds.Users
	c.err = nil
	c.restorePreferences()
	c.state = StateReady
	c.view = nil
	c.reportUnknownUsers()

	c.logger.Info("board ready",
		"tickets", len(c.tickets),
		"users", len(c.users),
		"group_by", c.prefs.GroupBy,
		"sort_order", c.prefs.SortOrder,
	)
	return true
}

func (c *Controller) restorePreferences() {
	stored, err := c.store.Load()
	if err == nil && stored.GroupBy != "" {
		c.prefs = stored
		return
	}

	switch {
	case err == nil:
		c.logger.Debug("stored preferences have no grouping, rewriting")
	case errors.Is(err, errors.ErrPrefsNotFound):
		c.logger.Debug("no stored preferences")
	default:
		c.logger.Warn("ignoring stored preferences", "error", err)
	}

	if serr := c.store.Save(c.prefs); serr != nil {
		c.logger.Warn("could not persist preferences", "error", serr)
		return
	}
	c.recordWrite(c.prefs)
}

// SetGroupBy changes the grouping, merging it into the stored preferences.
// The in-memory change applies even when persisting fails; the error is
// returned for display.
func (c *Controller) SetGroupBy(g ticket.GroupBy) error {
	return c.update(func(p *ticket.ViewPreferences) { p.GroupBy = g })
}

// SetSortOrder changes the ordering, merging it into the stored preferences.
func (c *Controller) SetSortOrder(s ticket.SortOrder) error {
	return c.update(func(p *ticket.ViewPreferences) { p.SortOrder = s })
}

func (c *Controller) update(mutate func(*ticket.ViewPreferences)) error {
	next, err := c.store.Update(c.prefs, mutate)
	if err != nil {
		mutate(&c.prefs)
		c.view = nil
		c.logger.Warn("could not persist preferences", "error", err)
		return err
	}
	c.prefs = next
	c.view = nil
	c.recordWrite(next)
	c.logger.Debug("preferences changed", "group_by", next.GroupBy, "sort_order", next.SortOrder)
	return nil
}

// ApplyExternal adopts preferences written by another process. Values
// without a grouping are ignored, as are values this controller wrote
// within echoWindow, since the store watch reports those back too. It
// reports whether anything changed.
func (c *Controller) ApplyExternal(p ticket.ViewPreferences) bool {
	if p.GroupBy == "" || p == c.prefs {
		return false
	}
	if c.isEcho(p) {
		c.logger.Debug("ignoring echo of own write", "group_by", p.GroupBy, "sort_order", p.SortOrder)
		return false
	}
	c.prefs = p
	c.view = nil
	c.logger.Info("preferences changed externally", "group_by", p.GroupBy, "sort_order", p.SortOrder)
	return true
}

// View returns the grouped and sorted tickets. It is empty until Ready.
func (c *Controller) View() *ticket.GroupedView {
	if c.state != StateReady {
		return &ticket.GroupedView{}
	}
	if c.view == nil {
		c.view = ticket.Arrange(c.tickets, c.prefs, c.collator)
	}
	return c.view
}

// Columns returns the current view as labeled columns.
func (c *Controller) Columns() []Column {
	return BuildColumns(c.View(), c.prefs.GroupBy, c.users, c.logger)
}

func (c *Controller) recordWrite(p ticket.ViewPreferences) {
	now := c.now()
	c.pruneWrites(now)
	c.writes = append(c.writes, write{prefs: p, at: now})
}

func (c *Controller) isEcho(p ticket.ViewPreferences) bool {
	c.pruneWrites(c.now())
	for _, w := range c.writes {
		if w.prefs == p {
			return true
		}
	}
	return false
}

func (c *Controller) pruneWrites(now time.Time) {
	i := 0
	for i < len(c.writes) && now.Sub(c.writes[i].at) >= echoWindow {
		i++
	}
	c.writes = c.writes[i:]
}

// reportUnknownUsers logs each assignee missing from the user list once
// per fetch. Column labels fall back to the raw id.
func (c *Controller) reportUnknownUsers() {
	seen := make(map[string]bool)
	for _, t := range c.tickets {
		if t.UserID == "" || seen[t.UserID] {
			continue
		}
		seen[t.UserID] = true
		if _, ok := ticket.FindUser(c.users, t.UserID); !ok {
			c.logger.Warn("ticket assigned to unknown user", "error", errors.NewLookupError("user", t.UserID), "ticket", t.ID)
		}
	}
}

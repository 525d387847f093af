// Package tray defines the static tray menu model and maps tray events to
// actions. It holds no state and talks to no toolkit, so the mapping is
// testable without a window system.
package tray

// Menu item identifiers, stable across releases. These are the IDs dispatched
// when a menu item is clicked.
const (
	ItemShow      = "show"
	ItemHide      = "hide"
	ItemAutoStart = "auto_start"
	ItemUpdate    = "update"
	ItemQuit      = "quit"
)

// Action is the closed set of things a tray interaction can request.
type Action int

const (
	// ActionNone is returned for unrecognized menu items, which are
	// ignored so future menu entries stay forward-compatible.
	ActionNone Action = iota
	ActionShowWindow
	ActionHideWindow
	ActionToggleAutoStart
	ActionCheckForUpdates
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionShowWindow:
		return "show-window"
	case ActionHideWindow:
		return "hide-window"
	case ActionToggleAutoStart:
		return "toggle-auto-start"
	case ActionCheckForUpdates:
		return "check-for-updates"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// EventKind distinguishes a click on the icon itself from a menu selection.
type EventKind int

const (
	EventMenuItem EventKind = iota
	// EventIconClick is a left-click on the tray icon, delivered only on
	// platforms where the toolkit reports it.
	EventIconClick
)

// Event is a toolkit-independent tray event.
type Event struct {
	Kind   EventKind
	ItemID string
}

// Entry is one row of the tray menu: an action item or a separator.
type Entry struct {
	ID        string
	Label     string
	Separator bool
}

// Menu returns the static menu model. Built once at startup and never
// mutated afterwards.
func Menu() []Entry {
	return []Entry{
		{ID: ItemShow, Label: "Show Window"},
		{ID: ItemHide, Label: "Hide Window"},
		{Separator: true},
		{ID: ItemAutoStart, Label: "Auto-Start on Boot"},
		{Separator: true},
		{ID: ItemUpdate, Label: "Check for Updates"},
		{Separator: true},
		{ID: ItemQuit, Label: "Quit"},
	}
}

// MapEvent translates a tray event into an Action. An icon click acts like
// the Show item; unknown item IDs map to ActionNone.
func MapEvent(ev Event) Action {
	if ev.Kind == EventIconClick {
		return ActionShowWindow
	}

	switch ev.ItemID {
	case ItemShow:
		return ActionShowWindow
	case ItemHide:
		return ActionHideWindow
	case ItemAutoStart:
		return ActionToggleAutoStart
	case ItemUpdate:
		return ActionCheckForUpdates
	case ItemQuit:
		return ActionQuit
	default:
		return ActionNone
	}
}

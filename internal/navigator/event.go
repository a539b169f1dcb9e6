package navigator

// Event is a single discrete input processed by Transition.
type Event int

const (
	// None is the zero Event. Transition ignores it.
	None Event = iota
	Up
	Down
	Left
	Right
	Confirm
	Cancel
)

// String returns the lowercase event name used in logs and remote acknowledgements
func (e Event) String() string {
	switch e {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Confirm:
		return "confirm"
	case Cancel:
		return "cancel"
	default:
		return "none"
	}
}

// keyEvents maps input-channel key names to events.
// Browser-style names come from remote controls, the lowercase aliases from terminals.
var keyEvents = map[string]Event{
	"ArrowUp":    Up,
	"ArrowDown":  Down,
	"ArrowLeft":  Left,
	"ArrowRight": Right,
	"Enter":      Confirm,
	"Escape":     Cancel,
	"Back":       Cancel,
	"Backspace":  Cancel,

	"up":        Up,
	"down":      Down,
	"left":      Left,
	"right":     Right,
	"enter":     Confirm,
	"esc":       Cancel,
	"backspace": Cancel,
}

// ParseEvent maps a key name from the input channel to an Event.
// Keys outside the fixed key set report false and must be ignored.
func ParseEvent(key string) (Event, bool) {
	ev, ok := keyEvents[key]
	return ev, ok
}

// KeyNames returns the browser-style key names accepted by ParseEvent
func KeyNames() []string {
	return []string{"ArrowUp", "ArrowDown", "ArrowLeft", "ArrowRight", "Enter", "Escape", "Back", "Backspace"}
}

package navigator

// Control addresses one of the player's bottom-row buttons, left to right.
type Control int

const (
	// ControlNone means no control is focused (header/idle display)
	ControlNone Control = iota - 1
	ControlAudio
	ControlPrevious
	ControlPlayPause
	ControlNext
	ControlQuality
)

// LastControl is the rightmost control
const LastControl = ControlQuality

// Controls returns every focusable control in display order
func Controls() []Control {
	return []Control{ControlAudio, ControlPrevious, ControlPlayPause, ControlNext, ControlQuality}
}

// Label returns the button caption
func (c Control) Label() string {
	switch c {
	case ControlAudio:
		return "Audio"
	case ControlPrevious:
		return "Prev"
	case ControlPlayPause:
		return "Play/Pause"
	case ControlNext:
		return "Next"
	case ControlQuality:
		return "Quality"
	default:
		return ""
	}
}

// Quality is a playback quality tier
type Quality string

const (
	Quality240p  Quality = "240p"
	Quality720p  Quality = "720p"
	Quality1080p Quality = "1080p"
	Quality4K    Quality = "4K"
)

// DefaultQuality is the committed quality at startup
const DefaultQuality = Quality1080p

var qualityOptions = []Quality{Quality240p, Quality720p, Quality1080p, Quality4K}

// QualityOptions returns the selectable tiers, lowest first
func QualityOptions() []Quality {
	out := make([]Quality, len(qualityOptions))
	copy(out, qualityOptions)
	return out
}

// QualityIndex returns the position of q in QualityOptions, or -1
func QualityIndex(q Quality) int {
	for i, opt := range qualityOptions {
		if opt == q {
			return i
		}
	}
	return -1
}

// ParseQuality validates a quality name
func ParseQuality(s string) (Quality, bool) {
	q := Quality(s)
	return q, QualityIndex(q) >= 0
}

// PlayerMode is the player's input sub-state. It is either Idle or QualityMenu.
type PlayerMode interface {
	playerMode()
}

// Idle is the normal player mode: arrows move across the control row.
type Idle struct {
	Control Control
}

// QualityMenu is the nested quality picker; it owns all input while open.
type QualityMenu struct {
	Cursor int // index into QualityOptions
}

func (Idle) playerMode()        {}
func (QualityMenu) playerMode() {}

// PlayerFocus is the focus state of the player overlay.
// CurrentQuality survives opening and closing the menu and the player itself;
// it only changes on a confirmed selection.
type PlayerFocus struct {
	Mode           PlayerMode
	CurrentQuality Quality
}

// FocusedControl returns the focused control, or ControlNone while the quality menu is open
func (p PlayerFocus) FocusedControl() Control {
	if idle, ok := p.Mode.(Idle); ok {
		return idle.Control
	}
	return ControlNone
}

// MenuOpen reports whether the quality menu is open and where its cursor is
func (p PlayerFocus) MenuOpen() (int, bool) {
	if menu, ok := p.Mode.(QualityMenu); ok {
		return menu.Cursor, true
	}
	return 0, false
}

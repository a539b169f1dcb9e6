// Package navigator implements the directional focus state machine behind the
// Odin TV dashboard.
//
// The whole UI is driven by six discrete inputs coming from a TV remote or a
// keyboard: Up, Down, Left, Right, Confirm and Cancel. The navigator owns the
// single authoritative answer to "what is focused right now" and computes the
// next answer for every input.
//
// # State
//
// State is a plain value. It holds the active Screen, the dashboard focus
// (an Area plus an Index inside that area), the player focus and the content
// Grid geometry. There is no hidden mutable state: callers keep the current
// value and replace it with the one returned by Transition.
//
//	state := navigator.New(catalog.Len())
//	state = navigator.Transition(state, navigator.Right)
//	state = navigator.Transition(state, navigator.Confirm)
//
// # Areas and the content grid
//
// On every non-player screen the cursor lives in one of three areas:
//   - Sidebar: five menu entries, indices 0-4
//   - TopBar: the search bar, no index
//   - Content: the speed-dial grid, indices 0..N-1
//
// The content grid is the pinned sites followed by the utilities laid out in
// four columns. Row and column are always derived through Grid, never by ad
// hoc arithmetic at call sites.
//
// # Player
//
// While the Player screen is active, input is routed to the player controls
// (Audio, Previous, Play/Pause, Next, Quality). Confirming the Quality control
// opens a nested quality menu that owns input until it is confirmed or
// cancelled. The two player sub-states are modelled as a sealed union
// (Idle, QualityMenu) so that a quality cursor cannot exist without an open
// menu.
//
// # Guarantees
//
// Transition is total and deterministic. Inputs that mean nothing in the
// current state are no-ops, and every index it produces is clamped into the
// valid range for its area.
package navigator

// Package tui is the Bubble Tea front end of Odin TV.
//
// AppModel owns a single navigator.State. Terminal keys (matched with
// bubbles/key bindings) and RemoteKeyMsg values sent by the remote-control
// server are both turned into navigator events and applied with
// navigator.Transition; nothing else changes focus.
//
// The Render* functions are pure projections of that state plus the catalog,
// the trending topics and presentation-only flags:
//
//   - RenderSidebar: the navigation menu, expanded while it has focus
//   - RenderDashboard: search bar, site grid and trending topics
//   - RenderPlayer: the player overlay, its controls and the quality menu
//   - RenderPlaceholder: search/browser splash and the stub screens
//
// The player title bar and progress bar hide after Options.AutoHide of
// inactivity. This timer never touches navigator state and is suspended while
// the quality menu is open.
package tui

package navigator

// Transition returns the state that follows s after ev.
//
// It is a pure function: the same (s, ev) always yields the same result and s
// itself is never modified. Events that have no meaning in the current state
// return s unchanged.
func Transition(s State, ev Event) State {
	if s.Screen == ScreenPlayer {
		return transitionPlayer(s, ev)
	}
	return transitionDashboard(s, ev)
}

// transitionDashboard applies the rules shared by every non-player screen
func transitionDashboard(s State, ev Event) State {
	f := s.Focus
	g := s.Grid

	switch ev {
	case Right:
		switch f.Area {
		case AreaSidebar:
			f = DashboardFocus{Area: AreaContent, Index: 0}
		case AreaContent:
			f.Index = g.Clamp(f.Index + 1)
		}

	case Left:
		switch f.Area {
		case AreaContent:
			if g.IsFirstColumn(f.Index) {
				f = DashboardFocus{Area: AreaSidebar, Index: 0}
			} else {
				f.Index = g.Clamp(f.Index - 1)
			}
		case AreaTopBar:
			f = DashboardFocus{Area: AreaSidebar, Index: 1}
		}

	case Up:
		switch f.Area {
		case AreaContent:
			if g.IsFirstRow(f.Index) {
				f.Area = AreaTopBar
			} else {
				f.Index = g.Clamp(f.Index - g.ColumnCount())
			}
		case AreaSidebar:
			f.Index = clamp(f.Index-1, 0, SidebarLast)
		case AreaTopBar:
			// the top bar keeps the stale index around; it is never read there
			if f.Index > 0 {
				f.Index--
			}
		}

	case Down:
		switch f.Area {
		case AreaTopBar:
			f = DashboardFocus{Area: AreaContent, Index: 0}
		case AreaContent:
			f.Index = g.Clamp(f.Index + g.ColumnCount())
		case AreaSidebar:
			f.Index = clamp(f.Index+1, 0, SidebarLast)
		}

	case Confirm:
		switch f.Area {
		case AreaSidebar:
			s.Screen = sidebarEntries[clamp(f.Index, 0, SidebarLast)].Screen
			f = DashboardFocus{Area: AreaContent, Index: 0}
		case AreaTopBar:
			s.Screen = ScreenSearch
		case AreaContent:
			if s.Screen == ScreenDashboard && g.Count > 0 {
				s.Screen = ScreenPlayer
				s.Player.Mode = Idle{Control: ControlPlayPause}
			}
		}

	case Cancel:
		if s.Screen != ScreenDashboard {
			s.Screen = ScreenDashboard
		}

	default:
		return s
	}

	s.Focus = f
	return s
}

// transitionPlayer applies the player rules, delegating to the quality menu when it is open
func transitionPlayer(s State, ev Event) State {
	switch mode := s.Player.Mode.(type) {
	case QualityMenu:
		return transitionQualityMenu(s, mode, ev)
	case Idle:
		return transitionIdle(s, mode.Control, ev)
	default:
		return transitionIdle(s, ControlNone, ev)
	}
}

func transitionIdle(s State, c Control, ev Event) State {
	switch ev {
	case Cancel:
		s.Screen = ScreenDashboard
		s.Player.Mode = Idle{Control: ControlNone}

	case Right:
		s.Player.Mode = Idle{Control: Control(clamp(int(c)+1, int(ControlAudio), int(LastControl)))}

	case Left:
		s.Player.Mode = Idle{Control: Control(clamp(int(c)-1, int(ControlAudio), int(LastControl)))}

	case Confirm:
		if c == ControlQuality {
			cursor := QualityIndex(s.Player.CurrentQuality)
			if cursor < 0 {
				cursor = 0
			}
			s.Player.Mode = QualityMenu{Cursor: cursor}
		}
	}
	return s
}

func transitionQualityMenu(s State, menu QualityMenu, ev Event) State {
	last := len(qualityOptions) - 1

	switch ev {
	case Cancel:
		s.Player.Mode = Idle{Control: ControlQuality}

	case Up:
		s.Player.Mode = QualityMenu{Cursor: clamp(menu.Cursor-1, 0, last)}

	case Down:
		s.Player.Mode = QualityMenu{Cursor: clamp(menu.Cursor+1, 0, last)}

	case Confirm:
		s.Player.CurrentQuality = qualityOptions[clamp(menu.Cursor, 0, last)]
		s.Player.Mode = Idle{Control: ControlQuality}
	}
	return s
}

package navigation

// LogoutLabel is the text of the logout control
const LogoutLabel = "Logout"

// Width is the sidebar width class on wide viewports
type Width string

const (
	WidthWide   Width = "wide"
	WidthNarrow Width = "narrow"
)

// EntryView is the render-ready form of a single sidebar control
type EntryView struct {
	Label     string
	Path      string
	Icon      Icon
	Active    bool
	ShowLabel bool
	// Tooltip carries the label while the text is hidden, empty otherwise
	Tooltip string
}

// SidebarView is everything the renderer needs to draw the sidebar.
// It is a pure function of state, menu and the current route.
type SidebarView struct {
	Collapsed        bool
	MobileOpen       bool
	Width            Width
	ShowLogo         bool
	CollapseIcon     Icon
	MobileToggleIcon Icon
	ShowOverlay      bool
	Entries          []EntryView
	Logout           EntryView
}

// Project computes the view of the sidebar. A nil router marks no entry active.
func Project(state SidebarState, menu Menu, router Router) SidebarView {
	view := SidebarView{
		Collapsed:        state.collapsed,
		MobileOpen:       state.mobileOpen,
		Width:            WidthWide,
		ShowLogo:         !state.collapsed,
		CollapseIcon:     IconChevronFirst,
		MobileToggleIcon: IconMenu,
		ShowOverlay:      state.mobileOpen,
		Entries:          make([]EntryView, 0, menu.Len()),
	}
	if state.collapsed {
		view.Width = WidthNarrow
		view.CollapseIcon = IconChevronLast
	}
	if state.mobileOpen {
		view.MobileToggleIcon = IconClose
	}

	for _, entry := range menu.entries {
		ev := labelled(state, entry.Label, entry.Icon)
		ev.Path = entry.Path
		ev.Active = router != nil && router.IsActive(entry.Path)
		view.Entries = append(view.Entries, ev)
	}
	view.Logout = labelled(state, LogoutLabel, IconLogOut)

	return view
}

// ActiveEntry returns the first active entry, if any
func (v SidebarView) ActiveEntry() (EntryView, bool) {
	for _, entry := range v.Entries {
		if entry.Active {
			return entry, true
		}
	}
	return EntryView{}, false
}

func labelled(state SidebarState, label string, icon Icon) EntryView {
	ev := EntryView{Label: label, Icon: icon, ShowLabel: !state.collapsed}
	if state.collapsed {
		ev.Tooltip = label
	}
	return ev
}

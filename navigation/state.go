package navigation

// NarrowBreakpoint is the viewport width, in CSS pixels, below which the
// sidebar is shown as a mobile overlay
const NarrowBreakpoint = 768

// Viewport is the viewport class supplied by the host page
type Viewport int

const (
	ViewportWide Viewport = iota
	ViewportNarrow
)

// ViewportForWidth classifies a viewport width
func ViewportForWidth(width int) Viewport {
	if width > 0 && width < NarrowBreakpoint {
		return ViewportNarrow
	}
	return ViewportWide
}

func (v Viewport) String() string {
	if v == ViewportNarrow {
		return "narrow"
	}
	return "wide"
}

// DisplayMode is the responsive rendering mode derived from state and viewport
type DisplayMode int

const (
	WideExpanded DisplayMode = iota
	WideCollapsed
	NarrowClosed
	NarrowOpen
)

var displayModeNames = [...]string{
	WideExpanded:  "wide-expanded",
	WideCollapsed: "wide-collapsed",
	NarrowClosed:  "narrow-closed",
	NarrowOpen:    "narrow-open",
}

func (m DisplayMode) String() string {
	if m < 0 || int(m) >= len(displayModeNames) {
		return "unknown"
	}
	return displayModeNames[m]
}

// SidebarState holds the two transient sidebar flags. The zero value is
// the initial state: expanded and with the mobile overlay closed.
type SidebarState struct {
	collapsed  bool
	mobileOpen bool
}

// Collapsed reports whether the sidebar is in icon-only mode on wide viewports
func (s SidebarState) Collapsed() bool {
	return s.collapsed
}

// MobileOpen reports whether the overlay is shown on narrow viewports
func (s SidebarState) MobileOpen() bool {
	return s.mobileOpen
}

// ToggleCollapsed flips the collapsed flag
func (s *SidebarState) ToggleCollapsed() {
	s.collapsed = !s.collapsed
}

// ToggleMobileOpen flips the mobile overlay flag
func (s *SidebarState) ToggleMobileOpen() {
	s.mobileOpen = !s.mobileOpen
}

// CloseMobile hides the mobile overlay
func (s *SidebarState) CloseMobile() {
	s.mobileOpen = false
}

// SelectEntry hands navigation to the router and closes the mobile overlay.
// Collapsed-ness is left as is. Whatever the router does with an unknown
// path is its own business.
func (s *SidebarState) SelectEntry(path string, router Router) {
	if router != nil {
		router.Navigate(path)
	}
	s.mobileOpen = false
}

// Mode returns the display mode for the given viewport
func (s SidebarState) Mode(viewport Viewport) DisplayMode {
	if viewport == ViewportNarrow {
		if s.mobileOpen {
			return NarrowOpen
		}
		return NarrowClosed
	}
	if s.collapsed {
		return WideCollapsed
	}
	return WideExpanded
}

package webapp

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/linkara/linkara/navigation"
)

// Sidebar is the left navigation component. Its collapsed and mobile
// overlay flags live only as long as the component is mounted.
type Sidebar struct {
	app.Compo

	Menu     navigation.Menu
	LogoURL  string
	AppName  string
	OnLogout func(ctx app.Context)

	state       navigation.SidebarState
	currentPath string
	viewport    navigation.Viewport
}

// OnMount is called when the component is mounted
func (s *Sidebar) OnMount(ctx app.Context) {
	s.currentPath = ctx.Page().URL().Path
	s.updateViewport()
}

// OnNav is called when navigation occurs
func (s *Sidebar) OnNav(ctx app.Context) {
	s.currentPath = ctx.Page().URL().Path
}

// OnResize is called when the browser window is resized
func (s *Sidebar) OnResize(ctx app.Context) {
	s.updateViewport()
}

func (s *Sidebar) updateViewport() {
	if !app.IsClient {
		return
	}
	width, _ := app.Window().Size()
	s.viewport = navigation.ViewportForWidth(width)
}

// ToggleCollapsed switches between the full and icon-only sidebar
func (s *Sidebar) ToggleCollapsed() {
	s.state.ToggleCollapsed()
}

// ToggleMobileOpen shows or hides the overlay on narrow screens
func (s *Sidebar) ToggleMobileOpen() {
	s.state.ToggleMobileOpen()
}

// SelectEntry navigates to path and closes the mobile overlay
func (s *Sidebar) SelectEntry(path string, router navigation.Router) {
	s.state.SelectEntry(path, router)
	s.currentPath = path
}

// State returns the current sidebar flags
func (s *Sidebar) State() navigation.SidebarState {
	return s.state
}

// Mode returns the display mode for the last observed viewport
func (s *Sidebar) Mode() navigation.DisplayMode {
	return s.state.Mode(s.viewport)
}

// View projects the current state onto the menu
func (s *Sidebar) View() navigation.SidebarView {
	return navigation.Project(s.state, s.menu(), &navigation.PathRouter{Current: s.currentPath})
}

func (s *Sidebar) menu() navigation.Menu {
	if s.Menu.Len() == 0 {
		return navigation.DefaultMenu()
	}
	return s.Menu
}

func (s *Sidebar) onToggleCollapsed(ctx app.Context, e app.Event) {
	s.ToggleCollapsed()
}

func (s *Sidebar) onToggleMobile(ctx app.Context, e app.Event) {
	s.ToggleMobileOpen()
}

func (s *Sidebar) onOverlayClick(ctx app.Context, e app.Event) {
	s.state.CloseMobile()
}

func (s *Sidebar) onSelect(path string) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		e.PreventDefault()
		s.SelectEntry(path, &navigation.PathRouter{
			Current:    s.currentPath,
			OnNavigate: ctx.Navigate,
		})
	}
}

func (s *Sidebar) onLogout(ctx app.Context, e app.Event) {
	if s.OnLogout != nil {
		s.OnLogout(ctx)
	}
}

// Render renders the sidebar
func (s *Sidebar) Render() app.UI {
	view := s.View()

	children := []app.UI{s.renderMobileToggle(view)}
	if view.ShowOverlay {
		children = append(children, app.Div().
			Class("sidebar-overlay").
			OnClick(s.onOverlayClick))
	}
	children = append(children, s.renderAside(view))

	return app.Div().Class("sidebar-root").Body(children...)
}

func (s *Sidebar) renderMobileToggle(view navigation.SidebarView) app.UI {
	label := "Open menu"
	if view.MobileOpen {
		label = "Close menu"
	}
	return app.Button().
		Class("sidebar-mobile-toggle").
		Type("button").
		Aria("label", label).
		Aria("expanded", view.MobileOpen).
		OnClick(s.onToggleMobile).
		Body(renderIcon(view.MobileToggleIcon))
}

func (s *Sidebar) renderAside(view navigation.SidebarView) app.UI {
	mobileClass := "sidebar-mobile-closed"
	if view.MobileOpen {
		mobileClass = "sidebar-mobile-open"
	}

	entries := make([]app.UI, 0, len(view.Entries))
	for _, entry := range view.Entries {
		entries = append(entries, s.renderEntry(entry))
	}

	return app.Aside().
		Class("sidebar", "sidebar-"+string(view.Width), mobileClass, "sidebar-mode-"+s.Mode().String()).
		Body(
			s.renderHeader(view),
			app.Nav().Class("sidebar-nav").Body(entries...),
			app.Div().Class("sidebar-footer").Body(s.renderLogout(view.Logout)),
		)
}

func (s *Sidebar) renderHeader(view navigation.SidebarView) app.UI {
	logoClass := "sidebar-logo"
	if !view.ShowLogo {
		logoClass += " sidebar-logo-hidden"
	}
	collapseLabel := "Collapse sidebar"
	if view.Collapsed {
		collapseLabel = "Expand sidebar"
	}

	appName := s.AppName
	if appName == "" {
		appName = DefaultAppName
	}
	logoURL := s.LogoURL
	if logoURL == "" {
		logoURL = DefaultLogoURL
	}

	return app.Div().Class("sidebar-header").Body(
		app.Img().
			Class(logoClass).
			Src(logoURL).
			Alt(appName),
		app.Button().
			Class("sidebar-collapse").
			Type("button").
			Aria("label", collapseLabel).
			OnClick(s.onToggleCollapsed).
			Body(renderIcon(view.CollapseIcon)),
	)
}

func (s *Sidebar) renderEntry(entry navigation.EntryView) app.UI {
	class := "sidebar-item"
	if entry.Active {
		class += " sidebar-item-active"
	}

	link := app.A().
		Href(entry.Path).
		Class(class).
		OnClick(s.onSelect(entry.Path))
	if entry.Active {
		link = link.Aria("current", "page")
	}
	if entry.Tooltip != "" {
		link = link.Title(entry.Tooltip).Aria("label", entry.Tooltip)
	}

	return link.Body(labelledBody(entry)...)
}

func (s *Sidebar) renderLogout(entry navigation.EntryView) app.UI {
	button := app.Button().
		Class("sidebar-item", "sidebar-logout").
		Type("button").
		OnClick(s.onLogout)
	if entry.Tooltip != "" {
		button = button.Title(entry.Tooltip).Aria("label", entry.Tooltip)
	}
	return button.Body(labelledBody(entry)...)
}

// labelledBody renders icon, label and, when collapsed, the hover tooltip
func labelledBody(entry navigation.EntryView) []app.UI {
	labelClass := "sidebar-label"
	if !entry.ShowLabel {
		labelClass += " sidebar-label-hidden"
	}

	body := []app.UI{
		app.Span().Class("sidebar-icon").Body(renderIcon(entry.Icon)),
		app.Span().Class(labelClass).Aria("hidden", !entry.ShowLabel).Text(entry.Label),
	}
	if entry.Tooltip != "" {
		body = append(body, app.Span().
			Class("sidebar-tooltip").
			Attr("role", "tooltip").
			Text(entry.Tooltip))
	}
	return body
}

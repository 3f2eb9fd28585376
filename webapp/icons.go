package webapp

import (
	"fmt"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/linkara/linkara/navigation"
)

// iconPaths holds the inner SVG markup of each glyph, drawn on a 24x24 grid
var iconPaths = map[navigation.Icon]string{
	navigation.IconHome: `<path d="M15 21v-8a1 1 0 0 0-1-1h-4a1 1 0 0 0-1 1v8"/>` +
		`<path d="M3 10a2 2 0 0 1 .709-1.528l7-5.999a2 2 0 0 1 2.582 0l7 5.999A2 2 0 0 1 21 10v9a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2z"/>`,
	navigation.IconUsers: `<path d="M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2"/><circle cx="9" cy="7" r="4"/>` +
		`<path d="M22 21v-2a4 4 0 0 0-3-3.87"/><path d="M16 3.13a4 4 0 0 1 0 7.75"/>`,
	navigation.IconHeartHandshake: `<path d="M19 14c1.49-1.46 3-3.21 3-5.5A5.5 5.5 0 0 0 16.5 3c-1.76 0-3 .5-4.5 2-1.5-1.5-2.74-2-4.5-2A5.5 5.5 0 0 0 2 8.5c0 2.3 1.5 4.05 3 5.5l7 7Z"/>` +
		`<path d="M12 5 9.04 7.96a2.17 2.17 0 0 0 0 3.08c.82.82 2.13.85 3 .07l2.07-1.9a2.82 2.82 0 0 1 3.79 0l2.96 2.66"/>` +
		`<path d="m18 15-2-2"/><path d="m15 18-2-2"/>`,
	navigation.IconBuilding: `<path d="M6 22V4a2 2 0 0 1 2-2h8a2 2 0 0 1 2 2v18Z"/>` +
		`<path d="M6 12H4a2 2 0 0 0-2 2v6a2 2 0 0 0 2 2h2"/><path d="M18 9h2a2 2 0 0 1 2 2v9a2 2 0 0 1-2 2h-2"/>` +
		`<path d="M10 6h4"/><path d="M10 10h4"/><path d="M10 14h4"/><path d="M10 18h4"/>`,
	navigation.IconBadgeDollarSign: `<path d="M3.85 8.62a4 4 0 0 1 4.78-4.77 4 4 0 0 1 6.74 0 4 4 0 0 1 4.78 4.78 4 4 0 0 1 0 6.74 4 4 0 0 1-4.77 4.78 4 4 0 0 1-6.75 0 4 4 0 0 1-4.78-4.77 4 4 0 0 1 0-6.76Z"/>` +
		`<path d="M16 8h-6a2 2 0 1 0 0 4h4a2 2 0 1 1 0 4H8"/><path d="M12 18V6"/>`,
	navigation.IconLogOut: `<path d="M9 21H5a2 2 0 0 1-2-2V5a2 2 0 0 1 2-2h4"/>` +
		`<polyline points="16 17 21 12 16 7"/><line x1="21" x2="9" y1="12" y2="12"/>`,
	navigation.IconChevronFirst: `<path d="m17 18-6-6 6-6"/><path d="M7 6v12"/>`,
	navigation.IconChevronLast:  `<path d="m7 18 6-6-6-6"/><path d="M17 6v12"/>`,
	navigation.IconMenu: `<line x1="4" x2="20" y1="12" y2="12"/><line x1="4" x2="20" y1="6" y2="6"/>` +
		`<line x1="4" x2="20" y1="18" y2="18"/>`,
	navigation.IconClose: `<path d="M18 6 6 18"/><path d="m6 6 12 12"/>`,
}

// IconSVG returns the inline SVG markup for icon. Unknown icons render as
// an empty glyph of the same size so layout does not shift.
func IconSVG(icon navigation.Icon) string {
	return fmt.Sprintf(`<svg class="icon icon-%s" data-icon="%s" xmlns="http://www.w3.org/2000/svg" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true">%s</svg>`,
		icon, icon, iconPaths[icon])
}

// renderIcon resolves an icon to a drawable element
func renderIcon(icon navigation.Icon) app.UI {
	return app.Raw(IconSVG(icon))
}

package webapp

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/linkara/linkara/navigation"
)

var sectionSummaries = map[string]string{
	"/communities":  "Find the communities around you and see what they are working on.",
	"/volunteering": "Browse volunteering opportunities and offer your time.",
	"/sponsors":     "Meet the organisations that sponsor community projects.",
	"/sponsorship":  "Learn how to sponsor a project and what your support makes possible.",
}

// sectionSummary returns the blurb shown for a section
func sectionSummary(entry navigation.MenuEntry) string {
	if summary, ok := sectionSummaries[entry.Path]; ok {
		return summary
	}
	return "Explore " + entry.Label + "."
}

// SectionPage is the landing page of a menu destination
type SectionPage struct {
	app.Compo
	Entry navigation.MenuEntry
}

// Render renders the section page
func (p *SectionPage) Render() app.UI {
	return app.Div().
		Class("section-page").
		Body(
			app.Div().Class("section-header").Body(
				app.Span().Class("section-icon").Body(renderIcon(p.Entry.Icon)),
				app.H2().Text(p.Entry.Label),
			),
			app.P().Class("section-summary").Text(sectionSummary(p.Entry)),
		)
}

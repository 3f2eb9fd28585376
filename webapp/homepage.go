package webapp

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/linkara/linkara/navigation"
)

// HomePage welcomes the user and links to every other section
type HomePage struct {
	app.Compo
	AppName string
	Menu    navigation.Menu
}

// Render renders the home page
func (h *HomePage) Render() app.UI {
	cards := []app.UI{}
	for _, entry := range h.Menu.Entries() {
		if entry.Path == "/" {
			continue
		}
		cards = append(cards, &SectionCard{Entry: entry})
	}

	var content app.UI
	if len(cards) == 0 {
		content = app.Div().Class("no-results").Text("Nothing to explore yet.")
	} else {
		content = app.Div().Class("section-grid").Body(cards...)
	}

	return app.Div().
		Class("home-page").
		Body(
			app.H2().Text("Welcome to "+h.AppName),
			app.P().Class("page-info").Text("Connect with communities, volunteer your time and support the work you care about."),
			content,
		)
}

// SectionCard links to a single section from the home page
type SectionCard struct {
	app.Compo
	Entry navigation.MenuEntry
}

// Render renders the section card
func (c *SectionCard) Render() app.UI {
	return app.A().
		Href(c.Entry.Path).
		Class("section-card").
		Body(
			app.Span().Class("section-card-icon").Body(renderIcon(c.Entry.Icon)),
			app.H3().Text(c.Entry.Label),
			app.P().Class("section-card-summary").Text(sectionSummary(c.Entry)),
		)
}

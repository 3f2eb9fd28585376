package webapp

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/linkara/linkara/navigation"
)

// NotFoundPage displays a 404 error message with links to the known sections
type NotFoundPage struct {
	app.Compo
	Path string
	Menu navigation.Menu
}

// Render renders the 404 page
func (p *NotFoundPage) Render() app.UI {
	links := []app.UI{}
	for _, entry := range p.Menu.Entries() {
		links = append(links, app.Li().Body(
			app.A().
				Href(entry.Path).
				Class("not-found-link").
				Text(entry.Label),
		))
	}

	message := "The page you're looking for doesn't exist or has been moved."
	if p.Path != "" {
		message = "Nothing lives at " + p.Path + ". It may have been moved."
	}

	return app.Div().
		Class("not-found-page").
		Body(
			app.Div().
				Class("not-found-container").
				Body(
					app.H1().
						Class("not-found-title").
						Text("404"),
					app.H2().
						Class("not-found-subtitle").
						Text("Page Not Found"),
					app.P().
						Class("not-found-message").
						Text(message),
					app.Ul().
						Class("not-found-actions").
						Body(links...),
				),
		)
}

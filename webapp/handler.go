package webapp

import (
	"net/http"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// Handler returns an HTTP handler for the web app
func Handler(cfg ClientConfig) http.Handler {
	cfg = cfg.withDefaults()

	// Every menu destination renders the App component, which includes the sidebar
	RegisterRoutes(cfg.Menu)
	app.RunWhenOnBrowser()

	// wasm_exec.js is served at /wasm_exec.js by Echo
	// app.wasm is served from /web/app.wasm by Echo
	return &app.Handler{
		Name:        cfg.AppName,
		ShortName:   cfg.AppName,
		Title:       cfg.AppName,
		Description: "Communities, volunteering and sponsorship",
		Icon: app.Icon{
			Default: "/favicon.png",
		},
		Styles: []string{
			"/webapp/webapp.css",
		},
		Scripts: []string{
			"/config.js", // Load client configuration before the app starts
		},
		RawHeaders: []string{
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
		},
	}
}

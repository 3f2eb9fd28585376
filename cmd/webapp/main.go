//go:build js && wasm
// +build js,wasm

package main

import (
	"github.com/linkara/linkara/webapp"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

func main() {
	// Routes come from the menu injected by /config.js, which loads before the app
	webapp.RegisterRoutes(webapp.LoadClientConfig().Menu)

	// This main function is for the WASM build only
	// It initializes the go-app when running in the browser
	app.RunWhenOnBrowser()
}

package webapp

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/linkara/linkara/navigation"
)

// App is the root component of the application
type App struct {
	app.Compo
	config ClientConfig
	path   string
}

// OnInit loads the injected configuration before the first render
func (a *App) OnInit() {
	a.config = LoadClientConfig()
}

// OnMount asks the server for the menu when none was injected into the page
func (a *App) OnMount(ctx app.Context) {
	if !a.config.menuInjected {
		a.fetchMenu(ctx)
	}
}

// fetchMenu loads the menu from the API, keeping the defaults on failure
func (a *App) fetchMenu(ctx app.Context) {
	url := a.config.withDefaults().BuildAPIURL("/api/menu")
	ctx.Async(func() {
		res := app.Window().Call("fetch", url)

		res.Call("then", app.FuncOf(func(this app.Value, args []app.Value) any {
			if len(args) == 0 {
				return nil
			}
			response := args[0]

			response.Call("json").Call("then", app.FuncOf(func(this app.Value, args []app.Value) any {
				if len(args) == 0 {
					return nil
				}
				jsonStr := app.Window().Get("JSON").Call("stringify", args[0]).String()

				ctx.Dispatch(func(ctx app.Context) {
					menu, err := ParseMenuResponse([]byte(jsonStr))
					if err != nil {
						app.Logf("menu from %s ignored: %v", url, err)
						return
					}
					a.useMenu(menu)
				})
				return nil
			}))
			return nil
		})).Call("catch", app.FuncOf(func(this app.Value, args []app.Value) any {
			app.Logf("fetching %s failed, keeping the default menu", url)
			return nil
		}))
	})
}

// useMenu replaces the menu and routes its paths to the App component
func (a *App) useMenu(menu navigation.Menu) {
	RegisterRoutes(menu)
	a.config.Menu = menu
	a.config.menuInjected = true
}

// OnNav is called when navigation occurs
func (a *App) OnNav(ctx app.Context) {
	a.path = ctx.Page().URL().Path
}

// Render renders the app
func (a *App) Render() app.UI {
	cfg := a.config.withDefaults()

	return app.Div().
		Class("app-container").
		Body(
			app.Div().Class("app-layout").Body(
				&Sidebar{
					Menu:     cfg.Menu,
					LogoURL:  cfg.LogoURL,
					AppName:  cfg.AppName,
					OnLogout: logoutHook(cfg.LogoutURL),
				},
				app.Main().Class("main-content").Body(
					app.Div().Class("content").Body(
						a.renderPage(cfg),
					),
				),
			),
		)
}

// renderPage renders the current page based on the route
func (a *App) renderPage(cfg ClientConfig) app.UI {
	path := a.path
	if path == "" {
		path = "/"
	}

	entry, ok := cfg.Menu.Lookup(path)
	switch {
	case !ok:
		return &NotFoundPage{Path: path, Menu: cfg.Menu}
	case entry.Path == "/":
		return &HomePage{AppName: cfg.AppName, Menu: cfg.Menu}
	default:
		return &SectionPage{Entry: entry}
	}
}

// logoutHook sends the browser to the configured logout URL. Without one
// the logout control has no effect.
func logoutHook(logoutURL string) func(ctx app.Context) {
	if logoutURL == "" {
		return nil
	}
	return func(ctx app.Context) {
		ctx.Navigate(logoutURL)
	}
}

// RegisterRoutes routes every menu destination to the App component
func RegisterRoutes(menu navigation.Menu) {
	for _, path := range menu.Paths() {
		app.Route(path, func() app.Composer { return &App{} })
	}
}

package engine

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"github.com/linkara/linkara/webapp"
)

// RegisterRoutes wires assets, configuration and the go-app handler.
// The app handler is registered last as the catch-all.
func (serverHandler *ServerHandler) RegisterRoutes(appHandler http.Handler) {
	e := serverHandler.Echo
	webDir := serverHandler.ServerConfig.WebDir

	e.GET("/wasm_exec.js", func(c echo.Context) error {
		return c.File(filepath.Join(webDir, "wasm_exec.js"))
	})

	// Register go-app specific resources
	e.GET("/app.js", echo.WrapHandler(appHandler))
	e.GET("/app.css", echo.WrapHandler(appHandler))
	e.GET("/manifest.webmanifest", echo.WrapHandler(appHandler))

	e.GET("/web/logo.png", serverHandler.GetLogo)
	e.Static("/web", webDir)
	e.GET("/webapp/webapp.css", serverHandler.GetStylesheet)
	e.GET("/favicon.png", serverHandler.GetFavicon)
	e.GET("/favicon.ico", serverHandler.GetFavicon)

	e.GET("/config.js", serverHandler.GetConfigJS)
	e.GET("/api/menu", serverHandler.GetMenu)
	// Unknown API paths get the JSON 404, not the app shell
	e.Any("/api/*", func(c echo.Context) error {
		return echo.ErrNotFound
	})

	// Serve go-app handler for all other routes (must be last)
	e.Any("/*", echo.WrapHandler(appHandler))
}

// ClientConfig is the configuration handed to the browser
func (serverHandler *ServerHandler) ClientConfig() webapp.ClientConfig {
	frontEnd := serverHandler.ServerConfig.FrontEndConfig
	return webapp.ClientConfig{
		AppName:   frontEnd.AppName,
		APIURL:    frontEnd.ServerAPIURL,
		LogoURL:   webapp.DefaultLogoURL,
		LogoutURL: frontEnd.LogoutURL,
		Menu:      serverHandler.Menu,
	}
}

// GetConfigJS injects the client configuration into the page
func (serverHandler *ServerHandler) GetConfigJS(c echo.Context) error {
	data, err := json.Marshal(serverHandler.ClientConfig())
	if err != nil {
		Logger.Error("Failed to encode client configuration", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to encode configuration")
	}

	configJS := fmt.Sprintf(`
// Linkara Frontend Configuration
window.%s = %s;
`, webapp.ConfigGlobal, data)
	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.Blob(http.StatusOK, "application/javascript", []byte(configJS))
}

// GetMenu returns the sidebar menu entries
func (serverHandler *ServerHandler) GetMenu(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"menu": serverHandler.Menu,
	})
}

// GetLogo serves the header logo
func (serverHandler *ServerHandler) GetLogo(c echo.Context) error {
	if serverHandler.Assets == nil {
		return echo.NewHTTPError(http.StatusNotFound, "logo not available")
	}
	return servePNG(c, serverHandler.Assets.Logo)
}

// GetFavicon serves the favicon derived from the logo
func (serverHandler *ServerHandler) GetFavicon(c echo.Context) error {
	if serverHandler.Assets == nil {
		return echo.NewHTTPError(http.StatusNotFound, "favicon not available")
	}
	return servePNG(c, serverHandler.Assets.Favicon)
}

// GetStylesheet serves the sidebar and layout styles
func (serverHandler *ServerHandler) GetStylesheet(c echo.Context) error {
	return c.Blob(http.StatusOK, "text/css; charset=utf-8", webapp.Stylesheet)
}

func servePNG(c echo.Context, data []byte) error {
	if len(data) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "image not available")
	}
	c.Response().Header().Set("Cache-Control", "public, max-age=3600")
	return c.Blob(http.StatusOK, "image/png", data)
}

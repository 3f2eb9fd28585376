package engine

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oklog/ulid/v2"

	"github.com/linkara/linkara/config"
	"github.com/linkara/linkara/navigation"
)

// Logger is global since we will need it everywhere
var Logger *slog.Logger

// ServerHandler will inject the variables needed into routes
type ServerHandler struct {
	Echo         *echo.Echo
	ServerConfig config.ServerConfig
	Menu         navigation.Menu
	Assets       *LogoAssets
}

// NewServer creates the echo instance with the middleware stack and error
// handling, and a ServerHandler ready for RegisterRoutes
func NewServer(serverConfig config.ServerConfig, menu navigation.Menu) *ServerHandler {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httpErrorHandler(e)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: newRequestID,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			Logger.Debug("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"requestID", v.RequestID)
			return nil
		},
	}))
	e.Use(middleware.CORSWithConfig(middleware.DefaultCORSConfig))

	return &ServerHandler{
		Echo:         e,
		ServerConfig: serverConfig,
		Menu:         menu,
		Assets:       LoadLogoAssets(serverConfig.LogoPath),
	}
}

// newRequestID returns a lexically sortable request identifier
func newRequestID() string {
	return ulid.Make().String()
}

// httpErrorHandler returns JSON for API routes and an HTML page for everything else
func httpErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
		}

		if code != http.StatusNotFound {
			e.DefaultHTTPErrorHandler(err, c)
			return
		}

		if strings.HasPrefix(c.Request().URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, map[string]string{
				"error":   "Not Found",
				"message": "The requested API endpoint does not exist",
				"path":    c.Request().URL.Path,
			})
			return
		}

		c.HTML(http.StatusNotFound, `<!DOCTYPE html>
<html>
<head><title>404 - Not Found</title></head>
<body style="font-family: sans-serif; text-align: center; padding: 50px;">
	<h1>404 - Page Not Found</h1>
	<p>The page you're looking for doesn't exist.</p>
	<a href="/" style="color: #1e3a8a; text-decoration: none; font-size: 18px;">← Go to Home Page</a>
</body>
</html>`)
	}
}

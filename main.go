package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"

	config "github.com/linkara/linkara/config"
	engine "github.com/linkara/linkara/engine"
	"github.com/linkara/linkara/webapp"
)

// Logger is global since we will need it everywhere
var Logger *slog.Logger

// injectGlobals injects all of our globals into their packages
func injectGlobals(logger *slog.Logger) {
	Logger = logger
	config.Logger = Logger
	engine.Logger = Logger
}

func main() {
	serverConfig, logger := config.SetupServer()
	injectGlobals(logger) //inject the logger into all of the packages

	menu, err := config.LoadMenu(serverConfig)
	if err != nil {
		Logger.Error("Failed to load menu", "error", err)
		os.Exit(1)
	}

	serverHandler := engine.NewServer(serverConfig, menu)
	Logger.Info("Echo created")

	if err := serverHandler.StartupChecks(); err != nil {
		Logger.Error("Startup checks failed", "error", err)
		os.Exit(1)
	}

	Logger.Info("Setting up go-app WASM UI")
	serverHandler.RegisterRoutes(webapp.Handler(serverHandler.ClientConfig()))

	if serverConfig.ListenAddrIP == "" {
		Logger.Info("No Ip Addr set, binding on ALL addresses")
	}

	if err := listen(serverHandler, serverConfig.ListenAddrIP, serverConfig.ListenAddrPort); err != nil {
		Logger.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

// portRetries is how many consecutive ports are tried when the configured one is taken
const portRetries = 5

// listen starts the server, moving up one port at a time while the
// address is in use
func listen(serverHandler *engine.ServerHandler, ip, port string) error {
	requested := port
	for attempt := 1; ; attempt++ {
		addr := net.JoinHostPort(ip, port)
		Logger.Info("Starting HTTP server", "address", addr, "attempt", attempt)

		err := serverHandler.Echo.Start(addr)
		if !isAddressInUse(err) {
			if port != requested {
				Logger.Warn("Server ran on an alternative port", "requested_port", requested, "actual_port", port)
			}
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		}
		if attempt == portRetries {
			return fmt.Errorf("no free port in %s..%s: %w", requested, port, err)
		}

		next, perr := nextPort(port)
		if perr != nil {
			return perr
		}
		Logger.Warn("Port already in use, trying next port", "port", port, "next", next)
		port = next
	}
}

// nextPort returns the port number after port
func nextPort(port string) (string, error) {
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n >= 65535 {
		return "", fmt.Errorf("invalid port %q", port)
	}
	return strconv.Itoa(n + 1), nil
}

// isAddressInUse reports whether err means the listen address is taken
func isAddressInUse(err error) bool {
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return false
	}
	return strings.Contains(err.Error(), "address already in use")
}

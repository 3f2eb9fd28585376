package engine

import (
	"fmt"
	"os"
	"path/filepath"
)

// wasmFiles are the build outputs the browser needs to boot the app
var wasmFiles = []string{"app.wasm", "wasm_exec.js"}

// StartupChecks performs all the checks to make sure everything works
func (serverHandler *ServerHandler) StartupChecks() error {
	if err := webDirectoryChecks(serverHandler.ServerConfig.WebDir); err != nil {
		return err
	}
	logoChecks(serverHandler.ServerConfig.LogoPath)
	Logger.Info("Menu ready", "entries", serverHandler.Menu.Len(), "paths", serverHandler.Menu.Paths())
	return nil
}

// webDirectoryChecks ensures the web directory exists and reports missing wasm build outputs
func webDirectoryChecks(webDir string) error {
	if webDir == "" {
		Logger.Warn("Web directory not configured")
		return nil
	}

	webInfo, err := os.Stat(webDir)
	if err != nil {
		if os.IsNotExist(err) {
			Logger.Info("Creating web directory", "path", webDir)
			if err := os.MkdirAll(webDir, 0755); err != nil {
				Logger.Error("Failed to create web directory", "path", webDir, "error", err)
				return err
			}
		} else {
			Logger.Error("Error checking web directory", "path", webDir, "error", err)
			return err
		}
	} else if !webInfo.IsDir() {
		Logger.Error("Web path exists but is not a directory", "path", webDir)
		return fmt.Errorf("web path is not a directory: %s", webDir)
	}

	for _, name := range wasmFiles {
		if _, err := os.Stat(filepath.Join(webDir, name)); err != nil {
			Logger.Warn("WASM build output missing, the UI will not load until it is built",
				"file", name, "dir", webDir)
		}
	}
	return nil
}

// logoChecks reports whether the configured logo is usable
func logoChecks(logoPath string) {
	if logoPath == "" {
		Logger.Info("Logo not configured, a placeholder will be served")
		return
	}
	logoInfo, err := os.Stat(logoPath)
	if err != nil {
		Logger.Warn("Logo not found, a placeholder will be served", "path", logoPath, "error", err)
		return
	}
	if logoInfo.IsDir() {
		Logger.Warn("Logo path is a directory, a placeholder will be served", "path", logoPath)
		return
	}
	Logger.Info("Logo found", "path", logoPath)
}

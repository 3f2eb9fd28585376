package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/linkara/linkara/navigation"
)

// Logger is global since we will need it everywhere
var Logger *slog.Logger

// ServerConfig contains all of the server settings
type ServerConfig struct {
	ListenAddrIP   string
	ListenAddrPort string
	WebDir         string // directory holding app.wasm and wasm_exec.js
	LogoPath       string // source image for the sidebar logo, optional
	MenuFile       string // YAML menu definition, optional
	FrontEndConfig
}

// FrontEndConfig stores the settings handed to the browser
type FrontEndConfig struct {
	AppName      string
	LogoutURL    string
	ServerAPIURL string
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolVal, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolVal
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intVal
}

// SetupServer loads configuration and returns ServerConfig and Logger
func SetupServer() (ServerConfig, *slog.Logger) {
	serverConfigLive := ServerConfig{}

	// Load .env file (silently ignore if doesn't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load("config.env")

	logger := setupLogging()
	Logger = logger

	serverConfigLive.ListenAddrPort = strconv.Itoa(getEnvInt("SERVER_PORT", 8000))
	serverConfigLive.ListenAddrIP = getEnv("SERVER_ADDR", "")

	webDir, err := filepath.Abs(filepath.ToSlash(getEnv("WEB_DIR", "web")))
	if err != nil {
		logger.Error("Failed creating absolute path for web directory", "error", err)
		webDir = "web"
	}
	serverConfigLive.WebDir = webDir

	if logoPath := getEnv("LOGO_PATH", ""); logoPath != "" {
		logoAbs, err := filepath.Abs(filepath.ToSlash(logoPath))
		if err != nil {
			logger.Error("Failed creating absolute path for logo", "path", logoPath, "error", err)
		} else {
			serverConfigLive.LogoPath = logoAbs
		}
	}
	serverConfigLive.MenuFile = getEnv("MENU_FILE", "")

	serverConfigLive.FrontEndConfig = loadFrontEnd(getEnv("SERVER_API_URL", ""))

	fmt.Println("\n========================================")
	fmt.Printf("   %s\n", serverConfigLive.AppName)
	fmt.Println("========================================")
	fmt.Printf("Server will start on: %s:%s\n", serverConfigLive.ListenAddrIP, serverConfigLive.ListenAddrPort)
	if serverConfigLive.ListenAddrIP == "" {
		fmt.Println("(Listening on all network interfaces)")
	}

	logger.Info("Server configuration loaded",
		"webDir", serverConfigLive.WebDir,
		"logo", serverConfigLive.LogoPath,
		"menuFile", serverConfigLive.MenuFile,
		"logoutURL", serverConfigLive.LogoutURL)

	return serverConfigLive, logger
}

func loadFrontEnd(apiURL string) FrontEndConfig {
	return FrontEndConfig{
		AppName:      getEnv("APP_NAME", "Linkara"),
		LogoutURL:    getEnv("LOGOUT_URL", ""),
		ServerAPIURL: apiURL,
	}
}

// LoadMenu returns the configured menu, or the built-in one when no menu
// file is set. A menu file that cannot be read or validated is an error.
func LoadMenu(serverConfig ServerConfig) (navigation.Menu, error) {
	if serverConfig.MenuFile == "" {
		return navigation.DefaultMenu(), nil
	}

	data, err := os.ReadFile(serverConfig.MenuFile)
	if err != nil {
		return navigation.Menu{}, fmt.Errorf("reading menu file %s: %w", serverConfig.MenuFile, err)
	}
	menu, err := navigation.ParseMenuYAML(data)
	if err != nil {
		return navigation.Menu{}, fmt.Errorf("menu file %s: %w", serverConfig.MenuFile, err)
	}
	if Logger != nil {
		Logger.Info("Menu loaded from file", "path", serverConfig.MenuFile, "entries", menu.Len())
	}
	return menu, nil
}

// setupLogging configures the application logger
func setupLogging() *slog.Logger {
	var level slog.Level

	switch getEnv("LOG_LEVEL", "info") {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOptions := &slog.HandlerOptions{Level: level}

	logOutput := getEnv("LOG_OUTPUT", "stdout")
	var logWriter io.Writer

	if logOutput == "stdout" {
		logWriter = os.Stdout
	} else {
		logPath, err := filepath.Abs(filepath.ToSlash(getEnv("LOG_FILE", "linkara.log")))
		if err != nil {
			fmt.Printf("Error creating log file path: %v\n", err)
			logWriter = os.Stdout
		} else {
			logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
			if err != nil {
				fmt.Printf("Failed to open log file: %v\n", err)
				logWriter = os.Stdout
			} else {
				logWriter = logFile
				fmt.Println("Logging to file: ", logPath)
			}
		}
	}

	if getEnvBool("LOG_JSON", false) {
		return slog.New(slog.NewJSONHandler(logWriter, handlerOptions))
	}
	return slog.New(slog.NewTextHandler(logWriter, handlerOptions))
}

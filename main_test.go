package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"

	config "github.com/linkara/linkara/config"
	engine "github.com/linkara/linkara/engine"
	"github.com/linkara/linkara/navigation"
	"github.com/linkara/linkara/webapp"
)

// getBrowser finds an available Chrome or Chromium for testing
func getBrowser() (string, error) {
	browsers := []string{"chromium", "chromium-browser", "google-chrome", "chrome"}
	for _, browser := range browsers {
		if path, err := exec.LookPath(browser); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no suitable browser found")
}

// newTestServer builds the full server stack the way main does
func newTestServer(t *testing.T) *engine.ServerHandler {
	t.Helper()
	serverConfig, logger := config.SetupServer()
	injectGlobals(logger)

	webDir, err := filepath.Abs("web")
	if err != nil {
		t.Fatalf("Failed to resolve web directory: %v", err)
	}
	serverConfig.WebDir = webDir
	serverConfig.MenuFile = ""
	serverConfig.LogoPath = ""

	menu, err := config.LoadMenu(serverConfig)
	if err != nil {
		t.Fatalf("Failed to load menu: %v", err)
	}

	serverHandler := engine.NewServer(serverConfig, menu)
	serverHandler.RegisterRoutes(webapp.Handler(serverHandler.ClientConfig()))
	return serverHandler
}

// TestRootEndpoint tests that the root endpoint serves the go-app shell
func TestRootEndpoint(t *testing.T) {
	serverHandler := newTestServer(t)

	paths := append([]string{"/config.js", "/api/menu", "/web/logo.png"}, navigation.DefaultMenu().Paths()...)
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		serverHandler.Echo.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want 200", path, rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	serverHandler.Echo.ServeHTTP(rec, req)
	if !strings.Contains(rec.Body.String(), "/config.js") {
		t.Error("Root page should load /config.js")
	}
}

// TestIsAddressInUse tests detection of port conflicts
func TestIsAddressInUse(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"port conflict", errors.New("listen tcp :8000: bind: address already in use"), true},
		{"other error", errors.New("permission denied"), false},
		{"server closed", http.ErrServerClosed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isAddressInUse(tt.err); got != tt.expected {
				t.Errorf("isAddressInUse(%v) = %v, want %v", tt.err, got, tt.expected)
			}
		})
	}
}

// TestNextPort tests the port increment used when an address is taken
func TestNextPort(t *testing.T) {
	tests := []struct {
		port    string
		want    string
		wantErr bool
	}{
		{"8000", "8001", false},
		{"65534", "65535", false},
		{"65535", "", true},
		{"0", "", true},
		{"http", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.port, func(t *testing.T) {
			got, err := nextPort(tt.port)
			if (err != nil) != tt.wantErr {
				t.Fatalf("nextPort(%q) error = %v, wantErr %v", tt.port, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("nextPort(%q) = %q, want %q", tt.port, got, tt.want)
			}
		})
	}
}

// TestListenSkipsBusyPort tests that the server moves to the next port when
// the configured one is taken, and that a shutdown is a clean stop
func TestListenSkipsBusyPort(t *testing.T) {
	serverHandler := newTestServer(t)

	busy, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to reserve a port: %v", err)
	}
	defer busy.Close()
	_, port, _ := net.SplitHostPort(busy.Addr().String())
	next, err := nextPort(port)
	if err != nil {
		t.Fatalf("nextPort(%q) error = %v", port, err)
	}

	done := make(chan error, 1)
	go func() { done <- listen(serverHandler, "127.0.0.1", port) }()

	menuURL := fmt.Sprintf("http://127.0.0.1:%s/api/menu", next)
	var resp *http.Response
	for i := 0; i < 50; i++ {
		if resp, err = http.Get(menuURL); err == nil {
			break
		}
		time.Sleep(100 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("server never answered on port %s: %v", next, err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("GET %s status = %d, want 200", menuURL, resp.StatusCode)
	}

	if err := serverHandler.Echo.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("listen() after shutdown = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("listen() did not return after shutdown")
	}
}

// TestWasmFileValid tests that the WASM build output is valid when present
func TestWasmFileValid(t *testing.T) {
	wasmPath := "web/app.wasm"

	info, err := os.Stat(wasmPath)
	if err != nil {
		t.Skipf("WASM file not found at %s: %v. Build it with GOOS=js GOARCH=wasm go build -o web/app.wasm ./cmd/webapp", wasmPath, err)
	}
	if info.Size() == 0 {
		t.Fatal("WASM file is empty")
	}

	file, err := os.Open(wasmPath)
	if err != nil {
		t.Fatalf("Failed to open WASM file: %v", err)
	}
	defer file.Close()

	magicNumber := make([]byte, 4)
	if _, err := file.Read(magicNumber); err != nil {
		t.Fatalf("Failed to read WASM magic number: %v", err)
	}

	// WASM magic number should be: 0x00 0x61 0x73 0x6d ("\0asm")
	expectedMagic := []byte{0x00, 0x61, 0x73, 0x6d}
	if !bytes.Equal(magicNumber, expectedMagic) {
		t.Errorf("Invalid WASM magic number. Got %v, expected %v", magicNumber, expectedMagic)
	}

	t.Logf("WASM file is valid: %s (%d bytes)", wasmPath, info.Size())
}

// TestSidebarWithChromedp drives the sidebar in a headless browser
func TestSidebarWithChromedp(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	browserPath, err := getBrowser()
	if err != nil {
		t.Skip("No Chrome or Chromium found, skipping browser test")
	}
	if _, err := os.Stat("web/app.wasm"); err != nil {
		t.Skip("web/app.wasm not built, skipping browser test")
	}
	t.Logf("Using browser: %s", browserPath)

	serverHandler := newTestServer(t)
	testPort := "8996"
	go func() {
		if err := serverHandler.Echo.Start(fmt.Sprintf("127.0.0.1:%s", testPort)); err != nil {
			t.Logf("Server stopped: %v", err)
		}
	}()
	time.Sleep(2 * time.Second)
	defer serverHandler.Echo.Shutdown(context.Background())

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(browserPath),
		chromedp.DisableGPU,
		chromedp.NoSandbox,
		chromedp.Headless,
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	defer allocCancel()

	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	ctx, cancel := context.WithTimeout(taskCtx, 60*time.Second)
	defer cancel()

	testURL := fmt.Sprintf("http://127.0.0.1:%s/communities", testPort)
	menuLen := navigation.DefaultMenu().Len()

	// Wide viewport: active entry and collapse behaviour
	var activeText string
	var tooltips []*cdp.Node
	var asideClass string
	err = chromedp.Run(ctx,
		chromedp.EmulateViewport(1280, 800),
		chromedp.Navigate(testURL),
		chromedp.WaitVisible(".sidebar-nav", chromedp.ByQuery),
		chromedp.Text(".sidebar-item-active .sidebar-label", &activeText, chromedp.ByQuery),
		chromedp.Click(".sidebar-collapse", chromedp.ByQuery),
		chromedp.WaitVisible(".sidebar-narrow", chromedp.ByQuery),
		chromedp.AttributeValue("aside.sidebar", "class", &asideClass, nil, chromedp.ByQuery),
		chromedp.Nodes(".sidebar-tooltip", &tooltips, chromedp.ByQueryAll),
	)
	if err != nil {
		t.Fatalf("Failed to drive wide sidebar: %v", err)
	}

	if strings.TrimSpace(activeText) != "Communities" {
		t.Errorf("active entry = %q, want Communities", activeText)
	}
	if !strings.Contains(asideClass, "sidebar-mode-wide-collapsed") {
		t.Errorf("aside class = %q, want wide-collapsed mode", asideClass)
	}
	// One tooltip per menu entry plus the logout control
	if len(tooltips) != menuLen+1 {
		t.Errorf("found %d tooltips, want %d", len(tooltips), menuLen+1)
	}

	// Narrow viewport: overlay opens, selecting an entry closes it
	var location string
	err = chromedp.Run(ctx,
		chromedp.EmulateViewport(375, 800),
		chromedp.Navigate(testURL),
		chromedp.WaitVisible(".sidebar-mobile-toggle", chromedp.ByQuery),
		chromedp.Click(".sidebar-mobile-toggle", chromedp.ByQuery),
		chromedp.WaitVisible(".sidebar-overlay", chromedp.ByQuery),
		chromedp.Click(`a.sidebar-item[href="/sponsors"]`, chromedp.ByQuery),
		chromedp.WaitNotPresent(".sidebar-overlay", chromedp.ByQuery),
		chromedp.Location(&location),
	)
	if err != nil {
		t.Fatalf("Failed to drive mobile sidebar: %v", err)
	}

	u, err := url.Parse(location)
	if err != nil {
		t.Fatalf("Invalid location %q: %v", location, err)
	}
	if u.Path != "/sponsors" {
		t.Errorf("location path = %q, want /sponsors", u.Path)
	}
}

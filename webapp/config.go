package webapp

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/linkara/linkara/navigation"
)

const (
	// ConfigGlobal is the window property /config.js assigns the client configuration to
	ConfigGlobal = "linkaraConfig"
	// DefaultLogoURL is where the server publishes the header logo
	DefaultLogoURL = "/web/logo.png"
	// DefaultAppName is shown in the page title and logo alt text
	DefaultAppName = "Linkara"
)

// ClientConfig is the configuration injected into the page by the server
type ClientConfig struct {
	AppName   string          `json:"appName"`
	APIURL    string          `json:"apiURL"`
	LogoURL   string          `json:"logoURL"`
	LogoutURL string          `json:"logoutURL"`
	Menu      navigation.Menu `json:"menu"`

	// menuInjected is false when Menu came from the defaults
	menuInjected bool
}

// DefaultClientConfig is used when no configuration was injected
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		AppName: DefaultAppName,
		LogoURL: DefaultLogoURL,
		Menu:    navigation.DefaultMenu(),
	}
}

// withDefaults fills unset fields from DefaultClientConfig
func (c ClientConfig) withDefaults() ClientConfig {
	defaults := DefaultClientConfig()
	if c.AppName == "" {
		c.AppName = defaults.AppName
	}
	if c.LogoURL == "" {
		c.LogoURL = defaults.LogoURL
	}
	if c.Menu.Len() == 0 {
		c.Menu = defaults.Menu
	} else {
		c.menuInjected = true
	}
	c.APIURL = strings.TrimSuffix(c.APIURL, "/")
	return c
}

// ParseClientConfig decodes the JSON form of the client configuration.
// An invalid menu falls back to the default menu and is reported, the
// other settings are kept.
func ParseClientConfig(data []byte) (ClientConfig, error) {
	var doc struct {
		ClientConfig
		Menu json.RawMessage `json:"menu"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return DefaultClientConfig(), fmt.Errorf("decoding client config: %w", err)
	}

	cfg := doc.ClientConfig
	var err error
	if len(doc.Menu) > 0 && string(doc.Menu) != "null" {
		if cfg.Menu, err = navigation.ParseMenuJSON(doc.Menu); err != nil {
			err = fmt.Errorf("decoding client config menu: %w", err)
		}
	}
	return cfg.withDefaults(), err
}

// LoadClientConfig reads window.linkaraConfig when running in the browser.
// Server side, or when the script is missing or malformed, the defaults are used.
func LoadClientConfig() ClientConfig {
	if !app.IsClient {
		return DefaultClientConfig()
	}

	raw := app.Window().Get(ConfigGlobal)
	if !raw.Truthy() {
		return DefaultClientConfig()
	}

	jsonStr := app.Window().Get("JSON").Call("stringify", raw).String()
	cfg, err := ParseClientConfig([]byte(jsonStr))
	if err != nil {
		app.Logf("invalid %s, using defaults: %v", ConfigGlobal, err)
	}
	return cfg
}

// BuildAPIURL constructs a full API URL from a path
func (c ClientConfig) BuildAPIURL(path string) string {
	if c.APIURL == "" {
		return path
	}
	return c.APIURL + path
}

// MenuResponse is the body of GET /api/menu
type MenuResponse struct {
	Menu navigation.Menu `json:"menu"`
}

// ParseMenuResponse decodes a /api/menu body
func ParseMenuResponse(data []byte) (navigation.Menu, error) {
	var resp MenuResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return navigation.Menu{}, fmt.Errorf("decoding menu response: %w", err)
	}
	if resp.Menu.Len() == 0 {
		return navigation.Menu{}, navigation.ErrEmptyMenu
	}
	return resp.Menu, nil
}

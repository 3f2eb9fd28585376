package navigation

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyLabel is returned for a menu entry without display text
	ErrEmptyLabel = errors.New("menu entry label is empty")
	// ErrInvalidPath is returned for a menu entry whose path is not an absolute route
	ErrInvalidPath = errors.New("menu entry path must start with /")
	// ErrDuplicatePath is returned when two entries point at the same route
	ErrDuplicatePath = errors.New("duplicate menu entry path")
	// ErrEmptyMenu is returned when a menu document contains no entries
	ErrEmptyMenu = errors.New("menu has no entries")
)

// MenuEntry is a single destination shown in the sidebar
type MenuEntry struct {
	Label string `json:"label" yaml:"label"`
	Path  string `json:"path" yaml:"path"`
	Icon  Icon   `json:"icon" yaml:"icon"`
}

// Menu is an ordered list of entries, top to bottom
type Menu struct {
	entries []MenuEntry
}

// NewMenu validates entries and returns them as a Menu.
// Order is preserved as display order.
func NewMenu(entries ...MenuEntry) (Menu, error) {
	seen := make(map[string]int, len(entries))
	for i, entry := range entries {
		if strings.TrimSpace(entry.Label) == "" {
			return Menu{}, fmt.Errorf("entry %d: %w", i, ErrEmptyLabel)
		}
		if !strings.HasPrefix(entry.Path, "/") {
			return Menu{}, fmt.Errorf("entry %d (%s): %w", i, entry.Label, ErrInvalidPath)
		}
		if !entry.Icon.Valid() {
			return Menu{}, fmt.Errorf("entry %d (%s): %w", i, entry.Label, ErrUnknownIcon)
		}
		key := normalizePath(entry.Path)
		if first, ok := seen[key]; ok {
			return Menu{}, fmt.Errorf("entry %d (%s) repeats entry %d: %w", i, entry.Label, first, ErrDuplicatePath)
		}
		seen[key] = i
	}

	copied := make([]MenuEntry, len(entries))
	copy(copied, entries)
	return Menu{entries: copied}, nil
}

// DefaultMenu returns the built-in destinations
func DefaultMenu() Menu {
	return Menu{entries: []MenuEntry{
		{Label: "Home", Path: "/", Icon: IconHome},
		{Label: "Communities", Path: "/communities", Icon: IconUsers},
		{Label: "Volunteering", Path: "/volunteering", Icon: IconHeartHandshake},
		{Label: "Sponsors", Path: "/sponsors", Icon: IconBuilding},
		{Label: "Sponsorship", Path: "/sponsorship", Icon: IconBadgeDollarSign},
	}}
}

// Entries returns a copy of the menu entries in display order
func (m Menu) Entries() []MenuEntry {
	out := make([]MenuEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Len returns the number of entries
func (m Menu) Len() int {
	return len(m.entries)
}

// Paths returns the route of every entry in display order
func (m Menu) Paths() []string {
	paths := make([]string, 0, len(m.entries))
	for _, entry := range m.entries {
		paths = append(paths, entry.Path)
	}
	return paths
}

// Lookup finds the entry registered for path
func (m Menu) Lookup(path string) (MenuEntry, bool) {
	key := normalizePath(path)
	for _, entry := range m.entries {
		if normalizePath(entry.Path) == key {
			return entry, true
		}
	}
	return MenuEntry{}, false
}

// MarshalJSON encodes the menu as a plain array of entries
func (m Menu) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Entries())
}

// UnmarshalJSON decodes and validates an array of entries. null leaves
// the menu untouched.
func (m *Menu) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	menu, err := ParseMenuJSON(data)
	if err != nil {
		return err
	}
	*m = menu
	return nil
}

// ParseMenuJSON builds a Menu from a JSON array of entries
func ParseMenuJSON(data []byte) (Menu, error) {
	var entries []MenuEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return Menu{}, fmt.Errorf("decoding menu: %w", err)
	}
	if len(entries) == 0 {
		return Menu{}, ErrEmptyMenu
	}
	return NewMenu(entries...)
}

// ParseMenuYAML builds a Menu from a YAML document. Both a bare list and
// a document with a top level "menu" key are accepted.
func ParseMenuYAML(data []byte) (Menu, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Menu{}, fmt.Errorf("decoding menu: %w", err)
	}
	if len(doc.Content) == 0 {
		return Menu{}, ErrEmptyMenu
	}

	var entries []MenuEntry
	root := doc.Content[0]
	if root.Kind == yaml.MappingNode {
		var wrapped struct {
			Menu []MenuEntry `yaml:"menu"`
		}
		if err := root.Decode(&wrapped); err != nil {
			return Menu{}, fmt.Errorf("decoding menu: %w", err)
		}
		entries = wrapped.Menu
	} else if err := root.Decode(&entries); err != nil {
		return Menu{}, fmt.Errorf("decoding menu: %w", err)
	}

	if len(entries) == 0 {
		return Menu{}, ErrEmptyMenu
	}
	return NewMenu(entries...)
}

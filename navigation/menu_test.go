package navigation

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

// TestDefaultMenu tests the built-in destinations and their order
func TestDefaultMenu(t *testing.T) {
	menu := DefaultMenu()

	expected := []struct {
		label string
		path  string
		icon  Icon
	}{
		{"Home", "/", IconHome},
		{"Communities", "/communities", IconUsers},
		{"Volunteering", "/volunteering", IconHeartHandshake},
		{"Sponsors", "/sponsors", IconBuilding},
		{"Sponsorship", "/sponsorship", IconBadgeDollarSign},
	}

	entries := menu.Entries()
	if len(entries) != len(expected) {
		t.Fatalf("DefaultMenu() has %d entries, want %d", len(entries), len(expected))
	}
	for i, want := range expected {
		got := entries[i]
		if got.Label != want.label || got.Path != want.path || got.Icon != want.icon {
			t.Errorf("entry %d = %+v, want {%s %s %v}", i, got, want.label, want.path, want.icon)
		}
	}

	// The default menu must pass its own validation
	if _, err := NewMenu(entries...); err != nil {
		t.Errorf("DefaultMenu() entries fail validation: %v", err)
	}
}

// TestMenuEntriesAreCopies tests that callers cannot mutate the menu
func TestMenuEntriesAreCopies(t *testing.T) {
	menu := DefaultMenu()
	entries := menu.Entries()
	entries[0].Label = "Changed"

	if menu.Entries()[0].Label != "Home" {
		t.Error("Mutating Entries() result changed the menu")
	}
}

// TestNewMenuValidation tests rejection of malformed entries
func TestNewMenuValidation(t *testing.T) {
	tests := []struct {
		name    string
		entries []MenuEntry
		wantErr error
	}{
		{
			name:    "empty label",
			entries: []MenuEntry{{Label: " ", Path: "/", Icon: IconHome}},
			wantErr: ErrEmptyLabel,
		},
		{
			name:    "relative path",
			entries: []MenuEntry{{Label: "Home", Path: "home", Icon: IconHome}},
			wantErr: ErrInvalidPath,
		},
		{
			name:    "missing icon",
			entries: []MenuEntry{{Label: "Home", Path: "/"}},
			wantErr: ErrUnknownIcon,
		},
		{
			name: "duplicate path",
			entries: []MenuEntry{
				{Label: "Sponsors", Path: "/sponsors", Icon: IconBuilding},
				{Label: "Sponsors again", Path: "/sponsors/", Icon: IconBuilding},
			},
			wantErr: ErrDuplicatePath,
		},
		{
			name: "valid",
			entries: []MenuEntry{
				{Label: "Home", Path: "/", Icon: IconHome},
				{Label: "Communities", Path: "/communities", Icon: IconUsers},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMenu(tt.entries...)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("NewMenu() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewMenu() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestMenuLookup tests finding entries by path
func TestMenuLookup(t *testing.T) {
	menu := DefaultMenu()

	entry, ok := menu.Lookup("/volunteering/")
	if !ok || entry.Label != "Volunteering" {
		t.Errorf("Lookup(/volunteering/) = %+v, %v", entry, ok)
	}
	if _, ok := menu.Lookup("/missing"); ok {
		t.Error("Lookup(/missing) should not find an entry")
	}
}

// TestParseMenuYAML tests menu configuration files
func TestParseMenuYAML(t *testing.T) {
	t.Run("wrapped document", func(t *testing.T) {
		doc := `
menu:
  - label: Home
    path: /
    icon: home
  - label: Events
    path: /events
    icon: users
`
		menu, err := ParseMenuYAML([]byte(doc))
		if err != nil {
			t.Fatalf("ParseMenuYAML() error = %v", err)
		}
		if menu.Len() != 2 {
			t.Fatalf("ParseMenuYAML() has %d entries, want 2", menu.Len())
		}
		if got := menu.Entries()[1]; got.Label != "Events" || got.Icon != IconUsers {
			t.Errorf("second entry = %+v", got)
		}
	})

	t.Run("bare list", func(t *testing.T) {
		doc := `
- label: Sponsors
  path: /sponsors
  icon: building
`
		menu, err := ParseMenuYAML([]byte(doc))
		if err != nil {
			t.Fatalf("ParseMenuYAML() error = %v", err)
		}
		if menu.Paths()[0] != "/sponsors" {
			t.Errorf("Paths() = %v", menu.Paths())
		}
	})

	t.Run("unknown icon", func(t *testing.T) {
		doc := "- {label: Home, path: /, icon: rocket}\n"
		if _, err := ParseMenuYAML([]byte(doc)); err == nil {
			t.Error("ParseMenuYAML() should reject unknown icons")
		}
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := ParseMenuYAML([]byte("menu: []\n"))
		if !errors.Is(err, ErrEmptyMenu) {
			t.Errorf("ParseMenuYAML() error = %v, want %v", err, ErrEmptyMenu)
		}
	})

	t.Run("invalid entry", func(t *testing.T) {
		doc := "- {label: Home, path: home, icon: home}\n"
		_, err := ParseMenuYAML([]byte(doc))
		if !errors.Is(err, ErrInvalidPath) {
			t.Errorf("ParseMenuYAML() error = %v, want %v", err, ErrInvalidPath)
		}
	})
}

// TestMenuJSON tests the JSON form used for client configuration
func TestMenuJSON(t *testing.T) {
	data, err := json.Marshal(DefaultMenu())
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), `"icon":"heart-handshake"`) {
		t.Errorf("encoded menu should carry icon names, got %s", data)
	}

	var decoded Menu
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if decoded.Len() != DefaultMenu().Len() {
		t.Errorf("decoded %d entries, want %d", decoded.Len(), DefaultMenu().Len())
	}

	if _, err := ParseMenuJSON([]byte(`[]`)); !errors.Is(err, ErrEmptyMenu) {
		t.Errorf("ParseMenuJSON([]) error = %v, want %v", err, ErrEmptyMenu)
	}
	if _, err := ParseMenuJSON([]byte(`[{"label":"Home","path":"/","icon":"nope"}]`)); err == nil {
		t.Error("ParseMenuJSON() should reject unknown icons")
	}
}

// TestIconNames tests parsing and printing of icon names
func TestIconNames(t *testing.T) {
	for icon := IconHome; icon <= IconClose; icon++ {
		parsed, err := ParseIcon(icon.String())
		if err != nil {
			t.Errorf("ParseIcon(%q) error = %v", icon.String(), err)
			continue
		}
		if parsed != icon {
			t.Errorf("ParseIcon(%q) = %v, want %v", icon.String(), parsed, icon)
		}
	}

	if _, err := ParseIcon("rocket"); !errors.Is(err, ErrUnknownIcon) {
		t.Errorf("ParseIcon(rocket) error = %v, want %v", err, ErrUnknownIcon)
	}
	if IconNone.Valid() {
		t.Error("IconNone should not be valid")
	}
	if _, err := IconNone.MarshalText(); err == nil {
		t.Error("IconNone.MarshalText() should fail")
	}
}

package navigation

import (
	"errors"
	"fmt"
)

// ErrUnknownIcon is returned when an icon name is not one of the supported glyphs
var ErrUnknownIcon = errors.New("unknown icon")

// Icon is a symbolic reference to a glyph, resolved to markup by the renderer
type Icon int

const (
	IconNone Icon = iota
	IconHome
	IconUsers
	IconHeartHandshake
	IconBuilding
	IconBadgeDollarSign
	IconLogOut
	IconChevronFirst
	IconChevronLast
	IconMenu
	IconClose
)

var iconNames = map[Icon]string{
	IconHome:            "home",
	IconUsers:           "users",
	IconHeartHandshake:  "heart-handshake",
	IconBuilding:        "building",
	IconBadgeDollarSign: "badge-dollar-sign",
	IconLogOut:          "log-out",
	IconChevronFirst:    "chevron-first",
	IconChevronLast:     "chevron-last",
	IconMenu:            "menu",
	IconClose:           "x",
}

// String returns the kebab-case name of the icon
func (i Icon) String() string {
	if name, ok := iconNames[i]; ok {
		return name
	}
	return fmt.Sprintf("icon(%d)", int(i))
}

// Valid reports whether i names a supported glyph
func (i Icon) Valid() bool {
	_, ok := iconNames[i]
	return ok
}

// ParseIcon resolves an icon name
func ParseIcon(name string) (Icon, error) {
	for icon, n := range iconNames {
		if n == name {
			return icon, nil
		}
	}
	return IconNone, fmt.Errorf("%w: %q", ErrUnknownIcon, name)
}

// MarshalText implements encoding.TextMarshaler
func (i Icon) MarshalText() ([]byte, error) {
	if !i.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownIcon, int(i))
	}
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (i *Icon) UnmarshalText(text []byte) error {
	icon, err := ParseIcon(string(text))
	if err != nil {
		return err
	}
	*i = icon
	return nil
}

package engine

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

const (
	// LogoWidth and LogoHeight bound the header logo, in pixels
	LogoWidth  = 160
	LogoHeight = 48
	// FaviconSize is the edge length of the square favicon
	FaviconSize = 32
)

// BrandColor fills the placeholder logo when no source image is available
var BrandColor = color.NRGBA{R: 0x1e, G: 0x3a, B: 0x8a, A: 0xff}

// LogoAssets holds the encoded images derived from the logo source
type LogoAssets struct {
	Logo        []byte
	Favicon     []byte
	Placeholder bool
}

// LoadLogoAssets builds the header logo and favicon from the image at path.
// An empty path or an unreadable image falls back to a flat placeholder.
func LoadLogoAssets(path string) *LogoAssets {
	if path == "" {
		Logger.Info("No logo configured, using placeholder")
		return placeholderAssets()
	}

	src, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		Logger.Warn("Unable to open logo, using placeholder", "path", path, "error", err)
		return placeholderAssets()
	}

	assets, err := renderLogoAssets(src)
	if err != nil {
		Logger.Warn("Unable to render logo, using placeholder", "path", path, "error", err)
		return placeholderAssets()
	}
	Logger.Info("Logo assets generated", "path", path, "logoBytes", len(assets.Logo), "faviconBytes", len(assets.Favicon))
	return assets
}

func renderLogoAssets(src image.Image) (*LogoAssets, error) {
	logo := imaging.Fit(src, LogoWidth, LogoHeight, imaging.Lanczos)
	favicon := imaging.Thumbnail(src, FaviconSize, FaviconSize, imaging.Lanczos)

	logoBytes, err := encodePNG(logo)
	if err != nil {
		return nil, fmt.Errorf("encoding logo: %w", err)
	}
	faviconBytes, err := encodePNG(favicon)
	if err != nil {
		return nil, fmt.Errorf("encoding favicon: %w", err)
	}
	return &LogoAssets{Logo: logoBytes, Favicon: faviconBytes}, nil
}

func placeholderAssets() *LogoAssets {
	assets, err := renderLogoAssets(imaging.New(LogoWidth, LogoHeight, BrandColor))
	if err != nil {
		Logger.Error("Failed to render placeholder logo", "error", err)
		return &LogoAssets{Placeholder: true}
	}
	assets.Placeholder = true
	return assets
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

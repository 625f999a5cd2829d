// Package assets loads the per-tier cigarette sprites.
package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	"github.com/emberlight/cigbat/internal/presentation"
)

// TrayIconSize is the edge length of the generated tray icon.
const TrayIconSize = 64

var fileNames = map[presentation.Tier]string{
	presentation.TierEmpty: "cig_0.png",
	presentation.TierLow:   "cig_25.png",
	presentation.TierMid:   "cig_50.png",
	presentation.TierHigh:  "cig_75.png",
	presentation.TierFull:  "cig_full.png",
}

// FileName returns the sprite file name for a tier.
func FileName(t presentation.Tier) string {
	return fileNames[t]
}

// IsSpriteFile reports whether name is one of the sprite file names.
func IsSpriteFile(name string) bool {
	for _, n := range fileNames {
		if n == name {
			return true
		}
	}
	return false
}

// Set holds one square sprite per tier.
type Set struct {
	Size    int
	Sprites map[presentation.Tier]image.Image
	// Generated lists the tiers that fell back to a placeholder.
	Generated []presentation.Tier
}

// Sprite returns the sprite for a tier.
func (s *Set) Sprite(t presentation.Tier) image.Image {
	return s.Sprites[t]
}

// Load reads every sprite from dir and scales it into a size×size square.
// A tier whose file is missing or unreadable gets a placeholder; decode
// failures are returned joined, alongside a complete set.
func Load(dir string, size int) (*Set, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid sprite size %d", size)
	}

	set := &Set{
		Size:    size,
		Sprites: make(map[presentation.Tier]image.Image, len(presentation.Tiers)),
	}

	var errs []error
	for _, tier := range presentation.Tiers {
		img, err := loadFile(filepath.Join(dir, FileName(tier)))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
		if img == nil {
			set.Sprites[tier] = Placeholder(tier, size)
			set.Generated = append(set.Generated, tier)
			continue
		}
		set.Sprites[tier] = Fit(img, size)
	}
	return set, errors.Join(errs...)
}

func loadFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

// Fit scales src into a transparent size×size square, centered, keeping its
// aspect ratio.
func Fit(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	b := src.Bounds()
	if b.Empty() {
		return dst
	}

	w, h := size, size
	if b.Dx() > b.Dy() {
		h = max(1, size*b.Dy()/b.Dx())
	} else if b.Dy() > b.Dx() {
		w = max(1, size*b.Dx()/b.Dy())
	}
	x := (size - w) / 2
	y := (size - h) / 2

	draw.CatmullRom.Scale(dst, image.Rect(x, y, x+w, y+h), src, b, draw.Over, nil)
	return dst
}

// TrayIcon encodes the highest tier's sprite as a PNG tray icon.
func TrayIcon(set *Set) ([]byte, error) {
	src := set.Sprite(presentation.TierFull)
	if src == nil {
		src = Placeholder(presentation.TierFull, TrayIconSize)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, Fit(src, TrayIconSize)); err != nil {
		return nil, fmt.Errorf("failed to encode tray icon: %w", err)
	}
	return buf.Bytes(), nil
}

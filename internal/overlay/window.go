//go:build !headless

package overlay

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/emberlight/cigbat/internal/assets"
	"github.com/emberlight/cigbat/internal/models"
	"github.com/emberlight/cigbat/internal/presentation"
)

const (
	windowTitle      = "Cigarette Battery"
	windowPadding    = 10
	defaultLabelSize = 12
)

var (
	labelColor  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	shadowColor = color.RGBA{0, 0, 0, 0xff}
)

// Window is the ebiten overlay surface.
type Window struct {
	opts     Options
	controls Controls
	ctx      context.Context

	sprites map[presentation.Tier]*ebiten.Image
	face    text.Face

	tier         presentation.Tier
	hasTier      bool
	label        string
	labelOpacity float64
	glow         float64
	visible      bool

	drag dragTracker
}

// Open loads the sprites and font and configures the window. The window
// appears when Run is called.
func Open(opts Options) (Surface, error) {
	if opts.Size <= 0 {
		opts.Size = 128
	}
	if opts.LabelSize <= 0 {
		opts.LabelSize = defaultLabelSize
	}

	face, err := loadFace(opts.LabelSize)
	if err != nil {
		return nil, err
	}

	w := &Window{
		opts:         opts,
		face:         face,
		labelOpacity: 1,
		glow:         1,
		visible:      true,
	}
	if err := w.ReloadSprites(); err != nil {
		return nil, err
	}

	side := opts.Size + windowPadding
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowSize(side, side)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(60)
	if opts.X >= 0 && opts.Y >= 0 {
		ebiten.SetWindowPosition(opts.X, opts.Y)
	}
	return w, nil
}

func loadFace(size float64) (text.Face, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load label font: %w", err)
	}
	return &text.GoTextFace{Source: src, Size: size}, nil
}

// Attach connects the window to the loop.
func (w *Window) Attach(c Controls) {
	w.controls = c
}

// Run shows the window and blocks until the loop shuts down.
func (w *Window) Run(ctx context.Context) error {
	if w.controls == nil {
		return fmt.Errorf("overlay window has no loop attached")
	}
	w.ctx = ctx

	err := ebiten.RunGameWithOptions(w, &ebiten.RunGameOptions{
		ScreenTransparent: true,
		SkipTaskbar:       true,
		InitUnfocused:     w.opts.Mode == models.ModeWallpaper,
	})
	if err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}

// Update steps the loop once per tick and handles mouse input.
func (w *Window) Update() error {
	if ebiten.IsWindowBeingClosed() {
		w.controls.Quit()
	}
	if w.controls.Step(w.ctx, time.Now()) {
		return ebiten.Termination
	}
	if w.visible {
		w.handleMouse()
	}
	return nil
}

func (w *Window) handleMouse() {
	cx, cy := ebiten.CursorPosition()
	wx, wy := ebiten.WindowPosition()
	cursor := point{wx + cx, wy + cy}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		w.drag.press(cursor, point{wx, wy})
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if pos, ok := w.drag.move(cursor); ok {
			ebiten.SetWindowPosition(pos.X, pos.Y)
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && w.drag.release() {
		w.controls.Cycle()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		w.controls.ToggleVisibility()
	}
}

// Draw paints the sprite and label.
func (w *Window) Draw(screen *ebiten.Image) {
	if !w.visible || !w.hasTier {
		return
	}

	if img := w.sprites[w.tier]; img != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(windowPadding/2, windowPadding/2)
		op.ColorScale.ScaleAlpha(float32(w.glow))
		screen.DrawImage(img, op)
	}

	if w.label == "" || w.labelOpacity <= 0 {
		return
	}
	tw, th := text.Measure(w.label, w.face, 0)
	side := float64(w.opts.Size + windowPadding)
	x := (side - tw) / 2
	y := side - th - windowPadding/2

	w.drawLabel(screen, x+1, y+1, shadowColor)
	w.drawLabel(screen, x, y, labelColor)
}

func (w *Window) drawLabel(screen *ebiten.Image, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(float32(w.labelOpacity))
	text.Draw(screen, w.label, w.face, op)
}

// Layout keeps a fixed logical size.
func (w *Window) Layout(_, _ int) (int, int) {
	side := w.opts.Size + windowPadding
	return side, side
}

func (w *Window) SetSprite(tier presentation.Tier) {
	w.tier = tier
	w.hasTier = true
}

func (w *Window) SetLabel(text string, opacity float64) {
	w.label = text
	w.labelOpacity = opacity
}

func (w *Window) SetGlowOpacity(value float64) {
	w.glow = value
}

// SetWindowLayering keeps overlay mode above other windows and wallpaper
// mode in normal stacking without taking focus.
func (w *Window) SetWindowLayering(mode models.DisplayMode) {
	w.opts.Mode = mode
	ebiten.SetWindowFloating(mode == models.ModeOverlay)
}

// SetVisible hides the overlay by drawing nothing and letting clicks pass
// through to the windows below.
func (w *Window) SetVisible(visible bool) {
	w.visible = visible
	ebiten.SetWindowMousePassthrough(!visible)
}

// ReloadSprites reads the sprite set from the asset directory again.
func (w *Window) ReloadSprites() error {
	set, err := assets.Load(w.opts.AssetDir, w.opts.Size)
	if set == nil {
		return err
	}
	if err != nil {
		log.Printf("[overlay] Some sprites could not be loaded: %v", err)
	}
	if len(set.Generated) > 0 {
		log.Printf("[overlay] Using placeholder sprites for %v", set.Generated)
	}

	sprites := make(map[presentation.Tier]*ebiten.Image, len(set.Sprites))
	for tier, img := range set.Sprites {
		sprites[tier] = ebiten.NewImageFromImage(img)
	}
	for _, old := range w.sprites {
		old.Deallocate()
	}
	w.sprites = sprites
	return nil
}

// Package main is the entry point for the cigbatd overlay process.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/emberlight/cigbat/internal/animation"
	"github.com/emberlight/cigbat/internal/assets"
	"github.com/emberlight/cigbat/internal/battery"
	"github.com/emberlight/cigbat/internal/buildinfo"
	"github.com/emberlight/cigbat/internal/config"
	"github.com/emberlight/cigbat/internal/engine"
	"github.com/emberlight/cigbat/internal/guard"
	"github.com/emberlight/cigbat/internal/models"
	"github.com/emberlight/cigbat/internal/overlay"
	"github.com/emberlight/cigbat/internal/tray"
	"github.com/emberlight/cigbat/internal/watcher"
)

func main() {
	// Parse flags
	modeFlag := flag.String("mode", string(models.ModeOverlay), "Display mode: overlay or wallpaper")
	headless := flag.Bool("headless", false, "Run without a window, logging what would be drawn")
	version := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *version {
		fmt.Printf("cigbatd %s (%s)\n", buildinfo.Version, buildinfo.Codename)
		return
	}

	log.SetPrefix("[cigbatd] ")
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if closer, err := config.SetupLogFile(); err != nil {
		log.Printf("Logging to stderr only: %v", err)
	} else {
		defer closer.Close()
	}

	mode, err := models.ParseDisplayMode(*modeFlag)
	if err != nil {
		log.Printf("%v, using %s", err, mode)
	}

	ctx := context.Background()
	if guard.New().AlreadyRunning(ctx) {
		log.Println("Another overlay is already running, exiting")
		return
	}

	if err := run(ctx, mode, *headless); err != nil {
		log.Printf("Overlay failed: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, mode models.DisplayMode, headless bool) error {
	settings, err := config.LoadSettings()
	if err != nil {
		log.Printf("Failed to load settings, using defaults: %v", err)
		settings = models.NewSettings()
	}

	assetDir, err := config.ResolveAssetDir(settings)
	if err != nil {
		return fmt.Errorf("failed to resolve asset dir: %w", err)
	}
	if err := os.MkdirAll(assetDir, 0o755); err != nil {
		log.Printf("Failed to create asset dir %s: %v", assetDir, err)
	}

	info := models.NewOverlayInfo(mode, os.Getpid())
	if err := config.SaveOverlayInfo(info); err != nil {
		log.Printf("Failed to write overlay info: %v", err)
	}
	defer func() {
		if err := config.RemoveOverlayInfo(); err != nil {
			log.Printf("Failed to remove overlay info: %v", err)
		}
	}()

	var surface overlay.Surface
	if !headless {
		surface, err = overlay.Open(overlay.Options{
			Mode:     mode,
			AssetDir: assetDir,
			Size:     settings.Window.SpriteSize,
			X:        settings.Window.X,
			Y:        settings.Window.Y,
		})
		if err != nil {
			log.Printf("No overlay window, running headless: %v", err)
		}
	}

	var renderer engine.Renderer = overlay.NewLogRenderer()
	if surface != nil {
		renderer = surface
	}

	status := tray.NewStatus(mode)
	eng := engine.New(engine.Options{
		Mode:      mode,
		Live:      battery.NewLive(battery.NewSystemSensor(), settings.SensorTimeoutDuration()),
		Simulated: battery.NewSimulated(settings.TestMode.Levels),
		Renderer:  renderer,
		Status:    status,
		Animation: animationConfig(settings.Animation),
		Glyph:     settings.ChargingGlyph,
	})
	loop := engine.NewLoop(eng, settings.PollInterval())

	log.Printf("Overlay started in %s mode (PID %d, instance %s)", mode, info.PID, info.InstanceID)

	// Handle OS signals: quit the loop on SIGINT/SIGTERM
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		select {
		case sig := <-sigCh:
			log.Printf("Received signal %v, shutting down...", sig)
			loop.Quit()
		case <-loop.Done():
		}
	}()

	w, err := watcher.New(assetDir, assets.IsSpriteFile, func(string) { loop.AssetsChanged() })
	if err == nil {
		err = w.Start()
	}
	if err != nil {
		log.Printf("Sprite hot reload disabled: %v", err)
	} else {
		defer w.Stop()
	}

	startTray(status, loop, assetDir)

	if surface != nil {
		surface.Attach(loop)
		if err := surface.Run(ctx); err != nil {
			loop.Quit()
			return err
		}
	} else {
		loop.Run(ctx, engine.DefaultFrameInterval)
	}

	log.Println("Overlay stopped")
	return nil
}

// startTray runs the tray on its own goroutine. macOS only runs menu bar
// items on the main thread, so the tray is skipped there.
func startTray(status *tray.Status, loop *engine.Loop, assetDir string) {
	if runtime.GOOS == "darwin" {
		log.Println("Tray icon disabled on macOS")
		return
	}

	var icon []byte
	if set, err := assets.Load(assetDir, assets.TrayIconSize); set != nil {
		if err != nil {
			log.Printf("Tray icon from partial sprite set: %v", err)
		}
		if icon, err = assets.TrayIcon(set); err != nil {
			log.Printf("No tray icon: %v", err)
		}
	}

	go tray.Run(status, loop, icon, nil)
	go func() {
		<-loop.Done()
		tray.Quit()
	}()
}

func animationConfig(a models.AnimationConfig) animation.Config {
	cfg := animation.Config{
		FadeOut:     a.FadeOut(),
		Pause:       a.Pause(),
		FadeIn:      a.FadeIn(),
		PulsePeriod: a.PulsePeriod(),
		PulseMin:    a.PulseMin,
		PulseMax:    a.PulseMax,
	}
	if cfg.PulseMax <= 0 || cfg.PulseMax > 1 {
		cfg.PulseMax = 1
	}
	if cfg.PulseMin <= 0 || cfg.PulseMin > cfg.PulseMax {
		cfg.PulseMin = 0.8
	}
	return cfg
}

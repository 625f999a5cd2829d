package tray

import (
	"log"

	"github.com/getlantern/systray"
)

var (
	status     *Status
	controller Controller
	iconData   []byte
	onExit     func()

	statusItem     *systray.MenuItem
	visibilityItem *systray.MenuItem
	testModeItem   *systray.MenuItem
	quitItem       *systray.MenuItem
)

// Run starts the system tray and blocks until Quit is called.
// onExitFn is called when the tray exits.
func Run(s *Status, c Controller, icon []byte, onExitFn func()) {
	status = s
	controller = c
	iconData = icon
	onExit = onExitFn
	systray.Run(onReady, onQuit)
}

// Quit signals the tray to exit.
func Quit() {
	systray.Quit()
}

func onReady() {
	if len(iconData) > 0 {
		systray.SetIcon(iconData)
	}

	header := systray.AddMenuItem("Cigarette Battery", "")
	header.Disable()

	statusItem = systray.AddMenuItem("", "")
	statusItem.Disable()

	systray.AddSeparator()

	visibilityItem = systray.AddMenuItem("Hide", "Hide or show the overlay")
	testModeItem = systray.AddMenuItem("Enable Test Mode", "Cycle through simulated levels on click")

	systray.AddSeparator()

	quitItem = systray.AddMenuItem("Quit", "Close the overlay")

	refresh(status.Snapshot())
	status.OnChange(refresh)

	go handleClicks()
}

func onQuit() {
	if onExit != nil {
		onExit()
	}
}

func handleClicks() {
	for {
		select {
		case <-visibilityItem.ClickedCh:
			controller.ToggleVisibility()
		case <-testModeItem.ClickedCh:
			controller.ToggleTestMode()
		case <-quitItem.ClickedCh:
			log.Printf("[tray] Quit requested")
			controller.Quit()
			return
		}
	}
}

// refresh updates the menu and tooltip from v.
func refresh(v View) {
	statusItem.SetTitle(v.StatusLine())
	visibilityItem.SetTitle(v.VisibilityTitle())
	testModeItem.SetTitle(v.TestModeTitle())
	systray.SetTooltip(v.Tooltip())
}

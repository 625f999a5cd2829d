package overlay

// clickSlop is how far, in pixels, the cursor may move before a press
// becomes a drag instead of a click.
const clickSlop = 3

type point struct{ X, Y int }

// dragTracker turns press, move and release into window moves and clicks.
// Positions are in screen coordinates.
type dragTracker struct {
	pressed  bool
	dragging bool
	start    point // cursor at press
	origin   point // window at press
}

func (d *dragTracker) press(cursor, window point) {
	d.pressed = true
	d.dragging = false
	d.start = cursor
	d.origin = window
}

// move returns the window position for the cursor and whether the window
// should move.
func (d *dragTracker) move(cursor point) (point, bool) {
	if !d.pressed {
		return point{}, false
	}
	dx, dy := cursor.X-d.start.X, cursor.Y-d.start.Y
	if !d.dragging && abs(dx) <= clickSlop && abs(dy) <= clickSlop {
		return point{}, false
	}
	d.dragging = true
	return point{d.origin.X + dx, d.origin.Y + dy}, true
}

// release ends the press and reports whether it was a click.
func (d *dragTracker) release() bool {
	click := d.pressed && !d.dragging
	d.pressed = false
	d.dragging = false
	return click
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

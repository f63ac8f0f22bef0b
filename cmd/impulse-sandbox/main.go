// impulse-sandbox is an interactive feel-tuning demo: keypresses trigger
// impulse presets and a marker is drawn displaced by the registry's
// combined signal at the listener cell.
//
// Keys: e explosion at the source, b bump, r toggle rumble, c clear, q quit
package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/impulse"
	"github.com/lixenwraith/impulse/clock"
	"github.com/lixenwraith/impulse/vmath"
)

// ==========================================
// TUNING VARIABLES - PLAY WITH THESE
// ==========================================

var (
	// World cells per world unit: bigger = wilder marker travel
	CellsPerUnit = 6.0

	// Source sits this many world units from the listener
	SourceOffset = vmath.Vec3F{X: 4}

	// Explosion strength per keypress
	ExplosionStrength = 1.0

	// Rumble strength while toggled on
	RumbleStrength = 0.6

	// Bump direction (world units)
	BumpDir = vmath.Vec3F{Y: -1.5}
)

// spinner maps rotation angle to a tilt indicator
var spinner = []rune{'|', '/', '-', '\\'}

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, "screen:", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "screen init:", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()

	clk := clock.NewMonotonic()
	reg := impulse.NewRegistry(clk)

	var rumble impulse.Handle
	rumbleOn := false

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	markerStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	sourceStyle := tcell.StyleDefault.Foreground(tcell.ColorRed)
	textStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)

	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
					return
				}
				switch ev.Rune() {
				case 'e':
					h := reg.NewEvent()
					if e, ok := reg.Get(h); ok {
						impulse.PresetExplosion(e, SourceOffset, ExplosionStrength)
						reg.Add(h)
					}
				case 'b':
					h := reg.NewEvent()
					if e, ok := reg.Get(h); ok {
						impulse.PresetBump(e, SourceOffset, BumpDir)
						e.Radius = 10 // reach the listener comfortably
						reg.Add(h)
					}
				case 'r':
					if rumbleOn {
						reg.Cancel(rumble, false)
						rumbleOn = false
					} else {
						rumble = reg.NewEvent()
						if e, ok := reg.Get(rumble); ok {
							impulse.PresetRumble(e, SourceOffset, RumbleStrength)
							reg.Add(rumble)
						}
						rumbleOn = true
					}
				case 'c':
					reg.Clear()
					rumbleOn = false
				}
			}
		case <-ticker.C:
			w, h := screen.Size()
			listener := vmath.Vec3F{} // world origin
			pos, rot, _ := reg.GetImpulseAt(listener, impulse.DefaultChannel)

			screen.Clear()

			// Listener marker, displaced by the combined signal
			cx, cy := w/2, h/2
			mx := cx + int(math.Round(pos.X*CellsPerUnit))
			// Terminal cells are tall: halve vertical travel
			my := cy + int(math.Round(pos.Y*CellsPerUnit*0.5))
			if mx >= 0 && mx < w && my >= 1 && my < h {
				screen.SetContent(mx, my, '@', nil, markerStyle)
			}

			// Tilt indicator next to the marker
			tilt := spinner[int(vmath.QAngle(rot)*40)%len(spinner)]
			if mx+1 < w && my >= 1 && my < h {
				screen.SetContent(mx+1, my, tilt, nil, markerStyle)
			}

			// Impulse source
			sx := cx + int(SourceOffset.X*CellsPerUnit)
			sy := cy + int(SourceOffset.Y*CellsPerUnit*0.5)
			if sx >= 0 && sx < w && sy >= 1 && sy < h {
				screen.SetContent(sx, sy, '*', nil, sourceStyle)
			}

			status := fmt.Sprintf("[e]xplosion [b]ump [r]umble:%v [c]lear [q]uit  active=%d free=%d |signal|=%.3f",
				rumbleOn, reg.ActiveCount(), reg.FreeCount(), vmath.V3FMag(pos))
			for i, r := range status {
				if i >= w {
					break
				}
				screen.SetContent(i, 0, r, nil, textStyle)
			}

			screen.Show()
		}
	}
}

package ui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/meadow/config"
	"github.com/pthm-cable/meadow/game"
)

// DriverOptions configures the interactive loop.
type DriverOptions struct {
	Display     config.DisplayConfig
	SnapshotDir string // where 's' writes snapshots; empty means the working directory
}

// Driver owns the terminal loop: it steps the game at the current delay,
// draws a frame per tick and applies key actions between ticks.
type Driver struct {
	screen   tcell.Screen
	game     *game.Game
	renderer *Renderer
	hud      *HUD
	opts     DriverOptions

	delayMS      int
	paused       bool
	message      string
	messageTicks int
}

// NewDriver creates a driver for g drawing on screen. The screen must
// already be initialized.
func NewDriver(screen tcell.Screen, g *game.Game, opts DriverOptions) *Driver {
	r := NewRenderer(screen)
	return &Driver{
		screen:   screen,
		game:     g,
		renderer: r,
		hud:      NewHUD(r),
		opts:     opts,
		delayMS:  opts.Display.DelayMS,
	}
}

// Run loops until the user quits or ctx is cancelled. Input is polled on a
// separate goroutine and handled between ticks, never during one.
func (d *Driver) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if d.Apply(KeyAction(ev)) {
					return nil
				}
				d.Draw()
			case *tcell.EventResize:
				d.screen.Sync()
				d.Draw()
			}

		case <-timer.C:
			d.Tick()
			timer.Reset(d.Delay())
		}
	}
}

// Tick advances the game unless paused, then draws a frame.
func (d *Driver) Tick() {
	if !d.paused {
		d.game.Step()
	}
	d.Draw()
	if d.messageTicks > 0 {
		d.messageTicks--
		if d.messageTicks == 0 {
			d.message = ""
		}
	}
}

// Apply performs a key action and reports whether the loop should exit.
func (d *Driver) Apply(a Action) bool {
	disp := d.opts.Display
	switch a {
	case ActionPause:
		d.paused = !d.paused
		if d.paused {
			d.setMessage("Paused - press space to resume")
		} else {
			d.setMessage("Resumed")
		}
	case ActionFaster:
		if d.delayMS > disp.MinDelayMS {
			d.delayMS = max(d.delayMS-disp.DelayStepMS, disp.MinDelayMS)
			d.setMessage("Faster")
		} else {
			d.setMessage("Already at maximum speed")
		}
	case ActionSlower:
		d.delayMS += disp.DelayStepMS
		d.setMessage("Slower")
	case ActionReset:
		if err := d.game.Reset(d.game.Setup()); err != nil {
			slog.Error("reset failed", "error", err)
			d.setMessage("Reset failed")
			break
		}
		d.setMessage("Ecosystem reset")
	case ActionSave:
		path, err := d.game.SaveSnapshot(d.opts.SnapshotDir, nil)
		if err != nil {
			slog.Error("failed to save snapshot", "error", err)
			d.setMessage("Save failed: could not create file")
			break
		}
		d.setMessage(fmt.Sprintf("Snapshot saved to %s", path))
	case ActionQuit:
		return true
	}
	if a != ActionNone {
		slog.Debug("key action", "action", a.String(), "tick", d.game.Tick())
	}
	return false
}

// Draw renders one full frame: grid, status, chart, legend, controls and
// the transient message.
func (d *Driver) Draw() {
	d.screen.Clear()

	data := HUDData{
		Counters: d.game.Counters(),
		Peaks:    d.game.Peaks(),
		DelayMS:  d.delayMS,
		Paused:   d.paused,
		FPS:      d.game.PerfStats().FPS,
	}

	y := d.renderer.DrawGrid(0, 0, d.game)
	y = d.hud.DrawStatus(0, y+1, data)
	y = d.renderer.DrawSectionHeader(0, y+1, fmt.Sprintf("Population history (last %d ticks):", d.game.HistoryCap()))
	y = d.renderer.DrawChart(0, y, d.game.History(), d.game.HistoryCap(), d.opts.Display.ChartHeight)
	y = d.hud.DrawLegend(0, y+1)
	y = d.hud.DrawControls(0, y)
	d.hud.DrawMessage(0, y+1, d.message)

	d.screen.Show()
	d.game.RecordFrame()
}

// Delay returns the current pause between ticks.
func (d *Driver) Delay() time.Duration {
	return time.Duration(d.delayMS) * time.Millisecond
}

// Paused reports whether stepping is suspended.
func (d *Driver) Paused() bool { return d.paused }

// Message returns the transient status message, empty when none is shown.
func (d *Driver) Message() string { return d.message }

func (d *Driver) setMessage(msg string) {
	d.message = msg
	d.messageTicks = d.opts.Display.MessageFrames
}

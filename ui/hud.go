package ui

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// HUD renders the status block, legend, controls and transient message.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a HUD drawing through r.
func NewHUD(r *Renderer) *HUD {
	return &HUD{renderer: r}
}

// StatusLines formats the status block.
func StatusLines(data HUDData) []string {
	c, p := data.Counters, data.Peaks
	state := "Running"
	if data.Paused {
		state = "PAUSED"
	}
	return []string{
		fmt.Sprintf("Tick: %s | Season: %s", humanize.Comma(int64(c.Tick)), c.Season),
		fmt.Sprintf("Grass: %3d | Rabbits: %3d | Wolves: %3d", c.Grass, c.Rabbits, c.Wolves),
		fmt.Sprintf("Peak (rabbits/wolves): %3d/%3d | Low: %3d/%3d", p.MaxRabbits, p.MaxWolves, p.MinRabbits, p.MinWolves),
		fmt.Sprintf("Speed: %d ms/tick | FPS: %.0f | %s", data.DelayMS, data.FPS, state),
	}
}

// DrawStatus draws the status block and returns the row below it.
func (h *HUD) DrawStatus(x, y int, data HUDData) int {
	r := h.renderer
	lines := StatusLines(data)
	for i, line := range lines {
		style := r.Theme.Value
		if i == len(lines)-1 && data.Paused {
			style = r.Theme.Paused
		}
		r.DrawText(x, y, line, style)
		y++
	}
	return y
}

// DrawLegend draws the glyph legend and returns the row below it.
func (h *HUD) DrawLegend(x, y int) int {
	r := h.renderer
	t := r.Theme
	x = r.DrawText(x, y, "Legend: ", t.SectionHeader)
	x = r.DrawText(x, y, "g", t.GrassYoung)
	x = r.DrawText(x, y, "=young grass ", t.Label)
	x = r.DrawText(x, y, "G", t.GrassMature)
	x = r.DrawText(x, y, "=mature grass ", t.Label)
	x = r.DrawText(x, y, "r", t.Rabbit)
	x = r.DrawText(x, y, "=rabbit ", t.Label)
	x = r.DrawText(x, y, "W", t.Wolf)
	x = r.DrawText(x, y, "=wolf ", t.Label)
	r.DrawText(x, y, ".=empty", t.Label)
	return y + 1
}

// DrawControls renders the control legend.
func (h *HUD) DrawControls(x, y int) int {
	h.renderer.DrawText(x, y, ControlsHelp, h.renderer.Theme.Label)
	return y + 1
}

// DrawMessage renders the transient status message, if any.
func (h *HUD) DrawMessage(x, y int, msg string) int {
	if msg == "" {
		return y
	}
	h.renderer.DrawText(x, y, ">>> "+msg, h.renderer.Theme.Message)
	return y + 1
}

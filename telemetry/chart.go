package telemetry

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// maxTracePoints bounds the memory of a PopulationTrace. When full, every
// other point is dropped and the sampling stride doubles.
const maxTracePoints = 4096

// PopulationTrace records population counts over a whole run for charting.
type PopulationTrace struct {
	stride  int
	pending int

	Ticks   []float64
	Grass   []float64
	Rabbits []float64
	Wolves  []float64
}

// NewPopulationTrace creates an empty trace sampling every tick.
func NewPopulationTrace() *PopulationTrace {
	return &PopulationTrace{stride: 1}
}

// Record adds a sample, honouring the current stride. A full trace is
// halved before the new sample is appended, so the latest sample is always
// kept and spacing stays even.
func (p *PopulationTrace) Record(tick, grass, rabbits, wolves int) {
	if p.pending > 0 {
		p.pending--
		return
	}
	if len(p.Ticks) >= maxTracePoints {
		p.Ticks = decimate(p.Ticks)
		p.Grass = decimate(p.Grass)
		p.Rabbits = decimate(p.Rabbits)
		p.Wolves = decimate(p.Wolves)
		p.stride *= 2
	}
	p.pending = p.stride - 1

	p.Ticks = append(p.Ticks, float64(tick))
	p.Grass = append(p.Grass, float64(grass))
	p.Rabbits = append(p.Rabbits, float64(rabbits))
	p.Wolves = append(p.Wolves, float64(wolves))
}

// Len returns the number of recorded samples.
func (p *PopulationTrace) Len() int {
	return len(p.Ticks)
}

// Reset drops all samples.
func (p *PopulationTrace) Reset() {
	*p = PopulationTrace{stride: 1}
}

func decimate(values []float64) []float64 {
	out := values[:0]
	for i := 0; i < len(values); i += 2 {
		out = append(out, values[i])
	}
	return out
}

var (
	grassColor  = drawing.Color{R: 60, G: 160, B: 60, A: 255}
	rabbitColor = drawing.Color{R: 0, G: 170, B: 200, A: 255}
	wolfColor   = drawing.Color{R: 190, G: 0, B: 190, A: 255}
)

// RenderPNG draws the trace as a line chart. At least two samples are needed.
func (p *PopulationTrace) RenderPNG(w io.Writer) error {
	if p.Len() < 2 {
		return fmt.Errorf("population chart needs at least 2 samples, have %d", p.Len())
	}

	yMax := 1.0
	for _, series := range [][]float64{p.Grass, p.Rabbits, p.Wolves} {
		for _, v := range series {
			if v > yMax {
				yMax = v
			}
		}
	}

	graph := chart.Chart{
		Width:  900,
		Height: 400,
		XAxis: chart.XAxis{
			Name:  "tick",
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: p.Ticks[0], Max: p.Ticks[p.Len()-1]},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "count",
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: 0, Max: yMax},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Grass",
				XValues: p.Ticks,
				YValues: p.Grass,
				Style:   chart.Style{StrokeColor: grassColor, StrokeWidth: 1.5},
			},
			chart.ContinuousSeries{
				Name:    "Rabbits",
				XValues: p.Ticks,
				YValues: p.Rabbits,
				Style:   chart.Style{StrokeColor: rabbitColor, StrokeWidth: 2.0},
			},
			chart.ContinuousSeries{
				Name:    "Wolves",
				XValues: p.Ticks,
				YValues: p.Wolves,
				Style:   chart.Style{StrokeColor: wolfColor, StrokeWidth: 2.0},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering population chart: %w", err)
	}
	return nil
}

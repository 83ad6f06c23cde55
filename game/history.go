package game

// Sample is one (rabbits, wolves) reading taken after a step.
type Sample struct {
	Rabbits int
	Wolves  int
}

// History is a fixed-capacity ring of samples. When full, the oldest sample
// is overwritten.
type History struct {
	samples []Sample
	next    int
	full    bool
}

// NewHistory creates an empty history holding up to size samples.
func NewHistory(size int) *History {
	if size < 1 {
		size = 1
	}
	return &History{samples: make([]Sample, size)}
}

// Push records a sample.
func (h *History) Push(s Sample) {
	h.samples[h.next] = s
	h.next = (h.next + 1) % len(h.samples)
	if h.next == 0 {
		h.full = true
	}
}

// Samples returns the recorded samples, oldest first.
func (h *History) Samples() []Sample {
	if !h.full {
		return append([]Sample(nil), h.samples[:h.next]...)
	}
	out := make([]Sample, 0, len(h.samples))
	out = append(out, h.samples[h.next:]...)
	return append(out, h.samples[:h.next]...)
}

// Len returns the number of recorded samples.
func (h *History) Len() int {
	if h.full {
		return len(h.samples)
	}
	return h.next
}

// Cap returns the ring capacity.
func (h *History) Cap() int {
	return len(h.samples)
}

// Clear drops all samples.
func (h *History) Clear() {
	clear(h.samples)
	h.next = 0
	h.full = false
}

// Peaks tracks population extremes since the last reset. Minimums only
// consider samples where the species was present, and read 0 until then.
type Peaks struct {
	MaxRabbits int
	MaxWolves  int
	MinRabbits int
	MinWolves  int
}

// observe folds one sample into the extremes.
func (p *Peaks) observe(s Sample) {
	p.MaxRabbits = max(p.MaxRabbits, s.Rabbits)
	p.MaxWolves = max(p.MaxWolves, s.Wolves)
	if s.Rabbits > 0 && (p.MinRabbits == 0 || s.Rabbits < p.MinRabbits) {
		p.MinRabbits = s.Rabbits
	}
	if s.Wolves > 0 && (p.MinWolves == 0 || s.Wolves < p.MinWolves) {
		p.MinWolves = s.Wolves
	}
}

package game

import "testing"

func TestHistory_Wraps(t *testing.T) {
	h := NewHistory(3)
	if h.Len() != 0 || len(h.Samples()) != 0 {
		t.Fatal("new history not empty")
	}

	for i := 1; i <= 5; i++ {
		h.Push(Sample{Rabbits: i, Wolves: i * 10})
	}
	if h.Len() != 3 {
		t.Fatalf("len = %d, want 3", h.Len())
	}
	got := h.Samples()
	for i, want := range []int{3, 4, 5} {
		if got[i].Rabbits != want || got[i].Wolves != want*10 {
			t.Errorf("samples[%d] = %+v, want rabbits %d", i, got[i], want)
		}
	}

	h.Clear()
	if h.Len() != 0 || h.Cap() != 3 {
		t.Errorf("after clear len/cap = %d/%d, want 0/3", h.Len(), h.Cap())
	}
}

func TestHistory_PartialFill(t *testing.T) {
	h := NewHistory(5)
	h.Push(Sample{Rabbits: 1})
	h.Push(Sample{Rabbits: 2})

	got := h.Samples()
	if len(got) != 2 || got[0].Rabbits != 1 || got[1].Rabbits != 2 {
		t.Errorf("samples = %+v, want [1 2]", got)
	}
	// Samples returns a copy
	got[0].Rabbits = 99
	if h.Samples()[0].Rabbits != 1 {
		t.Error("Samples shares backing storage")
	}
}

func TestPeaks_Observe(t *testing.T) {
	var p Peaks
	for _, s := range []Sample{{0, 0}, {12, 0}, {30, 2}, {8, 5}, {20, 0}} {
		p.observe(s)
	}
	want := Peaks{MaxRabbits: 30, MaxWolves: 5, MinRabbits: 8, MinWolves: 2}
	if p != want {
		t.Errorf("peaks = %+v, want %+v", p, want)
	}
}

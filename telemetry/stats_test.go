package telemetry

import (
	"testing"

	"github.com/pthm-cable/flock/genetic"
)

func TestNewGenerationStats(t *testing.T) {
	s := NewGenerationStats("run", 3, 7503, genetic.Statistics{
		Size:          40,
		MinFitness:    0,
		MaxFitness:    9,
		AvgFitness:    2.5,
		StdDevFitness: 1.75,
	}, 0.4)

	if s.RunID != "run" || s.Generation != 3 || s.Tick != 7503 {
		t.Errorf("identity fields = %+v", s)
	}
	if s.Animals != 40 || s.MaxFitness != 9 || s.AvgFitness != 2.5 || s.StdDevFitness != 1.75 {
		t.Errorf("fitness fields = %+v", s)
	}

	if got := s.LogValue().Group(); len(got) != 9 {
		t.Errorf("LogValue has %d attrs, want 9", len(got))
	}
}

func TestHistory(t *testing.T) {
	h := NewHistory(3)

	if _, ok := h.Last(); ok {
		t.Error("empty history reported a last record")
	}

	for gen := 1; gen <= 5; gen++ {
		h.Add(GenerationStats{Generation: gen, AvgFitness: float32(10 - gen)})
	}

	if h.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", h.Len())
	}
	records := h.Records()
	for i, want := range []int{3, 4, 5} {
		if records[i].Generation != want {
			t.Errorf("records[%d].Generation = %d, want %d", i, records[i].Generation, want)
		}
	}

	last, ok := h.Last()
	if !ok || last.Generation != 5 {
		t.Errorf("Last() = %+v, %v", last, ok)
	}
	if best := h.Best(); best != 7 {
		t.Errorf("Best() = %v, want 7", best)
	}
}

func TestHistoryMinimumSize(t *testing.T) {
	h := NewHistory(0)
	h.Add(GenerationStats{Generation: 1})
	h.Add(GenerationStats{Generation: 2})

	if h.Len() != 1 {
		t.Errorf("Len() = %d, want 1", h.Len())
	}
}

package telemetry

import (
	"slices"
	"testing"
	"time"
)

// manualClock only moves when told to.
type manualClock struct {
	t time.Time
}

func (c *manualClock) now() time.Time          { return c.t }
func (c *manualClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestCollector(window int) (*PerfCollector, *manualClock) {
	clock := &manualClock{t: time.Unix(1000, 0)}
	return NewPerfCollectorWithClock(window, clock.now), clock
}

// tick records one tick spending the given time in each phase, in order.
func tick(pc *PerfCollector, clock *manualClock, phases ...phaseTime) {
	pc.StartTick()
	for _, p := range phases {
		pc.StartPhase(p.name)
		clock.advance(p.d)
	}
	pc.EndTick()
}

type phaseTime struct {
	name string
	d    time.Duration
}

func TestPerfCollectorTracksPhases(t *testing.T) {
	pc, clock := newTestCollector(10)
	for range 5 {
		tick(pc, clock,
			phaseTime{PhaseWorld, 1 * time.Millisecond},
			phaseTime{PhaseEvolve, 3 * time.Millisecond},
		)
	}

	stats := pc.Stats()
	if stats.AvgTickDuration != 4*time.Millisecond {
		t.Errorf("AvgTickDuration = %v, want 4ms", stats.AvgTickDuration)
	}
	if stats.MinTickDuration != 4*time.Millisecond || stats.MaxTickDuration != 4*time.Millisecond {
		t.Errorf("min/max = %v/%v, want 4ms/4ms", stats.MinTickDuration, stats.MaxTickDuration)
	}
	if stats.TicksPerSecond != 250 {
		t.Errorf("TicksPerSecond = %v, want 250", stats.TicksPerSecond)
	}

	tests := []struct {
		phase   string
		wantAvg time.Duration
		wantPct float64
	}{
		{PhaseWorld, 1 * time.Millisecond, 25},
		{PhaseEvolve, 3 * time.Millisecond, 75},
	}
	for _, tt := range tests {
		t.Run(tt.phase, func(t *testing.T) {
			if got := stats.PhaseAvg[tt.phase]; got != tt.wantAvg {
				t.Errorf("PhaseAvg = %v, want %v", got, tt.wantAvg)
			}
			if got := stats.PhasePct[tt.phase]; got != tt.wantPct {
				t.Errorf("PhasePct = %v, want %v", got, tt.wantPct)
			}
		})
	}

	if _, ok := stats.PhaseAvg[PhaseTelemetry]; ok {
		t.Error("telemetry phase never started but has an average")
	}
}

func TestPerfCollectorWindow(t *testing.T) {
	pc, clock := newTestCollector(5)

	// Slow ticks fall out of the window once enough fast ones follow.
	for range 5 {
		tick(pc, clock, phaseTime{PhaseWorld, 5 * time.Millisecond})
	}
	for range 5 {
		tick(pc, clock, phaseTime{PhaseWorld, 1 * time.Millisecond})
	}

	stats := pc.Stats()
	if stats.MaxTickDuration != time.Millisecond || stats.AvgTickDuration != time.Millisecond {
		t.Errorf("max/avg = %v/%v, want only the 1ms ticks", stats.MaxTickDuration, stats.AvgTickDuration)
	}

	// A partly refilled window mixes both.
	tick(pc, clock, phaseTime{PhaseWorld, 6 * time.Millisecond})
	stats = pc.Stats()
	if stats.AvgTickDuration != 2*time.Millisecond || stats.MaxTickDuration != 6*time.Millisecond {
		t.Errorf("avg/max = %v/%v, want 2ms/6ms", stats.AvgTickDuration, stats.MaxTickDuration)
	}
}

func TestPerfCollectorEmpty(t *testing.T) {
	stats := NewPerfCollector(10).Stats()

	if stats.AvgTickDuration != 0 || stats.TicksPerSecond != 0 {
		t.Errorf("empty collector reported %v / %v ticks per second", stats.AvgTickDuration, stats.TicksPerSecond)
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("expected non-nil phase maps")
	}
}

func TestPerfCollectorFrameTiming(t *testing.T) {
	pc, clock := newTestCollector(10)

	pc.RecordFrame()
	if pc.Stats().FPS != 0 {
		t.Error("a single frame has no duration")
	}

	clock.advance(20 * time.Millisecond)
	pc.RecordFrame()

	stats := pc.Stats()
	if stats.FrameDuration != 20*time.Millisecond {
		t.Errorf("FrameDuration = %v, want 20ms", stats.FrameDuration)
	}
	if stats.FPS != 50 {
		t.Errorf("FPS = %v, want 50", stats.FPS)
	}
}

func TestPhasesOrder(t *testing.T) {
	got := Phases()
	want := []string{PhaseWorld, PhaseEvolve, PhaseTelemetry}
	if !slices.Equal(got, want) {
		t.Fatalf("Phases() = %v, want %v", got, want)
	}

	got[0] = "changed"
	if Phases()[0] != PhaseWorld {
		t.Error("Phases returned the shared slice")
	}
}

func TestPerfStatsToCSV(t *testing.T) {
	stats := PerfStats{
		AvgTickDuration: 250 * time.Microsecond,
		TicksPerSecond:  4000,
		PhasePct:        map[string]float64{PhaseWorld: 90, PhaseTelemetry: 10},
	}

	row := stats.ToCSV(12)
	if row.Generation != 12 || row.AvgTickUS != 250 {
		t.Errorf("row = %+v", row)
	}
	if row.WorldPct != 90 || row.TelemetryPct != 10 || row.EvolvePct != 0 {
		t.Errorf("phase columns = %v/%v/%v, want 90/0/10", row.WorldPct, row.EvolvePct, row.TelemetryPct)
	}
}

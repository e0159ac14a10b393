package telemetry

import (
	"log/slog"

	"github.com/pthm-cable/flock/genetic"
)

// GenerationStats is the record written for every finished generation.
type GenerationStats struct {
	RunID      string `csv:"run_id"`
	Generation int    `csv:"generation"`
	Tick       int64  `csv:"tick"` // Ticks simulated since the run started

	Animals       int     `csv:"animals"`
	MinFitness    float32 `csv:"min_fitness"`
	MaxFitness    float32 `csv:"max_fitness"`
	AvgFitness    float32 `csv:"avg_fitness"`
	StdDevFitness float32 `csv:"stddev_fitness"`

	// Seconds of wall time the generation took
	WallSec float64 `csv:"wall_sec"`
}

// NewGenerationStats flattens the genetic statistics of one generation.
func NewGenerationStats(runID string, generation int, tick int64, s genetic.Statistics, wallSec float64) GenerationStats {
	return GenerationStats{
		RunID:         runID,
		Generation:    generation,
		Tick:          tick,
		Animals:       s.Size,
		MinFitness:    s.MinFitness,
		MaxFitness:    s.MaxFitness,
		AvgFitness:    s.AvgFitness,
		StdDevFitness: s.StdDevFitness,
		WallSec:       wallSec,
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s GenerationStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("run_id", s.RunID),
		slog.Int("generation", s.Generation),
		slog.Int64("tick", s.Tick),
		slog.Int("animals", s.Animals),
		slog.Float64("min_fitness", float64(s.MinFitness)),
		slog.Float64("max_fitness", float64(s.MaxFitness)),
		slog.Float64("avg_fitness", float64(s.AvgFitness)),
		slog.Float64("stddev_fitness", float64(s.StdDevFitness)),
		slog.Float64("wall_sec", s.WallSec),
	)
}

// LogStats logs the generation stats using slog.
func (s GenerationStats) LogStats() {
	slog.Info("generation",
		"run_id", s.RunID,
		"generation", s.Generation,
		"tick", s.Tick,
		"animals", s.Animals,
		"min_fitness", s.MinFitness,
		"max_fitness", s.MaxFitness,
		"avg_fitness", s.AvgFitness,
		"stddev_fitness", s.StdDevFitness,
		"wall_sec", s.WallSec,
	)
}

package telemetry

// History keeps the most recent generations for the HUD chart.
type History struct {
	size    int
	records []GenerationStats
}

// NewHistory creates a history holding at most size generations.
func NewHistory(size int) *History {
	if size < 1 {
		size = 1
	}
	return &History{size: size}
}

// Add records a generation, dropping the oldest one when full.
func (h *History) Add(s GenerationStats) {
	if len(h.records) == h.size {
		copy(h.records, h.records[1:])
		h.records = h.records[:h.size-1]
	}
	h.records = append(h.records, s)
}

// Records returns the kept generations, oldest first. The slice must not be modified.
func (h *History) Records() []GenerationStats {
	return h.records
}

// Len returns the number of kept generations.
func (h *History) Len() int {
	return len(h.records)
}

// Last returns the newest generation, if any.
func (h *History) Last() (GenerationStats, bool) {
	if len(h.records) == 0 {
		return GenerationStats{}, false
	}
	return h.records[len(h.records)-1], true
}

// Best returns the highest average fitness seen in the kept window.
func (h *History) Best() float32 {
	var best float32
	for _, r := range h.records {
		if r.AvgFitness > best {
			best = r.AvgFitness
		}
	}
	return best
}

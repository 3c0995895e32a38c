package arena

// Metrics is a snapshot of region usage
type Metrics struct {
	Used      int
	Cap       int
	Peak      int
	Available int
	Restores  uint64
}

// Metrics returns current usage counters
func (r *Region) Metrics() Metrics {
	return Metrics{
		Used:      r.mark,
		Cap:       len(r.buf),
		Peak:      r.peak,
		Available: len(r.buf) - r.mark,
		Restores:  r.gen,
	}
}

// Utilization returns the peak as a fraction of capacity
func (m Metrics) Utilization() float64 {
	if m.Cap == 0 {
		return 0
	}
	return float64(m.Peak) / float64(m.Cap)
}

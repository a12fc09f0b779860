package desert

// maskDepth is the decay depth or age at which a mask saturates.
const maskDepth = 64

// Stats summarises the current generation.
type Stats struct {
	Generation int
	Population int
	Decaying   int
	MeanAge    float64
}

// Stats counts live and decaying cells on the current grid.
func (w *World) Stats() Stats {
	s := Stats{Generation: w.generation}
	ageSum := 0
	for _, v := range w.grid.Cells() {
		switch {
		case v > 0:
			s.Population++
			ageSum += v
		case v < 0:
			s.Decaying++
		}
	}
	if s.Population > 0 {
		s.MeanAge = float64(ageSum) / float64(s.Population)
	}
	return s
}

// DecayMask exposes decay depth normalised to [0, 1] per cell.
func (w *World) DecayMask() []float32 {
	cells := w.grid.Cells()
	mask := make([]float32, len(cells))
	for i, v := range cells {
		if v < 0 {
			mask[i] = saturate(-v)
		}
	}
	return mask
}

// AgeMask exposes live cell age normalised to [0, 1] per cell.
func (w *World) AgeMask() []float32 {
	cells := w.grid.Cells()
	mask := make([]float32, len(cells))
	for i, v := range cells {
		if v > 0 {
			mask[i] = saturate(v)
		}
	}
	return mask
}

func saturate(v int) float32 {
	if v >= maskDepth {
		return 1
	}
	return float32(v) / maskDepth
}

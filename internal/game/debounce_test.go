package game

import "testing"

func TestAdvanceTimerCarriesRemainder(t *testing.T) {
	b := Button{}

	fired, b := advanceTimer(150, 100, b)
	if fired {
		t.Error("should not fire at 100ms of a 150ms interval")
	}
	if b.Elapsed != 100 {
		t.Errorf("Elapsed = %v, expected 100", b.Elapsed)
	}

	fired, b = advanceTimer(150, 100, b)
	if !fired {
		t.Error("should fire once 200ms have accumulated")
	}
	if b.Elapsed != 50 {
		t.Errorf("remainder = %v, expected 50 carried into the next frame", b.Elapsed)
	}
}

func TestAdvanceTimerFrameRateIndependence(t *testing.T) {
	// However a fixed amount of held time is chunked into frames, the
	// number of fires is the same: floor(total/interval).
	const (
		interval = 150.0
		total    = 1505.0
		want     = 10 // floor(1505 / 150)
	)

	// One repeat fires per frame at most, so the property holds for any
	// chunking of frame-sized deltas (the pipeline caps frames at 25ms).
	chunkings := map[string][]float64{
		"25ms frames": repeat(25, 60, 5),
		"10ms frames": repeat(10, 150, 5),
		"7ms frames":  repeat(7, 215, 0),
		"uneven":      append(repeat(13, 100, 5), repeat(20, 10, 0)...),
	}

	for name, deltas := range chunkings {
		t.Run(name, func(t *testing.T) {
			sum := 0.0
			for _, d := range deltas {
				sum += d
			}
			if sum != total {
				t.Fatalf("chunking sums to %v, expected %v", sum, total)
			}

			b := Button{}
			fires := 0
			for _, d := range deltas {
				var fired bool
				fired, b = advanceTimer(interval, d, b)
				if fired {
					fires++
				}
			}
			if fires != want {
				t.Errorf("%d fires, expected %d", fires, want)
			}
		})
	}
}

// repeat builds n frames of size d with a final frame of size last.
func repeat(d float64, n int, last float64) []float64 {
	out := make([]float64, n, n+1)
	for i := range out {
		out[i] = d
	}
	return append(out, last)
}

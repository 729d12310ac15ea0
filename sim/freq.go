package sim

import "log"

// Freq defines the type of frequency.
type Freq float64

// Defines the unit of frequency.
const (
	Hz  Freq = 1
	KHz Freq = 1e3
	MHz Freq = 1e6
	GHz Freq = 1e9
)

// Period returns the time in seconds between two consecutive clock edges.
func (f Freq) Period() float64 {
	if f == 0 {
		log.Panic("frequency cannot be 0")
	}

	return 1.0 / float64(f)
}

// Seconds converts a cycle count into wall-clock seconds of simulated time.
func (f Freq) Seconds(cycles uint64) float64 {
	return float64(cycles) * f.Period()
}

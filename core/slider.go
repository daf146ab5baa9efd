package core

import "fmt"

const (
	ThresholdMin     = 20
	ThresholdMax     = 50
	ThresholdDefault = 35
)

// Slider is an integer clamped to [min, max].
type Slider struct {
	min   int
	max   int
	value int
}

func NewSlider(lo, hi, value int) *Slider {
	if lo > hi {
		lo, hi = hi, lo
	}
	s := &Slider{min: lo, max: hi}
	s.Set(value)
	return s
}

func NewThresholdSlider() *Slider {
	return NewSlider(ThresholdMin, ThresholdMax, ThresholdDefault)
}

func (s *Slider) Value() int { return s.value }
func (s *Slider) Min() int   { return s.min }
func (s *Slider) Max() int   { return s.max }

// Set clamps v into range.
func (s *Slider) Set(v int) {
	s.value = min(max(v, s.min), s.max)
}

func (s *Slider) Step(delta int) int {
	s.Set(s.value + delta)
	return s.value
}

// Fraction is the position in [0,1] for gauge rendering.
func (s *Slider) Fraction() float64 {
	if s.max == s.min {
		return 1
	}
	return float64(s.value-s.min) / float64(s.max-s.min)
}

// Save hands the current value to saver.
func (s *Slider) Save(saver ThresholdSaver, sensorID string) error {
	if saver == nil {
		return nil
	}
	if err := saver.SaveThreshold(sensorID, s.value); err != nil {
		return fmt.Errorf("save threshold for %s: %w", sensorID, err)
	}
	return nil
}

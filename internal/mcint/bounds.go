package mcint

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Interval is a closed range [Low, High] of one coordinate.
type Interval struct {
	Low  float64 `yaml:"low" json:"low"`
	High float64 `yaml:"high" json:"high"`
}

func (iv Interval) Width() float64 { return iv.High - iv.Low }

func (iv Interval) String() string {
	return fmt.Sprintf("[%g, %g]", iv.Low, iv.High)
}

// ParseInterval parses "low,high".
func ParseInterval(s string) (Interval, error) {
	lo, hi, ok := strings.Cut(s, ",")
	if !ok {
		return Interval{}, fmt.Errorf("interval %q: want low,high", s)
	}
	low, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil {
		return Interval{}, fmt.Errorf("interval %q: %w", s, err)
	}
	high, err := strconv.ParseFloat(strings.TrimSpace(hi), 64)
	if err != nil {
		return Interval{}, fmt.Errorf("interval %q: %w", s, err)
	}
	return Interval{Low: low, High: high}, nil
}

// Bounds is the integration box, one interval per coordinate.
type Bounds []Interval

func (b Bounds) Validate() error {
	if len(b) == 0 {
		return ErrEmptyBounds
	}
	for i, iv := range b {
		if math.IsNaN(iv.Low) || math.IsNaN(iv.High) || math.IsInf(iv.Low, 0) || math.IsInf(iv.High, 0) {
			return fmt.Errorf("%w: dimension %d is %v", ErrDegenerateBounds, i, iv)
		}
		if iv.High <= iv.Low {
			return fmt.Errorf("%w: dimension %d is %v", ErrDegenerateBounds, i, iv)
		}
	}
	return nil
}

// Volume returns the product of the interval widths.
func (b Bounds) Volume() float64 {
	v := 1.0
	for _, iv := range b {
		v *= iv.Width()
	}
	return v
}

func (b Bounds) sample(rng interface{ Float64() float64 }, y []float64) {
	for d, iv := range b {
		y[d] = iv.Low + iv.Width()*rng.Float64()
	}
}

package measurement

import (
	"fmt"
	"math"
	"strconv"
)

// Pitch is a roof slope expressed as rise over run
type Pitch struct {
	Rise float64
	Run  float64
}

// DefaultPitch is applied to shapes unless another pitch is chosen
var DefaultPitch = Pitch{Rise: 6, Run: 12}

// CommonPitches are the choices offered in the pitch list, 1/12 through 12/12
func CommonPitches() []Pitch {
	pitches := make([]Pitch, 0, 12)
	for rise := 1; rise <= 12; rise++ {
		pitches = append(pitches, Pitch{Rise: float64(rise), Run: 12})
	}
	return pitches
}

// Validate checks the run is positive and the rise non-negative
func (p Pitch) Validate() error {
	if p.Run <= 0 || p.Rise < 0 || math.IsNaN(p.Rise) || math.IsNaN(p.Run) || math.IsInf(p.Rise, 0) || math.IsInf(p.Run, 0) {
		return fmt.Errorf("%w: %s", ErrInvalidPitch, p)
	}
	return nil
}

// Multiplier converts a plan-view area to the sloped surface area
func (p Pitch) Multiplier() float64 {
	ratio := p.Rise / p.Run
	return math.Sqrt(ratio*ratio + 1)
}

func (p Pitch) String() string {
	return strconv.FormatFloat(p.Rise, 'f', -1, 64) + "/" + strconv.FormatFloat(p.Run, 'f', -1, 64)
}

package calc

import "math"

const (
	LenStep     = 0.65 // metres per step, running and walking
	SwimLenStep = 1.38 // metres per stroke
	MInKm       = 1000
	MinInH      = 60
)

// Params holds the constants of one workout's formula set.
type Params struct {
	StepLength float64

	// Running: (Multiplier*speed - Shift) * weight / MInKm
	// Walking: WeightMultiplier*weight + (speed² // height) * SpeedHeightMultiplier * weight
	// Swimming: (speed + Shift) * WeightMultiplier * weight
	CalorieMultiplier            float64
	CalorieShift                 float64
	CalorieWeightMultiplier      float64
	CalorieSpeedHeightMultiplier float64
}

var (
	RunningParams = Params{
		StepLength:        LenStep,
		CalorieMultiplier: 18,
		CalorieShift:      20,
	}
	WalkingParams = Params{
		StepLength:                   LenStep,
		CalorieWeightMultiplier:      0.035,
		CalorieSpeedHeightMultiplier: 0.029,
	}
	SwimmingParams = Params{
		StepLength:              SwimLenStep,
		CalorieShift:            1.1,
		CalorieWeightMultiplier: 2,
	}
)

// Distance returns the distance in km covered by action steps or strokes.
func Distance(action int, p Params) float64 {
	return float64(action) * p.StepLength / MInKm
}

// MeanSpeed returns the step-based mean speed in km/h. duration must be positive.
func MeanSpeed(action int, duration float64, p Params) float64 {
	return Distance(action, p) / duration
}

// SwimmingMeanSpeed returns the pool-based mean speed in km/h.
func SwimmingMeanSpeed(poolLength float64, poolCount int, duration float64) float64 {
	return poolLength * float64(poolCount) / MInKm / duration
}

// RunningCalories returns calories spent running at speed km/h for duration hours.
func RunningCalories(speed, weight, duration float64, p Params) float64 {
	perMin := (p.CalorieMultiplier*speed - p.CalorieShift) * weight / MInKm
	return perMin * (duration * MinInH)
}

// WalkingCalories returns calories spent walking. The speed/height term
// uses floored division.
func WalkingCalories(speed, weight, height, duration float64, p Params) float64 {
	return (p.CalorieWeightMultiplier*weight +
		FloorDiv(speed*speed, height)*p.CalorieSpeedHeightMultiplier*weight) *
		(duration * MinInH)
}

// SwimmingCalories returns calories spent swimming at speed km/h.
func SwimmingCalories(speed, weight float64, p Params) float64 {
	return (speed + p.CalorieShift) * p.CalorieWeightMultiplier * weight
}

// FloorDiv returns a/b rounded towards negative infinity. The quotient is
// derived from the fmod remainder rather than math.Floor(a/b), so results
// stay exact when a/b would round up to an integer.
func FloorDiv(a, b float64) float64 {
	mod := math.Mod(a, b)
	div := (a - mod) / b
	if mod != 0 && (b < 0) != (mod < 0) {
		div -= 1
	}
	if div == 0 {
		return math.Copysign(0, a/b)
	}
	floor := math.Floor(div)
	if div-floor > 0.5 {
		floor += 1
	}
	return floor
}

package models

import (
	"errors"
	"fmt"

	"github.com/meltforce/ftracker/internal/calc"
)

// ErrInvalidValue is returned when a training field is outside its valid range.
var ErrInvalidValue = errors.New("invalid training value")

// Kind identifies the workout variant of a Training.
type Kind int

const (
	KindUnknown Kind = iota
	KindRunning
	KindWalking
	KindSwimming
)

// String returns the display name used in training reports.
func (k Kind) String() string {
	switch k {
	case KindRunning:
		return "Running"
	case KindWalking:
		return "SportsWalking"
	case KindSwimming:
		return "Swimming"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Params returns the formula constants for the variant.
func (k Kind) Params() calc.Params {
	switch k {
	case KindRunning:
		return calc.RunningParams
	case KindWalking:
		return calc.WalkingParams
	case KindSwimming:
		return calc.SwimmingParams
	default:
		return calc.Params{}
	}
}

// Metrics are the values derived from a Training's raw inputs.
type Metrics struct {
	DistanceKm   float64
	MeanSpeedKmh float64
	Calories     float64
}

// Training is a single workout built from a sensor package. Fields are set
// once by a constructor and never modified; the zero value is not a valid
// training.
type Training struct {
	kind     Kind
	action   int
	duration float64 // hours
	weight   float64 // kg

	height float64 // walking only

	poolLength float64 // swimming only, metres
	poolCount  int     // swimming only
}

// NewRunning builds a running training.
func NewRunning(action int, duration, weight float64) (Training, error) {
	if err := checkCommon(action, duration, weight); err != nil {
		return Training{}, err
	}
	return Training{kind: KindRunning, action: action, duration: duration, weight: weight}, nil
}

// NewWalking builds a sports walking training.
func NewWalking(action int, duration, weight, height float64) (Training, error) {
	if err := checkCommon(action, duration, weight); err != nil {
		return Training{}, err
	}
	if height <= 0 {
		return Training{}, fmt.Errorf("%w: height %v must be positive", ErrInvalidValue, height)
	}
	return Training{kind: KindWalking, action: action, duration: duration, weight: weight, height: height}, nil
}

// NewSwimming builds a swimming training.
func NewSwimming(action int, duration, weight, poolLength float64, poolCount int) (Training, error) {
	if err := checkCommon(action, duration, weight); err != nil {
		return Training{}, err
	}
	if poolLength <= 0 {
		return Training{}, fmt.Errorf("%w: pool length %v must be positive", ErrInvalidValue, poolLength)
	}
	if poolCount < 0 {
		return Training{}, fmt.Errorf("%w: pool count %d must not be negative", ErrInvalidValue, poolCount)
	}
	return Training{
		kind:       KindSwimming,
		action:     action,
		duration:   duration,
		weight:     weight,
		poolLength: poolLength,
		poolCount:  poolCount,
	}, nil
}

func checkCommon(action int, duration, weight float64) error {
	if action < 0 {
		return fmt.Errorf("%w: action %d must not be negative", ErrInvalidValue, action)
	}
	if duration <= 0 {
		return fmt.Errorf("%w: duration %v must be positive", ErrInvalidValue, duration)
	}
	if weight <= 0 {
		return fmt.Errorf("%w: weight %v must be positive", ErrInvalidValue, weight)
	}
	return nil
}

func (t Training) Kind() Kind { return t.kind }
func (t Training) Action() int { return t.action }
func (t Training) Duration() float64 { return t.duration }
func (t Training) Weight() float64 { return t.weight }
func (t Training) Height() float64 { return t.height }
func (t Training) PoolLength() float64 { return t.poolLength }
func (t Training) PoolCount() int { return t.poolCount }

// Distance returns the step-based distance in km. Swimming uses the stroke
// length here even though its speed is pool-based.
func (t Training) Distance() float64 {
	return calc.Distance(t.action, t.kind.Params())
}

// MeanSpeed returns the mean speed in km/h.
func (t Training) MeanSpeed() float64 {
	if t.kind == KindSwimming {
		return calc.SwimmingMeanSpeed(t.poolLength, t.poolCount, t.duration)
	}
	return calc.MeanSpeed(t.action, t.duration, t.kind.Params())
}

// SpentCalories returns the calories burned during the training.
func (t Training) SpentCalories() float64 {
	p := t.kind.Params()
	switch t.kind {
	case KindRunning:
		return calc.RunningCalories(t.MeanSpeed(), t.weight, t.duration, p)
	case KindWalking:
		return calc.WalkingCalories(t.MeanSpeed(), t.weight, t.height, t.duration, p)
	case KindSwimming:
		return calc.SwimmingCalories(t.MeanSpeed(), t.weight, p)
	default:
		return 0
	}
}

// Metrics computes all derived values in one call.
func (t Training) Metrics() Metrics {
	return Metrics{
		DistanceKm:   t.Distance(),
		MeanSpeedKmh: t.MeanSpeed(),
		Calories:     t.SpentCalories(),
	}
}

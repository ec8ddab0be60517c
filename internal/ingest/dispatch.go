package ingest

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/meltforce/ftracker/internal/models"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cast"
)

var (
	ErrUnknownType = errors.New("unknown training type")
	ErrInvalidData = errors.New("unknown training data")
)

// Package is one raw sensor reading: a workout code and its positional fields.
type Package struct {
	Code string
	Data []any
}

type builder struct {
	arity int
	ints  []int // positions holding integer counts
	build func(f fields) (models.Training, error)
}

var builders = map[string]builder{
	"SWM": {arity: 5, ints: []int{0, 4}, build: func(f fields) (models.Training, error) {
		return models.NewSwimming(f.integer(0), f.float(1), f.float(2), f.float(3), f.integer(4))
	}},
	"RUN": {arity: 3, ints: []int{0}, build: func(f fields) (models.Training, error) {
		return models.NewRunning(f.integer(0), f.float(1), f.float(2))
	}},
	"WLK": {arity: 4, ints: []int{0}, build: func(f fields) (models.Training, error) {
		return models.NewWalking(f.integer(0), f.float(1), f.float(2), f.float(3))
	}},
}

// Codes returns the known workout codes, sorted.
func Codes() []string {
	codes := make([]string, 0, len(builders))
	for c := range builders {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// ReadPackage builds a Training from a workout code and its raw fields.
// Failures wrap ErrUnknownType or ErrInvalidData; no Training is produced.
func ReadPackage(code string, data []any) (models.Training, error) {
	b, ok := builders[code]
	if !ok {
		if s := suggest(code); s != "" {
			return models.Training{}, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownType, code, s)
		}
		return models.Training{}, fmt.Errorf("%w %q", ErrUnknownType, code)
	}
	if len(data) != b.arity {
		return models.Training{}, fmt.Errorf("%w: %s expects %d fields, got %d", ErrInvalidData, code, b.arity, len(data))
	}

	f, err := coerce(data, b.ints)
	if err != nil {
		return models.Training{}, fmt.Errorf("%w: %s: %w", ErrInvalidData, code, err)
	}
	t, err := b.build(f)
	if err != nil {
		return models.Training{}, fmt.Errorf("%w: %s: %w", ErrInvalidData, code, err)
	}
	return t, nil
}

// fields holds coerced numeric values in package order.
type fields []float64

func (f fields) float(i int) float64 { return f[i] }
func (f fields) integer(i int) int { return int(f[i]) }

func coerce(data []any, ints []int) (fields, error) {
	isInt := make(map[int]bool, len(ints))
	for _, i := range ints {
		isInt[i] = true
	}

	out := make(fields, len(data))
	for i, v := range data {
		switch v.(type) {
		case nil, bool:
			return nil, fmt.Errorf("field %d: unsupported value %v", i+1, v)
		}
		n, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i+1, err)
		}
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return nil, fmt.Errorf("field %d: value %v is not finite", i+1, n)
		}
		if isInt[i] && (n != math.Trunc(n) || math.Abs(n) > math.MaxInt32) {
			return nil, fmt.Errorf("field %d: value %v is not an integer count", i+1, n)
		}
		out[i] = n
	}
	return out, nil
}

// suggest returns the closest known code for an unknown one, or "".
func suggest(code string) string {
	if code == "" {
		return ""
	}
	matches := fuzzy.Find(code, Codes())
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}

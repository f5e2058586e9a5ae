package timeunit

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Unit is the wall-clock unit a result file reports its timings in.
type Unit string

const (
	Nanoseconds  Unit = "nanoseconds"
	Microseconds Unit = "microseconds"
	Milliseconds Unit = "milliseconds"
	Seconds      Unit = "seconds"
	Minutes      Unit = "minutes"
	Hours        Unit = "hours"
)

// toMilliseconds holds the exact multiplicative factor from each unit to
// milliseconds. Factors are decimals so conversions never pick up binary
// float error.
var toMilliseconds = map[Unit]decimal.Decimal{
	Nanoseconds:  decimal.New(1, -6),
	Microseconds: decimal.New(1, -3),
	Milliseconds: decimal.New(1, 0),
	Seconds:      decimal.New(1, 3),
	Minutes:      decimal.New(6, 4),
	Hours:        decimal.New(36, 5),
}

// Parse normalizes a unit label (any case) to a Unit.
func Parse(s string) (Unit, error) {
	u := Unit(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := toMilliseconds[u]; !ok {
		return "", fmt.Errorf("unknown time unit %q", s)
	}
	return u, nil
}

// Label returns the upper-case form used in result files.
func (u Unit) Label() string {
	return strings.ToUpper(string(u))
}

func (u Unit) Valid() bool {
	_, ok := toMilliseconds[u]
	return ok
}

// ToMilliseconds converts a duration expressed in from-units to
// milliseconds using the exact unit factor. NaN and infinities pass
// through so absent timings propagate instead of panicking inside the
// decimal conversion.
func ToMilliseconds(value float64, from Unit) (float64, error) {
	factor, ok := toMilliseconds[from]
	if !ok {
		return 0, fmt.Errorf("unknown time unit %q", string(from))
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value, nil
	}
	return decimal.NewFromFloat(value).Mul(factor).InexactFloat64(), nil
}

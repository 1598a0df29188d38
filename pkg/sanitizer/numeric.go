package sanitizer

import "math"

// Float represents floating-point numeric types.
type Float interface {
	~float32 | ~float64
}

// RoundToDecimalPlaces rounds half away from zero on the scaled value:
// round(value * 10^places) / 10^places.
func RoundToDecimalPlaces[T Float](value T, places int) T {
	if places < 0 {
		places = 0
	}

	multiplier := math.Pow(10, float64(places))
	return T(math.Round(float64(value)*multiplier) / multiplier)
}

// RoundMoney rounds to cents.
func RoundMoney(value float64) float64 {
	return RoundToDecimalPlaces(value, 2)
}

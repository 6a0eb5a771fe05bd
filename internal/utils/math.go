package utils

import (
	crand "crypto/rand"
	"encoding/hex"
	"math"
	"math/rand"
)

// RandomFloat returns a random float64 in [0.0, 1.0)
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// ScaledInt maps a uniform draw r in [0,1) onto [min, min+span).
// Callers pass their own source of r so tests can pin outcomes.
func ScaledInt(r float64, min, span int64) int64 {
	if span <= 0 {
		return min
	}
	return min + int64(math.Floor(r*float64(span)))
}

// RandomHex returns n random bytes hex-encoded (2n characters)
func RandomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := crand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// Percentage returns part/whole*100 rounded to two decimals, or 0 when whole is not positive
func Percentage(part, whole int64) float64 {
	if whole <= 0 {
		return 0
	}
	return math.Round(float64(part)/float64(whole)*100*100) / 100
}

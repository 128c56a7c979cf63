package ticketing

import (
	"fmt"
	"math"
	"math/big"
)

// bpsPerPercent converts a fee percentage into basis points.
const bpsPerPercent = 100

// FeeBasisPoints converts a fee percentage, e.g. 2.5, into basis points, e.g. 250.
// Percentages outside [0, 100] are rejected.
func FeeBasisPoints(percent float64) (*big.Int, error) {
	if math.IsNaN(percent) || percent < 0 || percent > 100 {
		return nil, fmt.Errorf("fee percentage %v out of range [0, 100]", percent)
	}
	return big.NewInt(int64(math.Round(percent * bpsPerPercent))), nil
}

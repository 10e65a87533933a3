package repl

import (
	"math"
	"strconv"
)

// integerTolerance absorbs float64 noise when deciding whether a result
// should print without a decimal point, e.g. 0.1+0.2-0.3 prints as 0.
const integerTolerance = 1e-12

// FormatResult renders an evaluation result for display: whole numbers
// without a trailing decimal point, everything else in the shortest
// float64 representation. NaN and infinities render literally.
func FormatResult(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	rounded := math.Round(v)
	if math.Abs(v-rounded) < integerTolerance && math.Abs(rounded) < 1e15 {
		return strconv.FormatInt(int64(rounded), 10)
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}

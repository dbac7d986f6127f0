package fmt

import (
	"fmt"
)

// SprintFloatFixed formats value with exactly decimal fractional digits,
// using standard rounding. Coordinate tokens must keep a consistent digit
// count, so trailing zeros are never trimmed.
func SprintFloatFixed(value float64, decimal uint) string {
	return fmt.Sprintf(fmt.Sprintf("%%.%df", decimal), value)
}
